// Package http provides HTTP handlers for order-related operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/anhminh10a2hoa/webshop/internal/auth/http"
	"github.com/anhminh10a2hoa/webshop/internal/httputil"
	"github.com/anhminh10a2hoa/webshop/internal/order/http/dto"
	"github.com/anhminh10a2hoa/webshop/internal/order/usecase"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderUseCase usecase.UseCase
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderUseCase usecase.UseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// CreateHandler places a new order for the requester.
// POST /api/orders - Requires the customer role.
func (h *OrderHandler) CreateHandler(c *gin.Context) {
	requester, _ := authHTTP.GetUser(c.Request.Context())

	var input usecase.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.Create(c.Request.Context(), requester, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// ListHandler returns orders visible to the requester. Admins see every
// order; customers see only their own.
// GET /api/orders
func (h *OrderHandler) ListHandler(c *gin.Context) {
	requester, _ := authHTTP.GetUser(c.Request.Context())

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	orders, err := h.orderUseCase.ListForRequester(c.Request.Context(), requester, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// GetHandler retrieves an order by ID subject to the requester's visibility.
// GET /api/orders/:id
func (h *OrderHandler) GetHandler(c *gin.Context) {
	requester, _ := authHTTP.GetUser(c.Request.Context())

	order, err := h.orderUseCase.GetForRequester(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
