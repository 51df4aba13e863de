// Package http provides HTTP handlers for product-related operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anhminh10a2hoa/webshop/internal/httputil"
	"github.com/anhminh10a2hoa/webshop/internal/product/http/dto"
	"github.com/anhminh10a2hoa/webshop/internal/product/usecase"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	productUseCase usecase.UseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUseCase usecase.UseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// CreateHandler creates a new product.
// POST /api/products - Requires the admin role.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var input usecase.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// ListHandler returns the product catalog.
// GET /api/products - Available to any authenticated user.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetHandler retrieves a product by ID.
// GET /api/products/:id - Available to any authenticated user.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	product, err := h.productUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// UpdateHandler applies a partial update to a product.
// PUT /api/products/:id - Requires the admin role.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	var input usecase.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteHandler deletes a product and echoes the deleted record.
// DELETE /api/products/:id - Requires the admin role.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	product, err := h.productUseCase.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
