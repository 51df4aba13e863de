// Package http provides HTTP handlers for user-related operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/anhminh10a2hoa/webshop/internal/auth/http"
	"github.com/anhminh10a2hoa/webshop/internal/httputil"
	"github.com/anhminh10a2hoa/webshop/internal/user/http/dto"
	"github.com/anhminh10a2hoa/webshop/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler handles user registration.
// POST /api/register - The only unauthenticated API operation.
// Returns 201 Created with the new user (password hash never included).
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input usecase.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// ListHandler returns all users.
// GET /api/users - Requires the admin role.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetHandler retrieves a user by ID.
// GET /api/users/:id - Requires the admin role.
func (h *UserHandler) GetHandler(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateRoleHandler updates the role of another user.
// PUT /api/users/:id - Requires the admin role; updating the own record is
// rejected with 400 before the body is inspected further.
func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	requester, _ := authHTTP.GetUser(c.Request.Context())

	var input usecase.UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateRole(c.Request.Context(), requester, c.Param("id"), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteHandler deletes another user and echoes the deleted record.
// DELETE /api/users/:id - Requires the admin role; deleting the own record is
// rejected with 400.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	requester, _ := authHTTP.GetUser(c.Request.Context())

	user, err := h.userUseCase.Delete(c.Request.Context(), requester, c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
