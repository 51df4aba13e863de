package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/httputil"
)

// CustomLoggerMiddleware logs HTTP requests using slog with the request id
// attached by the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// RequireJSONAccept rejects requests whose Accept header rules out a JSON
// response. An absent Accept header counts as accepting anything.
func RequireJSONAccept(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		accept := c.GetHeader("Accept")
		if accept != "" && !httputil.AcceptsJSON(accept) {
			httputil.HandleErrorGin(c, apperrors.ErrNotAcceptable, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireJSONBody rejects body-carrying requests that do not declare a JSON
// content type.
func RequireJSONBody(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !httputil.IsJSONBody(c.GetHeader("Content-Type")) {
			httputil.HandleErrorGin(
				c,
				apperrors.Wrap(apperrors.ErrInvalidInput, "request body must be application/json"),
				logger,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ValidateResourceID rejects path IDs outside the accepted shape with 404
// before any further gate runs. A malformed ID can never name a resource, so
// it is indistinguishable from a missing one.
func ValidateResourceID(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ValidResourceID(c.Param("id")) {
			httputil.HandleErrorGin(c, apperrors.ErrNotFound, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}

// methodNotAllowedHandler answers requests that matched a route but not one
// of its methods. The Allow header lists the allowed methods in table order.
func methodNotAllowedHandler(c *gin.Context) {
	if route, ok := matchRoute(c.Request.URL.Path); ok {
		c.Header("Allow", strings.Join(route.Methods, ","))
	}
	c.JSON(http.StatusMethodNotAllowed, httputil.ErrorResponse{
		Error:   "method_not_allowed",
		Message: "The method is not allowed for this resource",
	})
}
