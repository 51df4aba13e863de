// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authService "github.com/anhminh10a2hoa/webshop/internal/auth/service"
	authUseCase "github.com/anhminh10a2hoa/webshop/internal/auth/usecase"
	apperrors "github.com/anhminh10a2hoa/webshop/internal/errors"
	"github.com/anhminh10a2hoa/webshop/internal/httputil"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// AuthenticationMiddleware provides authentication via Basic credentials in
// the Authorization header.
//
// The middleware:
// 1. Parses the Basic credentials from the Authorization header
// 2. Verifies them using authenticator.Authenticate()
// 3. Stores the authenticated user in the request context
// 4. Allows downstream handlers to access the user via GetUser()
//
// A malformed header is treated like an absent one: both end in a 401 with a
// WWW-Authenticate: Basic challenge, never a crash. A store failure during
// lookup surfaces as 500 and is never reported as bad credentials.
func AuthenticationMiddleware(
	authenticator authUseCase.Authenticator,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := authService.ParseBasicAuth(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed basic credentials")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			logger.Debug("authentication failed", slog.String("email", email))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated user in context
		ctx := WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", user.ID.Hex()),
			slog.String("role", string(user.Role)))

		c.Next()
	}
}

// RequireRole provides role-based authorization for authenticated users.
//
// MUST be used after AuthenticationMiddleware. The request continues only if
// the authenticated user's role is one of the given roles; otherwise the
// request is rejected with 403. A missing user in context means the
// authentication middleware did not run and yields 401.
func RequireRole(logger *slog.Logger, roles ...userDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c.Request.Context())
		if !ok || user == nil {
			logger.Debug("authorization failed: no authenticated user in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		logger.Debug("authorization failed: insufficient role",
			slog.String("user_id", user.ID.Hex()),
			slog.String("role", string(user.Role)),
			slog.String("path", c.Request.URL.Path))
		httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
		c.Abort()
	}
}
