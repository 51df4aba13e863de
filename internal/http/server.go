// Package http provides the API HTTP server: route table, authorization
// gates, and server lifecycle.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	authHTTP "github.com/anhminh10a2hoa/webshop/internal/auth/http"
	authUseCase "github.com/anhminh10a2hoa/webshop/internal/auth/usecase"
	"github.com/anhminh10a2hoa/webshop/internal/config"
	"github.com/anhminh10a2hoa/webshop/internal/httputil"
	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	orderHTTP "github.com/anhminh10a2hoa/webshop/internal/order/http"
	productHTTP "github.com/anhminh10a2hoa/webshop/internal/product/http"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
	userHTTP "github.com/anhminh10a2hoa/webshop/internal/user/http"
)

// Handlers bundles the domain HTTP handlers wired into the route table.
type Handlers struct {
	User    *userHTTP.UserHandler
	Product *productHTTP.ProductHandler
	Order   *orderHTTP.OrderHandler
}

// Server represents the API HTTP server.
type Server struct {
	server    *http.Server
	router    *gin.Engine
	client    *mongo.Client
	publicDir string
	logger    *slog.Logger
}

// NewServer creates a new API server with the full route table registered.
func NewServer(
	cfg *config.Config,
	client *mongo.Client,
	authenticator authUseCase.Authenticator,
	handlers Handlers,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	s := &Server{
		client:    client,
		publicDir: cfg.PublicDir,
		logger:    logger,
	}
	s.router = s.setupRouter(cfg, authenticator, handlers, metricsProvider)
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRouter builds the gin engine. Every API request passes the same gate
// sequence: preflight short-circuit, route and method match, ID shape check,
// content negotiation, authentication, role check, body content type, handler.
func (s *Server) setupRouter(
	cfg *config.Config,
	authenticator authUseCase.Authenticator,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Preflight per route table entry. OPTIONS on any other path falls
	// through to the 404 handler.
	for _, route := range apiRoutes {
		router.OPTIONS(route.Pattern, preflightHandler(route.Methods))
	}

	idGate := ValidateResourceID(s.logger)
	acceptJSON := RequireJSONAccept(s.logger)
	jsonBody := RequireJSONBody(s.logger)
	authn := authHTTP.AuthenticationMiddleware(authenticator, s.logger)
	adminOnly := authHTTP.RequireRole(s.logger, userDomain.RoleAdmin)
	customerOnly := authHTTP.RequireRole(s.logger, userDomain.RoleCustomer)
	anyRole := authHTTP.RequireRole(s.logger, userDomain.RoleAdmin, userDomain.RoleCustomer)

	// Registration is the only unauthenticated API operation and gets an
	// IP-based rate limit instead.
	registerChain := []gin.HandlerFunc{acceptJSON}
	if cfg.RateLimitRegisterEnabled {
		registerChain = append(registerChain, authHTTP.RegisterRateLimitMiddleware(
			cfg.RateLimitRegisterRequestsPerSec,
			cfg.RateLimitRegisterBurst,
			s.logger,
		))
	}
	registerChain = append(registerChain, jsonBody, handlers.User.RegisterHandler)
	router.POST("/api/register", registerChain...)

	// Users: admin only.
	router.GET("/api/users", acceptJSON, authn, adminOnly, handlers.User.ListHandler)
	router.GET("/api/users/:id", idGate, acceptJSON, authn, adminOnly, handlers.User.GetHandler)
	router.PUT("/api/users/:id", idGate, acceptJSON, authn, adminOnly, jsonBody, handlers.User.UpdateRoleHandler)
	router.DELETE("/api/users/:id", idGate, acceptJSON, authn, adminOnly, handlers.User.DeleteHandler)

	// Products: reads for every authenticated user, writes admin only.
	router.GET("/api/products", acceptJSON, authn, anyRole, handlers.Product.ListHandler)
	router.POST("/api/products", acceptJSON, authn, adminOnly, jsonBody, handlers.Product.CreateHandler)
	router.GET("/api/products/:id", idGate, acceptJSON, authn, anyRole, handlers.Product.GetHandler)
	router.PUT("/api/products/:id", idGate, acceptJSON, authn, adminOnly, jsonBody, handlers.Product.UpdateHandler)
	router.DELETE("/api/products/:id", idGate, acceptJSON, authn, adminOnly, handlers.Product.DeleteHandler)

	// Orders: placing an order is a customer action, reads are scoped per
	// requester inside the use case.
	router.GET("/api/orders", acceptJSON, authn, anyRole, handlers.Order.ListHandler)
	router.POST("/api/orders", acceptJSON, authn, customerOnly, jsonBody, handlers.Order.CreateHandler)
	router.GET("/api/orders/:id", idGate, acceptJSON, authn, anyRole, handlers.Order.GetHandler)

	router.NoMethod(methodNotAllowedHandler)
	router.NoRoute(s.noRouteHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can answer API requests, which
// requires a reachable database.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.client == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// noRouteHandler serves static files for non-API GET requests and answers
// everything else with 404.
func (s *Server) noRouteHandler(c *gin.Context) {
	if c.Request.Method == http.MethodGet &&
		!strings.HasPrefix(c.Request.URL.Path, "/api") &&
		s.publicDir != "" {
		if file, ok := s.resolveStaticFile(c.Request.URL.Path); ok {
			c.File(file)
			return
		}
	}

	c.JSON(http.StatusNotFound, httputil.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found",
	})
}

// resolveStaticFile maps a URL path to a file under the public directory.
// The path is cleaned against traversal and directories resolve to their
// index.html.
func (s *Server) resolveStaticFile(urlPath string) (string, bool) {
	cleaned := filepath.Clean("/" + urlPath)
	fullPath := filepath.Join(s.publicDir, cleaned)

	info, err := os.Stat(fullPath)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		fullPath = filepath.Join(fullPath, "index.html")
		if _, err := os.Stat(fullPath); err != nil {
			return "", false
		}
	}
	return fullPath, true
}
