// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	authUsecase "github.com/anhminh10a2hoa/webshop/internal/auth/usecase"
	"github.com/anhminh10a2hoa/webshop/internal/config"
	"github.com/anhminh10a2hoa/webshop/internal/database"
	"github.com/anhminh10a2hoa/webshop/internal/http"
	"github.com/anhminh10a2hoa/webshop/internal/metrics"
	orderHTTP "github.com/anhminh10a2hoa/webshop/internal/order/http"
	orderRepository "github.com/anhminh10a2hoa/webshop/internal/order/repository"
	orderUsecase "github.com/anhminh10a2hoa/webshop/internal/order/usecase"
	productHTTP "github.com/anhminh10a2hoa/webshop/internal/product/http"
	productRepository "github.com/anhminh10a2hoa/webshop/internal/product/repository"
	productUsecase "github.com/anhminh10a2hoa/webshop/internal/product/usecase"
	userHTTP "github.com/anhminh10a2hoa/webshop/internal/user/http"
	userRepository "github.com/anhminh10a2hoa/webshop/internal/user/repository"
	userUsecase "github.com/anhminh10a2hoa/webshop/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	client          *mongo.Client
	db              *mongo.Database
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	userRepo    userUsecase.UserRepository
	productRepo productUsecase.ProductRepository
	orderRepo   orderUsecase.OrderRepository

	// Use Cases
	userUseCase    userUsecase.UseCase
	productUseCase productUsecase.UseCase
	orderUseCase   orderUsecase.UseCase

	// Authentication
	authenticator authUsecase.Authenticator

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                 sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsInit         sync.Once
	businessMetricsInit sync.Once
	userRepoInit        sync.Once
	productRepoInit     sync.Once
	orderRepoInit       sync.Once
	userUseCaseInit     sync.Once
	productUseCaseInit  sync.Once
	orderUseCaseInit    sync.Once
	authenticatorInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Database returns the application database handle, connecting on first access.
// Indexes the repositories rely on are created here so a fresh database is
// usable no matter which command opened the connection.
func (c *Container) Database() (*mongo.Database, error) {
	c.dbInit.Do(func() {
		client, err := database.Connect(database.Config{
			URL:            c.config.DBURL,
			Database:       c.config.DBName,
			ConnectTimeout: c.config.DBConnectTimeout,
		})
		if err != nil {
			c.initErrors["db"] = fmt.Errorf("failed to connect to database: %w", err)
			return
		}

		db := client.Database(c.config.DBName)

		ctx, cancel := context.WithTimeout(context.Background(), c.config.DBConnectTimeout)
		defer cancel()
		if err := database.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			c.initErrors["db"] = fmt.Errorf("failed to create database indexes: %w", err)
			return
		}

		c.client = client
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MongoClient returns the underlying client, used for readiness pings.
func (c *Container) MongoClient() (*mongo.Client, error) {
	if _, err := c.Database(); err != nil {
		return nil, err
	}
	return c.client, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metrics"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metrics"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled it returns a no-op implementation so callers never branch.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}

		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = businessMetrics
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		db, err := c.Database()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}
		c.userRepo = userRepository.NewMongoDBUserRepository(db)
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// ProductRepository returns the product repository instance.
func (c *Container) ProductRepository() (productUsecase.ProductRepository, error) {
	c.productRepoInit.Do(func() {
		db, err := c.Database()
		if err != nil {
			c.initErrors["productRepo"] = fmt.Errorf("failed to get database for product repository: %w", err)
			return
		}
		c.productRepo = productRepository.NewMongoDBProductRepository(db)
	})
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// OrderRepository returns the order repository instance.
func (c *Container) OrderRepository() (orderUsecase.OrderRepository, error) {
	c.orderRepoInit.Do(func() {
		db, err := c.Database()
		if err != nil {
			c.initErrors["orderRepo"] = fmt.Errorf("failed to get database for order repository: %w", err)
			return
		}
		c.orderRepo = orderRepository.NewMongoDBOrderRepository(db)
	})
	if storedErr, exists := c.initErrors["orderRepo"]; exists {
		return nil, storedErr
	}
	return c.orderRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		useCase, err := userUsecase.NewUserUseCase(userRepo, c.config.PasswordMinLength)
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to create user use case: %w", err)
			return
		}

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["userUseCase"] = fmt.Errorf("failed to get business metrics for user use case: %w", err)
				return
			}
			useCase = userUsecase.NewUserUseCaseWithMetrics(useCase, businessMetrics)
		}

		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// ProductUseCase returns the product use case instance.
func (c *Container) ProductUseCase() (productUsecase.UseCase, error) {
	c.productUseCaseInit.Do(func() {
		productRepo, err := c.ProductRepository()
		if err != nil {
			c.initErrors["productUseCase"] = fmt.Errorf(
				"failed to get product repository for product use case: %w", err)
			return
		}
		useCase := productUsecase.NewProductUseCase(productRepo)

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["productUseCase"] = fmt.Errorf(
					"failed to get business metrics for product use case: %w", err)
				return
			}
			useCase = productUsecase.NewProductUseCaseWithMetrics(useCase, businessMetrics)
		}

		c.productUseCase = useCase
	})
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// OrderUseCase returns the order use case instance.
func (c *Container) OrderUseCase() (orderUsecase.UseCase, error) {
	c.orderUseCaseInit.Do(func() {
		orderRepo, err := c.OrderRepository()
		if err != nil {
			c.initErrors["orderUseCase"] = fmt.Errorf("failed to get order repository for order use case: %w", err)
			return
		}

		productRepo, err := c.ProductRepository()
		if err != nil {
			c.initErrors["orderUseCase"] = fmt.Errorf("failed to get product repository for order use case: %w", err)
			return
		}

		useCase := orderUsecase.NewOrderUseCase(orderRepo, productRepo)

		// Wrap with metrics if enabled
		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["orderUseCase"] = fmt.Errorf("failed to get business metrics for order use case: %w", err)
				return
			}
			useCase = orderUsecase.NewOrderUseCaseWithMetrics(useCase, businessMetrics)
		}

		c.orderUseCase = useCase
	})
	if storedErr, exists := c.initErrors["orderUseCase"]; exists {
		return nil, storedErr
	}
	return c.orderUseCase, nil
}

// Authenticator returns the basic credentials authenticator.
func (c *Container) Authenticator() (authUsecase.Authenticator, error) {
	c.authenticatorInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["authenticator"] = fmt.Errorf("failed to get user repository for authenticator: %w", err)
			return
		}

		authenticator, err := authUsecase.NewBasicAuthenticator(userRepo)
		if err != nil {
			c.initErrors["authenticator"] = fmt.Errorf("failed to create authenticator: %w", err)
			return
		}
		c.authenticator = authenticator
	})
	if storedErr, exists := c.initErrors["authenticator"]; exists {
		return nil, storedErr
	}
	return c.authenticator, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		logger := c.Logger()

		client, err := c.MongoClient()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get database client for http server: %w", err)
			return
		}

		authenticator, err := c.Authenticator()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get authenticator for http server: %w", err)
			return
		}

		userUseCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get user use case for http server: %w", err)
			return
		}

		productUseCase, err := c.ProductUseCase()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get product use case for http server: %w", err)
			return
		}

		orderUseCase, err := c.OrderUseCase()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get order use case for http server: %w", err)
			return
		}

		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get metrics provider for http server: %w", err)
			return
		}

		handlers := http.Handlers{
			User:    userHTTP.NewUserHandler(userUseCase, logger),
			Product: productHTTP.NewProductHandler(productUseCase, logger),
			Order:   orderHTTP.NewOrderHandler(orderUseCase, logger),
		}

		c.httpServer = http.NewServer(c.config, client, authenticator, handlers, metricsProvider, logger)
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		metricsProvider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
			return
		}
		if metricsProvider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			metricsProvider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Shutdown HTTP server if initialized
	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	// Shutdown metrics server if initialized
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	// Flush pending metrics if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Disconnect from the database if connected
	if c.client != nil {
		if err := c.client.Disconnect(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database disconnect: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
