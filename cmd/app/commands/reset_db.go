package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/go-pwdhash"

	"github.com/anhminh10a2hoa/webshop/internal/app"
	"github.com/anhminh10a2hoa/webshop/internal/config"
	"github.com/anhminh10a2hoa/webshop/internal/database"
	productDomain "github.com/anhminh10a2hoa/webshop/internal/product/domain"
	userDomain "github.com/anhminh10a2hoa/webshop/internal/user/domain"
)

// seedUser is one entry of the users.json fixture. Passwords are plain text
// in the fixture and hashed before insertion.
type seedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// seedProduct is one entry of the products.json fixture.
type seedProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// RunResetDB drops the application collections, recreates the indexes, and
// loads the seed fixtures from the given directory.
func RunResetDB(ctx context.Context, seedDir string) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	db, err := container.Database()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, name := range []string{
		database.UsersCollection,
		database.ProductsCollection,
		database.OrdersCollection,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
		logger.Info("collection dropped", slog.String("collection", name))
	}

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if err := seedUsers(ctx, container, seedDir); err != nil {
		return err
	}
	if err := seedProducts(ctx, container, seedDir); err != nil {
		return err
	}

	logger.Info("database reset complete")
	return nil
}

func seedUsers(ctx context.Context, container *app.Container, seedDir string) error {
	var fixtures []seedUser
	if err := loadFixture(filepath.Join(seedDir, "users.json"), &fixtures); err != nil {
		return err
	}

	userRepo, err := container.UserRepository()
	if err != nil {
		return fmt.Errorf("failed to get user repository: %w", err)
	}

	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	logger := container.Logger()
	for _, fixture := range fixtures {
		role := userDomain.Role(fixture.Role)
		if !role.Valid() {
			return fmt.Errorf("fixture user %s has invalid role %q", fixture.Email, fixture.Role)
		}

		hashedPassword, err := hasher.Hash([]byte(fixture.Password))
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", fixture.Email, err)
		}

		user := &userDomain.User{
			Name:     fixture.Name,
			Email:    fixture.Email,
			Password: hashedPassword,
			Role:     role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", fixture.Email, err)
		}
		logger.Info("user seeded",
			slog.String("email", user.Email),
			slog.String("role", string(user.Role)))
	}

	return nil
}

func seedProducts(ctx context.Context, container *app.Container, seedDir string) error {
	var fixtures []seedProduct
	if err := loadFixture(filepath.Join(seedDir, "products.json"), &fixtures); err != nil {
		return err
	}

	productRepo, err := container.ProductRepository()
	if err != nil {
		return fmt.Errorf("failed to get product repository: %w", err)
	}

	logger := container.Logger()
	for _, fixture := range fixtures {
		product := &productDomain.Product{
			Name:        fixture.Name,
			Price:       fixture.Price,
			Description: fixture.Description,
			Image:       fixture.Image,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", fixture.Name, err)
		}
		logger.Info("product seeded", slog.String("name", product.Name))
	}

	return nil
}

// loadFixture reads and decodes a JSON fixture file.
func loadFixture(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return nil
}
