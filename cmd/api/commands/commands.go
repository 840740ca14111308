package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marketplace/core/internal/adapters/repository"
	"github.com/marketplace/core/internal/application/services"
	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/infrastructure/config"
	"github.com/marketplace/core/internal/infrastructure/logger"
	"github.com/marketplace/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Marketplace API server",
		Long:  "Start the Marketplace API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command, which populates an empty store
// with sample data for local development.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the document store with sample data",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Marketplace API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Marketplace API v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// The store opens before the listener starts; an unreadable data file is
	// a fatal startup error, not a per-request surprise.
	store := repository.NewFileDocumentStore(cfg.Store.Path, appLogger)
	if err := store.Open(); err != nil {
		appLogger.Fatal("Failed to open document store", "error", err)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create server", "error", err)
	}

	go func() {
		if err := srv.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	store := repository.NewFileDocumentStore(cfg.Store.Path, appLogger)
	if err := store.Open(); err != nil {
		appLogger.Fatal("Failed to open document store", "error", err)
	}

	ctx := context.Background()
	doc, err := store.Load(ctx)
	if err != nil {
		appLogger.Fatal("Failed to load document store", "error", err)
	}
	if len(doc.Products) > 0 || len(doc.Orders) > 0 || len(doc.Users) > 0 {
		appLogger.Info("Store already has data, skipping seed", "path", cfg.Store.Path)
		return
	}

	productRepo := repository.NewProductRepository(store)
	productService := services.NewProductService(productRepo, appLogger)

	samples := []map[string]any{
		{"name": "Wireless Mouse", "sellerId": "seller-demo-1", "price": 24.99, "category": "electronics"},
		{"name": "Mechanical Keyboard", "sellerId": "seller-demo-1", "price": 89.00, "category": "electronics"},
		{"name": "Ceramic Mug", "sellerId": "seller-demo-2", "price": 12.50, "category": "home"},
	}
	for _, fields := range samples {
		if _, err := productService.CreateProduct(ctx, fields); err != nil {
			appLogger.Fatal("Failed to seed product", "error", err)
		}
	}

	if err := store.Update(ctx, func(doc *entities.Document) error {
		doc.Users = append(doc.Users,
			entities.User{"id": "user-demo-1", "name": "Demo Buyer"},
			entities.User{"id": "seller-demo-1", "name": "Demo Seller"},
		)
		return nil
	}); err != nil {
		appLogger.Fatal("Failed to seed users", "error", err)
	}

	appLogger.Info("Seeded document store", "path", cfg.Store.Path, "products", len(samples))
}
