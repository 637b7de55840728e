package main

import (
	"context"
	"ecommerce-admin-api/internal/client"
	"ecommerce-admin-api/internal/config"
	"ecommerce-admin-api/internal/handler"
	"ecommerce-admin-api/internal/repository"
	"ecommerce-admin-api/internal/server"
	"ecommerce-admin-api/internal/service"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitDatabase(&cfg.Database)
	mercadopagoClient := client.NewMercadoPagoClient(&cfg.MercadoPago)

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	colorRepo := repository.NewColorRepository(db)
	billboardRepo := repository.NewBillboardRepository(db)
	postRepo := repository.NewPostRepository(db)

	orderService := service.NewOrderService(db, orderRepo, productRepo)
	checkoutService := service.NewCheckoutService(
		db, mercadopagoClient, &cfg.Store, cfg.BaseURL,
		productRepo,
		orderRepo,
	)
	pricingService := service.NewPricingService(productRepo)
	catalogService := service.NewCatalogService(
		productRepo,
		categoryRepo,
		subcategoryRepo,
		providerRepo,
		colorRepo,
		billboardRepo,
		postRepo,
	)

	handlers := server.Handlers{
		Webhook:  handler.NewWebhookHandler(mercadopagoClient, orderService),
		Order:    handler.NewOrderHandler(orderService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Product:  handler.NewProductHandler(catalogService),
		Catalog:  handler.NewCatalogHandler(catalogService),
		Content:  handler.NewContentHandler(catalogService),
		Pricing:  handler.NewPricingHandler(pricingService),
		Shipping: handler.NewShippingHandler(&cfg.Store),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg, handlers)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
