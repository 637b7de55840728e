package server

import (
	"net/http"

	"ecommerce-admin-api/internal/config"
	"ecommerce-admin-api/internal/handler"
	authmw "ecommerce-admin-api/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Webhook  *handler.WebhookHandler
	Order    *handler.OrderHandler
	Checkout *handler.CheckoutHandler
	Product  *handler.ProductHandler
	Catalog  *handler.CatalogHandler
	Content  *handler.ContentHandler
	Pricing  *handler.PricingHandler
	Shipping *handler.ShippingHandler
}

type Server struct {
	echo     *echo.Echo
	handlers Handlers
}

func NewServer(cfg *config.Config, handlers Handlers) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Store.FrontendURL, "http://localhost:3000", "http://localhost:3001"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "x-payment-method"},
		MaxAge:       86400,
	}))

	s := &Server{
		echo:     e,
		handlers: handlers,
	}

	s.setupRoutes(cfg)
	return s
}

func (s *Server) setupRoutes(cfg *config.Config) {
	h := s.handlers
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- storefront (no auth) --------
	api.POST("/checkout", h.Checkout.Checkout)
	api.POST("/checkout/webhook", h.Webhook.HandleNotification)
	api.POST("/transfer", h.Checkout.Transfer)
	api.GET("/shipping", h.Shipping.GetShipping)
	api.GET("/public/billboards", h.Content.ListPublicBillboards)
	api.GET("/public/posts", h.Content.ListPosts)

	api.GET("/products", h.Product.ListProducts)
	api.GET("/products/:productId", h.Product.GetProduct)
	api.GET("/categories", h.Catalog.ListCategories)
	api.GET("/categories/:categoryId", h.Catalog.GetCategory)
	api.GET("/subcategories", h.Catalog.ListSubcategories)
	api.GET("/providers", h.Catalog.ListProviders)
	api.GET("/colors", h.Catalog.ListColors)
	api.GET("/billboards", h.Content.ListBillboards)
	api.GET("/posts", h.Content.ListPosts)
	api.GET("/orders/:orderId", h.Order.GetOrder)

	// -------- dashboard (authenticated) --------
	auth := api.Group("", authmw.AuthRequired(cfg.Auth.JWTSecret))

	auth.GET("/orders", h.Order.ListOrders)
	auth.DELETE("/orders/:orderId", h.Order.DeleteOrder)

	auth.POST("/products", h.Product.CreateProduct)
	auth.PATCH("/products/:productId", h.Product.UpdateProduct)
	auth.DELETE("/products/:productId", h.Product.DeleteProduct)

	auth.POST("/subcategories", h.Catalog.CreateSubcategory)
	auth.PATCH("/subcategories/:subcategoryId", h.Catalog.UpdateSubcategory)
	auth.DELETE("/subcategories/:subcategoryId", h.Catalog.DeleteSubcategory)

	auth.POST("/providers", h.Catalog.CreateProvider)
	auth.PATCH("/providers/:providerId", h.Catalog.UpdateProvider)
	auth.DELETE("/providers/:providerId", h.Catalog.DeleteProvider)

	auth.POST("/colors", h.Catalog.CreateColor)
	auth.PATCH("/colors/:colorId", h.Catalog.UpdateColor)
	auth.DELETE("/colors/:colorId", h.Catalog.DeleteColor)

	auth.POST("/billboards", h.Content.CreateBillboard)
	auth.PATCH("/billboards/:billboardId", h.Content.UpdateBillboard)
	auth.DELETE("/billboards/:billboardId", h.Content.DeleteBillboard)

	auth.POST("/price-updates", h.Pricing.ApplyPriceUpdate)
	auth.GET("/price-updates/preview", h.Pricing.PreviewPriceUpdate)

	// -------- admin only --------
	admin := api.Group("", authmw.AuthRequired(cfg.Auth.JWTSecret), authmw.RequireAdmin())

	admin.PATCH("/orders/:orderId", h.Order.UpdateOrder)

	admin.POST("/categories", h.Catalog.CreateCategory)
	admin.PATCH("/categories/:categoryId", h.Catalog.UpdateCategory)
	admin.DELETE("/categories/:categoryId", h.Catalog.DeleteCategory)

	admin.POST("/posts", h.Content.CreatePost)
	admin.DELETE("/posts/:postId", h.Content.DeletePost)

	admin.PATCH("/shipping", h.Shipping.UpdateShipping)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
