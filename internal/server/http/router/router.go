package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopworks/storefront/internal/cache"
	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/metrics"
	"github.com/shopworks/storefront/internal/server/http/handlers"
	"github.com/shopworks/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, logger *slog.Logger, m *metrics.Metrics, store cache.Store, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CollectMetrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	authRequired := middleware.AuthRequired(facade)
	adminOnly := middleware.AdminRequired()
	cached := middleware.CacheResponse(store, cfg.CacheTTL, m)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/verify-email", authHandler.VerifyEmail)
	auth.POST("/resend-verification", authHandler.ResendVerification)
	auth.GET("/profile", authRequired, authHandler.Profile)

	users := api.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	me := api.Group("/me", authRequired)
	me.GET("/client", clientHandler.Me)

	clients := api.Group("/clients", authRequired, adminOnly)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	products := api.Group("/products")
	products.GET("", cached, productHandler.List)
	products.GET("/:id", cached, productHandler.Get)
	products.POST("", authRequired, adminOnly, productHandler.Create)
	products.PUT("/:id", authRequired, adminOnly, productHandler.Update)
	products.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)

	cart := api.Group("/cart", authRequired)
	cart.GET("", cartHandler.List)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.Add)
	cart.PATCH("/items/:id", cartHandler.Update)
	cart.DELETE("/items/:id", cartHandler.Remove)
	cart.POST("/checkout", orderHandler.Checkout)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.POST("/:id/payment", adminOnly, orderHandler.ConfirmPayment)
	orders.PATCH("/:id/status", adminOnly, orderHandler.UpdateStatus)

	reports := api.Group("/reports", authRequired, adminOnly)
	reports.POST("", reportHandler.Create)
	reports.GET("", reportHandler.List)
	reports.GET("/:id", reportHandler.Get)

	sales := api.Group("/sales", authRequired, adminOnly)
	sales.GET("/summary", reportHandler.Summary)

	return engine
}
