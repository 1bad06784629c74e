package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/server/http/handlers"
	"github.com/polkiloo/suitopia/internal/server/http/middleware"
)

// Options carries the router settings that do not come from the facade.
type Options struct {
	UploadDir      string
	UploadMaxBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	Metrics        middleware.RequestRecorder
	MetricsHandler http.Handler
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, opts Options, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	if opts.Metrics != nil {
		engine.Use(middleware.Metrics(opts.Metrics))
	}
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	admin := middleware.AdminRequired(facade)
	limiter := middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, logger)
	throttle := limiter.Handler()

	orderHandler := handlers.NewOrderHandler(facade)
	contentHandler := handlers.NewContentHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade, opts.UploadMaxBytes)
	mediaHandler := handlers.NewMediaHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	if opts.MetricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}
	if opts.UploadDir != "" {
		engine.Static("/uploads", opts.UploadDir)
	}

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("/create-adoption", throttle, orderHandler.CreateAdoption)
	orders.POST("/create-commission", throttle, orderHandler.CreateCommission)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", admin, orderHandler.Update)
	orders.DELETE("/:id", admin, orderHandler.Delete)
	orders.POST("/:id/cancel", throttle, orderHandler.Cancel)
	orders.POST("/:id/reinstate", admin, orderHandler.Reinstate)
	orders.POST("/:id/confirm", orderHandler.Confirm)

	handlers.NewCatalogHandler(facade.SeriesCatalog()).
		Register(api.Group("/character-series"), admin)
	handlers.NewCatalogHandler(facade.CharacterCatalog(), handlers.QueryFilter[model.Character]{
		Param: "seriesId",
		Match: func(c *model.Character, v string) bool { return c.SeriesID == v },
	}).Register(api.Group("/characters"), admin)
	handlers.NewCatalogHandler(facade.CommissionCatalog()).
		Register(api.Group("/commissions"), admin)
	handlers.NewCatalogHandler(facade.StyleCatalog(), handlers.QueryFilter[model.CommissionStyle]{
		Param: "commissionOptionId",
		Match: func(s *model.CommissionStyle, v string) bool { return s.CommissionOptionID == v },
	}).Register(api.Group("/commission-styles"), admin)

	api.GET("/site-content", contentHandler.SiteContent)
	api.POST("/site-content", admin, contentHandler.SaveSiteContent)
	api.GET("/contracts", contentHandler.Contracts)
	api.POST("/contracts", admin, contentHandler.SaveContracts)
	api.GET("/theme", contentHandler.Theme)

	api.POST("/upload", throttle, uploadHandler.Upload)
	api.GET("/apod", mediaHandler.PictureOfTheDay)
	api.POST("/admin/login", throttle, adminHandler.Login)

	return engine
}
