package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/f1rstgear/gearflow/internal/server/http/handlers"
	"github.com/f1rstgear/gearflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.IntakeFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")
	api.POST("/session", authHandler.CreateSession)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("/process", orderHandler.Process)
	orders.GET("/export", orderHandler.Export)
	orders.GET("/json", orderHandler.JSON)
	orders.POST("/push", orderHandler.Push)
	orders.POST("/report", reportHandler.Generate)
	orders.GET("/report", reportHandler.Last)

	return engine
}
