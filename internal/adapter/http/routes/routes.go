package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "crane_fmv/docs" // swagger spec registration
	"crane_fmv/internal/config"
	"crane_fmv/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const startupTimeout = 30 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Install(log)()
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.HTTP.GinMode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	deps, err := BuildDependencies(ctx, cfg, registry)
	cancel()
	if err != nil {
		log.Fatal("failed to wire dependencies", zap.Error(err))
	}

	router := NewRouter(deps, registry)
	log.Info("http server starting",
		zap.Int("port", cfg.HTTP.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("artifact_store", cfg.Artifacts.Store))

	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter mounts every route on a fresh engine. gatherer backs /metrics.
func NewRouter(deps Dependencies, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportRoutes(v1, deps.ReportHandler)
	addPricingRoutes(v1, deps.PricingHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "ROUTE_NOT_FOUND", "message": "Route not found"})
	})
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logger.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.L().Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
