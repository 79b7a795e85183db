package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/artesania-dev/joyeria-api/api/swagger"
	"github.com/artesania-dev/joyeria-api/internal/handler"
	"github.com/artesania-dev/joyeria-api/internal/middleware"
	"github.com/artesania-dev/joyeria-api/internal/repository"
	"github.com/artesania-dev/joyeria-api/internal/service"
	"github.com/artesania-dev/joyeria-api/pkg/cache"
	"github.com/artesania-dev/joyeria-api/pkg/config"
	"github.com/artesania-dev/joyeria-api/pkg/database"
	"github.com/artesania-dev/joyeria-api/pkg/logger"
	corsmiddleware "github.com/artesania-dev/joyeria-api/pkg/middleware/cors"
	reqidmiddleware "github.com/artesania-dev/joyeria-api/pkg/middleware/requestid"
	"github.com/artesania-dev/joyeria-api/pkg/response"
)

// @title Joyeria Catalog API
// @version 1.0.0
// @description Content management backend for the artisan jewelry catalog site
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to ensure database schema", "error", err)
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, read cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cacheRepo != nil)

	siteConfigRepo := repository.NewSiteConfigRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	itemRepo := repository.NewItemRepository(db)

	siteConfigSvc := service.NewSiteConfigService(siteConfigRepo, cacheSvc, validate, logr,
		cfg.Admin.DefaultUsername, cfg.Admin.DefaultPassword)
	authSvc := service.NewAuthService(siteConfigRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	collectionSvc := service.NewCollectionService(collectionRepo, cacheSvc, validate, logr)
	itemSvc := service.NewItemService(itemRepo, cacheSvc, validate, logr)
	seedSvc := service.NewSeedService(collectionRepo, itemRepo, cacheSvc, logr)

	// The config row must exist before the first request so login and
	// GET /config never race its creation.
	if err := siteConfigSvc.EnsureDefault(ctx); err != nil {
		logr.Sugar().Fatalw("failed to initialize site configuration", "error", err)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	siteConfigHandler := handler.NewSiteConfigHandler(siteConfigSvc)
	collectionHandler := handler.NewCollectionHandler(collectionSvc)
	itemHandler := handler.NewItemHandler(itemSvc)
	seedHandler := handler.NewSeedHandler(seedSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	guard := middleware.JWT(authSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/config", siteConfigHandler.Get)
		api.PUT("/config", guard, siteConfigHandler.Update)

		api.GET("/collections", collectionHandler.List)
		api.POST("/collections", guard, collectionHandler.Create)
		api.PUT("/collections/:id", guard, collectionHandler.Update)
		api.DELETE("/collections/:id", guard, collectionHandler.Delete)
		api.GET("/collections/:id/items", itemHandler.ListByCollection)

		api.GET("/jewelry-items", itemHandler.ListAll)
		api.POST("/jewelry-items", guard, itemHandler.Create)
		api.PUT("/jewelry-items/:id", guard, itemHandler.Update)
		api.DELETE("/jewelry-items/:id", guard, itemHandler.Delete)

		api.POST("/init-demo-data", seedHandler.Seed)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
