package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusgpt/portal-api/api/swagger"
	"github.com/campusgpt/portal-api/internal/clients"
	"github.com/campusgpt/portal-api/internal/handler"
	"github.com/campusgpt/portal-api/internal/middleware"
	"github.com/campusgpt/portal-api/internal/models"
	"github.com/campusgpt/portal-api/internal/repository"
	"github.com/campusgpt/portal-api/internal/service"
	"github.com/campusgpt/portal-api/pkg/cache"
	"github.com/campusgpt/portal-api/pkg/config"
	"github.com/campusgpt/portal-api/pkg/logger"
	corsmiddleware "github.com/campusgpt/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusgpt/portal-api/pkg/middleware/requestid"
)

// @title Campus Portal API
// @version 1.0.0
// @description Campus portal backend with session auth, scoped reference data, and an AI assistant proxy
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

	validate := validator.New()

	userRepo := repository.NewUserRepository()
	if err := userRepo.Seed(repository.SeedUsers()); err != nil {
		logr.Sugar().Fatalw("failed to seed users", "error", err)
	}
	sessionRepo := repository.NewSessionRepository()
	campusRepo := repository.NewCampusRepository(
		repository.SeedTimetable(),
		repository.SeedExams(),
		repository.SeedEvents(),
		repository.SeedFaculty(),
		repository.SeedNotifications(),
	)

	metricsSvc := service.NewMetricsService(sessionRepo.Count)

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, assistant cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	authSvc := service.NewAuthService(userRepo, sessionRepo, validate, logr, service.AuthConfig{
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		Issuer:        "campus-portal",
	})
	campusSvc := service.NewCampusService(campusRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(userRepo, sessionRepo, metricsSvc, logr)
	assistantSvc := service.NewAssistantService(
		clients.NewOllamaClient(clients.OllamaConfig{
			Host:    cfg.Assistant.Host,
			Model:   cfg.Assistant.Model,
			Timeout: cfg.Assistant.Timeout,
		}),
		campusSvc,
		cacheSvc,
		metricsSvc,
		logr,
	)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Session)
	campusHandler := handler.NewCampusHandler(campusSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	assistantHandler := handler.NewAssistantHandler(assistantSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Session(authSvc, cfg.Session.CookieName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)

		api.GET("/dashboard-metrics", dashboardHandler.Metrics)
		api.GET("/analytics", dashboardHandler.Analytics)

		api.GET("/timetable", campusHandler.Timetable)
		api.GET("/timetable/export", campusHandler.ExportTimetable)
		api.GET("/exams", campusHandler.Exams)
		api.GET("/exams/export", campusHandler.ExportExams)
		api.GET("/events", campusHandler.Events)
		api.POST("/events", middleware.RequireRoles(models.RoleFaculty), campusHandler.PostEvent)
		api.GET("/faculty", campusHandler.Faculty)
		api.GET("/notifications", campusHandler.Notifications)

		api.POST("/chat", assistantHandler.Chat)
		api.POST("/doubt-solver", assistantHandler.DoubtSolver)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
