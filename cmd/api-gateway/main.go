package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/inclusivo-app/campus-api/api/swagger"
	"github.com/inclusivo-app/campus-api/internal/handler"
	"github.com/inclusivo-app/campus-api/internal/haptics"
	"github.com/inclusivo-app/campus-api/internal/middleware"
	"github.com/inclusivo-app/campus-api/internal/repository"
	"github.com/inclusivo-app/campus-api/internal/seed"
	"github.com/inclusivo-app/campus-api/internal/service"
	"github.com/inclusivo-app/campus-api/internal/speech"
	"github.com/inclusivo-app/campus-api/pkg/cache"
	"github.com/inclusivo-app/campus-api/pkg/config"
	"github.com/inclusivo-app/campus-api/pkg/database"
	"github.com/inclusivo-app/campus-api/pkg/logger"
	corsmiddleware "github.com/inclusivo-app/campus-api/pkg/middleware/cors"
	reqidmiddleware "github.com/inclusivo-app/campus-api/pkg/middleware/requestid"
)

// @title Campus Access API
// @version 1.0.0
// @description Accessible campus companion backend: schedule, navigation, notifications and assistive feedback
// @BasePath /api/v1
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	validate := validator.New()

	// Postgres is optional. When it is absent or empty the bundled campus
	// data keeps the app usable offline.
	roster := seed.Roster()
	directory := seed.Directory()
	if db, err := database.NewPostgres(cfg.Database); err != nil {
		logr.Warn("postgres unavailable, using bundled data", zap.Error(err))
	} else {
		defer db.Close()
		if sessions, err := repository.NewSessionRepository(db).List(ctx); err != nil {
			logr.Warn("failed to load class sessions, using bundled data", zap.Error(err))
		} else if len(sessions) > 0 {
			roster = sessions
		}
		if locations, err := repository.NewLocationRepository(db).List(ctx); err != nil {
			logr.Warn("failed to load campus locations, using bundled data", zap.Error(err))
		} else if len(locations) > 0 {
			directory = locations
		}
	}

	// Redis is optional as well. The settings repository treats a nil
	// client as an empty store, so everything falls back to defaults.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, settings will not persist", zap.Error(err))
		redisClient = nil
	}
	settingsRepo := repository.NewSettingsRepository(redisClient, logr)
	defer settingsRepo.Close() //nolint:errcheck

	settingsSvc := service.NewSettingsService(settingsRepo, logr)
	settingsSvc.Load(ctx)

	var engine speech.Engine
	if cfg.Speech.Enabled {
		engine = speech.NewSimulatedEngine(cfg.Speech.WordsPerMinute, logr)
	}
	speechSvc := service.NewSpeechService(engine, settingsSvc, cfg.Speech.Locale, logr)

	var vibrator haptics.Vibrator
	if cfg.Haptics.Enabled {
		vibrator = haptics.NewSimulatedVibrator(logr)
	}
	hapticsSvc := service.NewHapticsService(vibrator, settingsSvc, logr)

	scheduleSvc := service.NewScheduleService(roster, time.Now, logr)
	navigationSvc := service.NewNavigationService(directory, logr)
	notificationSvc := service.NewNotificationService(seed.Notifications(time.Now()), time.Now, logr)
	exportSvc := service.NewExportService(scheduleSvc, settingsSvc, logr)
	authSvc := service.NewAuthService(cfg.Auth, cfg.JWT, settingsSvc, validate, logr)
	metricsSvc := service.NewMetricsService()

	documentSvc := service.NewDocumentService(seed.Documents(time.Now()), cfg.Scanner.ProcessingDelay, speechSvc, validate, time.Now, logr)
	documentSvc.Start(ctx)
	defer documentSvc.Stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	registerRoutes(r.Group(cfg.APIPrefix), routeDeps{
		cfg:           cfg,
		auth:          authSvc,
		schedule:      scheduleSvc,
		exports:       exportSvc,
		navigation:    navigationSvc,
		notifications: notificationSvc,
		settings:      settingsSvc,
		speech:        speechSvc,
		haptics:       hapticsSvc,
		documents:     documentSvc,
		metrics:       metricsSvc,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

type routeDeps struct {
	cfg           *config.Config
	auth          *service.AuthService
	schedule      *service.ScheduleService
	exports       *service.ExportService
	navigation    *service.NavigationService
	notifications *service.NotificationService
	settings      *service.SettingsService
	speech        *service.SpeechService
	haptics       *service.HapticsService
	documents     *service.DocumentService
	metrics       *service.MetricsService
}

func registerRoutes(api *gin.RouterGroup, deps routeDeps) {
	authHandler := handler.NewAuthHandler(deps.auth)
	scheduleHandler := handler.NewScheduleHandler(deps.schedule, deps.exports)
	navigationHandler := handler.NewNavigationHandler(deps.navigation, deps.metrics)
	notificationHandler := handler.NewNotificationHandler(deps.notifications, deps.settings)
	settingsHandler := handler.NewSettingsHandler(deps.settings)
	speechHandler := handler.NewSpeechHandler(deps.speech, deps.metrics)
	hapticsHandler := handler.NewHapticsHandler(deps.haptics)
	documentHandler := handler.NewDocumentHandler(deps.documents, deps.metrics)

	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/status", authHandler.Status)

	api.GET("/schedule", scheduleHandler.Weekly)
	api.GET("/schedule/today", scheduleHandler.Today)
	api.GET("/schedule/next", scheduleHandler.Next)
	api.GET("/schedule/days/:day", scheduleHandler.ByDay)
	if deps.cfg.Exports.Enabled {
		api.GET("/schedule/export", scheduleHandler.Export)
	}

	api.GET("/locations", navigationHandler.List)
	api.GET("/locations/search", navigationHandler.List)
	api.GET("/locations/favorites", navigationHandler.Favorites)
	api.GET("/locations/:id", navigationHandler.Get)
	api.GET("/locations/:id/accessibility", navigationHandler.Accessibility)
	api.POST("/routes", navigationHandler.Route)

	api.GET("/notifications", notificationHandler.List)
	api.GET("/notifications/unread-count", notificationHandler.UnreadCount)

	api.GET("/profile", settingsHandler.Profile)
	api.GET("/settings", settingsHandler.All)
	api.GET("/settings/presentation", settingsHandler.Presentation)

	api.POST("/speech", speechHandler.Speak)
	api.POST("/speech/stop", speechHandler.Stop)
	api.GET("/speech/status", speechHandler.Status)

	api.POST("/haptics", hapticsHandler.Vibrate)

	api.GET("/documents", documentHandler.List)
	api.GET("/documents/:id", documentHandler.Get)

	protected := api.Group("")
	protected.Use(middleware.JWT(deps.auth))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.POST("/notifications", notificationHandler.Create)
	protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
	protected.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.DELETE("/notifications/:id", notificationHandler.Delete)
	protected.PUT("/profile", settingsHandler.SaveProfile)
	protected.PATCH("/settings/voice", settingsHandler.PatchVoice)
	protected.PATCH("/settings/visual", settingsHandler.PatchVisual)
	protected.PATCH("/settings/accessibility", settingsHandler.PatchAccessibility)
	protected.PATCH("/settings/notifications", settingsHandler.PatchNotifications)
	protected.POST("/documents", documentHandler.Create)
	protected.PUT("/documents/:id", documentHandler.Update)
	protected.PATCH("/documents/:id", documentHandler.Update)
	protected.DELETE("/documents/:id", documentHandler.Delete)
	protected.POST("/documents/scan", documentHandler.Scan)
	protected.POST("/documents/:id/read-aloud", documentHandler.ReadAloud)
}
