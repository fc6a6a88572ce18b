package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitrack/config"
	deliveryHttp "hospitrack/internal/delivery/http"
	"hospitrack/internal/delivery/http/handler"
	"hospitrack/internal/delivery/http/middleware"
	"hospitrack/internal/infrastructure/cache"
	"hospitrack/internal/infrastructure/database"
	"hospitrack/internal/repository"
	"hospitrack/internal/service"
	"hospitrack/internal/usecase"
	"hospitrack/pkg/jwt"
	"hospitrack/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// LoadConfig reads configuration and configures the global logger from it
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")
	return cfg, nil
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Redis is optional; without it tokens and dashboard stats live in process memory
	var tokenStore service.TokenStore
	var statsCache service.StatsCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		tokenStore = service.NewRedisTokenStore(redisClient)
		statsCache = service.NewRedisStatsCache(redisClient, cfg.Cache.StatsTTL)
		logrus.Info("Redis connected successfully")
	} else {
		memory := cache.NewMemoryCache(cfg.Cache)
		tokenStore = service.NewMemoryTokenStore(memory)
		statsCache = service.NewMemoryStatsCache(memory, cfg.Cache.StatsTTL)
	}

	if cfg.Seed.OnStartup {
		if err := newSeedService(db, statsCache).Seed(context.Background()); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	app.Server = initializeServer(cfg, db, tokenStore, statsCache)
	return app, nil
}

// Seed connects, provisions the demo data and disconnects
func Seed(cfg *config.Config) error {
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// a running server caches dashboard stats in Redis; the in-process cache
	// belongs to another process and cannot be reached from here
	var statsCache service.StatsCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()
		statsCache = service.NewRedisStatsCache(redisClient, cfg.Cache.StatsTTL)
	}

	return newSeedService(db, statsCache).Seed(context.Background())
}

func newSeedService(db *gorm.DB, statsCache service.StatsCache) *service.SeedService {
	return service.NewSeedService(
		db,
		logrus.StandardLogger(),
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
		repository.NewBedRepository(),
		statsCache,
	)
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, tokenStore service.TokenStore, statsCache service.StatsCache) *http.Server {
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	patientRepo := repository.NewPatientRepository()
	bedRepo := repository.NewBedRepository()
	alertRepo := repository.NewAlertRepository()
	transferRepo := repository.NewTransferRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, jwtService, tokenStore, auditService, statsCache)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, userRepo, patientRepo, bedRepo, alertRepo, statsCache)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService, statsCache)
	bedUsecase := usecase.NewBedUsecase(db, log, bedRepo, patientRepo, auditService, statsCache)
	alertUsecase := usecase.NewAlertUsecase(db, log, alertRepo, auditService, statsCache)
	transferUsecase := usecase.NewTransferUsecase(db, log, transferRepo, bedRepo, patientRepo, auditService, statsCache)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	handlers := deliveryHttp.Handlers{
		Auth:      handler.NewAuthHandler(authUsecase, customValidator),
		Dashboard: handler.NewDashboardHandler(dashboardUsecase),
		Patient:   handler.NewPatientHandler(patientUsecase, customValidator),
		Bed:       handler.NewBedHandler(bedUsecase, customValidator),
		Alert:     handler.NewAlertHandler(alertUsecase, customValidator),
		Transfer:  handler.NewTransferHandler(transferUsecase, customValidator),
		AuditLog:  handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
		Burst: cfg.RateLimit.Burst,
	})
	metricsMiddleware := middleware.NewMetricsMiddleware()

	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, rateLimiter, metricsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
