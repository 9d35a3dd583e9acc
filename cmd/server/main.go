package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/byserkan/backend/internal/application/cart"
	catalogapp "github.com/byserkan/backend/internal/application/catalog"
	identityapp "github.com/byserkan/backend/internal/application/identity"
	orderingapp "github.com/byserkan/backend/internal/application/ordering"
	settingsapp "github.com/byserkan/backend/internal/application/settings"
	"github.com/byserkan/backend/internal/domain/cart"
	"github.com/byserkan/backend/internal/infrastructure/auth"
	"github.com/byserkan/backend/internal/infrastructure/cache"
	"github.com/byserkan/backend/internal/infrastructure/config"
	"github.com/byserkan/backend/internal/infrastructure/event"
	"github.com/byserkan/backend/internal/infrastructure/logger"
	"github.com/byserkan/backend/internal/infrastructure/notification"
	"github.com/byserkan/backend/internal/infrastructure/persistence"
	"github.com/byserkan/backend/internal/interfaces/http/handler"
	"github.com/byserkan/backend/internal/interfaces/http/middleware"
	"github.com/byserkan/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Session carts live in Redis so they survive restarts; without Redis
	// the in-memory store keeps a single instance fully functional.
	var cartStore cart.Store
	redisStore, err := cache.NewRedisCartStore(cfg.Redis, cfg.Cart.TTL)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory cart store", zap.Error(err))
		cartStore = cache.NewInMemoryCartStore(cfg.Cart.TTL)
	} else {
		cartStore = redisStore
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		log.Info("Cart store backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	itemRepo := persistence.NewGormMenuItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	whatsapp := notification.NewWhatsAppLink(cfg.WhatsApp.PhoneNumber)

	menuService := catalogapp.NewMenuService(categoryRepo, itemRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, itemRepo)
	itemService := catalogapp.NewMenuItemService(itemRepo, categoryRepo)
	settingsService := settingsapp.NewSettingsService(settingsRepo)
	cartService := cartapp.NewCartService(cartStore, itemRepo)
	orderService := orderingapp.NewOrderService(orderRepo, cartStore, itemRepo, settingsRepo, eventBus, whatsapp, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	monitorService := orderingapp.NewMonitorService(orderRepo, eventBus, log)
	if err := monitorService.Start(context.Background()); err != nil {
		log.Fatal("Failed to start order monitor", zap.Error(err))
	}
	defer func() {
		if err := monitorService.Stop(context.Background()); err != nil {
			log.Error("Error stopping order monitor", zap.Error(err))
		}
	}()

	// HTTP layer
	handlers := router.Handlers{
		Menu:     handler.NewMenuHandler(menuService),
		Cart:     handler.NewCartHandler(cartService),
		Order:    handler.NewOrderHandler(orderService),
		Auth:     handler.NewAuthHandler(authService),
		Category: handler.NewCategoryHandler(categoryService),
		MenuItem: handler.NewMenuItemHandler(itemService),
		Settings: handler.NewSettingsHandler(settingsService),
		Monitor:  handler.NewMonitorHandler(monitorService, log),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.GET("/health", healthHandler(db))

	router.Setup(engine, handlers, jwtService, log)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
