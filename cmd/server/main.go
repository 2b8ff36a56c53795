package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	checkoutapp "github.com/storefront/backend/internal/application/checkout"
	contactapp "github.com/storefront/backend/internal/application/contact"
	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/payment"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Storefront Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
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

	// Cart and snapshot stores: Redis when reachable, in-process
	// fallback for single-instance deployments
	var (
		cartStore     cart.Store
		snapshotStore checkout.SnapshotStore
	)
	redisClient, err := cache.NewRedisClient(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory cart and snapshot stores", zap.Error(err))
		memCarts := cache.NewInMemoryCartStore()
		memSnaps := cache.NewInMemorySnapshotStore()
		defer func() {
			_ = memSnaps.Close()
		}()
		cartStore = memCarts
		snapshotStore = memSnaps
	} else {
		defer func() {
			_ = redisClient.Close()
		}()
		cartStore = cache.NewRedisCartStore(redisClient)
		snapshotStore = cache.NewRedisSnapshotStore(redisClient)
		log.Info("Redis connected")
	}

	// Payment gateway. Left unconfigured, cash on delivery still works;
	// the online path refuses with a configuration error.
	var gateway checkout.PaymentGateway
	if cfg.PaymentConfigured() {
		adapter, err := payment.NewCashfreeAdapter(&payment.CashfreeConfig{
			Mode:      cfg.Payment.Mode,
			AppID:     cfg.Payment.AppID,
			SecretKey: cfg.Payment.SecretKey,
		})
		if err != nil {
			log.Fatal("Failed to initialize payment gateway", zap.Error(err))
		}
		gateway = adapter
		log.Info("Payment gateway configured", zap.String("mode", cfg.Payment.Mode))
	} else {
		log.Warn("Payment gateway not configured, online payments disabled")
	}

	// Variant image storage
	var imageStorage catalogapp.ImageStorage
	if cfg.Storage.Provider == "s3" {
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize image storage", zap.Error(err))
		}
		imageStorage = s3Storage
	} else {
		imageStorage = storage.NewStubImageStorage()
		log.Warn("Using stub image storage, upload URLs are not real")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	catalogService := catalogapp.NewService(productRepo, imageStorage, log)
	cartService := cartapp.NewService(cartStore, productRepo, log)
	contactService := contactapp.NewService(contactRepo, log)
	orderAdminService := orderapp.NewAdminService(orderRepo, log)

	coordinator := checkoutapp.NewCoordinator(cartStore, orderRepo, gateway, snapshotStore,
		checkoutapp.CoordinatorConfig{
			ReturnURL:         cfg.App.BaseURL + "/order-success",
			SnapshotTTL:       cfg.Checkout.SnapshotTTL,
			PaymentConfigured: cfg.PaymentConfigured(),
		}, log)
	reconciler := checkoutapp.NewReconciler(cartStore, orderRepo, gateway, snapshotStore,
		checkoutapp.ReconcilerConfig{
			FetchRetryAttempts:  cfg.Checkout.FetchRetryAttempts,
			FetchRetryBaseDelay: cfg.Checkout.FetchRetryBaseDelay,
		}, log)

	// HTTP layer
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
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(120, time.Minute)
	engine.Use(middleware.RateLimit(rateLimiter))

	adminAuth := middleware.AdminAuth(jwtService)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db))
	r.Register(handler.NewProductHandler(catalogService))
	r.Register(handler.NewCartHandler(cartService))
	r.Register(handler.NewCheckoutHandler(coordinator, reconciler))
	r.Register(handler.NewContactHandler(contactService))
	r.Register(handler.NewAdminAuthHandler(jwtService, cfg.Admin, log))
	r.Register(handler.NewAdminOrderHandler(orderAdminService, adminAuth))
	r.Register(handler.NewAdminInventoryHandler(catalogService, adminAuth))
	r.Register(handler.NewAdminContactHandler(contactService, adminAuth))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
