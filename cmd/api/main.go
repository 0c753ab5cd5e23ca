package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/config"
	"github.com/fekuna/omnipos-terminal-service/pkg/broker"
	"github.com/fekuna/omnipos-terminal-service/pkg/cache"
	"github.com/fekuna/omnipos-terminal-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
	"github.com/fekuna/omnipos-terminal-service/pkg/search"

	"github.com/fekuna/omnipos-terminal-service/internal/auth"
	"github.com/fekuna/omnipos-terminal-service/internal/checkout"
	"github.com/fekuna/omnipos-terminal-service/internal/receipt"
	"github.com/fekuna/omnipos-terminal-service/internal/server"

	cartH "github.com/fekuna/omnipos-terminal-service/internal/cart/handler"
	cartRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/cart/repository"
	cartUCPkg "github.com/fekuna/omnipos-terminal-service/internal/cart/usecase"

	checkoutH "github.com/fekuna/omnipos-terminal-service/internal/checkout/handler"
	checkoutRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/checkout/repository"
	checkoutUCPkg "github.com/fekuna/omnipos-terminal-service/internal/checkout/usecase"

	invH "github.com/fekuna/omnipos-terminal-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-terminal-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-terminal-service/internal/inventory/usecase"

	locH "github.com/fekuna/omnipos-terminal-service/internal/location/handler"
	locRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/location/repository"
	locUCPkg "github.com/fekuna/omnipos-terminal-service/internal/location/usecase"

	orderH "github.com/fekuna/omnipos-terminal-service/internal/order/handler"
	orderRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-terminal-service/internal/order/usecase"

	prodH "github.com/fekuna/omnipos-terminal-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-terminal-service/internal/product/usecase"

	settingsH "github.com/fekuna/omnipos-terminal-service/internal/settings/handler"
	settingsRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/settings/repository"
	settingsUCPkg "github.com/fekuna/omnipos-terminal-service/internal/settings/usecase"

	staffH "github.com/fekuna/omnipos-terminal-service/internal/staff/handler"
	staffRepoPkg "github.com/fekuna/omnipos-terminal-service/internal/staff/repository"
	staffUCPkg "github.com/fekuna/omnipos-terminal-service/internal/staff/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5. Initialize Kafka
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrdersTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()

	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.OrdersTopic,
	})
	defer kafkaProducer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Repositories
	prodRepo := prodRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	locRepo := locRepoPkg.NewPGRepository(db)
	staffRepo := staffRepoPkg.NewPGRepository(db)
	settingsRepo := settingsRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	checkoutRepo := checkoutRepoPkg.NewPGRepository(db)
	cartStore := cartRepoPkg.NewRedisStore(redisClient)

	// 8. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, redisClient, esClient, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, redisClient, appLogger)
	locUC := locUCPkg.NewLocationUseCase(locRepo, appLogger)
	staffUC := staffUCPkg.NewStaffUseCase(staffRepo, appLogger)
	settingsUC := settingsUCPkg.NewSettingsUseCase(settingsRepo, cfg.Terminal, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartStore, prodRepo, invRepo, appLogger)

	policy := checkout.SizeMatchFallback
	if cfg.Checkout.StrictSizeMatch {
		policy = checkout.SizeMatchStrict
	}
	printer := &receipt.LogPrinter{Logger: appLogger}
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(
		checkoutRepo, cartStore, invRepo, locRepo, settingsUC,
		kafkaProducer, printer, redisClient, policy, appLogger,
	)

	// 9. Start the inventory listener for sales from other channels
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	invListener := invListenerPkg.NewInventoryListener(kafkaConsumer, invUC, appLogger)
	go invListener.Start(ctx)

	// 10. Initialize Handlers
	authService := auth.NewService(staffRepo, cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	authHandler := auth.NewHandler(authService, appLogger)

	public := []server.Registrar{authHandler}
	protected := []server.Registrar{
		prodH.NewProductHandler(prodUC, appLogger),
		invH.NewInventoryHandler(invUC, appLogger),
		locH.NewLocationHandler(locUC, appLogger),
		staffH.NewStaffHandler(staffUC, appLogger),
		settingsH.NewSettingsHandler(settingsUC, appLogger),
		orderH.NewOrderHandler(orderUC, appLogger),
		cartH.NewCartHandler(cartUC, appLogger),
		checkoutH.NewCheckoutHandler(checkoutUC, appLogger),
	}

	// 11. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	authMW := auth.Middleware(cfg.JWT.SecretKey, appLogger)
	srv := server.New(port, appLogger, authMW, public, protected)

	appLogger.Info("Starting HTTP server", zap.String("port", port))
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Info("HTTP server stopped", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
