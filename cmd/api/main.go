package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/comics-store-service/config"
	"github.com/fekuna/comics-store-service/internal/schema"
	"github.com/fekuna/comics-store-service/internal/server"
	"github.com/fekuna/comics-store-service/pkg/broker"
	"github.com/fekuna/comics-store-service/pkg/cache"
	"github.com/fekuna/comics-store-service/pkg/database/postgres"
	"github.com/fekuna/comics-store-service/pkg/i18n"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/fekuna/comics-store-service/pkg/search"

	catH "github.com/fekuna/comics-store-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/comics-store-service/internal/category/repository"
	catUCPkg "github.com/fekuna/comics-store-service/internal/category/usecase"

	custH "github.com/fekuna/comics-store-service/internal/customer/handler"
	custRepoPkg "github.com/fekuna/comics-store-service/internal/customer/repository"
	custUCPkg "github.com/fekuna/comics-store-service/internal/customer/usecase"

	prodH "github.com/fekuna/comics-store-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/comics-store-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/comics-store-service/internal/product/usecase"

	purH "github.com/fekuna/comics-store-service/internal/purchase/handler"
	purRepoPkg "github.com/fekuna/comics-store-service/internal/purchase/repository"
	purUCPkg "github.com/fekuna/comics-store-service/internal/purchase/usecase"

	supH "github.com/fekuna/comics-store-service/internal/supplier/handler"
	supRepoPkg "github.com/fekuna/comics-store-service/internal/supplier/repository"
	supUCPkg "github.com/fekuna/comics-store-service/internal/supplier/usecase"

	ordH "github.com/fekuna/comics-store-service/internal/supplierorder/handler"
	ordRepoPkg "github.com/fekuna/comics-store-service/internal/supplierorder/repository"
	ordUCPkg "github.com/fekuna/comics-store-service/internal/supplierorder/usecase"

	userH "github.com/fekuna/comics-store-service/internal/user/handler"
	userRepoPkg "github.com/fekuna/comics-store-service/internal/user/repository"
	userUCPkg "github.com/fekuna/comics-store-service/internal/user/usecase"

	utH "github.com/fekuna/comics-store-service/internal/usertype/handler"
	utRepoPkg "github.com/fekuna/comics-store-service/internal/usertype/repository"
	utUCPkg "github.com/fekuna/comics-store-service/internal/usertype/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
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

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.I18n.DefaultLanguage, cfg.I18n.Files...)
	if err != nil {
		log.Fatalf("failed to load message catalogs: %v", err)
	}

	// 4. Connect to Database
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
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := schema.Apply(ctx, db); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	// Closed in reverse order of opening.
	var closers []io.Closer

	// 5. Initialize Redis (optional)
	var storeCache cache.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, catalog cache disabled", zap.Error(err))
		} else {
			storeCache = redisClient
			closers = append(closers, redisClient)
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}
	cacheTTL := time.Duration(cfg.Redis.TTL) * time.Second

	// 6. Initialize Kafka Producer (optional)
	var publisher broker.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		publisher = producer
		closers = append([]io.Closer{producer}, closers...)
		appLogger.Info("Kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 7. Initialize Elasticsearch (optional)
	var searchEngine search.Engine
	if len(cfg.Elastic.Addresses) > 0 {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, product search falls back to the database", zap.Error(err))
		} else if err := prodUCPkg.EnsureSearchIndex(ctx, esClient); err != nil {
			appLogger.Warn("Could not create products index, product search falls back to the database", zap.Error(err))
		} else {
			searchEngine = esClient
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}
	closers = append(closers, db)

	// 8. Initialize Repositories
	userRepo := userRepoPkg.NewPGRepository(db)
	utRepo := utRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	supRepo := supRepoPkg.NewPGRepository(db)
	ordRepo := ordRepoPkg.NewPGRepository(db)
	custRepo := custRepoPkg.NewPGRepository(db)
	purRepo := purRepoPkg.NewPGRepository(db)

	// 9. Initialize UseCases
	userUC := userUCPkg.NewUserUseCase(userRepo, cfg.Security.BcryptCost, appLogger)
	utUC := utUCPkg.NewUserTypeUseCase(utRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, storeCache, cacheTTL, searchEngine, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, storeCache, cacheTTL, prodUC, appLogger)
	supUC := supUCPkg.NewSupplierUseCase(supRepo, appLogger)
	ordUC := ordUCPkg.NewSupplierOrderUseCase(ordRepo, publisher, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, purRepo, appLogger)
	purUC := purUCPkg.NewPurchaseUseCase(purRepo, publisher, appLogger)

	if searchEngine != nil {
		if err := prodUC.ReindexProducts(ctx); err != nil {
			appLogger.Warn("Product index backfill failed", zap.Error(err))
		}
	}

	// 10. Initialize Handlers
	resp := response.NewResponder(translator, appLogger)
	router := server.NewRouter(appLogger, db,
		userH.NewUserHandler(userUC, resp, appLogger),
		utH.NewUserTypeHandler(utUC, resp, appLogger),
		catH.NewCategoryHandler(catUC, resp, appLogger),
		prodH.NewProductHandler(prodUC, resp, appLogger),
		supH.NewSupplierHandler(supUC, resp, appLogger),
		ordH.NewSupplierOrderHandler(ordUC, resp, appLogger),
		custH.NewCustomerHandler(custUC, resp, appLogger),
		purH.NewPurchaseHandler(purUC, resp, appLogger),
	)

	// 11. Start gRPC health server
	lis, err := net.Listen("tcp", cfg.Server.GRPCHealthPort)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", cfg.Server.GRPCHealthPort), zap.Error(err))
	}
	healthServer := server.NewHealthServer(db, 10*time.Second, appLogger)
	go healthServer.Watch(ctx)
	go func() {
		appLogger.Info("Starting gRPC health server", zap.String("port", cfg.Server.GRPCHealthPort))
		if err := healthServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve gRPC health", zap.Error(err))
		}
	}()

	// 12. Start HTTP server
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	healthServer.GracefulStop()

	if err := server.CloseAll(closers...); err != nil {
		appLogger.Error("Failed to release resources", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
