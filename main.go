package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/audit"
	"github.com/openmusic-api/openmusic/config"
	"github.com/openmusic-api/openmusic/controller"
	"github.com/openmusic-api/openmusic/db"
	logger "github.com/openmusic-api/openmusic/logging"
	"github.com/openmusic-api/openmusic/router"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	gdb, err := db.NewPostgres(config.GetString("postgres.dsn"))
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres(gdb)

	// Initialize Redis
	redisClient, err := db.NewRedis(config.GetString("redis.addr"))
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis(redisClient)

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	cacheService := util.NewCacheService(redisClient, config.GetDuration("redis.defaultCacheTTL"))
	storageService, err := util.NewStorageService(config.GetString("upload.dir"), config.GetInt64("upload.maxBytes"))
	if err != nil {
		logger.Fatal("Failed to initialize upload storage", zap.Error(err))
	}
	producer := util.NewProducerService(config.GetString("queue.redisAddr"))
	defer producer.Close()
	tokenManager := util.NewTokenManager(
		config.GetString("jwt.accessKey"),
		config.GetString("jwt.refreshKey"),
		config.GetDuration("jwt.accessTokenAge"),
	)
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	host := config.GetString("server.host")
	port := config.GetString("server.port")
	baseURL := fmt.Sprintf("http://%s:%s", host, port)

	// Initialize services
	services, err := service.InitializeServices(
		gdb,
		auditService,
		cacheService,
		storageService,
		producer,
		tokenManager,
		notificationService,
		eventBus,
		baseURL,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, tokenManager, redisClient, 100, time.Minute)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
