// File: quickscan/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickscan/config"
	"quickscan/cron"
	"quickscan/database"
	bookingRepoPkg "quickscan/database/repository/booking"
	labRepoPkg "quickscan/database/repository/lab"
	serviceRepoPkg "quickscan/database/repository/service"
	userRepoPkg "quickscan/database/repository/user"
	"quickscan/handlers"
	"quickscan/middleware"
	"quickscan/routes"
	"quickscan/services/booking"
	"quickscan/services/catalog"
	"quickscan/services/notification"
	"quickscan/services/user"
	"quickscan/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	labRepo := labRepoPkg.NewMongoLabRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Notification dispatch: tasks go through the shared queue, an in-process
	// worker posts them to the email API. Best-effort, no retries.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	dispatcher := notification.NewQueueDispatcher(queueClient)
	mailer := notification.NewMailer(config.AppConfig.EmailAPIURL)
	cron.InitEmailWorker(mailer)

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	catalogService := &catalog.DefaultCatalogService{
		ServiceRepo: serviceRepo,
		LabRepo:     labRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		ServiceRepo: serviceRepo,
		LabRepo:     labRepo,
		Notifier:    dispatcher,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Health probes ping the queue DB through a plain client; asynq keeps its
	// own connections internal.
	queueHealthClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), queueHealthClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
