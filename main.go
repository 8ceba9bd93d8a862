// File: dairy/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dairy/config"
	"dairy/cron"
	"dairy/database"
	"dairy/database/repository"
	"dairy/handlers"
	"dairy/middleware"
	"dairy/routes"
	"dairy/services/customer"
	"dairy/services/entry"
	"dairy/services/notification"
	"dairy/services/overview"
	"dairy/services/payment"
	"dairy/services/reminder"
	"dairy/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	utils.InitMetrics()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	var repos repository.Set
	if config.UsesMemoryStore() {
		logger.Warn("main: using in-memory store, data is lost on restart")
		repos = repository.NewMemorySet()
	} else {
		database.InitDB()
		repos = repository.NewMongoSet()
		idxCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := repos.EnsureIndexes(idxCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
		cancel()
	}
	utils.InitRedis()

	// services.
	customerService := &customer.DefaultCustomerService{Repo: repos.Customers}
	entryService := &entry.DefaultEntryService{
		Repo:      repos.Entries,
		Customers: customerService,
	}

	var locker overview.CellLocker
	if client := utils.GetLockClient(); client != nil {
		locker = overview.NewRedisCellLocker(client, config.AppConfig.CellLockTTL)
	} else {
		locker = overview.NewMemoryCellLocker(config.AppConfig.CellLockTTL)
	}
	overviewService := overview.NewOverviewService(customerService, entryService, locker)
	overviewService.CurrencySymbol = config.AppConfig.CurrencySymbol

	paymentService := &payment.DefaultPaymentService{
		Repo:      repos.Payments,
		Customers: customerService,
	}

	reminderService := &reminder.DefaultReminderService{
		Repo:     repos.Reminders,
		Payments: paymentService,
		Notifier: &notification.LogNotifier{Logger: logger},
		Location: config.ReminderLocation(),
	}
	var (
		asynqClient *asynq.Client
		worker      *asynq.Server
	)
	if utils.GetLockClient() != nil {
		asynqClient = asynq.NewClient(cron.RedisOpt())
		reminderService.Queue = asynqClient
		worker = cron.InitReminderWorker(ctx, reminderService)
	} else {
		logger.Warn("main: Redis unavailable, payment reminders are not scheduled")
	}

	utils.StartHealthMonitor(ctx, utils.GetLockClient(), database.MongoClient, 30*time.Second)

	// handlers.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewCustomerHandler(customerService),
		handlers.NewEntryHandler(entryService),
		handlers.NewOverviewHandler(overviewService, entryService),
		handlers.NewPaymentHandler(paymentService, reminderService),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if asynqClient != nil {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("main: failed to close reminder queue client", zap.Error(err))
		}
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
	_ = logger.Sync()
}
