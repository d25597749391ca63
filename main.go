package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiohub/config"
	"studiohub/cron"
	"studiohub/database"
	"studiohub/database/repository"
	"studiohub/handlers"
	"studiohub/middleware"
	"studiohub/routes"
	"studiohub/services/notification"
	"studiohub/services/request"
	"studiohub/services/smartlink"
	"studiohub/services/tasks"
	"studiohub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("main: failed to load config: " + err.Error())
	}

	logger, err := utils.NewLogger(cfg.IsProduction())
	if err != nil {
		panic("main: failed to initialize logger: " + err.Error())
	}
	defer logger.Sync() //nolint:errcheck

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongo: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Warn("main: mongo disconnect failed", zap.Error(err))
		}
	}()

	sessionCache, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
	}
	defer sessionCache.Close()

	stripe.Key = cfg.StripeKey

	// Repositories.
	catalogRepo := repository.NewMongoCatalogRepo(mongoClient, cfg.DatabaseName)
	requestRepo := repository.NewMongoRequestRepo(mongoClient, cfg.DatabaseName)
	invoiceRepo := repository.NewMongoInvoiceRepo(mongoClient, cfg.DatabaseName)
	smartLinkRepo := repository.NewMongoSmartLinkRepo(mongoClient, cfg.DatabaseName)

	// Background email queue and worker.
	queueOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
	taskClient := tasks.NewClient(queueOpt)
	defer taskClient.Close()

	emailService := notification.NewHTTPEmailService(cfg.EmailEndpoint, cfg.EmailAPIKey, cfg.EmailFrom, logger)
	emailWorker := cron.StartEmailWorker(queueOpt, emailService, logger)
	defer emailWorker.Shutdown()

	// Services.
	sessionService := &request.DefaultSessionService{
		CatalogRepo: catalogRepo,
		RequestRepo: requestRepo,
		Cache:       sessionCache,
		Email:       emailService,
		Tasks:       taskClient,
		Logger:      logger,
		SessionTTL:  time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		Currency:    cfg.Currency,
	}
	paymentHandler := &request.StripePaymentHandler{
		RequestRepo: requestRepo,
		InvoiceRepo: invoiceRepo,
		Logger:      logger,
		Currency:    cfg.Currency,
	}
	smartLinkService := &smartlink.DefaultService{
		Repo:   smartLinkRepo,
		Logger: logger,
	}

	// Handlers.
	requestHandler := handlers.NewRequestHandler(sessionService, paymentHandler, logger)
	catalogHandler := handlers.NewCatalogHandler(sessionService, logger)
	smartLinkHandler := handlers.NewSmartLinkHandler(smartLinkService, logger)

	handlerBundle := handlers.HandlerBundle{
		InitiateSession:     requestHandler.InitiateSession,
		GetSession:          requestHandler.GetSession,
		SelectCategory:      requestHandler.SelectCategory,
		ToggleOffering:      requestHandler.ToggleOffering,
		UpdateDetails:       requestHandler.UpdateDetails,
		ApplyBundle:         requestHandler.ApplyBundle,
		StageSession:        requestHandler.StageSession,
		UnstageSession:      requestHandler.UnstageSession,
		ConfirmSession:      requestHandler.ConfirmSession,
		CancelSession:       requestHandler.CancelSession,
		CreateDepositIntent: requestHandler.CreateDepositIntent,

		ListOfferings: catalogHandler.ListOfferings,
		ListBundles:   catalogHandler.ListBundles,

		CreateSmartLink:    smartLinkHandler.CreatePage,
		GetSmartLink:       smartLinkHandler.GetPage,
		UpdateSmartLink:    smartLinkHandler.UpdatePage,
		DeleteSmartLink:    smartLinkHandler.DeletePage,
		AddLinkButton:      smartLinkHandler.AddButton,
		ReorderLinkButtons: smartLinkHandler.ReorderButtons,
		DeleteLinkButton:   smartLinkHandler.DeleteButton,
		TrackButtonClick:   smartLinkHandler.TrackClick,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin, logger).Middleware())

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
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
