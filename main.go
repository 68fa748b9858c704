package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"findmylocal/config"
	"findmylocal/cron"
	"findmylocal/database"
	catalogRepo "findmylocal/database/repository/catalog"
	storageRepo "findmylocal/database/repository/storage"
	"findmylocal/handlers"
	"findmylocal/routes"
	"findmylocal/services/auth"
	"findmylocal/services/booking"
	"findmylocal/services/catalog"
	"findmylocal/services/comparison"
	"findmylocal/services/events"
	"findmylocal/services/payment"
	"findmylocal/services/provider"
	"findmylocal/services/rating"
	"findmylocal/services/tasks"
	"findmylocal/services/user"
	"findmylocal/utils"
	"findmylocal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	cfg := config.AppConfig

	utils.SetTokenSecret(cfg.JWTSecret)
	if cfg.JWTSecret == "" && config.IsProduction() {
		logger.Fatal("main: JWT_SECRET is required in production")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	metrics := utils.NewMetricsManager("findmylocal")

	// Catalog repository.
	var (
		mongoClient *mongo.Client
		repo        catalogRepo.Repository
	)
	switch cfg.CatalogBackend {
	case "mongo":
		client, err := database.ConnectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("main: mongo unavailable", zap.Error(err))
		}
		mongoClient = client
		mongoRepo := catalogRepo.NewMongoCatalogRepo(client, cfg.DatabaseName)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("main: failed to create catalog indexes", zap.Error(err))
		}
		if seeded, err := mongoRepo.EnsureSeeded(ctx, catalogRepo.SeedServices()); err != nil {
			logger.Fatal("main: failed to seed catalog", zap.Error(err))
		} else if seeded {
			logger.Info("main: catalog seeded")
		}
		repo = mongoRepo
	default:
		repo = catalogRepo.NewMemoryCatalogRepo(catalogRepo.SeedServices())
	}

	// Client store, OTP cache and reminder queue.
	var (
		redisClients []*redis.Client
		baseStore    storageRepo.Store
		otpCache     auth.OTPCache
		queueOpt     *asynq.RedisClientOpt
	)
	switch cfg.StoreBackend {
	case "redis":
		storeClient, err := utils.NewStoreClient(ctx)
		if err != nil {
			logger.Fatal("main: redis store unavailable", zap.Error(err))
		}
		otpClient, err := utils.NewOTPClient(ctx)
		if err != nil {
			logger.Fatal("main: redis OTP cache unavailable", zap.Error(err))
		}
		redisClients = append(redisClients, storeClient, otpClient)
		baseStore = storageRepo.NewRedisStore(storeClient)
		otpCache = auth.NewRedisOTPCache(otpClient)
		queueOpt = &asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
	default:
		baseStore = storageRepo.NewMemoryStore()
		otpCache = auth.NewMemoryOTPCache()
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)
	store := storageRepo.NewNotifyingStore(baseStore, hub)

	// Domain events.
	var publisher events.Publisher
	if cfg.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSURL, logger)
		if err != nil {
			logger.Fatal("main: nats unavailable", zap.Error(err))
		}
		publisher = natsPublisher
	} else {
		publisher = events.NewLogPublisher(logger)
	}
	defer publisher.Close()

	// Services.
	catalogService := catalog.NewCatalogService(repo, publisher, metrics, logger)
	userService := user.NewUserService(store, logger)
	location := loadLocation(cfg.Timezone, logger)
	bookingService := booking.NewBookingService(store, publisher, metrics, logger)
	bookingService.Location = location
	if queueOpt != nil {
		scheduler := tasks.NewAsynqScheduler(*queueOpt, cfg.ReminderLead, location, logger)
		defer scheduler.Close()
		bookingService.Reminders = scheduler

		worker := cron.NewReminderWorker(*queueOpt, publisher, logger)
		worker.Start()
		defer worker.Shutdown()
	}
	ratingService := rating.NewRatingService(store, publisher, metrics, logger)
	providerService := provider.NewProviderService(store, publisher, metrics, logger)
	providerService.Location = location
	if !config.IsProduction() {
		providerService.Samples = provider.SampleBookings
	}
	comparisons := comparison.NewManager()
	go comparisons.Run(ctx, time.Minute)

	var mailer auth.Mailer = &auth.LogMailer{Logger: logger}
	if cfg.OTPEndpoint != "" {
		mailer = auth.NewHTTPMailer(cfg.OTPEndpoint, cfg.HTTPClientTimeout)
	}
	authService := auth.NewAuthService(otpCache, mailer, store, userService, logger)
	if cfg.OTPTTL > 0 {
		authService.OTPTTL = cfg.OTPTTL
	}
	if cfg.AdminEmail != "" {
		authService.AdminEmail = cfg.AdminEmail
	}
	authService.AdminPasswordHash = adminPasswordHash(cfg.AdminPasswordHash, logger)

	var gateway payment.Gateway
	if cfg.StripeKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeKey, cfg.StripePublishableKey, nil)
	} else {
		logger.Warn("main: STRIPE_KEY not set, using the local payment gateway")
		gateway = &payment.LocalGateway{Key: cfg.StripePublishableKey}
	}
	paymentService := payment.NewPaymentService(gateway, cfg.PaymentCurrency, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Services:      handlers.NewServiceHandler(catalogService, userService, logger),
		Admin:         handlers.NewAdminHandler(catalogService, comparisons, logger),
		Comparison:    handlers.NewComparisonHandler(catalogService, comparisons, logger),
		Bookings:      handlers.NewBookingHandler(bookingService, logger),
		Ratings:       handlers.NewRatingHandler(ratingService, logger),
		Users:         handlers.NewUserHandler(userService, logger),
		Auth:          handlers.NewAuthHandler(authService, userService, logger),
		Payments:      handlers.NewPaymentHandler(paymentService, logger),
		StorageEvents: handlers.NewStorageEventsHandler(hub),
		Provider:      handlers.NewProviderHandler(providerService, logger),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		Metrics:        metrics,
		RequestsPerMin: cfg.MaxRequestsPerMin,
		Logger:         logger,
	})

	utils.StartHealthMonitor(ctx, redisClients, mongoClient)

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

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stop()

	for _, client := range redisClients {
		_ = client.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}

// adminPasswordHash falls back to a development password outside production.
func adminPasswordHash(configured string, logger *zap.Logger) []byte {
	if configured != "" {
		return []byte(configured)
	}
	if config.IsProduction() {
		logger.Warn("main: ADMIN_PASSWORD_HASH not set, admin login disabled")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("main: failed to hash development admin password", zap.Error(err))
	}
	logger.Warn("main: using the development admin password")
	return hash
}

func loadLocation(name string, logger *zap.Logger) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("main: unknown timezone, using local time", zap.String("timezone", name), zap.Error(err))
		return time.Local
	}
	return loc
}
