package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/internal/infrastructure/config"
	"recharge-travels-service/internal/infrastructure/oauth"
	"recharge-travels-service/internal/infrastructure/persistence"
	"recharge-travels-service/internal/infrastructure/router"
	"recharge-travels-service/internal/interface/broker"
	"recharge-travels-service/internal/interface/gmail"
	repo "recharge-travels-service/internal/interface/repository"
	"recharge-travels-service/internal/interface/storage"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/auth"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
	"recharge-travels-service/pkg/policy"
	"recharge-travels-service/templates"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Recharge Travels service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("recharge")

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoDatabase(ctx, persistence.MongoSettings{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDB,
		Username:       cfg.MongoUser,
		Password:       cfg.MongoPassword,
		AppName:        cfg.MongoAppName,
		MaxPoolSize:    cfg.MongoMaxPoolSize,
		MinPoolSize:    cfg.MongoMinPoolSize,
		ConnectTimeout: cfg.MongoConnectTimeout,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// The tour catalog is optional; without it every tour resolves to the default
	var catalog repository.TourCatalogRepository
	if cfg.PostgresURI != "" {
		if cfg.RunMigrations {
			if err := persistence.RunMigrations(cfg.MigrationsPath, cfg.PostgresURI); err != nil {
				log.Fatal("Failed to migrate tour catalog", "error", err)
			}
		}
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		catalog = repo.NewGormTourCatalogRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, using the default tour configuration")
	}

	// Google credentials back both Gmail and Cloud Storage
	var (
		sender      repository.EmailSender
		objectStore repository.ObjectStorage
	)
	if cfg.GmailRefreshToken != "" {
		googleOAuth := oauth.NewGoogleOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, "", log)
		tokenSource := googleOAuth.GetTokenSource(ctx)

		if sender, err = gmail.NewGmailSender(ctx, tokenSource, cfg.MailFrom, log); err != nil {
			log.Fatal("Failed to create Gmail sender", "error", err)
		}
		if cfg.StorageBucket != "" {
			if objectStore, err = storage.NewGCSStorage(ctx, tokenSource, cfg.StorageBucket, log); err != nil {
				log.Fatal("Failed to create storage client", "error", err)
			}
		}
	} else {
		log.Warn("GMAIL_REFRESH_TOKEN not set, emails will be recorded as failed and uploads are disabled")
	}

	publisher := broker.NewLogPublisher(log)
	if cfg.RabbitMQURL != "" {
		rabbit, err := broker.NewRabbitMQPublisher(cfg.RabbitMQURL, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ", "error", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	}

	verifier := auth.NewVerifier(cfg.JWTSecret)
	adminPolicy, err := policy.NewAdminPolicy(ctx)
	if err != nil {
		log.Fatal("Failed to prepare admin policy", "error", err)
	}

	// Set up repositories
	emailRepo := repo.NewMongoEmailRepository(db)
	bookingRepo := repo.NewMongoBookingRepository(db)

	// Set up services
	notifier := usecase.NewNotifier(emailRepo, sender, templates.NewDefaultRegistry(log), m, log)
	checkout := usecase.NewCheckoutNotifier(repo.NewMongoCheckoutNotificationRepository(db), log, cfg.CheckoutPollInterval)
	submitter := usecase.NewBookingSubmitter(
		bookingRepo,
		repo.NewCheckoutClient(cfg.CheckoutServiceURL, cfg.CheckoutServiceToken, log),
		checkout,
		notifier,
		publisher,
		m,
		log,
		cfg.CheckoutNotifyTimeout,
	)
	tours := usecase.NewTourConfigService(catalog, cfg.DefaultTourID, log)
	sessions := usecase.NewWizardStore()
	wizard := usecase.NewBookingWizard(sessions, tours, submitter, cfg.BookingRefPrefix, log)

	owners := usecase.NewOwnerApproval(
		repo.NewMongoOwnerRepository(db),
		repo.NewMongoOwnerDocumentRepository(db),
		notifier,
		publisher,
		m,
		log,
	)

	handler := router.NewRouter(router.Dependencies{
		Log:           log,
		Metrics:       m,
		Verifier:      verifier,
		Policy:        adminPolicy,
		Wizard:        wizard,
		Tours:         tours,
		Checkout:      checkout,
		Vouchers:      usecase.NewVoucherService(bookingRepo),
		Uploads:       usecase.NewUploadService(objectStore),
		Owners:        owners,
		Emails:        notifier,
		Content:       usecase.NewContentService(repo.NewMongoPageContentRepository(db), repo.NewMongoDestinationRepository(db), log),
		Concierge:     usecase.NewConciergeService(repo.NewMongoConciergeServiceRepository(db), repo.NewMongoConciergeBookingRepository(db), m, log),
		Drivers:       usecase.NewDriverService(repo.NewMongoDriverRepository(db), m, log),
		Luxury:        usecase.NewLuxuryService(repo.NewMongoLuxuryExperienceRepository(db), m, log),
		Cultural:      usecase.NewCulturalService(repo.NewMongoCulturalTourRepository(db), repo.NewMongoCulturalBookingRepository(db), m, log),
		Bookings:      usecase.NewTourBookingService(bookingRepo, m, log),
		WebhookSecret: cfg.CheckoutWebhookSecret,
	})

	// Drop abandoned wizard sessions
	go func() {
		sweepTicker := time.NewTicker(time.Minute)
		defer sweepTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-sweepTicker.C:
				if n := sessions.Sweep(now.Add(-cfg.WizardSessionTTL)); n > 0 {
					log.Info("Swept idle wizard sessions", "count", n, "remaining", sessions.Len())
				}
			}
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Let queued confirmation emails finish
	notifier.Wait()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Recharge Travels service stopped")
}
