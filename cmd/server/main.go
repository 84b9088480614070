package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"charityevents/config"
	"charityevents/internal/adapters/auth"
	"charityevents/internal/adapters/email"
	delivery "charityevents/internal/delivery/http"
	"charityevents/internal/delivery/http/controllers"
	"charityevents/internal/delivery/http/middleware"
	"charityevents/internal/repository/postgres"
	"charityevents/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	// The pool is owned here and injected downward; nothing else opens or
	// closes database connections.
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	organizationRepo := postgres.NewOrganizationRepository(db)
	adminRepo := postgres.NewAdminRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	catalogService := services.NewCatalogService(eventRepo, registrationRepo, categoryRepo, organizationRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, emailService, logger, serviceTimeout)
	eventService := services.NewEventService(eventRepo, registrationRepo, serviceTimeout)
	authService := services.NewAuthService(adminRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), serviceTimeout)
	statsService := services.NewStatsService(statsRepo, serviceTimeout)

	catalogController := controllers.NewCatalogController(logger, catalogService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	adminController := controllers.NewAdminController(logger, authService, eventService, statsService)

	mux := delivery.NewRouter(catalogController, registrationController, adminController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("close database", "err", err)
	}
	logger.Info("server stopped")
}
