package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketing-site-backend/config"
	_ "marketing-site-backend/docs" // Important for Swagger
	v1 "marketing-site-backend/internal/delivery/http/v1"
	"marketing-site-backend/internal/domain"
	"marketing-site-backend/internal/usecase"
	"marketing-site-backend/pkg/email"
	"marketing-site-backend/pkg/logger"
	"marketing-site-backend/pkg/security"
	"marketing-site-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Marketing Site API
// @version         1.0
// @description     Contact form relay and footer content for the marketing website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting marketing site backend", "port", cfg.Port, "email_provider", cfg.EmailProvider)

	// 3. Setup Email Sender
	sender, err := newSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to create email sender", "error", err)
		os.Exit(1)
	}
	if !sender.Configured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup UseCases
	validate := validation.New()
	branding := domain.SiteBranding{
		CompanyName: cfg.Site.CompanyName,
		Tagline:     cfg.Site.Tagline,
		TwitterURL:  cfg.Site.TwitterURL,
		LinkedInURL: cfg.Site.LinkedInURL,
		GitHubURL:   cfg.Site.GitHubURL,
	}
	footerUC, err := usecase.NewFooterUsecase(branding, validate)
	if err != nil {
		logger.Log.Error("Invalid footer configuration", "error", err)
		os.Exit(1)
	}
	contactUC := usecase.NewContactUsecase(sender, validate, usecase.ContactSettings{
		ToEmail:     cfg.ContactEmailTo,
		FromEmail:   cfg.ContactEmailFrom,
		CompanyName: cfg.Site.CompanyName,
	})

	// 5. Setup Submission Audit Log
	events := security.NewEventLogger("marketing-site-backend", security.Environment(cfg.GinMode))
	defer func() { _ = events.Sync() }()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		FooterUC:  footerUC,
		HealthUC:  usecase.NewHealthUsecase(sender),
		Events:    events,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newSender(cfg *config.Config) (email.Sender, error) {
	if cfg.EmailProvider == config.EmailProviderSMTP {
		return email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}), nil
	}
	return email.NewResendSender(cfg.ResendAPIKey)
}
