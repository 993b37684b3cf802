package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/civil"
	"github.com/robfig/cron/v3"

	"github.com/thegreengroup/loanbook/internal/auth"
	"github.com/thegreengroup/loanbook/internal/config"
	"github.com/thegreengroup/loanbook/internal/handler"
	"github.com/thegreengroup/loanbook/internal/mailer"
	"github.com/thegreengroup/loanbook/internal/service"
	"github.com/thegreengroup/loanbook/internal/storage/sqlite"
	"github.com/thegreengroup/loanbook/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	// Loan terms are validated here, once. A bad schedule means we refuse
	// to start rather than mis-account later.
	terms, err := config.LoadTerms(cfg.TermsPath)
	if err != nil {
		slog.Error("Invalid loan terms", "path", cfg.TermsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Loan terms loaded",
		"principal", terms.Principal,
		"start_date", terms.StartDate,
		"rate_entries", len(terms.RateSchedule),
	)

	// Initialize the SQLite payment ledger
	ledger, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize ledger", "error", err)
		os.Exit(1)
	}
	defer ledger.Close()
	slog.Info("Ledger initialized", "database", cfg.DBPath)

	paymentSvc := service.NewPaymentService(ledger, terms)

	var m mailer.Mailer = mailer.NopMailer{}
	if cfg.SMTP.From != "" {
		m = mailer.NewSMTP(cfg.SMTP)
	} else {
		slog.Warn("SMTP not configured, statements will not be emailed")
	}
	statementSvc := service.NewStatementService(paymentSvc, m)

	var authenticator *auth.PassphraseAuthenticator
	var jwtManager *auth.JWTManager
	if cfg.LenderPassphraseHash != "" && cfg.JWTSecret != "" {
		authenticator = auth.NewPassphraseAuthenticator(cfg.LenderPassphraseHash)
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	} else {
		slog.Warn("Authentication disabled, API is open")
	}

	h := handler.New(paymentSvc, statementSvc, authenticator, jwtManager)

	// Monthly statement on the 1st at midnight. The scheduler stays outside
	// the engine: it only calls the idempotent entry point with a date.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("0 0 1 * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := statementSvc.GenerateAndSend(ctx, civil.DateOf(time.Now())); err != nil {
			slog.Error("Monthly statement failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("Failed to schedule monthly statement", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
	slog.Info("Server exited")
}
