package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/server"
	"github.com/kauhanhernandes/portfolio/internal/service"
	"github.com/kauhanhernandes/portfolio/internal/session"
	"github.com/kauhanhernandes/portfolio/internal/tasks"
	"github.com/kauhanhernandes/portfolio/internal/telemetry"
	"github.com/kauhanhernandes/portfolio/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger configuration
	logConfig := logging.DefaultConfig()
	logConfig.Level = cfg.LogLevel
	logConfig.File = cfg.LogFile

	logging.Configure(logConfig)
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting portfolio %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}

	sender, settings, err := service.NewSender(cfg)
	if err != nil {
		logger.Error("Failed to configure contact delivery: %v", err)
		os.Exit(1)
	}
	logger.Info("Contact delivery via %s to %s", cfg.Contact.Provider, settings.Destination)

	opts := service.WorkflowOptions(cfg, logger)
	store := session.NewStore(func(challenge contact.Challenge, notifier contact.Notifier) *contact.Workflow {
		return contact.NewWorkflow(settings, sender, challenge, notifier, opts...)
	}, cfg.SessionTTL)

	// Start session cleanup task
	sessionCleanup := tasks.NewSessionCleanup(store, cfg.SessionCleanupInterval, logger)
	sessionCleanup.Start(ctx)
	logger.Info("Started session cleanup task")

	srv := server.NewServer(cfg, logger, store)
	if err := srv.Init(); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error: %v", err)
		}
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
	sessionCleanup.Stop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Tracing shutdown failed: %v", err)
	}

	logger.Info("Server stopped")
}
