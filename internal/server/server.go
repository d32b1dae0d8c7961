package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/api/handlers"
	"github.com/kauhanhernandes/portfolio/internal/api/middleware"
	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/server/routes"
	"github.com/kauhanhernandes/portfolio/internal/session"
	"github.com/kauhanhernandes/portfolio/internal/web"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger, sessions *session.Store) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router:   router,
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
	}
}

// Init sets up middleware, templates and routes.
func (s *Server) Init() error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)

	h := &routes.Handlers{
		Page:    handlers.NewPageHandler(s.cfg.Recaptcha.SiteKey),
		Contact: handlers.NewContactHandler(s.cfg.Recaptcha.SiteKey, s.logger),
		Catalog: handlers.NewCatalogHandler(),
		Health:  handlers.NewHealthHandler(s.sessions),
	}

	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		RateLimit: middleware.NewRateLimiter(middleware.RateLimitConfig{
			RPS:   s.cfg.ContactRPS,
			Burst: s.cfg.ContactBurst,
		}),
		Session: middleware.Session(s.sessions, middleware.SessionConfig{
			MaxAge: int(s.cfg.SessionTTL.Seconds()),
			Secure: s.cfg.SecureCookies,
		}),
	}

	routes.SetupGlobalMiddleware(s.router, s.cfg, s.logger)
	routes.Setup(s.router, h, m, s.logger)

	// Images and the CV live outside the binary
	if dir := s.cfg.AssetsDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			s.router.Static("/imgs", dir)
		} else {
			s.logger.Warn("Assets directory %s not found, /imgs will not be served", dir)
		}
	}

	return nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("Starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
