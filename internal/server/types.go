package server

import (
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/session"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	logger     *logging.Logger
	sessions   *session.Store
	httpServer *http.Server
}
