package handlers

import (
	"net/http"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/api/dto/v1/health"
	"github.com/kauhanhernandes/portfolio/internal/version"

	"github.com/gin-gonic/gin"
)

// SessionCounter reports live sessions.
type SessionCounter interface {
	Len() int
}

type HealthHandler struct {
	sessions  SessionCounter
	startedAt time.Time
}

func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions, startedAt: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	info := version.GetBuildInfo()
	c.JSON(http.StatusOK, health.HealthResponse{
		Status:    "ok",
		Version:   info.Version,
		BuildTime: info.BuildTime,
		GitCommit: info.GitCommit,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Sessions:  h.sessions.Len(),
	})
}
