package handlers

import (
	"net/http"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/view"
	"github.com/kauhanhernandes/portfolio/internal/web"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the single page and its sections.
type PageHandler struct {
	siteKey string
	now     func() time.Time
}

func NewPageHandler(siteKey string) *PageHandler {
	return &PageHandler{siteKey: siteKey, now: time.Now}
}

// Index renders the full page. ?tab= selects the visible section.
func (h *PageHandler) Index(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	if tab, set := c.GetQuery("tab"); set {
		s.SelectTab(tab)
	}

	c.HTML(http.StatusOK, web.PageTemplate, view.NewPage(s.State(h.siteKey, h.now())))
}

// Section switches tabs and answers with the section partial.
// Plain navigation is redirected to the full page.
func (h *PageHandler) Section(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	tab := s.SelectTab(c.Param("tab"))
	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/?tab="+string(tab))
		return
	}

	c.HTML(http.StatusOK, web.SectionTemplate, view.NewPage(s.State(h.siteKey, h.now())))
}
