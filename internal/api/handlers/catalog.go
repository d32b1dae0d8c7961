package handlers

import (
	"github.com/kauhanhernandes/portfolio/internal/catalog"
	"github.com/kauhanhernandes/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Get returns tabs, profile, projects and skills.
func (h *CatalogHandler) Get(c *gin.Context) {
	utils.HandleSuccess(c, catalog.All())
}
