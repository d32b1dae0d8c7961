package utils

import (
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess writes data inside a 200 success envelope.
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}
