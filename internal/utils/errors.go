package utils

import (
	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across the API.
// Error details are only exposed outside release mode.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, status int, code common.ErrorCode, message string) {
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	var errorDetails interface{}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		errorDetails = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, errorDetails))
}

// HandleValidationError answers 400 with per-field details.
func HandleValidationError(c *gin.Context, message string, details []common.ValidationError) {
	c.AbortWithStatusJSON(400, common.NewErrorResponse(common.ErrCodeValidation, message, details))
}
