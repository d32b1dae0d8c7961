package middleware

import (
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/api/constants"
	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/api/dto/v1/contact"
	"github.com/kauhanhernandes/portfolio/internal/api/sanitization"
	"github.com/kauhanhernandes/portfolio/internal/api/validation"

	"github.com/gin-gonic/gin"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateContactRequest binds and sanitizes the JSON contact submission.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			details := validation.FormatValidationError(err)
			message := "Invalid request body"
			if details == nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeBadRequest, message, nil))
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(common.ErrCodeValidation, message, details))
			return
		}

		req.Name = sanitization.SanitizeField(req.Name)
		req.Email = sanitization.SanitizeField(req.Email)
		req.Message = sanitization.SanitizeField(req.Message)
		req.RecaptchaToken = sanitization.SanitizeToken(req.RecaptchaToken)

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
