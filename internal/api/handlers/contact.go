package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/api/constants"
	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	dto "github.com/kauhanhernandes/portfolio/internal/api/dto/v1/contact"
	"github.com/kauhanhernandes/portfolio/internal/api/sanitization"
	"github.com/kauhanhernandes/portfolio/internal/api/validation"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/session"
	"github.com/kauhanhernandes/portfolio/internal/utils"
	"github.com/kauhanhernandes/portfolio/internal/view"
	"github.com/kauhanhernandes/portfolio/internal/web"

	"github.com/gin-gonic/gin"
)

// MessageInFlight answers a submit that arrives while another is pending.
const MessageInFlight = "Sua mensagem já está sendo enviada."

// eventContactSent lets the page reset its reCAPTCHA widget.
const eventContactSent = "contact-sent"

type ContactHandler struct {
	siteKey string
	logger  *logging.Logger
	now     func() time.Time
}

func NewContactHandler(siteKey string, logger *logging.Logger) *ContactHandler {
	return &ContactHandler{
		siteKey: siteKey,
		logger:  logger,
		now:     time.Now,
	}
}

// Field stores one edited input and answers with its inline hint.
func (h *ContactHandler) Field(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	field, err := contact.ParseField(c.Param("field"))
	if err != nil {
		utils.HandleAPIError(c, h.logger, err, http.StatusNotFound, common.ErrCodeNotFound, "Unknown field")
		return
	}

	value := sanitization.SanitizeField(c.PostForm(string(field)))
	if err := s.Workflow.UpdateField(field, value); err != nil {
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.ErrCodeBadRequest, "Invalid field")
		return
	}

	hint := contact.Hint(field, value)
	if !isHTMX(c) && c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEJSON {
		utils.HandleSuccess(c, dto.FieldHintResponse{Field: string(field), Hint: hint, Valid: hint == ""})
		return
	}

	c.HTML(http.StatusOK, web.HintTemplate, view.FieldHint{Field: string(field), Message: hint})
}

// Submit handles the HTML form post.
func (h *ContactHandler) Submit(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	s.SelectTab(string(view.TabContact))

	// A submit racing an in-flight send must not overwrite the form that
	// the success path is about to clear.
	outcome := contact.Outcome{Kind: contact.OutcomePending}
	if s.Workflow.Status() != contact.StatusPending {
		for _, f := range contact.Fields {
			// Fields are known, so UpdateField cannot fail here.
			_ = s.Workflow.UpdateField(f, sanitization.SanitizeField(c.PostForm(string(f))))
		}
		// A re-rendered widget posts an empty response; keep the token already solved.
		if token := sanitization.SanitizeToken(c.PostForm("g-recaptcha-response")); token != "" {
			s.Widget.Set(token)
		}
		outcome = s.Workflow.Submit(c.Request.Context())
	}

	if outcome.Succeeded() && !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/?tab="+string(view.TabContact))
		return
	}

	state := s.State(h.siteKey, h.now())
	var verr *contact.ValidationError
	if errors.As(outcome.Err, &verr) {
		state.Errors = verr.Messages()
	}

	if !isHTMX(c) {
		c.HTML(http.StatusOK, web.PageTemplate, view.NewPage(state))
		return
	}

	if outcome.Succeeded() {
		c.Header(constants.HeaderHXTrigger, eventContactSent)
	}
	c.HTML(http.StatusOK, web.ContactTemplate, view.NewPage(state))
}

// SubmitAPI handles the JSON submission.
func (h *ContactHandler) SubmitAPI(c *gin.Context) {
	s, ok := requireSession(c)
	if !ok {
		return
	}

	v, exists := c.Get(constants.ContextKeyContact)
	req, ok := v.(*dto.ContactRequest)
	if !exists || !ok {
		utils.HandleAPIError(c, h.logger, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	outcome := h.submit(s, c, req)
	// JSON callers read the result from the body, not from toasts.
	s.Toasts.Drain()

	switch {
	case outcome.Succeeded():
		utils.HandleSuccess(c, dto.ContactResponse{Message: contact.MessageSent, Success: true})
	case outcome.Pending():
		utils.HandleAPIError(c, h.logger, nil, http.StatusConflict, common.ErrCodeConflict, MessageInFlight)
	default:
		h.handleFailure(c, outcome.Err)
	}
}

func (h *ContactHandler) submit(s *session.Session, c *gin.Context, req *dto.ContactRequest) contact.Outcome {
	if s.Workflow.Status() == contact.StatusPending {
		return contact.Outcome{Kind: contact.OutcomePending}
	}
	_ = s.Workflow.UpdateField(contact.FieldName, req.Name)
	_ = s.Workflow.UpdateField(contact.FieldEmail, req.Email)
	_ = s.Workflow.UpdateField(contact.FieldMessage, req.Message)
	// No widget stands behind a JSON caller; the request's token is the only one.
	s.Widget.Set(req.RecaptchaToken)
	return s.Workflow.Submit(c.Request.Context())
}

func (h *ContactHandler) handleFailure(c *gin.Context, err error) {
	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.HandleValidationError(c, "Invalid contact form", validation.FormatValidationError(verr))
	case errors.Is(err, contact.ErrVerificationMissing):
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.ErrCodeVerification, contact.MessageVerificationMissing)
	case errors.Is(err, contact.ErrVerificationRejected):
		utils.HandleAPIError(c, h.logger, err, http.StatusBadRequest, common.ErrCodeVerification, contact.MessageVerificationRejected)
	default:
		// Delivery detail stays in the log.
		h.logger.Error("Contact delivery failed: %v", err)
		c.AbortWithStatusJSON(http.StatusBadGateway, common.NewErrorResponse(common.ErrCodeDelivery, contact.MessageFailed, nil))
	}
}
