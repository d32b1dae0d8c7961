package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Notification texts shown to the visitor.
const (
	MessageVerificationMissing  = "Por favor, complete o captcha"
	MessageVerificationRejected = "Não foi possível validar o captcha. Tente novamente."
	MessageSent                 = "Mensagem enviada com sucesso!"
	MessageFailed               = "Erro ao enviar mensagem. Tente novamente."
)

// Workflow owns one visitor's contact form and mediates its submission.
type Workflow struct {
	settings  Settings
	sender    Sender
	challenge Challenge
	notifier  Notifier
	verifier  TokenVerifier
	logger    *logging.Logger
	tracer    trace.Tracer
	timeout   time.Duration

	mu     sync.Mutex
	form   Form
	status Status
}

// Option customizes a Workflow.
type Option func(*Workflow)

// WithVerifier checks tokens server-side before dispatch.
func WithVerifier(v TokenVerifier) Option {
	return func(w *Workflow) { w.verifier = v }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *logging.Logger) Option {
	return func(w *Workflow) { w.logger = l }
}

// WithTimeout bounds the delivery call. Zero leaves it to the provider.
func WithTimeout(d time.Duration) Option {
	return func(w *Workflow) { w.timeout = d }
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(w *Workflow) { w.tracer = t }
}

// NewWorkflow creates an idle workflow with an empty form.
func NewWorkflow(settings Settings, sender Sender, challenge Challenge, notifier Notifier, opts ...Option) *Workflow {
	w := &Workflow{
		settings:  settings,
		sender:    sender,
		challenge: challenge,
		notifier:  notifier,
		logger:    logging.Discard(),
		tracer:    otel.Tracer("github.com/kauhanhernandes/portfolio/internal/contact"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// UpdateField sets one form field. Validation is deferred to Submit.
func (w *Workflow) UpdateField(field Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form.set(field, value)
}

// Form returns a copy of the current form state.
func (w *Workflow) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Status returns the submit control state.
func (w *Workflow) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Submit validates the form, checks the bot-check token and dispatches the
// message exactly once. Failures are reported through the notifier and the
// returned Outcome; the form is only cleared after an accepted delivery.
//
// The dispatch ignores cancellation of ctx: once sent it runs to completion.
func (w *Workflow) Submit(ctx context.Context) Outcome {
	w.mu.Lock()
	form := w.form
	if err := form.Validate(); err != nil {
		w.mu.Unlock()
		return failed(err)
	}

	token := w.challenge.Token()
	if token == "" {
		w.mu.Unlock()
		w.notifier.NotifyFailure(MessageVerificationMissing)
		return failed(ErrVerificationMissing)
	}

	if w.status == StatusPending {
		w.mu.Unlock()
		return stillPending()
	}
	w.status = StatusPending
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.status = StatusDone
		w.mu.Unlock()
	}()

	ctx = context.WithoutCancel(ctx)

	if w.verifier != nil {
		if err := w.verifier.VerifyToken(ctx, token); err != nil {
			w.logger.Warn("Contact verification rejected: %v", err)
			w.challenge.Reset()
			w.notifier.NotifyFailure(MessageVerificationRejected)
			return failed(errors.Join(ErrVerificationRejected, err))
		}
	}

	payload := Payload{
		FromName:          form.Name,
		FromEmail:         form.Email,
		Message:           form.Message,
		ToEmail:           w.settings.Destination,
		RecaptchaResponse: token,
	}

	if err := w.dispatch(ctx, payload); err != nil {
		w.logger.Error("Error sending email: %v", err)
		w.notifier.NotifyFailure(MessageFailed)
		return failed(err)
	}

	w.mu.Lock()
	w.form = Form{}
	w.mu.Unlock()
	w.challenge.Reset()
	w.notifier.NotifySuccess(MessageSent)
	w.logger.Info("Contact message sent from %s", form.Email)
	return succeeded()
}

func (w *Workflow) dispatch(ctx context.Context, payload Payload) error {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	ctx, span := w.tracer.Start(ctx, "contact.send", trace.WithAttributes(
		attribute.String("contact.service_id", w.settings.ServiceID),
		attribute.String("contact.template_id", w.settings.TemplateID),
	))
	defer span.End()

	resp, err := w.sender.Send(ctx, w.settings.ServiceID, w.settings.TemplateID, payload, w.settings.AuthKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return &DeliveryError{Status: resp.Status, Err: err}
	}

	span.SetAttributes(attribute.Int("contact.status", resp.Status))
	if resp.Status != StatusAccepted {
		span.SetStatus(codes.Error, "not accepted")
		return &DeliveryError{Status: resp.Status}
	}
	return nil
}
