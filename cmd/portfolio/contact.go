package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/notify"
	"github.com/kauhanhernandes/portfolio/internal/service"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
	contactToken   string
	contactNoColor bool
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact form commands",
}

var contactSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a contact message",
	Long: `Send a contact message through the delivery provider configured in the environment.
The token is the bot-check response obtained from the site's captcha widget.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Error("Failed to load config: %v", err)
			os.Exit(1)
		}

		sender, settings, err := service.NewSender(cfg)
		if err != nil {
			logger.Error("Failed to configure delivery: %v", err)
			os.Exit(1)
		}

		widget := service.NewRecaptchaWidget()
		widget.Set(contactToken)
		printer := notify.NewPrinter(os.Stdout, !contactNoColor)
		wf := contact.NewWorkflow(settings, sender, widget, printer, service.WorkflowOptions(cfg, logger)...)

		fields := map[contact.Field]string{
			contact.FieldName:    contactName,
			contact.FieldEmail:   contactEmail,
			contact.FieldMessage: contactMessage,
		}
		for field, value := range fields {
			if err := wf.UpdateField(field, value); err != nil {
				logger.Error("Failed to set %s: %v", field, err)
				os.Exit(1)
			}
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Enviando..."
		s.Start()
		outcome := wf.Submit(cmd.Context())
		s.Stop()

		if err := reportOutcome(os.Stderr, outcome); err != nil {
			os.Exit(1)
		}
	},
}

// reportOutcome prints what the notifier does not cover: validation
// guidance and delivery diagnostics.
func reportOutcome(w io.Writer, outcome contact.Outcome) error {
	if !outcome.Failed() {
		return nil
	}

	var verr *contact.ValidationError
	var derr *contact.DeliveryError
	switch {
	case errors.As(outcome.Err, &verr):
		for _, f := range verr.Fields {
			fmt.Fprintf(w, "  %s: %s\n", f.Field, f.Message)
		}
	case errors.As(outcome.Err, &derr):
		fmt.Fprintf(w, "  %v\n", derr)
	}
	return outcome.Err
}

func init() {
	contactSendCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactSendCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email address")
	contactSendCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
	contactSendCmd.Flags().StringVar(&contactToken, "token", "", "Bot-check response token")
	contactSendCmd.Flags().BoolVar(&contactNoColor, "no-color", false, "Disable colored output")
	contactSendCmd.MarkFlagRequired("name")
	contactSendCmd.MarkFlagRequired("email")
	contactSendCmd.MarkFlagRequired("message")

	contactCmd.AddCommand(contactSendCmd)
}
