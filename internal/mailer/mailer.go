// Package mailer sends staff notifications about new contact submissions.
package mailer

//go:generate mockgen -destination=../mock/notifier_mock.go -package=mock zyberian-site/internal/mailer Notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"zyberian-site/internal/config"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/models"

	"github.com/wneessen/go-mail"
)

// Notifier is invoked after a submission has been stored. Callers treat
// its error as non-fatal.
type Notifier interface {
	NotifyContact(ctx context.Context, sub models.ContactSubmission) error
}

// New returns an SMTP notifier, or a logging no-op when credentials are absent.
func New(cfg config.Email, log *logger.Logger) Notifier {
	if !cfg.Enabled() {
		log.Warn().Msg("email credentials are not set, contact notifications will be skipped")
		return NopNotifier{log: log}
	}
	return &SMTPNotifier{cfg: cfg, log: log}
}

type NopNotifier struct {
	log *logger.Logger
}

func (n NopNotifier) NotifyContact(_ context.Context, sub models.ContactSubmission) error {
	if n.log != nil {
		n.log.Info().Str("submission_id", sub.ID).Msg("email disabled, skipping contact notification")
	}
	return nil
}

type SMTPNotifier struct {
	cfg config.Email
	log *logger.Logger
}

func (n *SMTPNotifier) NotifyContact(ctx context.Context, sub models.ContactSubmission) error {
	msg, err := n.message(sub)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithUsername(n.cfg.User),
		mail.WithPassword(n.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	n.log.Info().Str("submission_id", sub.ID).Msg("contact email sent")
	return nil
}

func (n *SMTPNotifier) message(sub models.ContactSubmission) (*mail.Msg, error) {
	to := n.cfg.To
	if to == "" {
		to = n.cfg.User
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Website", n.cfg.User); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := msg.ReplyTo(sub.Email); err != nil {
		n.log.Debug().Err(err).Msg("submission email is not usable as reply-to")
	}
	msg.Subject(Subject(sub))
	msg.SetBodyString(mail.TypeTextPlain, TextBody(sub))
	msg.AddAlternativeString(mail.TypeTextHTML, HTMLBody(sub))
	return msg, nil
}

func Subject(sub models.ContactSubmission) string {
	return "New Contact Form Submission from " + sub.Name
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func TextBody(sub models.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("You have received a new contact form submission:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Company: %s\n", orNA(sub.Company))
	fmt.Fprintf(&b, "Project Type: %s\n", orNA(sub.ProjectType))
	fmt.Fprintf(&b, "Budget: %s\n", orNA(sub.Budget))
	fmt.Fprintf(&b, "Timeline: %s\n", orNA(sub.Timeline))
	fmt.Fprintf(&b, "Message:\n%s\n", sub.Message)
	return b.String()
}

// HTMLBody escapes every user-supplied value.
func HTMLBody(sub models.ContactSubmission) string {
	row := func(label, value string) string {
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	b.WriteString(row("Name", sub.Name))
	b.WriteString(row("Email", sub.Email))
	b.WriteString(row("Company", orNA(sub.Company)))
	b.WriteString(row("Project Type", orNA(sub.ProjectType)))
	b.WriteString(row("Budget", orNA(sub.Budget)))
	b.WriteString(row("Timeline", orNA(sub.Timeline)))
	b.WriteString("<h3>Message:</h3>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(sub.Message))
	return b.String()
}
