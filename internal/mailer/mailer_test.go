package mailer

import (
	"context"
	"testing"

	"zyberian-site/internal/config"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission() models.ContactSubmission {
	company := "Acme <script>"
	return models.ContactSubmission{
		ID:      "c1",
		Name:    "A. Tester",
		Email:   "a@example.com",
		Company: &company,
		Message: "Interested in cloud migration work for our platform.",
	}
}

func TestNew_WithoutCredentialsIsNop(t *testing.T) {
	n := New(config.Email{Host: "smtp.example.com", Port: 587}, logger.Nop())
	_, ok := n.(NopNotifier)
	require.True(t, ok)
	assert.NoError(t, n.NotifyContact(context.Background(), submission()))
}

func TestNew_WithCredentialsIsSMTP(t *testing.T) {
	n := New(config.Email{Host: "smtp.example.com", Port: 587, User: "bot@example.com", Password: "pw"}, logger.Nop())
	_, ok := n.(*SMTPNotifier)
	assert.True(t, ok)
}

func TestTextBody(t *testing.T) {
	body := TextBody(submission())
	assert.Contains(t, body, "Name: A. Tester")
	assert.Contains(t, body, "Project Type: N/A")
	assert.Contains(t, body, "Budget: N/A")
	assert.Contains(t, body, "Interested in cloud migration")
}

func TestHTMLBody_Escapes(t *testing.T) {
	body := HTMLBody(submission())
	assert.Contains(t, body, "Acme &lt;script&gt;")
	assert.NotContains(t, body, "<script>")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "New Contact Form Submission from A. Tester", Subject(submission()))
}

func TestSMTPNotifier_MessageRejectsBadSender(t *testing.T) {
	n := &SMTPNotifier{cfg: config.Email{User: "not an address"}, log: logger.Nop()}
	_, err := n.message(submission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sender address")
}

func TestSMTPNotifier_MessageBuilds(t *testing.T) {
	n := &SMTPNotifier{cfg: config.Email{User: "bot@example.com", To: "hr@example.com"}, log: logger.Nop()}
	msg, err := n.message(submission())
	require.NoError(t, err)
	assert.NotNil(t, msg)
}
