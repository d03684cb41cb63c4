package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender dispatches one email per call. Implementations make no delivery
// retries; a returned error means nothing was sent.
type Sender interface {
	Send(msg Message) error
}

// Mailer sends HTML email over SMTP with plain auth. One Mailer is built at
// startup from explicit configuration and shared by all requests.
type Mailer struct {
	host     string
	port     string
	username string
	password string
}

// NewMailer creates an SMTP mailer. The username doubles as the From address.
func NewMailer(host, port, username, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send delivers a single HTML email via SMTP.
func (m *Mailer) Send(msg Message) error {
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	var b strings.Builder
	b.WriteString("From: " + m.username + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	address := m.host + ":" + m.port

	if err := smtp.SendMail(address, auth, m.username, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
