package mailer

import (
	"fmt"
	"net"
	"net/smtp"
	"net/url"

	"learning-app-backend/internal/config"
)

// Mailer sends confirmation links over SMTP.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		baseURL:  cfg.BaseURL,
	}
}

// SendConfirmationMail emails the user a link carrying the
// confirmation token.
func (m *Mailer) SendConfirmationMail(to, token string) error {
	link := fmt.Sprintf("%s/api/v1/auth/confirm-account?token=%s", m.baseURL, url.QueryEscape(token))

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Confirm your account\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" +
		"Welcome! Please confirm your account by opening the link below:\r\n\r\n" +
		link + "\r\n\r\n" +
		"The link expires shortly after it is sent. If it has already expired,\r\n" +
		"request a new confirmation email from the app.\r\n")

	addr := net.JoinHostPort(m.host, m.port)

	// Unauthenticated relays (local dev) are allowed when no username is set.
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}

	return nil
}
