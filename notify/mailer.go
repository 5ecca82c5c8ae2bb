// Package notify sends invite emails over SMTP.
package notify

import (
	"fmt"
	"net/smtp"
	"os"
)

type Mailer struct {
	host     string
	port     string
	from     string
	password string
}

// NewMailerFromEnv builds a mailer from SMTP_HOST, SMTP_PORT, INVITE_FROM
// and EMAIL_PASSWORD. Missing credentials surface on send, not here, so the
// service still starts in environments without mail.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &Mailer{
		host:     host,
		port:     port,
		from:     os.Getenv("INVITE_FROM"),
		password: os.Getenv("EMAIL_PASSWORD"),
	}
}

// SendInvite emails a new team member that they were added to the board.
func (m *Mailer) SendInvite(to, username, org string) error {
	if m.password == "" || m.from == "" {
		return fmt.Errorf("EMAIL_PASSWORD or INVITE_FROM is not set")
	}

	subject := fmt.Sprintf("You have been added to the %s status board", org)
	body := fmt.Sprintf("Hi %s,<br><br>You have been added to the %s status board. Log in to review the tasks assigned to you.", username, org)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
