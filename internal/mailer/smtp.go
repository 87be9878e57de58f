package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender sends verification emails through an SMTP relay with
// STARTTLS and plain auth.
type SMTPSender struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		Host:      host,
		Port:      port,
		Username:  username,
		Password:  password,
		FromEmail: fromEmail,
		FromName:  fromName,
	}
}

func (s *SMTPSender) SendVerificationCode(ctx context.Context, to string, code string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	msg := s.buildMessage(to, code)

	if err := smtp.SendMail(addr, auth, s.FromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(to string, code string) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.FromName, s.FromEmail))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString("Subject: Verify Your HotRide Email\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto;">
      <h2 style="color: #333;">Verify Your Email</h2>
      <p style="color: #666; font-size: 16px;">
        Thank you for signing up with HotRide! Please use the verification code below to complete your registration:
      </p>
      <div style="background-color: #F5F5F5; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px;">
        <h1 style="color: #FF5733; font-size: 36px; letter-spacing: 8px; margin: 0;">%s</h1>
      </div>
      <p style="color: #666; font-size: 14px;">This code will expire in 10 minutes.</p>
      <p style="color: #666; font-size: 14px;">If you didn't request this verification, please ignore this email.</p>
    </div>
  </body>
</html>`, code))

	return []byte(b.String())
}
