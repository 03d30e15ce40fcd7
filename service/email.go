package service

import (
	"fmt"

	"butce/config"

	"gopkg.in/gomail.v2"
)

// EmailService is the fallback notification channel for users without a
// registered device.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled reports whether SMTP delivery is configured on.
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendNotification sends a short milestone notification email.
func (s *EmailService) SendNotification(toEmail, title, body string) error {
	if !s.Enabled() {
		return fmt.Errorf("email service disabled")
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>%s</h2>
    <p>%s</p>
    <p style="color: #666;">— Bütçe</p>
</body>
</html>
`, title, body)

	return s.send(toEmail, title, html)
}

func (s *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
