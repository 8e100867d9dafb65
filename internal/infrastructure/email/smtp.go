package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
)

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for ticket links (e.g., "http://localhost:3001")
}

// SMTPConfigFrom combines the email section with the public base URL.
func SMTPConfigFrom(cfg config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer sender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	if config.Port == 0 {
		config.Port = 587
	}
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) ticketURL(ticketID uint) string {
	return fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)
}

func (s *SMTPEmailService) SendTicketAssignedEmail(to, name string, ticketID uint, title string) error {
	link := s.ticketURL(ticketID)
	subject := fmt.Sprintf("[Ticket #%d] Assigned to you: %s", ticketID, title)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Ticket <strong>#%d %s</strong> has been assigned to you.</p>
			<p><a href="%s">Open ticket</a></p>
		</body>
		</html>
	`, escape(name), ticketID, escape(title), link)

	plainBody := fmt.Sprintf(`
Hi %s,

Ticket #%d %s has been assigned to you.

%s
	`, name, ticketID, title, link)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketStatusChangedEmail(to, name string, ticketID uint, title, status string) error {
	link := s.ticketURL(ticketID)
	subject := fmt.Sprintf("[Ticket #%d] Status changed to %s", ticketID, status)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>The status of your ticket <strong>#%d %s</strong> is now <strong>%s</strong>.</p>
			<p><a href="%s">Open ticket</a></p>
		</body>
		</html>
	`, escape(name), ticketID, escape(title), status, link)

	plainBody := fmt.Sprintf(`
Hi %s,

The status of your ticket #%d %s is now %s.

%s
	`, name, ticketID, title, status, link)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
