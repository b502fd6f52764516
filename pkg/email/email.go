package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"career-platform-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// WelcomeEmailData holds the data for registration welcome emails
type WelcomeEmailData struct {
	Username string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
	}
}

// welcomeEmailTemplate is the HTML template for registration welcome emails
const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1E3A5F; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .step { margin-bottom: 12px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Welcome, {{.Username}}!</h1>
        </div>
        <div class="content">
            <p>Your account on the Intelligent Career Recommendation Platform is ready.</p>
            <div class="step">1. Upload your resume (PDF or DOCX) to get an instant skill analysis and score.</div>
            <div class="step">2. Review your strengths, gaps, and personalized improvement suggestions.</div>
            <div class="step">3. Browse job recommendations ranked against your skill profile.</div>
        </div>
        <div class="footer">
            <p>You are receiving this email because this address was used to register an account.</p>
        </div>
    </div>
</body>
</html>`

// SendWelcomeEmail sends a registration welcome email to the new user
func (s *EmailService) SendWelcomeEmail(to string, data WelcomeEmailData) error {
	// Parse and execute the template
	tmpl, err := template.New("welcome").Parse(welcomeEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: Welcome to the Intelligent Career Recommendation Platform\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		body.String(),
	))

	// Setup SMTP authentication
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	// Send the email
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
