package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client   *resend.Client
	notifyTo string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService(notifyTo string) {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" || notifyTo == "" {
		log.Println("WARNING: RESEND_API_KEY or CONTACT_NOTIFY_EMAIL not set. Contact notifications will not be sent.")
		return
	}

	emailService = &EmailService{
		client:   resend.NewClient(apiKey),
		notifyTo: notifyTo,
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SendContactNotification tells the church office a new contact form
// submission arrived. Failures are logged, never surfaced to the visitor.
func (s *EmailService) SendContactNotification(name, email, subject, message string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	if subject == "" {
		subject = "(no subject)"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #90c590; border-bottom: 2px solid #90c590; padding-bottom: 10px;">New Contact Form Submission</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Subject:</strong> %s</p>
    <div style="background-color: #f5f5f5; border-radius: 8px; padding: 20px; margin: 20px 0; white-space: pre-wrap;">%s</div>
    <p style="color: #888; font-size: 12px;">Sent automatically by the church website backend.</p>
</body>
</html>`, name, email, subject, message)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("EMAIL_FROM"),
		To:      []string{s.notifyTo},
		Subject: "Contact form: " + subject,
		Html:    htmlBody,
		ReplyTo: email,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		log.Printf("Failed to send contact notification email: %v", err)
		return err
	}

	return nil
}
