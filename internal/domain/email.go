package domain

import "context"

// Mailer sends a single email. Implementations may use SES or a no-op logger.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named template into subject, html, and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData is the template data for the registration
// confirmation email.
type RegistrationConfirmationEmailData struct {
	Email          string
	FullName       string
	EventName      string
	TicketQuantity int
	TotalAmount    float64
}

// EmailService defines the transactional emails this application sends.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
}
