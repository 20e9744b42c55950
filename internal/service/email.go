package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rental-backoffice/internal/domain"
	"rental-backoffice/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error {
	subject := fmt.Sprintf("Rental %s is overdue", shortID(rental.ID))
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental %s was due back on %s. Please return the items or contact us to extend the rental period.\n\nThank you.",
		customer.FirstName, shortID(rental.ID), rental.EndDate)
	htmlContent := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your rental <strong>%s</strong> was due back on <strong>%s</strong>. Please return the items or contact us to extend the rental period.</p><p>Thank you.</p>",
		customer.FirstName, shortID(rental.ID), rental.EndDate)

	return s.send(customer.Email, customer.FullName(), subject, plainText, htmlContent)
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
