package service

import (
	"context"
	"fmt"

	"projectportal/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendMembershipDecision(ctx context.Context, email, name, projectTitle string, approved bool) error {
	subject := fmt.Sprintf("Join request update - %s", projectTitle)
	var body string
	if approved {
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the project '%s' has been approved. You can now view and contribute to the project.\n\nBest regards,\nThe Project Portal Team", name, projectTitle)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the project '%s' has been rejected. Please contact the project facilitator for details.\n\nBest regards,\nThe Project Portal Team", name, projectTitle)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send decision notice: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// noopEmailService logs instead of sending. Used when no SendGrid API
// key is configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendMembershipDecision(ctx context.Context, email, name, projectTitle string, approved bool) error {
	logger.Info("decision notice (email disabled)", "to", email, "project", projectTitle, "approved", approved)
	return nil
}
