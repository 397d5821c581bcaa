// utils/email.go
package utils

import (
	"context"
	"fmt"
	"strings"

	"go-ecommerce-console/models"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a single message.
type Mailer interface {
	Send(from, to, subject, htmlBody, textBody string) error
}

type postmarkMailer struct {
	client *postmark.Client
}

func (m postmarkMailer) Send(from, to, subject, htmlBody, textBody string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     from,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: textBody,
	})
	return err
}

type sendgridMailer struct {
	client *sendgrid.Client
}

func (m sendgridMailer) Send(from, to, subject, htmlBody, textBody string) error {
	msg := mail.NewSingleEmail(mail.NewEmail("", from), subject, mail.NewEmail("", to), textBody, htmlBody)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// EmailService sends order notifications to the shop operator.
type EmailService struct {
	mailer   Mailer
	sender   string
	notifyTo string
	currency string
}

// NewEmailService picks the provider by name ("postmark" or "sendgrid").
func NewEmailService(provider, apiToken, sender, notifyTo, currency string) (*EmailService, error) {
	if apiToken == "" {
		return nil, fmt.Errorf("email api token is not set")
	}
	if notifyTo == "" {
		return nil, fmt.Errorf("email notify_to is not set")
	}

	var m Mailer
	switch strings.ToLower(provider) {
	case "", "postmark":
		m = postmarkMailer{client: postmark.NewClient(apiToken, "")}
	case "sendgrid":
		m = sendgridMailer{client: sendgrid.NewSendClient(apiToken)}
	default:
		return nil, fmt.Errorf("unknown email provider %q", provider)
	}
	return NewEmailServiceWithMailer(m, sender, notifyTo, currency), nil
}

// NewEmailServiceWithMailer wires an already built Mailer.
func NewEmailServiceWithMailer(m Mailer, sender, notifyTo, currency string) *EmailService {
	return &EmailService{mailer: m, sender: sender, notifyTo: notifyTo, currency: currency}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	if err := es.mailer.Send(es.sender, toEmail, subject, htmlContent, textContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail notifies toEmail about a checked-out order
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := fmt.Sprintf("Order Confirmation #%d", order.ID())
	total := es.currency + order.Total().StringFixed(2)
	htmlContent := fmt.Sprintf(
		"<strong>Order %d</strong> has been checked out.<br><br>Items: <strong>%d</strong><br>Total Amount: <strong>%s</strong><br>Payment Method: <strong>%s</strong>",
		order.ID(),
		order.LineCount(),
		total,
		order.PaymentMethod(),
	)
	textContent := fmt.Sprintf("Order %d has been checked out.\n\nItems: %d\nTotal Amount: %s\nPayment Method: %s\n",
		order.ID(), order.LineCount(), total, order.PaymentMethod())

	return es.SendEmail(toEmail, subject, htmlContent, textContent)
}

// Record lets the service act as an order audit sink.
func (es *EmailService) Record(_ context.Context, order models.Order) error {
	return es.SendOrderConfirmationEmail(es.notifyTo, order)
}
