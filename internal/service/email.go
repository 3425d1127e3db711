package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
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

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingCreatedNotification(ctx context.Context, ownerEmail, customerName, licensePlate string, totalPrice int64) error {
	subject := fmt.Sprintf("New booking for vehicle %s", licensePlate)
	body := fmt.Sprintf("%s booked your vehicle %s for a total of %d.\n\nThe vehicle is now marked as rented.", customerName, licensePlate, totalPrice)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingCancelledNotification(ctx context.Context, ownerEmail, customerName, licensePlate string) error {
	subject := fmt.Sprintf("Booking cancelled for vehicle %s", licensePlate)
	body := fmt.Sprintf("%s cancelled the booking for your vehicle %s.\n\nThe vehicle is available again.", customerName, licensePlate)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingCompletedNotification(ctx context.Context, customerEmail, licensePlate string) error {
	subject := fmt.Sprintf("Return confirmed for vehicle %s", licensePlate)
	body := fmt.Sprintf("The owner confirmed the return of vehicle %s. Your booking is now completed.\n\nYou can rate the owner from your booking history.", licensePlate)
	return s.send(customerEmail, subject, body)
}
