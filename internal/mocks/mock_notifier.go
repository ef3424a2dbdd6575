package mocks

import (
	"context"

	"github.com/you/regsvc/domain"
)

// MockNotifier implements domain.Notifier interface for testing
type MockNotifier struct {
	SendEmailRequestFunc func(ctx context.Context, email, code string) (domain.DeliveryOutcome, error)
	SendRequestFunc      func(ctx context.Context, phoneNumber, otp string) (domain.DeliveryOutcome, error)

	// EmailsSent records (recipient, code) pairs for every email attempt.
	EmailsSent [][2]string
}

// NewMockNotifier creates a new MockNotifier with default behaviors
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SendEmailRequest sends a verification code by email
func (m *MockNotifier) SendEmailRequest(ctx context.Context, email, code string) (domain.DeliveryOutcome, error) {
	m.EmailsSent = append(m.EmailsSent, [2]string{email, code})
	if m.SendEmailRequestFunc != nil {
		return m.SendEmailRequestFunc(ctx, email, code)
	}
	// Default behavior: delivered
	return domain.DeliveryOutcome{Delivered: true}, nil
}

// SendRequest sends a verification code by SMS
func (m *MockNotifier) SendRequest(ctx context.Context, phoneNumber, otp string) (domain.DeliveryOutcome, error) {
	if m.SendRequestFunc != nil {
		return m.SendRequestFunc(ctx, phoneNumber, otp)
	}
	// Default behavior: delivered
	return domain.DeliveryOutcome{Delivered: true}, nil
}

// Compile-time interface compliance verification
var _ domain.Notifier = (*MockNotifier)(nil)
