package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/you/regsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhoneNumberFunc func(ctx context.Context, phoneNumber string) (*domain.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	InsertFunc           func(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.User, error)

	// Inserted records every user passed to Insert, in call order.
	Inserted []*domain.User
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// GetByID finds a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	// Default behavior: absent
	return nil, nil
}

// GetByPhoneNumber finds a user by phone number
func (m *MockUserRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	if m.GetByPhoneNumberFunc != nil {
		return m.GetByPhoneNumberFunc(ctx, phoneNumber)
	}
	// Default behavior: absent
	return nil, nil
}

// GetByEmail finds a user by email
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	// Default behavior: absent
	return nil, nil
}

// Insert persists a new user
func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.Inserted = append(m.Inserted, user)
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, user)
	}
	// Default behavior: echo the user back
	return user, nil
}

// Update applies a partial update to a user
func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	// Default behavior: absent
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
