package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines user data access operations. Lookup methods return
// (nil, nil) when no user matches; absence is not an error.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Insert persists the user and returns the stored record. A uniqueness
	// violation on email reports ErrUserAlreadyExists.
	Insert(ctx context.Context, user *User) (*User, error)
	// Update applies the given column values and returns the updated user,
	// or (nil, nil) when no user has the id.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*User, error)
}

// Notifier delivers verification codes to users. A transport-level fault is
// an error; a send that completed but was not accepted is an undelivered
// DeliveryOutcome.
type Notifier interface {
	SendEmailRequest(ctx context.Context, email, code string) (DeliveryOutcome, error)
	SendRequest(ctx context.Context, phoneNumber, otp string) (DeliveryOutcome, error)
}

// CodeCache holds outstanding verification codes keyed by email. Storing a
// code for a key that already has one overwrites it. Expiry is the cache's
// own policy.
type CodeCache interface {
	StoreCode(ctx context.Context, key, value string) error
	// RetrieveCode returns ("", nil) when no code is outstanding for the key.
	RetrieveCode(ctx context.Context, key string) (string, error)
	DeleteCode(ctx context.Context, key string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// CodeGenerator produces one-time verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RegistrationService defines registration business logic
type RegistrationService interface {
	Register(ctx context.Context, email, name, family, password, position string) (*User, error)
}

// VerificationService defines email verification business logic
type VerificationService interface {
	VerifyEmail(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
}
