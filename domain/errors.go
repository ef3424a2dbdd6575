package domain

import "errors"

// Registration errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrNotificationDelivery = errors.New("verification code delivery failed")
)

// Verification errors
var (
	ErrCodeNotFound    = errors.New("verification code not found")
	ErrCodeInvalid     = errors.New("invalid verification code")
	ErrAlreadyVerified = errors.New("email already verified")
)
