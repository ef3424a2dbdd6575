package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistrationErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "ErrUserNotFound",
			err:         ErrUserNotFound,
			expectedMsg: "user not found",
		},
		{
			name:        "ErrUserAlreadyExists",
			err:         ErrUserAlreadyExists,
			expectedMsg: "user already exists",
		},
		{
			name:        "ErrNotificationDelivery",
			err:         ErrNotificationDelivery,
			expectedMsg: "verification code delivery failed",
		},
		{
			name:        "ErrCodeNotFound",
			err:         ErrCodeNotFound,
			expectedMsg: "verification code not found",
		},
		{
			name:        "ErrCodeInvalid",
			err:         ErrCodeInvalid,
			expectedMsg: "invalid verification code",
		},
		{
			name:        "ErrAlreadyVerified",
			err:         ErrAlreadyVerified,
			expectedMsg: "email already verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			// Sentinels must survive wrapping for errors.Is checks upstream.
			wrapped := fmt.Errorf("register: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Error("expected wrapped error to match the sentinel")
			}
		})
	}
}

func TestErrorDistinctness(t *testing.T) {
	all := []error{
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrNotificationDelivery,
		ErrCodeNotFound,
		ErrCodeInvalid,
		ErrAlreadyVerified,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("expected %v and %v to be distinct sentinels", a, b)
			}
		}
	}
}
