package mocks

import (
	"context"

	"github.com/you/regsvc/domain"
)

// MockCodeCache implements domain.CodeCache interface for testing. Its
// default behavior is a plain in-memory map, so tests can assert exactly
// which keys were written.
type MockCodeCache struct {
	StoreCodeFunc    func(ctx context.Context, key, value string) error
	RetrieveCodeFunc func(ctx context.Context, key string) (string, error)
	DeleteCodeFunc   func(ctx context.Context, key string) error

	Codes map[string]string
}

// NewMockCodeCache creates a new MockCodeCache with default behaviors
func NewMockCodeCache() *MockCodeCache {
	return &MockCodeCache{Codes: make(map[string]string)}
}

// StoreCode stores a verification code
func (m *MockCodeCache) StoreCode(ctx context.Context, key, value string) error {
	if m.StoreCodeFunc != nil {
		return m.StoreCodeFunc(ctx, key, value)
	}
	m.Codes[key] = value
	return nil
}

// RetrieveCode retrieves a verification code; ("", nil) when absent
func (m *MockCodeCache) RetrieveCode(ctx context.Context, key string) (string, error) {
	if m.RetrieveCodeFunc != nil {
		return m.RetrieveCodeFunc(ctx, key)
	}
	return m.Codes[key], nil
}

// DeleteCode removes a verification code
func (m *MockCodeCache) DeleteCode(ctx context.Context, key string) error {
	if m.DeleteCodeFunc != nil {
		return m.DeleteCodeFunc(ctx, key)
	}
	delete(m.Codes, key)
	return nil
}

// Compile-time interface compliance verification
var _ domain.CodeCache = (*MockCodeCache)(nil)
