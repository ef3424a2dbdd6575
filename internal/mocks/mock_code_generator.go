package mocks

import "github.com/you/regsvc/domain"

// MockCodeGenerator implements domain.CodeGenerator interface for testing
type MockCodeGenerator struct {
	GenerateFunc func() (string, error)
}

// NewMockCodeGenerator creates a new MockCodeGenerator with default behaviors
func NewMockCodeGenerator() *MockCodeGenerator {
	return &MockCodeGenerator{}
}

// Generate produces a verification code
func (m *MockCodeGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Compile-time interface compliance verification
var _ domain.CodeGenerator = (*MockCodeGenerator)(nil)
