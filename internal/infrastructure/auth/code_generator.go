package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/you/regsvc/domain"
)

// DefaultCodeLength is the number of digits in a verification code.
const DefaultCodeLength = 6

// CodeGeneratorImpl implements domain.CodeGenerator
type CodeGeneratorImpl struct {
	length int
}

// NewCodeGenerator creates a generator producing codes of the given length.
// Non-positive lengths fall back to DefaultCodeLength.
func NewCodeGenerator(length int) domain.CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &CodeGeneratorImpl{length: length}
}

// Generate draws each digit independently from crypto/rand, so leading
// zeros are possible and every code is equally likely.
func (g *CodeGeneratorImpl) Generate() (string, error) {
	digits := make([]byte, g.length)

	for i := 0; i < g.length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
