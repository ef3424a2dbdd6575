package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_Hash(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "securepassword123" {
		t.Error("hash must never equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	// Per-call salting: hashing the same plaintext twice differs.
	hash2, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == hash2 {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestPasswordServiceImpl_Verify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("securepassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !svc.Verify(hash, "securepassword123") {
		t.Error("expected the original password to verify")
	}
	if svc.Verify(hash, "wrongpassword") {
		t.Error("expected a wrong password to fail verification")
	}
	if svc.Verify("not-a-hash", "securepassword123") {
		t.Error("expected a malformed hash to fail verification")
	}
}
