package bcrypt

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	hashed, err := b.HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "super-secret" {
		t.Fatal("hash equals plaintext")
	}

	if err := b.ComparePassword(hashed, "super-secret"); err != nil {
		t.Fatalf("compare with correct password: %v", err)
	}
	if err := b.ComparePassword(hashed, "wrong-password"); err == nil {
		t.Fatal("compare accepted a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	first, err := b.HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := b.HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
}
