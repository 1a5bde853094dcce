package auth

import (
	"fmt"

	// Library for password hashing using bcrypt.
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
	// dummyHash is compared against when the email is unknown,
	// so a failed login costs the same whether or not the user exists.
	dummyHash []byte
}

// NewHasher creates a Hasher with the given bcrypt work factor.
func NewHasher(cost int) (*Hasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("payroll-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &Hasher{cost: cost, dummyHash: dummy}, nil
}

// Hash returns the bcrypt hash of password. The salt is embedded in the result.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns the same CPU as Verify and always fails.
func (h *Hasher) VerifyDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
	return false
}
