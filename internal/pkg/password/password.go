package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength is the longest password bcrypt accepts, in bytes
const MaxLength = 72

// ErrTooLong is returned for passwords longer than MaxLength bytes
var ErrTooLong = errors.New("password exceeds 72 bytes")

// HashWithCost hashes a password using bcrypt at the given cost.
// Costs below bcrypt.MinCost use bcrypt.DefaultCost.
func HashWithCost(password string, cost int) (string, error) {
	if len(password) > MaxLength {
		return "", ErrTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a hash. A malformed hash never matches.
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
