package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is deliberately above bcrypt's default; it tunes the work
// factor only and is not a correctness parameter.
const hashCost = 12

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches hashedPassword. bcrypt's
// comparison is constant-time; a mismatch is a normal false, not an error.
func CheckPassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func ValidatePasswordStrength(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	return nil
}
