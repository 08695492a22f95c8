package user

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Store is the persistence boundary for accounts. Implementations must
// enforce email uniqueness with a store-level constraint so that Insert
// fails with ErrUniqueViolation instead of silently creating a duplicate.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, email, passwordHash string) (*Account, error)
}

var emailPattern = regexp.MustCompile(`^\w{2,35}@\w{2,10}\.\w{2,6}$`)

// NormalizeEmail canonicalizes an address for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmailShape reports whether a normalized address looks like
// local@domain.tld with word characters in every part.
func ValidEmailShape(email string) bool {
	return emailPattern.MatchString(email)
}
