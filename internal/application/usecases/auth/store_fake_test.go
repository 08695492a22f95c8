package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/moura95/credential-service/internal/domain/user"
)

// fakeStore is an in-memory user.Store that enforces email uniqueness under
// a mutex, mirroring the unique index of the postgres adapter.
type fakeStore struct {
	mu      sync.Mutex
	byEmail map[string]*user.Account
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byEmail: make(map[string]*user.Account),
	}
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*user.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*user.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, account := range f.byEmail {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, user.ErrAccountNotFound
}

func (f *fakeStore) Insert(_ context.Context, email, passwordHash string) (*user.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[email]; exists {
		return nil, user.ErrUniqueViolation
	}

	account := &user.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.byEmail[email] = account

	copied := *account
	return &copied, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}
