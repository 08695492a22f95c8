package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	domain "github.com/moura95/credential-service/internal/domain/user"
)

type GetUserUseCase struct {
	store domain.Store
}

func NewGetUserUseCase(store domain.Store) *GetUserUseCase {
	return &GetUserUseCase{
		store: store,
	}
}

// Execute acknowledges whether username resolves to a stored account. The
// username may be an email address or an account id; no account data is
// returned, only existence.
func (uc *GetUserUseCase) Execute(ctx context.Context, username string) error {
	if id, err := uuid.Parse(username); err == nil {
		_, err := uc.store.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return domain.ErrAccountNotFound
			}
			return fmt.Errorf("usecase: get user failed: %w", err)
		}
		return nil
	}

	_, err := uc.store.FindByEmail(ctx, domain.NormalizeEmail(username))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("usecase: get user failed: %w", err)
	}
	return nil
}
