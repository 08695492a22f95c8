package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/moura95/credential-service/internal/domain/user"
	"github.com/moura95/credential-service/internal/infra/security/crypto"
)

type LoginRequest struct {
	Email    string `json:"email"`
	ID       string `json:"id"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status string `json:"status"`
}

type LoginUseCase struct {
	store user.Store
}

func NewLoginUseCase(store user.Store) *LoginUseCase {
	return &LoginUseCase{
		store: store,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	fields := map[string]any{
		"password": req.Password,
	}
	// Accounts resolve by id when one is supplied, by email otherwise.
	if req.ID != "" {
		fields["id"] = req.ID
	} else {
		fields["email"] = req.Email
	}

	if err := user.CredentialsSchema.Validate(fields); err != nil {
		return nil, err
	}

	account, err := uc.resolveAccount(ctx, req)
	if err != nil {
		return nil, err
	}

	// Defensive re-check: a stored account found by email must still carry
	// that email after normalization.
	if req.ID == "" && user.NormalizeEmail(account.Email) != user.NormalizeEmail(req.Email) {
		return nil, user.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(req.Password, account.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	return &LoginResponse{Status: "success"}, nil
}

// resolveAccount hides whether the account exists: every lookup failure
// collapses into ErrInvalidCredentials so responses cannot be used to
// enumerate registered emails.
func (uc *LoginUseCase) resolveAccount(ctx context.Context, req LoginRequest) (*user.Account, error) {
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, user.ErrInvalidCredentials
		}

		account, err := uc.store.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, user.ErrAccountNotFound) {
				return nil, user.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("usecase: login failed: %w", err)
		}
		return account, nil
	}

	account, err := uc.store.FindByEmail(ctx, user.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrAccountNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("usecase: login failed: %w", err)
	}
	return account, nil
}
