package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moura95/credential-service/internal/domain/user"
	"github.com/moura95/credential-service/internal/infra/messaging/queues"
	"github.com/moura95/credential-service/internal/infra/security/crypto"
	"go.uber.org/zap"
)

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type RegisterUseCase struct {
	store  user.Store
	queue  *queues.SignupQueue
	logger *zap.SugaredLogger
}

func NewRegisterUseCase(store user.Store, queue *queues.SignupQueue, logger *zap.SugaredLogger) *RegisterUseCase {
	return &RegisterUseCase{
		store:  store,
		queue:  queue,
		logger: logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	// 1. Schema validation runs before any side effect.
	err := user.CredentialsSchema.Validate(map[string]any{
		"email":           req.Email,
		"password":        req.Password,
		"confirmPassword": req.ConfirmPassword,
	})
	if err != nil {
		return nil, err
	}

	// 2. Normalize, then enforce the address shape.
	email := user.NormalizeEmail(req.Email)
	if !user.ValidEmailShape(email) {
		return nil, &user.ValidationError{Field: "email", Reason: "has wrong format"}
	}

	if req.Password != req.ConfirmPassword {
		return nil, &user.ValidationError{Field: "confirmPassword", Reason: "does not match password"}
	}
	if err := crypto.ValidatePasswordStrength(req.Password); err != nil {
		return nil, &user.ValidationError{Field: "password", Reason: err.Error()}
	}

	// 3. Uniqueness pre-check. The store's unique index is the real guard;
	// this only produces a cheaper conflict for the common case.
	_, err = uc.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, user.ErrAccountNotFound):
		return nil, fmt.Errorf("usecase: register failed: %w", err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("usecase: register failed: %w", err)
	}

	account, err := uc.store.Insert(ctx, email, hash)
	if err != nil {
		// A losing concurrent insert surfaces here as a unique violation
		// and must look identical to the pre-check conflict.
		if errors.Is(err, user.ErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("usecase: register failed: %w", err)
	}

	uc.publishRegistered(account)

	return &RegisterResponse{ID: account.ID.String()}, nil
}

func (uc *RegisterUseCase) publishRegistered(account *user.Account) {
	if uc.queue == nil {
		return
	}

	event := queues.SignupEvent{
		Email:      account.Email,
		OccurredAt: time.Now().UTC(),
		UserID:     account.ID.String(),
	}

	if err := uc.queue.PublishRegistered(event); err != nil {
		uc.logger.Warnf("failed to publish signup event for %s: %v", account.Email, err)
	}
}
