package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/moura95/credential-service/internal/domain/user"
)

const pgUniqueViolation = "23505"

type userRow struct {
	UUID      uuid.UUID `db:"uuid"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Store {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.Account, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT uuid, email, password, created_at FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: find by email failed: %w", err)
	}

	return rowToAccount(row), nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.Account, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT uuid, email, password, created_at FROM users WHERE uuid = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: find by id failed: %w", err)
	}

	return rowToAccount(row), nil
}

func (r *userRepository) Insert(ctx context.Context, email, passwordHash string) (*user.Account, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`INSERT INTO users (email, password) VALUES ($1, $2)
		 RETURNING uuid, email, password, created_at`, email, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, user.ErrUniqueViolation
		}
		return nil, fmt.Errorf("repository: insert user failed: %w", err)
	}

	return rowToAccount(row), nil
}

func rowToAccount(row userRow) *user.Account {
	return &user.Account{
		ID:           row.UUID,
		Email:        row.Email,
		PasswordHash: row.Password,
		CreatedAt:    row.CreatedAt,
	}
}
