package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS users (
	uuid         UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	email        VARCHAR(100) NOT NULL UNIQUE,
	password     TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

func Connect(dbSource string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dbSource)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate applies the users schema. The UNIQUE constraint on email is what
// makes concurrent duplicate registrations lose at insert time instead of
// racing past the pre-check.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
