package adapters

import (
	"github.com/jmoiron/sqlx"
	"github.com/moura95/credential-service/internal/domain/user"
)

type Repositories struct {
	User user.Store
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
	}
}
