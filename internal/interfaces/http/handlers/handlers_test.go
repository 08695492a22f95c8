package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authUC "github.com/moura95/credential-service/internal/application/usecases/auth"
	userUC "github.com/moura95/credential-service/internal/application/usecases/user"
	"github.com/moura95/credential-service/internal/domain/user"
	"go.uber.org/zap"
)

// memoryStore backs the handler tests; it enforces uniqueness the same way
// the postgres adapter's unique index does.
type memoryStore struct {
	mu      sync.Mutex
	byEmail map[string]*user.Account
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byEmail: make(map[string]*user.Account)}
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*user.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*user.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.byEmail {
		if account.ID == id {
			copied := *account
			return &copied, nil
		}
	}
	return nil, user.ErrAccountNotFound
}

func (m *memoryStore) Insert(_ context.Context, email, passwordHash string) (*user.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[email]; exists {
		return nil, user.ErrUniqueViolation
	}

	account := &user.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.byEmail[email] = account

	copied := *account
	return &copied, nil
}

// newTestRouter wires the handlers exactly like the server does.
func newTestRouter(store user.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	registerUC := authUC.NewRegisterUseCase(store, nil, zap.NewNop().Sugar())
	loginUC := authUC.NewLoginUseCase(store)
	getUserUC := userUC.NewGetUserUseCase(store)

	authHandler := NewAuthHandler(registerUC, loginUC)
	userHandler := NewUserHandler(getUserUC)

	users := router.Group("/user")
	{
		users.POST("/registration", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/:username", userHandler.GetUser)
	}

	notFound := func(c *gin.Context) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "not found"})
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)

	return router
}
