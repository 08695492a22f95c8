package gin

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	authUC "github.com/moura95/credential-service/internal/application/usecases/auth"
	userUC "github.com/moura95/credential-service/internal/application/usecases/user"
	"github.com/moura95/credential-service/internal/infra/config"
	"github.com/moura95/credential-service/internal/infra/messaging/queues"
	"github.com/moura95/credential-service/internal/infra/repository/adapters"
	"github.com/moura95/credential-service/internal/interfaces/http/handlers"
	"go.uber.org/zap"
)

type Server struct {
	router      *gin.Engine
	config      *config.Config
	logger      *zap.SugaredLogger
	signupQueue *queues.SignupQueue
}

func NewServer(cfg config.Config, db *sqlx.DB, log *zap.SugaredLogger, signupQueue *queues.SignupQueue) *Server {
	server := &Server{
		config:      &cfg,
		logger:      log,
		signupQueue: signupQueue,
	}

	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddAllowHeaders("Content-Type")
	router.Use(cors.New(corsConfig))

	createRoutes(db, router, log, signupQueue)

	server.router = router
	return server
}

func createRoutes(db *sqlx.DB, router *gin.Engine, log *zap.SugaredLogger, signupQueue *queues.SignupQueue) {
	// Initialize repositories
	repositories := adapters.NewRepositories(db)

	// Use cases get their store and hasher collaborators here, never from
	// package-level state.
	registerUC := authUC.NewRegisterUseCase(repositories.User, signupQueue, log)
	loginUC := authUC.NewLoginUseCase(repositories.User)
	getUserUC := userUC.NewGetUserUseCase(repositories.User)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	userHandler := handlers.NewUserHandler(getUserUC)

	users := router.Group("/user")
	{
		users.POST("/registration", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/:username", userHandler.GetUser)
	}

	// Unmatched routes and methods answer with the same JSON 404 shape as
	// every other error.
	notFound := func(c *gin.Context) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"error": "not found"})
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)
}

func (s *Server) Start(address string) error {
	s.logger.Infof("Starting server on %s", address)
	return s.router.Run(address)
}

func RunGinServer(cfg config.Config, db *sqlx.DB, log *zap.SugaredLogger, signupQueue *queues.SignupQueue) {
	server := NewServer(cfg, db, log, signupQueue)

	if err := server.Start(cfg.HTTPServerAddress); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
