package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authUC "github.com/moura95/credential-service/internal/application/usecases/auth"
	"github.com/moura95/credential-service/pkg/ginx"
)

type AuthHandler struct {
	registerUseCase *authUC.RegisterUseCase
	loginUseCase    *authUC.LoginUseCase
}

func NewAuthHandler(registerUC *authUC.RegisterUseCase, loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
	}
}

// Register creates a new account from {email, password, confirmPassword}.
func (h *AuthHandler) Register(c *gin.Context) {
	var req authUC.RegisterRequest

	if err := ginx.ParseJSON(c, &req); err != nil {
		ginx.RespondError(c, err)
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Respond(c, http.StatusCreated, gin.H{"id": result.ID})
}

// Login asserts credential validity for {email|id, password}. It issues no
// session or token; success is a status body only.
func (h *AuthHandler) Login(c *gin.Context) {
	var req authUC.LoginRequest

	if err := ginx.ParseJSON(c, &req); err != nil {
		ginx.RespondError(c, err)
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Respond(c, http.StatusOK, gin.H{"status": result.Status})
}
