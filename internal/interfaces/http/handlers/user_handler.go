package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	userUC "github.com/moura95/credential-service/internal/application/usecases/user"
	"github.com/moura95/credential-service/pkg/ginx"
)

type UserHandler struct {
	getUserUseCase *userUC.GetUserUseCase
}

func NewUserHandler(getUserUC *userUC.GetUserUseCase) *UserHandler {
	return &UserHandler{
		getUserUseCase: getUserUC,
	}
}

// GetUser acknowledges that a username (email or id) has an account.
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	if err := h.getUserUseCase.Execute(c.Request.Context(), username); err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Respond(c, http.StatusOK, gin.H{"ok": true})
}
