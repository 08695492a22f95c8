package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moura95/credential-service/internal/domain/user"
)

// Respond writes payload as indented JSON. Map payloads (gin.H) marshal
// with sorted keys, which keeps response bodies byte-deterministic. A nil
// payload becomes an empty 204.
func Respond(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.IndentedJSON(status, payload)
}

// RespondError converts err into its status code and {"error": …} body.
func RespondError(c *gin.Context, err error) {
	Respond(c, StatusOf(err), gin.H{"error": err.Error()})
}

// StatusOf is the single place where the error taxonomy meets HTTP. Every
// typed error maps to exactly one status; anything unrecognized is a 500
// whose message is surfaced as-is.
func StatusOf(err error) int {
	var validationErr *user.ValidationError
	var malformedErr *MalformedBodyError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &malformedErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrAccountNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
