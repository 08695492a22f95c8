package ginx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrUnsupportedMediaType rejects bodies that are not declared as JSON.
var ErrUnsupportedMediaType = errors.New("expected application/json")

// MalformedBodyError wraps any failure while decoding a request body.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// ParseJSON decodes the request body into v. The Content-Type header must
// start with application/json, and at most Content-Length bytes are read.
func ParseJSON(c *gin.Context, v any) error {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return ErrUnsupportedMediaType
	}

	var reader io.Reader = c.Request.Body
	if c.Request.ContentLength >= 0 {
		reader = io.LimitReader(c.Request.Body, c.Request.ContentLength)
	}

	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return &MalformedBodyError{Err: err}
	}
	return nil
}
