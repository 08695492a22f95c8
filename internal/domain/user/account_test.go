package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ab@cd.com", NormalizeEmail("AB@CD.COM"))
	assert.Equal(t, "ab@cd.com", NormalizeEmail("  ab@cd.com "))
	assert.Equal(t, "ab@cd.com", NormalizeEmail("Ab@Cd.Com"))
}

func TestValidEmailShape(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ab@cd.com", true},
		{"someuser@example.org", true},
		{"a@cd.com", false},             // local part too short
		{"ab@c.com", false},             // domain too short
		{"ab@cd.c", false},              // tld too short
		{"ab@cd", false},                // no tld
		{"abcd.com", false},             // no @
		{"", false},
		{"ab@cd.com extra", false},      // trailing junk
		{"us er@cd.com", false},         // space is not a word character
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidEmailShape(tt.email), "email %q", tt.email)
	}
}
