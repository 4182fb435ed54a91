// File: internal/dto/validate_test.go
package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestFirstError(t *testing.T) {
	v := validator.New()

	// required
	err := v.Struct(&SignupRequest{})
	require.Error(t, err)
	require.Equal(t, "name is required", FirstError(err))

	// email format
	err = v.Struct(&SignupRequest{Name: "A", Email: "not-an-email", Password: "p"})
	require.Error(t, err)
	require.Equal(t, "email must be a valid email address", FirstError(err))

	// max length
	err = v.Struct(&SignupRequest{Name: strings.Repeat("x", 51), Email: "a@x.com", Password: "p"})
	require.Error(t, err)
	require.Equal(t, "name must be at most 50 characters", FirstError(err))

	// only the first failing field is reported
	err = v.Struct(&LoginRequest{})
	require.Error(t, err)
	require.Equal(t, "email is required", FirstError(err))

	// non-validator errors pass through
	require.Equal(t, "boom", FirstError(errors.New("boom")))
}

func TestRequestsValid(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(&SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}))
	require.NoError(t, v.Struct(&LoginRequest{Email: "alice@example.com", Password: "pw"}))
}
