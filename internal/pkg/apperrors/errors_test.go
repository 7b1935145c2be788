package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", ErrCourseNotFound)

	assert.True(t, errors.Is(wrapped, ErrCourseNotFound))
	assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.False(t, errors.Is(wrapped, ErrValidationFailed))
	assert.Equal(t, "loading: course not found", wrapped.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("name", "name cannot be blank")

	assert.ErrorIs(t, err, ErrValidationFailed)

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, "name", custom.Field())
	assert.Equal(t, "name cannot be blank", custom.Error())
}

func TestCustomError_Fallbacks(t *testing.T) {
	assert.Equal(t, "validation failed", (&CustomError{Err: ErrValidationFailed}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
	assert.Empty(t, (&CustomError{}).Field())
}
