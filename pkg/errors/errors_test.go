package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorIs(t *testing.T) {
	err := NewValidationError("name", "", "must not be empty")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "name")
}

func TestSourceErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSourceError("wiki", "/tmp/wiki.json", cause)

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wiki")
	assert.Contains(t, err.Error(), "/tmp/wiki.json")
}

func TestWrapHelpersPassNil(t *testing.T) {
	assert.NoError(t, WrapValidation("field", nil))
	assert.NoError(t, WrapSource("wiki", "", nil))
	assert.NoError(t, WrapParse("json", "", nil))
	assert.NoError(t, WrapIO("read", "", nil))
}

func TestParseErrorMessage(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewParseError("yaml", "dump.yaml", cause.Error(), cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "yaml")
	assert.Contains(t, err.Error(), "dump.yaml")
}
