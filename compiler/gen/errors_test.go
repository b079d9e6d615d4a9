package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownOptionError(t *testing.T) {
	t.Run("Error message names the option", func(t *testing.T) {
		err := NewUnknownOptionError("frozzen")
		assert.Contains(t, err.Error(), "recordgen: unknown option")
		assert.Contains(t, err.Error(), "frozzen")
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := NewUnknownOptionError("slotz")
		assert.True(t, errors.Is(err, ErrUnknownOption))
		assert.False(t, errors.Is(err, ErrInvalidOptionValue))
	})

	t.Run("IsUnknownOptionError helper", func(t *testing.T) {
		assert.True(t, IsUnknownOptionError(NewUnknownOptionError("x")))
		assert.True(t, IsUnknownOptionError(fmt.Errorf("load: %w", NewUnknownOptionError("x"))))
		assert.False(t, IsUnknownOptionError(errors.New("other")))
	})
}

func TestInvalidOptionValueError(t *testing.T) {
	t.Run("Error message carries option and value", func(t *testing.T) {
		err := NewInvalidOptionValueError("eq", "yes")
		assert.Contains(t, err.Error(), "recordgen: invalid value")
		assert.Contains(t, err.Error(), "eq")
		assert.Contains(t, err.Error(), "yes")
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := NewInvalidOptionValueError("order", 1)
		assert.True(t, errors.Is(err, ErrInvalidOptionValue))
		assert.True(t, IsInvalidOptionValueError(err))
	})
}

func TestDuplicateFieldNameError(t *testing.T) {
	t.Run("Error message names type and field", func(t *testing.T) {
		err := NewDuplicateFieldNameError("Point", "x")
		assert.Contains(t, err.Error(), "Point")
		assert.Contains(t, err.Error(), "x")
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := NewDuplicateFieldNameError("Point", "x")
		assert.True(t, errors.Is(err, ErrDuplicateFieldName))
		assert.True(t, IsDuplicateFieldNameError(err))
	})
}

func TestOptionConflictErrors(t *testing.T) {
	t.Run("order without eq", func(t *testing.T) {
		err := NewOrderRequiresEqError("Version")
		assert.Contains(t, err.Error(), "Version")
		assert.True(t, errors.Is(err, ErrOrderRequiresEq))
		assert.True(t, IsOrderRequiresEqError(err))
		assert.False(t, IsHashRequiresEqError(err))
	})

	t.Run("unsafe_hash without eq", func(t *testing.T) {
		err := NewHashRequiresEqError("Token")
		assert.Contains(t, err.Error(), "Token")
		assert.True(t, errors.Is(err, ErrHashRequiresEq))
		assert.True(t, IsHashRequiresEqError(err))
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewSchemaError("Account", "email", "invalid name", cause)

		assert.Contains(t, err.Error(), "recordgen: schema error")
		assert.Contains(t, err.Error(), "type Account")
		assert.Contains(t, err.Error(), "field email")
		assert.Contains(t, err.Error(), "invalid name")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with type only", func(t *testing.T) {
		err := &SchemaError{Type: "Account"}
		assert.Contains(t, err.Error(), "type Account")
		assert.NotContains(t, err.Error(), "field")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewSchemaError("Account", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrInvalidSchema", func(t *testing.T) {
		err := NewSchemaError("Account", "", "", nil)
		assert.True(t, errors.Is(err, ErrInvalidSchema))
	})

	t.Run("IsSchemaError helper", func(t *testing.T) {
		assert.True(t, IsSchemaError(NewSchemaError("Account", "email", "test", nil)))
		assert.False(t, IsSchemaError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Workers", -1, "must be non-negative")

		assert.Contains(t, err.Error(), "recordgen: config error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be non-negative")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")
		assert.Contains(t, err.Error(), "Target")
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		require.True(t, IsConfigError(NewConfigError("Target", nil, "missing")))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}
