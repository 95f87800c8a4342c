package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/validator"
)

type subject struct {
	Name  string `validate:"required,max=10"`
	Floor int    `validate:"gt=0"`
	Email string `validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	t.Run("valid subject passes", func(t *testing.T) {
		err := validator.Struct(subject{Name: "101A", Floor: 1})

		assert.NoError(t, err)
	})

	t.Run("violations become one validation failure", func(t *testing.T) {
		err := validator.Struct(subject{Email: "nope"})

		assert.Error(t, err)
		assert.True(t, failure.IsValidation(err))
		assert.Contains(t, err.Error(), "Name is required")
		assert.Contains(t, err.Error(), "Floor must be greater than 0")
		assert.Contains(t, err.Error(), "Email must be a valid email address")
	})

	t.Run("non-struct subject fails", func(t *testing.T) {
		err := validator.Struct("not a struct")

		assert.Error(t, err)
		assert.True(t, failure.IsValidation(err))
	})
}
