package helper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDBError(t *testing.T) {
	assert.Nil(t, FromDBError(nil))

	assert.ErrorIs(t, FromDBError(gorm.ErrDuplicatedKey), ErrConflict)
	assert.ErrorIs(t, FromDBError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, FromDBError(context.DeadlineExceeded), ErrTransientStore)
	assert.ErrorIs(t, FromDBError(context.Canceled), ErrTransientStore)

	// erro embrulhado ainda é classificado
	wrapped := fmt.Errorf("create church: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, FromDBError(wrapped), ErrConflict)

	// erro desconhecido passa intacto
	plain := errors.New("disco cheio")
	assert.Equal(t, plain, FromDBError(plain))
}

func TestFromDBErrorKeepsSentinels(t *testing.T) {
	// sentinela já classificado não muda de categoria
	assert.ErrorIs(t, FromDBError(ErrConflict), ErrConflict)
	assert.ErrorIs(t, FromDBError(ErrValidation), ErrValidation)
}

func TestStatusFromError(t *testing.T) {
	cases := map[error]int{
		ErrValidation:          fiber.StatusUnprocessableEntity,
		ErrConflict:            fiber.StatusConflict,
		ErrNotFound:            fiber.StatusNotFound,
		ErrUnauthorized:        fiber.StatusUnauthorized,
		ErrForbidden:           fiber.StatusForbidden,
		ErrTransientStore:      fiber.StatusServiceUnavailable,
		ErrPartialProvisioning: fiber.StatusAccepted,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFromError(err), "erro %v", err)
	}
	assert.Equal(t, fiber.StatusInternalServerError, StatusFromError(errors.New("qualquer coisa")))
}
