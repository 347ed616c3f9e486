package validator

import (
	"testing"

	domainerrors "usermgr/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   int64  `validate:"required,gt=0"`
	Name string `validate:"max=5"`
	Role string `validate:"omitempty,oneof=ADMIN USER"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{ID: 1, Name: "bob", Role: "USER"}))

	err := v.Validate(&sample{ID: 0, Name: "toolong", Role: "ROOT"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "id is required")
	assert.Contains(t, appErr.Details(), "name must be at most 5 characters")
	assert.Contains(t, appErr.Details(), "role must be one of: ADMIN USER")
}
