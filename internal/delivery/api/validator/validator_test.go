package validator

import (
	"strings"
	"testing"

	domainerrors "github.com/IbrahimMurad/alx-files-manager/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"max=5"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "ok"}))

	err := v.Validate(&sample{Name: strings.Repeat("x", 6)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name failed max", appErr.Details())
}
