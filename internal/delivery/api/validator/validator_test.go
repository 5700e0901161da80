package validator

import (
	"testing"

	domainerrors "sommelier/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required,max=5"`
	Rating *int   `json:"rating" validate:"required,min=0,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	rating := 3

	require.NoError(t, v.Validate(&sample{Name: "ok", Rating: &rating}))

	err := v.Validate(&sample{Rating: &rating})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvalid, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), "name failed the required rule")

	high := 9
	err = v.Validate(&sample{Name: "ok", Rating: &high})
	assert.Contains(t, err.Error(), "rating failed the max rule")
}
