package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	zero := 0.0
	assert.NoError(t, v.Validate(&sample{Latitude: &zero, Longitude: &zero}))

	tooFar := 200.0
	err := v.Validate(&sample{Latitude: &zero, Longitude: &tooFar})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"longitude": "max=180"}, FieldErrors(err))

	err = v.Validate(&sample{})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"latitude": "required", "longitude": "required"}, FieldErrors(err))

	assert.Nil(t, FieldErrors(assert.AnError))
}
