package validation_test

import (
	"testing"

	"github.com/Dosada05/hero-registry/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createInput struct {
	Name       *string `json:"name" validate:"required"`
	SecretName *string `json:"secret_name" validate:"required"`
	Age        *int    `json:"age" validate:"omitempty,gte=0"`
}

type windowInput struct {
	Offset *int `json:"offset" validate:"omitempty,gte=0"`
	Limit  *int `json:"limit" validate:"omitempty,gte=0,lte=100"`
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestStructValid(t *testing.T) {
	err := validation.Struct(createInput{
		Name:       strPtr("Deadpond"),
		SecretName: strPtr("Dive Wilson"),
	})
	assert.NoError(t, err)
}

func TestStructReportsEveryFailingField(t *testing.T) {
	err := validation.Struct(createInput{})
	require.Error(t, err)

	vErrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Len(t, vErrs, 2)
	assert.Equal(t, "field required", vErrs["name"])
	assert.Equal(t, "field required", vErrs["secret_name"])
}

func TestStructUsesJSONTagNames(t *testing.T) {
	err := validation.Struct(createInput{Name: strPtr("Deadpond")})
	require.Error(t, err)

	vErrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, vErrs, "secret_name")
	assert.NotContains(t, vErrs, "SecretName")
}

func TestStructSkipsNilOptionalFields(t *testing.T) {
	err := validation.Struct(windowInput{})
	assert.NoError(t, err)
}

func TestStructBoundsMessages(t *testing.T) {
	err := validation.Struct(windowInput{Offset: intPtr(-1), Limit: intPtr(101)})
	require.Error(t, err)

	vErrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Equal(t, "must be 0 or greater", vErrs["offset"])
	assert.Equal(t, "must be 100 or less", vErrs["limit"])
}

func TestErrorsMessageFormat(t *testing.T) {
	err := validation.Errors{"name": "field required"}
	assert.Equal(t, "validation failed: name: field required", err.Error())
}
