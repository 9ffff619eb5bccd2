// file: internals/helpers/validate_test.go
package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "github.com/Harus-Bisa/backend/internals/helpers"
)

type samplePayload struct {
	First  *string `json:"firstThing" validate:"required"`
	Second *string `json:"secondThing" validate:"required"`
}

func TestFirstInvalidFieldUsesJSONNameAndOrder(t *testing.T) {
	field, invalid := helper.FirstInvalidField(&samplePayload{})
	assert.True(t, invalid)
	assert.Equal(t, "firstThing", field)

	v := "present"
	field, invalid = helper.FirstInvalidField(&samplePayload{First: &v})
	assert.True(t, invalid)
	assert.Equal(t, "secondThing", field)

	_, invalid = helper.FirstInvalidField(&samplePayload{First: &v, Second: &v})
	assert.False(t, invalid)
}
