package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("value", "field"))
	assert.Error(t, ValidateRequired("", "field"))
	assert.Error(t, ValidateRequired("   ", "field"))
}

func TestValidateMaxLength(t *testing.T) {
	assert.NoError(t, ValidateMaxLength("short", 10, "field"))
	assert.Error(t, ValidateMaxLength(strings.Repeat("x", 11), 10, "field"))
}

func TestValidateUUID(t *testing.T) {
	assert.NoError(t, ValidateUUID(uuid.New().String(), "id"))
	assert.Error(t, ValidateUUID("not-a-uuid", "id"))
}

func TestValidatePositive(t *testing.T) {
	assert.NoError(t, ValidatePositive(0.5, "value"))
	assert.Error(t, ValidatePositive(0, "value"))
	assert.Error(t, ValidatePositive(-2, "value"))
}
