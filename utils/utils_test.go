package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***n@e******.com", MaskEmail("admin@example.com"))
	assert.Equal(t, "a*@e******.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "a@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TRAVEL_ADMIN_TEST_KEY", "set")
	assert.Equal(t, "set", EnvOrDefault("TRAVEL_ADMIN_TEST_KEY", "fallback"))

	t.Setenv("TRAVEL_ADMIN_TEST_KEY", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("TRAVEL_ADMIN_TEST_KEY", "fallback"))
}
