package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsSlice(t *testing.T) {
	fallback := []string{"http://localhost:3000"}

	assert.Equal(t, fallback, getEnvAsSlice("CORS_TEST_UNSET", fallback))

	t.Setenv("CORS_TEST_LIST", "https://a.example.com, https://b.example.com ,")
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		getEnvAsSlice("CORS_TEST_LIST", fallback))

	t.Setenv("CORS_TEST_BLANK", " , ")
	assert.Equal(t, fallback, getEnvAsSlice("CORS_TEST_BLANK", fallback))
}
