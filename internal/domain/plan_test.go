package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in       string
		expected Platform
	}{
		{"web", PlatformWeb},
		{" IOS ", PlatformIOS},
		{"Android", PlatformAndroid},
		{"backend", PlatformBackend},
		{"desktop", PlatformUnknown},
		{"", PlatformUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ParsePlatform(tc.in), "ParsePlatform(%q)", tc.in)
	}
}

func TestInferPropertyType(t *testing.T) {
	tests := []struct {
		name     string
		expected PropertyType
	}{
		{"timestamp", TypeTimestamp},
		{"created_at", TypeTimestamp},
		{"error_code", TypeNumber},
		{"retry_count", TypeNumber},
		{"user_id", TypeString},
		{"page_url", TypeString},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, InferPropertyType(tc.name), "InferPropertyType(%q)", tc.name)
	}
}

func TestValidationError(t *testing.T) {
	err := NewMissingField("name")

	assert.Equal(t, "name", err.Field)
	assert.Equal(t, ErrKindMissingField, err.Kind)
	assert.Contains(t, err.Error(), `"name"`)
}
