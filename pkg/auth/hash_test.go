package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService()

	hash, err := hashService.HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService()
	hash, err := hashService.HashPassword("s3cret")
	assert.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "Correct Password",
			password:    "s3cret",
			expectError: false,
		},
		{
			name:        "Wrong Password",
			password:    "not-it",
			expectError: true,
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hashService.ComparePassword(hash, tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
