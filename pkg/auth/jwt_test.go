package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	tests := []struct {
		name        string
		adminID     string
		expectError bool
	}{
		{
			name:        "Valid Token",
			adminID:     "a8b2f6de-1111-4e61-9f00-000000000001",
			expectError: false,
		},
		{
			name:        "Empty Admin ID",
			adminID:     "",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.adminID)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret", time.Hour)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("admin-1")
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				expired := NewJWTService("test-secret", -time.Hour)
				token, _ := expired.GenerateJWT("admin-1")
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong Secret",
			setup: func() string {
				other := NewJWTService("other-secret", time.Hour)
				token, _ := other.GenerateJWT("admin-1")
				return token
			},
			expectError: true,
		},
		{
			name: "Missing Admin ID",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				claims := Claims{
					AdminID: "admin-1",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, "admin-1", claims.AdminID)
			}
		})
	}
}
