package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "agent-credit"

type JWTServiceInterface interface {
	GenerateJWT(adminID string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *JWTService) GenerateJWT(adminID string) (string, error) {
	claims := Claims{
		AdminID: adminID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.ttl).Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AdminID == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
