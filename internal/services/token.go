package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionClaims are the claims embedded in issued session tokens.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenService issues HS256-signed session tokens. It implements
// ports.TokenIssuer.
type JWTTokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewJWTTokenService(secret, issuer string, duration time.Duration) *JWTTokenService {
	return &JWTTokenService{secret: []byte(secret), issuer: issuer, duration: duration}
}

func (s *JWTTokenService) GenerateToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (s *JWTTokenService) TokenExpiration() time.Time {
	return time.Now().UTC().Add(s.duration)
}
