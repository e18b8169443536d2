package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestJWTTokenServiceRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "taskmanager-test", time.Hour)
	userID := uuid.New()

	signed, err := svc.GenerateToken(userID, "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !token.Valid {
		t.Fatal("token must be valid")
	}

	if claims.Subject != userID.String() {
		t.Fatalf("subject = %q, want %q", claims.Subject, userID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username = %q, want alice", claims.Username)
	}
	if claims.Issuer != "taskmanager-test" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("token id must be set")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 || ttl > time.Hour {
		t.Fatalf("expiry out of range: %v", ttl)
	}
}

func TestJWTTokenServiceRejectsWrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "taskmanager-test", time.Hour)

	signed, err := svc.GenerateToken(uuid.New(), "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = jwt.ParseWithClaims(signed, &SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Fatal("wrong secret must fail verification")
	}
}

func TestTokenExpirationTracksDuration(t *testing.T) {
	svc := NewJWTTokenService("test-secret", "taskmanager-test", 24*time.Hour)

	until := time.Until(svc.TokenExpiration())
	if until < 23*time.Hour || until > 24*time.Hour {
		t.Fatalf("expiration out of range: %v", until)
	}
}
