package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "alice", "CUSTOMER", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token string")
	}
	if !at.Exp.After(time.Now().UTC()) {
		t.Error("expiry should be in the future")
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse back failed: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if claims["username"] != "alice" {
		t.Errorf("username = %v, want alice", claims["username"])
	}
	if claims["role"] != "CUSTOMER" {
		t.Errorf("role = %v, want CUSTOMER", claims["role"])
	}
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right", 1, "bob", "CUSTOMER", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	if err == nil && tok.Valid {
		t.Error("token validated with the wrong secret")
	}
}

func TestNewRefreshToken(t *testing.T) {
	rt, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 { // 48 bytes hex-encoded
		t.Errorf("raw token length = %d, want 96", len(rt.Raw))
	}
	if !rt.Exp.After(time.Now().UTC().Add(6 * 24 * time.Hour)) {
		t.Error("expiry should be about 7 days out")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	a := HashRefreshRaw("token-a")
	b := HashRefreshRaw("token-a")
	c := HashRefreshRaw("token-b")
	if a != b {
		t.Error("hash is not deterministic")
	}
	if a == c {
		t.Error("different tokens hashed identically")
	}
	if len(a) != 64 { // sha256 hex digest
		t.Errorf("digest length = %d, want 64", len(a))
	}
}
