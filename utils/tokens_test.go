package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	token, err := m.NewJWT("17", time.Minute)
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	sub, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse jwt: %v", err)
	}
	if sub != "17" {
		t.Errorf("subject = %q, want 17", sub)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT("17", time.Minute)
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	if _, err := m2.Parse(token); err == nil {
		t.Fatal("expected parse failure with a different signing key")
	}
}

func TestNewRefreshTokenIsRandom(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}

	if len(a) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(a))
	}
	if a == b {
		t.Error("two refresh tokens are identical")
	}
}
