package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected error for empty signing key")
	}
	if _, err := NewManager("secret"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("secret")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT("user-42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "user-42" {
		t.Errorf("subject = %q, want %q", sub, "user-42")
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	m, _ := NewManager("secret")
	other, _ := NewManager("different")

	token, err := m.NewJWT("user-42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := other.Parse(token); err == nil {
		t.Error("expected parse to fail for a token signed with another key")
	}
}

func TestNewRefreshTokenIsUnique(t *testing.T) {
	m, _ := NewManager("secret")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(a))
	}
	if a == b {
		t.Error("two refresh tokens should not collide")
	}
}
