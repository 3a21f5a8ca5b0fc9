package service

import (
	"testing"
	"time"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	want := domain.Identity{ID: "u1", Name: "Alice", Email: "alice@example.com", IsAdmin: true}
	token, err := svc.Issue(want)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if *got != want {
		t.Fatalf("identity mismatch: got %+v, want %+v", *got, want)
	}
}

func TestTokenService_Expired(t *testing.T) {
	issuer := &TokenService{secret: []byte("secret"), ttl: -time.Hour}
	token, err := issuer.Issue(domain.Identity{ID: "u1", Name: "Alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	verifier := NewTokenService("secret", time.Hour)
	if _, err := verifier.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	token, err := issuer.Issue(domain.Identity{ID: "u1"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	verifier := NewTokenService("secret-b", time.Hour)
	if _, err := verifier.Verify(token); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify("not-a-token"); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, err := svc.Issue(domain.Identity{ID: "u1", Name: "Alice"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// flip a byte in the payload segment
	b := []byte(token)
	mid := len(b) / 2
	if b[mid] == 'a' {
		b[mid] = 'b'
	} else {
		b[mid] = 'a'
	}

	if _, err := svc.Verify(string(b)); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTokenTTL, svc.ttl)
	}
}
