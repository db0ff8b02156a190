package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected user id: %d", id)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}
