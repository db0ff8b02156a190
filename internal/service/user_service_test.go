package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ianrury/api-tash-manajement/internal/auth"
	"github.com/Ianrury/api-tash-manajement/internal/repo"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ian Roery", "ian", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.PasswordHash == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword("secret123", u.PasswordHash) {
		t.Fatal("stored hash does not verify the password")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ian", "ian", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Impostor", "ian", "other456"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestValidateCredentialsIndistinguishable(t *testing.T) {
	svc := NewUserService(repo.NewMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ian", "ian", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown username and wrong password must fail identically.
	_, errUnknown := svc.ValidateCredentials(ctx, "nobody", "secret123")
	_, errWrongPw := svc.ValidateCredentials(ctx, "ian", "wrong")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}

	u, err := svc.ValidateCredentials(ctx, "ian", "secret123")
	if err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if u.Username != "ian" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
