package auth

import (
	"errors"
	"testing"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("user-1", "a@b.c", "Ada")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Sub != "user-1" {
		t.Fatalf("expected sub user-1, got %q", claims.Sub)
	}
	if claims.Email != "a@b.c" {
		t.Fatalf("expected email a@b.c, got %q", claims.Email)
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("user-1", "", "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := SignToken("user-1", "", ""); err == nil {
		t.Fatal("expected error without secret")
	}
}
