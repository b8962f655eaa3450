package auth

import (
	"errors"
	"testing"
	"time"
)

func TestMintVerify_RoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret", 7*24*time.Hour)

	token, err := ti.Mint(42, "amina@example.com")
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	claims, err := ti.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d", claims.UserID)
	}
	if claims.Email != "amina@example.com" {
		t.Fatalf("email mismatch: got %s", claims.Email)
	}
}

func TestVerify_ExpiresAfterSevenDays(t *testing.T) {
	ti := NewTokenIssuer("test-secret", 7*24*time.Hour)

	minted := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ti.nowFunc = func() time.Time { return minted }

	token, err := ti.Mint(7, "a@b.com")
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	// still valid just inside the window
	ti.nowFunc = func() time.Time { return minted.Add(7*24*time.Hour - time.Minute) }
	if _, err := ti.Verify(token); err != nil {
		t.Fatalf("expected token valid inside window, got: %v", err)
	}

	// rejected once the window has elapsed
	ti.nowFunc = func() time.Time { return minted.Add(7*24*time.Hour + time.Minute) }
	_, err = ti.Verify(token)
	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := ti.Mint(1, "a@b.com")
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestVerify_Garbage(t *testing.T) {
	ti := NewTokenIssuer("test-secret", time.Hour)
	if _, err := ti.Verify("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
