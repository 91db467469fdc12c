package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", time.Hour, 24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	issuer := testIssuer()
	userID := uuid.New()

	token, err := issuer.AccessToken(userID)
	if err != nil {
		t.Fatalf("AccessToken() error: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("expected access type, got %s", claims.Type)
	}

	parsed, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error: %v", err)
	}
	if parsed != userID {
		t.Errorf("expected user %s, got %s", userID, parsed)
	}
}

func TestRefreshToken_TypeAndJTI(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.RefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("RefreshToken() error: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("expected refresh type, got %s", claims.Type)
	}
	if claims.ID == "" {
		t.Error("expected refresh token to carry a jti")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := testIssuer().AccessToken(uuid.New())
	if err != nil {
		t.Fatalf("AccessToken() error: %v", err)
	}

	other := NewTokenIssuer("different-secret", time.Hour, 24*time.Hour)
	if _, err := other.Parse(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute, 24*time.Hour)
	token, err := issuer.AccessToken(uuid.New())
	if err != nil {
		t.Fatalf("AccessToken() error: %v", err)
	}

	if _, err := issuer.Parse(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := testIssuer().Parse("not.a.token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("hunter2hunter2", hash) {
		t.Error("expected password to verify against its own hash")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}
