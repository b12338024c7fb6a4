package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signedToken(t *testing.T, claims jwt.StandardClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestActiveRequiresToken(t *testing.T) {
	if (&Session{}).Active() {
		t.Fatal("expected empty session to be inactive")
	}
	if (&Session{Token: "   "}).Active() {
		t.Fatal("expected blank token to be inactive")
	}
}

func TestActiveRejectsExpiredToken(t *testing.T) {
	tok := signedToken(t, jwt.StandardClaims{
		Subject:   "42",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})

	if New(tok, "user@example.com").Active() {
		t.Fatal("expected expired token to be inactive")
	}
}

func TestActiveAcceptsLiveToken(t *testing.T) {
	tok := signedToken(t, jwt.StandardClaims{
		Subject:   "42",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})

	s := New(tok, "user@example.com")
	if !s.Active() {
		t.Fatal("expected live token to be active")
	}
	if TokenSubject(tok) != "42" {
		t.Fatalf("expected subject 42, got %q", TokenSubject(tok))
	}
}

func TestActiveToleratesOpaqueToken(t *testing.T) {
	// Not a JWT at all; expiry is the server's problem.
	if !New("opaque-bearer-token", "").Active() {
		t.Fatal("expected unparseable token to be treated as active")
	}
}

func TestClear(t *testing.T) {
	s := New("tok", "user@example.com")
	s.DriveLinked = true
	s.Clear()

	if s.Token != "" || s.Email != "" || s.DriveLinked {
		t.Fatalf("expected cleared session, got %+v", s)
	}
}

func TestTokenExpiryMissingClaim(t *testing.T) {
	tok := signedToken(t, jwt.StandardClaims{Subject: "42"})
	if _, ok := TokenExpiry(tok); ok {
		t.Fatal("expected no expiry for token without exp claim")
	}
}
