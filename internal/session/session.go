// Package session holds the client's proof of authentication and the
// profile fields cached from /me.
package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

type Session struct {
	Token       string
	Email       string
	DriveLinked bool
}

func New(token, email string) *Session {
	return &Session{Token: token, Email: email}
}

// Active reports whether the session holds a usable token. The server
// issues JWTs, so expiry can be read client-side without the signing
// secret; a token that fails to parse is given the benefit of the doubt
// and left for the server to reject.
func (s *Session) Active() bool {
	if s == nil || strings.TrimSpace(s.Token) == "" {
		return false
	}
	if exp, ok := TokenExpiry(s.Token); ok && time.Now().After(exp) {
		return false
	}
	return true
}

// Clear drops the credential and cached profile in place.
func (s *Session) Clear() {
	s.Token = ""
	s.Email = ""
	s.DriveLinked = false
}

// TokenExpiry reads the exp claim without verifying the signature.
func TokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == 0 {
		return time.Time{}, false
	}
	return time.Unix(claims.ExpiresAt, 0), true
}

// TokenSubject reads the sub claim (the server's user id) without
// verifying the signature.
func TokenSubject(token string) string {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Subject
}
