// Package auth signs and verifies the bearer token that gates the record
// store: "{username}:{epochMillis}.{hex hmac-sha256}".
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Claims struct {
	Username string
	IssuedAt time.Time
}

type Authority struct {
	secret []byte
	maxAge time.Duration
}

// NewAuthority builds a token authority. maxAge 0 disables the age check and
// tokens stay valid until the secret rotates.
func NewAuthority(secret string, maxAge time.Duration) *Authority {
	return &Authority{secret: []byte(secret), maxAge: maxAge}
}

func (a *Authority) sign(payload string) string {
	mac := hmac.New(sha256.New, a.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (a *Authority) CreateToken(username string) string {
	payload := fmt.Sprintf("%s:%d", username, time.Now().UnixMilli())
	return payload + "." + a.sign(payload)
}

// Parse returns nil for a malformed token, a signature mismatch, an
// unparseable payload, or an expired token.
func (a *Authority) Parse(token string) *Claims {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok || payload == "" || signature == "" {
		return nil
	}

	expected := a.sign(payload)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return nil
	}

	username, ts, ok := strings.Cut(payload, ":")
	if !ok || username == "" || ts == "" {
		return nil
	}
	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil
	}

	issuedAt := time.UnixMilli(millis)
	if a.maxAge > 0 && time.Since(issuedAt) > a.maxAge {
		return nil
	}

	return &Claims{Username: username, IssuedAt: issuedAt}
}
