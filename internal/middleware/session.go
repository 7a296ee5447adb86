package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const sessionSubject = "owner"

var (
	errTokenFormat    = errors.New("invalid token format")
	errTokenSignature = errors.New("invalid token signature")
	errTokenPayload   = errors.New("invalid token payload")
	errTokenExpired   = errors.New("token expired")
)

type sessionPayload struct {
	Exp int64  `json:"exp"`
	Sub string `json:"sub"`
	N   string `json:"n,omitempty"`
}

func signToken(secret []byte, payload sessionPayload) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	p := base64.RawURLEncoding.EncodeToString(b)
	return p + "." + sign(secret, p), nil
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verifyToken(secret []byte, token string, now time.Time) (sessionPayload, error) {
	p, sig, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok || p == "" || sig == "" {
		return sessionPayload{}, errTokenFormat
	}

	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return sessionPayload{}, errTokenSignature
	}
	want, _ := base64.RawURLEncoding.DecodeString(sign(secret, p))
	if !hmac.Equal(want, got) {
		return sessionPayload{}, errTokenSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(p)
	if err != nil {
		return sessionPayload{}, errTokenPayload
	}
	var sp sessionPayload
	if err := json.Unmarshal(raw, &sp); err != nil || sp.Exp == 0 || sp.Sub == "" {
		return sessionPayload{}, errTokenPayload
	}
	if now.Unix() > sp.Exp {
		return sessionPayload{}, errTokenExpired
	}
	return sp, nil
}

func (m Middleware) newSessionToken() (string, error) {
	n := make([]byte, 16)
	if _, err := rand.Read(n); err != nil {
		return "", err
	}
	return signToken(m.secret, sessionPayload{
		Exp: m.now().Add(m.ttl).Unix(),
		Sub: sessionSubject,
		N:   base64.RawURLEncoding.EncodeToString(n),
	})
}

// checkPassword compares in constant time.
func (m Middleware) checkPassword(candidate string) bool {
	want := sha256.Sum256([]byte(m.password))
	got := sha256.Sum256([]byte(candidate))
	return hmac.Equal(want[:], got[:])
}
