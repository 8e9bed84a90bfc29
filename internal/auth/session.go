package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/config"
)

// Sessions issues and verifies fernet-sealed session tokens carried in an
// HTTP-only cookie. Tokens are stateless: the fernet TTL is the session
// lifetime, so there is nothing to store or revoke server-side beyond
// clearing the cookie.
type Sessions struct {
	cookieName string
	key        *fernet.Key
	ttl        time.Duration
}

type sessionClaims struct {
	Username string `json:"username"`
	IssuedAt int64  `json:"iat"`
}

// NewSessions creates a session manager from the configured fernet key and TTL.
func NewSessions(cfg config.SessionConfig) (*Sessions, error) {
	key, err := fernet.DecodeKey(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session key: %w", err)
	}

	return &Sessions{
		cookieName: cfg.CookieName,
		key:        key,
		ttl:        cfg.TTL,
	}, nil
}

// Issue creates a session token for the given identity and sets it as an
// HTTP-only cookie on the response.
func (s *Sessions) Issue(w http.ResponseWriter, identity Identity) error {
	claims, err := json.Marshal(sessionClaims{
		Username: identity.Username,
		IssuedAt: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session claims: %w", err)
	}

	token, err := fernet.EncryptAndSign(claims, s.key)
	if err != nil {
		return fmt.Errorf("failed to seal session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    string(token),
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear expires the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Verify extracts and checks the session cookie from a request, returning
// the username it was issued for. Missing cookies map to
// ErrNotAuthenticated and invalid or expired tokens to ErrSessionExpired;
// the caller resolves the username back to an identity through the gate.
func (s *Sessions) Verify(r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return "", apperrors.ErrNotAuthenticated
	}

	payload := fernet.VerifyAndDecrypt([]byte(cookie.Value), s.ttl, []*fernet.Key{s.key})
	if payload == nil {
		return "", apperrors.ErrSessionExpired
	}

	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", apperrors.ErrSessionExpired
	}

	return claims.Username, nil
}

// GenerateKey returns a fresh base64 fernet key, for provisioning
// SESSION_KEY the first time.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return key.Encode(), nil
}
