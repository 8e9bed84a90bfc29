package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/config"
	"github.com/avdberg/shared-ledger-backend/internal/model"
)

func testParties() config.PartiesConfig {
	return config.PartiesConfig{
		One: config.PartyConfig{Username: "AK", DisplayName: "AK", Password: "first-secret"},
		Two: config.PartyConfig{Username: "AA", DisplayName: "AA", Password: "second-secret"},
	}
}

func TestGate_Authenticate(t *testing.T) {
	gate, err := NewGate(testParties())
	if err != nil {
		t.Fatalf("NewGate() returned unexpected error: %v", err)
	}

	t.Run("accepts valid credentials for both parties", func(t *testing.T) {
		identity, err := gate.Authenticate("AK", "first-secret")
		if err != nil {
			t.Fatalf("Authenticate() returned unexpected error: %v", err)
		}
		if identity.Party != model.PartyOne {
			t.Errorf("Expected party_one, got %s", identity.Party)
		}

		identity, err = gate.Authenticate("AA", "second-secret")
		if err != nil {
			t.Fatalf("Authenticate() returned unexpected error: %v", err)
		}
		if identity.Party != model.PartyTwo {
			t.Errorf("Expected party_two, got %s", identity.Party)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := gate.Authenticate("AK", "wrong")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		_, err := gate.Authenticate("intruder", "first-secret")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("accepts pre-hashed credentials", func(t *testing.T) {
		hash, err := HashPassword("hashed-secret")
		if err != nil {
			t.Fatalf("HashPassword() returned unexpected error: %v", err)
		}

		parties := testParties()
		parties.One.Password = hash

		hashedGate, err := NewGate(parties)
		if err != nil {
			t.Fatalf("NewGate() returned unexpected error: %v", err)
		}

		if _, err := hashedGate.Authenticate("AK", "hashed-secret"); err != nil {
			t.Errorf("Expected pre-hashed credential to verify, got %v", err)
		}
	})
}

func TestSessions_IssueAndVerify(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() returned unexpected error: %v", err)
	}

	sessions, err := NewSessions(config.SessionConfig{
		CookieName: "ledger_session",
		Key:        key,
		TTL:        time.Hour,
	})
	if err != nil {
		t.Fatalf("NewSessions() returned unexpected error: %v", err)
	}

	t.Run("round trips an identity through the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := sessions.Issue(w, Identity{Username: "AK", Party: model.PartyOne, DisplayName: "AK"}); err != nil {
			t.Fatalf("Issue() returned unexpected error: %v", err)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("Expected 1 cookie, got %d", len(cookies))
		}
		if !cookies[0].HttpOnly {
			t.Error("Expected HTTP-only session cookie")
		}

		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary", nil)
		req.AddCookie(cookies[0])

		username, err := sessions.Verify(req)
		if err != nil {
			t.Fatalf("Verify() returned unexpected error: %v", err)
		}
		if username != "AK" {
			t.Errorf("Expected username AK, got %s", username)
		}
	})

	t.Run("missing cookie is not authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary", nil)

		_, err := sessions.Verify(req)
		if !errors.Is(err, apperrors.ErrNotAuthenticated) {
			t.Errorf("Expected ErrNotAuthenticated, got %v", err)
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ledger/summary", nil)
		req.AddCookie(&http.Cookie{Name: "ledger_session", Value: "not-a-fernet-token"})

		_, err := sessions.Verify(req)
		if !errors.Is(err, apperrors.ErrSessionExpired) {
			t.Errorf("Expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		sessions.Clear(w)

		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("Expected 1 cookie, got %d", len(cookies))
		}
		if cookies[0].MaxAge >= 0 {
			t.Errorf("Expected expired cookie, got MaxAge %d", cookies[0].MaxAge)
		}
	})
}
