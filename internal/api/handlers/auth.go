package handlers

import (
	"net/http"

	"github.com/avdberg/shared-ledger-backend/internal/api/request"
	"github.com/avdberg/shared-ledger-backend/internal/api/response"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
)

// AuthHandler handles login, logout, and identity lookups for the two
// configured participants.
type AuthHandler struct {
	gate     *auth.Gate
	sessions *auth.Sessions
}

// NewAuthHandler creates a new AuthHandler with the provided dependencies.
func NewAuthHandler(gate *auth.Gate, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{
		gate:     gate,
		sessions: sessions,
	}
}

// Login handles POST requests to authenticate a participant. A successful
// login sets the session cookie and returns the caller's identity.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest
// Response: 200 OK with Identity
// Error: 400 Bad Request if the request body is invalid
// Error: 401 Unauthorized on unknown username or wrong password
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	identity, err := h.gate.Authenticate(req.Username, req.Password)
	if err != nil {
		response.RespondError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	if err := h.sessions.Issue(w, identity); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create session", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, identity)
}

// Logout handles POST requests to end the current session by expiring the
// session cookie. Always succeeds, even without an active session.
//
// Endpoint: POST /api/auth/logout
// Response: 200 OK
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me handles GET requests for the authenticated caller's identity.
//
// Endpoint: GET /api/auth/me
// Response: 200 OK with Identity
// Error: 401 Unauthorized without a valid session
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, identity)
}
