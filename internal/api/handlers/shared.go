package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avdberg/shared-ledger-backend/internal/api/middleware"
	"github.com/avdberg/shared-ledger-backend/internal/api/response"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}

// parseJSON decodes a request body into the given request type, rejecting
// unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var payload T

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return payload, fmt.Errorf("failed to decode request body: %w", err)
	}

	return payload, nil
}

// callerIdentity pulls the authenticated identity set by the session
// middleware. Routes using this are always mounted behind RequireSession,
// so a miss is a wiring bug; it is still answered with a 401 rather than
// a panic.
func callerIdentity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "not authenticated", "")
		return auth.Identity{}, false
	}
	return identity, true
}
