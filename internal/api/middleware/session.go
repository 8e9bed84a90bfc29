// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"

	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/api/response"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
)

type contextKey string

// identityKey stores the authenticated identity in the request context.
const identityKey contextKey = "identity"

// RequireSession guards ledger routes behind the access gate: the session
// cookie must verify and resolve to one of the two configured parties.
// Everything behind this middleware can rely on IdentityFrom returning a
// valid identity.
func RequireSession(sessions *auth.Sessions, gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := sessions.Verify(r)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrNotAuthenticated.Error(), err.Error())
				return
			}

			identity, ok := gate.Lookup(username)
			if !ok {
				// A valid token for a user that no longer exists in
				// configuration: treat as unauthenticated.
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrNotAuthenticated.Error(), "")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom extracts the authenticated identity from the request
// context. The boolean is false outside RequireSession.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the given identity. Intended for
// tests that call handlers directly without the middleware stack.
func WithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
