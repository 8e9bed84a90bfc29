package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdberg/shared-ledger-backend/internal/api/middleware"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// NewRequestWithQueryParams creates an HTTP request with query parameters.
// This helper simplifies testing handlers that use r.URL.Query() to extract query string parameters.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/transaction",
//	    map[string]string{
//	        "from": "2025-01-01",
//	        "to": "2025-12-31",
//	    },
//	)
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for key, value := range queryParams {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req
}

// NewJSONRequest creates an HTTP request with a JSON-encoded body.
//
// Example:
//
//	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", body)
func NewJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AsParty attaches an authenticated identity to the request context, the
// way the session middleware does for a logged-in caller.
//
// Example:
//
//	req = testutil.AsParty(req, model.PartyOne)
func AsParty(req *http.Request, party model.Party) *http.Request {
	username := "AK"
	if party == model.PartyTwo {
		username = "AA"
	}

	identity := auth.Identity{
		Username:    username,
		Party:       party,
		DisplayName: username,
	}

	return req.WithContext(middleware.WithIdentity(req.Context(), identity))
}

// DecodeJSONResponse decodes a recorded JSON response body into out.
func DecodeJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}
