// Package geo provides the optional best-effort geolocation side-channel.
// Lookups produce an advisory "City, Country" string stored alongside a
// record; they never affect settlement and never fail record creation.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// Client resolves the caller's approximate location. Implementations must
// be non-fatal: when a lookup cannot complete, return
// model.LocationUnknown rather than an error worth acting on.
type Client interface {
	Locate(ctx context.Context) string
}

// IPInfoClient resolves locations through the ipinfo.io JSON endpoint.
type IPInfoClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewIPInfoClient creates a client for the given endpoint with a short
// timeout, so a slow lookup cannot hold up record creation.
func NewIPInfoClient(endpoint string) *IPInfoClient {
	return &IPInfoClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		endpoint:   endpoint,
	}
}

// Locate returns "City, Country" for the current caller, or
// model.LocationUnknown when anything goes wrong.
func (c *IPInfoClient) Locate(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return model.LocationUnknown
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.LocationUnknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.LocationUnknown
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.LocationUnknown
	}

	var info Response
	if err := json.Unmarshal(body, &info); err != nil {
		return model.LocationUnknown
	}

	if info.City == "" && info.Country == "" {
		return model.LocationUnknown
	}
	if info.City == "" {
		return info.Country
	}
	if info.Country == "" {
		return info.City
	}

	return fmt.Sprintf("%s, %s", info.City, info.Country)
}

// Disabled is a Client that always reports an unknown location, used when
// the side-channel is turned off in configuration.
type Disabled struct{}

// Locate implements Client.
func (Disabled) Locate(context.Context) string {
	return model.LocationUnknown
}
