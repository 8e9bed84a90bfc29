package testutil

import (
	"context"

	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// MockGeoClient is a mock implementation of geo.Client for testing.
// It returns a predefined location instead of making actual lookups.
type MockGeoClient struct {
	// MockLocation is the location to return from Locate
	MockLocation string
	// LocateCount tracks how many times Locate was called
	LocateCount int
}

// NewMockGeoClient creates a new mock geolocation client with a default
// test location.
func NewMockGeoClient() *MockGeoClient {
	return &MockGeoClient{
		MockLocation: "Amsterdam, NL",
	}
}

// Locate returns the configured location.
func (m *MockGeoClient) Locate(_ context.Context) string {
	m.LocateCount++
	return m.MockLocation
}

// WithLocation configures the mock to return the specified location.
func (m *MockGeoClient) WithLocation(location string) *MockGeoClient {
	m.MockLocation = location
	return m
}

// WithUnknownLocation configures the mock to behave like a failed lookup.
func (m *MockGeoClient) WithUnknownLocation() *MockGeoClient {
	m.MockLocation = model.LocationUnknown
	return m
}
