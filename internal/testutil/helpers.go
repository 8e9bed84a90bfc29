package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/avdberg/shared-ledger-backend/internal/geo"
	"github.com/avdberg/shared-ledger-backend/internal/repository"
	"github.com/avdberg/shared-ledger-backend/internal/service"
)

func NewTestLedgerService(t *testing.T, db *sql.DB) *service.LedgerService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewLedgerService(transactionRepo)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		geo.Disabled{},
	)
}

// NewTestTransactionServiceWithGeo creates a TransactionService with a
// custom geolocation client. Useful for asserting how entry locations are
// recorded without making real lookups.
func NewTestTransactionServiceWithGeo(t *testing.T, db *sql.DB, geoClient geo.Client) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		geoClient,
	)
}

func NewTestExportService(t *testing.T, db *sql.DB, dir string) *service.ExportService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewExportService(transactionRepo, dir)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
