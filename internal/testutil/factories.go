package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test ledger records.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized record
//	tx := testutil.NewTransaction().
//	    WithDescription("Groceries").
//	    WithAmount(42.50).
//	    WithCategory(model.CategoryShared).
//	    PaidByPartyTwo().
//	    Build(t, db)
type TransactionBuilder struct {
	ID              string
	Description     string
	Amount          float64
	Category        model.Category
	PaidBy          model.Party
	TransactionDate time.Time
	EnteredBy       model.Party
	CreatedAt       time.Time
	OriginLocation  string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:              MakeID(),
		Description:     "Test expense " + randomAlphanumeric(6),
		Amount:          100.0,
		Category:        model.CategoryShared,
		PaidBy:          model.PartyOne,
		TransactionDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		EnteredBy:       model.PartyOne,
		CreatedAt:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		OriginLocation:  model.LocationUnknown,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithDescription sets a custom description.
func (b *TransactionBuilder) WithDescription(desc string) *TransactionBuilder {
	b.Description = desc
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithCategory sets a custom category.
func (b *TransactionBuilder) WithCategory(category model.Category) *TransactionBuilder {
	b.Category = category
	return b
}

// WithPaidBy sets the paying party.
func (b *TransactionBuilder) WithPaidBy(party model.Party) *TransactionBuilder {
	b.PaidBy = party
	return b
}

// PaidByPartyTwo marks the record as paid by the second participant.
func (b *TransactionBuilder) PaidByPartyTwo() *TransactionBuilder {
	b.PaidBy = model.PartyTwo
	return b
}

// WithTransactionDate sets the transaction date.
func (b *TransactionBuilder) WithTransactionDate(date time.Time) *TransactionBuilder {
	b.TransactionDate = date
	return b
}

// WithEnteredBy sets the entering party.
func (b *TransactionBuilder) WithEnteredBy(party model.Party) *TransactionBuilder {
	b.EnteredBy = party
	return b
}

// WithCreatedAt sets the entry timestamp.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// WithOriginLocation sets the recorded entry location.
func (b *TransactionBuilder) WithOriginLocation(location string) *TransactionBuilder {
	b.OriginLocation = location
	return b
}

// Transaction returns the built record without persisting it. Useful for
// engine tests that work on in-memory slices.
func (b *TransactionBuilder) Transaction() model.Transaction {
	return model.Transaction{
		ID:              b.ID,
		Description:     b.Description,
		Amount:          b.Amount,
		Category:        b.Category,
		PaidBy:          b.PaidBy,
		TransactionDate: b.TransactionDate,
		EnteredBy:       b.EnteredBy,
		CreatedAt:       b.CreatedAt,
		OriginLocation:  b.OriginLocation,
	}
}

// Build creates the record in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO ledger_transaction
			(id, description, amount, category, paid_by, transaction_date, entered_by, created_at, origin_location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Description,
		b.Amount,
		string(b.Category),
		string(b.PaidBy),
		b.TransactionDate.Format("2006-01-02"),
		string(b.EnteredBy),
		b.CreatedAt.UTC().Format(time.RFC3339),
		b.OriginLocation,
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return b.Transaction()
}

// Convenience functions

// CreateSharedExpense creates a shared expense paid by the given party.
//
// Example usage:
//
//	tx := testutil.CreateSharedExpense(t, db, model.PartyOne, 100)
func CreateSharedExpense(t *testing.T, db *sql.DB, paidBy model.Party, amount float64) model.Transaction {
	t.Helper()
	return NewTransaction().WithPaidBy(paidBy).WithAmount(amount).Build(t, db)
}

// CreateRepayment creates a repayment record of the given category.
func CreateRepayment(t *testing.T, db *sql.DB, category model.Category, paidBy model.Party, amount float64) model.Transaction {
	t.Helper()
	return NewTransaction().
		WithDescription("Repayment " + randomAlphanumeric(6)).
		WithCategory(category).
		WithPaidBy(paidBy).
		WithAmount(amount).
		Build(t, db)
}
