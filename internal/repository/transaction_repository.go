package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// TransactionRepository provides data access for the ledger_transaction
// table. It implements the record-store contract the settlement engine's
// callers rely on: ordered full reads, appends, and whole-collection
// replacement. Rows are normalized on read (amounts coerced, unparseable
// dates zeroed) so the engine always receives well-shaped input.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Filter narrows the history view. Zero values mean "no constraint".
type Filter struct {
	PaidBy   model.Party
	Category model.Category
	From     time.Time
	To       time.Time
}

const selectColumns = `
	SELECT id, description, amount, category, paid_by, transaction_date, entered_by, created_at, origin_location
	FROM ledger_transaction
`

// ListAll retrieves the full ordered record collection: by transaction
// date, with entry time as tiebreaker, matching the order the ledger page
// displays and the audit trail walks.
func (r *TransactionRepository) ListAll() ([]model.Transaction, error) {
	return r.list(Filter{})
}

// List retrieves records matching the given filter, in ledger order.
func (r *TransactionRepository) List(filter Filter) ([]model.Transaction, error) {
	return r.list(filter)
}

func (r *TransactionRepository) list(filter Filter) ([]model.Transaction, error) {
	query := selectColumns
	var conditions []string
	var args []any

	if filter.PaidBy != "" {
		conditions = append(conditions, "paid_by = ?")
		args = append(args, string(filter.PaidBy))
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(filter.Category))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, "transaction_date >= ?")
		args = append(args, filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, "transaction_date <= ?")
		args = append(args, filter.To.Format("2006-01-02"))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY transaction_date ASC, created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger_transaction table: %w", err)
	}

	return transactions, nil
}

// Insert appends a single record. Records are append-only at this level;
// edits go through ReplaceAll.
func (r *TransactionRepository) Insert(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO ledger_transaction
			(id, description, amount, category, paid_by, transaction_date, entered_by, created_at, origin_location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Description,
		t.Amount,
		string(t.Category),
		string(t.PaidBy),
		t.TransactionDate.Format("2006-01-02"),
		string(t.EnteredBy),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.OriginLocation,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ReplaceAll swaps the entire collection for the given snapshot inside one
// database transaction. This is the persistence contract for edits and
// deletions: last writer wins, whole collection replaced, never per-row
// patches.
func (r *TransactionRepository) ReplaceAll(ctx context.Context, snapshot []model.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM ledger_transaction"); err != nil {
		return fmt.Errorf("failed to clear ledger_transaction table: %w", err)
	}

	insert := `
		INSERT INTO ledger_transaction
			(id, description, amount, category, paid_by, transaction_date, entered_by, created_at, origin_location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i := range snapshot {
		t := &snapshot[i]
		if _, err := tx.ExecContext(ctx, insert,
			t.ID,
			t.Description,
			t.Amount,
			string(t.Category),
			string(t.PaidBy),
			t.TransactionDate.Format("2006-01-02"),
			string(t.EnteredBy),
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.OriginLocation,
		); err != nil {
			return fmt.Errorf("failed to insert snapshot row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger replacement: %w", err)
	}

	return nil
}

// Count returns the number of records in the ledger.
func (r *TransactionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM ledger_transaction").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// scanTransaction reads one row, normalizing malformed cells instead of
// failing: a bad amount becomes zero (the engine flags it) and a bad date
// becomes the zero time.
func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var t model.Transaction
	var amount sql.NullFloat64
	var dateStr, createdAtStr, location sql.NullString
	var category, paidBy, enteredBy string

	err := rows.Scan(
		&t.ID,
		&t.Description,
		&amount,
		&category,
		&paidBy,
		&dateStr,
		&enteredBy,
		&createdAtStr,
		&location,
	)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan ledger_transaction row: %w", err)
	}

	if amount.Valid {
		t.Amount = amount.Float64
	}
	t.Category = model.Category(category)
	t.PaidBy = model.Party(paidBy)
	t.EnteredBy = model.Party(enteredBy)
	if dateStr.Valid {
		t.TransactionDate = parseTime(dateStr.String)
	}
	if createdAtStr.Valid {
		t.CreatedAt = parseTime(createdAtStr.String)
	}
	if location.Valid {
		t.OriginLocation = location.String
	}

	return t, nil
}
