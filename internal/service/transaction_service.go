package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdberg/shared-ledger-backend/internal/api/request"
	"github.com/avdberg/shared-ledger-backend/internal/geo"
	"github.com/avdberg/shared-ledger-backend/internal/ledger"
	"github.com/avdberg/shared-ledger-backend/internal/model"
	"github.com/avdberg/shared-ledger-backend/internal/repository"
)

// TransactionService handles record creation and the replace-all edit path.
// It owns everything the client is not trusted with: IDs, entry
// attribution, creation timestamps, and the advisory origin location.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	geoClient       geo.Client
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	geoClient geo.Client,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		geoClient:       geoClient,
	}
}

// List retrieves records matching the given filter, in ledger order.
func (s *TransactionService) List(filter repository.Filter) ([]model.Transaction, error) {
	return s.transactionRepo.List(filter)
}

// CreateTransaction appends one validated record to the ledger. The
// entered-by party comes from the authenticated session, the creation
// timestamp from the clock, and the origin location from the best-effort
// geolocation lookup; none of the three are client-supplied.
func (s *TransactionService) CreateTransaction(ctx context.Context, enteredBy model.Party, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transactionDate, err := time.Parse("2006-01-02", req.TransactionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction date: %w", err)
	}

	transaction := &model.Transaction{
		ID:              uuid.New().String(),
		Description:     req.Description,
		Amount:          req.Amount,
		Category:        model.Category(req.Category),
		PaidBy:          model.Party(req.PaidBy),
		TransactionDate: transactionDate,
		EnteredBy:       enteredBy,
		CreatedAt:       time.Now().UTC(),
		OriginLocation:  s.geoClient.Locate(ctx),
	}

	if err := s.transactionRepo.Insert(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// ReplaceResult reports what a replace-all request did.
type ReplaceResult struct {
	// Applied is false when the proposed snapshot was equivalent to the
	// stored one and the write was skipped.
	Applied bool `json:"applied"`

	// RecordCount is the size of the ledger after the call.
	RecordCount int `json:"recordCount"`
}

// ReplaceLedger swaps the whole collection for the proposed snapshot, the
// persistence contract behind grid edits and deletions. Equivalent
// snapshots are detected with the engine's pure comparison and skipped, so
// a no-op edit causes no write. Rows added in the grid get their ID,
// creation timestamp, and entered-by attribution assigned here.
func (s *TransactionService) ReplaceLedger(ctx context.Context, editor model.Party, req request.ReplaceLedgerRequest) (*ReplaceResult, error) {
	current, err := s.transactionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load current ledger: %w", err)
	}

	proposed := make([]model.Transaction, 0, len(req.Records))
	for _, row := range req.Records {
		proposed = append(proposed, snapshotRowToTransaction(row))
	}

	if ledger.SnapshotsEquivalent(current, proposed) {
		return &ReplaceResult{Applied: false, RecordCount: len(current)}, nil
	}

	now := time.Now().UTC()
	for i := range proposed {
		if proposed[i].ID == "" {
			proposed[i].ID = uuid.New().String()
		}
		if proposed[i].CreatedAt.IsZero() {
			proposed[i].CreatedAt = now
		}
		if proposed[i].EnteredBy == "" {
			proposed[i].EnteredBy = editor
		}
		if proposed[i].OriginLocation == "" {
			proposed[i].OriginLocation = model.LocationUnknown
		}
	}

	if err := s.transactionRepo.ReplaceAll(ctx, proposed); err != nil {
		return nil, fmt.Errorf("failed to replace ledger: %w", err)
	}

	return &ReplaceResult{Applied: true, RecordCount: len(proposed)}, nil
}

// snapshotRowToTransaction converts an edit-grid row to a record. Dates
// arrive as strings; unparseable values become the zero time, matching the
// store's normalization on read.
func snapshotRowToTransaction(row request.SnapshotRow) model.Transaction {
	t := model.Transaction{
		ID:             row.ID,
		Description:    row.Description,
		Amount:         row.Amount,
		Category:       model.Category(row.Category),
		PaidBy:         model.Party(row.PaidBy),
		EnteredBy:      model.Party(row.EnteredBy),
		OriginLocation: row.OriginLocation,
	}

	if parsed, err := time.Parse("2006-01-02", row.TransactionDate); err == nil {
		t.TransactionDate = parsed.UTC()
	}
	if row.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
			t.CreatedAt = parsed.UTC()
		}
	}

	return t
}
