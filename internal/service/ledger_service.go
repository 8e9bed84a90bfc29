package service

import (
	"fmt"
	"math"

	"github.com/avdberg/shared-ledger-backend/internal/ledger"
	"github.com/avdberg/shared-ledger-backend/internal/model"
	"github.com/avdberg/shared-ledger-backend/internal/repository"
)

// LedgerService exposes the settlement engine over the record store: it
// reads a snapshot and hands it to the pure computation, never the other
// way around. All results are derived fresh on every call.
type LedgerService struct {
	transactionRepo *repository.TransactionRepository
}

// NewLedgerService creates a new LedgerService with the provided repository dependency.
func NewLedgerService(transactionRepo *repository.TransactionRepository) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
	}
}

// Dashboard computes the settlement summary plus the headline metrics for
// the calling party.
func (s *LedgerService) Dashboard(caller model.Party) (*model.DashboardSummary, error) {
	records, err := s.transactionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	summary := ledger.Summarize(records)

	totalPaidByCaller := summary.TotalByPartyOne
	if caller == model.PartyTwo {
		totalPaidByCaller = summary.TotalByPartyTwo
	}

	return &model.DashboardSummary{
		Summary:             summary,
		Direction:           ledger.Direction(summary.NetBalance),
		AmountOwed:          owedAmount(summary.NetBalance),
		TransactionCount:    len(records),
		TotalSharedSpending: summary.SharedTotal,
		TotalPaidByYou:      totalPaidByCaller,
	}, nil
}

// Trace returns the chronological audit trail of balance deltas.
func (s *LedgerService) Trace() ([]model.TraceEntry, error) {
	records, err := s.transactionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	return ledger.Trace(records), nil
}

// TotalsByPayer aggregates amounts by payer for the who-paid-what charts.
// Unknown payers get their own slice rather than disappearing, so a
// malformed row stays visible.
func (s *LedgerService) TotalsByPayer() ([]model.PayerTotal, error) {
	records, err := s.transactionRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	totals := make(map[model.Party]*model.PayerTotal)
	order := []model.Party{}
	for _, r := range records {
		entry, ok := totals[r.PaidBy]
		if !ok {
			entry = &model.PayerTotal{PaidBy: r.PaidBy}
			totals[r.PaidBy] = entry
			order = append(order, r.PaidBy)
		}
		entry.Total += r.Amount
		entry.Count++
	}

	result := make([]model.PayerTotal, 0, len(order))
	for _, payer := range order {
		result = append(result, *totals[payer])
	}

	return result, nil
}

// owedAmount converts a signed net balance to the displayed absolute
// amount, clamping anything inside the settled band to zero.
func owedAmount(netBalance float64) float64 {
	if math.Abs(netBalance) <= ledger.SettledEpsilon {
		return 0
	}
	return math.Abs(netBalance)
}
