package handlers

import (
	"net/http"

	"github.com/avdberg/shared-ledger-backend/internal/api/response"
	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/service"
)

// LedgerHandler handles HTTP requests for the derived settlement views:
// the dashboard summary, the audit trail, and the by-payer chart data.
// Everything here is read-only and recomputed per request.
type LedgerHandler struct {
	ledgerService *service.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler with the provided service dependency.
func NewLedgerHandler(ledgerService *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Summary handles GET requests for the settlement dashboard: net balance,
// direction, category aggregates, and the caller's headline metrics.
//
// Endpoint: GET /api/ledger/summary
// Response: 200 OK with DashboardSummary
// Error: 500 Internal Server Error if the snapshot cannot be loaded
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	summary, err := h.ledgerService.Dashboard(identity.Party)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeSummary.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// Trace handles GET requests for the transaction-by-transaction narrative:
// each record's balance delta and the running balance after it.
//
// Endpoint: GET /api/ledger/trace
// Response: 200 OK with array of TraceEntry
// Error: 500 Internal Server Error if the snapshot cannot be loaded
func (h *LedgerHandler) Trace(w http.ResponseWriter, _ *http.Request) {
	trace, err := h.ledgerService.Trace()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeTrace.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, trace)
}

// TotalsByPayer handles GET requests for the who-paid-what aggregation
// backing the bar and pie charts.
//
// Endpoint: GET /api/ledger/by-payer
// Response: 200 OK with array of PayerTotal
// Error: 500 Internal Server Error if the snapshot cannot be loaded
func (h *LedgerHandler) TotalsByPayer(w http.ResponseWriter, _ *http.Request) {
	totals, err := h.ledgerService.TotalsByPayer()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToComputeSummary.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, totals)
}
