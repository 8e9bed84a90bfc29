package handlers

import (
	"net/http"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/api/request"
	"github.com/avdberg/shared-ledger-backend/internal/api/response"
	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/model"
	"github.com/avdberg/shared-ledger-backend/internal/repository"
	"github.com/avdberg/shared-ledger-backend/internal/service"
	"github.com/avdberg/shared-ledger-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for the transaction history:
// filtered listing, appending a record, and the whole-collection replace
// behind the edit grid.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions handles GET requests for the transaction history.
// Optional query parameters narrow the view: paidBy, category, from, to
// (dates as YYYY-MM-DD).
//
// Endpoint: GET /api/transaction
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request on a malformed filter
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	transactions, err := h.transactionService.List(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST requests to append a record. The server
// fills entered-by, creation timestamp, and origin location; the client
// controls only the fields a person typed into the form.
//
// Endpoint: POST /api/transaction
// Request Body: CreateTransactionRequest
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), identity.Party, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}

// ReplaceLedger handles PUT requests carrying the full edited collection.
// This is the only mutation path besides append: edits and deletions
// always replace the whole snapshot, and an equivalent snapshot skips the
// write entirely.
//
// Endpoint: PUT /api/transaction
// Request Body: ReplaceLedgerRequest (the complete proposed snapshot)
// Response: 200 OK with ReplaceResult
// Error: 400 Bad Request if any row fails validation
// Error: 500 Internal Server Error if the replacement fails
func (h *TransactionHandler) ReplaceLedger(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	req, err := parseJSON[request.ReplaceLedgerRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateReplaceLedger(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.transactionService.ReplaceLedger(r.Context(), identity.Party, req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToReplaceLedger.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// filterFromQuery builds a repository filter from query parameters.
func filterFromQuery(r *http.Request) (repository.Filter, error) {
	query := r.URL.Query()

	var filter repository.Filter
	filter.PaidBy = model.Party(query.Get("paidBy"))
	filter.Category = model.Category(query.Get("category"))

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return repository.Filter{}, err
		}
		filter.From = parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return repository.Filter{}, err
		}
		filter.To = parsed
	}

	if err := validation.ValidateDateRange(filter.From, filter.To); err != nil {
		return repository.Filter{}, err
	}

	return filter, nil
}
