package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/api/request"
	"github.com/avdberg/shared-ledger-backend/internal/model"
	"github.com/avdberg/shared-ledger-backend/internal/service"
	"github.com/avdberg/shared-ledger-backend/internal/testutil"
)

func TestTransactionHandler_ListTransactions(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)
		return NewTransactionHandler(ts), db
	}

	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d transactions", len(response))
		}
	})

	t.Run("returns all transactions successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		tx1 := testutil.CreateSharedExpense(t, db, model.PartyOne, 100)
		tx2 := testutil.CreateSharedExpense(t, db, model.PartyTwo, 60)

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(response))
		}

		foundTransactions := make(map[string]bool)
		for _, tx := range response {
			foundTransactions[tx.ID] = true
		}
		if !foundTransactions[tx1.ID] {
			t.Error("Expected to find tx1 in response")
		}
		if !foundTransactions[tx2.ID] {
			t.Error("Expected to find tx2 in response")
		}
	})

	t.Run("applies query filters", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateSharedExpense(t, db, model.PartyOne, 100)
		wanted := testutil.CreateSharedExpense(t, db, model.PartyTwo, 60)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/transaction",
			map[string]string{"paidBy": string(model.PartyTwo)},
		)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 1 {
			t.Fatalf("Expected 1 transaction, got %d", len(response))
		}
		if response[0].ID != wanted.ID {
			t.Errorf("Expected transaction %s, got %s", wanted.ID, response[0].ID)
		}
	})

	t.Run("returns 400 on inverted date range", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/transaction",
			map[string]string{"from": "2025-06-01", "to": "2025-01-01"},
		)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/transaction",
			map[string]string{"from": "01-06-2025"},
		)
		w := httptest.NewRecorder()

		handler.ListTransactions(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)
		return NewTransactionHandler(ts), db
	}

	t.Run("creates transaction with caller attribution", func(t *testing.T) {
		handler, db := setupHandler(t)

		body := request.CreateTransactionRequest{
			Description:     "Groceries",
			Amount:          42.5,
			Category:        string(model.CategoryShared),
			PaidBy:          string(model.PartyOne),
			TransactionDate: "2025-06-15",
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", body)
		req = testutil.AsParty(req, model.PartyTwo)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected server-assigned ID")
		}
		if response.EnteredBy != model.PartyTwo {
			t.Errorf("Expected entered by %s, got %s", model.PartyTwo, response.EnteredBy)
		}

		testutil.AssertRowCount(t, db, "ledger_transaction", 1)
	})

	t.Run("returns 400 when validation fails", func(t *testing.T) {
		handler, db := setupHandler(t)

		body := request.CreateTransactionRequest{
			Description:     "",
			Amount:          -5,
			Category:        "snacks",
			PaidBy:          string(model.PartyOne),
			TransactionDate: "2025-06-15",
		}

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", body)
		req = testutil.AsParty(req, model.PartyOne)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		testutil.AssertRowCount(t, db, "ledger_transaction", 0)
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/transaction", strings.NewReader("{not json"))
		req = testutil.AsParty(req, model.PartyOne)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 401 without an authenticated caller", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", request.CreateTransactionRequest{})
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTransactionHandler_ReplaceLedger(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)
		return NewTransactionHandler(ts), db
	}

	t.Run("applies an edited snapshot", func(t *testing.T) {
		handler, db := setupHandler(t)

		stored := testutil.CreateSharedExpense(t, db, model.PartyOne, 100)

		body := request.ReplaceLedgerRequest{
			Records: []request.SnapshotRow{
				{
					ID:              stored.ID,
					Description:     stored.Description,
					Amount:          120,
					Category:        string(stored.Category),
					PaidBy:          string(stored.PaidBy),
					TransactionDate: stored.TransactionDate.Format("2006-01-02"),
				},
			},
		}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/transaction", body)
		req = testutil.AsParty(req, model.PartyOne)
		w := httptest.NewRecorder()

		handler.ReplaceLedger(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response service.ReplaceResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if !response.Applied {
			t.Error("Expected edited snapshot to be applied")
		}
		if response.RecordCount != 1 {
			t.Errorf("Expected record count 1, got %d", response.RecordCount)
		}
	})

	t.Run("reports skip for an equivalent snapshot", func(t *testing.T) {
		handler, db := setupHandler(t)

		stored := testutil.CreateSharedExpense(t, db, model.PartyOne, 100)

		body := request.ReplaceLedgerRequest{
			Records: []request.SnapshotRow{
				{
					ID:              stored.ID,
					Description:     stored.Description,
					Amount:          stored.Amount,
					Category:        string(stored.Category),
					PaidBy:          string(stored.PaidBy),
					TransactionDate: stored.TransactionDate.Format("2006-01-02"),
					EnteredBy:       string(stored.EnteredBy),
					CreatedAt:       stored.CreatedAt.Format(time.RFC3339),
					OriginLocation:  stored.OriginLocation,
				},
			},
		}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/transaction", body)
		req = testutil.AsParty(req, model.PartyOne)
		w := httptest.NewRecorder()

		handler.ReplaceLedger(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response service.ReplaceResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Applied {
			t.Error("Expected equivalent snapshot to be skipped")
		}
	})

	t.Run("returns 400 when a row fails validation", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateSharedExpense(t, db, model.PartyOne, 100)

		body := request.ReplaceLedgerRequest{
			Records: []request.SnapshotRow{
				{
					Description:     "",
					Amount:          -1,
					Category:        "snacks",
					PaidBy:          string(model.PartyOne),
					TransactionDate: "2025-06-15",
				},
			},
		}

		req := testutil.NewJSONRequest(t, http.MethodPut, "/api/transaction", body)
		req = testutil.AsParty(req, model.PartyOne)
		w := httptest.NewRecorder()

		handler.ReplaceLedger(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		// Stored ledger untouched by the rejected snapshot
		testutil.AssertRowCount(t, db, "ledger_transaction", 1)
	})
}
