package service_test

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/avdberg/shared-ledger-backend/internal/model"
	"github.com/avdberg/shared-ledger-backend/internal/testutil"
)

func TestExportService_Export(t *testing.T) {
	t.Run("writes header and one row per record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		dir := t.TempDir()
		es := testutil.NewTestExportService(t, db, dir)

		testutil.NewTransaction().
			WithDescription("Groceries").
			WithAmount(42.5).
			Build(t, db)
		testutil.CreateRepayment(t, db, model.CategoryRepaymentTwoToOne, model.PartyTwo, 20)

		path, err := es.Export()
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open export: %v", err)
		}
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		if err != nil {
			t.Fatalf("Failed to read export: %v", err)
		}

		if len(rows) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d rows", len(rows))
		}
		if rows[0][0] != "Transaction" || rows[0][7] != "Location" {
			t.Errorf("Unexpected header: %v", rows[0])
		}
		if rows[1][0] != "Groceries" {
			t.Errorf("Expected first row Groceries, got %s", rows[1][0])
		}
		if rows[1][1] != "42.50" {
			t.Errorf("Expected amount 42.50, got %s", rows[1][1])
		}
		if rows[2][2] != string(model.CategoryRepaymentTwoToOne) {
			t.Errorf("Expected repayment category, got %s", rows[2][2])
		}
	})

	t.Run("exports an empty ledger as header only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		dir := t.TempDir()
		es := testutil.NewTestExportService(t, db, dir)

		path, err := es.Export()
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open export: %v", err)
		}
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		if err != nil {
			t.Fatalf("Failed to read export: %v", err)
		}

		if len(rows) != 1 {
			t.Errorf("Expected header only, got %d rows", len(rows))
		}
	})
}
