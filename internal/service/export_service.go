package service

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/repository"
)

// ExportService writes periodic CSV snapshots of the full ledger to a
// backup directory. The column order matches the original sheet layout so
// an export can be re-imported or eyeballed directly.
type ExportService struct {
	transactionRepo *repository.TransactionRepository
	dir             string
}

// NewExportService creates a new ExportService writing into dir.
func NewExportService(transactionRepo *repository.TransactionRepository, dir string) *ExportService {
	return &ExportService{
		transactionRepo: transactionRepo,
		dir:             dir,
	}
}

var exportHeader = []string{
	"Transaction", "Amount", "Type", "Paid by",
	"Date of Transaction", "Entered by", "Timestamp", "Location",
}

// Export writes the current snapshot to a timestamped CSV file and returns
// its path.
func (s *ExportService) Export() (string, error) {
	records, err := s.transactionRepo.ListAll()
	if err != nil {
		return "", fmt.Errorf("failed to load ledger for export: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("ledger-%s.csv", time.Now().UTC().Format("20060102-150405")))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportHeader); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Description,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			string(r.Category),
			string(r.PaidBy),
			r.TransactionDate.Format("2006-01-02"),
			string(r.EnteredBy),
			r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			r.OriginLocation,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return path, nil
}

// Run performs one export and logs the outcome. Used as a cron job body;
// a failed export is logged and retried on the next tick rather than
// propagated.
func (s *ExportService) Run() {
	path, err := s.Export()
	if err != nil {
		log.Printf("Ledger export failed: %v", err)
		return
	}
	log.Printf("Ledger exported to %s", path)
}
