package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/avdberg/shared-ledger-backend/internal/api/request"
	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - description: non-empty
//   - amount: strictly positive
//   - category: one of the closed category enumeration
//   - paidBy: one of the two parties
//   - transactionDate: YYYY-MM-DD format (no past/future restriction)
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Description) == "" {
		errors["description"] = "description is required"
	}

	if req.Amount <= 0.0 {
		errors["amount"] = "amount must be positive"
	}

	validateEnums(errors, req.Category, req.PaidBy)

	if strings.TrimSpace(req.TransactionDate) == "" {
		errors["transactionDate"] = "transactionDate is required"
	} else if _, err := time.Parse("2006-01-02", req.TransactionDate); err != nil {
		errors["transactionDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateReplaceLedger validates a whole-collection replacement. Every row
// must meet the same constraints as a freshly created record; a snapshot
// with one bad row is rejected as a whole so a grid edit cannot sneak
// malformed data past creation-time validation.
func ValidateReplaceLedger(req request.ReplaceLedgerRequest) error {
	errors := make(map[string]string)

	for i, row := range req.Records {
		prefix := fmt.Sprintf("records[%d]", i)

		if strings.TrimSpace(row.Description) == "" {
			errors[prefix+".description"] = "description is required"
		}
		if row.Amount <= 0.0 {
			errors[prefix+".amount"] = "amount must be positive"
		}
		if !model.ValidCategory(model.Category(row.Category)) {
			errors[prefix+".category"] = fmt.Sprintf("invalid category: %s", row.Category)
		}
		if !model.ValidParty(model.Party(row.PaidBy)) {
			errors[prefix+".paidBy"] = fmt.Sprintf("invalid party: %s", row.PaidBy)
		}
		if strings.TrimSpace(row.TransactionDate) == "" {
			errors[prefix+".transactionDate"] = "transactionDate is required"
		} else if _, err := time.Parse("2006-01-02", row.TransactionDate); err != nil {
			errors[prefix+".transactionDate"] = err.Error()
		}
		if row.ID != "" {
			if err := ValidateUUID(row.ID); err != nil {
				errors[prefix+".id"] = err.Error()
			}
		}
		if row.EnteredBy != "" && !model.ValidParty(model.Party(row.EnteredBy)) {
			errors[prefix+".enteredBy"] = fmt.Sprintf("invalid party: %s", row.EnteredBy)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateDateRange checks an optional from/to filter pair.
func ValidateDateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	if from.After(to) {
		return ErrInvalidDateRange
	}
	return nil
}

func validateEnums(errors map[string]string, category, paidBy string) {
	if strings.TrimSpace(category) == "" {
		errors["category"] = "category is required"
	} else if !model.ValidCategory(model.Category(category)) {
		errors["category"] = fmt.Sprintf("invalid category: %s", category)
	}

	if strings.TrimSpace(paidBy) == "" {
		errors["paidBy"] = "paidBy is required"
	} else if !model.ValidParty(model.Party(paidBy)) {
		errors["paidBy"] = fmt.Sprintf("invalid party: %s", paidBy)
	}
}
