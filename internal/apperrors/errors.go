package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnknownParty indicates a party value outside the two fixed participants.
	ErrUnknownParty = errors.New("unknown party")

	// ErrUnknownCategory indicates a category value outside the closed enumeration.
	ErrUnknownCategory = errors.New("unknown category")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrNonPositiveAmount indicates an amount that is zero or negative.
	// Amounts are rejected at creation; the engine itself never raises this.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrEmptyDescription indicates a transaction without a description.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// Authentication errors cover the access gate in front of the ledger.
var (
	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated indicates a request without a valid session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired indicates a session token past its TTL.
	ErrSessionExpired = errors.New("session expired")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToComputeSummary       = errors.New("failed to compute settlement summary")
	ErrFailedToComputeTrace         = errors.New("failed to compute audit trail")
	ErrFailedToReplaceLedger        = errors.New("failed to replace ledger")
	ErrFailedToGetVersionInfo       = errors.New("failed to get version information")
)
