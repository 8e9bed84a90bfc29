package request

// CreateTransactionRequest is the payload for appending one record to the
// ledger. EnteredBy, CreatedAt, and OriginLocation are never accepted from
// the client; the server fills them from the session, the clock, and the
// geolocation side-channel.
type CreateTransactionRequest struct {
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	PaidBy          string  `json:"paidBy"`
	TransactionDate string  `json:"transactionDate"`
}

// SnapshotRow is one row of a proposed full-ledger replacement, as edited
// in the history grid. ID and CreatedAt are empty for rows added in the
// grid; the server assigns them on write.
type SnapshotRow struct {
	ID              string  `json:"id,omitempty"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	PaidBy          string  `json:"paidBy"`
	TransactionDate string  `json:"transactionDate"`
	EnteredBy       string  `json:"enteredBy,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	OriginLocation  string  `json:"originLocation,omitempty"`
}

// ReplaceLedgerRequest is the whole-collection overwrite payload: the
// complete proposed snapshot, not a per-row patch.
type ReplaceLedgerRequest struct {
	Records []SnapshotRow `json:"records"`
}
