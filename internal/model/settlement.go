package model

// Summary is the derived settlement result: the signed net balance plus the
// aggregates it was computed from. It is never persisted and is recomputed
// from the current record snapshot on every read.
//
// Sign convention for NetBalance: positive means PartyTwo owes PartyOne,
// negative means PartyOne owes PartyTwo, within epsilon of zero means the
// parties are settled.
type Summary struct {
	NetBalance float64 `json:"netBalance"`

	TotalByPartyOne float64 `json:"totalByPartyOne"`
	TotalByPartyTwo float64 `json:"totalByPartyTwo"`

	SharedTotal      float64 `json:"sharedTotal"`
	SharedByPartyOne float64 `json:"sharedByPartyOne"`
	SharedByPartyTwo float64 `json:"sharedByPartyTwo"`

	// EachShare is half the shared total, the amount each party nominally
	// owes toward shared costs.
	EachShare float64 `json:"eachShare"`

	OneOnlyPaidByTwo float64 `json:"oneOnlyPaidByTwo"`
	TwoOnlyPaidByOne float64 `json:"twoOnlyPaidByOne"`

	RepaymentOneToTwo float64 `json:"repaymentOneToTwo"`
	RepaymentTwoToOne float64 `json:"repaymentTwoToOne"`

	// SkippedRecords counts records whose amount was non-positive or not a
	// finite number. They contribute zero to every aggregate; a non-zero
	// count indicates an upstream normalization bug worth surfacing.
	SkippedRecords int `json:"skippedRecords"`
}

// Direction describes which way the settlement currently points.
type Direction string

const (
	DirectionTwoOwesOne Direction = "party_two_owes_party_one"
	DirectionOneOwesTwo Direction = "party_one_owes_party_two"
	DirectionSettled    Direction = "settled"
)

// TraceEntry reports the signed balance delta contributed by a single record
// and the cumulative running balance immediately after it.
type TraceEntry struct {
	Record         Transaction `json:"record"`
	Delta          float64     `json:"delta"`
	RunningBalance float64     `json:"runningBalance"`

	// Flagged marks records that contributed zero because their amount was
	// invalid. They still appear in the trace for audit completeness.
	Flagged bool `json:"flagged,omitempty"`
}
