package ledger

import "github.com/avdberg/shared-ledger-backend/internal/model"

// SnapshotsEquivalent reports whether two record snapshots describe the same
// ledger content. The replace-all edit path uses it to skip writes that
// would not change anything.
//
// IDs are ignored: rows added through the edit grid have no ID until the
// store assigns one, and an edit that only re-identifies rows is not a
// content change. Transaction dates compare by calendar day and creation
// timestamps by instant. Order matters, matching the store's contract of an
// ordered collection.
func SnapshotsEquivalent(a, b []model.Transaction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !recordsEquivalent(a[i], b[i]) {
			return false
		}
	}
	return true
}

func recordsEquivalent(a, b model.Transaction) bool {
	ad := a.TransactionDate.UTC()
	bd := b.TransactionDate.UTC()
	sameDay := ad.Year() == bd.Year() && ad.YearDay() == bd.YearDay()

	return a.Description == b.Description &&
		a.Amount == b.Amount &&
		a.Category == b.Category &&
		a.PaidBy == b.PaidBy &&
		sameDay &&
		a.EnteredBy == b.EnteredBy &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		a.OriginLocation == b.OriginLocation
}
