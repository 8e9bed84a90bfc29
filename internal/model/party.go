package model

// Party identifies one of the two fixed participants in the ledger.
// The engine and storage layers only ever see the abstract values; the
// human-readable display names live in configuration so no presentation
// string leaks into the settlement math.
type Party string

const (
	PartyOne Party = "party_one"
	PartyTwo Party = "party_two"
)

// ValidParty reports whether p is one of the two known participants.
func ValidParty(p Party) bool {
	return p == PartyOne || p == PartyTwo
}

// Other returns the opposite participant. For an unknown party it returns
// the input unchanged.
func (p Party) Other() Party {
	switch p {
	case PartyOne:
		return PartyTwo
	case PartyTwo:
		return PartyOne
	}
	return p
}
