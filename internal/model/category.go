package model

// Category classifies a money movement. It is a closed enumeration: values
// outside this set are carried through storage untouched but contribute
// zero to every category-specific aggregate.
type Category string

const (
	// CategoryShared is a cost split 50/50 between both parties,
	// regardless of who fronted the money.
	CategoryShared Category = "shared"

	// CategoryForPartyOne is a cost exclusively for PartyOne.
	CategoryForPartyOne Category = "for_party_one"

	// CategoryForPartyTwo is a cost exclusively for PartyTwo.
	CategoryForPartyTwo Category = "for_party_two"

	// CategoryRepaymentOneToTwo is a direct payment from PartyOne to PartyTwo.
	CategoryRepaymentOneToTwo Category = "repayment_one_to_two"

	// CategoryRepaymentTwoToOne is a direct payment from PartyTwo to PartyOne.
	CategoryRepaymentTwoToOne Category = "repayment_two_to_one"
)

// Categories lists all valid categories in presentation order.
var Categories = []Category{
	CategoryShared,
	CategoryForPartyOne,
	CategoryForPartyTwo,
	CategoryRepaymentOneToTwo,
	CategoryRepaymentTwoToOne,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
