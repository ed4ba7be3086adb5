package group

import "strings"

// Tier is the quantity bucket a group falls into, derived from the summed
// totalItems of the group's member orders. The tier tags are fixed vocabulary
// shared with the warehouse floor and are not translated.
type Tier string

const (
	// TierSingle groups a total quantity of one.
	TierSingle Tier = "1li"

	// TierDouble groups a total quantity of two.
	TierDouble Tier = "2li"

	// TierTriple groups a total quantity of three.
	TierTriple Tier = "3lu"

	// TierQuad groups a total quantity of four.
	TierQuad Tier = "4lu"

	// TierFivePlus groups a total quantity of five or more.
	TierFivePlus Tier = "5veUstu"
)

// AllTiers returns the five tiers in their fixed display and sort order.
func AllTiers() []Tier {
	return []Tier{TierSingle, TierDouble, TierTriple, TierQuad, TierFivePlus}
}

// TierForQuantity derives the tier from a summed item quantity.
// Quantities below two (including zero, which can occur when upstream data
// lost its item counts) fall into the single tier, matching the source data's
// historical behavior.
func TierForQuantity(quantity int) Tier {
	switch {
	case quantity >= 5:
		return TierFivePlus
	case quantity == 4:
		return TierQuad
	case quantity == 3:
		return TierTriple
	case quantity == 2:
		return TierDouble
	default:
		return TierSingle
	}
}

// SortRank returns the tier's position in the fixed tier order.
// Unrecognized tiers sort last.
func (t Tier) SortRank() int {
	for i, tier := range AllTiers() {
		if t == tier {
			return i
		}
	}
	return len(AllTiers())
}

// Tag returns the uppercased tier tag used in group display names.
func (t Tier) Tag() string {
	return strings.ToUpper(string(t))
}

// String returns the raw tier value.
func (t Tier) String() string {
	return string(t)
}
