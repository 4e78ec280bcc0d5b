package archetype

// Tier is a rarity bucket. Tiers are ordered from common to rare.
type Tier string

const (
	TierN   Tier = "N"
	TierR   Tier = "R"
	TierSR  Tier = "SR"
	TierSSR Tier = "SSR"
)

// Tiers returns all tiers from common to rare.
func Tiers() []Tier { return []Tier{TierN, TierR, TierSR, TierSSR} }

func (t Tier) Valid() bool {
	switch t {
	case TierN, TierR, TierSR, TierSSR:
		return true
	}
	return false
}

// Rank returns the position of t from common (0) to rare (3), or -1.
func (t Tier) Rank() int {
	switch t {
	case TierN:
		return 0
	case TierR:
		return 1
	case TierSR:
		return 2
	case TierSSR:
		return 3
	default:
		return -1
	}
}

// Rarer reports whether t is a rarer tier than u.
func (t Tier) Rarer(u Tier) bool { return t.Rank() > u.Rank() }
