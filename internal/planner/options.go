package planner

import (
	"strings"

	"yatra/internal/catalog"
)

// GenerationOptions is the caller-facing input contract. Pace and Budget stay
// free text here; they are parsed into closed sets before the allocator runs.
type GenerationOptions struct {
	Days           int      `json:"days"`
	Pace           string   `json:"pace"`
	Budget         string   `json:"budget"`
	Interests      []string `json:"interests"`
	IncludeFood    bool     `json:"includeFood"`
	Transportation string   `json:"transportation"`
	Locations      []string `json:"locations"`
}

type Pace int

const (
	PaceModerate Pace = iota
	PaceRelaxed
	PaceFastPaced
)

// ParsePace maps free text onto the pace set by substring. Anything that does
// not mention "relaxed" or "fast" is moderate.
func ParsePace(s string) Pace {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "relaxed"):
		return PaceRelaxed
	case strings.Contains(lower, "fast"):
		return PaceFastPaced
	default:
		return PaceModerate
	}
}

// ActivitiesPerDay is the non-food activity budget for one day. Only counts
// above 3 unlock the 5:00 PM slot.
func (p Pace) ActivitiesPerDay() int {
	switch p {
	case PaceRelaxed:
		return 2
	case PaceFastPaced:
		return 4
	default:
		return 3
	}
}

// ParseBudgetTiers maps free text onto eligible price tiers by substring.
// Zero, one, or all three may match; an empty result means no tier filter is
// applied (deliberate fallback, not an error).
func ParseBudgetTiers(s string) []string {
	lower := strings.ToLower(s)
	tiers := make([]string, 0, 3)
	if strings.Contains(lower, "budget") {
		tiers = append(tiers, catalog.PriceBudgetFriendly)
	}
	if strings.Contains(lower, "mid") {
		tiers = append(tiers, catalog.PriceMidRange)
	}
	if strings.Contains(lower, "luxury") {
		tiers = append(tiers, catalog.PriceLuxury)
	}
	return tiers
}
