package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"yatra/internal/catalog"
)

func TestParsePace(t *testing.T) {
	tests := []struct {
		input string
		want  Pace
	}{
		{"relaxed", PaceRelaxed},
		{"Relaxed", PaceRelaxed},
		{"very relaxed trip", PaceRelaxed},
		{"fast", PaceFastPaced},
		{"fast-paced", PaceFastPaced},
		{"Fast Paced", PaceFastPaced},
		{"moderate", PaceModerate},
		{"", PaceModerate},
		{"whatever", PaceModerate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePace(tt.input), "input %q", tt.input)
	}
}

func TestPaceActivitiesPerDay(t *testing.T) {
	assert.Equal(t, 2, PaceRelaxed.ActivitiesPerDay())
	assert.Equal(t, 3, PaceModerate.ActivitiesPerDay())
	assert.Equal(t, 4, PaceFastPaced.ActivitiesPerDay())
}

func TestParseBudgetTiers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"budget-friendly", []string{catalog.PriceBudgetFriendly}},
		{"Budget", []string{catalog.PriceBudgetFriendly}},
		{"mid-range", []string{catalog.PriceMidRange}},
		{"MID", []string{catalog.PriceMidRange}},
		{"luxury", []string{catalog.PriceLuxury}},
		{"budget or luxury", []string{catalog.PriceBudgetFriendly, catalog.PriceLuxury}},
		{"", []string{}},
		{"anything goes", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBudgetTiers(tt.input), "input %q", tt.input)
	}
}
