package response_models

import "yatra/internal/planner"

type ItineraryResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Days           int      `json:"days"`
	StartDate      string   `json:"start_date,omitempty"` // RFC3339
	Pace           string   `json:"pace"`
	Budget         string   `json:"budget"`
	Interests      []string `json:"interests"`
	Transportation string   `json:"transportation"`
	IncludeFood    bool     `json:"include_food"`
	CreatedAt      int64    `json:"created_at"`
	UpdatedAt      int64    `json:"updated_at"`
}

// ItineraryDetailResponse is the saved record plus its activities grouped by
// day, the shape the frontend renders and passes to the map layer.
type ItineraryDetailResponse struct {
	Details ItineraryResponse `json:"details"`
	Plan    []planner.DayPlan `json:"days"`
}
