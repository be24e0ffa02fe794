package request_models

import "yatra/internal/planner"

// GenerateItineraryRequest carries the planner options plus presentation
// fields the planner ignores but saved itineraries keep.
type GenerateItineraryRequest struct {
	Days           int      `json:"days" binding:"required,min=1,max=30"`
	Pace           string   `json:"pace"`
	Budget         string   `json:"budget"`
	Interests      []string `json:"interests"`
	IncludeFood    bool     `json:"include_food"`
	Transportation string   `json:"transportation"`
	Locations      []string `json:"locations"`
}

func (r *GenerateItineraryRequest) ToOptions() planner.GenerationOptions {
	return planner.GenerationOptions{
		Days:           r.Days,
		Pace:           r.Pace,
		Budget:         r.Budget,
		Interests:      r.Interests,
		IncludeFood:    r.IncludeFood,
		Transportation: r.Transportation,
		Locations:      r.Locations,
	}
}

type SaveItineraryRequest struct {
	Title          string                `json:"title" binding:"required,max=120"`
	Days           int                   `json:"days" binding:"required,min=1,max=30"`
	StartDate      string                `json:"start_date"` // RFC3339, optional
	Pace           string                `json:"pace"`
	Budget         string                `json:"budget"`
	Interests      []string              `json:"interests"`
	Transportation string                `json:"transportation"`
	IncludeFood    bool                  `json:"include_food"`
	Activities     []ItineraryActivityIn `json:"activities" binding:"required,dive"`
}

type ItineraryActivityIn struct {
	Day         int    `json:"day" binding:"required,min=1"`
	Time        string `json:"time" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}
