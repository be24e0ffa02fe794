package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserItinerary is a saved plan plus the options it was generated from, so it
// can be regenerated or edited later.
type UserItinerary struct {
	BaseModel
	UserID         uuid.UUID `gorm:"index"`
	Title          string
	Days           int
	StartDate      *time.Time
	Pace           string
	Budget         string
	Interests      pq.StringArray `gorm:"type:text[]"`
	Transportation string
	IncludeFood    bool

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryID"`
}

// ItineraryActivity is one scheduled slot of a saved itinerary. Day is
// 1-based; Time holds the slot label ("8:00 AM" etc.), not a timestamp.
type ItineraryActivity struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	Day         int
	Time        string
	Title       string
	Location    string
	Description string
	Image       string
	Category    string
}
