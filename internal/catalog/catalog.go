package catalog

// Price tiers used by restaurant entries. The planner maps free-text budget
// strings onto this closed set.
const (
	PriceBudgetFriendly = "Budget-Friendly"
	PriceMidRange       = "Mid-Range"
	PriceLuxury         = "Luxury"
)

type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Location    string  `json:"location"`
	Duration    string  `json:"duration,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
}

type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Location    string  `json:"location"`
	Price       string  `json:"price"`
}

// AllPlaces returns every catalog place in source order. The returned slice
// is a copy; the catalog itself is never mutated at runtime.
func AllPlaces() []Place {
	out := make([]Place, len(places))
	copy(out, places)
	return out
}

func AllRestaurants() []Restaurant {
	out := make([]Restaurant, len(restaurants))
	copy(out, restaurants)
	return out
}

// PlacesByLocation matches Location exactly (case-sensitive). An unknown
// location yields an empty slice, not an error.
func PlacesByLocation(name string) []Place {
	return PlacesByLocations([]string{name})
}

func PlacesByLocations(names []string) []Place {
	out := make([]Place, 0)
	for _, p := range places {
		for _, name := range names {
			if p.Location == name {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func RestaurantsByLocation(name string) []Restaurant {
	return RestaurantsByLocations([]string{name})
}

func RestaurantsByLocations(names []string) []Restaurant {
	out := make([]Restaurant, 0)
	for _, r := range restaurants {
		for _, name := range names {
			if r.Location == name {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Locations returns the distinct place locations in first-seen catalog order.
func Locations() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range places {
		if !seen[p.Location] {
			seen[p.Location] = true
			out = append(out, p.Location)
		}
	}
	return out
}

// FeaturedPlaces returns the editorially promoted subset, in source order.
func FeaturedPlaces() []Place {
	out := make([]Place, 0)
	for _, p := range places {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PlaceByID returns nil when no place carries the id.
func PlaceByID(id string) *Place {
	for i := range places {
		if places[i].ID == id {
			p := places[i]
			return &p
		}
	}
	return nil
}
