package planner

import (
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"yatra/internal/catalog"
)

// Fixed time-of-day slots, allocated in this order within a day.
const (
	SlotMorning   = "8:00 AM"
	SlotLunch     = "12:00 PM"
	SlotAfternoon = "2:00 PM"
	SlotEvening   = "5:00 PM"
	SlotDinner    = "7:00 PM"
)

// FoodCategory labels lunch and dinner activities regardless of cuisine.
const FoodCategory = "Food"

// BackfillMinRating is the floor for places appended when an interest filter
// leaves too few candidates. Inherited from the reference behavior; tune with
// care, saved itineraries regenerated under a new value will differ.
const BackfillMinRating = 4.3

// SparsePlacesPerDay scales the data-sparsity warning: fewer than
// days*SparsePlacesPerDay scoped places is logged but never blocks generation.
const SparsePlacesPerDay = 3

// minPoolPerDay scales both the interest-filter backfill target and the
// budget-filter revert threshold (days * minPoolPerDay).
const minPoolPerDay = 2

type ScheduledActivity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type DayPlan struct {
	Day        int                 `json:"day"`
	Activities []ScheduledActivity `json:"activities"`
}

// Planner turns generation options into a day-by-day schedule drawn from the
// catalog. It is a pure in-memory computation; the only nondeterminism is the
// shuffle applied when an exhausted working list is recycled. Each Generate
// call derives its own rand source from the injected seed source, so one
// Planner can serve concurrent requests.
type Planner struct {
	mu          sync.Mutex
	seeds       *rand.Rand
	places      []catalog.Place
	restaurants []catalog.Restaurant
}

// New builds a planner over the live catalog. A nil rng gets a time-seeded
// source.
func New(rng *rand.Rand) *Planner {
	return NewWithCatalog(catalog.AllPlaces(), catalog.AllRestaurants(), rng)
}

// NewWithCatalog builds a planner over an explicit dataset; used by tests and
// anywhere a narrowed catalog view is wanted.
func NewWithCatalog(places []catalog.Place, restaurants []catalog.Restaurant, rng *rand.Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{
		seeds:       rng,
		places:      places,
		restaurants: restaurants,
	}
}

// nextSeed hands each Generate call its own source. rand.Rand is not safe for
// concurrent use, so the shared seed source is only ever touched here.
func (p *Planner) nextSeed() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seeds.Int63()
}

// Generate is total over its documented input domain: it never fails, and an
// empty scoped catalog simply yields days with empty activity lists. Callers
// validate days >= 1.
func (p *Planner) Generate(opts GenerationOptions) []DayPlan {
	rng := rand.New(rand.NewSource(p.nextSeed()))

	locationPlaces := p.scopePlaces(opts.Locations)
	locationRestaurants := p.scopeRestaurants(opts.Locations)

	if len(locationPlaces) < opts.Days*SparsePlacesPerDay {
		log.Printf("planner: only %d places in scope for a %d-day trip; proceeding with repeats",
			len(locationPlaces), opts.Days)
	}

	workingPlaces := filterByInterests(locationPlaces, opts.Interests, opts.Days)
	sortByRatingDesc(workingPlaces)

	workingRestaurants := append([]catalog.Restaurant(nil), locationRestaurants...)
	if opts.IncludeFood {
		workingRestaurants = filterByBudget(workingRestaurants, opts.Budget, opts.Days)
		sortRestaurantsByRatingDesc(workingRestaurants)
	}

	perDay := ParsePace(opts.Pace).ActivitiesPerDay()

	itinerary := make([]DayPlan, 0, opts.Days)
	for day := 1; day <= opts.Days; day++ {
		activities := make([]ScheduledActivity, 0, 5)

		if place, ok := popPlace(&workingPlaces); ok {
			activities = append(activities, placeActivity(SlotMorning, place))
		}
		if opts.IncludeFood {
			if rest, ok := popRestaurant(&workingRestaurants); ok {
				activities = append(activities, foodActivity(SlotLunch, "Lunch at ", rest))
			}
		}
		if place, ok := popPlace(&workingPlaces); ok {
			activities = append(activities, placeActivity(SlotAfternoon, place))
		}
		if perDay > 3 {
			if place, ok := popPlace(&workingPlaces); ok {
				activities = append(activities, placeActivity(SlotEvening, place))
			}
		}
		if opts.IncludeFood {
			if rest, ok := popRestaurant(&workingRestaurants); ok {
				activities = append(activities, foodActivity(SlotDinner, "Dinner at ", rest))
			}
		}

		itinerary = append(itinerary, DayPlan{Day: day, Activities: activities})

		// Recycle exhausted pools from the original scoped lists so trips
		// longer than the catalog keep producing content. The shuffle keeps
		// repeat passes from replaying the same order.
		if len(workingPlaces) == 0 && len(locationPlaces) > 0 {
			workingPlaces = append([]catalog.Place(nil), locationPlaces...)
			rng.Shuffle(len(workingPlaces), func(i, j int) {
				workingPlaces[i], workingPlaces[j] = workingPlaces[j], workingPlaces[i]
			})
		}
		if len(workingRestaurants) == 0 && len(locationRestaurants) > 0 {
			workingRestaurants = append([]catalog.Restaurant(nil), locationRestaurants...)
			rng.Shuffle(len(workingRestaurants), func(i, j int) {
				workingRestaurants[i], workingRestaurants[j] = workingRestaurants[j], workingRestaurants[i]
			})
		}
	}

	return itinerary
}

func (p *Planner) scopePlaces(locations []string) []catalog.Place {
	if len(locations) == 0 {
		return append([]catalog.Place(nil), p.places...)
	}
	out := make([]catalog.Place, 0)
	for _, pl := range p.places {
		for _, loc := range locations {
			if pl.Location == loc {
				out = append(out, pl)
				break
			}
		}
	}
	return out
}

func (p *Planner) scopeRestaurants(locations []string) []catalog.Restaurant {
	if len(locations) == 0 {
		return append([]catalog.Restaurant(nil), p.restaurants...)
	}
	out := make([]catalog.Restaurant, 0)
	for _, r := range p.restaurants {
		for _, loc := range locations {
			if r.Location == loc {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// filterByInterests keeps places where any interest is a case-insensitive
// substring of the category or description. When that leaves fewer than
// days*minPoolPerDay entries it backfills highly rated places from the scoped
// set, in catalog order. Empty interests skips filtering entirely.
func filterByInterests(scoped []catalog.Place, interests []string, days int) []catalog.Place {
	if len(interests) == 0 {
		return append([]catalog.Place(nil), scoped...)
	}

	matched := make([]catalog.Place, 0)
	included := make(map[string]bool)
	for _, place := range scoped {
		if matchesAnyInterest(place, interests) {
			matched = append(matched, place)
			included[place.ID] = true
		}
	}

	target := days * minPoolPerDay
	if len(matched) < target {
		for _, place := range scoped {
			if len(matched) >= target {
				break
			}
			if !included[place.ID] && place.Rating >= BackfillMinRating {
				matched = append(matched, place)
				included[place.ID] = true
			}
		}
	}

	return matched
}

func matchesAnyInterest(place catalog.Place, interests []string) bool {
	category := strings.ToLower(place.Category)
	description := strings.ToLower(place.Description)
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		if needle == "" {
			continue
		}
		if strings.Contains(category, needle) || strings.Contains(description, needle) {
			return true
		}
	}
	return false
}

// filterByBudget narrows restaurants to the tiers implied by the budget
// string. No matching tier means no filter, and a filter that leaves fewer
// than days*minPoolPerDay options is discarded in favor of the full list.
func filterByBudget(scoped []catalog.Restaurant, budget string, days int) []catalog.Restaurant {
	tiers := ParseBudgetTiers(budget)
	if len(tiers) == 0 {
		return scoped
	}

	eligible := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		eligible[t] = true
	}

	filtered := make([]catalog.Restaurant, 0, len(scoped))
	for _, r := range scoped {
		if eligible[r.Price] {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) < days*minPoolPerDay {
		return scoped
	}
	return filtered
}

// Ties keep catalog order; a stable sort is what makes generation
// deterministic for a fixed seed.
func sortByRatingDesc(places []catalog.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
}

func sortRestaurantsByRatingDesc(restaurants []catalog.Restaurant) {
	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Rating > restaurants[j].Rating
	})
}

func popPlace(list *[]catalog.Place) (catalog.Place, bool) {
	if len(*list) == 0 {
		return catalog.Place{}, false
	}
	head := (*list)[0]
	*list = (*list)[1:]
	return head, true
}

func popRestaurant(list *[]catalog.Restaurant) (catalog.Restaurant, bool) {
	if len(*list) == 0 {
		return catalog.Restaurant{}, false
	}
	head := (*list)[0]
	*list = (*list)[1:]
	return head, true
}

func placeActivity(slot string, place catalog.Place) ScheduledActivity {
	return ScheduledActivity{
		Time:        slot,
		Title:       place.Name,
		Location:    place.Location,
		Description: place.Description,
		Image:       place.Image,
		Category:    place.Category,
	}
}

func foodActivity(slot, prefix string, rest catalog.Restaurant) ScheduledActivity {
	return ScheduledActivity{
		Time:        slot,
		Title:       prefix + rest.Name,
		Location:    rest.Location,
		Description: rest.Description,
		Image:       rest.Image,
		Category:    FoodCategory,
	}
}
