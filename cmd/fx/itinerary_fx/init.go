package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/internal/planner"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryRepo, providePlanner)

func providePlanner() *planner.Planner {
	return planner.New(nil)
}

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository, p *planner.Planner) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, p)
}
