package services

import (
	"yatra/internal/catalog"
)

// CatalogServiceInterface exposes read-only views over the static place and
// restaurant data. Everything here is a pure in-memory lookup.
type CatalogServiceInterface interface {
	ListPlaces(locations []string) []catalog.Place
	ListRestaurants(locations []string) []catalog.Restaurant
	ListLocations() []string
	ListFeaturedPlaces() []catalog.Place
	GetPlaceById(id string) *catalog.Place
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

func (s *CatalogService) ListPlaces(locations []string) []catalog.Place {
	if len(locations) == 0 {
		return catalog.AllPlaces()
	}
	return catalog.PlacesByLocations(locations)
}

func (s *CatalogService) ListRestaurants(locations []string) []catalog.Restaurant {
	if len(locations) == 0 {
		return catalog.AllRestaurants()
	}
	return catalog.RestaurantsByLocations(locations)
}

func (s *CatalogService) ListLocations() []string {
	return catalog.Locations()
}

func (s *CatalogService) ListFeaturedPlaces() []catalog.Place {
	return catalog.FeaturedPlaces()
}

func (s *CatalogService) GetPlaceById(id string) *catalog.Place {
	return catalog.PlaceByID(id)
}
