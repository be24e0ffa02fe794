package response_models

import "yatra/internal/catalog"

type PlacesResponse struct {
	Places []catalog.Place `json:"places"`
}

type RestaurantsResponse struct {
	Restaurants []catalog.Restaurant `json:"restaurants"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type SimilarPlacesResponse struct {
	Place   catalog.Place   `json:"place"`
	Similar []catalog.Place `json:"similar"`
}

type TripTipsResponse struct {
	Destination string   `json:"destination"`
	Tips        []string `json:"tips"`
	Source      string   `json:"source"` // "ai" or "curated"
}
