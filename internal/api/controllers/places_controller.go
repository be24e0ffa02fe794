package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/response_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type PlacesController struct {
	catalogService   services.CatalogServiceInterface
	embeddingService services.EmbeddingServiceInterface
}

func NewPlacesController(catalogService services.CatalogServiceInterface, embeddingService services.EmbeddingServiceInterface) *PlacesController {
	return &PlacesController{
		catalogService:   catalogService,
		embeddingService: embeddingService,
	}
}

// ListPlaces godoc
// @Summary List places
// @Description List catalog places, optionally filtered by location
// @Tags Places
// @Produce json
// @Param location query []string false "Location filter, repeatable"
// @Success 200 {object} utils.APIResponse
// @Router /places [get]
func (p *PlacesController) ListPlaces(c *gin.Context) {
	locations := c.QueryArray("location")

	places := p.catalogService.ListPlaces(locations)
	utils.RespondSuccess(c, response_models.PlacesResponse{Places: places}, "Places retrieved")
}

// GetPlace godoc
// @Summary Get one place
// @Description Fetch a single catalog place by id
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/{id} [get]
func (p *PlacesController) GetPlace(c *gin.Context) {
	place := p.catalogService.GetPlaceById(c.Param("id"))
	if place == nil {
		utils.RespondError(c, http.StatusNotFound, "Place not found")
		return
	}

	utils.RespondSuccess(c, place, "Place retrieved")
}

// ListRestaurants godoc
// @Summary List restaurants
// @Description List catalog restaurants, optionally filtered by location
// @Tags Places
// @Produce json
// @Param location query []string false "Location filter, repeatable"
// @Success 200 {object} utils.APIResponse
// @Router /restaurants [get]
func (p *PlacesController) ListRestaurants(c *gin.Context) {
	locations := c.QueryArray("location")

	restaurants := p.catalogService.ListRestaurants(locations)
	utils.RespondSuccess(c, response_models.RestaurantsResponse{Restaurants: restaurants}, "Restaurants retrieved")
}

// ListLocations godoc
// @Summary List locations
// @Description List the distinct locations covered by the catalog
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /locations [get]
func (p *PlacesController) ListLocations(c *gin.Context) {
	locations := p.catalogService.ListLocations()
	utils.RespondSuccess(c, response_models.LocationsResponse{Locations: locations}, "Locations retrieved")
}

// ListFeatured godoc
// @Summary List featured places
// @Description List the places marked as featured in the catalog
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /places/featured [get]
func (p *PlacesController) ListFeatured(c *gin.Context) {
	places := p.catalogService.ListFeaturedPlaces()
	utils.RespondSuccess(c, response_models.PlacesResponse{Places: places}, "Featured places retrieved")
}

// SimilarPlaces godoc
// @Summary List similar places
// @Description Rank catalog places by embedding similarity to the given place
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Param limit query int false "Maximum results"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /places/{id}/similar [get]
func (p *PlacesController) SimilarPlaces(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 20 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	resp, err := p.embeddingService.SimilarPlaces(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Similar places retrieved")
}
