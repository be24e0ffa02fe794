package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Build a day-by-day plan from the given preferences
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"days": plan}, "Itinerary generated")
}

// Save godoc
// @Summary Save an itinerary
// @Description Persist a generated itinerary for the authenticated user
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SaveItineraryRequest true "Itinerary payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries [post]
func (i *ItineraryController) Save(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	id, err := i.itineraryService.SaveItinerary(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Itinerary saved")
}

// List godoc
// @Summary List saved itineraries
// @Description Page through the authenticated user's saved itineraries
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) List(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	userId := c.GetString("user_id")

	itineraries, err := i.itineraryService.GetListOfItinerariesByUserId(c.Request.Context(), page, pageSize, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries retrieved")
}

// Details godoc
// @Summary Get itinerary details
// @Description Fetch one saved itinerary with its full day-by-day plan
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) Details(c *gin.Context) {
	itineraryId := c.Param("id")
	userId := c.GetString("user_id")

	details, err := i.itineraryService.GetItineraryDetailsById(c.Request.Context(), userId, itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Itinerary retrieved")
}

// Update godoc
// @Summary Update a saved itinerary
// @Description Replace a saved itinerary's metadata and activities
// @Tags Itineraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param request body request_models.SaveItineraryRequest true "Itinerary payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /itineraries/{id} [put]
func (i *ItineraryController) Update(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itineraryId := c.Param("id")
	userId := c.GetString("user_id")

	if err := i.itineraryService.UpdateItinerary(c.Request.Context(), userId, itineraryId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated")
}

// Delete godoc
// @Summary Delete a saved itinerary
// @Description Remove a saved itinerary and its activities
// @Tags Itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	itineraryId := c.Param("id")
	userId := c.GetString("user_id")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), userId, itineraryId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted")
}
