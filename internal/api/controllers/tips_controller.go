package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type TipsController struct {
	tipsService services.TipsServiceInterface
}

func NewTipsController(tipsService services.TipsServiceInterface) *TipsController {
	return &TipsController{
		tipsService: tipsService,
	}
}

// TripTips godoc
// @Summary Get trip tips
// @Description Generate practical tips for a destination, with a curated fallback
// @Tags Tips
// @Accept json
// @Produce json
// @Param request body request_models.TripTipsRequest true "Tips request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /tips [post]
func (t *TipsController) TripTips(c *gin.Context) {
	var req request_models.TripTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tips, err := t.tipsService.GetTripTips(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tips, "Tips retrieved")
}
