package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// CurrentWeather godoc
// @Summary Get current weather
// @Description Proxy the current conditions for a city
// @Tags Weather
// @Produce json
// @Param city query string false "City name, defaults to Navi Mumbai"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /weather [get]
func (w *WeatherController) CurrentWeather(c *gin.Context) {
	city := c.DefaultQuery("city", "Navi Mumbai")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid city")
		return
	}

	weather, err := w.weatherService.GetCurrentWeather(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather retrieved")
}
