package response_models

// WeatherResponse is the trimmed view of OpenWeatherMap's current-conditions
// payload that the frontend widget consumes.
type WeatherResponse struct {
	City        string  `json:"city"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}
