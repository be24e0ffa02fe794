package weather_fx

import (
	"os"

	"go.uber.org/fx"
	"yatra/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService() services.WeatherServiceInterface {
	return services.NewWeatherService(os.Getenv("OPENWEATHER_API_KEY"), "")
}
