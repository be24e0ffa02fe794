package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

type WeatherServiceInterface interface {
	GetCurrentWeather(ctx context.Context, city string) (*response_models.WeatherResponse, error)
}

// WeatherService proxies OpenWeatherMap's current-conditions endpoint. The
// base URL is injectable so tests can point it at a local server.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherService(apiKey, baseURL string) WeatherServiceInterface {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// owmPayload is the subset of OpenWeatherMap's response the widget needs.
type owmPayload struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (w *WeatherService) GetCurrentWeather(ctx context.Context, city string) (*response_models.WeatherResponse, error) {
	if city == "" {
		return nil, utils.ErrInvalidInput
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", w.apiKey)

	endpoint := fmt.Sprintf("%s/weather?%s", w.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("Weather request failed: %v", err)
		return nil, utils.ErrWeatherUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API returned status %d for city %q", resp.StatusCode, city)
		return nil, utils.ErrWeatherUnavailable
	}

	var payload owmPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, utils.ErrWeatherUnavailable
	}

	out := &response_models.WeatherResponse{
		City:       payload.Name,
		TempC:      payload.Main.Temp,
		FeelsLikeC: payload.Main.FeelsLike,
		Humidity:   payload.Main.Humidity,
		WindSpeed:  payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		out.Condition = payload.Weather[0].Main
		out.Description = payload.Weather[0].Description
		out.Icon = payload.Weather[0].Icon
	}
	return out, nil
}
