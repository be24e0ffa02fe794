package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatra/pkg/utils"
)

func TestGetCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Navi Mumbai", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Navi Mumbai",
			"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
			"main": {"temp": 29.4, "feels_like": 33.1, "humidity": 74},
			"wind": {"speed": 4.2}
		}`))
	}))
	defer server.Close()

	svc := NewWeatherService("test-key", server.URL)

	weather, err := svc.GetCurrentWeather(context.Background(), "Navi Mumbai")
	require.NoError(t, err)

	assert.Equal(t, "Navi Mumbai", weather.City)
	assert.Equal(t, "Clouds", weather.Condition)
	assert.Equal(t, "scattered clouds", weather.Description)
	assert.Equal(t, "03d", weather.Icon)
	assert.Equal(t, 29.4, weather.TempC)
	assert.Equal(t, 33.1, weather.FeelsLikeC)
	assert.Equal(t, 74, weather.Humidity)
	assert.Equal(t, 4.2, weather.WindSpeed)
}

func TestGetCurrentWeatherRejectsEmptyCity(t *testing.T) {
	svc := NewWeatherService("test-key", "http://127.0.0.1:0")

	_, err := svc.GetCurrentWeather(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetCurrentWeatherUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewWeatherService("bad-key", server.URL)

	_, err := svc.GetCurrentWeather(context.Background(), "Navi Mumbai")
	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
}

func TestGetCurrentWeatherUnreachableHost(t *testing.T) {
	svc := NewWeatherService("test-key", "http://127.0.0.1:1")

	_, err := svc.GetCurrentWeather(context.Background(), "Navi Mumbai")
	assert.ErrorIs(t, err, utils.ErrWeatherUnavailable)
}
