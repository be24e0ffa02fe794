package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/request_models"
	"yatra/pkg/utils"
)

type stubAIClient struct {
	text     string
	vector   pgvector.Vector
	provider string
	err      error
}

func (s *stubAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func (s *stubAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return s.vector, s.err
}

func (s *stubAIClient) EmbeddingProvider() string {
	return s.provider
}

func TestGetTripTipsWithoutClientServesCurated(t *testing.T) {
	svc := NewTipsService(nil)

	tips, err := svc.GetTripTips(context.Background(), request_models.TripTipsRequest{Destination: "Vashi"})
	require.NoError(t, err)

	assert.Equal(t, "curated", tips.Source)
	assert.Equal(t, "Vashi", tips.Destination)
	assert.NotEmpty(t, tips.Tips)
}

func TestGetTripTipsParsesModelOutput(t *testing.T) {
	svc := NewTipsService(&stubAIClient{
		text: "1. Start early to beat traffic.\n\n- Carry cash for autos.\n• Try the street food near the station.\n",
	})

	tips, err := svc.GetTripTips(context.Background(), request_models.TripTipsRequest{
		Destination: "Nerul",
		Days:        2,
		Interests:   []string{"Food", "Parks & Gardens"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ai", tips.Source)
	assert.Equal(t, []string{
		"Start early to beat traffic.",
		"Carry cash for autos.",
		"Try the street food near the station.",
	}, tips.Tips)
}

func TestGetTripTipsFallsBackOnProviderError(t *testing.T) {
	svc := NewTipsService(&stubAIClient{err: errors.New("quota exceeded")})

	tips, err := svc.GetTripTips(context.Background(), request_models.TripTipsRequest{Destination: "Panvel"})
	require.NoError(t, err)
	assert.Equal(t, "curated", tips.Source)
	assert.NotEmpty(t, tips.Tips)
}

func TestGetTripTipsRejectsBlankDestination(t *testing.T) {
	svc := NewTipsService(nil)

	_, err := svc.GetTripTips(context.Background(), request_models.TripTipsRequest{Destination: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
