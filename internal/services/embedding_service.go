package services

import (
	"context"
	"fmt"
	"log"

	"yatra/internal/catalog"
	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type EmbeddingServiceInterface interface {
	IndexCatalog(ctx context.Context) error
	SimilarPlaces(ctx context.Context, placeId string, limit int) (*response_models.SimilarPlacesResponse, error)
}

type EmbeddingService struct {
	aiClient      utils.AIClientInterface
	embeddingRepo repositories.IPlaceEmbeddingRepository
}

func NewEmbeddingService(aiClient utils.AIClientInterface, embeddingRepo repositories.IPlaceEmbeddingRepository) EmbeddingServiceInterface {
	return &EmbeddingService{
		aiClient:      aiClient,
		embeddingRepo: embeddingRepo,
	}
}

// IndexCatalog embeds every catalog place that has no stored vector from the
// active provider yet. It is safe to call on every startup; up-to-date places
// are skipped, and rows left over from a different provider are re-embedded
// rather than mixed into the same vector space.
func (e *EmbeddingService) IndexCatalog(ctx context.Context) error {
	if e.aiClient == nil {
		log.Println("No AI client configured, skipping catalog embedding index")
		return nil
	}

	provider := e.aiClient.EmbeddingProvider()
	for _, place := range catalog.AllPlaces() {
		existing, err := e.embeddingRepo.GetByPlaceID(place.ID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Provider == provider {
			continue
		}

		vector, err := e.aiClient.GetEmbedding(ctx, embeddingText(place))
		if err != nil {
			log.Printf("Error embedding place %s: %v", place.ID, err)
			return err
		}

		err = e.embeddingRepo.Upsert(db_models.PlaceEmbedding{
			PlaceID:   place.ID,
			Name:      place.Name,
			Category:  place.Category,
			Location:  place.Location,
			Provider:  provider,
			Embedding: vector,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *EmbeddingService) SimilarPlaces(ctx context.Context, placeId string, limit int) (*response_models.SimilarPlacesResponse, error) {
	place := catalog.PlaceByID(placeId)
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	stored, err := e.embeddingRepo.GetByPlaceID(placeId)
	if err != nil {
		log.Printf("Error loading embedding for place %s: %v", placeId, err)
		return nil, utils.ErrDatabaseError
	}
	if stored == nil {
		return nil, utils.ErrPlaceNotIndexed
	}

	neighbors, err := e.embeddingRepo.ListNearest(stored.Embedding, placeId, stored.Provider, limit)
	if err != nil {
		log.Printf("Error querying similar places for %s: %v", placeId, err)
		return nil, utils.ErrDatabaseError
	}

	similar := make([]catalog.Place, 0, len(neighbors))
	for _, n := range neighbors {
		if p := catalog.PlaceByID(n.PlaceID); p != nil {
			similar = append(similar, *p)
		}
	}

	return &response_models.SimilarPlacesResponse{
		Place:   *place,
		Similar: similar,
	}, nil
}

func embeddingText(place catalog.Place) string {
	return fmt.Sprintf("%s. Category: %s. Location: %s. %s",
		place.Name, place.Category, place.Location, place.Description)
}
