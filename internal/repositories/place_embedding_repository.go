package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"yatra/internal/models/db_models"
)

type IPlaceEmbeddingRepository interface {
	Upsert(embedding db_models.PlaceEmbedding) error
	GetByPlaceID(placeID string) (*db_models.PlaceEmbedding, error)
	// ListNearest ranks stored embeddings by cosine distance to the query
	// vector, excluding the place itself and any rows from other providers.
	ListNearest(vector pgvector.Vector, excludePlaceID, provider string, limit int) ([]db_models.PlaceEmbedding, error)
}

type PlaceEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) IPlaceEmbeddingRepository {
	return &PlaceEmbeddingRepository{db: db}
}

func (p *PlaceEmbeddingRepository) Upsert(embedding db_models.PlaceEmbedding) error {
	return p.db.Save(&embedding).Error
}

func (p *PlaceEmbeddingRepository) GetByPlaceID(placeID string) (*db_models.PlaceEmbedding, error) {
	var out db_models.PlaceEmbedding
	err := p.db.First(&out, "place_id = ?", placeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (p *PlaceEmbeddingRepository) ListNearest(vector pgvector.Vector, excludePlaceID, provider string, limit int) ([]db_models.PlaceEmbedding, error) {
	var results []db_models.PlaceEmbedding

	if limit <= 0 {
		limit = 5
	}

	query := `
        SELECT *, (1 - (embedding <=> $1)) AS similarity
        FROM place_embeddings
        WHERE place_id <> $2 AND provider = $3
        ORDER BY embedding <=> $1
        LIMIT $4
    `
	err := p.db.Raw(query, vector.String(), excludePlaceID, provider, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
