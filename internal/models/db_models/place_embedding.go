package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// PlaceEmbedding stores a vector for one catalog place so similar places can
// be ranked with a cosine-distance query. PlaceID matches catalog.Place.ID.
// Provider records which vector space the embedding belongs to; rows from a
// previous provider are reindexed, never compared against.
type PlaceEmbedding struct {
	PlaceID   string `gorm:"primaryKey;column:place_id"`
	Name      string
	Category  string
	Location  string
	Provider  string
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (PlaceEmbedding) TableName() string {
	return "place_embeddings"
}
