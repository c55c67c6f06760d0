package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aezakzedd/pathfinder-black/internal/models/db_models"
)

type IPoiEmbeddingRepository interface {
	UpsertPoiEmbedding(emb db_models.PoiEmbedding) error
	ListSimilarPois(vector pgvector.Vector, municipality string, limit int) ([]db_models.PoiEmbedding, error)
}

type poiEmbeddingRepository struct {
	db *gorm.DB
}

func NewPoiEmbeddingRepository(db *gorm.DB) IPoiEmbeddingRepository {
	return &poiEmbeddingRepository{db: db}
}

func (p *poiEmbeddingRepository) UpsertPoiEmbedding(emb db_models.PoiEmbedding) error {
	return p.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "poi_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "municipality", "category", "embedding"}),
		}).
		Create(&emb).Error
}

func (p *poiEmbeddingRepository) ListSimilarPois(vector pgvector.Vector, municipality string, limit int) ([]db_models.PoiEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.PoiEmbedding
	vecStr := vector.String()

	query := `
        SELECT * FROM poi_embeddings
        WHERE ($2 = '' OR municipality = $2)
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $3
    `

	if err := p.db.Raw(query, vecStr, municipality, limit).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
