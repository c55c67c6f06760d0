package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type PoiEmbedding struct {
	PoiID        string `gorm:"primaryKey;column:poi_id"`
	Name         string
	Municipality string
	Category     string
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}
