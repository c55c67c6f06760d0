package db_models

import "github.com/lib/pq"

// POI is the catalog row backing chat retrieval. The catalog is synced from
// the municipality geodata files at startup; SourceOrdinal preserves the
// feature order within its source file for tie-break ordering.
type POI struct {
	BaseModel
	Name          string `gorm:"index:idx_poi_muni_name,priority:2"`
	Municipality  string `gorm:"index:idx_poi_muni_name,priority:1"`
	Category      string
	Description   string
	Latitude      float64
	Longitude     float64
	SourceOrdinal int
	Tags          pq.StringArray `gorm:"type:text[]"`
}
