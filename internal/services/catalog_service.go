package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/aezakzedd/pathfinder-black/internal/models/db_models"
	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
	"github.com/aezakzedd/pathfinder-black/internal/repositories"
	"github.com/aezakzedd/pathfinder-black/pkg/utils"
)

// CatalogServiceInterface keeps the Postgres POI catalog in sync with the
// municipality geodata files. Chat retrieval runs against the catalog, not
// the raw files.
type CatalogServiceInterface interface {
	SyncCatalog(ctx context.Context) error
}

type CatalogService struct {
	geodataRepo   repositories.GeodataRepository
	poiRepo       repositories.POIRepository
	embeddingRepo repositories.IPoiEmbeddingRepository
	aiClient      utils.AIClientInterface
}

func NewCatalogService(
	geodataRepo repositories.GeodataRepository,
	poiRepo repositories.POIRepository,
	embeddingRepo repositories.IPoiEmbeddingRepository,
	aiClient utils.AIClientInterface,
) CatalogServiceInterface {
	return &CatalogService{
		geodataRepo:   geodataRepo,
		poiRepo:       poiRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

// SyncCatalog walks every municipality file and upserts its POIs. A failed
// municipality is logged and skipped; sync only errors when nothing at all
// could be loaded.
func (s *CatalogService) SyncCatalog(ctx context.Context) error {
	synced := 0
	failed := 0

	for _, municipality := range plan_models.Municipalities {
		pois, err := s.geodataRepo.LoadMunicipalityPOIs(municipality)
		if err != nil {
			log.Printf("catalog: skipping %s: %v", municipality, err)
			failed++
			continue
		}

		for _, poi := range pois {
			if err := s.syncPOI(ctx, municipality, poi); err != nil {
				log.Printf("catalog: failed to sync %s/%s: %v", municipality, poi.Name, err)
				continue
			}
			synced++
		}
	}

	if synced == 0 && failed == len(plan_models.Municipalities) {
		return fmt.Errorf("%w: no geodata could be loaded", utils.ErrGeodataError)
	}

	count, err := s.poiRepo.Count(ctx)
	if err == nil {
		log.Printf("catalog: sync done, %d POIs upserted, %d in catalog", synced, count)
	}
	return nil
}

func (s *CatalogService) syncPOI(ctx context.Context, municipality string, poi plan_models.POI) error {
	// IDs are derived from municipality and name so repeated syncs hit the
	// same rows instead of growing the table.
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(municipality+"/"+poi.Name))

	var lat, lng float64
	if poi.Coordinates != nil {
		lat = poi.Coordinates.Lat
		lng = poi.Coordinates.Lng
	}

	row := db_models.POI{
		Name:          poi.Name,
		Municipality:  municipality,
		Category:      poi.Category,
		Description:   poi.Description,
		Latitude:      lat,
		Longitude:     lng,
		SourceOrdinal: poi.Ordinal,
		Tags:          []string{poi.Category},
	}
	row.ID = id

	if err := s.poiRepo.Upsert(ctx, &row); err != nil {
		return err
	}

	if s.aiClient == nil {
		return nil
	}
	text := fmt.Sprintf("%s. %s. %s in %s, Catanduanes", poi.Name, poi.Description, poi.Category, municipality)
	vec, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}
	return s.embeddingRepo.UpsertPoiEmbedding(db_models.PoiEmbedding{
		PoiID:        id.String(),
		Name:         poi.Name,
		Municipality: municipality,
		Category:     poi.Category,
		Embedding:    vec,
	})
}
