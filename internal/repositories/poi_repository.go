package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aezakzedd/pathfinder-black/internal/models/db_models"
)

type POIRepository interface {
	Upsert(ctx context.Context, poi *db_models.POI) error
	ListByMunicipality(ctx context.Context, municipality string) ([]db_models.POI, error)
	FindByName(ctx context.Context, name string) (*db_models.POI, error)
	ListByIds(ctx context.Context, ids []string) ([]db_models.POI, error)
	SearchByKeywords(ctx context.Context, keywords []string, municipality string) ([]db_models.POI, error)
	Count(ctx context.Context) (int64, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (p *poiRepository) Upsert(ctx context.Context, poi *db_models.POI) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "municipality"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "description", "latitude", "longitude", "source_ordinal", "tags", "updated_at"}),
		}).
		Create(poi).Error
}

func (p *poiRepository) ListByMunicipality(ctx context.Context, municipality string) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := p.db.WithContext(ctx).
		Where("municipality = ?", municipality).
		Order("source_ordinal asc").
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (p *poiRepository) FindByName(ctx context.Context, name string) (*db_models.POI, error) {
	var poi db_models.POI
	err := p.db.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		First(&poi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &poi, nil
}

func (p *poiRepository) ListByIds(ctx context.Context, ids []string) ([]db_models.POI, error) {
	if len(ids) == 0 {
		return []db_models.POI{}, nil
	}
	var pois []db_models.POI
	err := p.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (p *poiRepository) SearchByKeywords(ctx context.Context, keywords []string, municipality string) ([]db_models.POI, error) {
	if len(keywords) == 0 {
		return []db_models.POI{}, nil
	}

	query := p.db.WithContext(ctx).Model(&db_models.POI{})
	if municipality != "" {
		query = query.Where("municipality = ?", municipality)
	}

	var clauses []string
	var args []interface{}
	for _, kw := range keywords {
		clauses = append(clauses, "(lower(name) LIKE ? OR lower(description) LIKE ? OR ? = ANY(tags))")
		like := "%" + strings.ToLower(kw) + "%"
		args = append(args, like, like, strings.ToLower(kw))
	}
	query = query.Where(strings.Join(clauses, " OR "), args...)

	var pois []db_models.POI
	if err := query.Limit(20).Find(&pois).Error; err != nil {
		return nil, err
	}
	return pois, nil
}

func (p *poiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&db_models.POI{}).Count(&n).Error
	return n, err
}
