package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
)

// GeodataRepository reads the static per-municipality GeoJSON documents. One
// file per municipality, Point features carry the POIs; the same coordinates
// drive both marker placement and camera framing.
type GeodataRepository interface {
	LoadMunicipalityPOIs(municipality string) ([]plan_models.POI, error)
	MunicipalityBounds(municipality string) (*plan_models.Coordinate, float64, error)
}

type fileGeodataRepository struct {
	dir string
}

func NewGeodataRepository(dir string) GeodataRepository {
	return &fileGeodataRepository{dir: dir}
}

type geoFeature struct {
	Properties map[string]interface{} `json:"properties"`
	Geometry   struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	} `json:"geometry"`
}

type featureCollection struct {
	Features []geoFeature `json:"features"`
}

func (r *fileGeodataRepository) load(municipality string) (*featureCollection, error) {
	// File names replace spaces, e.g. SAN ANDRES -> SAN_ANDRES.geojson.
	name := strings.ReplaceAll(strings.ToUpper(municipality), " ", "_")
	path := filepath.Join(r.dir, name+".geojson")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geodata %s: %w", path, err)
	}

	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse geodata %s: %w", path, err)
	}
	return &fc, nil
}

func (r *fileGeodataRepository) LoadMunicipalityPOIs(municipality string) ([]plan_models.POI, error) {
	fc, err := r.load(municipality)
	if err != nil {
		return nil, err
	}

	pois := make([]plan_models.POI, 0, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Geometry.Type != "Point" {
			continue
		}

		var coords []float64
		if err := json.Unmarshal(feature.Geometry.Coordinates, &coords); err != nil || len(coords) < 2 {
			continue
		}

		poi := FeatureToPOI(feature.Properties, coords[0], coords[1], len(pois))
		if poi.Name == "" {
			poi.Name = fmt.Sprintf("%s place %d", municipality, i+1)
			poi.ID = poi.Name
		}
		pois = append(pois, poi)
	}
	return pois, nil
}

func (r *fileGeodataRepository) MunicipalityBounds(municipality string) (*plan_models.Coordinate, float64, error) {
	pois, err := r.LoadMunicipalityPOIs(municipality)
	if err != nil {
		return nil, 0, err
	}
	return BoundsCenter(municipality, pois)
}

// FeatureToPOI converts one Point feature's properties into the normalized
// POI record. The ordinal preserves the feature's position within its load
// for tie-break ordering.
func FeatureToPOI(props map[string]interface{}, lng, lat float64, ordinal int) plan_models.POI {
	name := stringProp(props, "name", "Name", "NAME")
	category := stringProp(props, "category")
	if category == "" {
		category = inferCategory(props)
	}
	description := stringProp(props, "description", "Description")

	return plan_models.POI{
		ID:          name,
		Name:        name,
		Category:    category,
		Description: description,
		Coordinates: &plan_models.Coordinate{Lng: lng, Lat: lat},
		Ordinal:     ordinal,
	}
}

// BoundsCenter computes the bounding-box center of the municipality's Point
// features for camera framing. CARAMORAN sprawls, so it gets a wider zoom.
func BoundsCenter(municipality string, pois []plan_models.POI) (*plan_models.Coordinate, float64, error) {
	minLng, maxLng := 181.0, -181.0
	minLat, maxLat := 91.0, -91.0
	found := false

	for _, poi := range pois {
		if poi.Coordinates == nil {
			continue
		}
		found = true
		if poi.Coordinates.Lng < minLng {
			minLng = poi.Coordinates.Lng
		}
		if poi.Coordinates.Lng > maxLng {
			maxLng = poi.Coordinates.Lng
		}
		if poi.Coordinates.Lat < minLat {
			minLat = poi.Coordinates.Lat
		}
		if poi.Coordinates.Lat > maxLat {
			maxLat = poi.Coordinates.Lat
		}
	}

	if !found {
		return nil, 0, fmt.Errorf("no point features for %s", municipality)
	}

	zoom := 11.0
	if strings.EqualFold(municipality, "CARAMORAN") {
		zoom = 10.0
	}

	return &plan_models.Coordinate{
		Lng: (minLng + maxLng) / 2,
		Lat: (minLat + maxLat) / 2,
	}, zoom, nil
}

func stringProp(props map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := props[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// inferCategory maps common OSM-style tags onto the planner's category ids
// for files that do not carry an explicit category property.
func inferCategory(props map[string]interface{}) string {
	switch stringProp(props, "tourism") {
	case "hotel", "guest_house", "hostel", "motel", "apartment":
		return "hotels"
	case "viewpoint", "attraction":
		return "viewpoints"
	}
	switch stringProp(props, "amenity") {
	case "restaurant", "cafe", "fast_food", "bar", "food_court":
		return "restaurants"
	case "place_of_worship":
		return "religious"
	}
	if stringProp(props, "waterway") == "waterfall" || stringProp(props, "natural") != "" {
		return "falls"
	}
	return "viewpoints"
}
