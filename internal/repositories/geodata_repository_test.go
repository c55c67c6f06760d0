package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"name": "Binurong Point", "tourism": "viewpoint", "description": "Grassy headland"},
			"geometry": {"type": "Point", "coordinates": [124.40, 13.80]}
		},
		{
			"properties": {"name": "Municipal boundary"},
			"geometry": {"type": "Polygon", "coordinates": [[[124.0, 13.0], [124.1, 13.0], [124.1, 13.1], [124.0, 13.0]]]}
		},
		{
			"properties": {"name": "Puraran Beach Resort", "tourism": "hotel"},
			"geometry": {"type": "Point", "coordinates": [124.20, 13.60]}
		},
		{
			"properties": {},
			"geometry": {"type": "Point", "coordinates": [124.30, 13.70]}
		}
	]
}`

func writeGeodata(t *testing.T, municipality string, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, municipality+".geojson")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMunicipalityPOIs(t *testing.T) {
	dir := writeGeodata(t, "BARAS", sampleGeoJSON)
	repo := NewGeodataRepository(dir)

	pois, err := repo.LoadMunicipalityPOIs("BARAS")
	if err != nil {
		t.Fatal(err)
	}
	if len(pois) != 3 {
		t.Fatalf("pois = %d, want 3 Point features with the polygon skipped", len(pois))
	}

	if pois[0].Name != "Binurong Point" || pois[0].Category != "viewpoints" {
		t.Fatalf("pois[0] = %+v", pois[0])
	}
	if pois[0].Coordinates.Lng != 124.40 || pois[0].Coordinates.Lat != 13.80 {
		t.Fatalf("pois[0] coordinates = %+v", pois[0].Coordinates)
	}
	if pois[1].Category != "hotels" {
		t.Fatalf("pois[1] category = %q, want hotels from the tourism tag", pois[1].Category)
	}
	if pois[2].Name == "" || pois[2].ID == "" {
		t.Fatalf("nameless feature should get a synthesized name, got %+v", pois[2])
	}
	for i, poi := range pois {
		if poi.Ordinal != i {
			t.Fatalf("pois[%d].Ordinal = %d", i, poi.Ordinal)
		}
	}
}

func TestLoadMunicipalityPOIs_SpacesInName(t *testing.T) {
	dir := writeGeodata(t, "SAN_ANDRES", sampleGeoJSON)
	repo := NewGeodataRepository(dir)

	if _, err := repo.LoadMunicipalityPOIs("SAN ANDRES"); err != nil {
		t.Fatalf("municipality with spaces should map onto the underscored file: %v", err)
	}
}

func TestLoadMunicipalityPOIs_MissingFile(t *testing.T) {
	repo := NewGeodataRepository(t.TempDir())
	if _, err := repo.LoadMunicipalityPOIs("VIRAC"); err == nil {
		t.Fatal("expected an error for a missing geodata file")
	}
}

func TestMunicipalityBounds(t *testing.T) {
	dir := writeGeodata(t, "BARAS", sampleGeoJSON)
	repo := NewGeodataRepository(dir)

	center, zoom, err := repo.MunicipalityBounds("BARAS")
	if err != nil {
		t.Fatal(err)
	}
	if zoom != 11 {
		t.Fatalf("zoom = %v, want 11", zoom)
	}
	if center.Lng != (124.20+124.40)/2 || center.Lat != (13.60+13.80)/2 {
		t.Fatalf("center = %+v", center)
	}
}

func TestBoundsCenter_CaramoranZoom(t *testing.T) {
	dir := writeGeodata(t, "CARAMORAN", sampleGeoJSON)
	repo := NewGeodataRepository(dir)

	_, zoom, err := repo.MunicipalityBounds("CARAMORAN")
	if err != nil {
		t.Fatal(err)
	}
	if zoom != 10 {
		t.Fatalf("zoom = %v, want the wider 10 for CARAMORAN", zoom)
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]interface{}
		want  string
	}{
		{name: "restaurant", props: map[string]interface{}{"amenity": "restaurant"}, want: "restaurants"},
		{name: "church", props: map[string]interface{}{"amenity": "place_of_worship"}, want: "religious"},
		{name: "waterfall", props: map[string]interface{}{"waterway": "waterfall"}, want: "falls"},
		{name: "natural feature", props: map[string]interface{}{"natural": "beach"}, want: "falls"},
		{name: "default", props: map[string]interface{}{}, want: "viewpoints"},
		{name: "explicit category wins", props: map[string]interface{}{"category": "hotels", "amenity": "restaurant"}, want: "hotels"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FeatureToPOI(tc.props, 124.2, 13.6, 0).Category
			if got != tc.want {
				t.Fatalf("category = %q, want %q", got, tc.want)
			}
		})
	}
}
