package services

import (
	"errors"
	"testing"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
)

type stubGeodata struct {
	pois []plan_models.POI
	err  error
}

func (s *stubGeodata) LoadMunicipalityPOIs(municipality string) ([]plan_models.POI, error) {
	return s.pois, s.err
}

func (s *stubGeodata) MunicipalityBounds(municipality string) (*plan_models.Coordinate, float64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return &plan_models.Coordinate{Lng: 124.2, Lat: 13.6}, 11, nil
}

func TestResolveDay_Gates(t *testing.T) {
	pool := []plan_models.POI{
		{ID: "p1", Name: "Binurong Point", Category: "viewpoints"},
		{ID: "p2", Name: "Maribina Falls", Category: "falls"},
		{ID: "p3", Name: "Rakdell Inn", Category: "hotels"},
	}
	svc := NewAvailabilityService(&stubGeodata{pois: pool})

	tests := []struct {
		name         string
		municipality string
		categories   []string
		explicit     bool
		want         int
	}{
		{name: "all gates open", municipality: "VIRAC", categories: []string{"viewpoints", "falls"}, explicit: true, want: 2},
		{name: "implicit municipality", municipality: "VIRAC", categories: []string{"viewpoints"}, explicit: false, want: 0},
		{name: "no categories", municipality: "VIRAC", categories: nil, explicit: true, want: 0},
		{name: "empty municipality", municipality: "", categories: []string{"viewpoints"}, explicit: true, want: 0},
		{name: "category filters", municipality: "VIRAC", categories: []string{"hotels"}, explicit: true, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.ResolveDay(tc.municipality, tc.categories, tc.explicit)
			if len(got) != tc.want {
				t.Fatalf("ResolveDay = %d POIs, want %d", len(got), tc.want)
			}
		})
	}
}

func TestResolveDay_GeodataFailureIsEmpty(t *testing.T) {
	svc := NewAvailabilityService(&stubGeodata{err: errors.New("no such file")})
	got := svc.ResolveDay("VIRAC", []string{"viewpoints"}, true)
	if len(got) != 0 {
		t.Fatalf("ResolveDay on geodata failure = %d POIs, want 0", len(got))
	}
}

func TestMunicipalityCamera(t *testing.T) {
	svc := NewAvailabilityService(&stubGeodata{})
	pan := svc.MunicipalityCamera("VIRAC")
	if pan == nil || pan.Zoom != 11 {
		t.Fatalf("MunicipalityCamera = %+v, want zoom 11", pan)
	}

	svc = NewAvailabilityService(&stubGeodata{err: errors.New("no such file")})
	if pan := svc.MunicipalityCamera("VIRAC"); pan != nil {
		t.Fatalf("MunicipalityCamera on failure = %+v, want nil", pan)
	}
}
