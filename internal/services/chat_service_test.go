package services

import (
	"testing"

	"github.com/aezakzedd/pathfinder-black/internal/models/db_models"
)

func catalogPOIs(n int) []db_models.POI {
	pois := make([]db_models.POI, 0, n)
	for i := 0; i < n; i++ {
		pois = append(pois, db_models.POI{
			Name:         string(rune('A'+i)) + " Spot",
			Municipality: "VIRAC",
			Category:     "viewpoints",
			Latitude:     13.5,
			Longitude:    124.2,
		})
	}
	return pois
}

func TestDistributePlaces_EvenSplitWithRemainderOnLastDay(t *testing.T) {
	itinerary, total := distributePlaces(catalogPOIs(7), 3)

	if total != 7 {
		t.Fatalf("total = %d, want 7", total)
	}
	if len(itinerary) != 3 {
		t.Fatalf("days = %d, want 3", len(itinerary))
	}
	if got := len(itinerary["day_1"].Places); got != 2 {
		t.Fatalf("day_1 places = %d, want 2", got)
	}
	if got := len(itinerary["day_2"].Places); got != 2 {
		t.Fatalf("day_2 places = %d, want 2", got)
	}
	if got := len(itinerary["day_3"].Places); got != 3 {
		t.Fatalf("day_3 places = %d, want the remainder 3", got)
	}
	if itinerary["day_1"].Day != 1 || itinerary["day_3"].Day != 3 {
		t.Fatal("day numbers should be 1-based")
	}
	if itinerary["day_1"].Municipality != "VIRAC" {
		t.Fatalf("day_1 municipality = %q", itinerary["day_1"].Municipality)
	}
}

func TestDistributePlaces_FewerPlacesThanDays(t *testing.T) {
	itinerary, total := distributePlaces(catalogPOIs(2), 4)

	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if len(itinerary) != 4 {
		t.Fatalf("days = %d, want 4 even when some stay empty", len(itinerary))
	}
	if got := len(itinerary["day_1"].Places); got != 1 {
		t.Fatalf("day_1 places = %d, want 1", got)
	}
	if got := len(itinerary["day_3"].Places); got != 0 {
		t.Fatalf("day_3 places = %d, want 0", got)
	}
}

func TestDistributePlaces_NoPlaces(t *testing.T) {
	itinerary, total := distributePlaces(nil, 2)
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
	for key, day := range itinerary {
		if len(day.Places) != 0 {
			t.Fatalf("%s has %d places, want 0", key, len(day.Places))
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := extractKeywords("Where can I find good waterfalls?", []string{"Swimming"})

	want := map[string]bool{"where": true, "find": true, "good": true, "waterfalls?": true, "beach": true, "falls": true, "island": true}
	for _, kw := range keywords {
		if !want[kw] {
			t.Fatalf("unexpected keyword %q", kw)
		}
		delete(want, kw)
	}
	if len(want) != 0 {
		t.Fatalf("missing keywords: %v", want)
	}
}

func TestPoisToPlaces_Limit(t *testing.T) {
	places := poisToPlaces(catalogPOIs(12), maxAnswerPlaces)
	if len(places) != maxAnswerPlaces {
		t.Fatalf("places = %d, want %d", len(places), maxAnswerPlaces)
	}
	if places[0].Coordinates == nil || places[0].Coordinates.Lat != 13.5 {
		t.Fatalf("coordinates missing from %+v", places[0])
	}
}
