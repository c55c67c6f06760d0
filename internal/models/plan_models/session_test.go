package plan_models

import "testing"

func TestSessionDayCount_FromDates(t *testing.T) {
	s := NewSession("s1")
	s.Trip.StartDate = "2025-12-27"
	s.Trip.EndDate = "2025-12-29"
	if got := s.DayCount(); got != 3 {
		t.Fatalf("DayCount = %d, want 3", got)
	}
}

func TestSessionDayCount_AIOverrideWins(t *testing.T) {
	s := NewSession("s1")
	s.Trip.StartDate = "2025-12-27"
	s.Trip.EndDate = "2025-12-29"
	s.AIDayCount = 5
	if got := s.DayCount(); got != 5 {
		t.Fatalf("DayCount with override = %d, want 5", got)
	}
}

func TestSessionDayCount_BadDatesPinToOne(t *testing.T) {
	s := NewSession("s1")
	s.Trip.StartDate = "eventually"
	s.Trip.EndDate = "2025-12-29"
	if got := s.DayCount(); got != 1 {
		t.Fatalf("DayCount with bad start = %d, want 1", got)
	}
}

func TestFirstSelectedMunicipality(t *testing.T) {
	s := NewSession("s1")
	s.Trip.StartDate = "2025-12-27"
	s.Trip.EndDate = "2025-12-29"
	s.Days[DayKey(0)] = NewDaySlot(true)
	s.Days[DayKey(1)] = NewDaySlot(false)
	s.Days[DayKey(2)] = NewDaySlot(false)

	if got := s.FirstSelectedMunicipality(); got != "" {
		t.Fatalf("FirstSelectedMunicipality on fresh session = %q, want empty", got)
	}
	if s.HasSelectedMunicipality() {
		t.Fatal("HasSelectedMunicipality on fresh session = true")
	}

	s.Days[DayKey(2)].Municipality = "BARAS"
	s.Days[DayKey(1)].Municipality = "VIRAC"

	if got := s.FirstSelectedMunicipality(); got != "VIRAC" {
		t.Fatalf("FirstSelectedMunicipality = %q, want VIRAC (lowest day index)", got)
	}
	if !s.HasSelectedMunicipality() {
		t.Fatal("HasSelectedMunicipality = false after selection")
	}
}
