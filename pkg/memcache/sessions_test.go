package memcache

import (
	"testing"
	"time"

	"github.com/aezakzedd/pathfinder-black/internal/models/plan_models"
)

func TestSessions_PutGet(t *testing.T) {
	store := NewSessions(0)
	store.Put(plan_models.NewSession("s1"))

	got, ok := store.Get("s1")
	if !ok || got.ID != "s1" {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if _, ok := store.Get("unknown"); ok {
		t.Fatal("Get(unknown) = ok")
	}
}

func TestSessions_UpdateSerializesMutation(t *testing.T) {
	store := NewSessions(0)
	store.Put(plan_models.NewSession("s1"))

	ok := store.Update("s1", func(s *plan_models.Session) {
		s.ActiveView = "itinerary"
	})
	if !ok {
		t.Fatal("Update returned false for a live session")
	}

	got, _ := store.Get("s1")
	if got.ActiveView != "itinerary" {
		t.Fatalf("ActiveView = %q after Update", got.ActiveView)
	}

	if store.Update("unknown", func(s *plan_models.Session) {}) {
		t.Fatal("Update(unknown) returned true")
	}
}

func TestSessions_TTLExpiry(t *testing.T) {
	store := NewSessions(10 * time.Millisecond)
	store.Put(plan_models.NewSession("s1"))

	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get("s1"); ok {
		t.Fatal("expired session should be dropped")
	}
}

func TestSessions_Delete(t *testing.T) {
	store := NewSessions(0)
	store.Put(plan_models.NewSession("s1"))
	store.Delete("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatal("deleted session still retrievable")
	}
}
