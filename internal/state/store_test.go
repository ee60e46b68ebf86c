package state

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestQuantities_IncrementDecrement(t *testing.T) {
	q := NewQuantities()

	if q.Get("a1") != 0 {
		t.Errorf("Expected absent quantity 0, got %d", q.Get("a1"))
	}

	if n := q.Decrement("a1"); n != 0 {
		t.Errorf("Decrement on fresh id = %d, expected 0", n)
	}

	q.Increment("a1")
	q.Increment("a1")
	if n := q.Decrement("a1"); n != 1 {
		t.Errorf("Expected quantity 1, got %d", n)
	}

	if q.Get("b2") != 0 {
		t.Errorf("Expected other id untouched, got %d", q.Get("b2"))
	}
}

func TestQuantities_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		q := NewQuantities()
		expected := 0
		for step := 0; step < 50; step++ {
			if rng.Intn(2) == 0 {
				q.Increment("x")
				expected++
			} else {
				q.Decrement("x")
				if expected > 0 {
					expected--
				}
			}
			if q.Get("x") < 0 {
				t.Fatalf("run %d step %d: quantity went negative: %d", run, step, q.Get("x"))
			}
			if q.Get("x") != expected {
				t.Fatalf("run %d step %d: quantity = %d, expected %d", run, step, q.Get("x"), expected)
			}
		}
	}
}

func TestQuantities_Total(t *testing.T) {
	q := NewQuantities()
	q.Increment("a")
	q.Increment("a")
	q.Increment("b")
	q.Decrement("c")

	if q.Total() != 3 {
		t.Errorf("Expected total 3, got %d", q.Total())
	}
}

func TestFavorites_ToggleIsInvolution(t *testing.T) {
	f := NewFavorites()

	if !f.Toggle("a1") {
		t.Error("Expected first toggle to add")
	}
	if !f.Contains("a1") {
		t.Error("Expected a1 to be a favorite")
	}
	if f.Toggle("a1") {
		t.Error("Expected second toggle to remove")
	}
	if f.Contains("a1") {
		t.Error("Expected a1 to be removed")
	}

	f.Toggle("b2")
	f.Toggle("c3")
	f.Toggle("c3")
	f.Toggle("c3")
	if !reflect.DeepEqual(f.IDs(), []string{"b2", "c3"}) {
		t.Errorf("Expected [b2 c3], got %v", f.IDs())
	}
	if f.Len() != 2 {
		t.Errorf("Expected 2 favorites, got %d", f.Len())
	}
}

func TestStore_Operations(t *testing.T) {
	s := NewStore()

	var changed []string
	s.SetChangeCallback(func(id string) {
		changed = append(changed, id)
	})

	s.IncrementQuantity("a1")
	s.IncrementQuantity("a1")
	s.DecrementQuantity("a1")
	s.ToggleFavorite("a1")
	s.DecrementQuantity("ghost")

	if s.Quantity("a1") != 1 {
		t.Errorf("Expected quantity 1, got %d", s.Quantity("a1"))
	}
	if !s.IsFavorite("a1") {
		t.Error("Expected a1 to be a favorite")
	}
	if s.Quantity("ghost") != 0 || s.IsFavorite("ghost") {
		t.Error("Expected unknown id to stay at defaults")
	}

	expected := []string{"a1", "a1", "a1", "a1", "ghost"}
	if !reflect.DeepEqual(changed, expected) {
		t.Errorf("Expected change notifications %v, got %v", expected, changed)
	}

	if s.Quantities().Total() != 1 || s.Favorites().Len() != 1 {
		t.Errorf("Unexpected cell contents: total=%d favorites=%d", s.Quantities().Total(), s.Favorites().Len())
	}
}
