package table_test

import (
	"testing"

	"github.com/go-mosaic/mosaic/pkg/table"
)

func TestSelectionToggle(t *testing.T) {
	s := table.NewSelection()

	s.Toggle("a")
	if !s.Has("a") {
		t.Fatal("expected a to be selected after toggle")
	}
	s.Toggle("a")
	if s.Has("a") {
		t.Fatal("expected a to be deselected after second toggle")
	}
}

func TestSelectionSetAll(t *testing.T) {
	s := table.NewSelection()
	keys := []string{"a", "b", "c"}

	s.SetAll(keys, true)
	if !s.AllSelected(keys) {
		t.Fatal("expected all keys selected")
	}
	if s.Count() != 3 {
		t.Errorf("Count = %d, want 3", s.Count())
	}

	s.SetAll(keys, false)
	if s.Count() != 0 {
		t.Errorf("Count after clear = %d, want 0", s.Count())
	}
}

func TestSelectionAllSelectedEmpty(t *testing.T) {
	s := table.NewSelection()
	if s.AllSelected(nil) {
		t.Error("AllSelected of no keys should be false")
	}
}

func TestSelectionKeysSorted(t *testing.T) {
	s := table.NewSelection()
	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("b")

	keys := s.Keys()
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	// Keys stay selected while their rows are filtered out of view.
	s := table.NewSelection()
	s.Toggle("hidden")

	if !s.Has("hidden") {
		t.Fatal("selection should retain keys not currently visible")
	}

	s.Prune([]string{"visible"})
	if s.Has("hidden") {
		t.Error("Prune should drop keys absent from the current data set")
	}
}
