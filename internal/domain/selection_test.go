package domain

import (
	"reflect"
	"testing"
)

func TestSelectionToggle(t *testing.T) {
	var set SelectionSet

	for _, id := range []string{"teacher", "developer", "nurse"} {
		if !set.Toggle(id) {
			t.Fatalf("Toggle(%q) on non-full set returned false", id)
		}
	}
	if set.Toggle("electrician") {
		t.Error("fourth toggle-on should be rejected")
	}
	if got := set.IDs(); !reflect.DeepEqual(got, []string{"teacher", "developer", "nurse"}) {
		t.Errorf("IDs() = %v after overflow, want first three kept", got)
	}

	// Toggling an existing id removes it and frees a slot.
	if !set.Toggle("developer") {
		t.Error("toggle-off of a selected id returned false")
	}
	if set.IsSelected("developer") {
		t.Error("developer still selected after toggle-off")
	}
	if !set.Toggle("electrician") {
		t.Error("toggle-on after freeing a slot returned false")
	}
	if got := set.IDs(); !reflect.DeepEqual(got, []string{"teacher", "nurse", "electrician"}) {
		t.Errorf("IDs() = %v, want insertion order preserved", got)
	}
}

func TestSelectionCompareAndClear(t *testing.T) {
	var set SelectionSet

	if set.CanCompare() {
		t.Error("empty set should not be comparable")
	}
	set.Toggle("teacher")
	if set.CanCompare() {
		t.Error("single selection should not be comparable")
	}
	set.Toggle("nurse")
	if !set.CanCompare() {
		t.Error("two selections should be comparable")
	}

	set.Clear()
	if set.Size() != 0 {
		t.Errorf("Size() = %d after Clear, want 0", set.Size())
	}
}
