package domain

// MaxSelection caps how many careers can be lined up for comparison.
const MaxSelection = 3

// SelectionSet holds the careers a user has picked for side-by-side
// comparison. It keeps insertion order and refuses picks past the
// cap. Not safe for concurrent use; callers hold their own lock.
type SelectionSet struct {
	ids []string
}

// Toggle adds the id if absent and removes it if present. It reports
// whether the set changed; a toggle-on against a full set is a no-op
// and returns false.
func (s *SelectionSet) Toggle(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	if len(s.ids) >= MaxSelection {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// IsSelected reports whether the id is in the set.
func (s *SelectionSet) IsSelected(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Clear empties the set.
func (s *SelectionSet) Clear() {
	s.ids = nil
}

// Size returns how many careers are selected.
func (s *SelectionSet) Size() int {
	return len(s.ids)
}

// IDs returns the selected ids in insertion order. The returned
// slice is a copy.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// CanCompare reports whether enough careers are selected for a
// comparison view.
func (s *SelectionSet) CanCompare() bool {
	return len(s.ids) >= 2
}
