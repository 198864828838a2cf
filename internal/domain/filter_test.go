package domain

import (
	"testing"
	"time"
)

var filterNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func deadlineIn(days int) *time.Time {
	d := filterNow.AddDate(0, 0, days)
	return &d
}

func testScholarships() []Scholarship {
	return []Scholarship{
		{
			ID:        "s1",
			Name:      Localized{EN: "Japan Ministry of Education Scholarship", KM: "អាហារូបករណ៍ជប៉ុន"},
			Provider:  Localized{EN: "MEXT"},
			Type:      ScholarshipFull,
			Deadline:  deadlineIn(5),
			CreatedAt: filterNow.AddDate(0, 0, -30),
		},
		{
			ID:        "s2",
			Name:      Localized{EN: "Merit Scholarship", KM: "អាហារូបករណ៍និទ្ទេសល្អ"},
			Provider:  Localized{EN: "Ministry of Education of Cambodia"},
			Type:      ScholarshipPartial,
			Deadline:  deadlineIn(20),
			CreatedAt: filterNow.AddDate(0, 0, -10),
		},
		{
			ID:        "s3",
			Name:      Localized{EN: "Community Grant"},
			Provider:  Localized{EN: "Local NGO"},
			Type:      ScholarshipGrant,
			Deadline:  deadlineIn(-2),
			CreatedAt: filterNow.AddDate(0, 0, -5),
		},
		{
			ID:        "s4",
			Name:      Localized{EN: "Open Research Fund"},
			Provider:  Localized{EN: "Cambodia Science Council"},
			Type:      ScholarshipGrant,
			CreatedAt: filterNow.AddDate(0, 0, -1),
		},
	}
}

func ids(list []Scholarship) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterScholarships(t *testing.T) {
	items := testScholarships()

	tests := []struct {
		name string
		crit Criteria
		want []string
	}{
		{"no criteria default order", Criteria{}, []string{"s1", "s2", "s4", "s3"}},
		{"query hits provider", Criteria{Query: "cambodia"}, []string{"s2", "s4"}},
		{"type exact match", Criteria{Type: "grant"}, []string{"s4", "s3"}},
		{"urgent bucket", Criteria{Deadline: BucketUrgent}, []string{"s1"}},
		{"soon bucket includes urgent range", Criteria{Deadline: BucketSoon}, []string{"s1", "s2"}},
		{"overseas only", Criteria{Destination: DestinationOverseas}, []string{"s1"}},
		{"combined filters AND", Criteria{Type: "grant", Query: "research"}, []string{"s4"}},
		{"deadline sort puts undated last", Criteria{Sort: SortDeadline}, []string{"s3", "s1", "s2", "s4"}},
		{"newest sort", Criteria{Sort: SortNewest}, []string{"s4", "s3", "s2", "s1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.crit, ScholarshipFacets, LocaleEnglish, filterNow)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Filter() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	items := testScholarships()
	crit := Criteria{Deadline: BucketSoon}

	once := Filter(items, crit, ScholarshipFacets, LocaleEnglish, filterNow)
	twice := Filter(once, crit, ScholarshipFacets, LocaleEnglish, filterNow)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("filtering twice changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterMonotonic(t *testing.T) {
	items := testScholarships()

	broad := Filter(items, Criteria{Type: "grant"}, ScholarshipFacets, LocaleEnglish, filterNow)
	narrow := Filter(items, Criteria{Type: "grant", Query: "research"}, ScholarshipFacets, LocaleEnglish, filterNow)
	if len(narrow) > len(broad) {
		t.Errorf("adding a criterion grew the result: %d > %d", len(narrow), len(broad))
	}
	for _, s := range narrow {
		found := false
		for _, b := range broad {
			if b.ID == s.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("narrowed result contains %s missing from broader result", s.ID)
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := testScholarships()
	before := ids(items)
	Filter(items, Criteria{Sort: SortNewest}, ScholarshipFacets, LocaleEnglish, filterNow)
	if !equalIDs(ids(items), before) {
		t.Error("input slice was reordered")
	}
}

func TestNameSortUsesLocale(t *testing.T) {
	items := []Scholarship{
		{ID: "a", Name: Localized{EN: "Charlie Fund"}},
		{ID: "b", Name: Localized{EN: "Alpha Fund"}},
		{ID: "c", Name: Localized{EN: "Bravo Fund"}},
	}
	got := Filter(items, Criteria{Sort: SortName}, ScholarshipFacets, LocaleEnglish, filterNow)
	if want := []string{"b", "c", "a"}; !equalIDs(ids(got), want) {
		t.Errorf("name sort = %v, want %v", ids(got), want)
	}
}

func TestFacetCountsIgnoreCriteria(t *testing.T) {
	items := testScholarships()

	counts := FacetCounts(items, ScholarshipFacets, LocaleEnglish, filterNow)

	byValue := func(list []FacetCount, value string) int {
		for _, fc := range list {
			if fc.Value == value {
				return fc.Count
			}
		}
		return 0
	}
	if got := byValue(counts["type"], "grant"); got != 2 {
		t.Errorf("grant count = %d, want 2", got)
	}
	if got := byValue(counts["dest"], DestinationOverseas); got != 1 {
		t.Errorf("overseas count = %d, want 1", got)
	}
	if got := byValue(counts["dl"], string(BucketUrgent)); got != 1 {
		t.Errorf("urgent count = %d, want 1", got)
	}
	if got := byValue(counts["dl"], string(BucketSoon)); got != 2 {
		t.Errorf("soon count = %d, want 2", got)
	}
}

func TestCountSortOrdersByScholarshipCount(t *testing.T) {
	items := []University{
		{ID: "small", Name: Localized{EN: "Small College"}, ScholarshipCount: 1},
		{ID: "big", Name: Localized{EN: "Big University"}, ScholarshipCount: 9},
		{ID: "mid", Name: Localized{EN: "Mid University"}, ScholarshipCount: 4},
	}
	got := Filter(items, Criteria{Sort: SortCount}, UniversityFacets, LocaleEnglish, filterNow)

	want := []string{"big", "mid", "small"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("count sort[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}
