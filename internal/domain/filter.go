package domain

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Facets is the filterable projection of a catalog entity. Each
// entity type maps itself to Facets once; the filter engine never
// needs to know the concrete type.
type Facets struct {
	Name        string
	Secondary   string // provider, website or contact line, searched alongside the name
	Category    string // scholarship type, university type
	Location    string
	Destination string
	ProgramTags []string
	Deadline    *time.Time
	CreatedAt   time.Time
	Count       int // attached scholarships, for the schol filter
}

// Extractor projects an entity into its facets for a given locale.
type Extractor[T any] func(item T, loc Locale) Facets

// matches applies every active criterion with AND semantics.
func matches(f Facets, c Criteria, now time.Time) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(f.Name), q) &&
			!strings.Contains(strings.ToLower(f.Secondary), q) {
			return false
		}
	}
	if c.Type != "" && f.Category != c.Type {
		return false
	}
	if c.Deadline != "" && !InBucket(f.Deadline, now, c.Deadline) {
		return false
	}
	if c.Destination != "" && f.Destination != c.Destination {
		return false
	}
	if c.Location != "" && f.Location != c.Location {
		return false
	}
	if c.Program != "" && !containsString(f.ProgramTags, c.Program) {
		return false
	}
	if c.WithScholarships && f.Count == 0 {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Filter returns the items matching the criteria, ordered by the
// criteria's sort order. The input slice is never mutated.
func Filter[T any](items []T, c Criteria, extract Extractor[T], loc Locale, now time.Time) []T {
	type entry struct {
		item   T
		facets Facets
	}
	kept := make([]entry, 0, len(items))
	for _, it := range items {
		f := extract(it, loc)
		if matches(f, c, now) {
			kept = append(kept, entry{item: it, facets: f})
		}
	}

	switch c.Sort {
	case SortDeadline:
		sort.SliceStable(kept, func(i, j int) bool {
			return deadlineLess(kept[i].facets.Deadline, kept[j].facets.Deadline)
		})
	case SortName:
		coll := collatorFor(loc)
		sort.SliceStable(kept, func(i, j int) bool {
			return coll.CompareString(kept[i].facets.Name, kept[j].facets.Name) < 0
		})
	case SortNewest:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].facets.CreatedAt.After(kept[j].facets.CreatedAt)
		})
	case SortCount:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].facets.Count > kept[j].facets.Count
		})
	default:
		sort.SliceStable(kept, func(i, j int) bool {
			return defaultLess(kept[i].facets, kept[j].facets, now)
		})
	}

	out := make([]T, len(kept))
	for i, e := range kept {
		out[i] = e.item
	}
	return out
}

// defaultLess puts open entries before closed ones, then soonest
// deadline first, with deadlined entries ahead of undated ones.
func defaultLess(a, b Facets, now time.Time) bool {
	aClosed := IsClosed(a.Deadline, now)
	bClosed := IsClosed(b.Deadline, now)
	if aClosed != bClosed {
		return !aClosed
	}
	return deadlineLess(a.Deadline, b.Deadline)
}

// deadlineLess orders by deadline ascending with nil deadlines last.
func deadlineLess(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func collatorFor(loc Locale) *collate.Collator {
	if loc == LocaleKhmer {
		return collate.New(language.Khmer)
	}
	return collate.New(language.English)
}

// FacetCount is the number of items a single filter value would
// match on its own.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetCounts tallies filter values over the WHOLE collection,
// ignoring any active criteria, so the counts shown beside each
// filter option stay stable while the user narrows the list.
func FacetCounts[T any](items []T, extract Extractor[T], loc Locale, now time.Time) map[string][]FacetCount {
	category := map[string]int{}
	location := map[string]int{}
	destination := map[string]int{}
	program := map[string]int{}
	deadline := map[string]int{}

	for _, it := range items {
		f := extract(it, loc)
		if f.Category != "" {
			category[f.Category]++
		}
		if f.Location != "" {
			location[f.Location]++
		}
		if f.Destination != "" {
			destination[f.Destination]++
		}
		for _, tag := range f.ProgramTags {
			program[tag]++
		}
		if InBucket(f.Deadline, now, BucketUrgent) {
			deadline[string(BucketUrgent)]++
		}
		if InBucket(f.Deadline, now, BucketSoon) {
			deadline[string(BucketSoon)]++
		}
	}

	out := make(map[string][]FacetCount, 5)
	for name, counts := range map[string]map[string]int{
		"type": category,
		"loc":  location,
		"dest": destination,
		"prog": program,
		"dl":   deadline,
	} {
		if len(counts) == 0 {
			continue
		}
		out[name] = sortedCounts(counts)
	}
	return out
}

func sortedCounts(counts map[string]int) []FacetCount {
	list := make([]FacetCount, 0, len(counts))
	for v, n := range counts {
		list = append(list, FacetCount{Value: v, Count: n})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Value < list[j].Value
	})
	return list
}
