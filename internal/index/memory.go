// Package index holds the in-memory catalog snapshots served to
// clients and the table of live diagnosis sessions. Refreshes replace
// whole snapshots so readers never see a half-updated catalog.
package index

import (
	"sync"
	"time"

	"github.com/pathforward/doorhub/internal/domain"
)

type snapshot[T any] struct {
	items     []T
	byID      map[string]T
	updatedAt time.Time
}

func buildSnapshot[T any](items []T, id func(T) string, now time.Time) snapshot[T] {
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[id(it)] = it
	}
	return snapshot[T]{items: items, byID: byID, updatedAt: now}
}

// CatalogIndex is the read-optimized view of all catalog collections.
// Writers swap entire snapshots under the lock; readers get stable
// slices they must not mutate.
type CatalogIndex struct {
	mu           sync.RWMutex
	scholarships snapshot[domain.Scholarship]
	universities snapshot[domain.University]
	vocational   snapshot[domain.VocationalSchool]
	careers      snapshot[domain.Career]
}

func NewCatalogIndex() *CatalogIndex {
	return &CatalogIndex{}
}

// SetScholarships replaces the scholarship snapshot.
func (x *CatalogIndex) SetScholarships(items []domain.Scholarship, now time.Time) {
	snap := buildSnapshot(items, func(s domain.Scholarship) string { return s.ID }, now)
	x.mu.Lock()
	x.scholarships = snap
	x.mu.Unlock()
}

// SetUniversities replaces the university snapshot.
func (x *CatalogIndex) SetUniversities(items []domain.University, now time.Time) {
	snap := buildSnapshot(items, func(u domain.University) string { return u.ID }, now)
	x.mu.Lock()
	x.universities = snap
	x.mu.Unlock()
}

// SetVocationalSchools replaces the vocational school snapshot.
func (x *CatalogIndex) SetVocationalSchools(items []domain.VocationalSchool, now time.Time) {
	snap := buildSnapshot(items, func(v domain.VocationalSchool) string { return v.ID }, now)
	x.mu.Lock()
	x.vocational = snap
	x.mu.Unlock()
}

// SetCareers replaces the career snapshot.
func (x *CatalogIndex) SetCareers(items []domain.Career, now time.Time) {
	snap := buildSnapshot(items, func(c domain.Career) string { return c.ID }, now)
	x.mu.Lock()
	x.careers = snap
	x.mu.Unlock()
}

// Scholarships returns the current scholarship snapshot.
func (x *CatalogIndex) Scholarships() []domain.Scholarship {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.scholarships.items
}

// ScholarshipByID looks a scholarship up in the current snapshot.
func (x *CatalogIndex) ScholarshipByID(id string) (domain.Scholarship, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	s, ok := x.scholarships.byID[id]
	return s, ok
}

// Universities returns the current university snapshot.
func (x *CatalogIndex) Universities() []domain.University {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.universities.items
}

// VocationalSchools returns the current vocational school snapshot.
func (x *CatalogIndex) VocationalSchools() []domain.VocationalSchool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.vocational.items
}

// Careers returns the current career snapshot.
func (x *CatalogIndex) Careers() []domain.Career {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.careers.items
}

// CareerByID looks a career up in the current snapshot.
func (x *CatalogIndex) CareerByID(id string) (domain.Career, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	c, ok := x.careers.byID[id]
	return c, ok
}

// LastRefresh returns the oldest snapshot timestamp across the
// catalog collections, or the zero time when nothing loaded yet.
func (x *CatalogIndex) LastRefresh() time.Time {
	x.mu.RLock()
	defer x.mu.RUnlock()
	oldest := x.scholarships.updatedAt
	for _, t := range []time.Time{x.universities.updatedAt, x.vocational.updatedAt, x.careers.updatedAt} {
		if t.Before(oldest) {
			oldest = t
		}
	}
	return oldest
}

// Counts reports the size of each loaded collection.
func (x *CatalogIndex) Counts() map[string]int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return map[string]int{
		"scholarships":       len(x.scholarships.items),
		"universities":       len(x.universities.items),
		"vocational_schools": len(x.vocational.items),
		"careers":            len(x.careers.items),
	}
}
