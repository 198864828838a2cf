package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type universityView struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	Description      string   `json:"description,omitempty"`
	TuitionInfo      string   `json:"tuitionInfo,omitempty"`
	Type             string   `json:"type"`
	Website          string   `json:"website,omitempty"`
	Programs         []string `json:"programs"`
	Fields           []string `json:"fields"`
	ScholarshipCount int      `json:"scholarshipCount"`
}

func universityToView(u domain.University, loc domain.Locale) universityView {
	return universityView{
		ID:               u.ID,
		Name:             u.Name.Resolve(loc),
		Location:         u.Location.Resolve(loc),
		Description:      u.Description.Resolve(loc),
		TuitionInfo:      u.TuitionInfo.Resolve(loc),
		Type:             string(u.Type),
		Website:          u.Website,
		Programs:         u.Programs.Resolve(loc),
		Fields:           domain.ProgramTags(domain.UniversityFieldRules, u.Programs.EN),
		ScholarshipCount: u.ScholarshipCount,
	}
}

// ListUniversities serves the filtered university listing.
func ListUniversities(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFrom(r, d)
		now := d.Now()
		crit := domain.DecodeCriteria(r.URL.Query())

		all := d.Index.Universities()
		filtered := domain.Filter(all, crit, domain.UniversityFacets, loc, now)

		items := make([]universityView, len(filtered))
		for i, u := range filtered {
			items[i] = universityToView(u, loc)
		}
		writeJSON(w, http.StatusOK, listResponse[universityView]{
			Items:  items,
			Total:  len(items),
			Facets: domain.FacetCounts(all, domain.UniversityFacets, loc, now),
		})
	}
}

// GetUniversity serves one university by id.
func GetUniversity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		for _, u := range d.Index.Universities() {
			if u.ID == id {
				writeJSON(w, http.StatusOK, universityToView(u, localeFrom(r, d)))
				return
			}
		}
		writeError(w, http.StatusNotFound, "university not found")
	}
}
