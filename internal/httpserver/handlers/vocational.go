package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type vocationalView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description,omitempty"`
	Programs    []string `json:"programs"`
	Fields      []string `json:"fields"`
	Website     string   `json:"website,omitempty"`
	Contact     string   `json:"contact,omitempty"`
}

func vocationalToView(v domain.VocationalSchool, loc domain.Locale) vocationalView {
	return vocationalView{
		ID:          v.ID,
		Name:        v.Name.Resolve(loc),
		Location:    v.Location.Resolve(loc),
		Description: v.Description.Resolve(loc),
		Programs:    v.Programs.Resolve(loc),
		Fields:      domain.ProgramTags(domain.VocationalFieldRules, v.Programs.EN),
		Website:     v.Website,
		Contact:     v.Contact,
	}
}

// ListVocationalSchools serves the filtered vocational school listing.
func ListVocationalSchools(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFrom(r, d)
		now := d.Now()
		crit := domain.DecodeCriteria(r.URL.Query())

		all := d.Index.VocationalSchools()
		filtered := domain.Filter(all, crit, domain.VocationalFacets, loc, now)

		items := make([]vocationalView, len(filtered))
		for i, v := range filtered {
			items[i] = vocationalToView(v, loc)
		}
		writeJSON(w, http.StatusOK, listResponse[vocationalView]{
			Items:  items,
			Total:  len(items),
			Facets: domain.FacetCounts(all, domain.VocationalFacets, loc, now),
		})
	}
}

// GetVocationalSchool serves one vocational school by id.
func GetVocationalSchool(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		for _, v := range d.Index.VocationalSchools() {
			if v.ID == id {
				writeJSON(w, http.StatusOK, vocationalToView(v, localeFrom(r, d)))
				return
			}
		}
		writeError(w, http.StatusNotFound, "vocational school not found")
	}
}
