package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type scholarshipView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	Description    string `json:"description,omitempty"`
	Coverage       string `json:"coverage,omitempty"`
	Eligibility    string `json:"eligibility,omitempty"`
	Type           string `json:"type"`
	ApplicationURL string `json:"applicationUrl,omitempty"`
	Deadline       string `json:"deadline,omitempty"`
	DaysLeft       *int   `json:"daysLeft,omitempty"`
	Closed         bool   `json:"closed"`
	Destination    string `json:"destination"`
}

func scholarshipToView(s domain.Scholarship, loc domain.Locale, now time.Time) scholarshipView {
	v := scholarshipView{
		ID:             s.ID,
		Name:           s.Name.Resolve(loc),
		Provider:       s.Provider.Resolve(loc),
		Description:    s.Description.Resolve(loc),
		Coverage:       s.Coverage.Resolve(loc),
		Eligibility:    s.Eligibility.Resolve(loc),
		Type:           string(s.Type),
		ApplicationURL: s.ApplicationURL,
		Closed:         domain.IsClosed(s.Deadline, now),
		Destination:    domain.ClassifyDestination(s),
	}
	if s.Deadline != nil {
		v.Deadline = s.Deadline.Format(time.RFC3339)
		if !v.Closed {
			days := domain.DaysUntil(*s.Deadline, now)
			v.DaysLeft = &days
		}
	}
	return v
}

type listResponse[T any] struct {
	Items  []T                            `json:"items"`
	Total  int                            `json:"total"`
	Facets map[string][]domain.FacetCount `json:"facets"`
}

// ListScholarships serves the filtered scholarship listing. Facet
// counts always cover the whole collection so the sidebar numbers
// stay put while filters narrow the list.
func ListScholarships(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFrom(r, d)
		now := d.Now()
		crit := domain.DecodeCriteria(r.URL.Query())

		all := d.Index.Scholarships()
		filtered := domain.Filter(all, crit, domain.ScholarshipFacets, loc, now)

		items := make([]scholarshipView, len(filtered))
		for i, s := range filtered {
			items[i] = scholarshipToView(s, loc, now)
		}
		writeJSON(w, http.StatusOK, listResponse[scholarshipView]{
			Items:  items,
			Total:  len(items),
			Facets: domain.FacetCounts(all, domain.ScholarshipFacets, loc, now),
		})
	}
}

// GetScholarship serves one scholarship by id.
func GetScholarship(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := d.Index.ScholarshipByID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "scholarship not found")
			return
		}
		writeJSON(w, http.StatusOK, scholarshipToView(s, localeFrom(r, d), d.Now()))
	}
}

type eligibilityRequest struct {
	Answers []domain.EligibilityAnswer `json:"answers"`
}

type eligibilityResponse struct {
	Outcome domain.EligibilityOutcome `json:"outcome"`
}

// CheckEligibility evaluates a three-question self-check for a
// scholarship. The check is stateless; nothing is stored.
func CheckEligibility(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := d.Index.ScholarshipByID(chi.URLParam(r, "id")); !ok {
			writeError(w, http.StatusNotFound, "scholarship not found")
			return
		}

		var req eligibilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Answers) != domain.EligibilityQuestionCount {
			writeError(w, http.StatusBadRequest, "expected exactly 3 answers")
			return
		}

		var check domain.EligibilityCheck
		for i, a := range req.Answers {
			if a != domain.AnswerYes && a != domain.AnswerNo && a != domain.AnswerUnset {
				writeError(w, http.StatusBadRequest, "answers must be yes, no or empty")
				return
			}
			check.Answers[i] = a
		}
		writeJSON(w, http.StatusOK, eligibilityResponse{Outcome: check.Outcome()})
	}
}
