package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
)

type careerView struct {
	ID                     string                 `json:"id"`
	Name                   string                 `json:"name"`
	Description            string                 `json:"description"`
	Category               string                 `json:"category"`
	Skills                 []string               `json:"skills"`
	IncomeMin              int                    `json:"incomeMin"`
	IncomeMax              int                    `json:"incomeMax"`
	IncomeOpenEnded        bool                   `json:"incomeOpenEnded"`
	EducationLevel         string                 `json:"educationLevel"`
	EnglishRequired        string                 `json:"englishRequired"`
	SkillDifficulty        int                    `json:"skillDifficulty"`
	GrowthScore            int                    `json:"growthScore"`
	CambodiaAvailable      bool                   `json:"cambodiaAvailable"`
	InternationalAvailable bool                   `json:"internationalAvailable"`
	Flags                  domain.CareerFlags     `json:"filters"`
	Interests              domain.CareerInterests `json:"interests"`
}

func careerToView(c domain.Career, loc domain.Locale) careerView {
	skills := make([]string, len(c.Skills))
	for i, s := range c.Skills {
		skills[i] = s.Resolve(loc)
	}
	return careerView{
		ID:                     c.ID,
		Name:                   c.Name.Resolve(loc),
		Description:            c.Description.Resolve(loc),
		Category:               string(c.Category),
		Skills:                 skills,
		IncomeMin:              c.IncomeMin,
		IncomeMax:              c.IncomeMax,
		IncomeOpenEnded:        c.IncomeMax >= domain.MaxIncome,
		EducationLevel:         string(c.EducationLevel),
		EnglishRequired:        string(c.EnglishRequired),
		SkillDifficulty:        c.SkillDifficulty,
		GrowthScore:            c.GrowthScore,
		CambodiaAvailable:      c.CambodiaAvailable,
		InternationalAvailable: c.InternationalAvailable,
		Flags:                  c.Flags,
		Interests:              c.Interests,
	}
}

func careerCriteriaFrom(r *http.Request) domain.CareerCriteria {
	q := r.URL.Query()
	crit := domain.CareerCriteria{
		Category:       domain.CareerCategory(q.Get("category")),
		EducationLevel: domain.EducationLevel(q.Get("education")),
		MaxEnglish:     domain.EnglishLevel(q.Get("maxEnglish")),
		Interest:       q.Get("interest"),
	}
	if n, err := strconv.Atoi(q.Get("incomeAtLeast")); err == nil && n > 0 {
		crit.IncomeAtLeast = n
	}
	crit.HighDemand = q.Get("highDemand") == "1"
	crit.RemotePossible = q.Get("remotePossible") == "1"
	crit.GrowthIndustry = q.Get("growthIndustry") == "1"
	crit.VocationalPossible = q.Get("vocationalPossible") == "1"
	crit.CambodiaOnly = q.Get("cambodiaOnly") == "1"
	return crit
}

type careerListResponse struct {
	Items []careerView `json:"items"`
	Total int          `json:"total"`
}

// ListCareers serves the filtered career catalog.
func ListCareers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFrom(r, d)
		filtered := domain.FilterCareers(d.Index.Careers(), careerCriteriaFrom(r))

		items := make([]careerView, len(filtered))
		for i, c := range filtered {
			items[i] = careerToView(c, loc)
		}
		writeJSON(w, http.StatusOK, careerListResponse{Items: items, Total: len(items)})
	}
}

// GetCareer serves one career by id.
func GetCareer(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := d.Index.CareerByID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "career not found")
			return
		}
		writeJSON(w, http.StatusOK, careerToView(c, localeFrom(r, d)))
	}
}

type compareResponse struct {
	Items []careerView `json:"items"`
}

// CompareCareers serves a side-by-side view of selected careers. The
// selection rules match the client widget: at least two, at most
// three.
func CompareCareers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.Split(r.URL.Query().Get("ids"), ",")

		var selection domain.SelectionSet
		for _, id := range raw {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if selection.IsSelected(id) {
				continue
			}
			if !selection.Toggle(id) {
				writeError(w, http.StatusBadRequest, "at most 3 careers can be compared")
				return
			}
		}
		if !selection.CanCompare() {
			writeError(w, http.StatusBadRequest, "at least 2 careers are required to compare")
			return
		}

		loc := localeFrom(r, d)
		items := make([]careerView, 0, selection.Size())
		for _, id := range selection.IDs() {
			c, ok := d.Index.CareerByID(id)
			if !ok {
				writeError(w, http.StatusNotFound, "career not found: "+id)
				return
			}
			items = append(items, careerToView(c, loc))
		}
		writeJSON(w, http.StatusOK, compareResponse{Items: items})
	}
}
