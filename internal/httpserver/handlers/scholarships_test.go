package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
)

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func deadlineIn(days int) *time.Time {
	t := handlerNow.Add(time.Duration(days) * 24 * time.Hour)
	return &t
}

func seededDeps() deps.Deps {
	idx := index.NewCatalogIndex()
	idx.SetScholarships([]domain.Scholarship{
		{
			ID:       "mext",
			Name:     domain.Localized{EN: "MEXT Scholarship Japan", KM: "អាហារូបករណ៍ MEXT ជប៉ុន"},
			Provider: domain.Localized{EN: "Government of Japan"},
			Type:     domain.ScholarshipFull,
			Deadline: deadlineIn(5),
			Active:   true,
		},
		{
			ID:       "rupp-merit",
			Name:     domain.Localized{EN: "RUPP Merit Award", KM: "រង្វាន់និស្សិតឆ្នើម"},
			Provider: domain.Localized{EN: "Royal University of Phnom Penh"},
			Type:     domain.ScholarshipPartial,
			Deadline: deadlineIn(20),
			Active:   true,
		},
		{
			ID:       "ngo-grant",
			Name:     domain.Localized{EN: "Community Grant"},
			Provider: domain.Localized{EN: "Local NGO"},
			Type:     domain.ScholarshipGrant,
			Active:   true, // rolling deadline
		},
		{
			ID:       "closed-award",
			Name:     domain.Localized{EN: "Closed Award"},
			Provider: domain.Localized{EN: "Past Provider"},
			Type:     domain.ScholarshipFull,
			Deadline: deadlineIn(-3),
			Active:   true,
		},
	}, handlerNow)

	return deps.Deps{
		Logger:        logger.Nop(),
		TimeNow:       func() time.Time { return handlerNow },
		DefaultLocale: domain.LocaleEnglish,
		Index:         idx,
		Sessions:      index.NewSessionTable(),
	}
}

// testRouter mounts the handlers under the same paths the route
// registrars use, so URL params resolve the same way.
func testRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/scholarships", ListScholarships(d))
	r.Get("/api/scholarships/{id}", GetScholarship(d))
	r.Post("/api/scholarships/{id}/eligibility", CheckEligibility(d))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestListScholarshipsDefaultOrder(t *testing.T) {
	router := testRouter(seededDeps())
	rec := doRequest(t, router, http.MethodGet, "/api/scholarships", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody[listResponse[scholarshipView]](t, rec)

	// Open entries first by nearest deadline, rolling deadlines after,
	// closed entries last.
	want := []string{"mext", "rupp-merit", "ngo-grant", "closed-award"}
	if resp.Total != len(want) {
		t.Fatalf("total = %d, want %d", resp.Total, len(want))
	}
	for i, id := range want {
		if resp.Items[i].ID != id {
			t.Errorf("items[%d] = %q, want %q", i, resp.Items[i].ID, id)
		}
	}

	if resp.Items[0].DaysLeft == nil || *resp.Items[0].DaysLeft != 5 {
		t.Errorf("mext daysLeft = %v, want 5", resp.Items[0].DaysLeft)
	}
	if !resp.Items[3].Closed {
		t.Error("closed-award should be closed")
	}
	if resp.Items[3].DaysLeft != nil {
		t.Error("closed scholarship should not report daysLeft")
	}
	if resp.Items[0].Destination != domain.DestinationOverseas {
		t.Errorf("mext destination = %q, want overseas", resp.Items[0].Destination)
	}
	if resp.Items[1].Destination != domain.DestinationDomestic {
		t.Errorf("rupp destination = %q, want domestic", resp.Items[1].Destination)
	}
}

func TestListScholarshipsFacetsIgnoreFilters(t *testing.T) {
	router := testRouter(seededDeps())
	rec := doRequest(t, router, http.MethodGet, "/api/scholarships?type=grant", "")

	resp := decodeBody[listResponse[scholarshipView]](t, rec)
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1 (grant filter)", resp.Total)
	}
	if resp.Items[0].ID != "ngo-grant" {
		t.Fatalf("items[0] = %q, want ngo-grant", resp.Items[0].ID)
	}

	// Facet counts cover the whole collection, not the filtered list.
	var full int
	for _, fc := range resp.Facets["type"] {
		if fc.Value == string(domain.ScholarshipFull) {
			full = fc.Count
		}
	}
	if full != 2 {
		t.Errorf("type=full facet count = %d, want 2", full)
	}
}

func TestListScholarshipsLocale(t *testing.T) {
	router := testRouter(seededDeps())
	rec := doRequest(t, router, http.MethodGet, "/api/scholarships?q=mext&lang=km", "")

	resp := decodeBody[listResponse[scholarshipView]](t, rec)
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if want := "អាហារូបករណ៍ MEXT ជប៉ុន"; resp.Items[0].Name != want {
		t.Errorf("name = %q, want %q", resp.Items[0].Name, want)
	}
}

func TestGetScholarship(t *testing.T) {
	router := testRouter(seededDeps())

	rec := doRequest(t, router, http.MethodGet, "/api/scholarships/mext", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	view := decodeBody[scholarshipView](t, rec)
	if view.ID != "mext" || view.Name != "MEXT Scholarship Japan" {
		t.Errorf("unexpected view: %+v", view)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/scholarships/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCheckEligibility(t *testing.T) {
	router := testRouter(seededDeps())

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantResult domain.EligibilityOutcome
	}{
		{
			name:       "all yes is eligible",
			target:     "/api/scholarships/mext/eligibility",
			body:       `{"answers":["yes","yes","yes"]}`,
			wantStatus: http.StatusOK,
			wantResult: domain.OutcomeEligible,
		},
		{
			name:       "a no makes it partial",
			target:     "/api/scholarships/mext/eligibility",
			body:       `{"answers":["yes","no","yes"]}`,
			wantStatus: http.StatusOK,
			wantResult: domain.OutcomePartial,
		},
		{
			name:       "unanswered question is incomplete",
			target:     "/api/scholarships/mext/eligibility",
			body:       `{"answers":["yes","","yes"]}`,
			wantStatus: http.StatusOK,
			wantResult: domain.OutcomeIncomplete,
		},
		{
			name:       "wrong answer count",
			target:     "/api/scholarships/mext/eligibility",
			body:       `{"answers":["yes","yes"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid answer value",
			target:     "/api/scholarships/mext/eligibility",
			body:       `{"answers":["yes","maybe","yes"]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown scholarship",
			target:     "/api/scholarships/nope/eligibility",
			body:       `{"answers":["yes","yes","yes"]}`,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeBody[eligibilityResponse](t, rec)
			if resp.Outcome != tt.wantResult {
				t.Errorf("outcome = %q, want %q", resp.Outcome, tt.wantResult)
			}
		})
	}
}
