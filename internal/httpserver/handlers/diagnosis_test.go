package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/index"
	"github.com/pathforward/doorhub/internal/logger"
)

func diagnosisDeps() deps.Deps {
	return deps.Deps{
		Logger:        logger.Nop(),
		TimeNow:       func() time.Time { return handlerNow },
		DefaultLocale: domain.LocaleEnglish,
		Index:         index.NewCatalogIndex(),
		Sessions:      index.NewSessionTable(),
	}
}

func diagnosisRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/diagnosis/questions", DiagnosisQuestions(d))
	r.Post("/api/diagnosis", CreateDiagnosis(d))
	r.Get("/api/diagnosis/{id}", GetDiagnosis(d))
	r.Post("/api/diagnosis/{id}/answers", SubmitAnswers(d))
	r.Post("/api/diagnosis/{id}/next", AdvanceDiagnosis(d))
	r.Post("/api/diagnosis/{id}/reset", ResetDiagnosis(d))
	return r
}

type sessionPayload struct {
	ID     string               `json:"id"`
	Step   domain.DiagnosisStep `json:"step"`
	Result *struct {
		TopType domain.PersonalityType `json:"topType"`
	} `json:"result"`
}

func TestDiagnosisQuestions(t *testing.T) {
	router := diagnosisRouter(diagnosisDeps())
	rec := doRequest(t, router, http.MethodGet, "/api/diagnosis/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody[questionsResponse](t, rec)
	if len(resp.Questions) != 6 {
		t.Errorf("got %d questions, want 6", len(resp.Questions))
	}
	if len(resp.Joys) != 6 {
		t.Errorf("got %d joys, want 6", len(resp.Joys))
	}
	if len(resp.Groups) != 3 {
		t.Errorf("got %d future groups, want 3", len(resp.Groups))
	}
}

func TestDiagnosisFullFlow(t *testing.T) {
	router := diagnosisRouter(diagnosisDeps())

	rec := doRequest(t, router, http.MethodPost, "/api/diagnosis", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	session := decodeBody[sessionPayload](t, rec)
	if session.Step != domain.StepQuestions {
		t.Fatalf("new session step = %q, want %q", session.Step, domain.StepQuestions)
	}
	base := "/api/diagnosis/" + session.ID

	// People-leaning answers across all steps.
	binary := `{"binary":{"social":"A","people_vs_things":"A","indoor_outdoor":"A",` +
		`"plan_vs_flexible":"A","team_vs_solo":"A","teach_vs_do":"A"}}`
	rec = doRequest(t, router, http.MethodPost, base+"/answers", binary)
	if rec.Code != http.StatusOK {
		t.Fatalf("binary answers status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	if got := decodeBody[sessionPayload](t, rec); got.Step != domain.StepJoys {
		t.Fatalf("step after questions = %q, want %q", got.Step, domain.StepJoys)
	}

	rec = doRequest(t, router, http.MethodPost, base+"/answers", `{"joys":["thanks","help"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("joys status = %d: %s", rec.Code, rec.Body.String())
	}
	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	if got := decodeBody[sessionPayload](t, rec); got.Step != domain.StepFuture {
		t.Fatalf("step after joys = %q, want %q", got.Step, domain.StepFuture)
	}

	future := `{"future":{"education":"university","location":"city","english":"ok"}}`
	rec = doRequest(t, router, http.MethodPost, base+"/answers", future)
	if rec.Code != http.StatusOK {
		t.Fatalf("future status = %d: %s", rec.Code, rec.Body.String())
	}
	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	final := decodeBody[sessionPayload](t, rec)
	if final.Step != domain.StepResult {
		t.Fatalf("final step = %q, want %q", final.Step, domain.StepResult)
	}
	if final.Result == nil || final.Result.TopType != domain.TypePeople {
		t.Fatalf("result = %+v, want topType people", final.Result)
	}

	// Reset brings it back to the start screen.
	rec = doRequest(t, router, http.MethodPost, base+"/reset", "")
	if got := decodeBody[sessionPayload](t, rec); got.Step != domain.StepNotStarted {
		t.Errorf("step after reset = %q, want %q", got.Step, domain.StepNotStarted)
	}
}

func TestDiagnosisCannotSkipSteps(t *testing.T) {
	router := diagnosisRouter(diagnosisDeps())

	rec := doRequest(t, router, http.MethodPost, "/api/diagnosis", "")
	session := decodeBody[sessionPayload](t, rec)
	base := "/api/diagnosis/" + session.ID

	// No answers yet: advancing past the questions step must conflict.
	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("next without answers status = %d, want 409", rec.Code)
	}

	// Complete the questions, then try to skip past an empty joy step.
	binary := `{"binary":{"social":"A","people_vs_things":"A","indoor_outdoor":"A",` +
		`"plan_vs_flexible":"A","team_vs_solo":"A","teach_vs_do":"A"}}`
	doRequest(t, router, http.MethodPost, base+"/answers", binary)
	doRequest(t, router, http.MethodPost, base+"/next", "")

	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("next without joys status = %d, want 409", rec.Code)
	}
}

func TestDiagnosisValidation(t *testing.T) {
	router := diagnosisRouter(diagnosisDeps())

	rec := doRequest(t, router, http.MethodPost, "/api/diagnosis", "")
	session := decodeBody[sessionPayload](t, rec)
	base := "/api/diagnosis/" + session.ID

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown question key", `{"binary":{"favorite_color":"A"}}`, http.StatusBadRequest},
		{"invalid choice", `{"binary":{"social":"C"}}`, http.StatusBadRequest},
		{"malformed json", `{"binary":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, base+"/answers", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	rec = doRequest(t, router, http.MethodGet, "/api/diagnosis/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}
}

func TestDiagnosisConcurrentRequestsOneSession(t *testing.T) {
	router := diagnosisRouter(diagnosisDeps())

	rec := doRequest(t, router, http.MethodPost, "/api/diagnosis", "")
	base := "/api/diagnosis/" + decodeBody[sessionPayload](t, rec).ID

	// Double-clicks and retries land parallel requests on one session;
	// answer writes must never tear the state another request encodes.
	questions := []string{"social", "people_vs_things", "indoor_outdoor",
		"plan_vs_flexible", "team_vs_solo", "teach_vs_do"}
	codes := make([]int, 16)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var req *http.Request
			if i%4 == 0 {
				req = httptest.NewRequest(http.MethodGet, base, nil)
			} else {
				body := fmt.Sprintf(`{"binary":{%q:"A"}}`, questions[i%len(questions)])
				req = httptest.NewRequest(http.MethodPost, base+"/answers", strings.NewReader(body))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusOK {
			t.Errorf("request %d status = %d, want 200", i, code)
		}
	}

	// The session stays coherent: finish the questions and advance.
	for _, q := range questions {
		doRequest(t, router, http.MethodPost, base+"/answers",
			fmt.Sprintf(`{"binary":{%q:"A"}}`, q))
	}
	rec = doRequest(t, router, http.MethodPost, base+"/next", "")
	if got := decodeBody[sessionPayload](t, rec); got.Step != domain.StepJoys {
		t.Fatalf("step after concurrent answers = %q, want %q", got.Step, domain.StepJoys)
	}
}

func TestDiagnosisSessionsAreIsolated(t *testing.T) {
	d := diagnosisDeps()
	router := diagnosisRouter(d)

	var ids []string
	for i := 0; i < 3; i++ {
		rec := doRequest(t, router, http.MethodPost, "/api/diagnosis", "")
		ids = append(ids, decodeBody[sessionPayload](t, rec).ID)
	}
	if d.Sessions.Count() != 3 {
		t.Fatalf("session count = %d, want 3", d.Sessions.Count())
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}
