package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pathforward/doorhub/internal/domain"
	"github.com/pathforward/doorhub/internal/httpserver/deps"
	"github.com/pathforward/doorhub/internal/httpserver/mw"
	"github.com/pathforward/doorhub/internal/logger"
)

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

type questionsResponse struct {
	Questions []domain.BinaryQuestion          `json:"questions"`
	Joys      []domain.JoyOption               `json:"joys"`
	Future    map[string][]domain.FutureOption `json:"future"`
	Groups    []string                         `json:"futureGroups"`
}

// DiagnosisQuestions serves the static quiz content. The client
// renders from this instead of hardcoding the question set.
func DiagnosisQuestions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, questionsResponse{
			Questions: domain.BinaryQuestions,
			Joys:      domain.JoyOptions,
			Future:    domain.FutureOptions,
			Groups:    domain.FutureGroups,
		})
	}
}

// CreateDiagnosis starts a new quiz session. A bearer token, when
// present and valid, ties the eventual result to the user.
func CreateDiagnosis(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID string
		if user, ok := mw.UserFrom(r.Context()); ok {
			userID = user.ID
		}
		session := domain.NewDiagnosisSession(newSessionID(), userID, d.Now())
		session.Start(d.Now())
		snapshot := session.Clone()
		d.Sessions.Put(session)
		writeJSON(w, http.StatusCreated, snapshot)
	}
}

// GetDiagnosis returns the current state of a session.
func GetDiagnosis(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := d.Sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

type answersRequest struct {
	Binary map[string]domain.BinaryChoice `json:"binary,omitempty"`
	Joys   *[]string                      `json:"joys,omitempty"`
	Future map[string]string              `json:"future,omitempty"`
}

// SubmitAnswers applies a partial answer update to a session. The
// client sends whatever the user just touched.
func SubmitAnswers(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		now := d.Now()
		snapshot, ok, err := d.Sessions.Update(chi.URLParam(r, "id"), func(s *domain.DiagnosisSession) error {
			for key, choice := range req.Binary {
				if err := s.SetBinary(key, choice, now); err != nil {
					return err
				}
			}
			if req.Joys != nil {
				if err := s.SetJoys(*req.Joys, now); err != nil {
					return err
				}
			}
			for group, option := range req.Future {
				if err := s.SetFuture(group, option, now); err != nil {
					return err
				}
			}
			return nil
		})
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if err != nil {
			writeDiagnosisError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// AdvanceDiagnosis moves a session to its next step. Completing the
// final step computes the result and, for signed-in users, persists
// it best effort.
func AdvanceDiagnosis(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := d.Now()
		snapshot, ok, err := d.Sessions.Update(chi.URLParam(r, "id"), func(s *domain.DiagnosisSession) error {
			return s.Next(now)
		})
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		if err != nil {
			writeDiagnosisError(w, err)
			return
		}

		if snapshot.Step == domain.StepResult && snapshot.UserID != "" {
			if err := d.Store.SaveDiagnosisResult(r.Context(), snapshot.UserID, *snapshot.Result); err != nil {
				d.Logger.Warn("failed to persist diagnosis result",
					logger.String("user_id", snapshot.UserID),
					logger.Error(err))
			}
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// ResetDiagnosis wipes a session back to its start screen.
func ResetDiagnosis(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := d.Now()
		snapshot, ok, _ := d.Sessions.Update(chi.URLParam(r, "id"), func(s *domain.DiagnosisSession) error {
			s.Reset(now)
			return nil
		})
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

// StoredDiagnosisResult returns the signed-in user's last persisted
// quiz result.
func StoredDiagnosisResult(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := mw.UserFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		result, err := d.Store.DiagnosisResult(r.Context(), user.ID)
		if err != nil {
			d.Logger.Error("failed to load diagnosis result", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load result")
			return
		}
		if result == nil {
			writeError(w, http.StatusNotFound, "no stored result")
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// DeleteStoredDiagnosisResult removes the signed-in user's persisted
// quiz result.
func DeleteStoredDiagnosisResult(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := mw.UserFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if err := d.Store.DeleteDiagnosisResult(r.Context(), user.ID); err != nil {
			d.Logger.Error("failed to delete diagnosis result", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to delete result")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeDiagnosisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownKey),
		errors.Is(err, domain.ErrInvalidChoice):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrWrongStep),
		errors.Is(err, domain.ErrIncomplete),
		errors.Is(err, domain.ErrFinished):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
