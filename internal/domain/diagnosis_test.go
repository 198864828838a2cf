package domain

import (
	"errors"
	"testing"
	"time"
)

var diagNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func completeSession(t *testing.T) *DiagnosisSession {
	t.Helper()
	s := NewDiagnosisSession("sess-1", "user-1", diagNow)
	s.Start(diagNow)
	for _, q := range BinaryQuestions {
		if err := s.SetBinary(q.ID, ChoiceA, diagNow); err != nil {
			t.Fatalf("SetBinary(%s): %v", q.ID, err)
		}
	}
	if err := s.Next(diagNow); err != nil {
		t.Fatalf("Next after questions: %v", err)
	}
	if err := s.SetJoys([]string{"thanks", "help"}, diagNow); err != nil {
		t.Fatalf("SetJoys: %v", err)
	}
	if err := s.Next(diagNow); err != nil {
		t.Fatalf("Next after joys: %v", err)
	}
	for _, group := range FutureGroups {
		if err := s.SetFuture(group, FutureOptions[group][0].ID, diagNow); err != nil {
			t.Fatalf("SetFuture(%s): %v", group, err)
		}
	}
	return s
}

func TestDiagnosisHappyPath(t *testing.T) {
	s := completeSession(t)

	if err := s.Next(diagNow); err != nil {
		t.Fatalf("final Next: %v", err)
	}
	if s.Step != StepResult {
		t.Fatalf("Step = %d, want StepResult", s.Step)
	}
	if s.Result == nil {
		t.Fatal("Result is nil after finishing")
	}
	if s.Result.TopType != TypePeople {
		t.Errorf("TopType = %q, want people for all-A answers", s.Result.TopType)
	}
}

func TestDiagnosisCannotSkipSteps(t *testing.T) {
	s := NewDiagnosisSession("sess-2", "", diagNow)
	s.Start(diagNow)

	// Questions incomplete: no advance.
	if err := s.Next(diagNow); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Next with unanswered questions: err = %v, want ErrIncomplete", err)
	}

	for _, q := range BinaryQuestions {
		_ = s.SetBinary(q.ID, ChoiceB, diagNow)
	}
	if err := s.Next(diagNow); err != nil {
		t.Fatalf("Next: %v", err)
	}

	// Empty joy selection blocks the next step.
	if err := s.Next(diagNow); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Next with no joys: err = %v, want ErrIncomplete", err)
	}
}

func TestDiagnosisValidation(t *testing.T) {
	s := NewDiagnosisSession("sess-3", "", diagNow)

	if err := s.SetBinary("social", ChoiceA, diagNow); !errors.Is(err, ErrWrongStep) {
		t.Errorf("answering before start: err = %v, want ErrWrongStep", err)
	}

	s.Start(diagNow)
	if err := s.SetBinary("social", "C", diagNow); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("choice C: err = %v, want ErrInvalidChoice", err)
	}
	if err := s.SetBinary("favorite_color", ChoiceA, diagNow); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown key: err = %v, want ErrUnknownKey", err)
	}
	if err := s.SetJoys([]string{"nonexistent"}, diagNow); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown joy: err = %v, want ErrUnknownKey", err)
	}
	if err := s.SetFuture("education", "time_travel", diagNow); !errors.Is(err, ErrInvalidChoice) {
		t.Errorf("unknown future option: err = %v, want ErrInvalidChoice", err)
	}
	if err := s.SetFuture("weather", "sunny", diagNow); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("unknown future group: err = %v, want ErrUnknownKey", err)
	}
}

func TestDiagnosisDuplicateJoysCollapse(t *testing.T) {
	s := NewDiagnosisSession("sess-4", "", diagNow)
	s.Start(diagNow)

	if err := s.SetJoys([]string{"learn", "learn", "create"}, diagNow); err != nil {
		t.Fatalf("SetJoys: %v", err)
	}
	if len(s.Answers.Joys) != 2 {
		t.Errorf("got %d joys, want duplicates collapsed to 2", len(s.Answers.Joys))
	}
}

func TestDiagnosisReset(t *testing.T) {
	s := completeSession(t)
	if err := s.Next(diagNow); err != nil {
		t.Fatalf("Next: %v", err)
	}

	if err := s.Next(diagNow); !errors.Is(err, ErrFinished) {
		t.Errorf("Next on finished session: err = %v, want ErrFinished", err)
	}

	s.Reset(diagNow)
	if s.Step != StepNotStarted {
		t.Errorf("Step = %d after Reset, want StepNotStarted", s.Step)
	}
	if s.Result != nil || len(s.Answers.Binary) != 0 || len(s.Answers.Joys) != 0 {
		t.Error("Reset did not wipe answers")
	}
}
