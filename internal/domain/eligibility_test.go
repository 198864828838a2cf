package domain

import "testing"

func TestEligibilityOutcome(t *testing.T) {
	tests := []struct {
		name    string
		answers [EligibilityQuestionCount]EligibilityAnswer
		want    EligibilityOutcome
	}{
		{"untouched", [3]EligibilityAnswer{}, OutcomeIncomplete},
		{"partially answered", [3]EligibilityAnswer{AnswerYes, AnswerUnset, AnswerYes}, OutcomeIncomplete},
		{"all yes", [3]EligibilityAnswer{AnswerYes, AnswerYes, AnswerYes}, OutcomeEligible},
		{"one no", [3]EligibilityAnswer{AnswerYes, AnswerNo, AnswerYes}, OutcomePartial},
		{"all no", [3]EligibilityAnswer{AnswerNo, AnswerNo, AnswerNo}, OutcomePartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := EligibilityCheck{Answers: tt.answers}
			if got := check.Outcome(); got != tt.want {
				t.Errorf("Outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEligibilitySetAnswer(t *testing.T) {
	var check EligibilityCheck

	check.SetAnswer(0, AnswerYes)
	if check.Answers[0] != AnswerYes {
		t.Fatal("answer not recorded")
	}

	// Same value toggles back to unset.
	check.SetAnswer(0, AnswerYes)
	if check.Answers[0] != AnswerUnset {
		t.Error("repeated answer should clear the question")
	}

	check.SetAnswer(0, AnswerYes)
	check.SetAnswer(0, AnswerNo)
	if check.Answers[0] != AnswerNo {
		t.Error("switching answers should overwrite")
	}

	check.SetAnswer(5, AnswerYes)
	check.SetAnswer(-1, AnswerYes)
	check.SetAnswer(1, "maybe")
	if check.Answers[1] != AnswerUnset {
		t.Error("invalid input must be ignored")
	}
}
