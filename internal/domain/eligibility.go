package domain

// EligibilityAnswer is the state of one yes/no eligibility question.
type EligibilityAnswer string

const (
	AnswerUnset EligibilityAnswer = ""
	AnswerYes   EligibilityAnswer = "yes"
	AnswerNo    EligibilityAnswer = "no"
)

// EligibilityOutcome summarizes a completed check.
type EligibilityOutcome string

const (
	// OutcomeIncomplete means not every question is answered yet.
	OutcomeIncomplete EligibilityOutcome = "incomplete"
	// OutcomeEligible means every question was answered yes.
	OutcomeEligible EligibilityOutcome = "eligible"
	// OutcomePartial means every question is answered but at least
	// one is a no.
	OutcomePartial EligibilityOutcome = "partial"
)

// EligibilityQuestionCount fixes the check at three questions.
const EligibilityQuestionCount = 3

// EligibilityCheck is a three-question self-check against a
// scholarship's requirements.
type EligibilityCheck struct {
	Answers [EligibilityQuestionCount]EligibilityAnswer `json:"answers"`
}

// SetAnswer records the answer to question i. Answering with the
// value already recorded clears it back to unset. Out-of-range
// indexes and unknown values are ignored.
func (e *EligibilityCheck) SetAnswer(i int, a EligibilityAnswer) {
	if i < 0 || i >= EligibilityQuestionCount {
		return
	}
	if a != AnswerYes && a != AnswerNo {
		return
	}
	if e.Answers[i] == a {
		e.Answers[i] = AnswerUnset
		return
	}
	e.Answers[i] = a
}

// Outcome evaluates the check. No verdict is given until every
// question is answered.
func (e *EligibilityCheck) Outcome() EligibilityOutcome {
	allYes := true
	for _, a := range e.Answers {
		switch a {
		case AnswerUnset:
			return OutcomeIncomplete
		case AnswerNo:
			allYes = false
		}
	}
	if allYes {
		return OutcomeEligible
	}
	return OutcomePartial
}
