package domain

import (
	"errors"
	"time"
)

// DiagnosisStep tracks progress through the career quiz.
type DiagnosisStep int

const (
	StepNotStarted DiagnosisStep = iota
	StepQuestions
	StepJoys
	StepFuture
	StepResult
)

// BinaryChoice is one of the two options of a binary question.
type BinaryChoice string

const (
	ChoiceA BinaryChoice = "A"
	ChoiceB BinaryChoice = "B"
)

var (
	ErrWrongStep     = errors.New("diagnosis: answer does not belong to the current step")
	ErrUnknownKey    = errors.New("diagnosis: unknown answer key")
	ErrInvalidChoice = errors.New("diagnosis: invalid choice")
	ErrIncomplete    = errors.New("diagnosis: current step is not complete")
	ErrFinished      = errors.New("diagnosis: session already finished")
)

// BinaryQuestion is a two-option quiz question.
type BinaryQuestion struct {
	ID       string    `json:"id"`
	Question Localized `json:"question"`
	OptionA  Localized `json:"optionA"`
	OptionB  Localized `json:"optionB"`
}

// JoyOption is one selectable recent experience.
type JoyOption struct {
	ID       string    `json:"id"`
	Text     Localized `json:"text"`
	Category string    `json:"category"`
}

// FutureOption is one choice within a future-plans group.
type FutureOption struct {
	ID   string    `json:"id"`
	Text Localized `json:"text"`
}

// BinaryQuestions is the fixed binary question list, in display order.
var BinaryQuestions = []BinaryQuestion{
	{
		ID:       "social",
		Question: Localized{EN: "Which is more like you?", KM: "មួយណាដូចអ្នកជាង?"},
		OptionA:  Localized{EN: "Comfortable speaking in front of people", KM: "មិនខ្លាចនិយាយមុខមនុស្សច្រើន"},
		OptionB:  Localized{EN: "Prefer focusing alone", KM: "ចូលចិត្តផ្តោតអារម្មណ៍ម្នាក់ឯង"},
	},
	{
		ID:       "people_vs_things",
		Question: Localized{EN: "Which sounds more fun?", KM: "មួយណាសប្បាយជាង?"},
		OptionA:  Localized{EN: "Helping people with their problems", KM: "ជួយមនុស្សដោះស្រាយបញ្ហា"},
		OptionB:  Localized{EN: "Building or fixing something", KM: "សាងសង់ ឬជួសជុលអ្វីមួយ"},
	},
	{
		ID:       "indoor_outdoor",
		Question: Localized{EN: "Which do you prefer?", KM: "អ្នកចូលចិត្តមួយណា?"},
		OptionA:  Localized{EN: "Working outdoors", KM: "ធ្វើការនៅក្រៅ"},
		OptionB:  Localized{EN: "Working with a computer", KM: "ធ្វើការជាមួយកុំព្យូទ័រ"},
	},
	{
		ID:       "plan_vs_flexible",
		Question: Localized{EN: "Which is easier for you?", KM: "មួយណាងាយស្រួលជាងសម្រាប់អ្នក?"},
		OptionA:  Localized{EN: "Following a fixed plan", KM: "ធ្វើតាមផែនការច្បាស់លាស់"},
		OptionB:  Localized{EN: "Figuring things out as you go", KM: "គិតស្វែងរកដំណោះស្រាយពេលធ្វើ"},
	},
	{
		ID:       "team_vs_solo",
		Question: Localized{EN: "When do you do your best?", KM: "ពេលណាអ្នកធ្វើបានល្អបំផុត?"},
		OptionA:  Localized{EN: "Working with a team", KM: "ធ្វើការជាមួយក្រុម"},
		OptionB:  Localized{EN: "Working at my own pace", KM: "ធ្វើការតាមល្បឿនខ្លួនឯង"},
	},
	{
		ID:       "teach_vs_do",
		Question: Localized{EN: "Which is more enjoyable?", KM: "មួយណារីករាយជាង?"},
		OptionA:  Localized{EN: "Teaching someone", KM: "បង្រៀនអ្នកដទៃ"},
		OptionB:  Localized{EN: "Doing it yourself", KM: "ធ្វើដោយខ្លួនឯង"},
	},
}

// JoyOptions is the fixed multi-select list of recent experiences.
var JoyOptions = []JoyOption{
	{ID: "thanks", Text: Localized{EN: "Someone thanked me", KM: "មាននរណាម្នាក់អរគុណខ្ញុំ"}, Category: "people"},
	{ID: "complete", Text: Localized{EN: "I finished something", KM: "ខ្ញុំបានបញ្ចប់អ្វីមួយ"}, Category: "achievement"},
	{ID: "score", Text: Localized{EN: "Good exam results", KM: "ពិន្ទុប្រឡងល្អ"}, Category: "achievement"},
	{ID: "learn", Text: Localized{EN: "Learned something new", KM: "រៀនអ្វីថ្មី"}, Category: "learning"},
	{ID: "help", Text: Localized{EN: "Helped someone", KM: "ជួយអ្នកដទៃ"}, Category: "people"},
	{ID: "create", Text: Localized{EN: "Created something", KM: "បង្កើតអ្វីមួយ"}, Category: "creative"},
}

// FutureGroups lists the future-plans groups in display order.
var FutureGroups = []string{"education", "location", "english"}

// FutureOptions maps each future-plans group to its choices.
var FutureOptions = map[string][]FutureOption{
	"education": {
		{ID: "university", Text: Localized{EN: "Go to university", KM: "ចូលរៀននៅសាកលវិទ្យាល័យ"}},
		{ID: "work_soon", Text: Localized{EN: "Start working soon", KM: "ចាប់ផ្តើមធ្វើការឆាប់ៗ"}},
		{ID: "not_sure", Text: Localized{EN: "Not sure yet", KM: "មិនទាន់ប្រាកដ"}},
	},
	"location": {
		{ID: "city", Text: Localized{EN: "Move to the city", KM: "ផ្លាស់ទៅទីក្រុង"}},
		{ID: "local", Text: Localized{EN: "Stay in my area", KM: "នៅក្នុងតំបន់ខ្ញុំ"}},
		{ID: "flexible", Text: Localized{EN: "Either is fine", KM: "ទាំងពីរបាន"}},
	},
	"english": {
		{ID: "good", Text: Localized{EN: "Good at English", KM: "ពូកែភាសាអង់គ្លេស"}},
		{ID: "ok", Text: Localized{EN: "Okay at English", KM: "អង់គ្លេសមធ្យម"}},
		{ID: "not_good", Text: Localized{EN: "Not confident", KM: "មិនសូវជឿជាក់"}},
	},
}

// Answers accumulates everything a user has answered so far.
type Answers struct {
	Binary map[string]BinaryChoice `json:"binary"`
	Joys   []string                `json:"joys"`
	Future map[string]string       `json:"future"`
}

// DiagnosisSession is one user's walk through the quiz. Methods are
// not safe for concurrent use; mutate through the session table's
// Update, which holds its lock across the call, and hand out Clone
// copies for reading.
type DiagnosisSession struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId,omitempty"`
	Step      DiagnosisStep    `json:"step"`
	Answers   Answers          `json:"answers"`
	Result    *DiagnosisResult `json:"result,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NewDiagnosisSession creates a session still on the start screen.
func NewDiagnosisSession(id, userID string, now time.Time) *DiagnosisSession {
	return &DiagnosisSession{
		ID:     id,
		UserID: userID,
		Step:   StepNotStarted,
		Answers: Answers{
			Binary: make(map[string]BinaryChoice),
			Future: make(map[string]string),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy whose answer maps are detached from the
// original, safe to read or encode while the original keeps changing.
func (s *DiagnosisSession) Clone() DiagnosisSession {
	out := *s
	out.Answers.Binary = make(map[string]BinaryChoice, len(s.Answers.Binary))
	for k, v := range s.Answers.Binary {
		out.Answers.Binary[k] = v
	}
	out.Answers.Future = make(map[string]string, len(s.Answers.Future))
	for k, v := range s.Answers.Future {
		out.Answers.Future[k] = v
	}
	out.Answers.Joys = append([]string(nil), s.Answers.Joys...)
	if s.Result != nil {
		r := *s.Result
		out.Result = &r
	}
	return out
}

// Start moves the session onto the binary questions. Starting an
// already started session is a no-op.
func (s *DiagnosisSession) Start(now time.Time) {
	if s.Step == StepNotStarted {
		s.Step = StepQuestions
		s.UpdatedAt = now
	}
}

// SetBinary records the answer to one binary question. Answers can
// be changed any time before the result is computed.
func (s *DiagnosisSession) SetBinary(key string, choice BinaryChoice, now time.Time) error {
	if s.Step == StepNotStarted || s.Step == StepResult {
		return ErrWrongStep
	}
	if choice != ChoiceA && choice != ChoiceB {
		return ErrInvalidChoice
	}
	if !knownBinaryKey(key) {
		return ErrUnknownKey
	}
	s.Answers.Binary[key] = choice
	s.UpdatedAt = now
	return nil
}

// SetJoys replaces the selected joy list. Unknown ids are rejected;
// duplicates collapse.
func (s *DiagnosisSession) SetJoys(ids []string, now time.Time) error {
	if s.Step == StepNotStarted || s.Step == StepResult {
		return ErrWrongStep
	}
	seen := make(map[string]bool, len(ids))
	var joys []string
	for _, id := range ids {
		if joyByID(id) == nil {
			return ErrUnknownKey
		}
		if !seen[id] {
			seen[id] = true
			joys = append(joys, id)
		}
	}
	s.Answers.Joys = joys
	s.UpdatedAt = now
	return nil
}

// SetFuture records one future-plans choice.
func (s *DiagnosisSession) SetFuture(group, optionID string, now time.Time) error {
	if s.Step == StepNotStarted || s.Step == StepResult {
		return ErrWrongStep
	}
	opts, ok := FutureOptions[group]
	if !ok {
		return ErrUnknownKey
	}
	for _, opt := range opts {
		if opt.ID == optionID {
			s.Answers.Future[group] = optionID
			s.UpdatedAt = now
			return nil
		}
	}
	return ErrInvalidChoice
}

// CanProceed reports whether the current step is complete enough to
// advance.
func (s *DiagnosisSession) CanProceed() bool {
	switch s.Step {
	case StepQuestions:
		for _, q := range BinaryQuestions {
			if _, ok := s.Answers.Binary[q.ID]; !ok {
				return false
			}
		}
		return true
	case StepJoys:
		return len(s.Answers.Joys) > 0
	case StepFuture:
		for _, group := range FutureGroups {
			if _, ok := s.Answers.Future[group]; !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Next advances to the following step, computing the result when the
// final step completes.
func (s *DiagnosisSession) Next(now time.Time) error {
	if s.Step == StepResult {
		return ErrFinished
	}
	if s.Step == StepNotStarted {
		s.Step = StepQuestions
		s.UpdatedAt = now
		return nil
	}
	if !s.CanProceed() {
		return ErrIncomplete
	}
	switch s.Step {
	case StepQuestions:
		s.Step = StepJoys
	case StepJoys:
		s.Step = StepFuture
	case StepFuture:
		result := BuildResult(s.Answers)
		s.Result = &result
		s.Step = StepResult
	}
	s.UpdatedAt = now
	return nil
}

// Reset wipes all answers and returns to the start screen.
func (s *DiagnosisSession) Reset(now time.Time) {
	s.Step = StepNotStarted
	s.Answers = Answers{
		Binary: make(map[string]BinaryChoice),
		Future: make(map[string]string),
	}
	s.Result = nil
	s.UpdatedAt = now
}

func knownBinaryKey(key string) bool {
	for _, q := range BinaryQuestions {
		if q.ID == key {
			return true
		}
	}
	return false
}

func joyByID(id string) *JoyOption {
	for i := range JoyOptions {
		if JoyOptions[i].ID == id {
			return &JoyOptions[i]
		}
	}
	return nil
}
