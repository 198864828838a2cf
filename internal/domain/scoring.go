package domain

// PersonalityType is the outcome bucket of the career quiz.
type PersonalityType string

const (
	TypePeople   PersonalityType = "people"
	TypeTech     PersonalityType = "tech"
	TypeCreative PersonalityType = "creative"
)

// Scores holds the accumulated points per personality type.
type Scores struct {
	People   int `json:"people"`
	Tech     int `json:"tech"`
	Creative int `json:"creative"`
}

// binaryWeight is the contribution of one binary answer.
type binaryWeight struct {
	Key    string
	Choice BinaryChoice
	Type   PersonalityType
	Points int
}

// binaryWeights maps binary answers to personality points. Every key
// here must exist in BinaryQuestions; SetBinary rejects anything else.
var binaryWeights = []binaryWeight{
	{Key: "social", Choice: ChoiceA, Type: TypePeople, Points: 2},
	{Key: "people_vs_things", Choice: ChoiceA, Type: TypePeople, Points: 3},
	{Key: "people_vs_things", Choice: ChoiceB, Type: TypeTech, Points: 2},
	{Key: "indoor_outdoor", Choice: ChoiceB, Type: TypeTech, Points: 1},
	{Key: "plan_vs_flexible", Choice: ChoiceB, Type: TypeCreative, Points: 1},
	{Key: "team_vs_solo", Choice: ChoiceA, Type: TypePeople, Points: 2},
	{Key: "teach_vs_do", Choice: ChoiceA, Type: TypePeople, Points: 2},
}

// joyWeights maps joy categories to personality points.
var joyWeights = map[string]struct {
	Type   PersonalityType
	Points int
}{
	"people":      {Type: TypePeople, Points: 2},
	"achievement": {Type: TypeTech, Points: 1},
	"learning":    {Type: TypeTech, Points: 1},
	"creative":    {Type: TypeCreative, Points: 2},
}

// ScoreAnswers tallies personality points from the accumulated
// answers. Future-plans answers carry no weight.
func ScoreAnswers(a Answers) Scores {
	var s Scores
	add := func(t PersonalityType, pts int) {
		switch t {
		case TypePeople:
			s.People += pts
		case TypeTech:
			s.Tech += pts
		case TypeCreative:
			s.Creative += pts
		}
	}
	for _, w := range binaryWeights {
		if a.Binary[w.Key] == w.Choice {
			add(w.Type, w.Points)
		}
	}
	for _, id := range a.Joys {
		joy := joyByID(id)
		if joy == nil {
			continue
		}
		if w, ok := joyWeights[joy.Category]; ok {
			add(w.Type, w.Points)
		}
	}
	return s
}

// TopCategory picks the winning personality type. Ties break in the
// order people, tech, creative; an all-zero score defaults to people.
func TopCategory(s Scores) PersonalityType {
	top := TypePeople
	best := s.People
	if s.Tech > best {
		top, best = TypeTech, s.Tech
	}
	if s.Creative > best {
		top = TypeCreative
	}
	return top
}

// Strength is one strength statement shown on the result screen.
type Strength struct {
	Text Localized `json:"text"`
}

// CareerSuggestion is one suggested career on the result screen.
type CareerSuggestion struct {
	Name        Localized `json:"name"`
	Description Localized `json:"description"`
}

// Senpai is a role-model story shown with the result.
type Senpai struct {
	Name  Localized `json:"name"`
	Job   Localized `json:"job"`
	Story Localized `json:"story"`
	Quote Localized `json:"quote"`
}

// DiagnosisResult is the full quiz outcome.
type DiagnosisResult struct {
	TopType   PersonalityType    `json:"topType"`
	Scores    Scores             `json:"scores"`
	Label     Localized          `json:"label"`
	Strengths []Strength         `json:"strengths"`
	Careers   []CareerSuggestion `json:"careers"`
	Senpai    Senpai             `json:"senpai"`
}

var typeLabels = map[PersonalityType]Localized{
	TypePeople:   {EN: "People Person", KM: "អ្នកស្រឡាញ់មនុស្ស"},
	TypeTech:     {EN: "Problem Solver", KM: "អ្នកដោះស្រាយបញ្ហា"},
	TypeCreative: {EN: "Creative Mind", KM: "គំនិតច្នៃប្រឌិត"},
}

var strengthsByType = map[PersonalityType][]Strength{
	TypePeople: {
		{Text: Localized{EN: "You naturally notice how others feel", KM: "អ្នកដឹងអារម្មណ៍អ្នកដទៃជាធម្មជាតិ"}},
		{Text: Localized{EN: "People feel at ease around you", KM: "មនុស្សមានអារម្មណ៍ស្រួលនៅជិតអ្នក"}},
		{Text: Localized{EN: "You shine in team environments", KM: "អ្នកភ្លឺចាំងនៅក្នុងបរិយាកាសក្រុម"}},
	},
	TypeTech: {
		{Text: Localized{EN: "You can focus and keep going", KM: "អ្នកអាចផ្តោតអារម្មណ៍ និងបន្តទៅមុខ"}},
		{Text: Localized{EN: "You find and fix problems well", KM: "អ្នកពូកែស្វែងរក និងដោះស្រាយបញ្ហា"}},
		{Text: Localized{EN: "You work well independently", KM: "អ្នកធ្វើការបានល្អដោយខ្លួនឯង"}},
	},
	TypeCreative: {
		{Text: Localized{EN: "New ideas come to you naturally", KM: "គំនិតថ្មីៗមកដល់អ្នកជាធម្មជាតិ"}},
		{Text: Localized{EN: "You enjoy change and variety", KM: "អ្នកចូលចិត្តការផ្លាស់ប្តូរ និងភាពចម្រុះ"}},
		{Text: Localized{EN: "You create your own way of doing things", KM: "អ្នកបង្កើតវិធីផ្ទាល់ខ្លួនក្នុងការធ្វើអ្វីៗ"}},
	},
}

var careersByType = map[PersonalityType][]CareerSuggestion{
	TypePeople: {
		{Name: Localized{EN: "Teacher", KM: "គ្រូបង្រៀន"}, Description: Localized{EN: "Educate children across Cambodia", KM: "បង្រៀនកុមារទូទាំងប្រទេសកម្ពុជា"}},
		{Name: Localized{EN: "Healthcare Worker", KM: "បុគ្គលិកសុខាភិបាល"}, Description: Localized{EN: "Help communities stay healthy", KM: "ជួយសហគមន៍ឱ្យមានសុខភាពល្អ"}},
		{Name: Localized{EN: "Hotel / Hospitality", KM: "បុគ្គលិកសណ្ឋាគារ"}, Description: Localized{EN: "Create great guest experiences", KM: "បង្កើតបទពិសោធន៍ដ៏ល្អសម្រាប់ភ្ញៀវ"}},
	},
	TypeTech: {
		{Name: Localized{EN: "Software Developer", KM: "អ្នកអភិវឌ្ឍន៍កម្មវិធី"}, Description: Localized{EN: "Build apps and websites", KM: "បង្កើតកម្មវិធី និងគេហទំព័រ"}},
		{Name: Localized{EN: "Construction Technician", KM: "ជាងសំណង់"}, Description: Localized{EN: "Build Cambodia's future infrastructure", KM: "សាងសង់ហេដ្ឋារចនាសម្ព័ន្ធអនាគតកម្ពុជា"}},
		{Name: Localized{EN: "Finance & Banking", KM: "ហិរញ្ញវត្ថុ និងធនាគារ"}, Description: Localized{EN: "Manage money and investments", KM: "គ្រប់គ្រងប្រាក់ និងការវិនិយោគ"}},
	},
	TypeCreative: {
		{Name: Localized{EN: "UI/UX Designer", KM: "អ្នករចនា UI/UX"}, Description: Localized{EN: "Design beautiful digital products", KM: "រចនាផលិតផលឌីជីថលដ៏ស្រស់ស្អាត"}},
		{Name: Localized{EN: "Digital Marketer", KM: "អ្នកទីផ្សារឌីជីថល"}, Description: Localized{EN: "Create engaging online campaigns", KM: "បង្កើតយុទ្ធនាការអនឡាញដ៏ទាក់ទាញ"}},
		{Name: Localized{EN: "Environmental Specialist", KM: "អ្នកជំនាញបរិស្ថាន"}, Description: Localized{EN: "Protect Cambodia's natural resources", KM: "ការពារធនធានធម្មជាតិកម្ពុជា"}},
	},
}

var senpaiByType = map[PersonalityType]Senpai{
	TypePeople: {
		Name:  Localized{EN: "Sreymom (24)", KM: "ស្រីមុំ (២៤ឆ្នាំ)"},
		Job:   Localized{EN: "Primary School Teacher", KM: "គ្រូបង្រៀនបឋមសិក្សា"},
		Story: Localized{EN: "From Battambang → scholarship → university → teaching in her hometown", KM: "មកពីបាត់ដំបង → អាហារូបករណ៍ → សាកលវិទ្យាល័យ → បង្រៀននៅស្រុកកំណើត"},
		Quote: Localized{EN: `"Seeing my students smile is my daily motivation"`, KM: `"ការឃើញសិស្សរបស់ខ្ញុំញញឹម គឺជាការលើកទឹកចិត្តប្រចាំថ្ងៃរបស់ខ្ញុំ"`},
	},
	TypeTech: {
		Name:  Localized{EN: "Dara (22)", KM: "តារា (២២ឆ្នាំ)"},
		Job:   Localized{EN: "Software Developer", KM: "អ្នកអភិវឌ្ឍន៍កម្មវិធី"},
		Story: Localized{EN: "Self-taught coding → bootcamp → now working at a Phnom Penh tech company", KM: "រៀនកូដដោយខ្លួនឯង → bootcamp → ឥឡូវធ្វើការនៅក្រុមហ៊ុនបច្ចេកវិទ្យាភ្នំពេញ"},
		Quote: Localized{EN: `"I started from zero. Now I build apps used by thousands"`, KM: `"ខ្ញុំចាប់ផ្តើមពីសូន្យ។ ឥឡូវខ្ញុំបង្កើតកម្មវិធីដែលមានមនុស្សរាប់ពាន់នាក់ប្រើ"`},
	},
	TypeCreative: {
		Name:  Localized{EN: "Channary (25)", KM: "ចន្នារី (២៥ឆ្នាំ)"},
		Job:   Localized{EN: "Freelance Designer", KM: "អ្នករចនាឯករាជ្យ"},
		Story: Localized{EN: "Art school → design agency → now freelancing for international clients", KM: "សាលាសិល្បៈ → ទីភ្នាក់ងាររចនា → ឥឡូវធ្វើការឯករាជ្យសម្រាប់អតិថិជនអន្តរជាតិ"},
		Quote: Localized{EN: `"Turning my ideas into reality is the best feeling"`, KM: `"ការបម្លែងគំនិតរបស់ខ្ញុំទៅជាការពិត គឺជាអារម្មណ៍ដ៏ល្អបំផុត"`},
	},
}

// BuildResult scores the answers and assembles the full result
// payload for the winning type.
func BuildResult(a Answers) DiagnosisResult {
	scores := ScoreAnswers(a)
	top := TopCategory(scores)
	return DiagnosisResult{
		TopType:   top,
		Scores:    scores,
		Label:     typeLabels[top],
		Strengths: strengthsByType[top],
		Careers:   careersByType[top],
		Senpai:    senpaiByType[top],
	}
}
