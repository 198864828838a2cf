package domain

import "sort"

// MaxIncome caps the income slider; careers at or above it display
// as open-ended.
const MaxIncome = 3000

// CareerCategory buckets careers by what draws students to them.
type CareerCategory string

const (
	CategoryRealistic    CareerCategory = "realistic"
	CategoryHighIncome   CareerCategory = "high-income"
	CategorySocialImpact CareerCategory = "social-impact"
)

// EducationLevel is the minimum schooling a career expects.
type EducationLevel string

const (
	EducationVocational EducationLevel = "vocational"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationAny        EducationLevel = "any"
)

// EnglishLevel is the working English a career demands.
type EnglishLevel string

const (
	EnglishNone         EnglishLevel = "none"
	EnglishBasic        EnglishLevel = "basic"
	EnglishIntermediate EnglishLevel = "intermediate"
	EnglishAdvanced     EnglishLevel = "advanced"
)

// CareerFlags are the boolean attributes a career can be filtered on.
type CareerFlags struct {
	HighDemand         bool `json:"highDemand" yaml:"highDemand"`
	RemotePossible     bool `json:"remotePossible" yaml:"remotePossible"`
	GrowthIndustry     bool `json:"growthIndustry" yaml:"growthIndustry"`
	UniversityRequired bool `json:"universityRequired" yaml:"universityRequired"`
	VocationalPossible bool `json:"vocationalPossible" yaml:"vocationalPossible"`
}

// CareerInterests marks which broad interests a career speaks to.
type CareerInterests struct {
	People     bool `json:"people" yaml:"people"`
	Technology bool `json:"technology" yaml:"technology"`
	Money      bool `json:"money" yaml:"money"`
	Social     bool `json:"social" yaml:"social"`
}

// Has reports whether the named interest is set. Unknown names are
// simply absent.
func (ci CareerInterests) Has(name string) bool {
	switch name {
	case "people":
		return ci.People
	case "technology":
		return ci.Technology
	case "money":
		return ci.Money
	case "social":
		return ci.Social
	default:
		return false
	}
}

// Career is one entry in the career catalog.
type Career struct {
	ID                     string          `json:"id"`
	Name                   Localized       `json:"name"`
	Description            Localized       `json:"description"`
	Category               CareerCategory  `json:"category"`
	Skills                 []Localized     `json:"skills"`
	IncomeMin              int             `json:"incomeMin"`
	IncomeMax              int             `json:"incomeMax"`
	EducationLevel         EducationLevel  `json:"educationLevel"`
	EnglishRequired        EnglishLevel    `json:"englishRequired"`
	SkillDifficulty        int             `json:"skillDifficulty"` // 1..5
	GrowthScore            int             `json:"growthScore"`     // 1..5
	CambodiaAvailable      bool            `json:"cambodiaAvailable"`
	InternationalAvailable bool            `json:"internationalAvailable"`
	Flags                  CareerFlags     `json:"filters"`
	Interests              CareerInterests `json:"interests"`
}

// CareerCriteria filters the career catalog. All active criteria
// must hold at once. Interest does not filter, it reorders: careers
// matching the interest surface first.
type CareerCriteria struct {
	Category           CareerCategory
	EducationLevel     EducationLevel
	MaxEnglish         EnglishLevel
	IncomeAtLeast      int
	HighDemand         bool
	RemotePossible     bool
	GrowthIndustry     bool
	VocationalPossible bool
	CambodiaOnly       bool
	Interest           string
}

var englishRank = map[EnglishLevel]int{
	EnglishNone:         0,
	EnglishBasic:        1,
	EnglishIntermediate: 2,
	EnglishAdvanced:     3,
}

func (c CareerCriteria) matches(career Career) bool {
	if c.Category != "" && career.Category != c.Category {
		return false
	}
	if c.EducationLevel != "" && career.EducationLevel != c.EducationLevel && career.EducationLevel != EducationAny {
		return false
	}
	if c.MaxEnglish != "" && englishRank[career.EnglishRequired] > englishRank[c.MaxEnglish] {
		return false
	}
	if c.IncomeAtLeast > 0 && career.IncomeMax < c.IncomeAtLeast {
		return false
	}
	if c.HighDemand && !career.Flags.HighDemand {
		return false
	}
	if c.RemotePossible && !career.Flags.RemotePossible {
		return false
	}
	if c.GrowthIndustry && !career.Flags.GrowthIndustry {
		return false
	}
	if c.VocationalPossible && !career.Flags.VocationalPossible {
		return false
	}
	if c.CambodiaOnly && !career.CambodiaAvailable {
		return false
	}
	return true
}

// FilterCareers returns careers matching the criteria. When an
// interest is set, matching careers come first; within each group
// catalog order is preserved.
func FilterCareers(careers []Career, c CareerCriteria) []Career {
	out := make([]Career, 0, len(careers))
	for _, career := range careers {
		if c.matches(career) {
			out = append(out, career)
		}
	}
	if c.Interest != "" {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Interests.Has(c.Interest) && !out[j].Interests.Has(c.Interest)
		})
	}
	return out
}

// CareerByID looks a career up in the catalog.
func CareerByID(careers []Career, id string) (Career, bool) {
	for _, c := range careers {
		if c.ID == id {
			return c, true
		}
	}
	return Career{}, false
}
