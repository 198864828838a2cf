package catalog

import (
	"fmt"

	"github.com/pathforward/doorhub/internal/domain"
)

var validCategories = map[string]domain.CareerCategory{
	"realistic":     domain.CategoryRealistic,
	"high-income":   domain.CategoryHighIncome,
	"social-impact": domain.CategorySocialImpact,
}

var validEducation = map[string]domain.EducationLevel{
	"vocational": domain.EducationVocational,
	"bachelor":   domain.EducationBachelor,
	"master":     domain.EducationMaster,
	"any":        domain.EducationAny,
}

var validEnglish = map[string]domain.EnglishLevel{
	"none":         domain.EnglishNone,
	"basic":        domain.EnglishBasic,
	"intermediate": domain.EnglishIntermediate,
	"advanced":     domain.EnglishAdvanced,
}

// Mapper converts career entries to domain.Career values.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCareers validates and converts a parsed careers file. One bad
// entry fails the whole load; a half-broken catalog must never go
// live silently.
func (m *Mapper) MapCareers(f File) ([]domain.Career, error) {
	careers := make([]domain.Career, 0, len(f.Careers))
	seen := make(map[string]bool, len(f.Careers))

	for _, entry := range f.Careers {
		if entry.ID == "" {
			return nil, fmt.Errorf("career with empty id (name %q)", entry.Name.EN)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("duplicate career id %q", entry.ID)
		}
		seen[entry.ID] = true

		career, err := mapEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("career %q: %w", entry.ID, err)
		}
		careers = append(careers, career)
	}
	return careers, nil
}

func mapEntry(entry CareerEntry) (domain.Career, error) {
	category, ok := validCategories[entry.Category]
	if !ok {
		return domain.Career{}, fmt.Errorf("unknown category %q", entry.Category)
	}
	education, ok := validEducation[entry.EducationLevel]
	if !ok {
		return domain.Career{}, fmt.Errorf("unknown education level %q", entry.EducationLevel)
	}
	english, ok := validEnglish[entry.EnglishRequired]
	if !ok {
		return domain.Career{}, fmt.Errorf("unknown english level %q", entry.EnglishRequired)
	}
	if entry.SkillDifficulty < 1 || entry.SkillDifficulty > 5 {
		return domain.Career{}, fmt.Errorf("skillDifficulty %d out of range 1-5", entry.SkillDifficulty)
	}
	if entry.GrowthScore < 1 || entry.GrowthScore > 5 {
		return domain.Career{}, fmt.Errorf("growthScore %d out of range 1-5", entry.GrowthScore)
	}
	if entry.IncomeMin < 0 || entry.IncomeMax < entry.IncomeMin {
		return domain.Career{}, fmt.Errorf("invalid income range %d-%d", entry.IncomeMin, entry.IncomeMax)
	}
	if entry.IncomeMax > domain.MaxIncome {
		entry.IncomeMax = domain.MaxIncome
	}

	skills := make([]domain.Localized, len(entry.Skills))
	for i, s := range entry.Skills {
		skills[i] = domain.Localized{EN: s.EN, KM: s.KM}
	}

	career := domain.Career{
		ID:                     entry.ID,
		Name:                   domain.Localized{EN: entry.Name.EN, KM: entry.Name.KM},
		Description:            domain.Localized{EN: entry.Description.EN, KM: entry.Description.KM},
		Category:               category,
		Skills:                 skills,
		IncomeMin:              entry.IncomeMin,
		IncomeMax:              entry.IncomeMax,
		EducationLevel:         education,
		EnglishRequired:        english,
		SkillDifficulty:        entry.SkillDifficulty,
		GrowthScore:            entry.GrowthScore,
		CambodiaAvailable:      entry.Cambodia,
		InternationalAvailable: entry.International,
	}

	for _, flag := range entry.Filters {
		switch flag {
		case "highDemand":
			career.Flags.HighDemand = true
		case "remotePossible":
			career.Flags.RemotePossible = true
		case "growthIndustry":
			career.Flags.GrowthIndustry = true
		case "universityRequired":
			career.Flags.UniversityRequired = true
		case "vocationalPossible":
			career.Flags.VocationalPossible = true
		default:
			return domain.Career{}, fmt.Errorf("unknown filter flag %q", flag)
		}
	}
	for _, interest := range entry.Interests {
		switch interest {
		case "people":
			career.Interests.People = true
		case "technology":
			career.Interests.Technology = true
		case "money":
			career.Interests.Money = true
		case "social":
			career.Interests.Social = true
		default:
			return domain.Career{}, fmt.Errorf("unknown interest %q", interest)
		}
	}
	return career, nil
}
