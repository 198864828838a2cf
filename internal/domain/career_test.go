package domain

import "testing"

func testCareers() []Career {
	return []Career{
		{
			ID:        "teacher",
			Category:  CategorySocialImpact,
			IncomeMin: 200, IncomeMax: 500,
			EducationLevel:    EducationBachelor,
			EnglishRequired:   EnglishBasic,
			CambodiaAvailable: true,
			Flags:             CareerFlags{HighDemand: true, UniversityRequired: true},
			Interests:         CareerInterests{People: true, Social: true},
		},
		{
			ID:        "software-developer",
			Category:  CategoryHighIncome,
			IncomeMin: 400, IncomeMax: 2500,
			EducationLevel:    EducationAny,
			EnglishRequired:   EnglishIntermediate,
			CambodiaAvailable: true,
			Flags:             CareerFlags{HighDemand: true, RemotePossible: true, GrowthIndustry: true, VocationalPossible: true},
			Interests:         CareerInterests{Technology: true, Money: true},
		},
		{
			ID:        "electrician",
			Category:  CategoryRealistic,
			IncomeMin: 250, IncomeMax: 800,
			EducationLevel:    EducationVocational,
			EnglishRequired:   EnglishNone,
			CambodiaAvailable: true,
			Flags:             CareerFlags{HighDemand: true, VocationalPossible: true},
			Interests:         CareerInterests{Technology: true},
		},
		{
			ID:        "pilot",
			Category:  CategoryHighIncome,
			IncomeMin: 2000, IncomeMax: 3000,
			EducationLevel:  EducationBachelor,
			EnglishRequired: EnglishAdvanced,
			Flags:           CareerFlags{UniversityRequired: true},
			Interests:       CareerInterests{Money: true},
		},
	}
}

func careerIDs(list []Career) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func TestFilterCareers(t *testing.T) {
	careers := testCareers()

	tests := []struct {
		name string
		crit CareerCriteria
		want []string
	}{
		{"no criteria keeps catalog order", CareerCriteria{}, []string{"teacher", "software-developer", "electrician", "pilot"}},
		{"category exact", CareerCriteria{Category: CategoryHighIncome}, []string{"software-developer", "pilot"}},
		{"vocational path includes any level", CareerCriteria{EducationLevel: EducationVocational}, []string{"software-developer", "electrician"}},
		{"english ceiling", CareerCriteria{MaxEnglish: EnglishBasic}, []string{"teacher", "electrician"}},
		{"income floor checks maximum", CareerCriteria{IncomeAtLeast: 1000}, []string{"software-developer", "pilot"}},
		{"flags AND together", CareerCriteria{HighDemand: true, RemotePossible: true}, []string{"software-developer"}},
		{"cambodia only", CareerCriteria{CambodiaOnly: true, Category: CategoryHighIncome}, []string{"software-developer"}},
		{"interest reorders without filtering", CareerCriteria{Interest: "money"}, []string{"software-developer", "pilot", "teacher", "electrician"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCareers(careers, tt.crit)
			gotIDs := careerIDs(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("FilterCareers() = %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Fatalf("FilterCareers() = %v, want %v", gotIDs, tt.want)
				}
			}
		})
	}
}

func TestCareerByID(t *testing.T) {
	careers := testCareers()

	if c, ok := CareerByID(careers, "electrician"); !ok || c.Category != CategoryRealistic {
		t.Errorf("CareerByID(electrician) = %+v, %v", c, ok)
	}
	if _, ok := CareerByID(careers, "astronaut"); ok {
		t.Error("unknown id should not be found")
	}
}
