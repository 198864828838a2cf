package domain

// ScholarshipFacets projects a scholarship for the filter engine.
func ScholarshipFacets(s Scholarship, loc Locale) Facets {
	return Facets{
		Name:        s.Name.Resolve(loc),
		Secondary:   s.Provider.Resolve(loc),
		Category:    string(s.Type),
		Destination: ClassifyDestination(s),
		Deadline:    s.Deadline,
		CreatedAt:   s.CreatedAt,
	}
}

// UniversityFacets projects a university for the filter engine.
func UniversityFacets(u University, loc Locale) Facets {
	return Facets{
		Name:        u.Name.Resolve(loc),
		Secondary:   u.Description.Resolve(loc),
		Category:    string(u.Type),
		Location:    u.Location.EN,
		ProgramTags: ProgramTags(UniversityFieldRules, u.Programs.EN),
		CreatedAt:   u.CreatedAt,
		Count:       u.ScholarshipCount,
	}
}

// VocationalFacets projects a vocational school for the filter engine.
func VocationalFacets(v VocationalSchool, loc Locale) Facets {
	return Facets{
		Name:        v.Name.Resolve(loc),
		Secondary:   v.Description.Resolve(loc),
		Location:    v.Location.EN,
		ProgramTags: ProgramTags(VocationalFieldRules, v.Programs.EN),
		CreatedAt:   v.CreatedAt,
	}
}
