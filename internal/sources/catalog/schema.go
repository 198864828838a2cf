package catalog

// File represents the top-level structure of careers.yaml.
type File struct {
	Careers []CareerEntry `yaml:"careers"`
}

// Text is a bilingual string pair as written in the YAML file.
type Text struct {
	EN string `yaml:"en"`
	KM string `yaml:"km"`
}

// CareerEntry is one career as written by the content team.
type CareerEntry struct {
	ID              string   `yaml:"id"`
	Name            Text     `yaml:"name"`
	Description     Text     `yaml:"description"`
	Category        string   `yaml:"category"`
	Skills          []Text   `yaml:"skills,omitempty"`
	IncomeMin       int      `yaml:"incomeMin"`
	IncomeMax       int      `yaml:"incomeMax"`
	EducationLevel  string   `yaml:"educationLevel"`
	EnglishRequired string   `yaml:"englishRequired"`
	SkillDifficulty int      `yaml:"skillDifficulty"`
	GrowthScore     int      `yaml:"growthScore"`
	Cambodia        bool     `yaml:"cambodiaAvailable"`
	International   bool     `yaml:"internationalAvailable"`
	Filters         []string `yaml:"filters,omitempty"`
	Interests       []string `yaml:"interests,omitempty"`
}
