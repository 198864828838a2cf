package domain

import "strings"

// Rule tags a piece of text when any of its keywords appears in it.
// Matching is case-insensitive substring containment.
type Rule struct {
	Tag string
	Any []string
}

// Matches reports whether the rule applies to the given text. The
// text must already be lowercased by the caller.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Any {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// MatchTags runs every rule against the text and returns the tags of
// all that matched, in rule order.
func MatchTags(rules []Rule, text string) []string {
	lowered := strings.ToLower(text)
	var tags []string
	for _, r := range rules {
		if r.Matches(lowered) {
			tags = append(tags, r.Tag)
		}
	}
	return tags
}

// MatchesTag reports whether the rule with the given tag applies to
// the text. Unknown tags never match.
func MatchesTag(rules []Rule, tag, text string) bool {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.Tag == tag {
			return r.Matches(lowered)
		}
	}
	return false
}

const (
	// DestinationDomestic marks scholarships for study inside Cambodia.
	DestinationDomestic = "domestic"
	// DestinationOverseas marks scholarships for study abroad.
	DestinationOverseas = "overseas"
)

// overseasRule lists the markers that identify a scholarship as being
// for study abroad. Anything that matches none of them is domestic.
var overseasRule = Rule{Tag: DestinationOverseas, Any: []string{
	"japan", "korea", "singapore", "china", "australia",
	"thailand", "vietnam", "france", "germany",
	"united states", "usa", "uk", "united kingdom", "sweden",
	"abroad", "overseas", "international",
}}

// ClassifyDestination classifies a scholarship as domestic or
// overseas from its English name and provider.
func ClassifyDestination(s Scholarship) string {
	text := strings.ToLower(s.Name.EN + " " + s.Provider.EN)
	if overseasRule.Matches(text) {
		return DestinationOverseas
	}
	return DestinationDomestic
}

// UniversityFieldRules maps university program names to study fields.
var UniversityFieldRules = []Rule{
	{Tag: "it", Any: []string{"computer", "it", "electronics", "software", "digital", "cyber", "cloud"}},
	{Tag: "business", Any: []string{"business", "management", "global affairs", "commerce", "economics"}},
	{Tag: "law", Any: []string{"law"}},
	{Tag: "engineering", Any: []string{"engineering"}},
	{Tag: "medical", Any: []string{"medicine", "pharmacy", "dentistry", "nursing", "health"}},
	{Tag: "science", Any: []string{"science"}},
	{Tag: "agriculture", Any: []string{"agriculture"}},
	{Tag: "education", Any: []string{"education"}},
}

// VocationalFieldRules maps vocational training program names to
// trade fields.
var VocationalFieldRules = []Rule{
	{Tag: "it", Any: []string{"computer", "software", "digital", "network"}},
	{Tag: "trades", Any: []string{"electric", "mechanic", "welding", "construction", "plumbing", "automotive", "repair"}},
	{Tag: "hospitality", Any: []string{"hospitality", "tourism", "hotel", "cooking", "culinary", "restaurant"}},
	{Tag: "agriculture", Any: []string{"agriculture", "farming", "livestock", "aquaculture"}},
	{Tag: "textile", Any: []string{"textile", "garment", "sewing", "tailoring"}},
}

// ProgramTags returns the study-field tags matched by any program in
// the list.
func ProgramTags(rules []Rule, programs []string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range programs {
		for _, tag := range MatchTags(rules, p) {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
