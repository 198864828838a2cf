package domain

// Locale identifies one of the two supported display languages.
type Locale string

const (
	LocaleKhmer   Locale = "km"
	LocaleEnglish Locale = "en"
)

// ParseLocale returns the locale for a raw tag, reporting whether it is supported.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(s) {
	case LocaleKhmer:
		return LocaleKhmer, true
	case LocaleEnglish:
		return LocaleEnglish, true
	default:
		return "", false
	}
}

// Localized holds one value per supported locale.
//
// Either side may be empty; Resolve degrades to the empty string and
// never fails. The catalog guarantees at least one side is populated
// for display-critical fields, but the core does not depend on it.
type Localized struct {
	EN string `json:"en" yaml:"en"`
	KM string `json:"km" yaml:"km"`
}

// Resolve returns the value for the given locale, or "" when absent.
func (l Localized) Resolve(loc Locale) string {
	if loc == LocaleKhmer {
		return l.KM
	}
	return l.EN
}

// LocalizedList holds one ordered string list per supported locale.
type LocalizedList struct {
	EN []string `json:"en" yaml:"en"`
	KM []string `json:"km" yaml:"km"`
}

// Resolve returns the list for the given locale, or nil when absent.
func (l LocalizedList) Resolve(loc Locale) []string {
	if loc == LocaleKhmer {
		return l.KM
	}
	return l.EN
}
