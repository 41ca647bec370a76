package domain

import "strings"

// MatchFilter holds the request dimensions translators are filtered
// by. An empty dimension matches everything, so an under-specified
// request still returns candidates.
type MatchFilter struct {
	City      string
	Language  string
	Specialty string
}

// MatchTranslators selects translators whose profile intersects the
// filter: same city (case-insensitive), language set containing the
// requested language, equal specialty. The result is deduplicated by
// translator ID and carries no ordering guarantee beyond input order.
func MatchTranslators(translators []*Translator, filter MatchFilter) []*Translator {
	matched := make([]*Translator, 0, len(translators))
	seen := make(map[string]bool, len(translators))
	for _, t := range translators {
		if t == nil || seen[t.ID] {
			continue
		}
		if !matchCity(t, filter.City) {
			continue
		}
		if !matchLanguage(t, filter.Language) {
			continue
		}
		if !matchSpecialty(t, filter.Specialty) {
			continue
		}
		seen[t.ID] = true
		matched = append(matched, t)
	}
	return matched
}

func matchCity(t *Translator, city string) bool {
	if city == "" {
		return true
	}
	return t.City != nil && strings.EqualFold(t.City.Name, city)
}

func matchLanguage(t *Translator, language string) bool {
	if language == "" {
		return true
	}
	for _, l := range t.Languages {
		if strings.EqualFold(l.Name, language) {
			return true
		}
	}
	return false
}

func matchSpecialty(t *Translator, specialty string) bool {
	if specialty == "" {
		return true
	}
	return strings.EqualFold(t.Specialty, specialty)
}
