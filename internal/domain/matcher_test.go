package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTranslator(id, city, specialty string, languages ...string) *Translator {
	t := &Translator{ID: id, Specialty: specialty}
	if city != "" {
		t.City = &City{ID: "c-" + city, Name: city}
	}
	for _, l := range languages {
		t.Languages = append(t.Languages, Language{ID: "l-" + l, Name: l})
	}
	return t
}

func TestMatchTranslators(t *testing.T) {
	cairoArabic := newTestTranslator("t1", "Cairo", "legal", "Arabic", "English")
	cairoFrench := newTestTranslator("t2", "Cairo", "medical", "French")
	parisFrench := newTestTranslator("t3", "Paris", "legal", "French", "Arabic")
	noCity := newTestTranslator("t4", "", "legal", "Arabic")
	pool := []*Translator{cairoArabic, cairoFrench, parisFrench, noCity}

	tests := []struct {
		name   string
		filter MatchFilter
		want   []string
	}{
		{name: "all empty matches all", filter: MatchFilter{}, want: []string{"t1", "t2", "t3", "t4"}},
		{name: "city only", filter: MatchFilter{City: "Cairo"}, want: []string{"t1", "t2"}},
		{name: "city case-insensitive", filter: MatchFilter{City: "cairo"}, want: []string{"t1", "t2"}},
		{name: "city and language", filter: MatchFilter{City: "Cairo", Language: "Arabic"}, want: []string{"t1"}},
		{name: "language only", filter: MatchFilter{Language: "French"}, want: []string{"t2", "t3"}},
		{name: "specialty only", filter: MatchFilter{Specialty: "legal"}, want: []string{"t1", "t3", "t4"}},
		{name: "all dimensions", filter: MatchFilter{City: "Paris", Language: "French", Specialty: "legal"}, want: []string{"t3"}},
		{name: "no city profile never matches a city filter", filter: MatchFilter{City: "Cairo", Specialty: "legal"}, want: []string{"t1"}},
		{name: "no match", filter: MatchFilter{City: "Berlin"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchTranslators(pool, tt.filter)
			ids := make([]string, 0, len(got))
			for _, tr := range got {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatchTranslators_Dedup(t *testing.T) {
	multiLang := newTestTranslator("t1", "Cairo", "legal", "Arabic", "English", "French")
	// Same translator appearing twice in the input pool must be
	// returned once.
	got := MatchTranslators([]*Translator{multiLang, multiLang}, MatchFilter{Language: "Arabic"})
	assert.Len(t, got, 1)
}

func TestMatchTranslators_NilEntries(t *testing.T) {
	got := MatchTranslators([]*Translator{nil, newTestTranslator("t1", "", "")}, MatchFilter{})
	assert.Len(t, got, 1)
}
