// Package matcher maps free text onto the curated keyword vocabulary by
// case-insensitive substring search.
package matcher

import (
	"strings"

	"clinical-risk-go/internal/catalog"
)

// Match is one vocabulary condition with at least one keyword present in the text.
type Match struct {
	Condition string
	Matched   []string
	Total     int
}

// Ratio is the share of the condition's keywords found, in [0,1].
func (m Match) Ratio() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(len(m.Matched)) / float64(m.Total)
}

// Hit is a symptom phrase that points directly at a dataset condition.
type Hit struct {
	Phrase    string
	Condition catalog.Condition
}

type Matcher struct {
	keywords     []catalog.KeywordSet
	associations []catalog.Association
}

// New lowercases the vocabulary once so matching only lowercases the input.
func New(v catalog.Vocabulary) *Matcher {
	m := &Matcher{}
	for _, set := range v.Keywords {
		kw := make([]string, len(set.Keywords))
		for i, k := range set.Keywords {
			kw[i] = strings.ToLower(k)
		}
		m.keywords = append(m.keywords, catalog.KeywordSet{Condition: set.Condition, Keywords: kw})
	}
	for _, a := range v.Associations {
		m.associations = append(m.associations, catalog.Association{Phrase: strings.ToLower(a.Phrase), Condition: a.Condition})
	}
	return m
}

// Keywords returns matches in vocabulary order, skipping conditions with no hits.
func (m *Matcher) Keywords(text string) []Match {
	lower := strings.ToLower(text)
	var out []Match
	for _, set := range m.keywords {
		var matched []string
		for _, k := range set.Keywords {
			if strings.Contains(lower, k) {
				matched = append(matched, k)
			}
		}
		if len(matched) > 0 {
			out = append(out, Match{Condition: set.Condition, Matched: matched, Total: len(set.Keywords)})
		}
	}
	return out
}

// Associations returns every association phrase present in text, in table order.
func (m *Matcher) Associations(text string) []Hit {
	lower := strings.ToLower(text)
	var out []Hit
	for _, a := range m.associations {
		if strings.Contains(lower, a.Phrase) {
			out = append(out, Hit{Phrase: a.Phrase, Condition: a.Condition})
		}
	}
	return out
}
