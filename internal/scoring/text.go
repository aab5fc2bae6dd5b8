package scoring

import (
	"fmt"
	"sort"

	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/jitter"
	"clinical-risk-go/internal/matcher"
	"clinical-risk-go/internal/types"
)

const (
	textTopN          = 3
	unknownCondition  = "Unknown"
	unknownConfidence = 20.0
	ageRankTopN       = 2
)

type TextScorer struct {
	matcher *matcher.Matcher
	corr    *aggregator.Correlations
	jitter  jitter.Source
}

// NewTextScorer wires the keyword matcher with an optional aggregate. A nil or empty
// aggregate leaves the scorer keyword-only.
func NewTextScorer(m *matcher.Matcher, corr *aggregator.Correlations, j jitter.Source) *TextScorer {
	if j == nil {
		j = jitter.Default()
	}
	return &TextScorer{matcher: m, corr: corr, jitter: j}
}

// results is an insertion-ordered set keyed by condition name. The first writer wins.
type results struct {
	list []types.ScoredCondition
	seen map[string]bool
}

func (r *results) add(name string, confidence float64, factors []string) {
	if r.seen[name] {
		return
	}
	r.seen[name] = true
	r.list = append(r.list, types.ScoredCondition{
		Name:        name,
		Probability: round1(clamp(confidence, 0, 100)),
		Factors:     factors,
	})
}

func (r *results) has(name string) bool { return r.seen[name] }

// Score returns at most three conditions by descending confidence and never an empty slice.
func (s *TextScorer) Score(text string) []types.ScoredCondition {
	r := &results{seen: map[string]bool{}}

	for _, m := range s.matcher.Keywords(text) {
		confidence := min(90, m.Ratio()*100) + s.jitter.Uniform(-10, 10)
		r.add(m.Condition, confidence, m.Matched)
	}

	if s.corr.Available() {
		s.scoreCorrelations(text, r)
	}

	sort.SliceStable(r.list, func(i, j int) bool { return r.list[i].Probability > r.list[j].Probability })
	if len(r.list) > textTopN {
		r.list = r.list[:textTopN]
	}
	if len(r.list) == 0 {
		return []types.ScoredCondition{{Name: unknownCondition, Probability: unknownConfidence, Factors: []string{}}}
	}
	return r.list
}

func (s *TextScorer) scoreCorrelations(text string, r *results) {
	if age, ok := ExtractAge(text); ok {
		added := 0
		for _, bc := range s.corr.RankByAgeBucket(catalog.BucketForAge(age)) {
			if added == ageRankTopN {
				break
			}
			name := bc.Condition.String()
			if r.has(name) {
				continue
			}
			confidence := min(85, 50+float64(bc.Count)*5) + s.jitter.Uniform(-15, 10)
			r.add(name, confidence, []string{fmt.Sprintf("Age group (%d years)", age)})
			added++
		}
	}

	for _, hit := range s.matcher.Associations(text) {
		name := hit.Condition.String()
		if r.has(name) {
			continue
		}
		r.add(name, 70+s.jitter.Uniform(-10, 10), []string{fmt.Sprintf("Mentioned '%s'", hit.Phrase)})
	}
}
