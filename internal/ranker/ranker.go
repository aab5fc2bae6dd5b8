// Package ranker turns scored conditions into the final analysis record.
package ranker

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"clinical-risk-go/internal/enricher"
	"clinical-risk-go/internal/types"
)

const (
	warningThreshold = 70.0
	highPriorityOver = 85.0
)

type Options struct {
	// TopN is how many conditions the result lists.
	TopN int
	// KnowledgeN is how many of the top conditions get knowledge entries.
	KnowledgeN int
}

type Ranker struct {
	enricher *enricher.Enricher
	now      func() time.Time
	newID    func() string
}

func New(e *enricher.Enricher) *Ranker {
	return &Ranker{
		enricher: e,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// WithClock replaces the timestamp source.
func (r *Ranker) WithClock(now func() time.Time) *Ranker {
	r.now = now
	return r
}

// Rank sorts scored conditions and composes the result. Health score and warning
// flags are computed over every scored condition, not just the listed ones.
func (r *Ranker) Rank(scored []types.ScoredCondition, opts Options) types.AnalysisResult {
	sorted := make([]types.ScoredCondition, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Probability > sorted[j].Probability })

	top := sorted[:min(opts.TopN, len(sorted))]
	topName := ""
	if len(sorted) > 0 {
		topName = sorted[0].Name
	}

	return types.AnalysisResult{
		ID:                      r.newID(),
		PotentialConditions:     top,
		MedicalKnowledge:        r.enricher.Enrich(sorted[:min(opts.KnowledgeN, len(sorted))]),
		FollowUpRecommendations: r.enricher.FollowUps(topName),
		HealthScore:             HealthScore(sorted),
		WarningFlags:            WarningFlags(sorted),
		Timestamp:               r.now().Format(time.RFC3339),
	}
}

// HealthScore starts at 100 and subtracts a probability-weighted penalty per condition:
// 30% above 70, 20% above 50, 10% otherwise. Clamped to [1,100].
func HealthScore(scored []types.ScoredCondition) float64 {
	score := 100.0
	for _, s := range scored {
		p := s.Probability
		switch {
		case p > 70:
			score -= p * 0.3
		case p > 50:
			score -= p * 0.2
		default:
			score -= p * 0.1
		}
	}
	score = max(1, min(100, score))
	return math.Round(score*10) / 10
}

// WarningFlags flags every condition above 70, high priority above 85.
func WarningFlags(scored []types.ScoredCondition) []types.WarningFlag {
	flags := []types.WarningFlag{}
	for _, s := range scored {
		if s.Probability <= warningThreshold {
			continue
		}
		priority := types.PriorityMedium
		if s.Probability > highPriorityOver {
			priority = types.PriorityHigh
		}
		flags = append(flags, types.WarningFlag{
			Condition: s.Name,
			Priority:  priority,
			Message:   fmt.Sprintf("High probability of %s detected", s.Name),
		})
	}
	return flags
}
