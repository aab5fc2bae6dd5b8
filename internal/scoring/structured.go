package scoring

import (
	"fmt"
	"sort"

	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/jitter"
	"clinical-risk-go/internal/types"
)

const (
	structuredBase = 50.0
	structuredMin  = 5.0
	structuredMax  = 95.0
)

// factorWeight is the bounded contribution of one matched dimension: min(cap, count*perRecord).
type factorWeight struct {
	perRecord float64
	cap       float64
}

func (w factorWeight) apply(count int) float64 {
	return min(w.cap, float64(count)*w.perRecord)
}

var (
	ageWeight    = factorWeight{perRecord: 5, cap: 20}
	genderWeight = factorWeight{perRecord: 3, cap: 15}
	bloodWeight  = factorWeight{perRecord: 2, cap: 10}
	testWeight   = factorWeight{perRecord: 8, cap: 25}
)

// Attributes are the structured inputs. Nil optional fields skip their factor.
type Attributes struct {
	Age        int
	Gender     catalog.Gender
	BloodType  *catalog.BloodType
	TestResult *catalog.TestResult
}

type StructuredScorer struct {
	corr   *aggregator.Correlations
	jitter jitter.Source
}

func NewStructuredScorer(corr *aggregator.Correlations, j jitter.Source) *StructuredScorer {
	if j == nil {
		j = jitter.Default()
	}
	return &StructuredScorer{corr: corr, jitter: j}
}

// Score rates every known condition, highest probability first. Each probability is
// kept in [5,95] after a ±5 presentation jitter.
func (s *StructuredScorer) Score(a Attributes) ([]types.ScoredCondition, error) {
	if !s.corr.Available() {
		return nil, fmt.Errorf("structured score: %w", types.ErrDatasetUnavailable)
	}
	bucket := catalog.BucketForAge(a.Age)

	conditions := catalog.Conditions()
	out := make([]types.ScoredCondition, 0, len(conditions))
	for _, cond := range conditions {
		probability := structuredBase
		factors := []string{}

		if p, ok := s.corr.Profile(cond); ok {
			if n, ok := p.AgeBins[bucket]; ok {
				probability += ageWeight.apply(n)
				factors = append(factors, "Age group "+bucket.String())
			}
			if n, ok := p.Genders[a.Gender]; ok {
				probability += genderWeight.apply(n)
				factors = append(factors, "Gender: "+a.Gender.String())
			}
			if a.BloodType != nil {
				if n, ok := p.BloodTypes[*a.BloodType]; ok {
					probability += bloodWeight.apply(n)
					factors = append(factors, "Blood type: "+a.BloodType.String())
				}
			}
			if a.TestResult != nil {
				if n, ok := p.TestResults[*a.TestResult]; ok {
					probability += testWeight.apply(n)
					factors = append(factors, "Test result: "+a.TestResult.String())
				}
			}
		}

		probability = clamp(probability, structuredMin, structuredMax)
		// noise only; re-clamped so the output range holds
		probability = clamp(probability+s.jitter.Uniform(-5, 5), structuredMin, structuredMax)

		out = append(out, types.ScoredCondition{
			Name:        cond.String(),
			Probability: round1(probability),
			Factors:     factors,
		})
	}

	// conditions are already in code order, so a stable sort breaks ties by code
	sort.SliceStable(out, func(i, j int) bool { return out[i].Probability > out[j].Probability })
	return out, nil
}
