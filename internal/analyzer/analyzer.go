// Package analyzer is the request-facing facade over the scoring engine. It holds
// the read-only aggregate and catalogs built at startup and composes scorers, the
// enricher and the ranker per call.
package analyzer

import (
	"fmt"
	"strings"
	"time"

	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/enricher"
	"clinical-risk-go/internal/jitter"
	"clinical-risk-go/internal/logger"
	"clinical-risk-go/internal/matcher"
	"clinical-risk-go/internal/ranker"
	"clinical-risk-go/internal/scoring"
	"clinical-risk-go/internal/types"
)

const (
	defaultAge = 30

	reportTopN      = 3
	reportKnowledge = 2
	symptomTopN     = 3
)

type Analyzer struct {
	corr       *aggregator.Correlations
	knowledge  *catalog.Knowledge
	vocabulary catalog.Vocabulary
	jitter     jitter.Source
	now        func() time.Time
	log        *logger.Logger

	structured *scoring.StructuredScorer
	text       *scoring.TextScorer
	ranker     *ranker.Ranker
}

type Option func(*Analyzer)

// WithJitter replaces the randomness source used by both scorers.
func WithJitter(j jitter.Source) Option {
	return func(a *Analyzer) { a.jitter = j }
}

func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

func WithLogger(l *logger.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

func WithKnowledge(k *catalog.Knowledge) Option {
	return func(a *Analyzer) { a.knowledge = k }
}

func WithVocabulary(v catalog.Vocabulary) Option {
	return func(a *Analyzer) { a.vocabulary = v }
}

// New builds an analyzer over corr. A nil or empty aggregate puts the engine in
// degraded mode: text analysis is keyword-only and report analysis fails.
func New(corr *aggregator.Correlations, opts ...Option) *Analyzer {
	a := &Analyzer{
		corr:       corr,
		knowledge:  catalog.DefaultKnowledge(),
		vocabulary: catalog.DefaultVocabulary(),
		jitter:     jitter.Default(),
		now:        time.Now,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.structured = scoring.NewStructuredScorer(corr, a.jitter)
	a.text = scoring.NewTextScorer(matcher.New(a.vocabulary), corr, a.jitter)
	a.ranker = ranker.New(enricher.New(a.knowledge)).WithClock(a.now)
	return a
}

// Available reports whether the dataset aggregate was built.
func (a *Analyzer) Available() bool {
	return a.corr.Available()
}

// AnalyzeSymptoms scores free text and attaches risk factors derived from the caller's context.
func (a *Analyzer) AnalyzeSymptoms(text string, user types.UserContext) (types.SymptomAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return types.SymptomAnalysis{}, fmt.Errorf("no symptoms provided: %w", types.ErrInvalidInput)
	}
	age := defaultAge
	if user.Age != nil {
		age = *user.Age
	}
	if age < 0 {
		return types.SymptomAnalysis{}, fmt.Errorf("age %d: %w", age, types.ErrInvalidInput)
	}

	scored := a.text.Score(text)
	res := a.ranker.Rank(scored, ranker.Options{TopN: symptomTopN, KnowledgeN: symptomTopN})

	a.log.WithFields(map[string]interface{}{
		"analysis_id": res.ID,
		"conditions":  len(res.PotentialConditions),
		"degraded":    !a.corr.Available(),
	}).Debug("symptom analysis complete")

	return types.SymptomAnalysis{
		AnalysisResult:  res,
		UserRiskFactors: RiskFactors(age, user.Region, user.HasChronicConditions),
	}, nil
}

// AnalyzeReport scores structured attributes against every known condition.
func (a *Analyzer) AnalyzeReport(in types.ReportInput) (types.AnalysisResult, error) {
	attrs, err := reportAttributes(in)
	if err != nil {
		return types.AnalysisResult{}, err
	}
	scored, err := a.structured.Score(attrs)
	if err != nil {
		a.log.WithError(err).Warn("report analysis without dataset")
		return types.AnalysisResult{}, err
	}
	res := a.ranker.Rank(scored, ranker.Options{TopN: reportTopN, KnowledgeN: reportKnowledge})
	a.log.WithField("analysis_id", res.ID).WithField("health_score", res.HealthScore).Debug("report analysis complete")
	return res, nil
}

func reportAttributes(in types.ReportInput) (scoring.Attributes, error) {
	attrs := scoring.Attributes{Age: defaultAge}
	if in.Age != nil {
		if *in.Age < 0 {
			return attrs, fmt.Errorf("age %d: %w", *in.Age, types.ErrInvalidInput)
		}
		attrs.Age = *in.Age
	}
	if in.Gender != nil {
		attrs.Gender = catalog.Gender(*in.Gender)
	}
	if in.BloodType != nil {
		bt := catalog.BloodType(*in.BloodType)
		attrs.BloodType = &bt
	}
	if in.TestResult != nil {
		tr := catalog.TestResult(*in.TestResult)
		attrs.TestResult = &tr
	}
	return attrs, nil
}

// MedicalKnowledge filters the catalog by substring. An empty query lists everything.
func (a *Analyzer) MedicalKnowledge(query string) []catalog.Entry {
	return a.knowledge.Search(query)
}

func (a *Analyzer) Health() types.HealthStatus {
	return types.HealthStatus{
		Status:             "healthy",
		ServerTime:         a.now().Format(time.RFC3339),
		DatastoreAvailable: a.corr.Available(),
		DatastoreRecords:   a.corr.TotalRecords(),
	}
}
