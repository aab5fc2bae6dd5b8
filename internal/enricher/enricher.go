// Package enricher attaches static clinical reference data and follow-up
// guidance to scored conditions.
package enricher

import (
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/types"
)

type Enricher struct {
	knowledge *catalog.Knowledge
}

func New(k *catalog.Knowledge) *Enricher {
	if k == nil {
		k = catalog.DefaultKnowledge()
	}
	return &Enricher{knowledge: k}
}

// Enrich returns the knowledge entry for each condition, in input order. Conditions
// without an entry are skipped.
func (e *Enricher) Enrich(conditions []types.ScoredCondition) []catalog.Entry {
	out := []catalog.Entry{}
	for _, c := range conditions {
		if entry, ok := e.knowledge.Lookup(catalog.KeyFor(c.Name)); ok {
			out = append(out, entry)
		}
	}
	return out
}

// FollowUps lists the universal recommendations plus those for the top condition.
func (e *Enricher) FollowUps(topCondition string) []string {
	return catalog.FollowUpsFor(topCondition)
}
