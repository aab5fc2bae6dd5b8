// Package aggregator pre-computes per-condition frequency tables from the patient dataset.
//
// Correlations are built once and never mutated afterwards, so concurrent readers need
// no locking. Callers must treat the maps exposed on Profile as read-only.
package aggregator

import (
	"sort"

	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/types"
)

// Profile holds the aggregated statistics for one condition.
type Profile struct {
	Condition   catalog.Condition
	Total       int
	AgeBins     map[catalog.AgeBucket]int
	Genders     map[catalog.Gender]int
	BloodTypes  map[catalog.BloodType]int
	TestResults map[catalog.TestResult]int
	Medications map[catalog.Medication]int
	MeanBilling float64
}

func newProfile(c catalog.Condition) *Profile {
	return &Profile{
		Condition:   c,
		AgeBins:     map[catalog.AgeBucket]int{},
		Genders:     map[catalog.Gender]int{},
		BloodTypes:  map[catalog.BloodType]int{},
		TestResults: map[catalog.TestResult]int{},
		Medications: map[catalog.Medication]int{},
	}
}

type Correlations struct {
	profiles map[catalog.Condition]*Profile
	total    int
}

// Build groups records by condition in a single pass. A nil or empty input yields
// an unavailable aggregate rather than an error.
func Build(records []types.PatientRecord) *Correlations {
	c := &Correlations{profiles: map[catalog.Condition]*Profile{}}
	billing := map[catalog.Condition]float64{}
	for _, r := range records {
		p, ok := c.profiles[r.Disease]
		if !ok {
			p = newProfile(r.Disease)
			c.profiles[r.Disease] = p
		}
		p.Total++
		p.AgeBins[r.AgeBin]++
		p.Genders[r.Gender]++
		p.BloodTypes[r.BloodType]++
		p.TestResults[r.TestResult]++
		p.Medications[r.Medication]++
		billing[r.Disease] += r.BillingAmount
		c.total++
	}
	for cond, p := range c.profiles {
		p.MeanBilling = billing[cond] / float64(p.Total)
	}
	return c
}

// Available reports whether any profile was built.
func (c *Correlations) Available() bool {
	return c != nil && c.total > 0
}

// TotalRecords is the number of rows aggregated.
func (c *Correlations) TotalRecords() int {
	if c == nil {
		return 0
	}
	return c.total
}

func (c *Correlations) Profile(cond catalog.Condition) (*Profile, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.profiles[cond]
	return p, ok
}

// Conditions lists every condition code present in the dataset, ascending.
func (c *Correlations) Conditions() []catalog.Condition {
	if c == nil {
		return nil
	}
	out := make([]catalog.Condition, 0, len(c.profiles))
	for cond := range c.profiles {
		out = append(out, cond)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BucketCount is a condition paired with its frequency in one age bucket.
type BucketCount struct {
	Condition catalog.Condition
	Count     int
}

// RankByAgeBucket orders conditions that have records in bucket by count, highest
// first. Ties fall back to ascending condition code.
func (c *Correlations) RankByAgeBucket(bucket catalog.AgeBucket) []BucketCount {
	var out []BucketCount
	for _, cond := range c.Conditions() {
		if n, ok := c.profiles[cond].AgeBins[bucket]; ok {
			out = append(out, BucketCount{Condition: cond, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
