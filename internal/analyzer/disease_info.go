package analyzer

import (
	"fmt"
	"math"
	"sort"

	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/types"
)

// DiseaseInfo summarises the aggregate for each known condition.
func (a *Analyzer) DiseaseInfo() ([]types.DiseaseInfo, error) {
	if !a.corr.Available() {
		return nil, fmt.Errorf("disease info: %w", types.ErrDatasetUnavailable)
	}
	out := make([]types.DiseaseInfo, 0, len(catalog.Conditions()))
	for _, cond := range catalog.Conditions() {
		info := types.DiseaseInfo{
			ID:                    int(cond),
			Name:                  cond.String(),
			Prevalence:            []types.AgeGroupCount{},
			BloodTypeCorrelation:  []types.BloodTypeCount{},
			MedicationCorrelation: []types.MedicationCount{},
		}
		p, ok := a.corr.Profile(cond)
		if !ok {
			out = append(out, info)
			continue
		}
		info.TotalRecords = p.Total
		info.MeanBillingAmount = math.Round(p.MeanBilling*100) / 100

		for _, b := range sortedKeys(p.AgeBins) {
			info.Prevalence = append(info.Prevalence, types.AgeGroupCount{AgeGroup: b.String(), Count: p.AgeBins[b]})
		}
		for _, bt := range byCount(p.BloodTypes) {
			info.BloodTypeCorrelation = append(info.BloodTypeCorrelation, types.BloodTypeCount{BloodType: bt.String(), Count: p.BloodTypes[bt]})
		}
		for _, m := range byCount(p.Medications) {
			info.MedicationCorrelation = append(info.MedicationCorrelation, types.MedicationCount{Medication: m.String(), Count: p.Medications[m]})
		}
		out = append(out, info)
	}
	return out, nil
}

func sortedKeys[K ~int](m map[K]int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// byCount orders keys by descending count, then ascending code.
func byCount[K ~int](m map[K]int) []K {
	keys := sortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool { return m[keys[i]] > m[keys[j]] })
	return keys
}
