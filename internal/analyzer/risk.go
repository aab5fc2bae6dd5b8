package analyzer

import "clinical-risk-go/internal/types"

var highExposureRegions = map[string]bool{
	"Mumbai":    true,
	"Delhi":     true,
	"Bangalore": true,
}

// RiskFactors grades the caller's context. Region matching is exact.
func RiskFactors(age int, region string, chronic bool) types.UserRiskFactors {
	rf := types.UserRiskFactors{Age: types.RiskLow, Region: types.RiskLow, History: types.RiskLow}
	switch {
	case age > 60:
		rf.Age = types.RiskHigh
	case age > 45:
		rf.Age = types.RiskMedium
	}
	if highExposureRegions[region] {
		rf.Region = types.RiskMedium
	}
	if chronic {
		rf.History = types.RiskHigh
	}
	return rf
}
