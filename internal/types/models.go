package types

import "clinical-risk-go/internal/catalog"

// PatientRecord is one row of the source dataset. Read-only once loaded.
type PatientRecord struct {
	Disease       catalog.Condition  `json:"disease"`
	AgeBin        catalog.AgeBucket  `json:"age_bin"`
	Gender        catalog.Gender     `json:"gender"`
	BloodType     catalog.BloodType  `json:"blood_type"`
	TestResult    catalog.TestResult `json:"test_result"`
	Medication    catalog.Medication `json:"medication"`
	BillingAmount float64            `json:"billing_amount"`
}

// ScoredCondition is one ranked condition. Probability is in [0,100] with one decimal.
type ScoredCondition struct {
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Factors     []string `json:"factors"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type WarningFlag struct {
	Condition string   `json:"condition"`
	Priority  Priority `json:"priority"`
	Message   string   `json:"message"`
}

// AnalysisResult is the per-request output of the ranker.
type AnalysisResult struct {
	ID                      string            `json:"id"`
	PotentialConditions     []ScoredCondition `json:"potentialConditions"`
	MedicalKnowledge        []catalog.Entry   `json:"medicalKnowledge"`
	FollowUpRecommendations []string          `json:"followUpRecommendations"`
	HealthScore             float64           `json:"healthScore"`
	WarningFlags            []WarningFlag     `json:"warningFlags"`
	Timestamp               string            `json:"timestamp"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// UserRiskFactors are derived from caller-supplied context, not from the text.
type UserRiskFactors struct {
	Age     RiskLevel `json:"age"`
	Region  RiskLevel `json:"region"`
	History RiskLevel `json:"history"`
}

// SymptomAnalysis is the free-text flavour of AnalysisResult.
type SymptomAnalysis struct {
	AnalysisResult
	UserRiskFactors UserRiskFactors `json:"user_risk_factors"`
}

// --------------------------------------------
// Inputs supplied by the request layer
// --------------------------------------------

type UserContext struct {
	Age                  *int   `json:"age,omitempty"`
	Region               string `json:"region,omitempty"`
	HasChronicConditions bool   `json:"has_chronic_conditions,omitempty"`
}

type SymptomRequest struct {
	Symptoms string      `json:"symptoms"`
	UserInfo UserContext `json:"userInfo"`
}

// ReportInput carries structured attributes. Nil blood type or test result means
// the factor is skipped, not zero-weighted.
type ReportInput struct {
	Age        *int `json:"age,omitempty"`
	Gender     *int `json:"gender,omitempty"`
	BloodType  *int `json:"bloodType,omitempty"`
	TestResult *int `json:"testResult,omitempty"`
}

// --------------------------------------------
// Dataset views
// --------------------------------------------

type AgeGroupCount struct {
	AgeGroup string `json:"ageGroup"`
	Count    int    `json:"count"`
}

type BloodTypeCount struct {
	BloodType string `json:"bloodType"`
	Count     int    `json:"count"`
}

type MedicationCount struct {
	Medication string `json:"medication"`
	Count      int    `json:"count"`
}

type DiseaseInfo struct {
	ID                    int               `json:"id"`
	Name                  string            `json:"name"`
	TotalRecords          int               `json:"totalRecords"`
	MeanBillingAmount     float64           `json:"meanBillingAmount"`
	Prevalence            []AgeGroupCount   `json:"prevalence"`
	BloodTypeCorrelation  []BloodTypeCount  `json:"bloodTypeCorrelation"`
	MedicationCorrelation []MedicationCount `json:"medicationCorrelation"`
}

type HealthStatus struct {
	Status             string `json:"status"`
	ServerTime         string `json:"server_time"`
	DatastoreAvailable bool   `json:"datastore_available"`
	DatastoreRecords   int    `json:"datastore_records"`
}
