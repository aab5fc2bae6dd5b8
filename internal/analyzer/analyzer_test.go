package analyzer

import (
	"errors"
	"testing"
	"time"

	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/jitter"
	"clinical-risk-go/internal/ranker"
	"clinical-risk-go/internal/types"
)

var fixedNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func record(d, age, gender, blood, test, med int, bill float64) types.PatientRecord {
	return types.PatientRecord{
		Disease:       catalog.Condition(d),
		AgeBin:        catalog.AgeBucket(age),
		Gender:        catalog.Gender(gender),
		BloodType:     catalog.BloodType(blood),
		TestResult:    catalog.TestResult(test),
		Medication:    catalog.Medication(med),
		BillingAmount: bill,
	}
}

func fixtureRecords() []types.PatientRecord {
	return []types.PatientRecord{
		record(0, 2, 1, 0, 1, 1, 100),
		record(0, 2, 1, 0, 1, 1, 200),
		record(0, 1, 0, 6, 0, 2, 300),
		record(1, 0, 0, 2, 0, 0, 50),
		record(2, 1, 1, 0, 1, 3, 10),
		record(2, 1, 0, 3, 0, 3, 20),
		record(4, 2, 1, 0, 1, 4, 1000),
		record(4, 2, 1, 0, 1, 4, 1000),
		record(4, 2, 1, 0, 1, 4, 1000),
		record(4, 2, 1, 0, 1, 2, 1001),
	}
}

func newAnalyzer(corr *aggregator.Correlations) *Analyzer {
	return New(corr, WithJitter(jitter.Zero()), WithClock(func() time.Time { return fixedNow }))
}

func intPtr(v int) *int { return &v }

func TestAnalyzeReport(t *testing.T) {
	a := newAnalyzer(aggregator.Build(fixtureRecords()))
	res, err := a.AnalyzeReport(types.ReportInput{
		Age:        intPtr(45),
		Gender:     intPtr(1),
		BloodType:  intPtr(0),
		TestResult: intPtr(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.PotentialConditions) != 3 || res.PotentialConditions[0].Name != "Heart Disease" {
		t.Fatalf("unexpected conditions %+v", res.PotentialConditions)
	}
	if len(res.MedicalKnowledge) != 2 || res.MedicalKnowledge[0].ID != "HD-001" {
		t.Fatalf("expected knowledge for the top two, got %+v", res.MedicalKnowledge)
	}
	if len(res.FollowUpRecommendations) != 5 {
		t.Fatalf("unexpected follow ups %v", res.FollowUpRecommendations)
	}
	// 95, 81 and 73 are above the warning line; Diabetes and Arthritis sit at 50
	if res.HealthScore != 15.3 {
		t.Fatalf("expected health score over all five conditions, got %v", res.HealthScore)
	}
	if len(res.WarningFlags) != 3 || res.WarningFlags[0].Priority != types.PriorityHigh {
		t.Fatalf("unexpected flags %+v", res.WarningFlags)
	}
	if res.Timestamp != "2025-06-01T09:30:00Z" || res.ID == "" {
		t.Fatalf("unexpected id/timestamp %q %q", res.ID, res.Timestamp)
	}
}

func TestAnalyzeReportDefaults(t *testing.T) {
	a := newAnalyzer(aggregator.Build(fixtureRecords()))
	res, err := a.AnalyzeReport(types.ReportInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// age 30 and female: Hypertension matches the 30-50 bucket once and Female once
	for _, c := range res.PotentialConditions {
		for _, f := range c.Factors {
			if f == "Gender: Male" {
				t.Fatalf("default gender must be female, got factor %q on %s", f, c.Name)
			}
		}
	}
	if len(res.PotentialConditions) != 3 {
		t.Fatalf("expected three conditions, got %d", len(res.PotentialConditions))
	}
}

func TestAnalyzeReportErrors(t *testing.T) {
	_, err := newAnalyzer(nil).AnalyzeReport(types.ReportInput{Age: intPtr(40)})
	if !errors.Is(err, types.ErrDatasetUnavailable) {
		t.Fatalf("expected dataset unavailable, got %v", err)
	}
	_, err = newAnalyzer(aggregator.Build(fixtureRecords())).AnalyzeReport(types.ReportInput{Age: intPtr(-1)})
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestAnalyzeSymptoms(t *testing.T) {
	a := newAnalyzer(aggregator.Build(fixtureRecords()))
	res, err := a.AnalyzeSymptoms("I am 45 years old and have chest pain", types.UserContext{
		Age:                  intPtr(62),
		Region:               "Mumbai",
		HasChronicConditions: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PotentialConditions[0].Name != "Heart Disease" {
		t.Fatalf("expected Heart Disease first, got %+v", res.PotentialConditions)
	}
	found := false
	for _, e := range res.MedicalKnowledge {
		if e.ID == "HD-001" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected heart disease knowledge, got %+v", res.MedicalKnowledge)
	}
	if len(res.FollowUpRecommendations) != 5 {
		t.Fatalf("unexpected follow ups %v", res.FollowUpRecommendations)
	}
	if res.HealthScore != ranker.HealthScore(res.PotentialConditions) {
		t.Fatalf("health score should cover the listed conditions, got %v", res.HealthScore)
	}
	want := types.UserRiskFactors{Age: types.RiskHigh, Region: types.RiskMedium, History: types.RiskHigh}
	if res.UserRiskFactors != want {
		t.Fatalf("expected %+v, got %+v", want, res.UserRiskFactors)
	}
}

func TestAnalyzeSymptomsDegradedMode(t *testing.T) {
	res, err := newAnalyzer(nil).AnalyzeSymptoms("runny nose and sneezing", types.UserContext{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.PotentialConditions) == 0 {
		t.Fatal("keyword scoring must still produce results")
	}
	low := types.UserRiskFactors{Age: types.RiskLow, Region: types.RiskLow, History: types.RiskLow}
	if res.UserRiskFactors != low {
		t.Fatalf("default context should be low risk, got %+v", res.UserRiskFactors)
	}
}

func TestAnalyzeSymptomsRejectsEmptyText(t *testing.T) {
	a := newAnalyzer(nil)
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := a.AnalyzeSymptoms(text, types.UserContext{}); !errors.Is(err, types.ErrInvalidInput) {
			t.Fatalf("text %q: expected invalid input, got %v", text, err)
		}
	}
}

func TestRiskFactors(t *testing.T) {
	cases := []struct {
		age     int
		region  string
		chronic bool
		want    types.UserRiskFactors
	}{
		{30, "", false, types.UserRiskFactors{Age: types.RiskLow, Region: types.RiskLow, History: types.RiskLow}},
		{45, "Delhi", false, types.UserRiskFactors{Age: types.RiskLow, Region: types.RiskMedium, History: types.RiskLow}},
		{46, "delhi", false, types.UserRiskFactors{Age: types.RiskMedium, Region: types.RiskLow, History: types.RiskLow}},
		{60, "Bangalore", true, types.UserRiskFactors{Age: types.RiskMedium, Region: types.RiskMedium, History: types.RiskHigh}},
		{61, "Pune", false, types.UserRiskFactors{Age: types.RiskHigh, Region: types.RiskLow, History: types.RiskLow}},
	}
	for _, tc := range cases {
		if got := RiskFactors(tc.age, tc.region, tc.chronic); got != tc.want {
			t.Fatalf("RiskFactors(%d, %q, %v) = %+v, want %+v", tc.age, tc.region, tc.chronic, got, tc.want)
		}
	}
}

func TestDiseaseInfo(t *testing.T) {
	info, err := newAnalyzer(aggregator.Build(fixtureRecords())).DiseaseInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info) != 5 {
		t.Fatalf("expected one entry per known condition, got %d", len(info))
	}
	h := info[0]
	if h.Name != "Hypertension" || h.TotalRecords != 3 || h.MeanBillingAmount != 200 {
		t.Fatalf("unexpected hypertension info %+v", h)
	}
	if len(h.Prevalence) != 2 || h.Prevalence[0].AgeGroup != "30-50" || h.Prevalence[1].Count != 2 {
		t.Fatalf("unexpected prevalence %+v", h.Prevalence)
	}
	if h.BloodTypeCorrelation[0].BloodType != "A+" || h.BloodTypeCorrelation[0].Count != 2 {
		t.Fatalf("unexpected blood type correlation %+v", h.BloodTypeCorrelation)
	}
	hd := info[4]
	if hd.MeanBillingAmount != 1000.25 || hd.MedicationCorrelation[0].Medication != "Medication 4" {
		t.Fatalf("unexpected heart disease info %+v", hd)
	}
	arthritis := info[3]
	if arthritis.TotalRecords != 0 || arthritis.Prevalence == nil || len(arthritis.Prevalence) != 0 {
		t.Fatalf("conditions without rows should be empty, got %+v", arthritis)
	}
}

func TestDiseaseInfoUnavailable(t *testing.T) {
	if _, err := newAnalyzer(nil).DiseaseInfo(); !errors.Is(err, types.ErrDatasetUnavailable) {
		t.Fatalf("expected dataset unavailable, got %v", err)
	}
}

func TestMedicalKnowledgeAndHealth(t *testing.T) {
	a := newAnalyzer(aggregator.Build(fixtureRecords()))
	if got := a.MedicalKnowledge(""); len(got) != 5 {
		t.Fatalf("expected full catalog, got %d", len(got))
	}
	if got := a.MedicalKnowledge("HEART"); len(got) != 1 || got[0].ID != "HD-001" {
		t.Fatalf("unexpected search result %+v", got)
	}
	h := a.Health()
	if h.Status != "healthy" || !h.DatastoreAvailable || h.DatastoreRecords != 10 || h.ServerTime != "2025-06-01T09:30:00Z" {
		t.Fatalf("unexpected health %+v", h)
	}
	if newAnalyzer(nil).Health().DatastoreAvailable {
		t.Fatal("nil aggregate must report unavailable")
	}
}

func TestDiseaseInfoPrevalenceSumsToTotal(t *testing.T) {
	info, err := newAnalyzer(aggregator.Build(fixtureRecords())).DiseaseInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range info {
		n := 0
		for _, p := range d.Prevalence {
			n += p.Count
		}
		if n != d.TotalRecords {
			t.Fatalf("%s: prevalence sums to %d, want %d", d.Name, n, d.TotalRecords)
		}
	}
}
