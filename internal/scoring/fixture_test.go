package scoring

import (
	"clinical-risk-go/internal/aggregator"
	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/types"
)

func row(d, age, gender, blood, test int) types.PatientRecord {
	return types.PatientRecord{
		Disease:    catalog.Condition(d),
		AgeBin:     catalog.AgeBucket(age),
		Gender:     catalog.Gender(gender),
		BloodType:  catalog.BloodType(blood),
		TestResult: catalog.TestResult(test),
	}
}

// testCorrelations has no Arthritis rows and concentrates Heart Disease in the 50+ bucket.
func testCorrelations() *aggregator.Correlations {
	return aggregator.Build([]types.PatientRecord{
		row(0, 2, 1, 0, 1),
		row(0, 2, 1, 0, 1),
		row(0, 1, 0, 6, 0),
		row(1, 0, 0, 2, 0),
		row(2, 1, 1, 0, 1),
		row(2, 1, 0, 3, 0),
		row(4, 2, 1, 0, 1),
		row(4, 2, 1, 0, 1),
		row(4, 2, 1, 0, 1),
		row(4, 2, 1, 0, 1),
	})
}

func ptr[T any](v T) *T { return &v }
