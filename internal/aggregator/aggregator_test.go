package aggregator

import (
	"reflect"
	"testing"

	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/types"
)

func rec(d, age, gender, blood, test, med int, bill float64) types.PatientRecord {
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

func fixture() []types.PatientRecord {
	return []types.PatientRecord{
		rec(0, 2, 1, 0, 1, 1, 100),
		rec(0, 2, 0, 0, 1, 1, 300),
		rec(0, 1, 1, 6, 0, 2, 200),
		rec(4, 2, 1, 6, 1, 3, 1000),
		rec(4, 2, 1, 6, 1, 3, 2000),
		rec(2, 0, 0, 3, 0, 0, 50),
		rec(9, 0, 0, 3, 0, 0, 10),
	}
}

func TestBuildProfiles(t *testing.T) {
	c := Build(fixture())
	if !c.Available() || c.TotalRecords() != 7 {
		t.Fatalf("expected 7 aggregated rows, got %d", c.TotalRecords())
	}
	p, ok := c.Profile(catalog.Hypertension)
	if !ok {
		t.Fatal("missing hypertension profile")
	}
	if p.Total != 3 || p.AgeBins[catalog.Age50Plus] != 2 || p.AgeBins[catalog.Age30To49] != 1 {
		t.Fatalf("unexpected age bins %+v", p.AgeBins)
	}
	if p.Genders[catalog.Male] != 2 || p.BloodTypes[0] != 2 || p.TestResults[catalog.Positive] != 2 {
		t.Fatalf("unexpected profile %+v", p)
	}
	if p.MeanBilling != 200 {
		t.Fatalf("expected mean billing 200, got %v", p.MeanBilling)
	}
	if _, ok := c.Profile(catalog.Diabetes); ok {
		t.Fatal("diabetes has no rows and should have no profile")
	}
	if got := c.Conditions(); !reflect.DeepEqual(got, []catalog.Condition{0, 2, 4, 9}) {
		t.Fatalf("unexpected conditions %v", got)
	}
}

func TestProfileDimensionsSumToConditionTotal(t *testing.T) {
	c := Build(fixture())
	for _, cond := range c.Conditions() {
		p, _ := c.Profile(cond)
		sums := []int{sum(p.AgeBins), sum(p.Genders), sum(p.BloodTypes), sum(p.TestResults), sum(p.Medications)}
		for i, s := range sums {
			if s != p.Total {
				t.Fatalf("condition %v dimension %d sums to %d, want %d", cond, i, s, p.Total)
			}
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	records := fixture()
	a, b := Build(records), Build(records)
	for _, cond := range a.Conditions() {
		pa, _ := a.Profile(cond)
		pb, _ := b.Profile(cond)
		if !reflect.DeepEqual(pa, pb) {
			t.Fatalf("profiles differ for %v: %+v vs %+v", cond, pa, pb)
		}
	}
}

func TestBuildEmptyIsUnavailable(t *testing.T) {
	if Build(nil).Available() {
		t.Fatal("nil input must be unavailable")
	}
	var c *Correlations
	if c.Available() || c.TotalRecords() != 0 || c.Conditions() != nil {
		t.Fatal("nil correlations must behave as unavailable")
	}
	if _, ok := c.Profile(catalog.Asthma); ok {
		t.Fatal("nil correlations has no profiles")
	}
}

func TestRankByAgeBucket(t *testing.T) {
	c := Build(fixture())
	got := c.RankByAgeBucket(catalog.Age50Plus)
	want := []BucketCount{{catalog.Hypertension, 2}, {catalog.HeartDisease, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	under30 := c.RankByAgeBucket(catalog.AgeUnder30)
	if len(under30) != 2 || under30[0].Condition != catalog.Asthma {
		t.Fatalf("unexpected under-30 ranking %v", under30)
	}
}

func sum[K comparable](m map[K]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
