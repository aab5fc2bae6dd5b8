package catalog

import "fmt"

// Condition is a disease code as stored in the patient dataset.
type Condition int

const (
	Hypertension Condition = iota
	Diabetes
	Asthma
	Arthritis
	HeartDisease
)

var conditionNames = [...]string{
	Hypertension: "Hypertension",
	Diabetes:     "Diabetes",
	Asthma:       "Asthma",
	Arthritis:    "Arthritis",
	HeartDisease: "Heart Disease",
}

// Conditions lists every tracked condition in code order.
func Conditions() []Condition {
	return []Condition{Hypertension, Diabetes, Asthma, Arthritis, HeartDisease}
}

func (c Condition) Known() bool { return c >= 0 && int(c) < len(conditionNames) }

func (c Condition) String() string {
	if !c.Known() {
		return fmt.Sprintf("Unknown Disease %d", int(c))
	}
	return conditionNames[c]
}

// AgeBucket discretizes patient age: <30, 30-49, 50+.
type AgeBucket int

const (
	AgeUnder30 AgeBucket = iota
	Age30To49
	Age50Plus
)

var ageBucketLabels = [...]string{"0-30", "30-50", "50+"}

// BucketForAge maps an age in years to its bucket.
func BucketForAge(age int) AgeBucket {
	switch {
	case age < 30:
		return AgeUnder30
	case age < 50:
		return Age30To49
	default:
		return Age50Plus
	}
}

func (b AgeBucket) String() string {
	if b < 0 || int(b) >= len(ageBucketLabels) {
		return fmt.Sprintf("Unknown Age Group %d", int(b))
	}
	return ageBucketLabels[b]
}

type Gender int

const (
	Female Gender = iota
	Male
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "Female"
	case Male:
		return "Male"
	}
	return fmt.Sprintf("Unknown Gender %d", int(g))
}

type BloodType int

var bloodTypeLabels = [...]string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func (b BloodType) String() string {
	if b < 0 || int(b) >= len(bloodTypeLabels) {
		return fmt.Sprintf("Unknown Blood Type %d", int(b))
	}
	return bloodTypeLabels[b]
}

type TestResult int

const (
	Negative TestResult = iota
	Positive
)

func (t TestResult) String() string {
	switch t {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	}
	return fmt.Sprintf("Unknown Test Result %d", int(t))
}

// Medication codes carry no display table in the dataset.
type Medication int

func (m Medication) String() string {
	return fmt.Sprintf("Medication %d", int(m))
}
