package catalog

// universalFollowUps open every recommendation list.
var universalFollowUps = []string{
	"Schedule a follow-up appointment in 3 months",
	"Regular monitoring of vital signs",
}

var conditionFollowUps = map[string][]string{
	"Hypertension": {
		"Blood pressure monitoring at home",
		"Sodium-restricted diet",
		"Consider consulting with a cardiologist",
	},
	"Diabetes": {
		"Regular blood glucose monitoring",
		"Dietary consultation",
		"Consider consulting with an endocrinologist",
	},
	"Asthma": {
		"Peak flow monitoring",
		"Identify and avoid triggers",
		"Consider consulting with a pulmonologist",
	},
	"Arthritis": {
		"Physical therapy assessment",
		"Pain management strategy",
		"Consider consulting with a rheumatologist",
	},
	"Heart Disease": {
		"Lipid profile and cardiac enzymes",
		"Stress test evaluation",
		"Immediate consultation with a cardiologist",
	},
}

// FollowUpsFor returns the universal items followed by the set for the exact condition name.
func FollowUpsFor(name string) []string {
	extra := conditionFollowUps[name]
	out := make([]string, 0, len(universalFollowUps)+len(extra))
	out = append(out, universalFollowUps...)
	return append(out, extra...)
}
