package catalog

// KeywordSet is the curated keyword list for one free-text condition.
type KeywordSet struct {
	Condition string
	Keywords  []string
}

// Association links a symptom phrase directly to a dataset condition.
type Association struct {
	Phrase    string
	Condition Condition
}

// Vocabulary holds the free-text matching tables. Order is significant: it decides
// which association labels a condition first.
type Vocabulary struct {
	Keywords     []KeywordSet
	Associations []Association
}

// DefaultVocabulary is the shipped keyword table.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Keywords: []KeywordSet{
			{Condition: "Cold", Keywords: []string{"cough", "sneeze", "runny nose", "sore throat", "congestion"}},
			{Condition: "Flu", Keywords: []string{"fever", "body ache", "fatigue", "headache", "chills"}},
			{Condition: "Covid", Keywords: []string{"fever", "cough", "shortness of breath", "loss of taste", "loss of smell"}},
			{Condition: "Allergies", Keywords: []string{"sneezing", "itchy eyes", "runny nose", "congestion"}},
			{Condition: "Migraine", Keywords: []string{"headache", "nausea", "sensitivity to light", "aura"}},
			{Condition: "Food Poisoning", Keywords: []string{"nausea", "vomiting", "diarrhea", "stomach cramps"}},
			{Condition: "Anxiety", Keywords: []string{"worry", "restlessness", "rapid heartbeat", "trouble sleeping"}},
		},
		Associations: []Association{
			{Phrase: "pressure", Condition: Hypertension},
			{Phrase: "blood pressure", Condition: Hypertension},
			{Phrase: "sugar", Condition: Diabetes},
			{Phrase: "thirst", Condition: Diabetes},
			{Phrase: "breathing", Condition: Asthma},
			{Phrase: "wheezing", Condition: Asthma},
			{Phrase: "joint pain", Condition: Arthritis},
			{Phrase: "chest pain", Condition: HeartDisease},
			{Phrase: "palpitations", Condition: HeartDisease},
		},
	}
}
