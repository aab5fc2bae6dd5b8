package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is the static clinical reference for one condition.
type Entry struct {
	Key           string   `yaml:"key" json:"-"`
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description"`
	RiskFactors   []string `yaml:"risk_factors" json:"risk_factors"`
	Complications []string `yaml:"complications" json:"complications"`
	Treatments    []string `yaml:"treatments" json:"treatments"`
	Prevention    []string `yaml:"prevention" json:"prevention"`
}

// Knowledge is an ordered, read-only set of entries. Build it once and share it.
type Knowledge struct {
	entries []Entry
	byKey   map[string]int
}

// NewKnowledge indexes entries by key. Entries without a key get one derived from the name.
func NewKnowledge(entries []Entry) (*Knowledge, error) {
	k := &Knowledge{byKey: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			e.Key = KeyFor(e.Name)
		}
		if e.Key == "" {
			return nil, fmt.Errorf("knowledge entry %q has no key or name", e.ID)
		}
		if _, dup := k.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate knowledge key %q", e.Key)
		}
		k.byKey[e.Key] = len(k.entries)
		k.entries = append(k.entries, e)
	}
	return k, nil
}

// KeyFor converts a canonical condition name to its catalog key.
func KeyFor(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Lookup is an exact key match.
func (k *Knowledge) Lookup(key string) (Entry, bool) {
	i, ok := k.byKey[key]
	if !ok {
		return Entry{}, false
	}
	return k.entries[i], true
}

// Entries returns the full catalog in its declared order.
func (k *Knowledge) Entries() []Entry {
	out := make([]Entry, len(k.entries))
	copy(out, k.entries)
	return out
}

// Search filters entries whose key, name or description contain query (case-insensitive).
// An empty query returns everything.
func (k *Knowledge) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return k.Entries()
	}
	out := []Entry{}
	for _, e := range k.entries {
		if strings.Contains(e.Key, q) ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

type knowledgeFile struct {
	Entries []Entry `yaml:"entries"`
}

// LoadKnowledge reads a yaml catalog. An empty path yields the built-in table.
func LoadKnowledge(path string) (*Knowledge, error) {
	if path == "" {
		return DefaultKnowledge(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read knowledge catalog: %w", err)
	}
	var f knowledgeFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse knowledge catalog: %w", err)
	}
	if len(f.Entries) == 0 {
		return nil, fmt.Errorf("knowledge catalog empty")
	}
	return NewKnowledge(f.Entries)
}

// DefaultKnowledge is the catalog shipped with the engine.
func DefaultKnowledge() *Knowledge {
	k, err := NewKnowledge(defaultEntries)
	if err != nil {
		panic(err)
	}
	return k
}

var defaultEntries = []Entry{
	{
		Key:           "hypertension",
		ID:            "HTN-001",
		Name:          "Hypertension",
		Description:   "A chronic condition in which the blood pressure in the arteries is elevated.",
		RiskFactors:   []string{"Age over 50", "Family history", "High sodium diet", "Obesity", "Sedentary lifestyle"},
		Complications: []string{"Heart disease", "Stroke", "Kidney damage", "Vision loss"},
		Treatments:    []string{"Lifestyle modifications", "Diuretics", "ACE inhibitors", "Beta blockers"},
		Prevention:    []string{"Regular exercise", "Healthy diet", "Sodium restriction", "Limiting alcohol", "Not smoking"},
	},
	{
		Key:           "diabetes",
		ID:            "DM-001",
		Name:          "Diabetes Mellitus",
		Description:   "A metabolic disorder characterized by high blood sugar over a prolonged period.",
		RiskFactors:   []string{"Family history", "Obesity", "Physical inactivity", "Age over 45", "Gestational diabetes"},
		Complications: []string{"Heart disease", "Kidney disease", "Neuropathy", "Retinopathy"},
		Treatments:    []string{"Insulin therapy", "Oral medications", "Diet management", "Regular exercise"},
		Prevention:    []string{"Weight management", "Regular physical activity", "Balanced diet"},
	},
	{
		Key:           "asthma",
		ID:            "ASTH-001",
		Name:          "Asthma",
		Description:   "A chronic condition affecting the airways in the lungs, causing breathing difficulty.",
		RiskFactors:   []string{"Allergies", "Family history", "Respiratory infections", "Air pollution", "Smoking"},
		Complications: []string{"Sleep disturbances", "Permanent airway remodeling", "Work/school absenteeism"},
		Treatments:    []string{"Bronchodilators", "Inhaled corticosteroids", "Leukotriene modifiers", "Immunotherapy"},
		Prevention:    []string{"Avoiding triggers", "Regular medication", "Allergy management"},
	},
	{
		Key:           "arthritis",
		ID:            "ARTH-001",
		Name:          "Arthritis",
		Description:   "Inflammation of one or more joints, causing pain and stiffness.",
		RiskFactors:   []string{"Age over 65", "Female gender", "Previous joint injury", "Obesity", "Family history"},
		Complications: []string{"Joint deformity", "Reduced mobility", "Chronic pain"},
		Treatments:    []string{"Physical therapy", "Anti-inflammatory medications", "Joint replacement", "Weight management"},
		Prevention:    []string{"Joint-friendly exercise", "Maintaining healthy weight", "Avoiding joint injuries"},
	},
	{
		Key:           "heart_disease",
		ID:            "HD-001",
		Name:          "Heart Disease",
		Description:   "A range of conditions affecting heart function and structure.",
		RiskFactors:   []string{"Hypertension", "High cholesterol", "Smoking", "Diabetes", "Family history", "Age"},
		Complications: []string{"Heart failure", "Arrhythmias", "Heart attack", "Sudden cardiac death"},
		Treatments:    []string{"Medications", "Lifestyle changes", "Surgical procedures", "Cardiac rehabilitation"},
		Prevention:    []string{"Regular exercise", "Heart-healthy diet", "Not smoking", "Stress management"},
	},
}
