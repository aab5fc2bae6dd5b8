package scoring

import (
	"strconv"
	"strings"
)

// ExtractAge looks for an integer immediately before "age", "years old" or
// "year old". Anything that does not parse is treated as no age at all.
func ExtractAge(text string) (int, bool) {
	tokens := strings.Fields(strings.ToLower(text))
	for i := 1; i < len(tokens); i++ {
		if !ageMarkerAt(tokens, i) {
			continue
		}
		if age, err := strconv.Atoi(trimPunct(tokens[i-1])); err == nil && age >= 0 {
			return age, true
		}
	}
	return 0, false
}

func ageMarkerAt(tokens []string, i int) bool {
	if trimPunct(tokens[i]) == "age" {
		return true
	}
	if i+1 >= len(tokens) {
		return false
	}
	first := tokens[i]
	return (first == "years" || first == "year") && trimPunct(tokens[i+1]) == "old"
}

func trimPunct(s string) string {
	return strings.Trim(s, ".,;:!?()\"'")
}
