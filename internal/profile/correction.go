package profile

import "regexp"

// commonCorrections maps frequent misspellings to their corrected forms.
// This is a literal lookup table, not a spell checker.
var commonCorrections = []struct {
	wrong string
	right string
}{
	{"люлблю", "люблю"},
	{"люблбю", "люблю"},
	{"научные фантастики", "научную фантастику"},
}

type correctionRule struct {
	re    *regexp.Regexp
	right string
}

var correctionRules = buildCorrectionRules()

func buildCorrectionRules() []correctionRule {
	rules := make([]correctionRule, 0, len(commonCorrections))
	for _, c := range commonCorrections {
		// \b does not work for Cyrillic in RE2, so word boundaries are
		// expressed as non-letter context captured and re-emitted.
		re := regexp.MustCompile(`(?i)(^|[^\p{L}])` + regexp.QuoteMeta(c.wrong) + `($|[^\p{L}])`)
		rules = append(rules, correctionRule{re: re, right: c.right})
	}
	return rules
}

// ApplyCorrection substitutes known misspellings on word boundaries, leaving
// all other tokens unchanged.
func ApplyCorrection(text string) string {
	for _, rule := range correctionRules {
		text = rule.re.ReplaceAllString(text, "${1}"+rule.right+"${2}")
	}
	return text
}
