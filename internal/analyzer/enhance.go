package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ActionVerbs open rewritten experience descriptions.
var ActionVerbs = []string{
	"Spearheaded", "Orchestrated", "Executed", "Implemented", "Optimized",
	"Streamlined", "Accelerated", "Revitalized", "Pioneered", "Transformation",
}

// EnhanceSummary is the local rewrite used when the intelligence service
// cannot improve a professional summary.
func EnhanceSummary(text string) string {
	if len(text) < 10 {
		return "Results-driven professional with a proven track record of success. Skilled in driving operational efficiency and delivering high-quality solutions. Committed to continuous improvement and achieving organizational goals."
	}

	enhanced := strings.TrimSpace(text)
	if !strings.Contains(enhanced, "experienced") &&
		!strings.Contains(enhanced, "professional") &&
		!strings.Contains(enhanced, "expert") {
		enhanced = "Experienced " + lowerFirst(enhanced)
	}
	if !strings.HasSuffix(enhanced, ".") {
		enhanced += "."
	}
	return enhanced + " Adept at leveraging technical expertise to solve complex business problems."
}

// EnhanceExperience rewrites an experience description around an action verb.
// The verb pick is a function of the input so repeated calls stay identical.
func EnhanceExperience(role, description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return fmt.Sprintf("Successfully executed key responsibilities as %s, contributing to overall team success and operational goals.", role)
	}

	verb := ActionVerbs[len(description)%len(ActionVerbs)]
	return fmt.Sprintf("%s key initiatives including: %s. Consistently exceeded performance metrics and fostered collaborative team environment.", verb, upperFirst(trimmed))
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
