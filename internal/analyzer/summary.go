package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// An existing summary section beats anything generated. The lazy group stops
// at a blank line or the start of the next section.
var summaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:professional summary|summary|profile|objective)[:\s]+(.*?)(?:\n\n|\n[A-Z])`),
	regexp.MustCompile(`(?is)(?:about me|overview)[:\s]+(.*?)(?:\n\n|\n[A-Z])`),
}

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*(?:years?|yrs?)`),
}

const summaryMaxLen = 500

func (a *Analyzer) summarize(ctx context.Context, text, lower string, technical []string) string {
	if a.ready() {
		if s, err := a.intel.GenerateSummary(ctx, text, technical); err == nil && s != "" {
			return s
		}
	}

	for _, pattern := range summaryPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		summary := strings.TrimSpace(m[1])
		if len(summary) > 50 {
			if len(summary) > summaryMaxLen {
				summary = summary[:summaryMaxLen]
			}
			return summary
		}
	}

	if years := yearsOfExperience(lower); years != "" {
		return fmt.Sprintf("Professional with %s years of experience in software development and technology. Skilled in multiple programming languages and frameworks with a proven track record of delivering quality solutions.", years)
	}
	return "Technology professional with experience in software development, demonstrating proficiency in various technical skills and tools."
}

func yearsOfExperience(lower string) string {
	for _, pattern := range yearsPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			return m[1]
		}
	}
	return ""
}
