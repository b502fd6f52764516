package intelligence

import (
	"strings"

	"career-platform-backend/internal/domain"
)

const (
	strengthsCap   = 5
	weaknessesCap  = 4
	suggestionsCap = 6
)

// stripFences removes a leading/trailing markdown code fence. Models add one
// even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseStrengthsWeaknesses splits a sectioned review into its two bullet
// lists. A line naming a section switches the target list and is never kept
// as an item, even when it is itself bulleted.
func parseStrengthsWeaknesses(raw string) *domain.StrengthsWeaknesses {
	out := &domain.StrengthsWeaknesses{}

	var target *[]string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		if strings.Contains(upper, "STRENGTH") {
			target = &out.Strengths
			continue
		}
		if strings.Contains(upper, "WEAKNESS") || strings.Contains(upper, "IMPROVEMENT") || strings.Contains(upper, "AREA") {
			target = &out.Weaknesses
			continue
		}

		if target == nil || !isBullet(line, "-", "•") {
			continue
		}
		item := strings.TrimSpace(strings.TrimLeft(line, "-•"))
		if len(item) > 10 {
			*target = append(*target, item)
		}
	}

	out.Strengths = capStrings(out.Strengths, strengthsCap)
	out.Weaknesses = capStrings(out.Weaknesses, weaknessesCap)
	return out
}

// parseSuggestions keeps substantial bullet lines and discards everything
// else the model wrapped around them.
func parseSuggestions(raw string) []string {
	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !isBullet(line, "-", "•", "*") {
			continue
		}
		item := strings.TrimSpace(strings.TrimLeft(line, "-•*"))
		if len(item) > 15 {
			suggestions = append(suggestions, item)
		}
	}
	return capStrings(suggestions, suggestionsCap)
}

func isBullet(line string, markers ...string) bool {
	for _, marker := range markers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
