package skills

import (
	"regexp"
	"sort"
	"strings"
)

var wordPatterns = compileWordPatterns()

func compileWordPatterns() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(Technical)+len(Soft))
	for _, term := range Technical {
		m[term] = wordPattern(term)
	}
	for _, term := range Soft {
		m[term] = wordPattern(term)
	}
	return m
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}

// Normalize lowercases and trims a skill name for comparison.
func Normalize(skill string) string {
	return strings.TrimSpace(strings.ToLower(skill))
}

// MatchesWord reports whether term occurs in text as a whole word, so "java"
// never fires inside "javascript". Text must already be lowercased.
func MatchesWord(text, term string) bool {
	re, ok := wordPatterns[term]
	if !ok {
		re = wordPattern(term)
	}
	return re.MatchString(text)
}

// ExtractTechnical returns the technical dictionary terms present in text as
// whole words, sorted alphabetically.
func ExtractTechnical(text string) []string {
	return extract(strings.ToLower(text), Technical)
}

// ExtractSoft returns the soft-skill dictionary terms present in text as
// whole words, sorted alphabetically.
func ExtractSoft(text string) []string {
	return extract(strings.ToLower(text), Soft)
}

func extract(lower string, dict []string) []string {
	var found []string
	for _, term := range dict {
		if MatchesWord(lower, term) {
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return found
}

// FromDescription scans a job description for technical terms by substring
// containment. Postings mash skills into prose and punctuation, so this is
// intentionally looser than resume extraction. Returns at most max terms,
// in dictionary order.
func FromDescription(description string, max int) []string {
	lower := strings.ToLower(description)
	found := make([]string, 0, max)
	for _, term := range Technical {
		if strings.Contains(lower, term) {
			found = append(found, term)
			if len(found) == max {
				break
			}
		}
	}
	return found
}
