// Package resumeparse recovers structured resume details from plain text.
// It is the deterministic fallback used when the intelligence service cannot
// extract details, so it has to work with nothing but headers, dates, and
// line shapes.
package resumeparse

import (
	"regexp"
	"strings"

	"career-platform-backend/internal/domain"
)

const summaryLimit = 500

// Recognized section headers. A line is a header only when its trimmed,
// lowercased text equals one of these exactly (after shedding markdown
// hashes and trailing colons or dashes).
var sectionHeaders = []string{
	"professional summary", "summary", "profile", "objective", "about me", "overview",
	"work experience", "experience", "employment history", "professional experience", "work history",
	"education", "academic background", "qualifications",
	"projects", "personal projects", "academic projects", "key projects",
	"skills", "technical skills", "core competencies",
	"certifications", "awards", "publications", "references", "interests", "hobbies",
	"achievements", "volunteer", "languages",
}

var headerPattern = compileHeaderPattern()

func compileHeaderPattern() *regexp.Regexp {
	quoted := make([]string, len(sectionHeaders))
	for i, h := range sectionHeaders {
		quoted[i] = regexp.QuoteMeta(h)
	}
	return regexp.MustCompile(`(?i)^\s*(?:#+\s*)?(` + strings.Join(quoted, "|") + `)\s*[:\-]?\s*$`)
}

// Ordered lookup lists: the first synonym found in the split sections wins.
var (
	summaryKeys    = []string{"professional summary", "summary", "profile", "objective", "about me", "overview"}
	experienceKeys = []string{"work experience", "experience", "employment history", "professional experience", "work history"}
	educationKeys  = []string{"education", "academic background", "qualifications"}
	projectKeys    = []string{"projects", "personal projects", "academic projects", "key projects"}
)

// Parse splits resume text into sections and recovers contact details,
// summary, experience, education, and projects. Missing pieces stay empty.
func Parse(text string) *domain.StructuredResume {
	result := &domain.StructuredResume{
		Contact:    parseContact(text),
		Experience: []domain.ExperienceEntry{},
		Education:  []domain.EducationEntry{},
		Projects:   []domain.ProjectEntry{},
	}

	sections := splitSections(text)

	if body := firstSection(sections, summaryKeys); body != "" {
		result.Summary = truncate(body, summaryLimit)
	}
	if body := firstSection(sections, experienceKeys); body != "" {
		result.Experience = parseExperience(body)
	}
	if body := firstSection(sections, educationKeys); body != "" {
		result.Education = parseEducation(body)
	}
	if body := firstSection(sections, projectKeys); body != "" {
		result.Projects = parseProjects(body)
	}

	return result
}

// splitState tracks where the section splitter is: before the first header,
// or inside a named section collecting its body.
type splitState int

const (
	scanningForHeader splitState = iota
	inSection
)

// splitSections walks the text line by line. Content before the first header
// is dropped; a repeated header name overwrites the earlier body.
func splitSections(text string) map[string]string {
	sections := make(map[string]string)
	state := scanningForHeader
	current := ""
	var content []string

	for _, line := range strings.Split(text, "\n") {
		stripped := normalizeHeaderLine(line)
		if m := headerPattern.FindStringSubmatch(stripped); m != nil {
			if state == inSection {
				sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
			}
			current = strings.TrimSpace(strings.Trim(strings.ToLower(stripped), "#"))
			content = content[:0]
			state = inSection
			continue
		}
		if state == inSection {
			content = append(content, line)
		}
	}
	if state == inSection {
		sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
	}
	return sections
}

func normalizeHeaderLine(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimRight(s, ":")
	s = strings.TrimRight(s, "-")
	return strings.TrimSpace(s)
}

func firstSection(sections map[string]string, keys []string) string {
	for _, key := range keys {
		if body, ok := sections[key]; ok && body != "" {
			return body
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
