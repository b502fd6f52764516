package resumeparse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"career-platform-backend/internal/domain"
)

const (
	maxExperienceEntries = 5
	maxEducationEntries  = 3
	maxProjectEntries    = 3
)

// Date ranges that mark an experience entry boundary. Each alternative also
// swallows the range tail so "Jan 2020 - Present" is captured whole.
const monthYear = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s.,]+\d{4}`

var dateRangePattern = regexp.MustCompile(`(?i)` +
	monthYear + `(?:\s*(?:[-–—]|to)\s*(?:` + monthYear + `|present|current))?` +
	`|\d{1,2}/\d{4}(?:\s*(?:[-–—]|to)\s*(?:\d{1,2}/\d{4}|present|current))?` +
	`|\d{4}\s*(?:[-–—]|to)\s*(?:\d{4}|present|current)`)

// Splits "Role at Company", "Role | Company", "Role, Company" once.
var roleCompanySplit = regexp.MustCompile(`\s+(?:at|@|[-–—|,])\s+`)

// expState names what the experience parser expects next within the current
// entry.
type expState int

const (
	expAwaitingTitle   expState = iota // nothing captured yet
	expAwaitingCompany                 // role known, company still open
	expCollectingBody                  // header complete, lines are description
)

func parseExperience(text string) []domain.ExperienceEntry {
	var entries []domain.ExperienceEntry
	state := expAwaitingTitle
	current := domain.ExperienceEntry{}
	var desc []string

	flush := func() {
		if current.Role != "" || current.Company != "" {
			current.Description = strings.TrimSpace(strings.Join(desc, " "))
			entries = append(entries, current)
		}
		current = domain.ExperienceEntry{}
		desc = desc[:0]
		state = expAwaitingTitle
	}

	setTitle := func(title string) {
		parts := roleCompanySplit.Split(title, 2)
		if len(parts) == 2 {
			current.Role = strings.TrimSpace(parts[0])
			current.Company = strings.TrimSpace(parts[1])
			state = expCollectingBody
		} else {
			current.Role = title
			state = expAwaitingCompany
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush()
			continue
		}

		if loc := dateRangePattern.FindStringIndex(stripped); loc != nil {
			duration := strings.TrimSpace(stripped[loc[0]:loc[1]])
			remaining := trimEdgePunct(stripped[:loc[0]])

			if remaining == "" {
				// Standalone date line. Attach it to the open entry, or, if
				// that entry is already dated, the last buffered line was the
				// next entry's title.
				if current.Duration == "" && state != expAwaitingTitle {
					current.Duration = duration
					if current.Company == "" && current.Role != "" {
						state = expAwaitingCompany
					} else {
						state = expCollectingBody
					}
					continue
				}
				var title string
				if len(desc) > 0 {
					title = desc[len(desc)-1]
					desc = desc[:len(desc)-1]
				}
				flush()
				if title != "" {
					setTitle(title)
				} else {
					state = expCollectingBody
				}
				current.Duration = duration
				continue
			}

			// Title and date share the line. setTitle leaves the state at
			// expAwaitingCompany when only a role was found, so a short
			// follow-up line can still become the company.
			flush()
			setTitle(remaining)
			current.Duration = duration
			continue
		}

		switch state {
		case expAwaitingTitle:
			setTitle(stripped)
		case expAwaitingCompany:
			if len(strings.Fields(stripped)) <= 6 {
				current.Company = stripped
				state = expCollectingBody
			} else {
				desc = append(desc, stripped)
			}
		default:
			desc = append(desc, stripped)
		}
	}
	flush()

	if len(entries) > maxExperienceEntries {
		entries = entries[:maxExperienceEntries]
	}
	return entries
}

var educationYearPattern = regexp.MustCompile(
	`(?:19|20)\d{2}(?:\s*[-–—]\s*(?:(?:19|20)\d{2}|[Pp]resent|[Cc]urrent))?`)

var degreeKeywords = []string{
	"bachelor", "master", "b.s.", "b.a.", "m.s.", "m.a.", "ph.d", "phd",
	"b.tech", "btech", "m.tech", "mtech", "bsc", "msc", "mba", "diploma",
	"associate", "b.e.", "m.e.", "bca", "mca", "b.com", "m.com",
	"bachelor of", "master of", "doctor of",
}

var institutionKeywords = []string{"university", "college", "institute", "school", "academy"}

func parseEducation(text string) []domain.EducationEntry {
	var entries []domain.EducationEntry
	current := domain.EducationEntry{}

	flush := func() {
		if current.Degree != "" || current.Institution != "" {
			entries = append(entries, current)
		}
		current = domain.EducationEntry{}
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush()
			continue
		}

		year := educationYearPattern.FindStringIndex(stripped)
		lower := strings.ToLower(stripped)
		hasDegree := containsAny(lower, degreeKeywords)
		hasInstitution := containsAny(lower, institutionKeywords)

		switch {
		case hasDegree:
			// A fresh degree line closes the previous entry once it carries
			// more than just a degree.
			if current.Degree != "" && (current.Institution != "" || current.Year != "") {
				flush()
			}
			degreeText := stripped
			if year != nil {
				current.Year = strings.TrimSpace(stripped[year[0]:year[1]])
				degreeText = trimEdgePunct(stripped[:year[0]])
			}
			current.Degree = degreeText
		case hasInstitution:
			instText := stripped
			if year != nil && current.Year == "" {
				current.Year = strings.TrimSpace(stripped[year[0]:year[1]])
				instText = trimEdgePunct(stripped[:year[0]])
			}
			current.Institution = instText
		case year != nil && current.Year == "":
			matched := stripped[year[0]:year[1]]
			current.Year = strings.TrimSpace(matched)
			remaining := trimEdgePunct(strings.ReplaceAll(stripped, matched, ""))
			if remaining != "" && current.Degree == "" {
				current.Degree = remaining
			}
		case current.Institution == "" && current.Degree == "":
			current.Institution = stripped
		}
	}
	flush()

	if len(entries) > maxEducationEntries {
		entries = entries[:maxEducationEntries]
	}
	return entries
}

var projectTechPattern = regexp.MustCompile(`(?i)(?:technologies|tech stack|built with|tools|using)\s*[:\-]\s*(.+)`)

var projectNameLead = regexp.MustCompile(`^[\d.)\-•*]+\s*`)

const bulletRunes = "-•*–▪"

func parseProjects(text string) []domain.ProjectEntry {
	var entries []domain.ProjectEntry
	current := domain.ProjectEntry{}
	var desc []string

	flush := func() {
		if current.Name != "" {
			current.Description = strings.TrimSpace(strings.Join(desc, " "))
			entries = append(entries, current)
		}
		current = domain.ProjectEntry{}
		desc = desc[:0]
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			flush()
			continue
		}

		if m := projectTechPattern.FindStringSubmatch(stripped); m != nil && current.Name != "" {
			current.Technologies = strings.TrimSpace(m[1])
			continue
		}

		switch {
		case isBulleted(stripped) && current.Name != "":
			desc = append(desc, strings.TrimSpace(strings.TrimLeft(stripped, bulletRunes+" ")))
		case current.Name == "":
			current.Name = strings.TrimSpace(projectNameLead.ReplaceAllString(stripped, ""))
		default:
			desc = append(desc, stripped)
		}
	}
	flush()

	if len(entries) > maxProjectEntries {
		entries = entries[:maxProjectEntries]
	}
	return entries
}

func isBulleted(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ContainsRune(bulletRunes, r)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// trimEdgePunct sheds trailing separators left over after cutting a date or
// year out of a line.
func trimEdgePunct(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "|,-–— ")
	return strings.TrimSpace(s)
}
