package resumeparse

import (
	"regexp"
	"strings"

	"career-platform-backend/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[\s-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

	locationLabelPattern = regexp.MustCompile(`(?i)(?:location|address|city)\s*[:\-]\s*(.+)`)
	// City, ST or City, ST 12345
	cityStatePattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s[A-Z][a-z]+)?,\s*[A-Z]{2}(?:\s+\d{5})?`)
	// City, Country
	cityCountryPattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s[A-Z][a-z]+)?,\s*[A-Z][a-z]+`)

	nameRejectPattern = regexp.MustCompile(`^[\d+()]`)
)

const maxLocationLen = 60

func parseContact(text string) domain.ContactInfo {
	contact := domain.ContactInfo{}

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		contact.Phone = strings.TrimSpace(m)
	}
	contact.Name = findName(text)
	contact.Location = findLocation(text)
	return contact
}

// findName takes the first of the top five non-empty lines that looks like a
// person's name: short, no email, no URL, not starting with a digit or phone
// punctuation.
func findName(text string) string {
	var clean []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			clean = append(clean, s)
			if len(clean) == 5 {
				break
			}
		}
	}

	for _, line := range clean {
		if strings.Contains(line, "@") ||
			strings.HasPrefix(line, "http") ||
			nameRejectPattern.MatchString(line) ||
			len(line) >= 60 ||
			len(strings.Fields(line)) > 5 {
			continue
		}
		return line
	}
	return ""
}

func findLocation(text string) string {
	if m := locationLabelPattern.FindStringSubmatch(text); m != nil {
		if loc := strings.TrimSpace(m[1]); len(loc) < maxLocationLen {
			return loc
		}
	}
	if m := cityStatePattern.FindString(text); m != "" && len(m) < maxLocationLen {
		return strings.TrimSpace(m)
	}
	if m := cityCountryPattern.FindString(text); m != "" && len(m) < maxLocationLen {
		return strings.TrimSpace(m)
	}
	return ""
}
