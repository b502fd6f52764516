package jobsearch

import (
	"fmt"
	"strconv"
	"strings"
)

// rowsFrom unwraps the shapes the boards respond with: a bare array, or an
// object carrying the array under "data" or "jobs". The bool reports whether
// the payload had one of those shapes at all, which matters to callers that
// treat a well-formed empty answer differently from garbage.
func rowsFrom(payload any) ([]map[string]any, bool) {
	switch v := payload.(type) {
	case []any:
		return castRows(v), true
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return castRows(data), true
		}
		if jobs, ok := v["jobs"].([]any); ok {
			return castRows(jobs), true
		}
	}
	return nil, false
}

func castRows(items []any) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if row, ok := item.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// field returns the first non-empty string found under the given keys. The
// boards are inconsistent about naming, so every lookup carries its aliases.
func field(row map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := row[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

type sourceRule struct {
	fragment string
	name     string
}

// sourceFromURL labels a posting with the board its apply URL points at.
func sourceFromURL(rawURL, fallback string, rules []sourceRule) string {
	lower := strings.ToLower(rawURL)
	for _, rule := range rules {
		if strings.Contains(lower, rule.fragment) {
			return rule.name
		}
	}
	return fallback
}

// formatSalary renders an annual range like "$100,000 - $150,000".
func formatSalary(minSalary, maxSalary float64) string {
	if minSalary > 0 && maxSalary > 0 {
		return fmt.Sprintf("$%s - $%s", thousands(int(minSalary)), thousands(int(maxSalary)))
	}
	return "Not specified"
}

func thousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
