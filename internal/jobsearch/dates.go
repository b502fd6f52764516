package jobsearch

import (
	"time"

	"career-platform-backend/internal/domain"
)

// Posting date layouts seen across the boards, most specific first. The
// second entry covers ISO timestamps without a zone suffix.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// daysAgo converts a posting date into whole days before now. Empty or
// unparseable dates map to domain.DaysUnknown so they sort behind every
// dated posting.
func daysAgo(dateStr string) int {
	if dateStr == "" {
		return domain.DaysUnknown
	}

	var posted time.Time
	var err error
	for _, layout := range dateLayouts {
		posted, err = time.Parse(layout, dateStr)
		if err == nil {
			break
		}
	}
	if err != nil {
		return domain.DaysUnknown
	}

	days := int(time.Since(posted).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
