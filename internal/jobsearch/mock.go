package jobsearch

import (
	"net/url"
	"time"

	"career-platform-backend/internal/domain"
)

// mockPostings stands in when no provider is configured or every provider
// came back empty, so the rest of the pipeline always has something to show.
func mockPostings(keywords []string) []domain.JobPosting {
	keyword := "Software"
	if len(keywords) > 0 {
		keyword = keywords[0]
	}
	encoded := url.QueryEscape(keyword)
	now := time.Now()

	return []domain.JobPosting{
		{
			Title:        "Senior " + keyword + " Engineer",
			Company:      "TechCorp Solutions",
			Location:     "Remote",
			Description:  "Looking for an experienced " + keyword + " engineer to join our team. Easy Apply available!",
			Salary:       "$100,000 - $150,000",
			ApplyURL:     "https://www.linkedin.com/jobs/search/?keywords=" + encoded,
			PostedDate:   now.Format(time.RFC3339),
			DaysAgo:      2,
			ContractType: "Full-time",
			Source:       "LinkedIn",
			EasyApply:    true,
		},
		{
			Title:        keyword + " Developer",
			Company:      "Innovation Labs",
			Location:     "San Francisco, CA",
			Description:  "Join our team as a " + keyword + " developer working on cutting-edge projects...",
			Salary:       "$90,000 - $130,000",
			ApplyURL:     "https://www.indeed.com/jobs?q=" + encoded,
			PostedDate:   now.Format(time.RFC3339),
			DaysAgo:      5,
			ContractType: "Full-time",
			Source:       "Indeed",
		},
		{
			Title:        "Junior " + keyword + " Engineer",
			Company:      "StartupXYZ",
			Location:     "New York, NY",
			Description:  "Entry-level " + keyword + " position with growth opportunities. Quick Apply now!",
			Salary:       "$70,000 - $90,000",
			ApplyURL:     "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=" + encoded,
			PostedDate:   now.Add(-24 * time.Hour).Format(time.RFC3339),
			DaysAgo:      1,
			ContractType: "Full-time",
			Source:       "Glassdoor",
			EasyApply:    true,
		},
	}
}
