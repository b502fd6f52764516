package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"career-platform-backend/internal/domain"
)

const (
	activeJobsTimeout  = 15 * time.Second
	activeJobsMaxFetch = 500
	activeJobsDescCap  = 600
)

// ActiveJobsConfig configures the Active Jobs DB RapidAPI board, which
// mirrors ATS postings refreshed daily.
type ActiveJobsConfig struct {
	APIKey  string
	Host    string
	BaseURL string
}

type ActiveJobs struct {
	cfg      ActiveJobsConfig
	endpoint string
	client   *http.Client
}

func NewActiveJobs(cfg ActiveJobsConfig) *ActiveJobs {
	base := cfg.BaseURL
	if base == "" && cfg.Host != "" {
		base = "https://" + cfg.Host
	}
	return &ActiveJobs{
		cfg:      cfg,
		endpoint: base + "/modified-ats-24h",
		client:   &http.Client{Timeout: activeJobsTimeout},
	}
}

func (p *ActiveJobs) Name() string { return "active-jobs-db" }

func (p *ActiveJobs) IsConfigured() bool { return p.cfg.APIKey != "" }

var activeJobsSources = []sourceRule{
	{"linkedin", "LinkedIn"},
	{"indeed", "Indeed"},
	{"glassdoor", "Glassdoor"},
	{"ziprecruiter", "ZipRecruiter"},
	{"lever.co", "Lever"},
	{"greenhouse", "Greenhouse"},
	{"workday", "Workday"},
	{"ashby", "Ashby"},
}

// Search pulls recent ATS postings and filters them by keyword locally; the
// upstream endpoint has no keyword parameter. Overfetching leaves room for
// the filter to discard misses.
func (p *ActiveJobs) Search(ctx context.Context, keywords []string, location string, limit int) ([]domain.JobPosting, error) {
	if !p.IsConfigured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(min(limit*3, activeJobsMaxFetch)))
	params.Set("offset", "0")
	params.Set("description_type", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", p.cfg.APIKey)
	req.Header.Set("x-rapidapi-host", p.cfg.Host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("active-jobs-db: unexpected status %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("active-jobs-db: decode response: %w", err)
	}
	rows, _ := rowsFrom(payload)

	matched := filterByKeywords(rows, keywords)
	if len(matched) == 0 {
		// Nothing matched; recent postings beat an empty page.
		matched = rows
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}

	jobs := make([]domain.JobPosting, 0, len(matched))
	for _, row := range matched {
		jobs = append(jobs, toActiveJobsPosting(row))
	}
	return jobs, nil
}

func filterByKeywords(rows []map[string]any, keywords []string) []map[string]any {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lowered = append(lowered, strings.ToLower(kw))
	}

	var matched []map[string]any
	for _, row := range rows {
		title := strings.ToLower(field(row, "title"))
		desc := strings.ToLower(field(row, "description"))
		for _, kw := range lowered {
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

func toActiveJobsPosting(row map[string]any) domain.JobPosting {
	title := orDefault(field(row, "title", "job_title"), "N/A")

	location := field(row, "location", "job_location")
	if location == "" {
		location = joinNonEmpty(", ", field(row, "city"), field(row, "state"), field(row, "country"))
	}
	if location == "" {
		location = "Remote"
	}

	applyURL := orDefault(field(row, "url", "job_url", "apply_url", "link"), "#")

	postedDate := field(row, "date_posted", "posted_date", "date")
	days := daysAgo(postedDate)
	if postedDate == "" {
		postedDate = time.Now().Format(time.RFC3339)
		days = 0
	}

	description := orDefault(field(row, "description", "summary"), title)
	if len(description) > activeJobsDescCap {
		description = description[:activeJobsDescCap-3] + "..."
	}

	return domain.JobPosting{
		Title:        title,
		Company:      orDefault(field(row, "company", "organization", "company_name"), "N/A"),
		Location:     location,
		Description:  description,
		Salary:       orDefault(field(row, "salary", "salary_range"), "See job post"),
		ApplyURL:     applyURL,
		PostedDate:   postedDate,
		DaysAgo:      days,
		ContractType: orDefault(field(row, "employment_type", "job_type"), "Full-time"),
		Source:       sourceFromURL(applyURL, "Active Jobs DB", activeJobsSources),
	}
}
