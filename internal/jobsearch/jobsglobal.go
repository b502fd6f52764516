package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/logger"
)

const jobsGlobalTimeout = 10 * time.Second

var errQuotaExceeded = errors.New("jobs-global: quota exceeded")

// JobsGlobalConfig configures the Job Search Global RapidAPI board. APIKeys
// is a ring: when one key runs out of quota the next takes over. Host is
// also sent as the RapidAPI host header, so BaseURL overrides (for tests)
// leave it intact.
type JobsGlobalConfig struct {
	APIKeys []string
	Host    string
	BaseURL string
}

type JobsGlobal struct {
	cfg       JobsGlobalConfig
	searchURL string
	latestURL string
	client    *http.Client
}

func NewJobsGlobal(cfg JobsGlobalConfig) *JobsGlobal {
	base := cfg.BaseURL
	if base == "" && cfg.Host != "" {
		base = "https://" + cfg.Host
	}
	return &JobsGlobal{
		cfg:       cfg,
		searchURL: base + "/search.php",
		latestURL: base + "/latest_jobs.php",
		client:    &http.Client{Timeout: jobsGlobalTimeout},
	}
}

func (p *JobsGlobal) Name() string { return "jobs-global" }

func (p *JobsGlobal) IsConfigured() bool {
	return len(p.cfg.APIKeys) > 0 && p.cfg.Host != ""
}

var jobsGlobalSources = []sourceRule{
	{"linkedin", "LinkedIn"},
	{"indeed", "Indeed"},
	{"ziprecruiter", "ZipRecruiter"},
	{"glassdoor", "Glassdoor"},
	{"naukri", "Naukri"},
}

// Search walks the key ring until a key yields postings. A key that fails or
// comes back empty just hands over to the next one.
func (p *JobsGlobal) Search(ctx context.Context, keywords []string, location string, limit int) ([]domain.JobPosting, error) {
	if !p.IsConfigured() {
		return nil, nil
	}

	var lastErr error
	for i, key := range p.cfg.APIKeys {
		jobs, err := p.searchWithKey(ctx, key, keywords, location, limit)
		if err != nil {
			logger.Log.Warn("jobs-global key failed", "key_index", i+1, "error", err)
			lastErr = err
			continue
		}
		if len(jobs) > 0 {
			return jobs, nil
		}
	}
	return nil, lastErr
}

func (p *JobsGlobal) searchWithKey(ctx context.Context, apiKey string, keywords []string, location string, limit int) ([]domain.JobPosting, error) {
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	form := url.Values{}
	form.Set("keyword", strings.Join(keywords, " "))
	form.Set("location", location)

	if payload, err := p.post(ctx, apiKey, p.searchURL, form); err == nil {
		if rows, ok := rowsFrom(payload); ok {
			return p.toPostings(rows, limit), nil
		}
	}

	// The search endpoint is flaky; latest_jobs is the dependable fallback.
	payload, err := p.post(ctx, apiKey, p.latestURL, nil)
	if err != nil {
		return nil, err
	}
	if quotaExceeded(payload) {
		return nil, errQuotaExceeded
	}
	rows, _ := rowsFrom(payload)
	return p.toPostings(rows, limit), nil
}

func (p *JobsGlobal) post(ctx context.Context, apiKey, endpoint string, form url.Values) (any, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", apiKey)
	req.Header.Set("x-rapidapi-host", p.cfg.Host)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jobs-global: unexpected status %d", resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jobs-global: decode response: %w", err)
	}
	return payload, nil
}

// quotaExceeded detects RapidAPI quota errors, which arrive as a 200 with a
// message body instead of an error status.
func quotaExceeded(payload any) bool {
	m, ok := payload.(map[string]any)
	if !ok {
		return false
	}
	msg, ok := m["message"].(string)
	return ok && strings.Contains(strings.ToLower(msg), "exceeded")
}

func (p *JobsGlobal) toPostings(rows []map[string]any, limit int) []domain.JobPosting {
	if len(rows) > limit {
		rows = rows[:limit]
	}
	jobs := make([]domain.JobPosting, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, toJobsGlobalPosting(row))
	}
	return jobs
}

func toJobsGlobalPosting(row map[string]any) domain.JobPosting {
	title := orDefault(field(row, "title", "job_title", "jobTitle"), "N/A")

	company := field(row, "company", "company_name")
	if company == "" {
		if nested, ok := row["company"].(map[string]any); ok {
			company, _ = nested["name"].(string)
		}
	}
	if company == "" {
		company = "N/A"
	}

	applyURL := orDefault(field(row, "url", "job_url", "link"), "#")
	if applyURL == "#" {
		// Some records only carry a slug; point at a search instead of a
		// dead link.
		if _, ok := row["slug"]; ok {
			applyURL = "https://www.google.com/search?q=" + url.QueryEscape(title+" "+company)
		}
	}

	postedDate := field(row, "date", "posted_date", "date_posted")
	days := daysAgo(postedDate)
	if postedDate == "" {
		postedDate = time.Now().Format(time.RFC3339)
		days = 0
	}

	return domain.JobPosting{
		Title:        title,
		Company:      company,
		Location:     orDefault(field(row, "location", "job_location"), "Remote"),
		Description:  orDefault(field(row, "description", "summary"), title),
		Salary:       orDefault(field(row, "salary"), "See job post"),
		ApplyURL:     applyURL,
		PostedDate:   postedDate,
		DaysAgo:      days,
		ContractType: "Full-time",
		Source:       sourceFromURL(applyURL, "Job Board", jobsGlobalSources),
	}
}
