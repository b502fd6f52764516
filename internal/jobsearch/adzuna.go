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
	adzunaTimeout       = 10 * time.Second
	defaultAdzunaMaxAge = 30
)

// AdzunaConfig carries the app credentials and search window. BaseURL is
// derived from Country when left empty; tests override it.
type AdzunaConfig struct {
	AppID      string
	AppKey     string
	Country    string
	MaxAgeDays int
	BaseURL    string
}

// Adzuna queries the Adzuna jobs API, the salary-richest of the boards.
type Adzuna struct {
	cfg     AdzunaConfig
	baseURL string
	client  *http.Client
}

func NewAdzuna(cfg AdzunaConfig) *Adzuna {
	if cfg.Country == "" {
		cfg.Country = "us"
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = defaultAdzunaMaxAge
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://api.adzuna.com/v1/api/jobs/%s/search", cfg.Country)
	}
	return &Adzuna{
		cfg:     cfg,
		baseURL: baseURL,
		client:  &http.Client{Timeout: adzunaTimeout},
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

func (a *Adzuna) IsConfigured() bool {
	return a.cfg.AppID != "" && a.cfg.AppKey != ""
}

type adzunaJob struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string  `json:"description"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	ContractType string  `json:"contract_type"`
}

// Search fetches the first result page, OR-joining up to five keywords.
func (a *Adzuna) Search(ctx context.Context, keywords []string, location string, limit int) ([]domain.JobPosting, error) {
	if !a.IsConfigured() {
		return nil, nil
	}

	if len(keywords) > 5 {
		keywords = keywords[:5]
	}
	params := url.Values{}
	params.Set("app_id", a.cfg.AppID)
	params.Set("app_key", a.cfg.AppKey)
	params.Set("results_per_page", strconv.Itoa(limit))
	params.Set("what", strings.Join(keywords, " OR "))
	params.Set("where", location)
	params.Set("content-type", "application/json")
	params.Set("max_days_old", strconv.Itoa(a.cfg.MaxAgeDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/1?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Results []adzunaJob `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	jobs := make([]domain.JobPosting, 0, len(payload.Results))
	for _, result := range payload.Results {
		jobs = append(jobs, toAdzunaPosting(result))
	}
	return jobs, nil
}

func toAdzunaPosting(job adzunaJob) domain.JobPosting {
	return domain.JobPosting{
		Title:        orDefault(job.Title, "N/A"),
		Company:      orDefault(job.Company.DisplayName, "N/A"),
		Location:     orDefault(job.Location.DisplayName, "N/A"),
		Description:  job.Description,
		Salary:       formatSalary(job.SalaryMin, job.SalaryMax),
		ApplyURL:     orDefault(job.RedirectURL, "#"),
		PostedDate:   job.Created,
		DaysAgo:      daysAgo(job.Created),
		ContractType: orDefault(job.ContractType, "Full-time"),
		Source:       "Adzuna",
	}
}
