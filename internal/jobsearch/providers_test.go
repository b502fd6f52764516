package jobsearch_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/jobsearch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdzunaSearch(t *testing.T) {
	t.Run("Should query the board and map results", func(t *testing.T) {
		created := time.Now().AddDate(0, 0, -3).Format(time.RFC3339)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/1", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "app", q.Get("app_id"))
			assert.Equal(t, "secret", q.Get("app_key"))
			assert.Equal(t, "python OR sql", q.Get("what"))
			assert.Equal(t, "remote", q.Get("where"))
			assert.Equal(t, "30", q.Get("max_days_old"))

			fmt.Fprintf(w, `{"results":[{
				"title":"Backend Engineer",
				"company":{"display_name":"Acme"},
				"location":{"display_name":"Austin, TX"},
				"description":"Build APIs",
				"salary_min":100000,
				"salary_max":150000,
				"redirect_url":"https://example.com/job/1",
				"created":%q,
				"contract_type":"permanent"
			}]}`, created)
		}))
		defer srv.Close()

		provider := jobsearch.NewAdzuna(jobsearch.AdzunaConfig{AppID: "app", AppKey: "secret", BaseURL: srv.URL})
		jobs, err := provider.Search(context.Background(), []string{"python", "sql"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Backend Engineer", jobs[0].Title)
		assert.Equal(t, "Acme", jobs[0].Company)
		assert.Equal(t, "$100,000 - $150,000", jobs[0].Salary)
		assert.Equal(t, "Adzuna", jobs[0].Source)
		assert.Equal(t, "permanent", jobs[0].ContractType)
		assert.Equal(t, 3, jobs[0].DaysAgo)
	})

	t.Run("Should report missing salaries as not specified", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"results":[{"title":"Intern","redirect_url":"https://example.com/2","created":""}]}`)
		}))
		defer srv.Close()

		provider := jobsearch.NewAdzuna(jobsearch.AdzunaConfig{AppID: "app", AppKey: "secret", BaseURL: srv.URL})
		jobs, err := provider.Search(context.Background(), []string{"intern"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Not specified", jobs[0].Salary)
		assert.Equal(t, domain.DaysUnknown, jobs[0].DaysAgo)
	})

	t.Run("Should surface unexpected statuses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		provider := jobsearch.NewAdzuna(jobsearch.AdzunaConfig{AppID: "app", AppKey: "secret", BaseURL: srv.URL})
		_, err := provider.Search(context.Background(), []string{"python"}, "remote", 10)

		assert.ErrorContains(t, err, "403")
	})

	t.Run("Should do nothing without credentials", func(t *testing.T) {
		provider := jobsearch.NewAdzuna(jobsearch.AdzunaConfig{})

		assert.False(t, provider.IsConfigured())
		jobs, err := provider.Search(context.Background(), []string{"python"}, "remote", 10)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobsGlobalSearch(t *testing.T) {
	t.Run("Should post the keyword search and map results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/search.php", r.URL.Path)
			assert.Equal(t, "key-1", r.Header.Get("x-rapidapi-key"))
			assert.Equal(t, "boards.example.com", r.Header.Get("x-rapidapi-host"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "go developer", r.PostForm.Get("keyword"))
			assert.Equal(t, "remote", r.PostForm.Get("location"))

			fmt.Fprint(w, `{"data":[{
				"job_title":"Go Developer",
				"company_name":"Beta",
				"url":"https://www.linkedin.com/jobs/view/9",
				"date":"2020-01-01"
			}]}`)
		}))
		defer srv.Close()

		provider := jobsearch.NewJobsGlobal(jobsearch.JobsGlobalConfig{
			APIKeys: []string{"key-1"},
			Host:    "boards.example.com",
			BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"go", "developer"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Go Developer", jobs[0].Title)
		assert.Equal(t, "Beta", jobs[0].Company)
		assert.Equal(t, "LinkedIn", jobs[0].Source)
		assert.Equal(t, "Remote", jobs[0].Location)
		assert.Equal(t, "See job post", jobs[0].Salary)
		assert.Equal(t, "Go Developer", jobs[0].Description)
	})

	t.Run("Should fall back to latest jobs when search is unusable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/search.php" {
				fmt.Fprint(w, `{"status":"ok"}`)
				return
			}
			require.Equal(t, "/latest_jobs.php", r.URL.Path)
			fmt.Fprint(w, `[{"title":"Fresh Posting","company":"Gamma","link":"https://example.com/3"}]`)
		}))
		defer srv.Close()

		provider := jobsearch.NewJobsGlobal(jobsearch.JobsGlobalConfig{
			APIKeys: []string{"key-1"},
			Host:    "boards.example.com",
			BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"anything"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Fresh Posting", jobs[0].Title)
		assert.Equal(t, "Job Board", jobs[0].Source)
	})

	t.Run("Should rotate to the next key after a quota failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("x-rapidapi-key") == "spent" {
				if r.URL.Path == "/search.php" {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				fmt.Fprint(w, `{"message":"You have exceeded the MONTHLY quota"}`)
				return
			}
			fmt.Fprint(w, `[{"title":"Found It","company":"Delta","url":"https://example.com/4"}]`)
		}))
		defer srv.Close()

		provider := jobsearch.NewJobsGlobal(jobsearch.JobsGlobalConfig{
			APIKeys: []string{"spent", "fresh"},
			Host:    "boards.example.com",
			BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"anything"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "Found It", jobs[0].Title)
	})

	t.Run("Should build a search link for slug-only records", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"jobs":[{"title":"Data Engineer","company":"Epsilon","slug":"data-engineer-epsilon"}]}`)
		}))
		defer srv.Close()

		provider := jobsearch.NewJobsGlobal(jobsearch.JobsGlobalConfig{
			APIKeys: []string{"key-1"},
			Host:    "boards.example.com",
			BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"data"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Contains(t, jobs[0].ApplyURL, "google.com/search")
	})
}

func TestActiveJobsSearch(t *testing.T) {
	payload := `[
		{"title":"Kubernetes Administrator","organization":"Acme","url":"https://jobs.lever.co/acme/1","date_posted":"2020-01-02"},
		{"title":"Platform Engineer","company":"Beta","description":"Operate kubernetes clusters","apply_url":"https://boards.greenhouse.io/beta/2"},
		{"title":"Accountant","company":"Gamma","description":"Maintain ledgers","url":"https://example.com/3","date_posted":"bogus"}
	]`

	newServer := func(t *testing.T) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/modified-ats-24h", r.URL.Path)
			assert.Equal(t, "rapid-key", r.Header.Get("x-rapidapi-key"))
			assert.Equal(t, "text", r.URL.Query().Get("description_type"))
			fmt.Fprint(w, payload)
		}))
	}

	t.Run("Should filter postings by keyword locally", func(t *testing.T) {
		srv := newServer(t)
		defer srv.Close()

		provider := jobsearch.NewActiveJobs(jobsearch.ActiveJobsConfig{
			APIKey: "rapid-key", Host: "ats.example.com", BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"kubernetes"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Kubernetes Administrator", jobs[0].Title)
		assert.Equal(t, "Lever", jobs[0].Source)
		assert.Equal(t, "Greenhouse", jobs[1].Source)
	})

	t.Run("Should serve everything when no posting matches", func(t *testing.T) {
		srv := newServer(t)
		defer srv.Close()

		provider := jobsearch.NewActiveJobs(jobsearch.ActiveJobsConfig{
			APIKey: "rapid-key", Host: "ats.example.com", BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"zzzz"}, "remote", 10)

		require.NoError(t, err)
		assert.Len(t, jobs, 3)
	})

	t.Run("Should mark unparseable posting dates as unknown age", func(t *testing.T) {
		srv := newServer(t)
		defer srv.Close()

		provider := jobsearch.NewActiveJobs(jobsearch.ActiveJobsConfig{
			APIKey: "rapid-key", Host: "ats.example.com", BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"ledgers"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, domain.DaysUnknown, jobs[0].DaysAgo)
	})

	t.Run("Should trim very long descriptions", func(t *testing.T) {
		long := strings.Repeat("d", 700)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, `[{"title":"Writer","company":"Zeta","description":%q,"url":"https://example.com/9"}]`, long)
		}))
		defer srv.Close()

		provider := jobsearch.NewActiveJobs(jobsearch.ActiveJobsConfig{
			APIKey: "rapid-key", Host: "ats.example.com", BaseURL: srv.URL,
		})
		jobs, err := provider.Search(context.Background(), []string{"writer"}, "remote", 10)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Len(t, jobs[0].Description, 600)
		assert.True(t, strings.HasSuffix(jobs[0].Description, "..."))
	})
}
