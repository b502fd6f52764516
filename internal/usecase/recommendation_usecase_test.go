package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func rankedAnalysis() *domain.ResumeAnalysis {
	return &domain.ResumeAnalysis{
		ID:              1,
		UserID:          5,
		TechnicalSkills: []string{"Python", "Django", "SQL", "Git", "Docker", "AWS", "Linux"},
		SoftSkills:      []string{"Teamwork"},
		Score:           78,
	}
}

func livePostings() []domain.JobPosting {
	return []domain.JobPosting{
		{
			Title:       "Junior Developer",
			Company:     "Acme",
			Description: "Python and Django required. " + strings.Repeat("More context. ", 50),
			Source:      "LinkedIn",
		},
		{
			Title:       "Senior Developer",
			Company:     "Globex",
			Description: "Java and Spring experience",
			Source:      "Indeed",
			EasyApply:   true,
		},
		{
			Title:       "Staff Developer",
			Company:     "Initech",
			Description: "Python, Django, SQL and PostgreSQL experience",
			Source:      "LinkedIn",
		},
	}
}

func TestGetRecommendations(t *testing.T) {
	t.Run("Should require an analysis before ranking", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewRecommendationUsecase(analysisRepo, new(MockJobRepo), new(MockRecommendationRepo), &stubSearcher{}, "Remote")

		_, err := uc.GetRecommendations(context.Background(), 5, 10)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No analysis available")
	})

	t.Run("Should rank live postings easy-apply first without persisting them", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(rankedAnalysis(), nil)
		jobRepo := new(MockJobRepo)
		recRepo := new(MockRecommendationRepo)
		searcher := &stubSearcher{configured: true, postings: livePostings()}
		uc := usecase.NewRecommendationUsecase(analysisRepo, jobRepo, recRepo, searcher, "Remote")

		matches, err := uc.GetRecommendations(context.Background(), 5, 3)

		require.NoError(t, err)
		require.Len(t, matches, 3)

		// Search keywords are the technical skills, capped at five.
		assert.Equal(t, []string{"Python", "Django", "SQL", "Git", "Docker"}, searcher.gotKeywords)
		assert.Equal(t, 6, searcher.gotLimit)

		assert.Equal(t, "Senior Developer", matches[0].Title)
		assert.Equal(t, "Staff Developer", matches[1].Title)
		assert.Equal(t, "Junior Developer", matches[2].Title)
		assert.Equal(t, 15.0, matches[0].MatchScore)
		assert.Equal(t, 60.0, matches[1].MatchScore)
		assert.Equal(t, 50.0, matches[2].MatchScore)

		for _, m := range matches {
			assert.True(t, m.IsLive)
		}
		assert.Contains(t, matches[2].RequiredSkills, "python")
		assert.Contains(t, matches[2].RequiredSkills, "django")
		assert.Len(t, matches[2].Description, 500)

		jobRepo.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
		recRepo.AssertNotCalled(t, "ReplaceForUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should truncate the ranking to the requested limit", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(rankedAnalysis(), nil)
		searcher := &stubSearcher{configured: true, postings: livePostings()}
		uc := usecase.NewRecommendationUsecase(analysisRepo, new(MockJobRepo), new(MockRecommendationRepo), searcher, "Remote")

		matches, err := uc.GetRecommendations(context.Background(), 5, 1)

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Senior Developer", matches[0].Title)
	})

	t.Run("Should fall back to stored jobs and persist the ranking", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(&domain.ResumeAnalysis{
			UserID:          5,
			TechnicalSkills: []string{"Python", "Docker"},
		}, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 200, 0).Return([]domain.Job{
			{ID: 11, Title: "Platform Engineer", Company: "Acme", RequiredSkills: []string{"Python", "Docker", "Kubernetes"}},
			{ID: 12, Title: "Data Analyst", Company: "Globex", RequiredSkills: []string{"R", "Tableau"}, SalaryRange: "$90k-$110k", JobType: "Contract", Source: "Careers page"},
		}, int64(2), nil)

		var persisted []domain.Recommendation
		recRepo := new(MockRecommendationRepo)
		recRepo.On("ReplaceForUser", mock.Anything, int64(5), mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]domain.Recommendation)
		})

		uc := usecase.NewRecommendationUsecase(analysisRepo, jobRepo, recRepo, &stubSearcher{}, "Remote")

		matches, err := uc.GetRecommendations(context.Background(), 5, 10)

		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, "Platform Engineer", matches[0].Title)
		assert.Equal(t, 66.7, matches[0].MatchScore)
		assert.Equal(t, "Not specified", matches[0].Salary)
		assert.Equal(t, "Full-time", matches[0].ContractType)
		assert.Equal(t, "Job Board", matches[0].Source)
		assert.False(t, matches[0].IsLive)

		assert.Equal(t, "Data Analyst", matches[1].Title)
		assert.Equal(t, 15.0, matches[1].MatchScore)
		assert.Equal(t, "$90k-$110k", matches[1].Salary)
		assert.Equal(t, "Contract", matches[1].ContractType)

		require.Len(t, persisted, 2)
		assert.Equal(t, int64(11), persisted[0].JobID)
		assert.Equal(t, 66.7, persisted[0].MatchScore)
		assert.Equal(t, int64(12), persisted[1].JobID)
	})
}

func TestExportRecommendations(t *testing.T) {
	t.Run("Should write the ranking into a styled workbook", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(&domain.ResumeAnalysis{
			UserID:          5,
			TechnicalSkills: []string{"Python", "Docker"},
		}, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("Fetch", mock.Anything, 200, 0).Return([]domain.Job{
			{ID: 11, Title: "Platform Engineer", Company: "Acme", RequiredSkills: []string{"Python", "Docker", "Kubernetes"}, ApplyURL: "https://acme.example/jobs/11"},
		}, int64(1), nil)
		recRepo := new(MockRecommendationRepo)
		recRepo.On("ReplaceForUser", mock.Anything, int64(5), mock.Anything).Return(nil)

		uc := usecase.NewRecommendationUsecase(analysisRepo, jobRepo, recRepo, &stubSearcher{}, "Remote")

		data, filename, err := uc.ExportRecommendations(context.Background(), 5, 10)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "job_recommendations_"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		title, err := f.GetCellValue("Recommendations", "A1")
		require.NoError(t, err)
		assert.Equal(t, "TITLE", title)

		row2 := map[string]string{}
		for _, cell := range []string{"A2", "B2", "D2", "E2", "F2", "G2", "H2"} {
			v, err := f.GetCellValue("Recommendations", cell)
			require.NoError(t, err)
			row2[cell] = v
		}
		assert.Equal(t, "Platform Engineer", row2["A2"])
		assert.Equal(t, "Acme", row2["B2"])
		assert.Equal(t, "66.7%", row2["D2"])
		assert.Equal(t, "NO", row2["E2"])
		assert.Equal(t, "Job Board", row2["F2"])
		assert.Equal(t, "Today", row2["G2"])
		assert.Equal(t, "https://acme.example/jobs/11", row2["H2"])
	})
}

func TestGetRolePaths(t *testing.T) {
	t.Run("Should require an analysis before matching roles", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewCareerUsecase(analysisRepo)

		_, err := uc.GetRolePaths(context.Background(), 5)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No analysis available")
	})

	t.Run("Should rank roles by overlap with ties in table order", func(t *testing.T) {
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("GetLatestByUser", mock.Anything, int64(5)).Return(&domain.ResumeAnalysis{
			UserID:          5,
			TechnicalSkills: []string{"Python", "SQL", "Git"},
			SoftSkills:      []string{"Problem Solving"},
		}, nil)
		uc := usecase.NewCareerUsecase(analysisRepo)

		paths, err := uc.GetRolePaths(context.Background(), 5)

		require.NoError(t, err)
		require.Len(t, paths, 6)

		var names []string
		var pcts []int
		for _, p := range paths {
			names = append(names, p.Role)
			pcts = append(pcts, p.MatchPct)
		}
		assert.Equal(t, []string{
			"backend_developer",
			"software_engineer",
			"full_stack_developer",
			"data_scientist",
			"devops_engineer",
			"frontend_developer",
		}, names)
		assert.Equal(t, []int{40, 36, 36, 27, 27, 20}, pcts)

		best := paths[0]
		assert.Equal(t, "Backend Developer", best.DisplayName)
		assert.Equal(t, 10, best.TotalRequired)
		assert.Equal(t, []string{"git", "problem solving", "python", "sql"}, best.MatchedSkills)
		assert.Equal(t, []string{"database design", "docker", "java", "microservices", "rest api", "system design"}, best.MissingSkills)
		assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=Backend%20Developer", best.SearchLinks["LinkedIn"])
		assert.Equal(t, "https://www.indeed.com/jobs?q=Backend%20Developer", best.SearchLinks["Indeed"])
		assert.Equal(t, "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=Backend%20Developer", best.SearchLinks["Glassdoor"])
		assert.Equal(t, "https://www.naukri.com/backend-developer-jobs", best.SearchLinks["Naukri"])
	})
}
