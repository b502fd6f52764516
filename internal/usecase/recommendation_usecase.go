package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/matcher"
	"career-platform-backend/internal/skills"
	"career-platform-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	defaultRecommendationLimit = 10
	descriptionDisplayLimit    = 500
	descriptionSkillCap        = 15
	searchKeywordCap           = 5

	// storedJobsCap bounds the fallback ranking pool. The jobs table is a
	// small manually curated set, so the newest slice covers it.
	storedJobsCap = 200
)

type recommendationUsecase struct {
	analysisRepo    domain.AnalysisRepository
	jobRepo         domain.JobRepository
	recRepo         domain.RecommendationRepository
	searcher        domain.JobSearcher
	defaultLocation string
}

func NewRecommendationUsecase(
	analysisRepo domain.AnalysisRepository,
	jobRepo domain.JobRepository,
	recRepo domain.RecommendationRepository,
	searcher domain.JobSearcher,
	defaultLocation string,
) domain.RecommendationUsecase {
	return &recommendationUsecase{
		analysisRepo:    analysisRepo,
		jobRepo:         jobRepo,
		recRepo:         recRepo,
		searcher:        searcher,
		defaultLocation: defaultLocation,
	}
}

func (u *recommendationUsecase) GetRecommendations(ctx context.Context, userID int64, limit int) ([]domain.JobMatch, error) {
	if limit < 1 {
		limit = defaultRecommendationLimit
	}

	analysis, err := u.analysisRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No analysis available. Please upload and analyze your resume first.")
		}
		return nil, err
	}

	userSkills := analysis.Skills()

	var postings []domain.JobPosting
	if u.searcher.IsConfigured() && len(userSkills) > 0 {
		keywords := analysis.TechnicalSkills
		if len(keywords) == 0 {
			keywords = userSkills
		}
		if len(keywords) > searchKeywordCap {
			keywords = keywords[:searchKeywordCap]
		}
		postings = u.searcher.Search(ctx, keywords, u.defaultLocation, limit*2)
	}

	if len(postings) > 0 {
		for i := range postings {
			postings[i].IsLive = true
			postings[i].RequiredSkills = skills.FromDescription(postings[i].Description, descriptionSkillCap)
			postings[i].Description = clip(postings[i].Description, descriptionDisplayLimit)
		}
	} else {
		stored, _, err := u.jobRepo.Fetch(ctx, storedJobsCap, 0)
		if err != nil {
			return nil, err
		}
		postings = make([]domain.JobPosting, 0, len(stored))
		for _, job := range stored {
			postings = append(postings, domain.JobPosting{
				ID:             job.ID,
				Title:          job.Title,
				Company:        job.Company,
				Location:       job.Location,
				Description:    job.Description,
				RequiredSkills: job.RequiredSkills,
				Salary:         orDefault(job.SalaryRange, "Not specified"),
				ApplyURL:       job.ApplyURL,
				DaysAgo:        0,
				ContractType:   orDefault(job.JobType, "Full-time"),
				Source:         orDefault(job.Source, "Job Board"),
				EasyApply:      false,
				IsLive:         false,
			})
		}
	}

	matches := make([]domain.JobMatch, 0, len(postings))
	for _, posting := range postings {
		result := matcher.Match(userSkills, posting.RequiredSkills)
		matches = append(matches, domain.JobMatch{
			JobPosting:     posting,
			MatchScore:     result.MatchPercentage,
			DirectMatches:  result.DirectMatches,
			RelatedMatches: result.RelatedMatches,
			TotalRequired:  result.TotalRequired,
			TotalMatched:   result.TotalMatched,
		})
	}

	// Easy-apply postings lead, best match first within each group.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].EasyApply != matches[j].EasyApply {
			return matches[i].EasyApply
		}
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	// Live postings carry no stable IDs, so only DB-backed rows persist.
	var recs []domain.Recommendation
	for _, m := range matches {
		if !m.IsLive && m.ID != 0 {
			recs = append(recs, domain.Recommendation{JobID: m.ID, MatchScore: m.MatchScore})
		}
	}
	if len(recs) > 0 {
		if err := u.recRepo.ReplaceForUser(ctx, userID, recs); err != nil {
			return nil, err
		}
	}

	return matches, nil
}

func (u *recommendationUsecase) ExportRecommendations(ctx context.Context, userID int64, limit int) ([]byte, string, error) {
	matches, err := u.GetRecommendations(ctx, userID, limit)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Recommendations"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"TITLE", "COMPANY", "LOCATION", "MATCH %", "EASY APPLY", "SOURCE", "POSTED", "APPLY URL"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// Style headers - Dark Blue background with White text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, m := range matches {
		values := []interface{}{
			m.Title,
			m.Company,
			m.Location,
			fmt.Sprintf("%.1f%%", m.MatchScore),
			yesNo(m.EasyApply),
			m.Source,
			postedLabel(m.DaysAgo),
			m.ApplyURL,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("job_recommendations_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func postedLabel(daysAgo int) string {
	switch {
	case daysAgo == domain.DaysUnknown:
		return "Not specified"
	case daysAgo == 0:
		return "Today"
	case daysAgo == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", daysAgo)
	}
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
