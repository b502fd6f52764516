package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/skills"
	"career-platform-backend/pkg/apperror"
)

type careerUsecase struct {
	analysisRepo domain.AnalysisRepository
}

func NewCareerUsecase(analysisRepo domain.AnalysisRepository) domain.CareerUsecase {
	return &careerUsecase{analysisRepo: analysisRepo}
}

func (u *careerUsecase) GetRolePaths(ctx context.Context, userID int64) ([]domain.RoleMatch, error) {
	analysis, err := u.analysisRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No analysis available. Please upload and analyze your resume first.")
		}
		return nil, err
	}

	userSkills := make(map[string]struct{})
	for _, s := range analysis.Skills() {
		userSkills[skills.Normalize(s)] = struct{}{}
	}

	paths := make([]domain.RoleMatch, 0, len(skills.RoleRequirements))
	for _, role := range skills.RoleRequirements {
		var matched, missing []string
		for _, s := range role.Skills {
			norm := skills.Normalize(s)
			if _, ok := userSkills[norm]; ok {
				matched = append(matched, norm)
			} else {
				missing = append(missing, norm)
			}
		}
		sort.Strings(matched)
		sort.Strings(missing)

		pct := 0
		if len(role.Skills) > 0 {
			pct = len(matched) * 100 / len(role.Skills)
		}

		display := displayRoleName(role.Name)
		paths = append(paths, domain.RoleMatch{
			Role:          role.Name,
			DisplayName:   display,
			MatchPct:      pct,
			MatchedSkills: matched,
			MissingSkills: missing,
			TotalRequired: len(role.Skills),
			SearchLinks:   roleSearchLinks(display),
		})
	}

	// Stable, so equal percentages keep the requirement-table order.
	sort.SliceStable(paths, func(i, j int) bool { return paths[i].MatchPct > paths[j].MatchPct })

	return paths, nil
}

// displayRoleName turns "software_engineer" into "Software Engineer".
func displayRoleName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func roleSearchLinks(displayName string) map[string]string {
	query := url.PathEscape(displayName)
	slug := strings.ReplaceAll(strings.ToLower(displayName), " ", "-")
	return map[string]string{
		"LinkedIn":  fmt.Sprintf("https://www.linkedin.com/jobs/search/?keywords=%s", query),
		"Indeed":    fmt.Sprintf("https://www.indeed.com/jobs?q=%s", query),
		"Glassdoor": fmt.Sprintf("https://www.glassdoor.com/Job/jobs.htm?sc.keyword=%s", query),
		"Naukri":    fmt.Sprintf("https://www.naukri.com/%s-jobs", slug),
	}
}
