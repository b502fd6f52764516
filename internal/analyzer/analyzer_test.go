package analyzer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-platform-backend/internal/analyzer"
	"career-platform-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIntelligence struct {
	configured  bool
	summary     string
	summaryErr  error
	sw          *domain.StrengthsWeaknesses
	swErr       error
	suggestions []string
	suggErr     error
}

func (s *stubIntelligence) IsConfigured() bool { return s.configured }

func (s *stubIntelligence) GenerateSummary(_ context.Context, _ string, _ []string) (string, error) {
	return s.summary, s.summaryErr
}

func (s *stubIntelligence) ExtractStructured(_ context.Context, _ string) (*domain.StructuredResume, error) {
	return nil, domain.ErrIntelligenceUnavailable
}

func (s *stubIntelligence) SuggestStrengthsWeaknesses(_ context.Context, _ string, _, _ []string) (*domain.StrengthsWeaknesses, error) {
	if s.swErr != nil {
		return nil, s.swErr
	}
	return s.sw, nil
}

func (s *stubIntelligence) GenerateSuggestions(_ context.Context, _ string, _ int, _, _ []string) ([]string, error) {
	return s.suggestions, s.suggErr
}

func (s *stubIntelligence) EnhanceText(_ context.Context, _, _ string) (string, error) {
	return "", domain.ErrIntelligenceUnavailable
}

// richResume hits every scoring bucket at its cap.
func richResume() string {
	return strings.Repeat("filler ", 300) +
		"python java javascript typescript react angular vue sql mongodb docker kubernetes aws azure git jenkins " +
		"experience worked developed implemented designed led managed " +
		"bachelor master phd degree university college certified certification " +
		"leadership communication teamwork problem solving adaptability"
}

func TestAnalyzeHeuristics(t *testing.T) {
	a := analyzer.New(nil)
	ctx := context.Background()

	t.Run("Should score a sparse resume low", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		assert.Equal(t, 15, analysis.Score)
		assert.Equal(t, []string{"python"}, analysis.TechnicalSkills)
		assert.Empty(t, analysis.SoftSkills)
	})

	t.Run("Should score a dense resume at the cap", func(t *testing.T) {
		analysis := a.Analyze(ctx, richResume())

		assert.Equal(t, 100, analysis.Score)
		assert.Len(t, analysis.TechnicalSkills, 15)
		assert.Len(t, analysis.SoftSkills, 5)
	})

	t.Run("Should fall back to the default strength", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		assert.Equal(t, []string{"Demonstrated technical competency in software development"}, analysis.Strengths)
	})

	t.Run("Should stack strengths and cap them at five", func(t *testing.T) {
		analysis := a.Analyze(ctx, richResume())

		require.Len(t, analysis.Strengths, 5)
		assert.Equal(t, "Extensive technical skill set with expertise across multiple technologies", analysis.Strengths[0])
		assert.Contains(t, analysis.Strengths, "Full-stack development capabilities demonstrated")
		assert.Contains(t, analysis.Strengths, "Modern cloud and DevOps experience")
		assert.NotContains(t, analysis.Strengths, "Professional certifications and continuous learning commitment")
	})

	t.Run("Should cap weaknesses at four", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		require.Len(t, analysis.Weaknesses, 4)
		assert.Equal(t, "Limited range of technical skills - consider expanding technology stack", analysis.Weaknesses[0])
		assert.NotContains(t, analysis.Weaknesses, "Limited quantifiable achievements - add metrics to demonstrate impact")
	})

	t.Run("Should keep only the unmet weaknesses on a strong resume", func(t *testing.T) {
		analysis := a.Analyze(ctx, richResume())

		assert.Equal(t, []string{
			"Missing professional summary or objective statement",
			"Limited quantifiable achievements - add metrics to demonstrate impact",
		}, analysis.Weaknesses)
	})

	t.Run("Should push low scorers toward detail suggestions", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		require.Len(t, analysis.Suggestions, 6)
		assert.Equal(t, "Add more detailed descriptions of your work experience and achievements", analysis.Suggestions[0])
		assert.Equal(t, "Include specific technologies and tools you've used in each role", analysis.Suggestions[1])
	})

	t.Run("Should trim suggestions on a strong resume", func(t *testing.T) {
		analysis := a.Analyze(ctx, richResume())

		assert.Equal(t, []string{
			"Add quantifiable achievements (e.g., 'Improved performance by 40%', 'Reduced costs by $50K')",
			"Add a professional summary at the top highlighting your key strengths and experience",
			"Include notable projects with descriptions of technologies used and outcomes achieved",
		}, analysis.Suggestions)
	})
}

func TestMissingSkills(t *testing.T) {
	a := analyzer.New(nil)
	ctx := context.Background()

	t.Run("Should list gaps for the closest role", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		assert.Equal(t, []string{
			"algorithms", "data structures", "git", "java",
			"javascript", "problem solving", "rest api", "sql",
		}, analysis.MissingSkills)
	})

	t.Run("Should break overlap ties by role order", func(t *testing.T) {
		analysis := a.Analyze(ctx, richResume())

		assert.Equal(t, []string{
			"algorithms", "data structures", "problem solving",
			"rest api", "teamwork", "testing",
		}, analysis.MissingSkills)
	})

	t.Run("Should fall back to generic gaps with no role overlap", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Worked with PHP and Ruby and Kafka daily")

		assert.Equal(t, []string{"agile", "ci/cd", "docker", "git", "rest api", "sql", "testing"}, analysis.MissingSkills)
	})
}

func TestAnalyzeSummary(t *testing.T) {
	a := analyzer.New(nil)
	ctx := context.Background()

	t.Run("Should lift an existing summary section", func(t *testing.T) {
		text := "Summary: Seasoned engineer who has delivered large distributed systems for a decade across several industries.\n\nExperience\nAcme Corp"
		analysis := a.Analyze(ctx, text)

		assert.Equal(t, "Seasoned engineer who has delivered large distributed systems for a decade across several industries.", analysis.Summary)
	})

	t.Run("Should mention extracted years of experience", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Engineer with 7 years of experience building services")

		assert.Contains(t, analysis.Summary, "Professional with 7 years of experience")
	})

	t.Run("Should produce the generic summary otherwise", func(t *testing.T) {
		analysis := a.Analyze(ctx, "Python developer")

		assert.Equal(t, "Technology professional with experience in software development, demonstrating proficiency in various technical skills and tools.", analysis.Summary)
	})
}

func TestAnalyzeWithIntelligence(t *testing.T) {
	ctx := context.Background()

	t.Run("Should prefer intelligence output when available", func(t *testing.T) {
		intel := &stubIntelligence{
			configured: true,
			summary:    "Generated summary",
			sw: &domain.StrengthsWeaknesses{
				Strengths:  []string{"Ships reliable systems"},
				Weaknesses: []string{"Sparse on metrics"},
			},
			suggestions: []string{"Lead a cross-team project"},
		}
		analysis := analyzer.New(intel).Analyze(ctx, "Python developer")

		assert.Equal(t, "Generated summary", analysis.Summary)
		assert.Equal(t, []string{"Ships reliable systems"}, analysis.Strengths)
		assert.Equal(t, []string{"Sparse on metrics"}, analysis.Weaknesses)
		assert.Equal(t, []string{"Lead a cross-team project"}, analysis.Suggestions)
		assert.Equal(t, 15, analysis.Score)
	})

	t.Run("Should fall back when the service errors", func(t *testing.T) {
		boom := errors.New("quota exhausted")
		intel := &stubIntelligence{configured: true, summaryErr: boom, swErr: boom, suggErr: boom}
		analysis := analyzer.New(intel).Analyze(ctx, "Python developer")

		assert.Equal(t, "Technology professional with experience in software development, demonstrating proficiency in various technical skills and tools.", analysis.Summary)
		assert.Equal(t, []string{"Demonstrated technical competency in software development"}, analysis.Strengths)
	})

	t.Run("Should fall back only for the empty side of a partial answer", func(t *testing.T) {
		intel := &stubIntelligence{
			configured: true,
			sw:         &domain.StrengthsWeaknesses{Strengths: []string{"Ships reliable systems"}},
		}
		analysis := analyzer.New(intel).Analyze(ctx, "Python developer")

		assert.Equal(t, []string{"Ships reliable systems"}, analysis.Strengths)
		require.NotEmpty(t, analysis.Weaknesses)
		assert.Equal(t, "Limited range of technical skills - consider expanding technology stack", analysis.Weaknesses[0])
	})

	t.Run("Should ignore an unconfigured service", func(t *testing.T) {
		intel := &stubIntelligence{configured: false, summary: "Generated summary"}
		analysis := analyzer.New(intel).Analyze(ctx, "Python developer")

		assert.NotEqual(t, "Generated summary", analysis.Summary)
	})
}
