package intelligence

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"career-platform-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	t.Run("Should strip a json code fence", func(t *testing.T) {
		assert.Equal(t, `{"summary":"ok"}`, stripFences("```json\n{\"summary\":\"ok\"}\n```"))
	})

	t.Run("Should strip a bare code fence", func(t *testing.T) {
		assert.Equal(t, "[]", stripFences("```\n[]\n```"))
	})

	t.Run("Should leave unfenced text alone", func(t *testing.T) {
		assert.Equal(t, `{"contact":{}}`, stripFences("  {\"contact\":{}}\n"))
	})
}

func TestParseStrengthsWeaknesses(t *testing.T) {
	t.Run("Should split a sectioned review into both lists", func(t *testing.T) {
		raw := `STRENGTHS:
- Strong backend architecture background
- Clear record of production ownership

WEAKNESSES:
- No measurable outcomes in recent roles
- Limited exposure to cloud platforms`

		got := parseStrengthsWeaknesses(raw)

		assert.Equal(t, []string{
			"Strong backend architecture background",
			"Clear record of production ownership",
		}, got.Strengths)
		assert.Equal(t, []string{
			"No measurable outcomes in recent roles",
			"Limited exposure to cloud platforms",
		}, got.Weaknesses)
	})

	t.Run("Should treat improvement areas as weaknesses", func(t *testing.T) {
		raw := `STRENGTHS:
- Deep knowledge of distributed systems

AREAS FOR IMPROVEMENT:
- Resume lacks a professional summary section`

		got := parseStrengthsWeaknesses(raw)

		require.Len(t, got.Weaknesses, 1)
		assert.Equal(t, "Resume lacks a professional summary section", got.Weaknesses[0])
	})

	t.Run("Should drop bullets outside any section and trivial ones", func(t *testing.T) {
		raw := `- Orphan bullet before any heading appears
STRENGTHS:
- Too short
- Substantial strength item kept here
• Bullet marker variant is accepted too`

		got := parseStrengthsWeaknesses(raw)

		assert.Equal(t, []string{
			"Substantial strength item kept here",
			"Bullet marker variant is accepted too",
		}, got.Strengths)
		assert.Empty(t, got.Weaknesses)
	})

	t.Run("Should cap strengths at five and weaknesses at four", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("STRENGTHS:\n")
		for i := 0; i < 7; i++ {
			fmt.Fprintf(&b, "- Strength item number %d with detail\n", i)
		}
		b.WriteString("WEAKNESSES:\n")
		for i := 0; i < 6; i++ {
			fmt.Fprintf(&b, "- Weakness item number %d with detail\n", i)
		}

		got := parseStrengthsWeaknesses(b.String())

		assert.Len(t, got.Strengths, 5)
		assert.Len(t, got.Weaknesses, 4)
	})

	t.Run("Should lose bullets that name a section themselves", func(t *testing.T) {
		raw := `STRENGTHS:
- Biggest strength is Python depth
- Ships reliable services on schedule`

		got := parseStrengthsWeaknesses(raw)

		// The first bullet re-triggers the section switch and is consumed.
		assert.Equal(t, []string{"Ships reliable services on schedule"}, got.Strengths)
	})
}

func TestParseSuggestions(t *testing.T) {
	t.Run("Should keep substantial bullets of any marker in order", func(t *testing.T) {
		raw := `Here are some suggestions:
- Quantify the impact of your two most recent projects
• Add a dedicated technical skills section near the top
* Replace passive phrasing with action verbs throughout
Closing remark without a marker.`

		got := parseSuggestions(raw)

		assert.Equal(t, []string{
			"Quantify the impact of your two most recent projects",
			"Add a dedicated technical skills section near the top",
			"Replace passive phrasing with action verbs throughout",
		}, got)
	})

	t.Run("Should drop short bullets and cap at six", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("- Fix typos now\n")
		for i := 0; i < 8; i++ {
			fmt.Fprintf(&b, "- Expanded actionable suggestion number %d\n", i)
		}

		got := parseSuggestions(b.String())

		require.Len(t, got, 6)
		assert.Equal(t, "Expanded actionable suggestion number 0", got[0])
		assert.NotContains(t, got, "Fix typos now")
	})
}

func TestGeminiUnconfigured(t *testing.T) {
	ctx := context.Background()

	client, err := NewGemini(ctx, "", "")
	require.NoError(t, err)
	require.False(t, client.IsConfigured())

	t.Run("Should answer every call with the unavailable sentinel", func(t *testing.T) {
		_, err := client.GenerateSummary(ctx, "resume", []string{"go"})
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)

		_, err = client.ExtractStructured(ctx, "resume")
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)

		_, err = client.SuggestStrengthsWeaknesses(ctx, "resume", []string{"go"}, []string{"teamwork"})
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)

		_, err = client.GenerateSuggestions(ctx, "resume", 50, []string{"go"}, []string{"sql"})
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)

		_, err = client.EnhanceText(ctx, "some text", "summary")
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)
	})

	t.Run("Should refuse to enhance empty text before dialing out", func(t *testing.T) {
		_, err := client.EnhanceText(ctx, "", "experience")
		assert.ErrorIs(t, err, domain.ErrIntelligenceUnavailable)
	})

	t.Run("Should close cleanly without a client", func(t *testing.T) {
		assert.NoError(t, client.Close())
	})
}
