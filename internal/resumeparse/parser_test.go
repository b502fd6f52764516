package resumeparse_test

import (
	"fmt"
	"strings"
	"testing"

	"career-platform-backend/internal/resumeparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperience(t *testing.T) {
	t.Run("Should split role, company and duration across lines", func(t *testing.T) {
		text := "Experience\nSoftware Engineer at Acme Corp\nJan 2020 - Present\nBuilt things."
		result := resumeparse.Parse(text)

		require.Len(t, result.Experience, 1)
		entry := result.Experience[0]
		assert.Equal(t, "Software Engineer", entry.Role)
		assert.Equal(t, "Acme Corp", entry.Company)
		assert.Contains(t, entry.Duration, "2020")
		assert.Contains(t, entry.Duration, "Present")
		assert.Contains(t, entry.Description, "Built things.")
	})

	t.Run("Should parse title and date sharing one line", func(t *testing.T) {
		text := "Work Experience\nBackend Developer | TechCo | Mar 2019 - Jan 2021\nShipped the billing service."
		result := resumeparse.Parse(text)

		require.Len(t, result.Experience, 1)
		entry := result.Experience[0]
		assert.Equal(t, "Backend Developer", entry.Role)
		assert.Equal(t, "TechCo", entry.Company)
		assert.Equal(t, "Mar 2019 - Jan 2021", entry.Duration)
	})

	t.Run("Should take a short line after the role as the company", func(t *testing.T) {
		text := "Experience\nSenior Developer\nJan 2018 - Dec 2019\nAcme Corp\nOwned the payment flow."
		result := resumeparse.Parse(text)

		require.Len(t, result.Experience, 1)
		entry := result.Experience[0]
		assert.Equal(t, "Senior Developer", entry.Role)
		assert.Equal(t, "Acme Corp", entry.Company)
		assert.Contains(t, entry.Description, "payment flow")
	})

	t.Run("Should separate entries on blank lines and cap at five", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("Experience\n")
		for i := 1; i <= 6; i++ {
			fmt.Fprintf(&b, "Engineer at Company%d\n2015 - 2016\nDid work.\n\n", i)
		}
		result := resumeparse.Parse(b.String())

		assert.Len(t, result.Experience, 5)
		assert.Equal(t, "Company1", result.Experience[0].Company)
	})

	t.Run("Should recover consecutive entries without blank separators", func(t *testing.T) {
		text := "Experience\n" +
			"Engineer at Acme\nJan 2020 - Present\nBuilt APIs\n" +
			"Developer at Beta\nFeb 2015 - Dec 2018\nMaintained services"
		result := resumeparse.Parse(text)

		require.Len(t, result.Experience, 2)
		assert.Equal(t, "Acme", result.Experience[0].Company)
		assert.Equal(t, "Built APIs", result.Experience[0].Description)
		assert.Equal(t, "Beta", result.Experience[1].Company)
		assert.Equal(t, "Maintained services", result.Experience[1].Description)
	})
}

func TestParseEducation(t *testing.T) {
	t.Run("Should collect degree, institution and year", func(t *testing.T) {
		text := "Education\nBachelor of Science in Computer Science\nStanford University\n2015 - 2019"
		result := resumeparse.Parse(text)

		require.Len(t, result.Education, 1)
		entry := result.Education[0]
		assert.Equal(t, "Bachelor of Science in Computer Science", entry.Degree)
		assert.Equal(t, "Stanford University", entry.Institution)
		assert.Equal(t, "2015 - 2019", entry.Year)
	})

	t.Run("Should pull the year off a degree line", func(t *testing.T) {
		text := "Education\nB.S. Computer Science, 2018"
		result := resumeparse.Parse(text)

		require.Len(t, result.Education, 1)
		assert.Equal(t, "B.S. Computer Science", result.Education[0].Degree)
		assert.Equal(t, "2018", result.Education[0].Year)
	})

	t.Run("Should cap entries at three", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("Education\n")
		for i := 0; i < 4; i++ {
			fmt.Fprintf(&b, "Master of Arts\nState University\n\n")
		}
		result := resumeparse.Parse(b.String())
		assert.Len(t, result.Education, 3)
	})
}

func TestParseProjects(t *testing.T) {
	t.Run("Should capture name, technologies and bulleted description", func(t *testing.T) {
		text := "Projects\nInventory Tracker\nTechnologies: Go, PostgreSQL\n- Built REST endpoints\n- Added caching"
		result := resumeparse.Parse(text)

		require.Len(t, result.Projects, 1)
		p := result.Projects[0]
		assert.Equal(t, "Inventory Tracker", p.Name)
		assert.Equal(t, "Go, PostgreSQL", p.Technologies)
		assert.Equal(t, "Built REST endpoints Added caching", p.Description)
	})

	t.Run("Should strip list numbering from project names", func(t *testing.T) {
		text := "Projects\n1. Chat Server\nWrote a websocket hub"
		result := resumeparse.Parse(text)

		require.Len(t, result.Projects, 1)
		assert.Equal(t, "Chat Server", result.Projects[0].Name)
	})

	t.Run("Should cap projects at three", func(t *testing.T) {
		text := "Projects\nAlpha\n\nBeta\n\nGamma\n\nDelta"
		result := resumeparse.Parse(text)
		assert.Len(t, result.Projects, 3)
	})
}

func TestParseContactAndSummary(t *testing.T) {
	text := `John Smith
john.smith@example.com
+1 (415) 555-0132
Location: San Francisco, CA

Summary
Seasoned backend engineer who enjoys distributed systems and has shipped
production services for over eight years across several industries.

Experience
Engineer at Acme
2019 - 2021
`

	result := resumeparse.Parse(text)

	t.Run("Should extract contact fields", func(t *testing.T) {
		assert.Equal(t, "John Smith", result.Contact.Name)
		assert.Equal(t, "john.smith@example.com", result.Contact.Email)
		assert.Contains(t, result.Contact.Phone, "415")
		assert.Equal(t, "San Francisco, CA", result.Contact.Location)
	})

	t.Run("Should lift the summary section", func(t *testing.T) {
		assert.Contains(t, result.Summary, "Seasoned backend engineer")
	})

	t.Run("Should not take the email line as the name", func(t *testing.T) {
		text := "john@example.com\nJane Doe\nSummary\nShort."
		r := resumeparse.Parse(text)
		assert.Equal(t, "Jane Doe", r.Contact.Name)
	})
}

func TestParseEmptyAndMissing(t *testing.T) {
	t.Run("Should return empty structure for empty input", func(t *testing.T) {
		result := resumeparse.Parse("")
		assert.Empty(t, result.Summary)
		assert.Empty(t, result.Experience)
		assert.Empty(t, result.Education)
		assert.Empty(t, result.Projects)
	})

	t.Run("Should ignore content before the first header", func(t *testing.T) {
		result := resumeparse.Parse("random preamble line\nExperience\nEngineer at Acme\n2019 - 2020")
		require.Len(t, result.Experience, 1)
		assert.Equal(t, "Acme", result.Experience[0].Company)
	})

	t.Run("Should truncate oversized summaries", func(t *testing.T) {
		long := strings.Repeat("x", 900)
		result := resumeparse.Parse("Summary\n" + long)
		assert.Len(t, result.Summary, 500)
	})
}
