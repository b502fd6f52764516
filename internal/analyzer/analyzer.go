// Package analyzer turns raw resume text into a scored analysis: extracted
// skills, a summary, strengths and weaknesses, skill gaps and improvement
// suggestions. The generative intelligence service is consulted first when
// configured; every step falls back to deterministic heuristics so analysis
// never fails outright.
package analyzer

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/skills"
)

// Skill groups behind the heuristic strength and weakness checks.
var (
	frontendSkills = []string{"react", "angular", "vue", "html", "css", "javascript", "typescript"}
	backendSkills  = []string{"python", "java", "nodejs", "node.js", "django", "flask", "spring"}
	cloudSkills    = []string{"aws", "azure", "gcp", "google cloud", "docker", "kubernetes"}
	dataSkills     = []string{"python", "sql", "pandas", "machine learning", "data science", "tableau", "power bi"}
	modernTech     = []string{"react", "docker", "kubernetes", "aws", "microservices", "ci/cd"}
	devopsTech     = []string{"docker", "kubernetes", "ci/cd", "microservices", "cloud"}
)

var (
	experienceKeywords = []string{"experience", "worked", "developed", "implemented", "designed", "led", "managed"}
	educationKeywords  = []string{"bachelor", "master", "phd", "degree", "university", "college", "certified", "certification"}
)

// quantifiedPattern spots measurable impact statements.
var quantifiedPattern = regexp.MustCompile(`\d+%|\$\d+|improved|increased|reduced|optimized`)

// quantifiedCorePattern is the narrower variant the suggestion check uses.
var quantifiedCorePattern = regexp.MustCompile(`\d+%|\$\d+|improved|increased|reduced`)

// Analyzer scores resumes. The intelligence collaborator may be nil or
// unconfigured; local heuristics cover every output either way.
type Analyzer struct {
	intel domain.Intelligence
}

func New(intel domain.Intelligence) *Analyzer {
	return &Analyzer{intel: intel}
}

// Analyze runs the full pipeline over one resume's plain text.
func (a *Analyzer) Analyze(ctx context.Context, text string) domain.ResumeAnalysis {
	lower := strings.ToLower(text)
	technical := skills.ExtractTechnical(text)
	soft := skills.ExtractSoft(text)

	analysis := domain.ResumeAnalysis{
		TechnicalSkills: technical,
		SoftSkills:      soft,
	}

	analysis.Summary = a.summarize(ctx, text, lower, technical)
	analysis.Strengths, analysis.Weaknesses = a.assess(ctx, text, lower, technical, soft)
	analysis.Score = calculateScore(lower, technical, soft)
	analysis.MissingSkills = missingSkills(technical)
	analysis.Suggestions = a.suggest(ctx, text, lower, analysis.Score, technical, soft, analysis.MissingSkills)

	return analysis
}

func (a *Analyzer) ready() bool {
	return a.intel != nil && a.intel.IsConfigured()
}

// assess resolves strengths and weaknesses in one intelligence round trip.
// Either list may come back empty, in which case only that side falls back.
func (a *Analyzer) assess(ctx context.Context, text, lower string, technical, soft []string) ([]string, []string) {
	if a.ready() {
		if sw, err := a.intel.SuggestStrengthsWeaknesses(ctx, text, technical, soft); err == nil && sw != nil {
			strengths, weaknesses := sw.Strengths, sw.Weaknesses
			if len(strengths) == 0 {
				strengths = fallbackStrengths(lower, technical, soft)
			}
			if len(weaknesses) == 0 {
				weaknesses = fallbackWeaknesses(lower, technical, soft)
			}
			return strengths, weaknesses
		}
	}
	return fallbackStrengths(lower, technical, soft), fallbackWeaknesses(lower, technical, soft)
}

func fallbackStrengths(lower string, technical, soft []string) []string {
	var strengths []string
	tset := toSet(technical)

	switch {
	case len(technical) >= 15:
		strengths = append(strengths, "Extensive technical skill set with expertise across multiple technologies")
	case len(technical) >= 8:
		strengths = append(strengths, "Solid technical foundation with diverse technology experience")
	}

	if countIn(tset, frontendSkills) > 0 && countIn(tset, backendSkills) > 0 {
		strengths = append(strengths, "Full-stack development capabilities demonstrated")
	}
	if countIn(tset, cloudSkills) >= 2 {
		strengths = append(strengths, "Modern cloud and DevOps experience")
	}
	if countIn(tset, dataSkills) >= 3 {
		strengths = append(strengths, "Strong data analysis and processing capabilities")
	}
	if len(soft) >= 5 {
		strengths = append(strengths, "Well-rounded professional skills including leadership and communication")
	}
	if strings.Contains(lower, "senior") || strings.Contains(lower, "lead") {
		strengths = append(strengths, "Leadership and senior-level experience demonstrated")
	}
	if strings.Contains(lower, "certified") || strings.Contains(lower, "certification") {
		strengths = append(strengths, "Professional certifications and continuous learning commitment")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Demonstrated technical competency in software development")
	}
	return capList(strengths, 5)
}

func fallbackWeaknesses(lower string, technical, soft []string) []string {
	var weaknesses []string
	tset := toSet(technical)

	if len(technical) < 5 {
		weaknesses = append(weaknesses, "Limited range of technical skills - consider expanding technology stack")
	}
	if countIn(tset, modernTech) < 2 {
		weaknesses = append(weaknesses, "Limited exposure to modern development practices and cloud technologies")
	}
	if len(soft) < 3 {
		weaknesses = append(weaknesses, "Soft skills not prominently highlighted - emphasize teamwork and communication")
	}
	if !strings.Contains(lower, "summary") && !strings.Contains(lower, "objective") {
		weaknesses = append(weaknesses, "Missing professional summary or objective statement")
	}
	if !quantifiedPattern.MatchString(lower) {
		weaknesses = append(weaknesses, "Limited quantifiable achievements - add metrics to demonstrate impact")
	}
	return capList(weaknesses, 4)
}

// calculateScore grades the resume 0-100 across five buckets: content volume,
// technical breadth, experience wording, education signals and soft skills.
func calculateScore(lower string, technical, soft []string) int {
	score := 0

	switch words := len(strings.Fields(lower)); {
	case words >= 300:
		score += 30
	case words >= 150:
		score += 20
	default:
		score += 10
	}

	switch count := len(technical); {
	case count >= 15:
		score += 25
	case count >= 10:
		score += 20
	case count >= 5:
		score += 15
	default:
		score += max(count*2, 5)
	}

	experienceHits := 0
	for _, kw := range experienceKeywords {
		if strings.Contains(lower, kw) {
			experienceHits++
		}
	}
	score += min(experienceHits*3, 20)

	educationHits := 0
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			educationHits++
		}
	}
	score += min(educationHits*3, 15)

	score += min(len(soft)*2, 10)

	return min(score, 100)
}

// missingSkills guesses the closest target role from skill overlap and lists
// that role's unmet requirements. With no overlap anywhere, or a fully
// covered role, the generic gap list applies instead.
func missingSkills(technical []string) []string {
	tset := toSet(technical)

	best := 0
	var required []string
	for _, role := range skills.RoleRequirements {
		overlap := 0
		for _, s := range role.Skills {
			if _, ok := tset[skills.Normalize(s)]; ok {
				overlap++
			}
		}
		if overlap > best {
			best = overlap
			required = role.Skills
		}
	}

	if best > 0 {
		var missing []string
		for _, s := range required {
			norm := skills.Normalize(s)
			if _, ok := tset[norm]; !ok {
				missing = append(missing, norm)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return capList(missing, 8)
		}
	}

	var missing []string
	for _, s := range skills.GenericGaps {
		if _, ok := tset[s]; !ok {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)
	return capList(missing, 8)
}

func (a *Analyzer) suggest(ctx context.Context, text, lower string, score int, technical, soft, missing []string) []string {
	if a.ready() {
		if out, err := a.intel.GenerateSuggestions(ctx, text, score, technical, missing); err == nil && len(out) > 0 {
			return out
		}
	}

	var suggestions []string
	tset := toSet(technical)

	if score < 60 {
		suggestions = append(suggestions,
			"Add more detailed descriptions of your work experience and achievements",
			"Include specific technologies and tools you've used in each role")
	}
	if len(technical) < 8 {
		suggestions = append(suggestions, "Expand your technical skill set by learning in-demand technologies like React, Docker, or AWS")
	}
	if len(soft) < 4 {
		suggestions = append(suggestions, "Highlight soft skills such as leadership, communication, and teamwork in your experience descriptions")
	}
	if !quantifiedCorePattern.MatchString(lower) {
		suggestions = append(suggestions, "Add quantifiable achievements (e.g., 'Improved performance by 40%', 'Reduced costs by $50K')")
	}
	if countIn(tset, devopsTech) < 2 {
		suggestions = append(suggestions, "Gain experience with modern DevOps and cloud technologies to stay competitive")
	}
	if !strings.Contains(lower, "summary") && !strings.Contains(lower, "objective") {
		suggestions = append(suggestions, "Add a professional summary at the top highlighting your key strengths and experience")
	}
	if !strings.Contains(lower, "project") {
		suggestions = append(suggestions, "Include notable projects with descriptions of technologies used and outcomes achieved")
	}
	if !strings.Contains(lower, "certifi") {
		suggestions = append(suggestions, "Consider obtaining relevant certifications (AWS, Azure, GCP, or technology-specific certifications)")
	}
	return capList(suggestions, 6)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[skills.Normalize(item)] = struct{}{}
	}
	return set
}

func countIn(set map[string]struct{}, group []string) int {
	n := 0
	for _, item := range group {
		if _, ok := set[item]; ok {
			n++
		}
	}
	return n
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
