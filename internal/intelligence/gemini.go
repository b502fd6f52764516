// Package intelligence adapts Google Gemini to the domain.Intelligence seam.
// Every exported method degrades to domain.ErrIntelligenceUnavailable when no
// API key is present so callers can branch to their deterministic fallbacks.
package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"career-platform-backend/internal/domain"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModel     = "gemini-1.5-flash"
	geminiTemp      = 0.7
	geminiTopP      = 0.95
	geminiTopK      = 40
	geminiMaxTokens = 2048

	promptResumeChars     = 2000
	extractionResumeChars = 4000
	promptSkillCap        = 15
	promptMissingCap      = 10
)

var _ domain.Intelligence = (*Gemini)(nil) // Compile-time interface check

// Gemini talks to the Generative Language API. The zero value (or a client
// built without an API key) is a valid, permanently unavailable instance.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini dials the API when a key is supplied. An empty key yields an
// unconfigured client rather than an error so the platform can boot without
// generative features. An empty model selects the default.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = geminiModel
	}
	if apiKey == "" {
		return &Gemini{model: model}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Gemini) IsConfigured() bool { return g.client != nil }

func (g *Gemini) GenerateSummary(ctx context.Context, resumeText string, skills []string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert career coach and resume writer.

Based on the following resume content, generate a compelling professional summary (2-3 sentences) that:
- Highlights key strengths and expertise
- Mentions relevant years of experience if available
- Emphasizes unique value proposition
- Uses professional, confident tone
- Is concise and impactful

Resume Content:
%s

Skills Found: %s

Write ONLY the professional summary, nothing else.`,
		clip(resumeText, promptResumeChars), strings.Join(capStrings(skills, promptSkillCap), ", "))

	return g.generate(ctx, prompt)
}

func (g *Gemini) ExtractStructured(ctx context.Context, resumeText string) (*domain.StructuredResume, error) {
	prompt := fmt.Sprintf(`Analyze the resume text below and extract structured data in JSON format.

Resume Text:
%s

Extract the following:
1. Contact Info: name, email, phone, location
2. Professional Summary (text)
3. Work Experience: List of objects (max 5) with keys: "company", "role", "duration", "description"
4. Education: List of objects (max 3) with keys: "institution", "degree", "year"
5. Projects: List of objects (max 3) with keys: "name", "technologies", "description"

Return ONLY valid JSON with keys: "contact", "summary", "experience", "education", "projects".
Do not include markdown formatting.
JSON:`, clip(resumeText, extractionResumeChars))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var structured domain.StructuredResume
	if err := json.Unmarshal([]byte(stripFences(raw)), &structured); err != nil {
		return nil, fmt.Errorf("decode structured resume: %w", err)
	}
	return &structured, nil
}

func (g *Gemini) SuggestStrengthsWeaknesses(ctx context.Context, resumeText string, technical, soft []string) (*domain.StrengthsWeaknesses, error) {
	prompt := fmt.Sprintf(`You are an expert resume reviewer and career advisor.

Analyze this resume and identify:
1. Top 4-5 STRENGTHS (what this candidate does well)
2. Top 3-4 AREAS FOR IMPROVEMENT (constructive feedback)

Resume Content:
%s

Technical Skills: %s
Soft Skills: %s

Provide your analysis in this EXACT format:
STRENGTHS:
- [strength 1]
- [strength 2]
- [strength 3]

WEAKNESSES:
- [weakness 1]
- [weakness 2]
- [weakness 3]

Be specific, actionable, and professional.`,
		clip(resumeText, promptResumeChars), strings.Join(technical, ", "), strings.Join(soft, ", "))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseStrengthsWeaknesses(raw), nil
}

func (g *Gemini) GenerateSuggestions(ctx context.Context, resumeText string, score int, technical, missing []string) ([]string, error) {
	prompt := fmt.Sprintf(`You are an expert resume coach helping someone improve their resume.

Resume Score: %d/100
Current Technical Skills: %s
Missing In-Demand Skills: %s

Resume Content:
%s

Provide 5-6 specific, actionable suggestions to improve this resume. Focus on:
- Adding quantifiable achievements
- Improving structure and formatting
- Highlighting relevant skills
- Learning high-demand technologies
- Strengthening impact statements

Format as a bullet list:
- Suggestion 1
- Suggestion 2
...

Be specific and actionable. No generic advice.`,
		score,
		strings.Join(capStrings(technical, promptSkillCap), ", "),
		strings.Join(capStrings(missing, promptMissingCap), ", "),
		clip(resumeText, promptResumeChars))

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(raw), nil
}

func (g *Gemini) EnhanceText(ctx context.Context, text, kind string) (string, error) {
	if text == "" {
		return "", domain.ErrIntelligenceUnavailable
	}

	var prompt string
	if kind == "summary" {
		prompt = fmt.Sprintf(`Enhance this professional summary to be more impactful:

Original: %s

Make it:
- More professional and confident
- Include strong action words
- Be concise (2-3 sentences max)
- ATS-friendly

Write ONLY the enhanced summary.`, text)
	} else {
		prompt = fmt.Sprintf(`Enhance this job experience description:

Original: %s

Improve by:
- Starting with strong action verbs
- Adding more impact
- Being more specific
- Maintaining professional tone

Write ONLY the enhanced description.`, text)
	}

	return g.generate(ctx, prompt)
}

// generate runs one completion and returns the first text part. The model is
// rebuilt per call; genai model values are cheap and not safe to mutate
// across goroutines.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if !g.IsConfigured() {
		return "", domain.ErrIntelligenceUnavailable
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(geminiTemp)
	model.SetTopP(geminiTopP)
	model.SetTopK(geminiTopK)
	model.SetMaxOutputTokens(geminiMaxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
