package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"career-platform-backend/internal/analyzer"
	"career-platform-backend/internal/domain"
	"career-platform-backend/internal/usecase"
	"career-platform-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// docxBytes builds a minimal DOCX archive with one paragraph per argument.
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var body strings.Builder
	body.WriteString(`<w:document><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	_, err = w.Write([]byte(body.String()))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newResumeUsecase(t *testing.T, resumeRepo domain.ResumeRepository, analysisRepo domain.AnalysisRepository) domain.ResumeUsecase {
	t.Helper()
	store, err := storage.New(context.Background(), storage.Config{})
	require.NoError(t, err)
	return usecase.NewResumeUsecase(resumeRepo, analysisRepo, analyzer.New(nil), nil, store, 1)
}

func TestUploadResume(t *testing.T) {
	t.Run("Should reject files over the size limit", func(t *testing.T) {
		uc := newResumeUsecase(t, new(MockResumeRepo), new(MockAnalysisRepo))

		_, err := uc.Upload(context.Background(), 8, "resume.pdf", make([]byte, 2<<20))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum allowed size")
	})

	t.Run("Should reject unsupported extensions", func(t *testing.T) {
		uc := newResumeUsecase(t, new(MockResumeRepo), new(MockAnalysisRepo))

		_, err := uc.Upload(context.Background(), 8, "resume.txt", []byte("plain text resume"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unsupported file format")
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		uc := newResumeUsecase(t, new(MockResumeRepo), new(MockAnalysisRepo))

		_, err := uc.Upload(context.Background(), 8, "resume.pdf", docxBytes(t, "Actually a DOCX"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match its extension")
	})

	t.Run("Should reject documents with too little text", func(t *testing.T) {
		uc := newResumeUsecase(t, new(MockResumeRepo), new(MockAnalysisRepo))

		_, err := uc.Upload(context.Background(), 8, "resume.docx", docxBytes(t, "Short"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Could not extract sufficient text")
	})

	t.Run("Should store the resume and persist its analysis", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Resume).ID = 3
		})
		analysisRepo := new(MockAnalysisRepo)
		analysisRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ResumeAnalysis")).Return(nil)
		uc := newResumeUsecase(t, resumeRepo, analysisRepo)

		data := docxBytes(t,
			"John Smith",
			"Experienced software engineer with Python and Django",
			"Built REST API services with PostgreSQL and Docker",
			"Strong teamwork and communication skills",
		)

		result, err := uc.Upload(context.Background(), 8, "resume.docx", data)

		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Resume.ID)
		assert.Equal(t, "resume.docx", result.Resume.Filename)
		assert.Contains(t, result.Resume.Content, "Python and Django")
		assert.Nil(t, result.Resume.StorageKey)

		assert.Equal(t, int64(3), result.Analysis.ResumeID)
		assert.Equal(t, int64(8), result.Analysis.UserID)
		assert.Contains(t, result.Analysis.TechnicalSkills, "python")
		assert.Contains(t, result.Analysis.TechnicalSkills, "docker")
		assert.Contains(t, result.Analysis.SoftSkills, "teamwork")
		assert.Greater(t, result.Analysis.Score, 0)

		analysisRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.ResumeAnalysis"))
	})
}

func TestGetLatestResume(t *testing.T) {
	t.Run("Should translate a missing resume into NotFound", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetLatestByUser", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)
		uc := newResumeUsecase(t, resumeRepo, new(MockAnalysisRepo))

		_, err := uc.GetLatest(context.Background(), 8)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No resume uploaded yet")
	})
}

func TestGetStructuredDetails(t *testing.T) {
	t.Run("Should fall back to the section parser without the intelligence service", func(t *testing.T) {
		content := strings.Join([]string{
			"John Smith",
			"john.smith@example.com",
			"",
			"Summary",
			"Seasoned backend engineer focused on reliable billing services.",
			"",
			"Experience",
			"Software Engineer at Acme Corp",
		}, "\n")
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetLatestByUser", mock.Anything, int64(8)).Return(&domain.Resume{ID: 3, UserID: 8, Content: content}, nil)
		uc := newResumeUsecase(t, resumeRepo, new(MockAnalysisRepo))

		details, err := uc.GetStructuredDetails(context.Background(), 8)

		require.NoError(t, err)
		assert.Equal(t, "parser", details.Source)
		assert.Equal(t, "John Smith", details.Details.Contact.Name)
		assert.Equal(t, "john.smith@example.com", details.Details.Contact.Email)
		assert.Contains(t, details.Details.Summary, "Seasoned backend engineer")
	})
}

func TestEnhanceText(t *testing.T) {
	uc := newResumeUsecase(t, new(MockResumeRepo), new(MockAnalysisRepo))

	t.Run("Should fall back to the local summary rewrite", func(t *testing.T) {
		out, err := uc.EnhanceText(context.Background(), "Software engineer with 5 years building web applications", "summary")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Experienced software engineer"))
		assert.Contains(t, out, "Adept at leveraging technical expertise")
	})

	t.Run("Should fall back to the local experience rewrite", func(t *testing.T) {
		out, err := uc.EnhanceText(context.Background(), "managed a team of five", "experience")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Executed"))
		assert.Contains(t, out, "key initiatives including: Managed a team of five")
	})

	t.Run("Should return other kinds unchanged", func(t *testing.T) {
		out, err := uc.EnhanceText(context.Background(), "Python, SQL, Docker", "skills")

		require.NoError(t, err)
		assert.Equal(t, "Python, SQL, Docker", out)
	})
}
