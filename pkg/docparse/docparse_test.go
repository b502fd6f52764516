package docparse_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"career-platform-backend/pkg/docparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, entryName, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(entryName)
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildDoc(sections ...string) []byte {
	data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	data = append(data, make([]byte, 64)...)
	for i, section := range sections {
		if i%2 == 0 {
			data = append(data, []byte(section)...)
		} else {
			// UTF-16LE run.
			for _, r := range section {
				data = append(data, byte(r), 0x00)
			}
		}
		data = append(data, 0x01, 0x02)
	}
	return data
}

func TestValidate(t *testing.T) {
	t.Run("Should accept matching extension and content", func(t *testing.T) {
		ext, err := docparse.Validate("resume.pdf", []byte("%PDF-1.7 rest of file"))
		require.NoError(t, err)
		assert.Equal(t, ".pdf", ext)
	})

	t.Run("Should normalize extension casing", func(t *testing.T) {
		data := buildDocx(t, "word/document.xml", "<w:p>x</w:p>")
		ext, err := docparse.Validate("Resume.DOCX", data)
		require.NoError(t, err)
		assert.Equal(t, ".docx", ext)
	})

	t.Run("Should reject extensions outside the whitelist", func(t *testing.T) {
		_, err := docparse.Validate("resume.exe", []byte("MZ......"))
		assert.ErrorIs(t, err, docparse.ErrUnsupportedFormat)

		_, err = docparse.Validate("resume", []byte("%PDF-1.7"))
		assert.ErrorIs(t, err, docparse.ErrUnsupportedFormat)
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		data := buildDocx(t, "word/document.xml", "<w:p>x</w:p>")
		_, err := docparse.Validate("resume.pdf", data)
		assert.ErrorIs(t, err, docparse.ErrContentMismatch)
	})

	t.Run("Should reject files too small to carry a signature", func(t *testing.T) {
		_, err := docparse.Validate("resume.pdf", []byte("%P"))
		assert.ErrorIs(t, err, docparse.ErrContentMismatch)
	})
}

func TestExtractDOCX(t *testing.T) {
	t.Run("Should strip tags and keep paragraph structure", func(t *testing.T) {
		document := `<?xml version="1.0"?><w:document><w:body>` +
			`<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>` +
			`<w:p/>` +
			`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>` +
			`<w:p><w:r><w:t>Software Engineer at Acme Corp since January 2020</w:t></w:r></w:p>` +
			`</w:body></w:document>`
		data := buildDocx(t, "word/document.xml", document)

		text, err := docparse.Extract(".docx", data)

		require.NoError(t, err)
		assert.Equal(t, "John Smith\n\nExperience\nSoftware Engineer at Acme Corp since January 2020", text)
	})

	t.Run("Should fail when the body entry is missing", func(t *testing.T) {
		data := buildDocx(t, "word/styles.xml", "<w:styles/>")

		_, err := docparse.Extract(".docx", data)

		assert.ErrorContains(t, err, "word/document.xml")
	})

	t.Run("Should fail when too little text survives", func(t *testing.T) {
		data := buildDocx(t, "word/document.xml", "<w:p><w:t>Short</w:t></w:p>")

		_, err := docparse.Extract(".docx", data)

		assert.ErrorIs(t, err, docparse.ErrInsufficientText)
	})
}

func TestExtractDoc(t *testing.T) {
	t.Run("Should salvage both byte and wide character runs", func(t *testing.T) {
		data := buildDoc(
			"Senior software engineer with a decade of distributed systems work",
			"Skills: Go, PostgreSQL, Kubernetes",
		)

		text, err := docparse.Extract(".doc", data)

		require.NoError(t, err)
		assert.Contains(t, text, "Senior software engineer with a decade of distributed systems work")
		assert.Contains(t, text, "Skills: Go, PostgreSQL, Kubernetes")
	})

	t.Run("Should fail on a body with no readable text", func(t *testing.T) {
		data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
		data = append(data, make([]byte, 32)...)

		_, err := docparse.Extract(".doc", data)

		assert.ErrorContains(t, err, "no readable text")
	})
}

func TestExtractUnsupported(t *testing.T) {
	_, err := docparse.Extract(".exe", []byte("MZ"))
	assert.ErrorIs(t, err, docparse.ErrUnsupportedFormat)
}
