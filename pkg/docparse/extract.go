package docparse

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minDocRun is the shortest printable run worth keeping when salvaging text
// from a legacy .doc body.
const minDocRun = 4

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Extract pulls plain text out of a validated resume document. ext must come
// from Validate. Extractions yielding fewer than MinTextChars characters
// fail with ErrInsufficientText.
func Extract(ext string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".doc":
		text, err = extractDoc(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(text)) < MinTextChars {
		return "", ErrInsufficientText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return normalize(buf.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var document []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open docx body: %w", err)
		}
		document, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read docx body: %w", err)
		}
		break
	}
	if len(document) == 0 {
		return "", fmt.Errorf("open docx: no word/document.xml entry")
	}

	// Paragraph boundaries become newlines before the tag strip so empty
	// paragraphs survive as blank lines.
	body := string(document)
	body = strings.ReplaceAll(body, "</w:p>", "\n")
	body = strings.ReplaceAll(body, "<w:p/>", "\n")
	body = strings.ReplaceAll(body, "<w:tab/>", "\t")
	body = xmlTagPattern.ReplaceAllString(body, " ")
	return normalize(body), nil
}

// extractDoc salvages printable runs out of the binary Word format. Word
// stores text either as 8-bit runs or UTF-16LE; skipping NUL bytes covers
// both without a CFB parser.
func extractDoc(data []byte) (string, error) {
	var runs []string
	var current []byte
	flush := func() {
		if len(current) >= minDocRun {
			runs = append(runs, string(current))
		}
		current = current[:0]
	}
	for _, b := range data {
		switch {
		case b >= 0x20 && b <= 0x7E:
			current = append(current, b)
		case b == 0x00:
			// UTF-16LE interleaving.
		default:
			flush()
		}
	}
	flush()
	if len(runs) == 0 {
		return "", fmt.Errorf("extract doc text: no readable text")
	}
	return normalize(strings.Join(runs, "\n")), nil
}

// normalize collapses horizontal whitespace inside each line and trims the
// edges while preserving the line structure the section parser keys on.
func normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, " ", " "), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
