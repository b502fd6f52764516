// Package docparse validates resume documents and extracts their plain text.
// Supported formats are PDF, DOCX and legacy DOC; every reader works on the
// raw upload bytes, nothing is written to disk.
package docparse

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrContentMismatch   = errors.New("file content does not match extension")
	ErrInsufficientText  = errors.New("could not extract sufficient text")
)

// MinTextChars is the minimum amount of extracted text for a resume to be
// considered readable.
const MinTextChars = 50

// Magic byte signatures per allowed extension.
var resumeMagic = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                          // %PDF
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                          // ZIP (PK..)
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
}

// Validate checks the extension whitelist and verifies that the content's
// magic bytes match the claimed extension. It returns the normalized
// lowercase extension.
func Validate(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	signatures, ok := resumeMagic[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if len(data) < 4 {
		return "", ErrContentMismatch
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return ext, nil
		}
	}
	return "", ErrContentMismatch
}
