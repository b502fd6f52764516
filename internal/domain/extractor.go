package domain

// DocumentExtractor turns an uploaded resume file into plain text. The
// implementation validates the file before extracting.
type DocumentExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}
