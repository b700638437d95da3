package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedType is returned before any extraction library is touched.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrExtractFailed wraps extraction library failures (malformed documents).
	ErrExtractFailed = errors.New("text extraction failed")
	// ErrNoText means extraction succeeded but the document holds no content.
	// Callers abort before spending an AI call on empty input.
	ErrNoText = errors.New("no text extracted from file")
)

var (
	horizontalWS = regexp.MustCompile(`[ \t\f\v]+`)
	blankLines   = regexp.MustCompile(`\n\s*\n+`)
)

// Text extracts plain text from an in-memory document based on its declared
// MIME type. PDF output is emitted token-by-token with irregular spacing, so
// both paths run through the same whitespace normalization before return.
func Text(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		raw string
		err error
	)
	switch normalizeMimeType(mimeType) {
	case mimePDF:
		raw, err = extractPDF(data)
	case mimeDOC, mimeDOCX:
		raw, err = extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}

	return NormalizeWhitespace(raw), nil
}

// NormalizeWhitespace collapses runs of horizontal whitespace to a single
// space, runs of blank lines to a single newline, and trims both ends.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = blankLines.ReplaceAllString(s, "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document data")
	}
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

var docxTags = regexp.MustCompile(`</w:p>|<w:br[^>]*>`)
var xmlTags = regexp.MustCompile(`<[^>]+>`)

func stripDocxXML(content string) string {
	content = docxTags.ReplaceAllString(content, "\n")
	return xmlTags.ReplaceAllString(content, "")
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
