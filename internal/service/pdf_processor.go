package service

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"resume-filter/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// PDF files must carry their header within the first KiB.
const pdfHeaderWindow = 1024

var (
	pdfMagic       = []byte("%PDF-")
	docxTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// DocumentTextExtractor implements domain.TextExtractor.
// PDFs go through MuPDF (go-fitz) with ledongthuc/pdf as fallback; .docx files
// are read with nguyenthenguyen/docx and .txt files are taken as UTF-8.
type DocumentTextExtractor struct {
	logger      domain.Logger
	pageTimeout time.Duration
}

// NewDocumentTextExtractor creates a new text extractor
func NewDocumentTextExtractor(logger domain.Logger) *DocumentTextExtractor {
	return &DocumentTextExtractor{
		logger:      logger,
		pageTimeout: 90 * time.Second,
	}
}

// Extract returns the plain text of the document. The text is not normalized.
func (e *DocumentTextExtractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return e.extractDOCX(data)
	case ".txt":
		return string(bytes.ToValidUTF8(data, nil)), nil
	default:
		return e.extractPDF(data)
	}
}

func (e *DocumentTextExtractor) extractPDF(data []byte) (string, error) {
	if !hasPDFHeader(data) {
		return "", fmt.Errorf("%w: missing PDF header", domain.ErrUnsupportedFormat)
	}

	text, fitzErr := e.extractWithFitz(data)
	if fitzErr == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if fitzErr != nil {
		e.logger.Warn("MuPDF extraction failed, falling back to pdf reader", "error", fitzErr)
	}

	fallback, readerErr := extractWithPDFReader(data)
	switch {
	case readerErr == nil:
		return fallback, nil
	case fitzErr == nil:
		// MuPDF opened the file and found no text; trust it over the failed fallback.
		return text, nil
	default:
		return "", fmt.Errorf("failed to extract PDF text: %w", errors.Join(fitzErr, readerErr))
	}
}

// extractWithFitz reads every page with MuPDF. A page that fails or exceeds
// the page timeout contributes no text.
func (e *DocumentTextExtractor) extractWithFitz(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	type pageResult struct {
		text string
		err  error
	}

	numPages := doc.NumPage()
	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, err := doc.Text(idx)
			resultCh <- pageResult{text: t, err: err}
		}(pageNum)

		select {
		case res := <-resultCh:
			if res.err != nil {
				e.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", res.err)
				continue
			}
			sb.WriteString(res.text)
			sb.WriteString("\n")
		case <-time.After(e.pageTimeout):
			e.logger.Warn("PDF page extraction timeout; skipping page", "page", pageNum+1, "total", numPages, "timeout_sec", int(e.pageTimeout.Seconds()))
			go func() { <-resultCh }() // drain so goroutine can exit
		}
	}

	return sb.String(), nil
}

// extractWithPDFReader is the pure-Go fallback. The reader panics on some
// malformed cross-reference tables, so panics are turned into errors.
func extractWithPDFReader(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}

func (e *DocumentTextExtractor) extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup. Runs inside one paragraph are
// joined without separators so words split across runs stay intact.
func docxXMLToText(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	txt := docxTagPattern.ReplaceAllString(xml, "")
	return strings.TrimSpace(html.UnescapeString(txt))
}

func hasPDFHeader(data []byte) bool {
	window := data
	if len(window) > pdfHeaderWindow {
		window = window[:pdfHeaderWindow]
	}
	return bytes.Contains(window, pdfMagic)
}
