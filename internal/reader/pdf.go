package reader

import (
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFReader handles PDF files. Per-page text is concatenated with blank-line
// separators in page order; no layout reconstruction is attempted. It tries
// the Go library first, then falls back to pdftotext if enabled.
type PDFReader struct {
	FallbackPdftotext bool
}

func (r *PDFReader) Read(path string) (string, error) {
	text, err := extractPDFText(path)
	if err != nil && r.FallbackPdftotext {
		return extractPdftotext(path)
	}
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func extractPDFText(path string) (string, error) {
	f, rd, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pages []string
	numPages := rd.NumPage()
	for i := 1; i <= numPages; i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n\n"), nil
}

func extractPdftotext(path string) (string, error) {
	bin, err := exec.LookPath("pdftotext")
	if err != nil {
		return "", &DependencyError{
			Capability: "pdftotext",
			Remedy:     "install poppler-utils",
			Err:        err,
		}
	}
	out, err := exec.Command(bin, "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
