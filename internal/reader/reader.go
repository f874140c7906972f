package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Reader yields the full textual content of one document file.
type Reader interface {
	Read(path string) (string, error)
}

// Options configures format-specific reader behavior.
type Options struct {
	// PDFFallbackPdftotext enables shelling out to pdftotext when the
	// Go PDF library cannot extract text.
	PDFFallbackPdftotext bool
}

// ErrUnsupported is returned by ForFile for extensions with no registered reader.
var ErrUnsupported = errors.New("unsupported file format")

// DependencyError reports a format whose external capability is unavailable.
// It is fatal: the format cannot be processed at all without it.
type DependencyError struct {
	Capability string
	Remedy     string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependency %s (%s): %v", e.Capability, e.Remedy, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".docx": true,
	".pdf":  true,
	".xlsx": true,
	".csv":  true,
	".html": true,
	".htm":  true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(path string, opts Options) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		return &TextReader{}, nil
	case ".docx":
		return &DocxReader{}, nil
	case ".pdf":
		return &PDFReader{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".xlsx":
		return &ExcelReader{}, nil
	case ".csv":
		return &CSVReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// IsSupported checks if a file's extension has a registered reader.
func IsSupported(path string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(path))]
}
