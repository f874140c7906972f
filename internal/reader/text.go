package reader

import (
	"fmt"
	"os"
)

// TextReader handles plain text and markdown files. Content is returned
// exactly as stored; no markup interpretation is applied.
type TextReader struct{}

func (r *TextReader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
