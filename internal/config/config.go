package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dgallion1/qaextract/internal/extract"
)

// Config is the full run configuration. It is resolved once at startup and
// passed explicitly into the pipeline; core packages never read the
// environment themselves.
type Config struct {
	// Gemini extraction
	APIKey string
	Model  string

	// Output
	OutputPath string
	Append     bool

	// FailFast aborts the whole run on the first per-file extraction
	// failure instead of logging it and continuing.
	FailFast bool

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	return Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  envOr("QAEXTRACT_MODEL", extract.DefaultModel),

		OutputPath: envOr("QAEXTRACT_OUTPUT", "questions.json"),
		Append:     envBool("QAEXTRACT_APPEND", false),

		FailFast: envBool("QAEXTRACT_FAIL_FAST", false),

		PDFFallbackPdftotext: envBool("QAEXTRACT_PDF_FALLBACK", true),
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
