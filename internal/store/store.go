// Package store persists the aggregate record collection as a single JSON
// array, written as a complete replacement of the output file.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dgallion1/qaextract/internal/extract"
)

// CorruptError reports a prior output file that is not a well-formed
// serialized record array. Append mode treats this as fatal; prior data is
// never silently discarded.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("prior output %s is not a valid record collection: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store reads and writes one collection file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the collection file location.
func (s *Store) Path() string { return s.path }

// Load reads the previously persisted collection. A missing file yields an
// empty collection; a file that cannot be parsed as a record array yields a
// *CorruptError.
func (s *Store) Load() ([]extract.Record, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prior output: %w", err)
	}

	var records []extract.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	return records, nil
}

// Write persists the collection, replacing the file's contents. In append
// mode the previously persisted records are loaded first and prepended
// untouched; they are never re-stamped or deduplicated against new ones.
// It returns the total number of records written.
func (s *Store) Write(records []extract.Record, appendMode bool) (int, error) {
	if appendMode {
		prior, err := s.Load()
		if err != nil {
			return 0, err
		}
		records = append(prior, records...)
	}
	if records == nil {
		records = []extract.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	return len(records), nil
}
