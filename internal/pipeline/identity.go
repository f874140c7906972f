package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qaextract/internal/extract"
)

// RecordID derives the identifier for the record at the given zero-based
// position in a file's batch: "{basename}_{position+1}.md". IDs are unique
// within one file's batch; two files sharing a base name produce colliding
// IDs, which the orchestrator reports rather than rewrites.
func RecordID(path string, position int) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return fmt.Sprintf("%s_%d.md", base, position+1)
}

// StampIDs assigns identifiers to a file's batch in response order.
func StampIDs(path string, records []extract.Record) {
	for i := range records {
		records[i].ID = RecordID(path, i)
	}
}
