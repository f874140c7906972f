package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/dgallion1/qaextract/internal/reader"
)

// discoverFiles expands the command-line arguments into an ordered list of
// candidate files. Directories contribute their directly contained files with
// supported extensions, in sorted name order; missing paths are reported and
// skipped. Argument order is preserved.
func discoverFiles(args []string, log *slog.Logger) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			log.Warn("path not found, skipping", "path", arg)
			continue
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", arg, err)
		}
		var names []string
		for _, entry := range entries {
			if entry.IsDir() || !reader.IsSupported(entry.Name()) {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			files = append(files, filepath.Join(arg, name))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files to process")
	}
	return files, nil
}
