package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qaextract/internal/config"
	"github.com/dgallion1/qaextract/internal/extract"
	"github.com/dgallion1/qaextract/internal/prompt"
	"github.com/dgallion1/qaextract/internal/reader"
)

// FileStatus is the terminal state of one input file.
type FileStatus string

const (
	StatusCollected          FileStatus = "collected"
	StatusSkippedUnsupported FileStatus = "skipped_unsupported"
	StatusSkippedEmpty       FileStatus = "skipped_empty"
	StatusFailed             FileStatus = "failed"
)

// FileResult reports how one input file fared.
type FileResult struct {
	Path    string     `json:"path"`
	Status  FileStatus `json:"status"`
	Records int        `json:"records"`
	Err     error      `json:"-"`

	batch []extract.Record
}

// Summary aggregates per-file outcomes for one run.
type Summary struct {
	Files     []FileResult
	Extracted int
	Skipped   int
	Failed    int
}

// Orchestrator drives the extraction pipeline: read, render, extract, stamp,
// collect. Files are processed strictly sequentially in input order; the
// aggregate is owned by the orchestrator for the lifetime of one run.
type Orchestrator struct {
	renderer  *prompt.Renderer
	extractor *extract.Extractor
	readerOpt reader.Options
	failFast  bool
	log       *slog.Logger
}

// New wires an orchestrator from run configuration and a backend.
func New(cfg config.Config, backend extract.Backend, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		renderer:  prompt.NewRenderer(),
		extractor: extract.New(backend, cfg.Model),
		readerOpt: reader.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		failFast:  cfg.FailFast,
		log:       log,
	}
}

// Extractor exposes the resolved extractor, mainly for startup logging.
func (o *Orchestrator) Extractor() *extract.Extractor { return o.extractor }

// Run processes the given files and returns the aggregate collection. Skips
// (unsupported format, empty content) and per-file extraction failures are
// recorded in the summary and do not abort the run unless FailFast is set.
// A missing format dependency is fatal regardless of policy, as is context
// cancellation.
func (o *Orchestrator) Run(ctx context.Context, paths []string) ([]extract.Record, Summary, error) {
	var aggregate []extract.Record
	var summary Summary

	seenBase := make(map[string]string, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}

		res, depErr := o.processFile(ctx, path)
		summary.Files = append(summary.Files, res)

		switch res.Status {
		case StatusCollected:
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if prev, ok := seenBase[base]; ok {
				o.log.Warn("duplicate base name, record IDs will collide",
					"base", base, "file", path, "previous", prev)
			}
			seenBase[base] = path

			aggregate = append(aggregate, res.batch...)
			summary.Extracted += res.Records
			o.log.Info("file collected", "file", path, "records", res.Records)

		case StatusSkippedUnsupported, StatusSkippedEmpty:
			summary.Skipped++
			o.log.Warn("file skipped", "file", path, "reason", res.Status)

		case StatusFailed:
			summary.Failed++
			o.log.Error("file failed", "file", path, "error", res.Err)
			if depErr {
				return nil, summary, fmt.Errorf("%s: %w", path, res.Err)
			}
			if o.failFast {
				return nil, summary, fmt.Errorf("%s: %w", path, res.Err)
			}
		}
	}

	return aggregate, summary, nil
}

// processFile runs one file through the state machine. The second return
// value reports whether the failure is a missing-dependency error, which is
// fatal to the whole run.
func (o *Orchestrator) processFile(ctx context.Context, path string) (res FileResult, depErr bool) {
	res = FileResult{Path: path}

	r, err := reader.ForFile(path, o.readerOpt)
	if err != nil {
		if errors.Is(err, reader.ErrUnsupported) {
			res.Status = StatusSkippedUnsupported
			return res, false
		}
		res.Status = StatusFailed
		res.Err = err
		return res, false
	}

	content, err := r.Read(path)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("read: %w", err)
		var de *reader.DependencyError
		return res, errors.As(err, &de)
	}

	if strings.TrimSpace(content) == "" {
		res.Status = StatusSkippedEmpty
		return res, false
	}

	req, err := o.renderer.Render(content)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("render: %w", err)
		return res, false
	}

	batch, err := o.extractor.Extract(ctx, req)
	if err != nil {
		if errors.Is(err, extract.ErrEmptyContent) {
			res.Status = StatusSkippedEmpty
			return res, false
		}
		res.Status = StatusFailed
		res.Err = fmt.Errorf("extract: %w", err)
		return res, false
	}

	StampIDs(path, batch)
	res.Status = StatusCollected
	res.Records = len(batch)
	res.batch = batch
	return res, false
}
