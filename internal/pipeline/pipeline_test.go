package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/qaextract/internal/config"
	"github.com/dgallion1/qaextract/internal/extract"
	"github.com/dgallion1/qaextract/internal/reader"
)

// scriptedBackend replies based on a marker found in the user message, so one
// backend can serve multiple files in a run.
type scriptedBackend struct {
	replies  map[string]string
	fallback string
	calls    int
}

func (s *scriptedBackend) Generate(_ context.Context, _, user string, _ extract.ModelConfig) ([]byte, error) {
	s.calls++
	for marker, body := range s.replies {
		if strings.Contains(user, marker) {
			return []byte(body), nil
		}
	}
	return []byte(s.fallback), nil
}

func testOrchestrator(backend extract.Backend, failFast bool) *Orchestrator {
	cfg := config.Config{Model: extract.DefaultModel, FailFast: failFast}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, backend, log)
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "interview.txt", "Q: Tell me about yourself\nA: I am diligent.")

	backend := &scriptedBackend{
		fallback: `[{"category":"Personal","question":"Tell me about yourself","answer":"I am diligent."}]`,
	}
	orch := testOrchestrator(backend, false)

	records, summary, err := orch.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != "interview_1.md" {
		t.Errorf("expected ID interview_1.md, got %q", r.ID)
	}
	if r.Category != extract.CategoryPersonal ||
		r.Question != "Tell me about yourself" ||
		r.Answer != "I am diligent." {
		t.Errorf("unexpected record: %+v", r)
	}
	if summary.Extracted != 1 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestRun_EmptyFileSkippedWithoutServiceCall(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "blank.txt", "   \n\t\n")

	backend := &scriptedBackend{fallback: `[]`}
	orch := testOrchestrator(backend, false)

	records, summary, err := orch.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records, got %d", len(records))
	}
	if backend.calls != 0 {
		t.Errorf("service must not be called for blank files, got %d calls", backend.calls)
	}
	if summary.Skipped != 1 {
		t.Errorf("expected 1 skip, got %+v", summary)
	}
	if summary.Files[0].Status != StatusSkippedEmpty {
		t.Errorf("expected skipped_empty, got %s", summary.Files[0].Status)
	}
}

func TestRun_UnsupportedFileSkippedRunContinues(t *testing.T) {
	dir := t.TempDir()
	bad := writeInput(t, dir, "photo.png", "binary-ish")
	good := writeInput(t, dir, "notes.txt", "Q: Why here?\nA: The mission.")

	backend := &scriptedBackend{
		fallback: `[{"category":"Other","question":"Why here?","answer":"The mission."}]`,
	}
	orch := testOrchestrator(backend, false)

	records, summary, err := orch.Run(context.Background(), []string{bad, good})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record from the supported file, got %d", len(records))
	}
	if records[0].ID != "notes_1.md" {
		t.Errorf("unexpected ID %q", records[0].ID)
	}
	if summary.Files[0].Status != StatusSkippedUnsupported {
		t.Errorf("expected skipped_unsupported, got %s", summary.Files[0].Status)
	}
}

func TestRun_SchemaViolationFailsFileOnly(t *testing.T) {
	dir := t.TempDir()
	broken := writeInput(t, dir, "broken.txt", "MARKER_BROKEN content")
	fine := writeInput(t, dir, "fine.txt", "MARKER_FINE content")

	backend := &scriptedBackend{
		replies: map[string]string{
			"MARKER_BROKEN": `[{"category":"Personal","question":"no answer field"}]`,
			"MARKER_FINE":   `[{"category":"Technical","question":"Q","answer":"A"}]`,
		},
	}
	orch := testOrchestrator(backend, false)

	records, summary, err := orch.Run(context.Background(), []string{broken, fine})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("failed file must contribute zero records, got %d total", len(records))
	}
	if records[0].ID != "fine_1.md" {
		t.Errorf("unexpected ID %q", records[0].ID)
	}
	if summary.Failed != 1 || summary.Extracted != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestRun_FailFastAbortsRun(t *testing.T) {
	dir := t.TempDir()
	broken := writeInput(t, dir, "broken.txt", "MARKER_BROKEN content")
	never := writeInput(t, dir, "never.txt", "MARKER_FINE content")

	backend := &scriptedBackend{
		replies: map[string]string{
			"MARKER_BROKEN": `not json at all`,
			"MARKER_FINE":   `[]`,
		},
	}
	orch := testOrchestrator(backend, true)

	_, summary, err := orch.Run(context.Background(), []string{broken, never})
	if err == nil {
		t.Fatal("expected run to abort")
	}
	if backend.calls != 1 {
		t.Errorf("expected processing to stop after the failure, got %d calls", backend.calls)
	}
	if len(summary.Files) != 1 {
		t.Errorf("expected 1 file result, got %d", len(summary.Files))
	}
}

func TestRun_MissingDependencyFatalDespiteRobustPolicy(t *testing.T) {
	t.Setenv("PATH", "")
	dir := t.TempDir()
	bad := writeInput(t, dir, "scan.pdf", "not a real pdf")
	never := writeInput(t, dir, "later.txt", "Q: next\nA: file.")

	backend := &scriptedBackend{fallback: `[]`}
	cfg := config.Config{Model: extract.DefaultModel, PDFFallbackPdftotext: true}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := New(cfg, backend, log)

	_, summary, err := orch.Run(context.Background(), []string{bad, never})
	if err == nil {
		t.Fatal("expected run to abort on missing format dependency")
	}
	var de *reader.DependencyError
	if !errors.As(err, &de) {
		t.Fatalf("expected *reader.DependencyError, got %v", err)
	}
	if backend.calls != 0 {
		t.Errorf("no extraction call may happen, got %d", backend.calls)
	}
	if len(summary.Files) != 1 {
		t.Errorf("remaining files must not be processed, got %d results", len(summary.Files))
	}
}

func TestRun_InterFileOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	first := writeInput(t, dir, "alpha.txt", "MARKER_A")
	second := writeInput(t, dir, "beta.txt", "MARKER_B")

	backend := &scriptedBackend{
		replies: map[string]string{
			"MARKER_A": `[{"category":"Personal","question":"a1","answer":"x"},{"category":"Personal","question":"a2","answer":"x"}]`,
			"MARKER_B": `[{"category":"Personal","question":"b1","answer":"x"}]`,
		},
	}
	orch := testOrchestrator(backend, false)

	records, _, err := orch.Run(context.Background(), []string{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha_1.md", "alpha_2.md", "beta_1.md"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, w := range want {
		if records[i].ID != w {
			t.Errorf("record %d: expected %q, got %q", i, w, records[i].ID)
		}
	}
}
