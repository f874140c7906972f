package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/qaextract/internal/config"
	"github.com/dgallion1/qaextract/internal/extract"
	"github.com/dgallion1/qaextract/internal/pipeline"
	"github.com/dgallion1/qaextract/internal/store"
)

var (
	flagOutput   string
	flagModel    string
	flagAppend   bool
	flagFailFast bool
)

var rootCmd = &cobra.Command{
	Use:   "qaextract <file or directory> [...]",
	Short: "Extract interview Q&A records from documents using Gemini",
	Long: `qaextract reads documents (.txt, .md, .docx, .pdf, .xlsx, .csv, .html),
asks Gemini to extract interview question/answer pairs constrained to a fixed
JSON schema, and collects the results into a single JSON file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output JSON file (default questions.json)")
	rootCmd.Flags().StringVarP(&flagModel, "model", "m", "", fmt.Sprintf("model to use, one of %s", strings.Join(extract.ModelNames(), ", ")))
	rootCmd.Flags().BoolVar(&flagAppend, "append", false, "append to an existing output file")
	rootCmd.Flags().BoolVar(&flagFailFast, "fail-fast", false, "abort the whole run on the first file failure")
}

func run(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	if flagOutput != "" {
		cfg.OutputPath = flagOutput
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagAppend {
		cfg.Append = true
	}
	if flagFailFast {
		cfg.FailFast = true
	}

	// The credential may come from the environment, a .env file, or an
	// interactive prompt. It is fatal to proceed without one.
	if cfg.APIKey == "" {
		key, err := promptAPIKey(cmd)
		if err != nil {
			return err
		}
		cfg.APIKey = key
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	files, err := discoverFiles(args, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	backend, err := extract.NewGeminiBackend(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	defer backend.Close()

	orch := pipeline.New(cfg, backend, log)
	model := orch.Extractor().Model()
	log.Info("starting extraction",
		"files", len(files), "model", model.ID, "temperature", model.Temperature)

	records, summary, err := orch.Run(ctx, files)
	if err != nil {
		return err
	}

	out := store.New(cfg.OutputPath)
	total, err := out.Write(records, cfg.Append)
	if err != nil {
		return err
	}

	log.Info("run complete",
		"extracted", summary.Extracted, "skipped", summary.Skipped, "failed", summary.Failed)
	fmt.Printf("Written %d Q&A records to %s\n", total, cfg.OutputPath)
	return nil
}

func promptAPIKey(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter your Gemini API key: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", fmt.Errorf("no API key provided")
	}
	return key, nil
}
