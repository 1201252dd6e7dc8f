package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-navigator/internal/config"
	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/observability"
	"github.com/jonathan/interview-navigator/internal/pipeline"
	"github.com/jonathan/interview-navigator/internal/storage"
)

var generateQuestionsCmd = &cobra.Command{
	Use:   "generate-questions",
	Short: "Generate a tailored question bank from a resume and company research",
	Long:  "Summarizes the candidate's resume, researches the target company from seed URLs, and generates a question bank covering talent philosophy, experience, and motivation.",
	RunE:  runGenerateQuestions,
}

var (
	genResumePath  string
	genCompany     string
	genURLs        []string
	genCount       int
	genAPIKey      string
	genOutputDir   string
	genBankKey     string
	genConfigPath  string
	genVerbose     bool
	genDatabaseURL string
)

func init() {
	generateQuestionsCmd.Flags().StringVarP(&genResumePath, "resume", "r", "", "Path to resume text file (required unless set in config)")
	generateQuestionsCmd.Flags().StringVarP(&genCompany, "company", "c", "", "Target company name")
	generateQuestionsCmd.Flags().StringSliceVarP(&genURLs, "url", "u", nil, "Company page URL to research (repeatable)")
	generateQuestionsCmd.Flags().IntVar(&genCount, "count", 0, "Number of questions to generate (default: 10)")
	generateQuestionsCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateQuestionsCmd.Flags().StringVarP(&genOutputDir, "out", "o", "artifacts", "Local artifact directory")
	generateQuestionsCmd.Flags().StringVar(&genBankKey, "key", "", "Storage key for the bank (default: run id)")
	generateQuestionsCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to JSON config file with flag defaults")
	generateQuestionsCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")
	generateQuestionsCmd.Flags().StringVar(&genDatabaseURL, "db", "", "PostgreSQL URL for durable storage (overrides DATABASE_URL env var)")

	rootCmd.AddCommand(generateQuestionsCmd)
}

func runGenerateQuestions(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:        genResumePath,
		Company:       genCompany,
		ResearchURLs:  genURLs,
		QuestionCount: genCount,
		APIKey:        genAPIKey,
		StorageDir:    genOutputDir,
		DatabaseURL:   genDatabaseURL,
		Verbose:       genVerbose,
	}
	if genConfigPath != "" {
		fileCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("resume path required: set --resume flag or 'resume' in config")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, cleanup, err := openStore(ctx, cfg.DatabaseURL, cfg.StorageDir)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := pipeline.Run(ctx, pipeline.Options{
		ResumePath:    cfg.Resume,
		CompanyName:   cfg.Company,
		ResearchURLs:  cfg.ResearchURLs,
		QuestionCount: cfg.QuestionCount,
		Client:        client,
		Store:         store,
		BankKey:       genBankKey,
		OnProgress: func(e pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", e.Step, e.Message)
		},
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResearch(result.Research)
		printer.PrintBank(result.Bank)
	}

	// Also drop a plain JSON copy next to the store for inspection.
	if err := os.MkdirAll(cfg.StorageDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.StorageDir, err)
	}
	bankPath := filepath.Join(cfg.StorageDir, result.BankKey+".json")
	bankJSON, err := json.MarshalIndent(result.Bank, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bank to JSON: %w", err)
	}
	if err := os.WriteFile(bankPath, bankJSON, 0644); err != nil {
		return fmt.Errorf("failed to write bank file %s: %w", bankPath, err)
	}

	fmt.Printf("Generated %d questions for %q\n", result.Bank.TotalQuestions, result.Bank.CompanyName)
	fmt.Printf("Bank: %s (key %s)\n", bankPath, result.BankKey)

	return nil
}

// openStore picks Postgres when a database URL is available, otherwise the
// local file store.
func openStore(ctx context.Context, databaseURL, storageDir string) (storage.Store, func(), error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		pg, err := storage.Connect(ctx, databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}

	fs, err := storage.NewFileStore(storageDir)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}
