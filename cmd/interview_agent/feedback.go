package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-navigator/internal/feedback"
	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/questionbank"
	"github.com/jonathan/interview-navigator/internal/storage"
	"github.com/jonathan/interview-navigator/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Generate a scored feedback report for a finished session",
	Long:  "Loads a saved session snapshot and its question bank, rebuilds the interview transcript, and produces a scored feedback report with strengths and improvements.",
	RunE:  runFeedback,
}

var (
	feedbackBankPath   string
	feedbackStorageDir string
	feedbackSessionKey string
	feedbackAPIKey     string
)

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackBankPath, "bank", "b", "", "Path to question bank JSON file (required)")
	feedbackCmd.Flags().StringVar(&feedbackStorageDir, "out", "artifacts", "Directory holding the session snapshot")
	feedbackCmd.Flags().StringVar(&feedbackSessionKey, "session", "session", "Storage key of the session snapshot")
	feedbackCmd.Flags().StringVar(&feedbackAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	if err := feedbackCmd.MarkFlagRequired("bank"); err != nil {
		panic(fmt.Sprintf("failed to mark bank flag as required: %v", err))
	}

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	apiKey := feedbackAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	bank, err := questionbank.Load(feedbackBankPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := storage.NewFileStore(feedbackStorageDir)
	if err != nil {
		return err
	}
	state, err := store.LoadSnapshot(ctx, feedbackSessionKey)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	report, err := feedback.Generate(ctx, client, bank, summaryFromState(state, bank))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Overall score: %d\n\n%s\n", report.OverallScore, report.Summary)
	printFeedbackList(out, "Strengths", report.Strengths)
	printFeedbackList(out, "Improvements", report.Improvements)
	for _, q := range report.Questions {
		fmt.Fprintf(out, "Q%d (%d): %s\n", q.QuestionID, q.Score, q.Comment)
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feedback report: %w", err)
	}
	reportPath := strings.TrimSuffix(feedbackBankPath, ".json") + ".feedback.json"
	if err := os.WriteFile(reportPath, reportJSON, 0644); err != nil {
		return fmt.Errorf("failed to write feedback report %s: %w", reportPath, err)
	}
	fmt.Fprintf(out, "\nReport: %s\n", reportPath)

	return nil
}

// summaryFromState rebuilds the session summary from a persisted snapshot. A
// snapshot does not record lifecycle status, so completeness is inferred from
// the bank being exhausted.
func summaryFromState(state *types.InterviewState, bank *types.QuestionBank) types.SessionSummary {
	return types.SessionSummary{
		AskedQuestionIDs: state.AskedQuestionIDs,
		FollowUpCounts:   state.FollowUpCounts,
		ContextLog:       state.ContextLog,
		Complete:         len(state.AskedQuestionIDs) >= len(bank.Questions),
	}
}

func printFeedbackList(out io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(out, "  • %s\n", item)
	}
}
