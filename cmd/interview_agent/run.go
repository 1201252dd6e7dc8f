package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-navigator/internal/navigator"
	"github.com/jonathan/interview-navigator/internal/observability"
	"github.com/jonathan/interview-navigator/internal/questionbank"
	"github.com/jonathan/interview-navigator/internal/storage"
	"github.com/jonathan/interview-navigator/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive interview session from a question bank",
	Long:  "Loads a question bank and runs the interview loop on stdin/stdout: each answer is evaluated and the session either probes deeper with a follow-up or moves to the next question.",
	RunE:  runInterview,
}

var (
	runBankPath   string
	runVerbose    bool
	runStorageDir string
	runSessionKey string
)

func init() {
	runCmd.Flags().StringVarP(&runBankPath, "bank", "b", "", "Path to question bank JSON file (required)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print evaluation details after each answer")
	runCmd.Flags().StringVar(&runStorageDir, "out", "", "Directory to save the session snapshot (optional)")
	runCmd.Flags().StringVar(&runSessionKey, "session", "session", "Storage key for the session snapshot")

	if err := runCmd.MarkFlagRequired("bank"); err != nil {
		panic(fmt.Sprintf("failed to mark bank flag as required: %v", err))
	}

	rootCmd.AddCommand(runCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	bank, err := questionbank.Load(runBankPath)
	if err != nil {
		return err
	}

	nav, err := navigator.New(bank)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if runVerbose {
		printer.PrintBank(bank)
	}

	turn, err := nav.Start()
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	in.Buffer(make([]byte, 64*1024), 1024*1024)
	out := cmd.OutOrStdout()

	for {
		fmt.Fprintf(out, "\nQ: %s\n", turn.Text)
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			if err := in.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			fmt.Fprintln(out, "\nInput closed, ending session.")
			break
		}
		answer := strings.TrimSpace(in.Text())

		turn, err = nav.SubmitAnswer(answer)
		if err != nil {
			return err
		}

		if runVerbose {
			printer.PrintEvaluation(turn.Evaluation)
		}

		if turn.Kind == types.TurnComplete {
			fmt.Fprintf(out, "\n%s\n", turn.Text)
			break
		}
	}

	summary := nav.Summary()
	printer.PrintSummary(summary)

	if runStorageDir != "" {
		store, err := storage.NewFileStore(runStorageDir)
		if err != nil {
			return err
		}
		if err := store.SaveSnapshot(context.Background(), runSessionKey, nav.State()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Session snapshot saved under key %s\n", runSessionKey)
	}

	return nil
}
