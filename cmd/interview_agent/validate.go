package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-navigator/internal/questionbank"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a question bank JSON file",
	Long:  "Parses a question bank file, normalizes legacy field keys, and checks the result against the canonical schema. Reports per-field violations.",
	RunE:  runValidate,
}

var validateBankPath string

func init() {
	validateCmd.Flags().StringVarP(&validateBankPath, "bank", "b", "", "Path to question bank JSON file (required)")

	if err := validateCmd.MarkFlagRequired("bank"); err != nil {
		panic(fmt.Sprintf("failed to mark bank flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	bank, err := questionbank.Load(validateBankPath)
	if err != nil {
		return err
	}

	if err := questionbank.ValidateCanonical(bank); err != nil {
		var ve *questionbank.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "✗ %s is invalid:\n", validateBankPath)
			for _, fe := range ve.Errors {
				fmt.Fprintf(out, "  • %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("question bank invalid: %d violations", len(ve.Errors))
		}
		return err
	}

	fmt.Fprintf(out, "✓ %s is valid (%d questions for %q)\n", validateBankPath, bank.TotalQuestions, bank.CompanyName)
	return nil
}
