// Package main provides the entry point for the interview navigator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Adaptive interview decision engine",
	Long:  "Interview Navigator generates company-tailored question banks and runs adaptive interview sessions that probe deeper when answers are short, evasive, or interesting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
