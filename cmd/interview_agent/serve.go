package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-navigator/internal/server"
)

var (
	servePort       int
	serveStorageDir string
	serveDB         string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for creating interview sessions, submitting answers, and reading session summaries.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStorageDir, "storage-dir", "artifacts", "Local question bank directory")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "PostgreSQL URL for durable storage (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	store, cleanup, err := openStore(context.Background(), serveDB, serveStorageDir)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Port:  servePort,
		Store: store,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
