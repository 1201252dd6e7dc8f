// Package pipeline provides the high-level orchestration for question bank
// preparation: resume ingestion and company research run in parallel, then
// question generation consumes both, then the bank is persisted.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-navigator/internal/generation"
	"github.com/jonathan/interview-navigator/internal/ingestion"
	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/research"
	"github.com/jonathan/interview-navigator/internal/storage"
	"github.com/jonathan/interview-navigator/internal/types"
)

// ProgressEvent reports one completed pipeline step.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as pipeline steps complete.
type ProgressCallback func(event ProgressEvent)

// Pipeline step names.
const (
	StepIngestion  = "resume_ingestion"
	StepResearch   = "company_research"
	StepGeneration = "question_generation"
	StepPersist    = "persist_bank"
)

// Options holds configuration for one pipeline run.
type Options struct {
	ResumePath    string
	CompanyName   string
	ResearchURLs  []string
	QuestionCount int

	Extractor  ingestion.TextExtractor
	Fetcher    research.Fetcher
	Client     llm.Client
	Store      storage.Store // optional; bank is returned either way
	BankKey    string        // storage key; defaults to a fresh run id
	OnProgress ProgressCallback
}

// Result carries the produced artifacts.
type Result struct {
	RunID         string
	BankKey       string
	ResumeSummary string
	Research      *research.CompanyResearch
	Bank          *types.QuestionBank
}

// Run executes the preparation pipeline and returns the generated bank.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("pipeline requires an LLM client")
	}
	if opts.Extractor == nil {
		opts.Extractor = ingestion.PlainFileExtractor{}
	}
	if opts.Fetcher == nil {
		opts.Fetcher = research.NewHTTPFetcher()
	}

	runID := uuid.New().String()
	emit := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
		}
	}

	// Ingestion and research are independent; run them concurrently.
	var summary string
	var brief *research.CompanyResearch

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := ingestion.Summarize(gctx, opts.Extractor, opts.Client, opts.ResumePath)
		if err != nil {
			return fmt.Errorf("resume branch failed: %w", err)
		}
		summary = s
		emit(StepIngestion, "resume summarized")
		return nil
	})
	g.Go(func() error {
		if len(opts.ResearchURLs) == 0 {
			emit(StepResearch, "no research seeds, skipping")
			return nil
		}
		r, err := research.Run(gctx, opts.Fetcher, opts.Client, opts.CompanyName, opts.ResearchURLs)
		if err != nil {
			return fmt.Errorf("research branch failed: %w", err)
		}
		brief = r
		emit(StepResearch, fmt.Sprintf("researched %d pages", len(r.SourceURLs)))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bank, err := generation.Generate(ctx, opts.Client, generation.Options{
		ResumeSummary: summary,
		Research:      brief,
		QuestionCount: opts.QuestionCount,
	})
	if err != nil {
		return nil, err
	}
	emit(StepGeneration, fmt.Sprintf("generated %d questions", bank.TotalQuestions))

	key := opts.BankKey
	if key == "" {
		key = runID
	}
	if opts.Store != nil {
		if err := opts.Store.SaveBank(ctx, key, bank); err != nil {
			return nil, fmt.Errorf("failed to persist bank: %w", err)
		}
		emit(StepPersist, fmt.Sprintf("bank saved under key %s", key))
	}

	return &Result{
		RunID:         runID,
		BankKey:       key,
		ResumeSummary: summary,
		Research:      brief,
		Bank:          bank,
	}, nil
}
