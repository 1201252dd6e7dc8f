// Package ingestion turns a candidate's resume into the summary the question
// generator works from. PDF text extraction is an external concern: callers
// hand this package already-extracted text, either directly or through a
// TextExtractor implementation.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/interview-navigator/internal/llm"
)

// TextExtractor produces plain text from a stored resume document. The PDF
// extraction stage of the original pipeline lives behind this interface.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// PlainFileExtractor reads already-extracted resume text from .txt or .md files.
type PlainFileExtractor struct{}

// ExtractText reads the file and rejects formats that still need extraction.
func (PlainFileExtractor) ExtractText(_ context.Context, path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
	default:
		return "", fmt.Errorf("unsupported resume format %q: extract text before ingestion", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return string(data), nil
}

// CleanText normalizes line endings, strips trailing whitespace per line, and
// collapses runs of blank lines so the summarization prompt stays compact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			line = ""
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// summaryPrompt frames the resume for a short structured summary.
const summaryPrompt = `You are preparing an interviewer's briefing. Summarize the resume below in 5-8 sentences covering: current role and seniority, strongest technical or domain skills, notable achievements with numbers if present, and career motivation if stated. Plain text, no headings.

RESUME:
%s`

// Summarize extracts the resume text, cleans it, and produces the summary the
// question generator consumes.
func Summarize(ctx context.Context, extractor TextExtractor, client llm.Client, path string) (string, error) {
	raw, err := extractor.ExtractText(ctx, path)
	if err != nil {
		return "", fmt.Errorf("resume extraction failed: %w", err)
	}

	text := CleanText(raw)
	if text == "" {
		return "", fmt.Errorf("resume %s is empty after cleaning", path)
	}

	summary, err := client.GenerateContent(ctx, fmt.Sprintf(summaryPrompt, text), llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("resume summarization failed: %w", err)
	}
	return strings.TrimSpace(summary), nil
}
