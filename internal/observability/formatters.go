// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/interview-navigator/internal/research"
	"github.com/jonathan/interview-navigator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most max runes, never splitting a rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// PrintBank outputs a human-readable summary of the loaded question bank.
func (p *Printer) PrintBank(bank *types.QuestionBank) {
	if bank == nil || len(bank.Questions) == 0 {
		return
	}

	var sb strings.Builder
	if bank.CompanyName != "" {
		sb.WriteString(fmt.Sprintf("Company:    %s\n", bank.CompanyName))
	}
	sb.WriteString(fmt.Sprintf("Questions:  %d\n\n", bank.TotalQuestions))

	counts := map[types.Category]int{}
	for _, q := range bank.Questions {
		counts[q.Category]++
	}
	categories := make([]string, 0, len(counts))
	for c := range counts {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	sb.WriteString("By category:\n")
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", c, counts[types.Category(c)]))
	}
	sb.WriteString("\n")

	count := min(len(bank.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := bank.Questions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", q.ID, truncate(q.Text, 45)))
	}
	if len(bank.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(bank.Questions)-maxItemsToShow))
	}

	p.printBox("QUESTION BANK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the evaluator's decision for the last answer.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decision:  %s\n", result.Reason))
	sb.WriteString(fmt.Sprintf("Follow-up: %v\n", result.NeedsFollowUp))
	sb.WriteString(fmt.Sprintf("Length:    %d\n", result.Analysis.Length))
	sb.WriteString(fmt.Sprintf("Keywords:  %v\n", result.Analysis.KeywordFound))
	sb.WriteString(fmt.Sprintf("Interest:  %d", result.Analysis.InterestScore))

	if len(result.InterestPatterns) > 0 {
		patterns := make([]string, 0, len(result.InterestPatterns))
		for _, c := range result.InterestPatterns {
			patterns = append(patterns, string(c))
		}
		sb.WriteString(fmt.Sprintf("\nSignals:   %s", strings.Join(patterns, ", ")))
	}

	p.printBox("ANSWER EVALUATION", sb.String())
}

// PrintResearch outputs the extracted company brief.
func (p *Printer) PrintResearch(brief *research.CompanyResearch) {
	if brief == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", brief.CompanyName))
	sb.WriteString(fmt.Sprintf("Sources:  %d\n", len(brief.SourceURLs)))

	if len(brief.Values) > 0 {
		sb.WriteString("\nValues:\n")
		count := min(len(brief.Values), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", brief.Values[i]))
		}
		if len(brief.Values) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(brief.Values)-3))
		}
	}

	if len(brief.TalentProfile) > 0 {
		sb.WriteString("\nTalent profile:\n")
		count := min(len(brief.TalentProfile), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", brief.TalentProfile[i]))
		}
	}

	p.printBox("COMPANY RESEARCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the end-of-session report.
func (p *Printer) PrintSummary(summary types.SessionSummary) {
	var sb strings.Builder

	status := "in progress"
	if summary.Complete {
		status = "complete"
	}
	sb.WriteString(fmt.Sprintf("Status:          %s\n", status))
	sb.WriteString(fmt.Sprintf("Questions asked: %d\n", len(summary.AskedQuestionIDs)))
	sb.WriteString(fmt.Sprintf("Answers logged:  %d\n", len(summary.ContextLog)))

	totalFollowUps := 0
	for _, c := range summary.FollowUpCounts {
		totalFollowUps += c
	}
	sb.WriteString(fmt.Sprintf("Follow-ups:      %d", totalFollowUps))

	if len(summary.AskedQuestionIDs) > 0 {
		sb.WriteString("\n\nOrder:\n")
		ids := make([]string, 0, len(summary.AskedQuestionIDs))
		for _, id := range summary.AskedQuestionIDs {
			ids = append(ids, fmt.Sprintf("#%d", id))
		}
		sb.WriteString("  " + strings.Join(ids, " → "))
	}

	p.printBox("SESSION SUMMARY", sb.String())
}
