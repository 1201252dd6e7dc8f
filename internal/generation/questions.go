// Package generation produces the interview question bank from the resume
// summary and company research. The language model writes the questions; this
// package owns the prompt, the JSON contract, and normalization of the reply
// through the question bank boundary.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/questionbank"
	"github.com/jonathan/interview-navigator/internal/research"
	"github.com/jonathan/interview-navigator/internal/types"
)

// DefaultQuestionCount matches the session target distribution total
// (3 talent_philosophy + 4 experience + 2 motivation + 1 other).
const DefaultQuestionCount = 10

// Options configures one generation call.
type Options struct {
	ResumeSummary string
	Research      *research.CompanyResearch
	QuestionCount int
}

// generatePrompt defines the JSON contract for the generated bank.
const generatePrompt = `You are preparing a structured job interview. Write %d interview questions tailored to this candidate and company.

CANDIDATE SUMMARY:
%s

COMPANY BRIEF (%s):
%s

Distribute the questions across these categories: "talent_philosophy" (values and culture fit), "experience" (past work, concrete projects), "motivation" (why this company), "other". Mix difficulties "easy", "medium", "hard". For each question include 2-4 expected answer keywords and 1-2 follow-up question templates.

Return a single JSON object:
{"company_name": "...", "questions": [{"id": 1, "question": "...", "category": "...", "keywords": ["..."], "difficulty": "...", "follow_up_templates": ["..."]}]}
Return JSON only.`

// Generate builds the prompt, calls the model, and normalizes the reply into
// a validated question bank.
func Generate(ctx context.Context, client llm.Client, opts Options) (*types.QuestionBank, error) {
	if opts.ResumeSummary == "" {
		return nil, fmt.Errorf("resume summary is required for question generation")
	}
	if opts.QuestionCount <= 0 {
		opts.QuestionCount = DefaultQuestionCount
	}

	companyName := ""
	brief := "(no company research available)"
	if opts.Research != nil {
		companyName = opts.Research.CompanyName
		brief = formatBrief(opts.Research)
	}

	prompt := fmt.Sprintf(generatePrompt, opts.QuestionCount, opts.ResumeSummary, companyName, brief)
	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	bank, err := questionbank.Parse([]byte(llm.CleanJSONBlock(raw)))
	if err != nil {
		return nil, fmt.Errorf("generated question bank is malformed: %w", err)
	}

	if bank.CompanyName == "" {
		bank.CompanyName = companyName
	}
	bank.ResumeSummary = opts.ResumeSummary

	// Generator output is already normalized by Parse; the schema check is a
	// non-fatal safety net, mirroring output validation elsewhere.
	if err := questionbank.ValidateCanonical(bank); err != nil {
		fmt.Printf("Warning: generated bank failed schema validation: %v\n", err)
	}

	return bank, nil
}

// formatBrief flattens the research brief into prompt text.
func formatBrief(r *research.CompanyResearch) string {
	var sb strings.Builder
	if r.Summary != "" {
		sb.WriteString(r.Summary)
		sb.WriteString("\n")
	}
	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(items, "; "))
		sb.WriteString("\n")
	}
	writeList("Values", r.Values)
	writeList("Talent profile", r.TalentProfile)
	writeList("Recent projects", r.RecentProjects)
	return strings.TrimSpace(sb.String())
}
