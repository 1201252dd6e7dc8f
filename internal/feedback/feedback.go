// Package feedback produces the post-interview review report. It consumes the
// finished session transcript; the decision engine itself never calls it.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/types"
)

// QuestionFeedback is the per-question portion of the report.
type QuestionFeedback struct {
	QuestionID int    `json:"question_id"`
	Score      int    `json:"score"`
	Comment    string `json:"comment"`
}

// Report is the scored review of a finished interview session.
type Report struct {
	OverallScore int                `json:"overall_score"`
	Summary      string             `json:"summary"`
	Strengths    []string           `json:"strengths"`
	Improvements []string           `json:"improvements"`
	Questions    []QuestionFeedback `json:"questions"`
}

// feedbackPrompt defines the JSON contract for the review report.
const feedbackPrompt = `You are an interview coach reviewing a finished screening interview. Score the candidate's answers and give actionable feedback.

TRANSCRIPT:
%s

Score each question 0-100 on concreteness and relevance, then give an overall score, 2-4 strengths, and 2-4 improvements.

Return a single JSON object:
{"overall_score": 0, "summary": "...", "strengths": ["..."], "improvements": ["..."], "questions": [{"question_id": 1, "score": 0, "comment": "..."}]}
Return JSON only.`

// Generate builds the transcript from the session summary, calls the model,
// and parses the review report.
func Generate(ctx context.Context, client llm.Client, bank *types.QuestionBank, summary types.SessionSummary) (*Report, error) {
	if len(summary.ContextLog) == 0 {
		return nil, fmt.Errorf("session has no answered turns to review")
	}

	transcript := buildTranscript(bank, summary)
	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(feedbackPrompt, transcript), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("feedback generation failed: %w", err)
	}

	var report Report
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &report); err != nil {
		return nil, fmt.Errorf("failed to parse feedback JSON: %w", err)
	}
	return &report, nil
}

// buildTranscript flattens the context log into prompt text. Consecutive
// entries for the same question id are the follow-up exchanges on it.
func buildTranscript(bank *types.QuestionBank, summary types.SessionSummary) string {
	var sb strings.Builder
	lastID := 0
	for _, entry := range summary.ContextLog {
		if entry.QuestionID != lastID {
			text := "(question not in bank)"
			category := types.CategoryOther
			if q := bank.ByID(entry.QuestionID); q != nil {
				text = q.Text
				category = q.Category
			}
			sb.WriteString(fmt.Sprintf("Q%d [%s]: %s\n", entry.QuestionID, category, text))
			lastID = entry.QuestionID
		} else {
			sb.WriteString(fmt.Sprintf("Q%d (follow-up exchange)\n", entry.QuestionID))
		}
		sb.WriteString(fmt.Sprintf("A: %s\n\n", entry.Answer))
	}

	sb.WriteString(fmt.Sprintf("Questions asked: %d. Session complete: %v.", len(summary.AskedQuestionIDs), summary.Complete))
	return sb.String()
}
