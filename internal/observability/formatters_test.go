package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-navigator/internal/research"
	"github.com/jonathan/interview-navigator/internal/types"
)

func TestPrintBank(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	bank := &types.QuestionBank{
		CompanyName:    "Acme Corp",
		TotalQuestions: 3,
		Questions: []types.Question{
			{ID: 1, Text: "Why Acme?", Category: types.CategoryMotivation},
			{ID: 2, Text: "Describe a hard bug you fixed.", Category: types.CategoryExperience},
			{ID: 3, Text: "Tell me about a teammate you mentored.", Category: types.CategoryExperience},
		},
	}

	p.PrintBank(bank)
	output := buf.String()

	assert.Contains(t, output, "QUESTION BANK")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "experience: 2")
	assert.Contains(t, output, "motivation: 1")
	assert.Contains(t, output, "#1")
}

func TestPrintBank_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBank(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBank_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	questions := make([]types.Question, 8)
	for i := range questions {
		questions[i] = types.Question{ID: i + 1, Text: "Question text", Category: types.CategoryOther}
	}
	p.PrintBank(&types.QuestionBank{TotalQuestions: 8, Questions: questions})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(&types.EvaluationResult{
		NeedsFollowUp:    true,
		Reason:           types.ReasonInterestingPoint,
		InterestPatterns: []types.InterestCategory{types.InterestNumbers, types.InterestLeadership},
		Analysis:         types.Analysis{Length: 142, KeywordFound: true, InterestScore: 2},
	})
	output := buf.String()

	assert.Contains(t, output, "ANSWER EVALUATION")
	assert.Contains(t, output, "interesting_point")
	assert.Contains(t, output, "142")
	assert.Contains(t, output, "numbers, leadership")
}

func TestPrintEvaluation_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResearch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResearch(&research.CompanyResearch{
		CompanyName:   "Acme Corp",
		Values:        []string{"ownership", "candor"},
		TalentProfile: []string{"self-directed builders"},
		SourceURLs:    []string{"https://acme.example/about"},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPANY RESEARCH")
	assert.Contains(t, output, "ownership")
	assert.Contains(t, output, "self-directed builders")
	assert.Contains(t, output, "Sources:  1")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(types.SessionSummary{
		AskedQuestionIDs: []int{3, 1, 5},
		FollowUpCounts:   map[int]int{3: 2, 1: 1},
		ContextLog: []types.ContextEntry{
			{QuestionID: 3, Answer: "a"}, {QuestionID: 3, Answer: "b"},
		},
		Complete: true,
	})
	output := buf.String()

	assert.Contains(t, output, "SESSION SUMMARY")
	assert.Contains(t, output, "complete")
	assert.Contains(t, output, "Questions asked: 3")
	assert.Contains(t, output, "Follow-ups:      3")
	assert.Contains(t, output, "#3 → #1 → #5")
}

func TestPrintBank_TruncatesMultibyteTextOnRuneBoundary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBank(&types.QuestionBank{
		TotalQuestions: 1,
		Questions: []types.Question{
			{ID: 1, Text: strings.Repeat("질", 60), Category: types.CategoryOther},
		},
	})
	output := buf.String()

	assert.True(t, utf8.ValidString(output))
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "�")
}
