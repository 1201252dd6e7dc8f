package feedback

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/jonathan/interview-navigator/internal/types"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

const reportReply = `{
	"overall_score": 72,
	"summary": "Solid on motivation, thin on concrete project detail.",
	"strengths": ["clear motivation"],
	"improvements": ["quantify results"],
	"questions": [{"question_id": 1, "score": 80, "comment": "Specific and sincere."}]
}`

func testBank() *types.QuestionBank {
	return &types.QuestionBank{
		CompanyName:    "Acme",
		TotalQuestions: 2,
		Questions: []types.Question{
			{ID: 1, Text: "Why Acme?", Category: types.CategoryMotivation},
			{ID: 2, Text: "Describe a project you led.", Category: types.CategoryExperience},
		},
	}
}

func TestGenerate_ParsesReport(t *testing.T) {
	client := &fakeClient{response: reportReply}

	report, err := Generate(context.Background(), client, testBank(), types.SessionSummary{
		AskedQuestionIDs: []int{1},
		ContextLog:       []types.ContextEntry{{QuestionID: 1, Answer: "I admire the mission."}},
		Complete:         true,
	})
	require.NoError(t, err)

	assert.Equal(t, 72, report.OverallScore)
	assert.Equal(t, []string{"quantify results"}, report.Improvements)
	require.Len(t, report.Questions, 1)
	assert.Equal(t, 80, report.Questions[0].Score)
}

func TestGenerate_TranscriptCarriesQuestionsAndAnswers(t *testing.T) {
	client := &fakeClient{response: reportReply}

	_, err := Generate(context.Background(), client, testBank(), types.SessionSummary{
		AskedQuestionIDs: []int{1, 2},
		ContextLog: []types.ContextEntry{
			{QuestionID: 1, Answer: "I admire the mission."},
			{QuestionID: 1, Answer: "Specifically the open culture."},
			{QuestionID: 2, Answer: "I led a payments migration."},
		},
		Complete: true,
	})
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "Q1 [motivation]: Why Acme?")
	assert.Contains(t, client.prompt, "follow-up exchange")
	assert.Contains(t, client.prompt, "I led a payments migration.")
	assert.Contains(t, client.prompt, "Session complete: true")
}

func TestGenerate_EmptySessionRejected(t *testing.T) {
	client := &fakeClient{response: reportReply}

	_, err := Generate(context.Background(), client, testBank(), types.SessionSummary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no answered turns")
}

func TestGenerate_ModelErrorWrapped(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}

	_, err := Generate(context.Background(), client, testBank(), types.SessionSummary{
		ContextLog: []types.ContextEntry{{QuestionID: 1, Answer: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedback generation failed")
}

func TestGenerate_MalformedReplyRejected(t *testing.T) {
	client := &fakeClient{response: "not json"}

	_, err := Generate(context.Background(), client, testBank(), types.SessionSummary{
		ContextLog: []types.ContextEntry{{QuestionID: 1, Answer: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse feedback JSON")
}

func TestGenerate_UnknownQuestionIDStillTranscribed(t *testing.T) {
	client := &fakeClient{response: reportReply}

	_, err := Generate(context.Background(), client, testBank(), types.SessionSummary{
		ContextLog: []types.ContextEntry{{QuestionID: 99, Answer: "stray"}},
	})
	require.NoError(t, err)
	assert.Contains(t, client.prompt, "(question not in bank)")
}
