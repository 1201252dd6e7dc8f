// Package navigator drives the per-turn interview control loop: receive an
// answer, evaluate it, then either probe deeper with a follow-up or advance
// to the next scripted question.
package navigator

import (
	"errors"
	"fmt"

	"github.com/jonathan/interview-navigator/internal/balance"
	"github.com/jonathan/interview-navigator/internal/evaluation"
	"github.com/jonathan/interview-navigator/internal/followup"
	"github.com/jonathan/interview-navigator/internal/selection"
	"github.com/jonathan/interview-navigator/internal/types"
)

// Status is the session lifecycle state.
type Status string

// Session lifecycle states. Complete is absorbing.
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Sentinel errors for rejected transitions. These report status, they are not
// crashes: callers treat them as no-ops.
var (
	// ErrNotStarted is returned when an answer arrives before Start.
	ErrNotStarted = errors.New("session not started")
	// ErrComplete is returned when an answer arrives after the session ended.
	ErrComplete = errors.New("session already complete")
)

// Navigator owns one session's state. Not safe for concurrent use; run
// independent sessions on independent Navigator instances.
type Navigator struct {
	bank   *types.QuestionBank
	state  *types.InterviewState
	status Status
}

// New creates a navigator over the given bank. The bank must be non-empty:
// a session cannot start without a first question to emit.
func New(bank *types.QuestionBank) (*Navigator, error) {
	if bank == nil || len(bank.Questions) == 0 {
		return nil, fmt.Errorf("question bank is empty: cannot start a session")
	}
	return &Navigator{
		bank:   bank,
		state:  types.NewInterviewState(),
		status: StatusNotStarted,
	}, nil
}

// Status returns the session lifecycle state.
func (n *Navigator) Status() Status {
	return n.status
}

// State returns the session state for snapshotting. The caller must not
// mutate it.
func (n *Navigator) State() *types.InterviewState {
	return n.state
}

// Start emits the first question (the bank's first entry, no evaluation) and
// moves the session to in-progress. Starting twice is rejected.
func (n *Navigator) Start() (types.TurnResponse, error) {
	if n.status != StatusNotStarted {
		return types.TurnResponse{}, fmt.Errorf("session already started (status %s)", n.status)
	}

	first := n.bank.First()
	n.state.CurrentQuestionID = first.ID
	n.status = StatusInProgress

	return types.TurnResponse{
		Kind:       types.TurnNextQuestion,
		Text:       first.Text,
		QuestionID: first.ID,
	}, nil
}

// SubmitAnswer processes one answer and returns the next turn: a follow-up on
// the same question, the next scripted question, or the completion message.
// Answers submitted before Start or after completion are rejected as no-ops.
func (n *Navigator) SubmitAnswer(answer string) (types.TurnResponse, error) {
	switch n.status {
	case StatusNotStarted:
		return types.TurnResponse{}, ErrNotStarted
	case StatusComplete:
		return types.TurnResponse{}, ErrComplete
	}

	current := n.bank.ByID(n.state.CurrentQuestionID)
	if current == nil {
		return types.TurnResponse{}, fmt.Errorf("current question %d not in bank", n.state.CurrentQuestionID)
	}

	result := evaluation.Evaluate(current.Text, answer, current.Keywords, n.state.FollowUpCounts[current.ID])
	n.state.ContextLog = append(n.state.ContextLog, types.ContextEntry{
		QuestionID: current.ID,
		Answer:     answer,
	})

	if result.NeedsFollowUp {
		n.state.FollowUpCounts[current.ID]++
		return types.TurnResponse{
			Kind:       types.TurnFollowUp,
			Text:       followup.Generate(result.Reason, result.InterestPatterns),
			QuestionID: current.ID,
			Evaluation: &result,
		}, nil
	}

	n.state.MarkAsked(current.ID)

	bal := balance.Compute(n.askedQuestions())
	sel := selection.Select(n.bank, n.state.AskedQuestionIDs, bal, answer)
	if sel.Terminal() {
		n.status = StatusComplete
		return types.TurnResponse{
			Kind:       types.TurnComplete,
			Text:       sel.Text,
			Evaluation: &result,
		}, nil
	}

	n.state.CurrentQuestionID = *sel.QuestionID
	return types.TurnResponse{
		Kind:       types.TurnNextQuestion,
		Text:       sel.Text,
		QuestionID: *sel.QuestionID,
		Evaluation: &result,
	}, nil
}

// Summary returns the final session report for the external feedback stage.
func (n *Navigator) Summary() types.SessionSummary {
	counts := make(map[int]int, len(n.state.FollowUpCounts))
	for id, c := range n.state.FollowUpCounts {
		counts[id] = c
	}
	asked := make([]int, len(n.state.AskedQuestionIDs))
	copy(asked, n.state.AskedQuestionIDs)
	log := make([]types.ContextEntry, len(n.state.ContextLog))
	copy(log, n.state.ContextLog)

	return types.SessionSummary{
		AskedQuestionIDs: asked,
		FollowUpCounts:   counts,
		ContextLog:       log,
		Complete:         n.status == StatusComplete,
	}
}

// askedQuestions resolves asked ids back to their bank records for balancing.
func (n *Navigator) askedQuestions() []types.Question {
	asked := make([]types.Question, 0, len(n.state.AskedQuestionIDs))
	for _, id := range n.state.AskedQuestionIDs {
		if q := n.bank.ByID(id); q != nil {
			asked = append(asked, *q)
		}
	}
	return asked
}
