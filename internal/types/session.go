package types

// ContextEntry records one answered turn for later reporting.
type ContextEntry struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// InterviewState is the mutable per-session record. One instance per session,
// owned exclusively by that session's navigator; never shared across sessions.
type InterviewState struct {
	CurrentQuestionID int            `json:"current_question_id"`
	AskedQuestionIDs  []int          `json:"asked_question_ids"`
	FollowUpCounts    map[int]int    `json:"follow_up_counts"`
	ContextLog        []ContextEntry `json:"context_log"`
}

// NewInterviewState returns an empty state positioned before the first question.
func NewInterviewState() *InterviewState {
	return &InterviewState{
		FollowUpCounts: make(map[int]int),
	}
}

// MarkAsked appends id to the asked list. Idempotent: a question id enters the
// list exactly once, when the navigator advances away from it.
func (s *InterviewState) MarkAsked(id int) {
	for _, asked := range s.AskedQuestionIDs {
		if asked == id {
			return
		}
	}
	s.AskedQuestionIDs = append(s.AskedQuestionIDs, id)
}

// WasAsked reports whether id is already in the asked list.
func (s *InterviewState) WasAsked(id int) bool {
	for _, asked := range s.AskedQuestionIDs {
		if asked == id {
			return true
		}
	}
	return false
}

// SessionSummary is the final per-session report consumed by the external
// feedback stage: asked question ids in order plus per-question follow-up counts.
type SessionSummary struct {
	AskedQuestionIDs []int          `json:"asked_question_ids"`
	FollowUpCounts   map[int]int    `json:"follow_up_counts"`
	ContextLog       []ContextEntry `json:"context_log"`
	Complete         bool           `json:"complete"`
}
