package types

// TurnKind tags the per-turn response emitted by the navigator.
type TurnKind string

// Per-turn response kinds.
const (
	TurnFollowUp     TurnKind = "follow_up"
	TurnNextQuestion TurnKind = "next_question"
	TurnComplete     TurnKind = "complete"
)

// TurnResponse is one navigator output: a follow-up, the next scripted
// question, or the completion message.
type TurnResponse struct {
	Kind       TurnKind          `json:"kind"`
	Text       string            `json:"text"`
	QuestionID int               `json:"question_id,omitempty"`
	Evaluation *EvaluationResult `json:"evaluation,omitempty"`
}

// Selection is the question selector's result. A nil QuestionID is the
// terminal sentinel: the interview has no remaining questions.
type Selection struct {
	QuestionID *int       `json:"question_id"`
	Text       string     `json:"question"`
	Category   Category   `json:"category"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Score      int        `json:"score"`
}

// Terminal reports whether the selection is the end-of-interview sentinel.
func (s *Selection) Terminal() bool {
	return s.QuestionID == nil
}
