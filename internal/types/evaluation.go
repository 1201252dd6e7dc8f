package types

// Reason is the closed set of evaluator decisions. Exactly one reason is
// produced per turn; rules are evaluated top to bottom and the first match wins.
type Reason string

// Evaluator decision reasons.
const (
	ReasonMaxFollowUps     Reason = "max_follow_ups"
	ReasonTooShort         Reason = "too_short"
	ReasonEvasive          Reason = "evasive"
	ReasonInterestingPoint Reason = "interesting_point"
	ReasonNoKeywordsShort  Reason = "no_keywords_short"
	ReasonSufficient       Reason = "sufficient"
)

// InterestCategory tags a heuristic content signal worth probing further.
type InterestCategory string

// Interest pattern categories. Each counts at most once per answer.
const (
	InterestNumbers     InterestCategory = "numbers"
	InterestConflict    InterestCategory = "conflict"
	InterestAchievement InterestCategory = "achievement"
	InterestLeadership  InterestCategory = "leadership"
	InterestCreative    InterestCategory = "creative"
)

// Analysis carries the raw measurements behind an evaluation decision.
type Analysis struct {
	Length        int  `json:"length"`
	KeywordFound  bool `json:"keyword_found"`
	InterestScore int  `json:"interest_score"`
}

// EvaluationResult is the per-turn evaluator output. Transient, never persisted.
type EvaluationResult struct {
	NeedsFollowUp    bool               `json:"needs_follow_up"`
	Reason           Reason             `json:"reason"`
	InterestPatterns []InterestCategory `json:"interest_patterns,omitempty"`
	Analysis         Analysis           `json:"analysis"`
}
