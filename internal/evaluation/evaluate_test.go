package evaluation

import (
	"strings"
	"testing"

	"github.com/jonathan/interview-navigator/internal/types"
	"github.com/stretchr/testify/assert"
)

const question = "Tell me about a project you are proud of."

func TestEvaluate_MaxFollowUpsCapWins(t *testing.T) {
	// The cap fires first regardless of answer content, even content that
	// would otherwise trigger every other rule.
	answers := []string{
		"",
		"short",
		"I don't know anything about that topic at all, sorry.",
		"I led the team and we improved conversion by 40%, a real success story overall.",
	}

	for _, answer := range answers {
		result := Evaluate(question, answer, []string{"project"}, 2)
		assert.False(t, result.NeedsFollowUp)
		assert.Equal(t, types.ReasonMaxFollowUps, result.Reason)
		assert.Equal(t, 0, result.Analysis.InterestScore)
	}
}

func TestEvaluate_CapAlsoFiresAboveTwo(t *testing.T) {
	result := Evaluate(question, "short", nil, 5)
	assert.False(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonMaxFollowUps, result.Reason)
}

func TestEvaluate_TooShort(t *testing.T) {
	result := Evaluate(question, "I did some work", nil, 0)
	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonTooShort, result.Reason)
	assert.Equal(t, 15, result.Analysis.Length)
	assert.Equal(t, 3, result.Analysis.InterestScore)
}

func TestEvaluate_EmptyAnswerFallsIntoTooShort(t *testing.T) {
	result := Evaluate(question, "", nil, 0)
	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonTooShort, result.Reason)
	assert.Equal(t, 0, result.Analysis.Length)
}

func TestEvaluate_WhitespaceOnlyAnswerIsLengthZero(t *testing.T) {
	result := Evaluate(question, "   \n\t  ", nil, 0)
	assert.Equal(t, types.ReasonTooShort, result.Reason)
	assert.Equal(t, 0, result.Analysis.Length)
}

func TestEvaluate_LengthIsRuneCountNotByteCount(t *testing.T) {
	// 19 runes of multibyte text must still count as too short.
	answer := strings.Repeat("면", 19)
	result := Evaluate(question, answer, nil, 0)
	assert.Equal(t, types.ReasonTooShort, result.Reason)
	assert.Equal(t, 19, result.Analysis.Length)
}

func TestEvaluate_Evasive(t *testing.T) {
	result := Evaluate(question, "Honestly I don't know what to say about that one.", nil, 0)
	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonEvasive, result.Reason)
	assert.Equal(t, 2, result.Analysis.InterestScore)
}

func TestEvaluate_EvasiveIsCaseInsensitive(t *testing.T) {
	result := Evaluate(question, "I'm NOT SURE that applies to my previous role.", nil, 0)
	assert.Equal(t, types.ReasonEvasive, result.Reason)
}

func TestEvaluate_TooShortBeatsEvasive(t *testing.T) {
	// "no idea" is evasive, but the answer is under 20 runes so the earlier
	// rule wins.
	result := Evaluate(question, "no idea, sorry", nil, 0)
	assert.Equal(t, types.ReasonTooShort, result.Reason)
}

func TestEvaluate_InterestingPoint(t *testing.T) {
	answer := "I led a migration project and we improved deploy time by 60% across the org."
	result := Evaluate(question, answer, []string{"project"}, 0)

	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonInterestingPoint, result.Reason)
	assert.GreaterOrEqual(t, result.Analysis.InterestScore, 2)
	assert.True(t, result.Analysis.KeywordFound)
	assert.Contains(t, result.InterestPatterns, types.InterestNumbers)
	assert.Contains(t, result.InterestPatterns, types.InterestLeadership)
}

func TestEvaluate_CategoryCountsOnceDespiteMultipleTriggers(t *testing.T) {
	// Two achievement triggers, one conflict trigger: score is 2, not 3.
	answer := "We achieved the rollout and improved latency despite a difficult vendor handover."
	result := Evaluate(question, answer, nil, 0)

	assert.Equal(t, types.ReasonInterestingPoint, result.Reason)
	assert.Equal(t, 2, result.Analysis.InterestScore)
	assert.ElementsMatch(t,
		[]types.InterestCategory{types.InterestConflict, types.InterestAchievement},
		result.InterestPatterns)
}

func TestEvaluate_NoKeywordsShort(t *testing.T) {
	answer := "It was a reasonable experience and I enjoyed working there."
	result := Evaluate(question, answer, []string{"kubernetes", "terraform"}, 0)

	assert.True(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonNoKeywordsShort, result.Reason)
	assert.False(t, result.Analysis.KeywordFound)
}

func TestEvaluate_SufficientWithKeyword(t *testing.T) {
	answer := "My main Kubernetes work involved migrating workloads onto a shared cluster."
	result := Evaluate(question, answer, []string{"Kubernetes"}, 0)

	assert.False(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonSufficient, result.Reason)
	assert.True(t, result.Analysis.KeywordFound)
}

func TestEvaluate_SufficientWhenLongWithoutKeywords(t *testing.T) {
	answer := strings.Repeat("The role mostly involved routine maintenance and support rotations. ", 3)
	result := Evaluate(question, answer, []string{"golang"}, 0)

	assert.False(t, result.NeedsFollowUp)
	assert.Equal(t, types.ReasonSufficient, result.Reason)
}

func TestEvaluate_KeywordMatchIsCaseInsensitive(t *testing.T) {
	answer := "I spent most of my time on TERRAFORM modules for the platform group."
	result := Evaluate(question, answer, []string{"terraform"}, 0)
	assert.True(t, result.Analysis.KeywordFound)
}

func TestEvaluate_Deterministic(t *testing.T) {
	answer := "I led a project and we improved throughput by 25% after a difficult quarter."
	first := Evaluate(question, answer, []string{"project"}, 1)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(question, answer, []string{"project"}, 1))
	}
}
