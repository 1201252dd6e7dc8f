package followup

import (
	"testing"

	"github.com/jonathan/interview-navigator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_FixedPromptsPerReason(t *testing.T) {
	assert.Equal(t, promptElaborate, Generate(types.ReasonTooShort, nil))
	assert.Equal(t, promptRelatedStory, Generate(types.ReasonEvasive, nil))
	assert.Equal(t, promptConcreteExample, Generate(types.ReasonNoKeywordsShort, nil))
}

func TestGenerate_UnknownReasonFallsBackToGenericProbe(t *testing.T) {
	assert.Equal(t, promptGenericProbe, Generate(types.ReasonSufficient, nil))
	assert.Equal(t, promptGenericProbe, Generate(types.Reason("bogus"), nil))
}

func TestGenerate_InterestingPoint_AchievementPriority(t *testing.T) {
	// Achievement or numbers outrank every other category regardless of the
	// order the evaluator reported them in.
	cases := [][]types.InterestCategory{
		{types.InterestAchievement},
		{types.InterestNumbers},
		{types.InterestConflict, types.InterestNumbers},
		{types.InterestLeadership, types.InterestConflict, types.InterestAchievement},
	}
	for _, patterns := range cases {
		assert.Equal(t, achievementTemplates[0], Generate(types.ReasonInterestingPoint, patterns))
	}
}

func TestGenerate_InterestingPoint_ConflictBeforeLeadership(t *testing.T) {
	patterns := []types.InterestCategory{types.InterestLeadership, types.InterestConflict}
	assert.Equal(t, conflictTemplates[0], Generate(types.ReasonInterestingPoint, patterns))
}

func TestGenerate_InterestingPoint_Leadership(t *testing.T) {
	patterns := []types.InterestCategory{types.InterestLeadership}
	assert.Equal(t, leadershipTemplates[0], Generate(types.ReasonInterestingPoint, patterns))
}

func TestGenerate_InterestingPoint_DefaultWhenOnlyCreative(t *testing.T) {
	patterns := []types.InterestCategory{types.InterestCreative}
	assert.Equal(t, defaultTemplates[0], Generate(types.ReasonInterestingPoint, patterns))
}

func TestGenerate_InterestingPoint_DefaultWhenNoPatterns(t *testing.T) {
	assert.Equal(t, defaultTemplates[0], Generate(types.ReasonInterestingPoint, nil))
}

func TestGenerate_Deterministic(t *testing.T) {
	patterns := []types.InterestCategory{types.InterestConflict, types.InterestCreative}
	first := Generate(types.ReasonInterestingPoint, patterns)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate(types.ReasonInterestingPoint, patterns))
	}
}
