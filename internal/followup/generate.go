// Package followup produces the supplementary question text for a turn that
// needs one. Selection is a pure lookup over fixed template tables, so the
// same inputs always yield the same sentence.
package followup

import "github.com/jonathan/interview-navigator/internal/types"

// Fixed prompts keyed by evaluator reason.
const (
	promptElaborate       = "Could you walk me through that in a bit more detail?"
	promptRelatedStory    = "Is there perhaps a related experience you could share instead?"
	promptConcreteExample = "Could you give me a concrete example of that?"
	promptGenericProbe    = "Could you be a little more specific about that?"
)

// Templates keyed by interest category. Only the first entry of the chosen
// list is ever returned today; the rest document the intended rotation.
var (
	achievementTemplates = []string{
		"What specifically did you do to reach that result?",
		"What was the hardest part of getting there?",
		"How long did it take before the results showed?",
	}
	conflictTemplates = []string{
		"How did you work through that difficulty?",
		"What mattered most to you at that moment?",
		"What did you take away from that experience?",
	}
	leadershipTemplates = []string{
		"What was the toughest moment you faced leading that team?",
		"How did you keep communication going with the team?",
		"What value did you hold on to most as a lead?",
	}
	defaultTemplates = []string{
		"What moment from that experience stays with you most?",
		"What approach did you actually take there?",
	}
)

// Generate returns the follow-up question for the given reason. For
// interesting_point the template list is chosen by a fixed priority over the
// matched categories: numeric-or-achievement first, then conflict, then
// leadership, then the default list. This priority is deliberate and
// independent of the order the categories were detected in.
func Generate(reason types.Reason, patterns []types.InterestCategory) string {
	switch reason {
	case types.ReasonTooShort:
		return promptElaborate
	case types.ReasonEvasive:
		return promptRelatedStory
	case types.ReasonNoKeywordsShort:
		return promptConcreteExample
	case types.ReasonInterestingPoint:
		return templatesFor(patterns)[0]
	default:
		return promptGenericProbe
	}
}

// templatesFor resolves the template list for a matched category set.
func templatesFor(patterns []types.InterestCategory) []string {
	if hasCategory(patterns, types.InterestNumbers) || hasCategory(patterns, types.InterestAchievement) {
		return achievementTemplates
	}
	if hasCategory(patterns, types.InterestConflict) {
		return conflictTemplates
	}
	if hasCategory(patterns, types.InterestLeadership) {
		return leadershipTemplates
	}
	return defaultTemplates
}

func hasCategory(patterns []types.InterestCategory, want types.InterestCategory) bool {
	for _, p := range patterns {
		if p == want {
			return true
		}
	}
	return false
}
