package evaluation

import "github.com/jonathan/interview-navigator/internal/types"

// evasivePhrases trigger the evasive rule. Matching is case-insensitive
// substring containment; phrases are chosen long enough not to fire on
// incidental word fragments.
var evasivePhrases = []string{
	"don't know",
	"do not know",
	"not sure",
	"can't recall",
	"can't remember",
	"cannot remember",
	"no idea",
	"nothing comes to mind",
	"nothing in particular",
	"never thought about",
}

// interestPattern pairs a category with its fixed trigger substrings.
// A category counts once per answer even if several triggers match.
type interestPattern struct {
	category types.InterestCategory
	triggers []string
}

// interestPatterns is a fixed, ordered table. Iteration order is part of the
// contract so that identical answers always yield identical pattern sets.
var interestPatterns = []interestPattern{
	{types.InterestNumbers, []string{
		"%", "percent", "doubled", "tripled", "ranked", "times faster", "out of",
	}},
	{types.InterestConflict, []string{
		"conflict", "disagree", "clash", "difficult", "struggle", "problem", "failure", "failed",
	}},
	{types.InterestAchievement, []string{
		"achieved", "accomplish", "succeeded", "success", "improved", "increased", "award", "delivered", "first place",
	}},
	{types.InterestLeadership, []string{
		"led", "leading", "managed", "mentored", "team lead", "coordinated", "drove the",
	}},
	{types.InterestCreative, []string{
		"new approach", "creative", "innovative", "invented", "came up with", "designed",
	}},
}
