// Package evaluation decides, per answered turn, whether a follow-up question
// is warranted. The decision is a fixed ordered rule set: first matching rule
// wins, so the rules are mutually exclusive by construction.
package evaluation

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-navigator/internal/types"
)

const (
	// maxFollowUps is the hard cap of follow-ups per question. Never exceeded
	// regardless of answer content.
	maxFollowUps = 2
	// shortAnswerLen is the rune count below which an answer is too short.
	shortAnswerLen = 20
	// thinAnswerLen is the rune count below which a keyword-free answer still
	// earns a follow-up.
	thinAnswerLen = 100
	// interestThreshold is the number of distinct interest categories that
	// makes an answer worth probing deeper.
	interestThreshold = 2
)

// Evaluate maps (question, answer, keywords, follow-up count so far) to a
// follow-up decision. Pure: same inputs always produce the same result.
func Evaluate(question, answer string, keywords []string, followUpCount int) types.EvaluationResult {
	answer = strings.TrimSpace(answer)
	length := utf8.RuneCountInString(answer)

	// Rule 1: hard cap on follow-ups per question.
	if followUpCount >= maxFollowUps {
		return types.EvaluationResult{
			NeedsFollowUp: false,
			Reason:        types.ReasonMaxFollowUps,
			Analysis:      types.Analysis{Length: length},
		}
	}

	// Rule 2: answer too short to judge. Empty answers land here as length 0.
	if length < shortAnswerLen {
		return types.EvaluationResult{
			NeedsFollowUp: true,
			Reason:        types.ReasonTooShort,
			Analysis:      types.Analysis{Length: length, InterestScore: 3},
		}
	}

	lowered := strings.ToLower(answer)

	// Rule 3: evasive answer.
	for _, phrase := range evasivePhrases {
		if strings.Contains(lowered, phrase) {
			return types.EvaluationResult{
				NeedsFollowUp: true,
				Reason:        types.ReasonEvasive,
				Analysis:      types.Analysis{Length: length, InterestScore: 2},
			}
		}
	}

	keywordFound := containsAnyKeyword(lowered, keywords)
	found := matchInterestPatterns(lowered)
	interestScore := len(found)

	// Rule 4: two or more distinct interest signals are worth digging into.
	if interestScore >= interestThreshold {
		return types.EvaluationResult{
			NeedsFollowUp:    true,
			Reason:           types.ReasonInterestingPoint,
			InterestPatterns: found,
			Analysis: types.Analysis{
				Length:        length,
				KeywordFound:  keywordFound,
				InterestScore: interestScore,
			},
		}
	}

	// Rule 5: no expected keywords and not much substance.
	if !keywordFound && length < thinAnswerLen {
		return types.EvaluationResult{
			NeedsFollowUp: true,
			Reason:        types.ReasonNoKeywordsShort,
			Analysis: types.Analysis{
				Length:        length,
				InterestScore: interestScore,
			},
		}
	}

	return types.EvaluationResult{
		NeedsFollowUp: false,
		Reason:        types.ReasonSufficient,
		Analysis: types.Analysis{
			Length:        length,
			KeywordFound:  keywordFound,
			InterestScore: interestScore,
		},
	}
}

// containsAnyKeyword reports whether any keyword appears in the lowercased
// answer. Simple substring matching, case-insensitive.
func containsAnyKeyword(loweredAnswer string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(loweredAnswer, kw) {
			return true
		}
	}
	return false
}

// matchInterestPatterns returns the distinct interest categories triggered by
// the answer, in the fixed table order.
func matchInterestPatterns(loweredAnswer string) []types.InterestCategory {
	var found []types.InterestCategory
	for _, pattern := range interestPatterns {
		for _, trigger := range pattern.triggers {
			if strings.Contains(loweredAnswer, trigger) {
				found = append(found, pattern.category)
				break
			}
		}
	}
	return found
}
