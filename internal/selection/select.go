// Package selection picks the next question to ask. Scoring is greedy and
// single-step with no lookahead: locally optimal per turn, which keeps the
// live turn loop cheap and predictable.
package selection

import (
	"strings"

	"github.com/jonathan/interview-navigator/internal/balance"
	"github.com/jonathan/interview-navigator/internal/types"
)

// closingMessage is the terminal sentinel text emitted when no questions remain.
const closingMessage = "That brings us to the end of the interview. Thank you for your time!"

// scoredCandidate pairs a bank question with its score for one selection call.
type scoredCandidate struct {
	question *types.Question
	score    int
}

// Select scores every unasked question and returns the highest-scoring one.
// Ties break toward the candidate appearing first in bank order. When no
// candidates remain it returns the terminal sentinel (nil QuestionID,
// category end, score 0), the only terminal condition of the interview flow.
func Select(bank *types.QuestionBank, askedIDs []int, bal balance.CategoryBalance, lastAnswer string) types.Selection {
	asked := make(map[int]bool, len(askedIDs))
	for _, id := range askedIDs {
		asked[id] = true
	}

	var best *scoredCandidate
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if asked[q.ID] {
			continue
		}
		score := scoreCandidate(q, bal, lastAnswer, len(askedIDs))
		if best == nil || score > best.score {
			best = &scoredCandidate{question: q, score: score}
		}
	}

	if best == nil {
		return types.Selection{
			QuestionID: nil,
			Text:       closingMessage,
			Category:   types.CategoryEnd,
			Score:      0,
		}
	}

	id := best.question.ID
	return types.Selection{
		QuestionID: &id,
		Text:       best.question.Text,
		Category:   best.question.Category,
		Difficulty: best.question.Difficulty,
		Score:      best.score,
	}
}

// Factor weights. The four factors are independent and sum to at most 100.
const (
	balanceNeeded  = 40
	balanceDefault = 10

	contextMatched   = 30
	contextUnmatched = 5
	contextFirstTurn = 15

	pacingMatched = 20
	pacingPartial = 10

	importanceCore  = 10
	importanceOther = 3
)

// Difficulty pacing bands by number of questions already asked.
const (
	earlyBandMax = 3
	midBandMax   = 7
)

// scoreCandidate computes the integer score in [0,100] for one candidate.
func scoreCandidate(q *types.Question, bal balance.CategoryBalance, lastAnswer string, totalAsked int) int {
	score := 0

	// Category balance: favor under-represented categories.
	if bal.NeedsCategory(q.Category) {
		score += balanceNeeded
	} else {
		score += balanceDefault
	}

	// Context continuity: favor questions whose keywords appeared in the last
	// answer. First turn gets a flat middle score.
	score += contextScore(q.Keywords, lastAnswer)

	// Difficulty pacing: easy early, medium mid, hard late.
	score += pacingScore(q.Difficulty, totalAsked)

	// Category importance: core categories outrank other.
	switch q.Category {
	case types.CategoryTalentPhilosophy, types.CategoryExperience, types.CategoryMotivation:
		score += importanceCore
	default:
		score += importanceOther
	}

	return score
}

func contextScore(keywords []string, lastAnswer string) int {
	if lastAnswer == "" {
		return contextFirstTurn
	}
	lowered := strings.ToLower(lastAnswer)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lowered, kw) {
			return contextMatched
		}
	}
	return contextUnmatched
}

func pacingScore(difficulty types.Difficulty, totalAsked int) int {
	switch {
	case totalAsked <= earlyBandMax:
		switch difficulty {
		case types.DifficultyEasy:
			return pacingMatched
		case types.DifficultyMedium:
			return pacingPartial
		default:
			return 0
		}
	case totalAsked <= midBandMax:
		if difficulty == types.DifficultyMedium {
			return pacingMatched
		}
		return pacingPartial
	default:
		if difficulty == types.DifficultyHard {
			return pacingMatched
		}
		return pacingPartial
	}
}
