// Package types provides type definitions for structured data used throughout the interview-navigator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Category is the closed set of question topic buckets used for balancing.
type Category string

// Known categories. Anything else folds into CategoryOther at the bank boundary.
const (
	CategoryTalentPhilosophy Category = "talent_philosophy"
	CategoryExperience       Category = "experience"
	CategoryMotivation       Category = "motivation"
	CategoryOther            Category = "other"
	// CategoryEnd tags the terminal sentinel returned when no questions remain.
	CategoryEnd Category = "end"
)

// NormalizeCategory maps a raw category string onto the closed category set.
// Unrecognized or empty values fold into CategoryOther.
func NormalizeCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryTalentPhilosophy:
		return CategoryTalentPhilosophy
	case CategoryExperience:
		return CategoryExperience
	case CategoryMotivation:
		return CategoryMotivation
	default:
		return CategoryOther
	}
}

// Difficulty is the closed set of question difficulty levels.
type Difficulty string

// Difficulty levels used for pacing.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// NormalizeDifficulty maps a raw difficulty string onto the closed set.
// Unrecognized or empty values default to medium, matching the generator's default.
func NormalizeDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Question is a single prepared interview question. Immutable once loaded.
type Question struct {
	ID                int        `json:"id"`
	Text              string     `json:"question"`
	Category          Category   `json:"category"`
	Keywords          []string   `json:"keywords,omitempty"`
	Difficulty        Difficulty `json:"difficulty"`
	FollowUpTemplates []string   `json:"follow_up_templates,omitempty"`
}

// QuestionBank is the immutable, ordered catalog of prepared questions for a session.
type QuestionBank struct {
	CompanyName    string     `json:"company_name,omitempty"`
	ResumeSummary  string     `json:"resume_summary,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	Questions      []Question `json:"questions"`
}

// ByID returns the question with the given id, or nil if absent.
func (b *QuestionBank) ByID(id int) *Question {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i]
		}
	}
	return nil
}

// First returns the first question in bank order, or nil if the bank is empty.
func (b *QuestionBank) First() *Question {
	if len(b.Questions) == 0 {
		return nil
	}
	return &b.Questions[0]
}
