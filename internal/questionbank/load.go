// Package questionbank loads question bank payloads and normalizes them to
// the canonical schema. All field-key variance from the upstream question
// generator is resolved here, at the boundary, so the engine core only ever
// sees canonical records.
package questionbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-navigator/internal/types"
)

//go:embed question_bank.schema.json
var bankSchema string

var validate = validator.New()

// rawQuestion accepts both canonical field keys and the localized keys the
// original question-generation stage emits.
type rawQuestion struct {
	ID                int      `json:"id"`
	Question          string   `json:"question" validate:"required_without=LegacyQuestion"`
	LegacyQuestion    string   `json:"질문 내용"`
	Category          string   `json:"category"`
	LegacyCategory    string   `json:"평가하려는 역량"`
	Keywords          []string `json:"keywords"`
	LegacyKeywords    []string `json:"예상 답변 키포인트"`
	Difficulty        string   `json:"difficulty"`
	FollowUpTemplates []string `json:"follow_up_templates"`
	LegacyTemplates   []string `json:"후속 질문 템플릿"`
}

// rawPayload is the wire form of a question bank before normalization.
type rawPayload struct {
	CompanyName   string        `json:"company_name"`
	ResumeSummary string        `json:"resume_summary"`
	Questions     []rawQuestion `json:"questions" validate:"min=1,dive"`
}

// Parse decodes and normalizes a question bank payload from JSON bytes.
func Parse(data []byte) (*types.QuestionBank, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question bank JSON: %w", err)
	}

	if err := validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("question bank payload invalid: %w", err)
	}

	bank := &types.QuestionBank{
		CompanyName:   raw.CompanyName,
		ResumeSummary: raw.ResumeSummary,
		Questions:     make([]types.Question, 0, len(raw.Questions)),
	}

	for i, rq := range raw.Questions {
		q := normalizeQuestion(rq)
		if q.ID == 0 {
			q.ID = i + 1
		}
		bank.Questions = append(bank.Questions, q)
	}
	bank.TotalQuestions = len(bank.Questions)

	if err := checkUniqueIDs(bank.Questions); err != nil {
		return nil, err
	}

	return bank, nil
}

// Load reads and parses a question bank from a JSON file.
func Load(path string) (*types.QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank file %s: %w", path, err)
	}
	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank from %s: %w", path, err)
	}
	return bank, nil
}

// normalizeQuestion resolves legacy keys and folds free-form category and
// difficulty strings onto the closed enums.
func normalizeQuestion(rq rawQuestion) types.Question {
	text := rq.Question
	if text == "" {
		text = rq.LegacyQuestion
	}
	category := rq.Category
	if category == "" {
		category = rq.LegacyCategory
	}
	keywords := rq.Keywords
	if len(keywords) == 0 {
		keywords = rq.LegacyKeywords
	}
	templates := rq.FollowUpTemplates
	if len(templates) == 0 {
		templates = rq.LegacyTemplates
	}

	return types.Question{
		ID:                rq.ID,
		Text:              text,
		Category:          types.NormalizeCategory(category),
		Keywords:          keywords,
		Difficulty:        types.NormalizeDifficulty(rq.Difficulty),
		FollowUpTemplates: templates,
	}
}

// checkUniqueIDs rejects banks with duplicate question ids.
func checkUniqueIDs(questions []types.Question) error {
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d in bank", q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}
