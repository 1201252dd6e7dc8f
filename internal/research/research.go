package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/interview-navigator/internal/llm"
)

// CompanyResearch is the structured brief handed to the question generator.
type CompanyResearch struct {
	CompanyName    string   `json:"company_name"`
	Values         []string `json:"values"`
	TalentProfile  []string `json:"talent_profile"`
	RecentProjects []string `json:"recent_projects"`
	Summary        string   `json:"summary"`
	SourceURLs     []string `json:"source_urls"`
}

// extractPrompt asks for the structured brief as JSON.
const extractPrompt = `You are researching the company %q ahead of a job interview. From the page text below, extract a JSON object with fields: "company_name" (string), "values" (array of short strings), "talent_profile" (array of short strings describing the kind of person they hire), "recent_projects" (array of short strings), "summary" (3-4 sentences). Use only information present in the text. Return JSON only.

PAGE TEXT:
%s`

// Run fetches each seed URL, pools the readable text, and extracts the
// company brief. Pages that fail to fetch are skipped; research fails only
// when every page does.
func Run(ctx context.Context, fetcher Fetcher, client llm.Client, companyName string, seedURLs []string) (*CompanyResearch, error) {
	if len(seedURLs) == 0 {
		return nil, fmt.Errorf("no research seed URLs for %s", companyName)
	}

	var pooled strings.Builder
	var fetched []string
	for _, seed := range seedURLs {
		text, err := fetcher.FetchText(ctx, seed)
		if err != nil {
			fmt.Printf("Warning: skipping research page %s: %v\n", seed, err)
			continue
		}
		if text == "" {
			continue
		}
		pooled.WriteString(text)
		pooled.WriteString("\n\n")
		fetched = append(fetched, seed)
	}

	if len(fetched) == 0 {
		return nil, fmt.Errorf("all %d research pages failed for %s", len(seedURLs), companyName)
	}

	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(extractPrompt, companyName, pooled.String()), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("company research extraction failed: %w", err)
	}

	var result CompanyResearch
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse research JSON: %w", err)
	}

	if result.CompanyName == "" {
		result.CompanyName = companyName
	}
	result.SourceURLs = fetched
	return &result, nil
}
