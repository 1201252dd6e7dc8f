// Package balance tracks how asked questions are spread across topic buckets
// relative to a fixed target distribution.
package balance

import "github.com/jonathan/interview-navigator/internal/types"

// targetOrder is the declared order of the target distribution. NeedsMore is
// reported in this order so selection stays deterministic.
var targetOrder = []types.Category{
	types.CategoryTalentPhilosophy,
	types.CategoryExperience,
	types.CategoryMotivation,
	types.CategoryOther,
}

// targets is the fixed per-category question quota for a session.
var targets = map[types.Category]int{
	types.CategoryTalentPhilosophy: 3,
	types.CategoryExperience:       4,
	types.CategoryMotivation:       2,
	types.CategoryOther:            1,
}

// CategoryBalance reports per-category progress against the target distribution.
type CategoryBalance struct {
	CategoryCount      map[types.Category]int `json:"category_count"`
	TargetDistribution map[types.Category]int `json:"target_distribution"`
	// NeedsMore lists categories still under target, in declared order.
	NeedsMore []types.Category `json:"needs_more"`
}

// NeedsCategory reports whether the category is still under its target.
func (b *CategoryBalance) NeedsCategory(c types.Category) bool {
	for _, needed := range b.NeedsMore {
		if needed == c {
			return true
		}
	}
	return false
}

// Compute tallies asked questions by category and returns the categories still
// under target. Unrecognized categories fold into other. Pure function.
func Compute(asked []types.Question) CategoryBalance {
	counts := make(map[types.Category]int)
	for _, q := range asked {
		counts[types.NormalizeCategory(string(q.Category))]++
	}

	needsMore := make([]types.Category, 0, len(targetOrder))
	for _, category := range targetOrder {
		if counts[category] < targets[category] {
			needsMore = append(needsMore, category)
		}
	}

	targetCopy := make(map[types.Category]int, len(targets))
	for c, n := range targets {
		targetCopy[c] = n
	}

	return CategoryBalance{
		CategoryCount:      counts,
		TargetDistribution: targetCopy,
		NeedsMore:          needsMore,
	}
}
