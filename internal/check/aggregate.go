package check

import "sort"

// Summary holds the per-project aggregates consumed by health-scoring and
// export collaborators.
type Summary struct {
	// TotalBroken counts every broken reference occurrence.
	TotalBroken int `json:"total_broken"`

	// AffectedScenes counts distinct scenes with at least one issue.
	AffectedScenes int `json:"affected_scenes"`

	// ByCategory breaks TotalBroken down by inferred asset category.
	ByCategory map[string]int `json:"by_category,omitempty"`
}

// Summarize aggregates issues across scenes.
func Summarize(issues []Issue) Summary {
	s := Summary{ByCategory: make(map[string]int)}
	scenes := make(map[string]struct{})
	for _, issue := range issues {
		s.TotalBroken++
		s.ByCategory[issue.AssetType]++
		scenes[issue.Scene] = struct{}{}
	}
	s.AffectedScenes = len(scenes)
	if s.TotalBroken == 0 {
		s.ByCategory = nil
	}
	return s
}

// Categories returns the summary's categories sorted by descending count,
// ties broken alphabetically. Keeps table output stable.
func (s Summary) Categories() []string {
	out := make([]string, 0, len(s.ByCategory))
	for category := range s.ByCategory {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool {
		if s.ByCategory[out[i]] != s.ByCategory[out[j]] {
			return s.ByCategory[out[i]] > s.ByCategory[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
