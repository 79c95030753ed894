package scene

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSuggestSimilarity is the lowest similarity Suggest accepts.
const minSuggestSimilarity = 0.6

// Suggest returns the object name closest to name by case-insensitive edit
// distance, or "" when nothing is similar enough.
func (s *Scene) Suggest(name string) string {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false

	best, bestScore := "", 0.0
	for _, o := range s.Objects {
		if score := strutil.Similarity(name, o.Name, metric); score > bestScore {
			best, bestScore = o.Name, score
		}
	}
	if bestScore < minSuggestSimilarity {
		return ""
	}
	return best
}
