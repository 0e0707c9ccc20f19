package dashboard

import "slices"

// TopN is the number of entries kept by every ranking.
const TopN = 5

// rankDescending returns at most limit items ordered by compare descending.
// Ties keep their input order. The input slice is not modified.
func rankDescending[T any](items []T, limit int, compare func(a, b T) int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return compare(b, a)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []T{}
	}
	return ranked
}
