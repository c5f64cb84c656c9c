package dates

import "sort"

// SortByRecency returns a copy of items ordered most recent first. Equal
// ranges keep their input order; items itself is not modified.
func SortByRecency[T any](s *Service, items []T, key func(T) Range) []T {
	type keyed struct {
		item     T
		resolved Resolved
	}
	ranked := make([]keyed, len(items))
	for i, item := range items {
		ranked[i] = keyed{item: item, resolved: s.Resolve(key(item))}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return compareResolved(ranked[i].resolved, ranked[j].resolved) < 0
	})

	out := make([]T, len(ranked))
	for i, k := range ranked {
		out[i] = k.item
	}
	return out
}
