package listing

import "strings"

type Predicate[T any] func(T) bool

// Refine keeps the items matching every predicate. It only sees the page
// already fetched; totals reported by the upstream are left untouched.
func Refine[T any](items []T, predicates ...Predicate[T]) []T {
	refined := make([]T, 0, len(items))

outer:
	for _, item := range items {
		for _, p := range predicates {
			if p != nil && !p(item) {
				continue outer
			}
		}
		refined = append(refined, item)
	}

	return refined
}

// ContainsFold is a case-insensitive substring match
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
