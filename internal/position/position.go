// Package position implements the gap-based ordering keys shared by lists,
// cards and checklist items. Ascending position is ascending display order;
// equal positions keep their existing relative order.
package position

import "sort"

// Gap is the distance between consecutive keys when appending or renumbering.
const Gap = 1000

// After returns the key for an item appended behind max. Pass 0 for an empty set.
func After(max int) int {
	return max + Gap
}

// Append returns the key for a new item appended to a sibling set with the
// given keys. An empty set yields Gap.
func Append(positions []int) int {
	if len(positions) == 0 {
		return Gap
	}
	max := positions[0]
	for _, p := range positions[1:] {
		if p > max {
			max = p
		}
	}
	return After(max)
}

// Dense returns the key of the item at index i after a bulk renumbering.
func Dense(i int) int {
	return (i + 1) * Gap
}

// Sort orders items by ascending key. Ties keep their original order.
func Sort[T any](items []T, key func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
