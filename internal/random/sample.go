package random

import "fmt"

// Sample selects count distinct elements from items, uniformly over all
// subsets of that size, without replacement.
//
// Selection is a partial Fisher-Yates shuffle with sparse bookkeeping:
// every draw removes exactly one index from the remaining pool, so no
// source index is chosen twice and every subset of the given size is
// equally likely. Only the disturbed pool positions are recorded, which
// keeps cost at O(count) draws and O(count) map operations regardless of
// len(items).
//
// The input slice is never modified; the result is a new slice in draw
// order, which is not necessarily input order.
//
// Returns ErrInvalidCount when count <= 0 or count > len(items).
func Sample[T any](source *Source, items []T, count int) ([]T, error) {
	n := len(items)
	if count <= 0 || count > n {
		return nil, fmt.Errorf("%w: count %d for %d items", ErrInvalidCount, count, n)
	}

	// swapped holds only the pool positions disturbed by earlier draws;
	// positions absent from the map still hold their own index.
	swapped := make(map[int]int, count)
	at := func(pos int) int {
		if idx, ok := swapped[pos]; ok {
			return idx
		}
		return pos
	}

	selected := make([]T, 0, count)
	for i := 0; i < count; i++ {
		j := i + source.Intn(n-i)
		picked := at(j)
		// Move the front of the pool into the slot just vacated. Position
		// i is never read again, so the pick itself needs no record.
		swapped[j] = at(i)
		selected = append(selected, items[picked])
	}
	return selected, nil
}
