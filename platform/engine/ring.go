package engine

import "fmt"

// nextActiveIndex scans the ring clockwise from the slot after cur and
// returns the first index the predicate accepts. The scan is bounded by the
// ring size, so a ring with no active slot errors instead of looping.
// Both turn advancement and the auction use this.
func nextActiveIndex(size, cur int, active func(int) bool) (int, error) {
	for i := 1; i <= size; i++ {
		idx := (cur + i) % size
		if active(idx) {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("%w: no active participant in ring", ErrInvariant)
}
