package rectarena

// coalesceAll merges adjacent free rectangles until no pair in the table can be merged and
// returns the number of merges performed.
func coalesceAll(free rectMap) int {
	var total int

	for {
		merged := coalescePass(free)
		if merged == 0 {
			return total
		}

		total += merged
	}
}

// coalescePass sweeps every pair of free rectangles once, in (y, x) order. A rectangle takes
// part in at most one merge per sweep: merging it twice would track the same area in two
// results. Rectangles produced by this sweep are only considered by the next one.
func coalescePass(free rectMap) int {
	rects := free.sorted()
	consumed := make([]bool, len(rects))
	var merged int

	for i := range rects {
		if consumed[i] {
			continue
		}

		for j := i + 1; j < len(rects); j++ {
			if consumed[j] {
				continue
			}

			combined, ok := rects[i].coalesce(rects[j])
			if !ok {
				continue
			}

			free.remove(rects[i].ID())
			free.remove(rects[j].ID())
			free.put(combined)

			consumed[i] = true
			consumed[j] = true
			merged++
			break
		}
	}

	return merged
}
