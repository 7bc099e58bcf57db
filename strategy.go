package rectarena

// AllocationStrategy decides which free rectangle a placement tier takes when several of them
// fit. It never changes the order in which tiers are tried. If several strategies are set, the
// first of MinTime, MinMemory, MinOffset that is present wins. If none is set, the arena
// behaves as if AllocationStrategyMinTime was chosen.
type AllocationStrategy uint32

const (
	// AllocationStrategyMinTime takes the first fitting free rectangle found while walking
	// the free table. The order is arbitrary and can differ between runs.
	AllocationStrategyMinTime AllocationStrategy = 1 << iota
	// AllocationStrategyMinMemory takes the fitting free rectangle with the smallest area,
	// leaving larger rectangles for larger requests. Ties go to the lowest (y, x).
	AllocationStrategyMinMemory
	// AllocationStrategyMinOffset takes the fitting free rectangle with the lowest (y, x),
	// which packs allocations toward the top-left corner of the arena.
	AllocationStrategyMinOffset
)

var allocationStrategyMapping = map[AllocationStrategy]string{
	AllocationStrategyMinTime:   "AllocationStrategyMinTime",
	AllocationStrategyMinMemory: "AllocationStrategyMinMemory",
	AllocationStrategyMinOffset: "AllocationStrategyMinOffset",
}

func (s AllocationStrategy) String() string {
	return allocationStrategyMapping[s]
}

func (s AllocationStrategy) effective() AllocationStrategy {
	switch {
	case s&AllocationStrategyMinTime != 0:
		return AllocationStrategyMinTime
	case s&AllocationStrategyMinMemory != 0:
		return AllocationStrategyMinMemory
	case s&AllocationStrategyMinOffset != 0:
		return AllocationStrategyMinOffset
	}

	return AllocationStrategyMinTime
}

// candidateSearch finds free rectangles for the placement ladder during a single Allocate.
// The ordered snapshot is only built if the strategy needs one.
type candidateSearch struct {
	free     rectMap
	strategy AllocationStrategy
	ordered  []Rectangle
}

func newCandidateSearch(free rectMap, strategy AllocationStrategy) *candidateSearch {
	return &candidateSearch{
		free:     free,
		strategy: strategy.effective(),
	}
}

func (s *candidateSearch) find(placement Placement, width, height uint32) (Rectangle, bool) {
	fits := func(rect Rectangle) bool {
		return placement.Fits(rect, width, height)
	}

	if s.strategy == AllocationStrategyMinTime {
		return s.free.first(fits)
	}

	if s.ordered == nil {
		s.ordered = s.free.sorted()
	}

	var best Rectangle
	var found bool
	for _, rect := range s.ordered {
		if !fits(rect) {
			continue
		}

		if s.strategy == AllocationStrategyMinOffset {
			return rect, true
		}

		if !found || rect.Area() < best.Area() {
			best = rect
			found = true
		}
	}

	return best, found
}
