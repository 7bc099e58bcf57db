package rectarena

import "math"

// Statistics summarizes how much of one or more arenas is in use. Areas are measured in
// square units of the arena's coordinate space.
type Statistics struct {
	ArenaCount      int
	AllocationCount int
	ArenaArea       uint64
	AllocatedArea   uint64
}

// Clear resets every counter to zero
func (s *Statistics) Clear() {
	s.ArenaCount = 0
	s.AllocationCount = 0
	s.ArenaArea = 0
	s.AllocatedArea = 0
}

// AddStatistics accumulates other's counters and areas into s
func (s *Statistics) AddStatistics(other *Statistics) {
	s.ArenaCount += other.ArenaCount
	s.AllocationCount += other.AllocationCount
	s.ArenaArea += other.ArenaArea
	s.AllocatedArea += other.AllocatedArea
}

// DetailedStatistics extends Statistics with the size distribution of allocations and free
// regions. Call Clear before accumulating into a fresh value so the minimums start high.
type DetailedStatistics struct {
	Statistics
	FreeRegionCount   int
	AllocationAreaMin uint64
	AllocationAreaMax uint64
	FreeRegionAreaMin uint64
	FreeRegionAreaMax uint64
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.FreeRegionCount = 0
	s.AllocationAreaMin = math.MaxUint64
	s.AllocationAreaMax = 0
	s.FreeRegionAreaMin = math.MaxUint64
	s.FreeRegionAreaMax = 0
}

// AddFreeRegion counts one free rectangle of the given area
func (s *DetailedStatistics) AddFreeRegion(area uint64) {
	s.FreeRegionCount++

	if area < s.FreeRegionAreaMin {
		s.FreeRegionAreaMin = area
	}

	if area > s.FreeRegionAreaMax {
		s.FreeRegionAreaMax = area
	}
}

func (s *DetailedStatistics) AddAllocation(area uint64) {
	s.AllocationCount++
	s.AllocatedArea += area

	if area < s.AllocationAreaMin {
		s.AllocationAreaMin = area
	}

	if area > s.AllocationAreaMax {
		s.AllocationAreaMax = area
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.FreeRegionCount += other.FreeRegionCount

	if other.FreeRegionAreaMin < s.FreeRegionAreaMin {
		s.FreeRegionAreaMin = other.FreeRegionAreaMin
	}

	if other.FreeRegionAreaMax > s.FreeRegionAreaMax {
		s.FreeRegionAreaMax = other.FreeRegionAreaMax
	}

	if other.AllocationAreaMin < s.AllocationAreaMin {
		s.AllocationAreaMin = other.AllocationAreaMin
	}

	if other.AllocationAreaMax > s.AllocationAreaMax {
		s.AllocationAreaMax = other.AllocationAreaMax
	}
}
