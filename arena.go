package rectarena

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// CreateOptions configures an Arena built with NewWithOptions. The zero value is valid and
// matches the behavior of New.
type CreateOptions struct {
	// Logger receives debug-level records for allocations, releases and coalescing. If nil,
	// output is discarded.
	Logger *slog.Logger
	// Strategy chooses between several free rectangles that fit the same placement tier
	Strategy AllocationStrategy
	// Placements is the placement ladder, tried in order. If empty, DefaultPlacements is used.
	Placements []Placement
}

// Arena hands out non-overlapping rectangles from a fixed-size two-dimensional region and takes
// them back on release. Every point of the region always belongs to exactly one tracked
// rectangle, either free or allocated.
//
// Free space is split as allocations are made. Adjacent free rectangles are merged back together
// at the start of the next Allocate call rather than when they are released, so a run of
// releases costs nothing until space is needed again.
//
// Arena performs no locking. Callers that share an Arena between goroutines must serialize
// access to it.
type Arena struct {
	logger *slog.Logger

	width      uint32
	height     uint32
	strategy   AllocationStrategy
	placements []Placement

	free      rectMap
	allocated rectMap
}

var _ Validatable = &Arena{}

// New creates an arena of the given size using the default placement ladder. Both dimensions
// must be greater than zero; New panics otherwise.
func New(width, height uint32) *Arena {
	return NewWithOptions(width, height, CreateOptions{})
}

// NewWithOptions creates an arena of the given size configured by options. Both dimensions
// must be greater than zero; NewWithOptions panics otherwise.
func NewWithOptions(width, height uint32, options CreateOptions) *Arena {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("arena dimensions must be positive, received %dx%d", width, height))
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	placements := options.Placements
	if len(placements) == 0 {
		placements = DefaultPlacements()
	} else {
		placements = slices.Clone(placements)
	}

	arena := &Arena{
		logger:     logger,
		width:      width,
		height:     height,
		strategy:   options.Strategy,
		placements: placements,
		free:       newRectMap(),
		allocated:  newRectMap(),
	}
	arena.free.put(arena.bounds())

	return arena
}

func (a *Arena) bounds() Rectangle {
	return Rectangle{Width: a.width, Height: a.height}
}

// Dimensions returns the width and height the arena was created with
func (a *Arena) Dimensions() (width, height uint32) {
	return a.width, a.height
}

// Allocate reserves a width x height rectangle and returns it. It returns an error wrapping
// ErrInvalidSize if either dimension is zero or larger than the arena, and an error wrapping
// ErrOutOfSpace if no free rectangle can hold the request.
//
// A request that fails with ErrOutOfSpace still leaves the free space coalesced. The free
// rectangles cover the same area as before, only in fewer pieces.
//
// Adjacent free rectangles are coalesced before the search. The search tries each placement
// tier in order and commits the first tier that has a candidate; the arena's
// AllocationStrategy picks among several candidates of that tier.
func (a *Arena) Allocate(width, height uint32) (Rectangle, error) {
	if width == 0 || height == 0 || width > a.width || height > a.height {
		return Rectangle{}, errors.Wrapf(ErrInvalidSize, "cannot allocate %dx%d from a %dx%d arena", width, height, a.width, a.height)
	}

	a.coalesce()

	search := newCandidateSearch(a.free, a.strategy)
	for _, placement := range a.placements {
		source, found := search.find(placement, width, height)
		if !found {
			continue
		}

		allocated, remainders := placement.Split(source, width, height)
		err := validateSplit(source, allocated, remainders, width, height)
		if err != nil {
			return Rectangle{}, errors.Wrapf(err, "placement %s produced an invalid split", placement)
		}

		a.free.remove(source.ID())
		for _, remainder := range remainders {
			a.free.put(remainder)
		}
		a.allocated.put(allocated)

		a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Arena::Allocate",
			slog.String("Placement", placement.String()),
			slog.String("Source", source.String()),
			slog.String("Rectangle", allocated.String()),
			slog.Int("Remainders", len(remainders)))

		DebugValidate(a)
		return allocated, nil
	}

	return Rectangle{}, errors.Wrapf(ErrOutOfSpace, "no free rectangle can hold %dx%d", width, height)
}

// Release returns an allocated rectangle's area to the arena. Rectangles are identified by
// their top-left corner. It returns an error wrapping ErrRectangleNotFound if no rectangle
// with that corner is currently allocated, which includes releasing the same rectangle twice.
//
// The released area is not merged with its free neighbors until the next Allocate or
// Coalesce call.
func (a *Arena) Release(rect Rectangle) error {
	stored, ok := a.allocated.remove(rect.ID())
	if !ok {
		return errors.Wrapf(ErrRectangleNotFound, "cannot release %s", rect)
	}

	a.free.put(stored)

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Arena::Release",
		slog.String("Rectangle", stored.String()))

	DebugValidate(a)
	return nil
}

// Coalesce merges adjacent free rectangles until no more merges are possible and returns the
// number of merges performed. Allocate does this on its own; calling Coalesce directly is only
// useful to inspect the merged free space, for instance through FreeRegionsCount.
func (a *Arena) Coalesce() int {
	merged := a.coalesce()
	DebugValidate(a)
	return merged
}

func (a *Arena) coalesce() int {
	merged := coalesceAll(a.free)
	if merged > 0 {
		a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Arena::Coalesce",
			slog.Int("Merges", merged),
			slog.Int("FreeRegions", a.free.count()))
	}

	return merged
}

// Clear instantly releases every allocation, leaving a single free rectangle that covers the
// whole arena
func (a *Arena) Clear() {
	a.allocated = newRectMap()
	a.free = newRectMap()
	a.free.put(a.bounds())

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "Arena::Clear")
	DebugValidate(a)
}

// Allocated returns a sequence of every allocated rectangle, in no particular order. The
// sequence can be ranged over any number of times and reflects the arena's contents at the
// time each range begins. The arena must not be modified while the sequence is being ranged over.
func (a *Arena) Allocated() iter.Seq[Rectangle] {
	return a.allocated.all()
}

// FreeRectangles returns a sequence of every free rectangle, in no particular order. Recently
// released rectangles appear as they were allocated until the free space is coalesced. The
// arena must not be modified while the sequence is being ranged over.
func (a *Arena) FreeRectangles() iter.Seq[Rectangle] {
	return a.free.all()
}

// AllocationCount returns the number of live allocations
func (a *Arena) AllocationCount() int {
	return a.allocated.count()
}

// FreeRegionsCount returns the number of free rectangles currently tracked. Released rectangles
// are counted individually until the free space is coalesced.
func (a *Arena) FreeRegionsCount() int {
	return a.free.count()
}

// SumFreeArea returns the total area of all free rectangles
func (a *Arena) SumFreeArea() uint64 {
	var area uint64
	for rect := range a.free.all() {
		area += rect.Area()
	}

	return area
}

// IsEmpty returns true if the arena has no live allocations
func (a *Arena) IsEmpty() bool {
	return a.allocated.count() == 0
}

// MayHaveFreeRectangle is a fast check of whether an allocation of the given size could succeed.
// A false result means Allocate would certainly fail; a true result is not a guarantee, since
// the free area may be too fragmented to hold the request.
func (a *Arena) MayHaveFreeRectangle(width, height uint32) bool {
	if width == 0 || height == 0 || width > a.width || height > a.height {
		return false
	}

	return uint64(width)*uint64(height) <= a.SumFreeArea()
}

// VisitAllRegions calls handleRegion once for every tracked rectangle, free and allocated, in
// order of (y, x). Iteration stops at the first error, which is returned.
func (a *Arena) VisitAllRegions(handleRegion func(rect Rectangle, free bool) error) error {
	type region struct {
		rect Rectangle
		free bool
	}

	regions := make([]region, 0, a.free.count()+a.allocated.count())
	for rect := range a.free.all() {
		regions = append(regions, region{rect: rect, free: true})
	}
	for rect := range a.allocated.all() {
		regions = append(regions, region{rect: rect})
	}

	slices.SortFunc(regions, func(left, right region) int {
		return compareByOffset(left.rect, right.rect)
	})

	for _, r := range regions {
		err := handleRegion(r.rect, r.free)
		if err != nil {
			return err
		}
	}

	return nil
}

// AddStatistics sums this arena's usage into stats
func (a *Arena) AddStatistics(stats *Statistics) {
	stats.ArenaCount++
	stats.AllocationCount += a.allocated.count()
	stats.ArenaArea += a.bounds().Area()
	stats.AllocatedArea += a.bounds().Area() - a.SumFreeArea()
}

// AddDetailedStatistics sums this arena's usage, including the size of every allocation and
// free rectangle, into stats
func (a *Arena) AddDetailedStatistics(stats *DetailedStatistics) {
	stats.ArenaCount++
	stats.ArenaArea += a.bounds().Area()

	for rect := range a.free.all() {
		stats.AddFreeRegion(rect.Area())
	}

	for rect := range a.allocated.all() {
		stats.AddAllocation(rect.Area())
	}
}

// DebugLogAllAllocations calls logFunc once for each live allocation
func (a *Arena) DebugLogAllAllocations(logger *slog.Logger, logFunc func(log *slog.Logger, rect Rectangle)) {
	for rect := range a.allocated.all() {
		logFunc(logger, rect)
	}
}
