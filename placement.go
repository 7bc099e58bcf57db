package rectarena

import "github.com/cockroachdb/errors"

// Placement is one tier of the arena's placement ladder. When allocating, the arena asks each
// Placement in order whether any free rectangle Fits the request; the first tier with a
// candidate Splits that candidate and the search ends.
type Placement interface {
	// Fits reports whether free can satisfy a width x height request under this tier's rule
	Fits(free Rectangle, width, height uint32) bool
	// Split cuts free into the allocated piece and the free remainders. The allocated piece
	// must be exactly width x height, and together the pieces must tile free without
	// overlapping and without empty pieces. The arena rejects splits that break these rules
	// without changing any state.
	Split(free Rectangle, width, height uint32) (allocated Rectangle, remainders []Rectangle)
	String() string
}

var (
	// PlacementExactFit consumes a free rectangle with exactly the requested size
	PlacementExactFit Placement = exactFit{}
	// PlacementWidthMatch takes the top of a free rectangle with exactly the requested width,
	// leaving the bottom free
	PlacementWidthMatch Placement = widthMatch{}
	// PlacementHeightMatch takes the left of a free rectangle with exactly the requested
	// height, leaving the right free
	PlacementHeightMatch Placement = heightMatch{}
	// PlacementGeneralFit takes the top-left corner of any free rectangle large enough for
	// the request. The column right of the allocation and the area below it become two
	// free rectangles.
	PlacementGeneralFit Placement = generalFit{}
)

// DefaultPlacements returns the ladder used by arenas that were not given one:
// exact fit, width match, height match, general fit.
func DefaultPlacements() []Placement {
	return []Placement{
		PlacementExactFit,
		PlacementWidthMatch,
		PlacementHeightMatch,
		PlacementGeneralFit,
	}
}

type exactFit struct{}

func (exactFit) Fits(free Rectangle, width, height uint32) bool {
	return free.Width == width && free.Height == height
}

func (exactFit) Split(free Rectangle, width, height uint32) (Rectangle, []Rectangle) {
	return free, nil
}

func (exactFit) String() string { return "ExactFit" }

type widthMatch struct{}

func (widthMatch) Fits(free Rectangle, width, height uint32) bool {
	return free.Width == width && free.Height >= height
}

func (widthMatch) Split(free Rectangle, width, height uint32) (Rectangle, []Rectangle) {
	top, bottom := free.splitHeight(height)
	return top, nonEmpty(bottom)
}

func (widthMatch) String() string { return "WidthMatch" }

type heightMatch struct{}

func (heightMatch) Fits(free Rectangle, width, height uint32) bool {
	return free.Height == height && free.Width >= width
}

func (heightMatch) Split(free Rectangle, width, height uint32) (Rectangle, []Rectangle) {
	left, right := free.splitWidth(width)
	return left, nonEmpty(right)
}

func (heightMatch) String() string { return "HeightMatch" }

type generalFit struct{}

func (generalFit) Fits(free Rectangle, width, height uint32) bool {
	return free.Width >= width && free.Height >= height
}

func (generalFit) Split(free Rectangle, width, height uint32) (Rectangle, []Rectangle) {
	column, right := free.splitWidth(width)
	allocated, bottom := column.splitHeight(height)
	return allocated, nonEmpty(right, bottom)
}

func (generalFit) String() string { return "GeneralFit" }

func nonEmpty(rects ...Rectangle) []Rectangle {
	var result []Rectangle
	for _, rect := range rects {
		if !rect.IsEmpty() {
			result = append(result, rect)
		}
	}

	return result
}

// validateSplit checks that a Placement's output tiles source with the requested allocation
func validateSplit(source, allocated Rectangle, remainders []Rectangle, width, height uint32) error {
	if allocated.Width != width || allocated.Height != height {
		return errors.AssertionFailedf("allocated piece %s does not have the requested size %dx%d", allocated, width, height)
	}

	if !source.Contains(allocated) {
		return errors.AssertionFailedf("allocated piece %s is not inside free rectangle %s", allocated, source)
	}

	area := allocated.Area()
	for i, remainder := range remainders {
		if remainder.IsEmpty() {
			return errors.AssertionFailedf("remainder %s has an empty dimension", remainder)
		}

		if !source.Contains(remainder) {
			return errors.AssertionFailedf("remainder %s is not inside free rectangle %s", remainder, source)
		}

		if remainder.Overlaps(allocated) {
			return errors.AssertionFailedf("remainder %s overlaps allocated piece %s", remainder, allocated)
		}

		for _, other := range remainders[i+1:] {
			if remainder.Overlaps(other) {
				return errors.AssertionFailedf("remainders %s and %s overlap", remainder, other)
			}
		}

		area += remainder.Area()
	}

	if area != source.Area() {
		return errors.AssertionFailedf("split pieces cover %d units but free rectangle %s covers %d", area, source, source.Area())
	}

	return nil
}
