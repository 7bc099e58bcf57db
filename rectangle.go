package rectarena

import "fmt"

// RectangleID is the identity of a tracked rectangle: its top-left corner. No two rectangles
// tracked by an Arena, free or allocated, share a RectangleID.
type RectangleID struct {
	X uint32
	Y uint32
}

func (id RectangleID) String() string {
	return fmt.Sprintf("(%d, %d)", id.X, id.Y)
}

// Rectangle is an axis-aligned region of an Arena. Rectangles returned by Arena.Allocate can
// be passed back to Arena.Release to return their area to the arena.
type Rectangle struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
}

// ID returns the rectangle's identity within an arena
func (r Rectangle) ID() RectangleID {
	return RectangleID{X: r.X, Y: r.Y}
}

// EndX is the x coordinate of the rectangle's far edge
func (r Rectangle) EndX() uint32 {
	return r.X + r.Width
}

// EndY is the y coordinate of the rectangle's far edge
func (r Rectangle) EndY() uint32 {
	return r.Y + r.Height
}

// Area returns Width*Height without overflowing
func (r Rectangle) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// IsEmpty returns true if either dimension is zero
func (r Rectangle) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Overlaps returns true if the interiors of the two rectangles intersect. Rectangles that
// only share an edge do not overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}

	return r.X < other.EndX() && other.X < r.EndX() &&
		r.Y < other.EndY() && other.Y < r.EndY()
}

// Contains returns true if other lies entirely inside r
func (r Rectangle) Contains(other Rectangle) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.EndX() <= r.EndX() && other.EndY() <= r.EndY()
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d@(%d, %d)", r.Width, r.Height, r.X, r.Y)
}

// coalesce returns the single rectangle covering r and other if they share a full edge
func (r Rectangle) coalesce(other Rectangle) (Rectangle, bool) {
	if r.X == other.X && r.Width == other.Width {
		if r.EndY() == other.Y {
			return Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height + other.Height}, true
		}
		if other.EndY() == r.Y {
			return Rectangle{X: other.X, Y: other.Y, Width: r.Width, Height: r.Height + other.Height}, true
		}
	}

	if r.Y == other.Y && r.Height == other.Height {
		if r.EndX() == other.X {
			return Rectangle{X: r.X, Y: r.Y, Width: r.Width + other.Width, Height: r.Height}, true
		}
		if other.EndX() == r.X {
			return Rectangle{X: other.X, Y: other.Y, Width: r.Width + other.Width, Height: r.Height}, true
		}
	}

	return Rectangle{}, false
}

// splitWidth cuts r into a left piece of the given width and the remaining right piece.
// The right piece is empty when width == r.Width.
func (r Rectangle) splitWidth(width uint32) (Rectangle, Rectangle) {
	if width > r.Width {
		panic(fmt.Sprintf("cannot split %d columns from rectangle %s", width, r))
	}

	return Rectangle{X: r.X, Y: r.Y, Width: width, Height: r.Height},
		Rectangle{X: r.X + width, Y: r.Y, Width: r.Width - width, Height: r.Height}
}

// splitHeight cuts r into a top piece of the given height and the remaining bottom piece.
// The bottom piece is empty when height == r.Height.
func (r Rectangle) splitHeight(height uint32) (Rectangle, Rectangle) {
	if height > r.Height {
		panic(fmt.Sprintf("cannot split %d rows from rectangle %s", height, r))
	}

	return Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: height},
		Rectangle{X: r.X, Y: r.Y + height, Width: r.Width, Height: r.Height - height}
}

func compareByOffset(a, b Rectangle) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}

	return 0
}
