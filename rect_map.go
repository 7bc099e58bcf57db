package rectarena

import (
	"iter"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

const initialMapCapacity = 42

// rectMap is a table of rectangles keyed by their id. Entries are replaced, never edited,
// so a key always matches the corner of the rectangle stored under it.
type rectMap struct {
	rects *swiss.Map[RectangleID, Rectangle]
}

func newRectMap() rectMap {
	return rectMap{rects: swiss.NewMap[RectangleID, Rectangle](initialMapCapacity)}
}

func (m rectMap) put(rect Rectangle) {
	m.rects.Put(rect.ID(), rect)
}

func (m rectMap) has(id RectangleID) bool {
	return m.rects.Has(id)
}

func (m rectMap) remove(id RectangleID) (Rectangle, bool) {
	rect, ok := m.rects.Get(id)
	if !ok {
		return Rectangle{}, false
	}

	m.rects.Delete(id)
	return rect, true
}

func (m rectMap) count() int {
	return m.rects.Count()
}

// first returns the first rectangle, in table order, that satisfies match
func (m rectMap) first(match func(rect Rectangle) bool) (Rectangle, bool) {
	var found Rectangle
	var ok bool

	m.rects.Iter(func(_ RectangleID, rect Rectangle) bool {
		if match(rect) {
			found = rect
			ok = true
			return true
		}
		return false
	})

	return found, ok
}

func (m rectMap) all() iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		m.rects.Iter(func(_ RectangleID, rect Rectangle) bool {
			return !yield(rect)
		})
	}
}

// sorted returns a snapshot of the table ordered by (y, x). The table can be modified
// freely while the snapshot is walked.
func (m rectMap) sorted() []Rectangle {
	rects := make([]Rectangle, 0, m.count())
	m.rects.Iter(func(_ RectangleID, rect Rectangle) bool {
		rects = append(rects, rect)
		return false
	})

	slices.SortFunc(rects, compareByOffset)
	return rects
}
