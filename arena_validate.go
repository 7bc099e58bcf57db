package rectarena

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// Validate performs internal consistency checks on the arena: every tracked rectangle is
// non-empty and inside the arena, ids are unique and match the rectangles stored under them,
// no two rectangles overlap and together they cover the whole arena. The checks are quadratic
// in the worst case. When the arena is functioning correctly, it should not be possible for
// this method to return an error.
func (a *Arena) Validate() error {
	bounds := a.bounds()
	rects := make([]Rectangle, 0, a.free.count()+a.allocated.count())

	var err error
	checkTable := func(tableName string) func(id RectangleID, rect Rectangle) bool {
		return func(id RectangleID, rect Rectangle) bool {
			switch {
			case id != rect.ID():
				err = errors.Newf("%s rectangle %s is stored under id %s", tableName, rect, id)
			case rect.IsEmpty():
				err = errors.Newf("%s rectangle %s has an empty dimension", tableName, rect)
			case !bounds.Contains(rect):
				err = errors.Newf("%s rectangle %s extends past the %dx%d arena", tableName, rect, a.width, a.height)
			}

			rects = append(rects, rect)
			return err != nil
		}
	}

	a.free.rects.Iter(checkTable("free"))
	if err != nil {
		return err
	}

	a.allocated.rects.Iter(checkTable("allocated"))
	if err != nil {
		return err
	}

	var totalArea uint64
	a.free.rects.Iter(func(id RectangleID, rect Rectangle) bool {
		if a.allocated.has(id) {
			err = errors.Newf("id %s is tracked as both free and allocated", id)
		}
		return err != nil
	})
	if err != nil {
		return err
	}

	slices.SortFunc(rects, compareByOffset)
	for i, rect := range rects {
		totalArea += rect.Area()

		for _, other := range rects[i+1:] {
			if other.Y >= rect.EndY() {
				break
			}

			if rect.Overlaps(other) {
				return errors.Newf("rectangles %s and %s overlap", rect, other)
			}
		}
	}

	if totalArea != bounds.Area() {
		return errors.Newf("the arena covers %d units, but its rectangles only add up to %d", bounds.Area(), totalArea)
	}

	return nil
}
