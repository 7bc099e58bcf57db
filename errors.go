package rectarena

import "github.com/cockroachdb/errors"

// ErrorKind identifies which of the arena's failure modes an error belongs to. Use KindOf
// to classify an error returned from an Arena method.
type ErrorKind uint32

const (
	// ErrorKindInvalidSize indicates that an allocation request had a zero dimension or
	// exceeded the arena's bounds on one of its axes
	ErrorKindInvalidSize ErrorKind = iota + 1
	// ErrorKindOutOfSpace indicates that no free rectangle could satisfy an allocation request,
	// even after free space was coalesced
	ErrorKindOutOfSpace
	// ErrorKindRectangleNotFound indicates that Release was called with a rectangle that is
	// not currently allocated from the arena
	ErrorKindRectangleNotFound
)

var errorKindMapping = map[ErrorKind]string{
	ErrorKindInvalidSize:       "InvalidSize",
	ErrorKindOutOfSpace:        "OutOfSpace",
	ErrorKindRectangleNotFound: "RectangleNotFound",
}

func (k ErrorKind) String() string {
	return errorKindMapping[k]
}

var (
	// ErrInvalidSize is returned from Arena.Allocate when the requested size has a zero
	// dimension or does not fit inside the arena at all
	ErrInvalidSize error = errors.New("invalid size")
	// ErrOutOfSpace is returned from Arena.Allocate when no free rectangle can hold the request
	ErrOutOfSpace error = errors.New("out of space")
	// ErrRectangleNotFound is returned from Arena.Release when the rectangle's id is not in
	// the allocated set
	ErrRectangleNotFound error = errors.New("rectangle not found")
)

var errorKindSentinels = [...]struct {
	kind ErrorKind
	err  error
}{
	{ErrorKindInvalidSize, ErrInvalidSize},
	{ErrorKindOutOfSpace, ErrOutOfSpace},
	{ErrorKindRectangleNotFound, ErrRectangleNotFound},
}

// KindOf reports which ErrorKind err (or any error it wraps) belongs to. The boolean
// return value is false if err is nil or did not originate from an Arena failure.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return 0, false
	}

	for _, sentinel := range errorKindSentinels {
		if errors.Is(err, sentinel.err) {
			return sentinel.kind, true
		}
	}

	return 0, false
}
