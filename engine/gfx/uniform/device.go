package uniform

import "fmt"

// Location is an opaque per-program uniform location. Stable for the
// program's lifetime; meaningless once the program is deleted.
type Location int32

// Device is the boundary to the GPU side of a single shader program.
// Push and Pull are the only two operations that cross the host/device
// boundary; everything else in this package is expressed through them.
//
// Both require the owning program to be the active one. That is a
// precondition, not a recoverable state: implementations panic on
// violation rather than writing to whichever program happens to be bound.
type Device interface {
	// Locate resolves a uniform name to its location. Returns an error
	// satisfying errors.Is(err, ErrNotFound) when the program has no
	// active uniform of that name.
	Locate(name string) (Location, error)

	// TypeAt reports the type the program declares at loc.
	TypeAt(loc Location) TypeTag

	// Push writes v, which must be the Go value matching tag, to the cell.
	Push(loc Location, tag TypeTag, v any)

	// Pull reads the cell's current value as the Go value matching tag.
	Pull(loc Location, tag TypeTag) any
}

// bind resolves and validates a (name, type) pair against the program.
// The type check happens here, once per construction, so Push/Pull stay
// off the validation path.
func bind(dev Device, name string, tag TypeTag) (Location, error) {
	loc, err := dev.Locate(name)
	if err != nil {
		return 0, fmt.Errorf("bind %q: %w", name, err)
	}
	if got := dev.TypeAt(loc); got != tag {
		return 0, &TypeError{Name: name, Want: tag, Got: got}
	}
	return loc, nil
}
