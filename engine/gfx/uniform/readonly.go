package uniform

// ReadOnly observes a uniform cell without caching: every Value call pulls
// from the device, so what it reports is what the device holds right now.
// Use it to verify that a Uniform's mutations actually reached device
// state and not just its host cache.
type ReadOnly[T Value] struct {
	dev Device
	loc Location
	tr  *traits
}

// NewReadOnly binds name for observation only.
func NewReadOnly[T Value](dev Device, name string) (*ReadOnly[T], error) {
	tr := traitsFor[T]()
	loc, err := bind(dev, name, tr.tag)
	if err != nil {
		return nil, err
	}
	return &ReadOnly[T]{dev: dev, loc: loc, tr: tr}, nil
}

// Value pulls the current device value. Never cached across calls.
func (r *ReadOnly[T]) Value() T {
	return r.dev.Pull(r.loc, r.tr.tag).(T)
}

// Location returns the bound device location.
func (r *ReadOnly[T]) Location() Location { return r.loc }
