package uniform

// Uniform is a mutable proxy for one uniform cell: a host-side cache bound
// to a (device, location) pair. Invariant: the cache always equals the last
// value written to or observed from the device, because every mutating
// operation pushes before it returns. Reads therefore never need a device
// round trip.
//
// Construction either fully succeeds or fails with ErrNotFound or a
// *TypeError; there is no unbound state, and later operations never
// re-raise binding errors.
//
// Many proxies may be bound to the same cell. They are independent caches;
// consistency between them is only through the device, which is what
// ReadOnly verifies in tests.
type Uniform[T Value] struct {
	dev   Device
	loc   Location
	tr    *traits
	cache T
}

// New binds name and initializes the cache from the device's current value.
func New[T Value](dev Device, name string) (*Uniform[T], error) {
	tr := traitsFor[T]()
	loc, err := bind(dev, name, tr.tag)
	if err != nil {
		return nil, err
	}
	u := &Uniform[T]{dev: dev, loc: loc, tr: tr}
	u.cache = dev.Pull(loc, tr.tag).(T)
	return u, nil
}

// NewValue binds name and writes v through before returning, so no observer
// can see the cell in a pre-initialization state.
func NewValue[T Value](dev Device, name string, v T) (*Uniform[T], error) {
	tr := traitsFor[T]()
	loc, err := bind(dev, name, tr.tag)
	if err != nil {
		return nil, err
	}
	u := &Uniform[T]{dev: dev, loc: loc, tr: tr}
	u.Set(v)
	return u, nil
}

// Write is the fire-and-forget form: bind name and push v, discarding the
// proxy. Handy for per-draw uniforms like model matrices.
func Write[T Value](dev Device, name string, v T) error {
	_, err := NewValue(dev, name, v)
	return err
}

// Value returns the cached value. No device round trip: the cache is
// authoritative between mutations.
func (u *Uniform[T]) Value() T { return u.cache }

// Location returns the bound device location.
func (u *Uniform[T]) Location() Location { return u.loc }

// Set pushes v to the device, then updates the cache. Returns u for
// chaining.
func (u *Uniform[T]) Set(v T) *Uniform[T] {
	u.dev.Push(u.loc, u.tr.tag, v)
	u.cache = v
	return u
}

// AddAssign computes cache + rhs, pushes and caches the result.
func (u *Uniform[T]) AddAssign(rhs Source[T]) *Uniform[T] {
	return u.Set(u.tr.add(u.cache, rhs.Value()).(T))
}

// SubAssign computes cache - rhs, pushes and caches the result.
func (u *Uniform[T]) SubAssign(rhs Source[T]) *Uniform[T] {
	return u.Set(u.tr.sub(u.cache, rhs.Value()).(T))
}

// MulAssign computes cache * rhs, pushes and caches the result.
func (u *Uniform[T]) MulAssign(rhs Source[T]) *Uniform[T] {
	return u.Set(u.tr.mul(u.cache, rhs.Value()).(T))
}

// DivAssign computes cache / rhs, pushes and caches the result. A free
// function rather than a method so the Ordered constraint excludes
// matrices at compile time.
func DivAssign[T Ordered](u *Uniform[T], rhs Source[T]) *Uniform[T] {
	return u.Set(u.tr.div(u.cache, rhs.Value()).(T))
}

// ModAssign computes cache % rhs, pushes and caches the result. Integral
// types only, enforced by the constraint.
func ModAssign[T Integer](u *Uniform[T], rhs Source[T]) *Uniform[T] {
	return u.Set(u.tr.mod(u.cache, rhs.Value()).(T))
}

// Inc adds one (element-wise for vectors and matrices), pushes, and returns
// the new value: prefix ++.
func (u *Uniform[T]) Inc() T {
	u.Set(u.tr.add(u.cache, u.tr.one).(T))
	return u.cache
}

// PostInc captures the current value, increments, and returns the captured
// value: postfix ++. The device holds the incremented value by the time
// this returns.
func (u *Uniform[T]) PostInc() T {
	old := u.cache
	u.Inc()
	return old
}

// Dec subtracts one, pushes, and returns the new value: prefix --.
func (u *Uniform[T]) Dec() T {
	u.Set(u.tr.sub(u.cache, u.tr.one).(T))
	return u.cache
}

// PostDec captures the current value, decrements, and returns the captured
// value: postfix --.
func (u *Uniform[T]) PostDec() T {
	old := u.cache
	u.Dec()
	return old
}
