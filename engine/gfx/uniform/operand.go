package uniform

// Source is anything with a current observable value of T: a *Uniform (its
// cache), a *ReadOnly (a fresh pull), or a literal wrapped with V. The free
// operators below accept any mix of operand kinds, so host values and device
// cells combine under one algebra.
type Source[T Value] interface {
	Value() T
}

type literal[T Value] struct{ v T }

func (l literal[T]) Value() T { return l.v }

// V wraps a plain value as an operand.
func V[T Value](v T) Source[T] { return literal[T]{v} }

// The binary operators are pure: computed from the operands' current values,
// mutating neither operand nor the device.

func Add[T Value](a, b Source[T]) T { return traitsFor[T]().add(a.Value(), b.Value()).(T) }

func Sub[T Value](a, b Source[T]) T { return traitsFor[T]().sub(a.Value(), b.Value()).(T) }

// Mul is element-wise on vectors and the matrix product on matrices.
func Mul[T Value](a, b Source[T]) T { return traitsFor[T]().mul(a.Value(), b.Value()).(T) }

// Div is defined for scalars and vectors; matrices have no division.
func Div[T Ordered](a, b Source[T]) T { return traitsFor[T]().div(a.Value(), b.Value()).(T) }

// Mod is defined for integral scalars and vectors only.
func Mod[T Integer](a, b Source[T]) T { return traitsFor[T]().mod(a.Value(), b.Value()).(T) }

// Pos returns the operand's current value unchanged (unary +).
func Pos[T Value](a Source[T]) T { return a.Value() }

// Neg returns the negated current value (unary -).
func Neg[T Value](a Source[T]) T { return traitsFor[T]().neg(a.Value()).(T) }

// Equal compares current observed values. Over any mix of operand kinds it
// is reflexive, symmetric and transitive.
func Equal[T Value](a, b Source[T]) bool { return any(a.Value()) == any(b.Value()) }

func NotEqual[T Value](a, b Source[T]) bool { return !Equal(a, b) }

// Less orders by current observed value: scalars directly, vectors
// lexicographically. Matrices are unordered and do not instantiate.
func Less[T Ordered](a, b Source[T]) bool { return traitsFor[T]().less(a.Value(), b.Value()) }

func LessEqual[T Ordered](a, b Source[T]) bool { return !Less(b, a) }

func Greater[T Ordered](a, b Source[T]) bool { return Less(b, a) }

func GreaterEqual[T Ordered](a, b Source[T]) bool { return !Less(a, b) }
