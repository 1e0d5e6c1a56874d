package uniform

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mcleary/doge/engine/glmath"
)

// traits is the runtime half of the type classification: per supported Go
// type, the program-declared tag it must match and the algebra the proxies
// and free operators dispatch through. Entries the type does not support
// (mod on floats, div/less on matrices) stay nil; the generic constraints
// on the public functions keep those paths unreachable.
//
// Looked up once at proxy construction and cached on the proxy, never on
// the push/pull path.
type traits struct {
	tag  TypeTag
	one  any // identity step for Inc/Dec, element-wise for vectors/matrices
	add  func(a, b any) any
	sub  func(a, b any) any
	mul  func(a, b any) any
	div  func(a, b any) any
	mod  func(a, b any) any
	neg  func(a any) any
	less func(a, b any) bool
}

func scalarTraits[E Scalar](tag TypeTag, modf func(a, b E) E) *traits {
	t := &traits{
		tag:  tag,
		one:  E(1),
		add:  func(a, b any) any { return a.(E) + b.(E) },
		sub:  func(a, b any) any { return a.(E) - b.(E) },
		mul:  func(a, b any) any { return a.(E) * b.(E) },
		div:  func(a, b any) any { return a.(E) / b.(E) },
		neg:  func(a any) any { return -a.(E) },
		less: func(a, b any) bool { return a.(E) < b.(E) },
	}
	if modf != nil {
		t.mod = func(a, b any) any { return modf(a.(E), b.(E)) }
	}
	return t
}

// Vector algebra is element-wise, ordering lexicographic.

func vec2Traits[E Scalar, V ~[2]E](tag TypeTag, one V, modf func(a, b E) E) *traits {
	ewise := func(f func(x, y E) E) func(a, b any) any {
		return func(a, b any) any {
			av, bv := a.(V), b.(V)
			for i := range av {
				av[i] = f(av[i], bv[i])
			}
			return av
		}
	}
	t := &traits{
		tag: tag,
		one: one,
		add: ewise(func(x, y E) E { return x + y }),
		sub: ewise(func(x, y E) E { return x - y }),
		mul: ewise(func(x, y E) E { return x * y }),
		div: ewise(func(x, y E) E { return x / y }),
		neg: func(a any) any {
			av := a.(V)
			for i := range av {
				av[i] = -av[i]
			}
			return av
		},
		less: func(a, b any) bool {
			av, bv := a.(V), b.(V)
			for i := range av {
				if av[i] != bv[i] {
					return av[i] < bv[i]
				}
			}
			return false
		},
	}
	if modf != nil {
		t.mod = ewise(modf)
	}
	return t
}

func vec3Traits[E Scalar, V ~[3]E](tag TypeTag, one V, modf func(a, b E) E) *traits {
	ewise := func(f func(x, y E) E) func(a, b any) any {
		return func(a, b any) any {
			av, bv := a.(V), b.(V)
			for i := range av {
				av[i] = f(av[i], bv[i])
			}
			return av
		}
	}
	t := &traits{
		tag: tag,
		one: one,
		add: ewise(func(x, y E) E { return x + y }),
		sub: ewise(func(x, y E) E { return x - y }),
		mul: ewise(func(x, y E) E { return x * y }),
		div: ewise(func(x, y E) E { return x / y }),
		neg: func(a any) any {
			av := a.(V)
			for i := range av {
				av[i] = -av[i]
			}
			return av
		},
		less: func(a, b any) bool {
			av, bv := a.(V), b.(V)
			for i := range av {
				if av[i] != bv[i] {
					return av[i] < bv[i]
				}
			}
			return false
		},
	}
	if modf != nil {
		t.mod = ewise(modf)
	}
	return t
}

func vec4Traits[E Scalar, V ~[4]E](tag TypeTag, one V, modf func(a, b E) E) *traits {
	ewise := func(f func(x, y E) E) func(a, b any) any {
		return func(a, b any) any {
			av, bv := a.(V), b.(V)
			for i := range av {
				av[i] = f(av[i], bv[i])
			}
			return av
		}
	}
	t := &traits{
		tag: tag,
		one: one,
		add: ewise(func(x, y E) E { return x + y }),
		sub: ewise(func(x, y E) E { return x - y }),
		mul: ewise(func(x, y E) E { return x * y }),
		div: ewise(func(x, y E) E { return x / y }),
		neg: func(a any) any {
			av := a.(V)
			for i := range av {
				av[i] = -av[i]
			}
			return av
		},
		less: func(a, b any) bool {
			av, bv := a.(V), b.(V)
			for i := range av {
				if av[i] != bv[i] {
					return av[i] < bv[i]
				}
			}
			return false
		},
	}
	if modf != nil {
		t.mod = ewise(modf)
	}
	return t
}

// Matrix addition/subtraction and Inc/Dec are element-wise like GLSL;
// multiplication is the matrix product. No division, remainder or ordering.

func onesMat3() mgl32.Mat3 {
	var m mgl32.Mat3
	for i := range m {
		m[i] = 1
	}
	return m
}

func onesMat4() mgl32.Mat4 {
	var m mgl32.Mat4
	for i := range m {
		m[i] = 1
	}
	return m
}

func mat2Traits() *traits {
	return &traits{
		tag: TagMat2,
		one: mgl32.Mat2{1, 1, 1, 1},
		add: func(a, b any) any { return a.(mgl32.Mat2).Add(b.(mgl32.Mat2)) },
		sub: func(a, b any) any { return a.(mgl32.Mat2).Sub(b.(mgl32.Mat2)) },
		mul: func(a, b any) any { return a.(mgl32.Mat2).Mul2(b.(mgl32.Mat2)) },
		neg: func(a any) any { return a.(mgl32.Mat2).Mul(-1) },
	}
}

func mat3Traits() *traits {
	return &traits{
		tag: TagMat3,
		one: onesMat3(),
		add: func(a, b any) any { return a.(mgl32.Mat3).Add(b.(mgl32.Mat3)) },
		sub: func(a, b any) any { return a.(mgl32.Mat3).Sub(b.(mgl32.Mat3)) },
		mul: func(a, b any) any { return a.(mgl32.Mat3).Mul3(b.(mgl32.Mat3)) },
		neg: func(a any) any { return a.(mgl32.Mat3).Mul(-1) },
	}
}

func mat4Traits() *traits {
	return &traits{
		tag: TagMat4,
		one: onesMat4(),
		add: func(a, b any) any { return a.(mgl32.Mat4).Add(b.(mgl32.Mat4)) },
		sub: func(a, b any) any { return a.(mgl32.Mat4).Sub(b.(mgl32.Mat4)) },
		mul: func(a, b any) any { return a.(mgl32.Mat4).Mul4(b.(mgl32.Mat4)) },
		neg: func(a any) any { return a.(mgl32.Mat4).Mul(-1) },
	}
}

func modInt(a, b int32) int32    { return a % b }
func modUint(a, b uint32) uint32 { return a % b }

var traitsTable = map[reflect.Type]*traits{
	typeOf[float32](): scalarTraits[float32](TagFloat, nil),
	typeOf[int32]():   scalarTraits[int32](TagInt, modInt),
	typeOf[uint32]():  scalarTraits[uint32](TagUint, modUint),

	typeOf[mgl32.Vec2](): vec2Traits[float32, mgl32.Vec2](TagFloatVec2, mgl32.Vec2{1, 1}, nil),
	typeOf[mgl32.Vec3](): vec3Traits[float32, mgl32.Vec3](TagFloatVec3, mgl32.Vec3{1, 1, 1}, nil),
	typeOf[mgl32.Vec4](): vec4Traits[float32, mgl32.Vec4](TagFloatVec4, mgl32.Vec4{1, 1, 1, 1}, nil),

	typeOf[glmath.IVec2](): vec2Traits[int32, glmath.IVec2](TagIntVec2, glmath.IVec2{1, 1}, modInt),
	typeOf[glmath.IVec3](): vec3Traits[int32, glmath.IVec3](TagIntVec3, glmath.IVec3{1, 1, 1}, modInt),
	typeOf[glmath.IVec4](): vec4Traits[int32, glmath.IVec4](TagIntVec4, glmath.IVec4{1, 1, 1, 1}, modInt),

	typeOf[glmath.UVec2](): vec2Traits[uint32, glmath.UVec2](TagUintVec2, glmath.UVec2{1, 1}, modUint),
	typeOf[glmath.UVec3](): vec3Traits[uint32, glmath.UVec3](TagUintVec3, glmath.UVec3{1, 1, 1}, modUint),
	typeOf[glmath.UVec4](): vec4Traits[uint32, glmath.UVec4](TagUintVec4, glmath.UVec4{1, 1, 1, 1}, modUint),

	typeOf[mgl32.Mat2](): mat2Traits(),
	typeOf[mgl32.Mat3](): mat3Traits(),
	typeOf[mgl32.Mat4](): mat4Traits(),
}

func typeOf[T Value]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// traitsFor resolves the traits entry for T. The Value constraint is exactly
// the table's key set, so the lookup cannot miss.
func traitsFor[T Value]() *traits { return traitsTable[typeOf[T]()] }
