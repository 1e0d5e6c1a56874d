// Package uniform gives typed, host-cached access to the uniform variables
// of a shader program. A Uniform[T] behaves like a plain value of T —
// comparisons, arithmetic, compound assignment, increment/decrement — while
// every mutation is pushed to the device before the call returns, so the
// host cache is never stale relative to device state. A ReadOnly[T] on the
// same name re-pulls on every read and serves as an oracle for what the
// device actually holds.
//
// The package is device-agnostic: all I/O goes through the Device interface,
// implemented for OpenGL by engine/gfx/gl.
package uniform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mcleary/doge/engine/glmath"
)

// TypeTag identifies the GLSL type of a uniform cell. The device backend
// maps tags to its own type enumeration; the binding accessor compares the
// tag requested by the host against the tag the program declares.
type TypeTag int32

const (
	TagInvalid TypeTag = iota
	TagFloat
	TagFloatVec2
	TagFloatVec3
	TagFloatVec4
	TagInt
	TagIntVec2
	TagIntVec3
	TagIntVec4
	TagUint
	TagUintVec2
	TagUintVec3
	TagUintVec4
	TagMat2
	TagMat3
	TagMat4
)

var tagNames = map[TypeTag]string{
	TagFloat:     "float",
	TagFloatVec2: "vec2",
	TagFloatVec3: "vec3",
	TagFloatVec4: "vec4",
	TagInt:       "int",
	TagIntVec2:   "ivec2",
	TagIntVec3:   "ivec3",
	TagIntVec4:   "ivec4",
	TagUint:      "uint",
	TagUintVec2:  "uvec2",
	TagUintVec3:  "uvec3",
	TagUintVec4:  "uvec4",
	TagMat2:      "mat2",
	TagMat3:      "mat3",
	TagMat4:      "mat4",
}

// String returns the GLSL spelling of the tag.
func (t TypeTag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "invalid"
}

// Scalar is the set of single-component uniform types.
type Scalar interface {
	float32 | int32 | uint32
}

// Vector is the set of 2/3/4-component uniform types.
type Vector interface {
	mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 |
		glmath.IVec2 | glmath.IVec3 | glmath.IVec4 |
		glmath.UVec2 | glmath.UVec3 | glmath.UVec4
}

// Matrix is the set of square matrix uniform types.
type Matrix interface {
	mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4
}

// Value is every type a Uniform may hold.
type Value interface {
	Scalar | Vector | Matrix
}

// Ordered is every Value with a total order: scalars compare directly,
// vectors lexicographically. Matrices are excluded, so ordering a matrix
// uniform does not compile. Division shares exactly this type set.
type Ordered interface {
	Scalar | Vector
}

// Integer is every Value with a remainder operation.
type Integer interface {
	int32 | uint32 |
		glmath.IVec2 | glmath.IVec3 | glmath.IVec4 |
		glmath.UVec2 | glmath.UVec3 | glmath.UVec4
}
