package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/mcleary/doge/engine/gfx/uniform"
)

// tagFromGL maps the driver's GL_ACTIVE_UNIFORM type enum to our tags.
// Types outside this table (bools, non-square matrices, opaque types other
// than 2D samplers) come back as TagInvalid and fail the binding type check.
var tagFromGL = map[uint32]uniform.TypeTag{
	gl.FLOAT:      uniform.TagFloat,
	gl.FLOAT_VEC2: uniform.TagFloatVec2,
	gl.FLOAT_VEC3: uniform.TagFloatVec3,
	gl.FLOAT_VEC4: uniform.TagFloatVec4,

	gl.INT:      uniform.TagInt,
	gl.INT_VEC2: uniform.TagIntVec2,
	gl.INT_VEC3: uniform.TagIntVec3,
	gl.INT_VEC4: uniform.TagIntVec4,

	gl.UNSIGNED_INT:      uniform.TagUint,
	gl.UNSIGNED_INT_VEC2: uniform.TagUintVec2,
	gl.UNSIGNED_INT_VEC3: uniform.TagUintVec3,
	gl.UNSIGNED_INT_VEC4: uniform.TagUintVec4,

	// Samplers bind by texture unit index, which is an int uniform.
	gl.SAMPLER_2D: uniform.TagInt,

	gl.FLOAT_MAT2: uniform.TagMat2,
	gl.FLOAT_MAT3: uniform.TagMat3,
	gl.FLOAT_MAT4: uniform.TagMat4,
}
