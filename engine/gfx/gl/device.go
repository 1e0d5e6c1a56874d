package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mcleary/doge/engine/gfx/uniform"
	"github.com/mcleary/doge/engine/glmath"
)

// uniform.Device implementation. Locate/TypeAt validate once at binding
// time; Push/Pull are the hot path and only assert the Use-scope
// precondition before the raw GL call.

func (p *Program) Locate(name string) (uniform.Location, error) {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, uniform.ErrNotFound
	}
	return uniform.Location(loc), nil
}

func (p *Program) TypeAt(loc uniform.Location) uniform.TypeTag {
	return p.types[loc]
}

func (p *Program) Push(loc uniform.Location, tag uniform.TypeTag, v any) {
	p.mustBeActive()
	l := int32(loc)
	switch x := v.(type) {
	case float32:
		gl.Uniform1f(l, x)
	case int32:
		gl.Uniform1i(l, x)
	case uint32:
		gl.Uniform1ui(l, x)
	case mgl32.Vec2:
		gl.Uniform2fv(l, 1, &x[0])
	case mgl32.Vec3:
		gl.Uniform3fv(l, 1, &x[0])
	case mgl32.Vec4:
		gl.Uniform4fv(l, 1, &x[0])
	case glmath.IVec2:
		gl.Uniform2iv(l, 1, &x[0])
	case glmath.IVec3:
		gl.Uniform3iv(l, 1, &x[0])
	case glmath.IVec4:
		gl.Uniform4iv(l, 1, &x[0])
	case glmath.UVec2:
		gl.Uniform2uiv(l, 1, &x[0])
	case glmath.UVec3:
		gl.Uniform3uiv(l, 1, &x[0])
	case glmath.UVec4:
		gl.Uniform4uiv(l, 1, &x[0])
	case mgl32.Mat2:
		gl.UniformMatrix2fv(l, 1, false, &x[0])
	case mgl32.Mat3:
		gl.UniformMatrix3fv(l, 1, false, &x[0])
	case mgl32.Mat4:
		gl.UniformMatrix4fv(l, 1, false, &x[0])
	default:
		panic(fmt.Sprintf("glbackend: push of unsupported type %T (tag %s)", v, tag))
	}
}

func (p *Program) Pull(loc uniform.Location, tag uniform.TypeTag) any {
	p.mustBeActive()
	l := int32(loc)
	switch tag {
	case uniform.TagFloat:
		var v float32
		gl.GetUniformfv(p.id, l, &v)
		return v
	case uniform.TagFloatVec2:
		var v mgl32.Vec2
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	case uniform.TagFloatVec3:
		var v mgl32.Vec3
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	case uniform.TagFloatVec4:
		var v mgl32.Vec4
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	case uniform.TagInt:
		var v int32
		gl.GetUniformiv(p.id, l, &v)
		return v
	case uniform.TagIntVec2:
		var v glmath.IVec2
		gl.GetUniformiv(p.id, l, &v[0])
		return v
	case uniform.TagIntVec3:
		var v glmath.IVec3
		gl.GetUniformiv(p.id, l, &v[0])
		return v
	case uniform.TagIntVec4:
		var v glmath.IVec4
		gl.GetUniformiv(p.id, l, &v[0])
		return v
	case uniform.TagUint:
		var v uint32
		gl.GetUniformuiv(p.id, l, &v)
		return v
	case uniform.TagUintVec2:
		var v glmath.UVec2
		gl.GetUniformuiv(p.id, l, &v[0])
		return v
	case uniform.TagUintVec3:
		var v glmath.UVec3
		gl.GetUniformuiv(p.id, l, &v[0])
		return v
	case uniform.TagUintVec4:
		var v glmath.UVec4
		gl.GetUniformuiv(p.id, l, &v[0])
		return v
	case uniform.TagMat2:
		var v mgl32.Mat2
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	case uniform.TagMat3:
		var v mgl32.Mat3
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	case uniform.TagMat4:
		var v mgl32.Mat4
		gl.GetUniformfv(p.id, l, &v[0])
		return v
	default:
		panic(fmt.Sprintf("glbackend: pull of unsupported tag %s", tag))
	}
}
