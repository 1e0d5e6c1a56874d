package uniform_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mcleary/doge/engine/gfx/uniform"
	"github.com/mcleary/doge/engine/glmath"
)

// fakeProgram is an in-memory uniform.Device with the same contract as the
// GL backend: named cells with a declared type, I/O only while the program
// is "active", panic on misuse. It stands in for a linked shader program so
// the proxy layer's properties can be verified without a GPU context.
type fakeProgram struct {
	active bool
	locs   map[string]uniform.Location
	cells  map[uniform.Location]*fakeCell
}

type fakeCell struct {
	tag uniform.TypeTag
	val any
}

func newFakeProgram() *fakeProgram {
	p := &fakeProgram{
		locs:  map[string]uniform.Location{},
		cells: map[uniform.Location]*fakeCell{},
	}

	p.declare(uniform.TagFloat, float32(0), "f.a", "f.b", "f.c")
	p.declare(uniform.TagInt, int32(0), "i.a", "i.b", "i.c")
	p.declare(uniform.TagUint, uint32(0), "u.a", "u.b", "u.c")

	p.declare(uniform.TagFloatVec2, mgl32.Vec2{}, "v2.a", "v2.b", "v2.c")
	p.declare(uniform.TagFloatVec3, mgl32.Vec3{}, "v3.a", "v3.b", "v3.c")
	p.declare(uniform.TagFloatVec4, mgl32.Vec4{}, "v4.a", "v4.b", "v4.c")

	p.declare(uniform.TagIntVec2, glmath.IVec2{}, "iv2.a", "iv2.b", "iv2.c")
	p.declare(uniform.TagIntVec3, glmath.IVec3{}, "iv3.a", "iv3.b", "iv3.c")
	p.declare(uniform.TagIntVec4, glmath.IVec4{}, "iv4.a", "iv4.b", "iv4.c")

	p.declare(uniform.TagUintVec2, glmath.UVec2{}, "uv2.a", "uv2.b", "uv2.c")
	p.declare(uniform.TagUintVec3, glmath.UVec3{}, "uv3.a", "uv3.b", "uv3.c")
	p.declare(uniform.TagUintVec4, glmath.UVec4{}, "uv4.a", "uv4.b", "uv4.c")

	p.declare(uniform.TagMat2, mgl32.Mat2{}, "m2.a", "m2.b", "m2.c")
	p.declare(uniform.TagMat3, mgl32.Mat3{}, "m3.a", "m3.b", "m3.c")
	p.declare(uniform.TagMat4, mgl32.Mat4{}, "m4.a", "m4.b", "m4.c")

	// Declared with a type outside the supported family (think sampler or
	// bool): resolves, but fails the type check for every T.
	p.declare(uniform.TagInvalid, nil, "bad_type")

	return p
}

func (p *fakeProgram) declare(tag uniform.TypeTag, zero any, names ...string) {
	for _, name := range names {
		loc := uniform.Location(len(p.locs))
		p.locs[name] = loc
		p.cells[loc] = &fakeCell{tag: tag, val: zero}
	}
}

// use mimics (*glbackend.Program).Use: active for the duration of fn only.
func (p *fakeProgram) use(fn func()) {
	p.active = true
	defer func() { p.active = false }()
	fn()
}

func (p *fakeProgram) Locate(name string) (uniform.Location, error) {
	loc, ok := p.locs[name]
	if !ok {
		return 0, uniform.ErrNotFound
	}
	return loc, nil
}

func (p *fakeProgram) TypeAt(loc uniform.Location) uniform.TypeTag {
	return p.cells[loc].tag
}

func (p *fakeProgram) Push(loc uniform.Location, tag uniform.TypeTag, v any) {
	if !p.active {
		panic("fakeProgram: push outside an active-program scope")
	}
	c := p.cells[loc]
	if c.tag != tag {
		panic(fmt.Sprintf("fakeProgram: push tag %s to cell declared %s", tag, c.tag))
	}
	c.val = v
}

func (p *fakeProgram) Pull(loc uniform.Location, tag uniform.TypeTag) any {
	if !p.active {
		panic("fakeProgram: pull outside an active-program scope")
	}
	c := p.cells[loc]
	if c.tag != tag {
		panic(fmt.Sprintf("fakeProgram: pull tag %s from cell declared %s", tag, c.tag))
	}
	return c.val
}
