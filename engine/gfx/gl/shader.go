package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/mcleary/doge/engine/gfx/uniform"
)

// Program is a linked shader program plus the uniform metadata read back
// from the driver at link time. It implements uniform.Device, so typed
// proxies can be bound directly to it.
type Program struct {
	id     uint32
	active bool
	types  map[uniform.Location]uniform.TypeTag
}

// NewProgram compiles and links a vertex/fragment pair. Sources must be
// null-terminated (assets.LoadShader takes care of that).
func NewProgram(vsSrc, fsSrc string) (*Program, error) {
	id, err := makeProgram(vsSrc, fsSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{id: id, types: map[uniform.Location]uniform.TypeTag{}}
	p.readActiveUniforms()
	return p, nil
}

func (p *Program) ID() uint32 { return p.id }

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Use makes p the active program for the duration of fn, restoring the
// previously active program on every exit path. All uniform I/O against p
// must happen inside such a scope.
func (p *Program) Use(fn func()) {
	var prev int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &prev)
	gl.UseProgram(p.id)
	p.active = true
	defer func() {
		p.active = false
		gl.UseProgram(uint32(prev))
	}()
	fn()
}

// readActiveUniforms fills the location -> declared-type table once per
// link, so type validation never queries the driver again.
func (p *Program) readActiveUniforms() {
	var count int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)
	var maxLen int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}
	buf := make([]uint8, maxLen+1)
	for i := int32(0); i < count; i++ {
		var nameLen, size int32
		var xtype uint32
		gl.GetActiveUniform(p.id, uint32(i), maxLen, &nameLen, &size, &xtype, &buf[0])
		name := string(buf[:nameLen])
		loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		if loc < 0 {
			continue
		}
		p.types[uniform.Location(loc)] = tagFromGL[xtype]
	}
}

func (p *Program) mustBeActive() {
	if !p.active {
		panic(fmt.Sprintf("glbackend: uniform I/O on program %d outside a Use scope", p.id))
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
