package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mcleary/doge/engine/core"
	glbackend "github.com/mcleary/doge/engine/gfx/gl"
	"github.com/mcleary/doge/engine/gfx/uniform"
	"github.com/mcleary/doge/engine/scene"
)

// CubeLayer draws rotating textured cubes. The view/projection matrices
// live in typed uniform proxies; the per-cube model matrix is a
// fire-and-forget write each frame.
type CubeLayer struct {
	program *glbackend.Program
	mesh    *glbackend.Mesh
	tex     *glbackend.Texture
	cam     *scene.PerspectiveCamera
	ctrl    *scene.OrbitController
	view    *uniform.Uniform[mgl32.Mat4]
	proj    *uniform.Uniform[mgl32.Mat4]
	t       float32
}

var cubePositions = []mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

func (l *CubeLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewPerspective(w, h)
	l.cam.Distance = 6
	l.ctrl = scene.NewOrbitController(l.cam)

	l.program.Use(func() {
		var err error
		if l.view, err = uniform.NewValue(l.program, "view", l.cam.View()); err != nil {
			panic(err)
		}
		if l.proj, err = uniform.NewValue(l.program, "projection", l.cam.Projection()); err != nil {
			panic(err)
		}
		// Sampler to texture unit 0.
		if err = uniform.Write[int32](l.program, "tex", 0); err != nil {
			panic(err)
		}
	})
}

func (l *CubeLayer) OnDetach(e *core.Engine) {}

func (l *CubeLayer) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))
	l.t += float32(dt)

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *CubeLayer) OnRender(e *core.Engine, alpha float64) {
	l.tex.Bind(0)
	axis := mgl32.Vec3{0.5, 1, 0.5}.Normalize()

	l.program.Use(func() {
		l.view.Set(l.cam.View())
		l.proj.Set(l.cam.Projection())

		for i, pos := range cubePositions {
			angle := -l.t*0.9 + float32(i)*0.35
			model := mgl32.Translate3D(pos[0], pos[1], pos[2]).
				Mul4(mgl32.HomogRotate3D(angle, axis))
			if err := uniform.Write(l.program, "model", model); err != nil {
				panic(err)
			}
			l.mesh.Draw()
		}
	})
}

func (l *CubeLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventScroll:
		return l.ctrl.HandleEvent(e, ev)
	}
	return false
}

// 36 vertices, pos3 + uv2 interleaved.
var cubeVerts = []float32{
	-0.5, -0.5, -0.5, 0, 0,
	0.5, -0.5, -0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 1,
	-0.5, 0.5, -0.5, 0, 1,
	-0.5, -0.5, -0.5, 0, 0,

	-0.5, -0.5, 0.5, 0, 0,
	0.5, -0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, 0.5, 0, 1,
	-0.5, -0.5, 0.5, 0, 0,

	-0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, -0.5, 1, 1,
	-0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, 0.5, 0, 0,
	-0.5, 0.5, 0.5, 1, 0,

	0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, 0.5, 0, 0,
	0.5, 0.5, 0.5, 1, 0,

	-0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, -0.5, 1, 1,
	0.5, -0.5, 0.5, 1, 0,
	0.5, -0.5, 0.5, 1, 0,
	-0.5, -0.5, 0.5, 0, 0,
	-0.5, -0.5, -0.5, 0, 1,

	-0.5, 0.5, -0.5, 0, 1,
	0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, 0.5, 0, 0,
	-0.5, 0.5, -0.5, 0, 1,
}
