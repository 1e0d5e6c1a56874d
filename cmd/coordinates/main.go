package main

import (
	"image"
	"image/color"
	"log"

	"github.com/mcleary/doge/engine/assets"
	"github.com/mcleary/doge/engine/colors"
	"github.com/mcleary/doge/engine/core"
	glbackend "github.com/mcleary/doge/engine/gfx/gl"
	"github.com/mcleary/doge/engine/platform"
)

type App struct {
	program *glbackend.Program
	mesh    *glbackend.Mesh
	tex     *glbackend.Texture
	layer   *CubeLayer
}

func (a *App) OnStart(e *core.Engine) {
	vs, err := assets.LoadShader("coordinates.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("coordinates.frag")
	if err != nil {
		panic(err)
	}

	a.program, err = glbackend.NewProgram(vs, fs)
	if err != nil {
		panic(err)
	}

	a.mesh = glbackend.NewMesh(cubeVerts, 5*4, []glbackend.VertexAttrib{
		{Location: 0, Size: 3, Offset: 0},     // pos
		{Location: 1, Size: 2, Offset: 3 * 4}, // uv
	})
	a.tex = glbackend.NewTexture(checkerImage(256, 8))

	a.layer = &CubeLayer{program: a.program, mesh: a.mesh, tex: a.tex}
	e.PushLayer(a.layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	a.mesh.Delete()
	a.tex.Delete()
	a.program.Delete()
}

// checkerImage builds a two-tone checkerboard so the example has no asset
// files to ship.
func checkerImage(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{230, 150, 60, 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{60, 90, 140, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func main() {
	cfg := core.Config{
		Title:      "doge coordinates",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32(colors.DarkGray),
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
