package scene

import "github.com/mcleary/doge/engine/core"

// OrbitController: A/D orbit, W/S pitch, Q/E dolly, scroll wheel dolly.
type OrbitController struct {
	OrbitSpeed float32
	DollySpeed float32
	Camera     *PerspectiveCamera
}

func NewOrbitController(cam *PerspectiveCamera) *OrbitController {
	return &OrbitController{
		OrbitSpeed: 1.5,
		DollySpeed: 2.0,
		Camera:     cam,
	}
}

func (cc *OrbitController) Update(e *core.Engine, dt float32) {
	in := e.Input
	orbit := cc.OrbitSpeed * dt
	dolly := cc.DollySpeed * dt

	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Orbit(-orbit, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Orbit(orbit, 0)
	}
	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Orbit(0, orbit)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Orbit(0, -orbit)
	}
	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Dolly(dolly)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Dolly(-dolly)
	}
}

func (cc *OrbitController) HandleEvent(e *core.Engine, ev core.Event) bool {
	if s, ok := ev.(core.EventScroll); ok {
		cc.Camera.Dolly(float32(-s.Yoff) * 0.25)
		return true
	}
	return false
}
