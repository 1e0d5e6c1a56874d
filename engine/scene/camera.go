package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera orbits a target point; View/Projection feed the
// matching shader uniforms directly.
type PerspectiveCamera struct {
	Target   mgl32.Vec3
	Distance float32
	YawRad   float32 // around +Y
	PitchRad float32
	FOVDeg   float32
	Near     float32
	Far      float32
	aspect   float32
}

func NewPerspective(width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{
		Distance: 3,
		FOVDeg:   45,
		Near:     0.1,
		Far:      100,
	}
	c.SetViewportPixels(width, height)
	return c
}

func (c *PerspectiveCamera) SetViewportPixels(w, h int) {
	if h < 1 {
		h = 1
	}
	c.aspect = float32(w) / float32(h)
}

func (c *PerspectiveCamera) Orbit(dYaw, dPitch float32) {
	c.YawRad += dYaw
	c.PitchRad += dPitch
	const limit = 1.55 // just short of straight up/down
	if c.PitchRad > limit {
		c.PitchRad = limit
	}
	if c.PitchRad < -limit {
		c.PitchRad = -limit
	}
}

func (c *PerspectiveCamera) Dolly(d float32) {
	c.Distance += d
	if c.Distance < 0.5 {
		c.Distance = 0.5
	}
}

// Position derives the eye point from target, distance and angles.
func (c *PerspectiveCamera) Position() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.YawRad))
	sp, cp := math.Sincos(float64(c.PitchRad))
	dir := mgl32.Vec3{
		float32(cp * sy),
		float32(sp),
		float32(cp * cy),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOVDeg), c.aspect, c.Near, c.Far)
}
