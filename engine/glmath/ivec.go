// Package glmath provides the integer and unsigned vector types that GLSL
// has (ivec2..4, uvec2..4) but mgl32 does not. Component algebra follows
// GLSL: binary operators apply element-wise.
package glmath

type IVec2 [2]int32
type IVec3 [3]int32
type IVec4 [4]int32

func (v IVec2) Add(u IVec2) IVec2 { v[0] += u[0]; v[1] += u[1]; return v }
func (v IVec2) Sub(u IVec2) IVec2 { v[0] -= u[0]; v[1] -= u[1]; return v }

// MulElem multiplies element-wise (the GLSL v * u).
func (v IVec2) MulElem(u IVec2) IVec2 { v[0] *= u[0]; v[1] *= u[1]; return v }

// DivElem divides element-wise. Division by a zero component panics, as
// integer division does.
func (v IVec2) DivElem(u IVec2) IVec2 { v[0] /= u[0]; v[1] /= u[1]; return v }

// Mod takes the remainder element-wise.
func (v IVec2) Mod(u IVec2) IVec2 { v[0] %= u[0]; v[1] %= u[1]; return v }

func (v IVec2) Negate() IVec2 { return IVec2{-v[0], -v[1]} }

func (v IVec3) Add(u IVec3) IVec3 { v[0] += u[0]; v[1] += u[1]; v[2] += u[2]; return v }
func (v IVec3) Sub(u IVec3) IVec3 { v[0] -= u[0]; v[1] -= u[1]; v[2] -= u[2]; return v }

// MulElem multiplies element-wise (the GLSL v * u).
func (v IVec3) MulElem(u IVec3) IVec3 { v[0] *= u[0]; v[1] *= u[1]; v[2] *= u[2]; return v }

// DivElem divides element-wise.
func (v IVec3) DivElem(u IVec3) IVec3 { v[0] /= u[0]; v[1] /= u[1]; v[2] /= u[2]; return v }

// Mod takes the remainder element-wise.
func (v IVec3) Mod(u IVec3) IVec3 { v[0] %= u[0]; v[1] %= u[1]; v[2] %= u[2]; return v }

func (v IVec3) Negate() IVec3 { return IVec3{-v[0], -v[1], -v[2]} }

func (v IVec4) Add(u IVec4) IVec4 {
	v[0] += u[0]
	v[1] += u[1]
	v[2] += u[2]
	v[3] += u[3]
	return v
}

func (v IVec4) Sub(u IVec4) IVec4 {
	v[0] -= u[0]
	v[1] -= u[1]
	v[2] -= u[2]
	v[3] -= u[3]
	return v
}

// MulElem multiplies element-wise (the GLSL v * u).
func (v IVec4) MulElem(u IVec4) IVec4 {
	v[0] *= u[0]
	v[1] *= u[1]
	v[2] *= u[2]
	v[3] *= u[3]
	return v
}

// DivElem divides element-wise.
func (v IVec4) DivElem(u IVec4) IVec4 {
	v[0] /= u[0]
	v[1] /= u[1]
	v[2] /= u[2]
	v[3] /= u[3]
	return v
}

// Mod takes the remainder element-wise.
func (v IVec4) Mod(u IVec4) IVec4 {
	v[0] %= u[0]
	v[1] %= u[1]
	v[2] %= u[2]
	v[3] %= u[3]
	return v
}

func (v IVec4) Negate() IVec4 { return IVec4{-v[0], -v[1], -v[2], -v[3]} }
