package glmath

type UVec2 [2]uint32
type UVec3 [3]uint32
type UVec4 [4]uint32

func (v UVec2) Add(u UVec2) UVec2 { v[0] += u[0]; v[1] += u[1]; return v }
func (v UVec2) Sub(u UVec2) UVec2 { v[0] -= u[0]; v[1] -= u[1]; return v }

// MulElem multiplies element-wise (the GLSL v * u).
func (v UVec2) MulElem(u UVec2) UVec2 { v[0] *= u[0]; v[1] *= u[1]; return v }

// DivElem divides element-wise.
func (v UVec2) DivElem(u UVec2) UVec2 { v[0] /= u[0]; v[1] /= u[1]; return v }

// Mod takes the remainder element-wise.
func (v UVec2) Mod(u UVec2) UVec2 { v[0] %= u[0]; v[1] %= u[1]; return v }

// Negate wraps modulo 2^32, matching GLSL unsigned arithmetic.
func (v UVec2) Negate() UVec2 { return UVec2{-v[0], -v[1]} }

func (v UVec3) Add(u UVec3) UVec3 { v[0] += u[0]; v[1] += u[1]; v[2] += u[2]; return v }
func (v UVec3) Sub(u UVec3) UVec3 { v[0] -= u[0]; v[1] -= u[1]; v[2] -= u[2]; return v }

// MulElem multiplies element-wise (the GLSL v * u).
func (v UVec3) MulElem(u UVec3) UVec3 { v[0] *= u[0]; v[1] *= u[1]; v[2] *= u[2]; return v }

// DivElem divides element-wise.
func (v UVec3) DivElem(u UVec3) UVec3 { v[0] /= u[0]; v[1] /= u[1]; v[2] /= u[2]; return v }

// Mod takes the remainder element-wise.
func (v UVec3) Mod(u UVec3) UVec3 { v[0] %= u[0]; v[1] %= u[1]; v[2] %= u[2]; return v }

// Negate wraps modulo 2^32, matching GLSL unsigned arithmetic.
func (v UVec3) Negate() UVec3 { return UVec3{-v[0], -v[1], -v[2]} }

func (v UVec4) Add(u UVec4) UVec4 {
	v[0] += u[0]
	v[1] += u[1]
	v[2] += u[2]
	v[3] += u[3]
	return v
}

func (v UVec4) Sub(u UVec4) UVec4 {
	v[0] -= u[0]
	v[1] -= u[1]
	v[2] -= u[2]
	v[3] -= u[3]
	return v
}

// MulElem multiplies element-wise (the GLSL v * u).
func (v UVec4) MulElem(u UVec4) UVec4 {
	v[0] *= u[0]
	v[1] *= u[1]
	v[2] *= u[2]
	v[3] *= u[3]
	return v
}

// DivElem divides element-wise.
func (v UVec4) DivElem(u UVec4) UVec4 {
	v[0] /= u[0]
	v[1] /= u[1]
	v[2] /= u[2]
	v[3] /= u[3]
	return v
}

// Mod takes the remainder element-wise.
func (v UVec4) Mod(u UVec4) UVec4 {
	v[0] %= u[0]
	v[1] %= u[1]
	v[2] %= u[2]
	v[3] %= u[3]
	return v
}

// Negate wraps modulo 2^32, matching GLSL unsigned arithmetic.
func (v UVec4) Negate() UVec4 { return UVec4{-v[0], -v[1], -v[2], -v[3]} }
