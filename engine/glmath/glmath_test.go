package glmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIVecAlgebra(t *testing.T) {
	a := IVec3{6, -8, 10}
	b := IVec3{3, 2, -5}

	assert.Equal(t, IVec3{9, -6, 5}, a.Add(b))
	assert.Equal(t, IVec3{3, -10, 15}, a.Sub(b))
	assert.Equal(t, IVec3{18, -16, -50}, a.MulElem(b))
	assert.Equal(t, IVec3{2, -4, -2}, a.DivElem(b))
	assert.Equal(t, IVec3{0, 0, 0}, a.Mod(b))
	assert.Equal(t, IVec3{7, -2, 1}, IVec3{7, 4, 11}.Mod(IVec3{9, 3, 5}))
	assert.Equal(t, IVec3{-6, 8, -10}, a.Negate())

	// receivers are values; a survives every call
	assert.Equal(t, IVec3{6, -8, 10}, a)

	assert.Equal(t, IVec2{4, 6}, IVec2{1, 2}.Add(IVec2{3, 4}))
	assert.Equal(t, IVec4{0, 0, 2, -2}, IVec4{2, 3, 8, -9}.Mod(IVec4{2, 3, 3, 7}))
}

func TestUVecAlgebra(t *testing.T) {
	a := UVec2{20, 9}
	b := UVec2{6, 4}

	assert.Equal(t, UVec2{26, 13}, a.Add(b))
	assert.Equal(t, UVec2{14, 5}, a.Sub(b))
	assert.Equal(t, UVec2{120, 36}, a.MulElem(b))
	assert.Equal(t, UVec2{3, 2}, a.DivElem(b))
	assert.Equal(t, UVec2{2, 1}, a.Mod(b))

	// subtraction and negation wrap modulo 2^32
	assert.Equal(t, UVec2{^uint32(0), 3}, UVec2{1, 8}.Sub(UVec2{2, 5}))
	assert.Equal(t, UVec2{0, 0}, a.Negate().Add(a))

	assert.Equal(t, UVec3{4, 10, 18}, UVec3{1, 2, 3}.MulElem(UVec3{4, 5, 6}))
	assert.Equal(t, UVec4{5, 7, 9, 11}, UVec4{1, 2, 3, 4}.Add(UVec4{4, 5, 6, 7}))
}

func TestNegateIsInvolution(t *testing.T) {
	i := IVec4{1, -2, 3, -4}
	assert.Equal(t, i, i.Negate().Negate())

	u := UVec3{5, 0, 7}
	assert.Equal(t, u, u.Negate().Negate())
}
