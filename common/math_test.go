package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformPoint(m [16]float32, p [3]float32) [3]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*p[0] + m[4+row]*p[1] + m[8+row]*p[2] + m[12+row]
	}
	if out[3] != 0 && out[3] != 1 {
		return [3]float32{out[0] / out[3], out[1] / out[3], out[2] / out[3]}
	}
	return [3]float32{out[0], out[1], out[2]}
}

func TestIdentityIsMulNeutral(t *testing.T) {
	m := Mul4(Translate(1, 2, 3), RotateY(0.7))
	assert.Equal(t, m, Mul4(Identity(), m))
	assert.Equal(t, m, Mul4(m, Identity()))
}

func TestMul4AppliesRightHandFirst(t *testing.T) {
	// Scale then translate: the point lands at translation + scaled point.
	m := Mul4(Translate(10, 0, 0), Scale(2, 2, 2))
	p := transformPoint(m, [3]float32{1, 1, 1})
	assert.InDelta(t, 12.0, float64(p[0]), 1e-5)
	assert.InDelta(t, 2.0, float64(p[1]), 1e-5)
	assert.InDelta(t, 2.0, float64(p[2]), 1e-5)
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := [3]float32{3, 4, 5}
	view := LookAt(eye, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})

	origin := transformPoint(view, eye)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.0, float64(origin[i]), 1e-5)
	}

	// The target sits straight ahead on the negative Z axis.
	target := transformPoint(view, [3]float32{0, 0, 0})
	assert.InDelta(t, 0.0, float64(target[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(target[1]), 1e-5)
	assert.Negative(t, target[2])
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100.0)
	proj := Perspective(float32(math.Pi/3), 16.0/9.0, near, far)

	// WebGPU clip space: near plane maps to z=0, far plane to z=1.
	pNear := transformPoint(proj, [3]float32{0, 0, -near})
	pFar := transformPoint(proj, [3]float32{0, 0, -far})
	assert.InDelta(t, 0.0, float64(pNear[2]), 1e-4)
	assert.InDelta(t, 1.0, float64(pFar[2]), 1e-4)
}

func TestOrthoMapsExtentsToClipSpace(t *testing.T) {
	proj := Ortho(-10, 10, -10, 10, 0.1, 40)

	corner := transformPoint(proj, [3]float32{10, 10, -0.1})
	assert.InDelta(t, 1.0, float64(corner[0]), 1e-5)
	assert.InDelta(t, 1.0, float64(corner[1]), 1e-5)
	assert.InDelta(t, 0.0, float64(corner[2]), 1e-4)

	farCorner := transformPoint(proj, [3]float32{-10, -10, -40})
	assert.InDelta(t, -1.0, float64(farCorner[0]), 1e-5)
	assert.InDelta(t, -1.0, float64(farCorner[1]), 1e-5)
	assert.InDelta(t, 1.0, float64(farCorner[2]), 1e-4)
}

func TestInvert4RoundTrip(t *testing.T) {
	m := Mul4(Translate(2, -1, 4), Mul4(RotateY(1.1), Scale(2, 3, 4)))
	inv, ok := Invert4(m)
	require.True(t, ok)

	id := Mul4(m, inv)
	want := Identity()
	for i := range id {
		assert.InDeltaf(t, float64(want[i]), float64(id[i]), 1e-4, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	_, ok := Invert4(Scale(0, 1, 1))
	assert.False(t, ok)
}

func TestRotateYQuarterTurn(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	p := transformPoint(m, [3]float32{1, 0, 0})
	assert.InDelta(t, 0.0, float64(p[0]), 1e-6)
	assert.InDelta(t, -1.0, float64(p[2]), 1e-6)
}
