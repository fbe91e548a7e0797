package environment

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadfield/quadfield/common"
)

func TestGPUCubeFromSphereUniformSize(t *testing.T) {
	var u GPUCubeFromSphereUniform
	assert.Equal(t, 128, u.Size())
	assert.Len(t, u.Marshal(), 128)
}

func TestGPUCubeFromSphereUniformMarshalOffsets(t *testing.T) {
	var u GPUCubeFromSphereUniform
	for i := range 16 {
		u.Projection[i] = float32(i)
		u.View[i] = float32(100 + i)
	}

	buf := u.Marshal()
	require.Len(t, buf, 128)

	at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	assert.Equal(t, float32(0), at(0))
	assert.Equal(t, float32(15), at(60))
	assert.Equal(t, float32(100), at(64))
	assert.Equal(t, float32(115), at(124))
}

func TestGPUCubeFromSphereUniformRoundTrip(t *testing.T) {
	u := FaceUniforms(2)
	var got GPUCubeFromSphereUniform
	require.NoError(t, got.Unmarshal(u.Marshal()))
	assert.Equal(t, u, got)
}

func TestGPUCubeFromSphereUniformUnmarshalShortBuffer(t *testing.T) {
	var u GPUCubeFromSphereUniform
	assert.Error(t, u.Unmarshal(make([]byte, 127)))
}

func TestFaceViewsAreDistinctAndFinite(t *testing.T) {
	seen := map[[16]float32]bool{}
	for face := 0; face < NumCubeFaces; face++ {
		v := FaceView(face)
		for _, f := range v {
			assert.False(t, math.IsNaN(float64(f)), "face %d view has NaN", face)
		}
		assert.False(t, seen[v], "face %d view duplicates another face", face)
		seen[v] = true
	}
}

func TestFaceViewLooksAlongAxis(t *testing.T) {
	// Transforming the face's target axis by its view matrix must land on
	// the view-space forward axis (-Z), for every face.
	for face := 0; face < NumCubeFaces; face++ {
		v := FaceView(face)
		target := [3]float32{}
		switch face {
		case 0:
			target[0] = 1
		case 1:
			target[0] = -1
		case 2:
			target[1] = 1
		case 3:
			target[1] = -1
		case 4:
			target[2] = 1
		case 5:
			target[2] = -1
		}
		x := v[0]*target[0] + v[4]*target[1] + v[8]*target[2] + v[12]
		y := v[1]*target[0] + v[5]*target[1] + v[9]*target[2] + v[13]
		z := v[2]*target[0] + v[6]*target[1] + v[10]*target[2] + v[14]
		assert.InDelta(t, 0, float64(x), 1e-5, "face %d", face)
		assert.InDelta(t, 0, float64(y), 1e-5, "face %d", face)
		assert.InDelta(t, -1, float64(z), 1e-5, "face %d", face)
	}
}

func TestFaceProjectionIsSquare90Degrees(t *testing.T) {
	p := FaceProjection()
	want := common.Perspective(math.Pi/2, 1.0, 0.1, 10.0)
	assert.Equal(t, want, p)
	// Square aspect: equal X and Y focal terms.
	assert.Equal(t, p[0], p[5])
}

func TestFaceUniformsMatchFaceMatrices(t *testing.T) {
	for face := 0; face < NumCubeFaces; face++ {
		u := FaceUniforms(face)
		assert.Equal(t, FaceProjection(), u.Projection)
		assert.Equal(t, FaceView(face), u.View)
	}
}
