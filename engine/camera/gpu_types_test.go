package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUUniformsSize(t *testing.T) {
	var u GPUUniforms
	assert.Equal(t, 272, u.Size())
	assert.Len(t, u.Marshal(), 272)
}

func TestGPUUniformsMarshalOffsets(t *testing.T) {
	u := GPUUniforms{
		Time:       1.5,
		ScreenSize: [2]float32{1920, 1080},
	}
	for i := range 16 {
		u.Projection[i] = float32(i)
		u.Model[i] = float32(100 + i)
		u.View[i] = float32(200 + i)
		u.ModelView[i] = float32(300 + i)
	}

	buf := u.Marshal()
	require.Len(t, buf, 272)

	at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	// One probe per block plus the scalars pins the full layout.
	assert.Equal(t, float32(0), at(0))
	assert.Equal(t, float32(15), at(60))
	assert.Equal(t, float32(100), at(64))
	assert.Equal(t, float32(200), at(128))
	assert.Equal(t, float32(300), at(192))
	assert.Equal(t, float32(1.5), at(256))
	assert.Equal(t, float32(0), at(260))
	assert.Equal(t, float32(1920), at(264))
	assert.Equal(t, float32(1080), at(268))
}

func TestGPUUniformsRoundTrip(t *testing.T) {
	u := GPUUniforms{
		Time:       3.75,
		ScreenSize: [2]float32{1280, 720},
	}
	for i := range 16 {
		u.Projection[i] = float32(i) * 0.25
		u.Model[i] = float32(i) - 7.5
		u.View[i] = float32(i) * -1.5
		u.ModelView[i] = float32(i) + 0.125
	}

	var got GPUUniforms
	require.NoError(t, got.Unmarshal(u.Marshal()))
	assert.Equal(t, u, got)
}

func TestGPUUniformsUnmarshalShortBuffer(t *testing.T) {
	var u GPUUniforms
	assert.Error(t, u.Unmarshal(make([]byte, 271)))
}

func TestCameraUniformsSnapshot(t *testing.T) {
	c := NewCamera(
		WithPosition(0, 2, 10),
		WithTarget(0, 0, 0),
		WithScreenSize(800, 600),
	)
	c.Update(0.25)
	c.Update(0.25)

	u := c.Uniforms()
	assert.Equal(t, float32(0.5), u.Time)
	assert.Equal(t, [2]float32{800, 600}, u.ScreenSize)
	assert.Equal(t, c.ProjectionMatrix(), u.Projection)
	assert.Equal(t, c.ViewMatrix(), u.View)
	assert.Equal(t, c.ModelViewMatrix(), u.ModelView)
	assert.InDelta(t, 800.0/600.0, c.Aspect(), 1e-6)
}
