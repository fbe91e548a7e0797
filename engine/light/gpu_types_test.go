package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUShadowLightUniformSize(t *testing.T) {
	var u GPUShadowLightUniform
	assert.Equal(t, 144, u.Size())
	assert.Len(t, u.Marshal(), 144)
}

func TestGPUShadowLightUniformMarshalOffsets(t *testing.T) {
	u := GPUShadowLightUniform{
		Direction: [3]float32{0.5, -0.5, 0.25},
	}
	for i := range 16 {
		u.Projection[i] = float32(i)
		u.View[i] = float32(100 + i)
	}

	buf := u.Marshal()
	require.Len(t, buf, 144)

	at := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	assert.Equal(t, float32(0), at(0))
	assert.Equal(t, float32(15), at(60))
	assert.Equal(t, float32(100), at(64))
	assert.Equal(t, float32(115), at(124))
	assert.Equal(t, float32(0.5), at(128))
	assert.Equal(t, float32(-0.5), at(132))
	assert.Equal(t, float32(0.25), at(136))
	assert.Equal(t, float32(0), at(140))
}

func TestGPUShadowLightUniformRoundTrip(t *testing.T) {
	u := GPUShadowLightUniform{
		Direction: [3]float32{0.6, -0.8, 0},
	}
	for i := range 16 {
		u.Projection[i] = float32(i) * 0.5
		u.View[i] = float32(i) - 3.25
	}

	var got GPUShadowLightUniform
	require.NoError(t, got.Unmarshal(u.Marshal()))
	assert.Equal(t, u, got)
}

func TestGPUShadowLightUniformUnmarshalShortBuffer(t *testing.T) {
	var u GPUShadowLightUniform
	assert.Error(t, u.Unmarshal(make([]byte, 143)))
}

func TestShadowLightDirectionNormalized(t *testing.T) {
	l := NewShadowLight(WithDirection(2, 0, 0))
	d := l.Direction()
	assert.InDelta(t, 1.0, float64(d[0]), 1e-6)
	assert.Zero(t, d[1])
	assert.Zero(t, d[2])

	// A zero direction is rejected, keeping the previous value.
	l.SetDirection(0, 0, 0)
	assert.Equal(t, d, l.Direction())
}

func TestShadowLightUniformsMatchMatrices(t *testing.T) {
	l := NewShadowLight(
		WithDirection(1, -2, 1),
		WithCenter(0, 0, 0),
		WithExtent(12, 0.5, 50),
	)
	u := l.Uniforms()
	assert.Equal(t, l.ProjectionMatrix(), u.Projection)
	assert.Equal(t, l.ViewMatrix(), u.View)
	assert.Equal(t, l.Direction(), u.Direction)
}

func TestShadowLightVerticalDirectionStableUp(t *testing.T) {
	// Straight-down light must still produce a usable view matrix.
	l := NewShadowLight(WithDirection(0, -1, 0))
	v := l.ViewMatrix()
	for _, f := range v {
		assert.False(t, math.IsNaN(float64(f)))
	}
}
