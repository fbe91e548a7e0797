package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadfield/quadfield/engine/contract"
)

func TestNoiseSampleCountAndShape(t *testing.T) {
	samples := NoiseSamples()
	require.Len(t, samples, contract.NumNoiseSamples)
	for i, s := range samples {
		assert.Zerof(t, s[2], "noise sample %d must lie in the XY plane", i)
		len2 := float64(s[0]*s[0] + s[1]*s[1])
		assert.InDeltaf(t, 1.0, len2, 1e-5, "noise sample %d must be unit length", i)
	}
}

func TestSSAOKernelCountAndHemisphere(t *testing.T) {
	kernel := SSAOKernel()
	require.Len(t, kernel, contract.NumSSAOSamples)
	for i, s := range kernel {
		assert.GreaterOrEqualf(t, s[2], float32(0), "kernel sample %d must point into +Z", i)
		mag := math.Sqrt(float64(s[0]*s[0] + s[1]*s[1] + s[2]*s[2]))
		assert.LessOrEqualf(t, mag, 1.0+1e-5, "kernel sample %d exceeds unit radius", i)
		assert.Greaterf(t, mag, 0.0, "kernel sample %d is zero", i)
	}

	// Falloff: later samples reach farther out on average than the first.
	first := kernel[0]
	last := kernel[len(kernel)-1]
	firstMag := math.Sqrt(float64(first[0]*first[0] + first[1]*first[1] + first[2]*first[2]))
	lastMag := math.Sqrt(float64(last[0]*last[0] + last[1]*last[1] + last[2]*last[2]))
	assert.Greater(t, lastMag, firstMag)
}

func TestSamplesAreDeterministic(t *testing.T) {
	assert.Equal(t, NoiseSamples(), NoiseSamples())
	assert.Equal(t, SSAOKernel(), SSAOKernel())
	assert.Equal(t, MarshalNoiseBuffer(), MarshalNoiseBuffer())
	assert.Equal(t, MarshalSSAOKernelBuffer(), MarshalSSAOKernelBuffer())
}

func TestMarshaledBufferSizesMatchContract(t *testing.T) {
	assert.Len(t, MarshalNoiseBuffer(), contract.NoiseBufferSize)
	assert.Len(t, MarshalSSAOKernelBuffer(), contract.SSAOSampleBufferSize)
}
