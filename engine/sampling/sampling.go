// package sampling generates the two fixed sample patterns the lit and
// ambient occlusion shaders consume: the rotation noise texture-substitute
// and the SSAO hemisphere kernel. Both are generated from a fixed seed so
// every run uploads identical bytes; the shader indexes the arrays with
// compile-time bounds, so the lengths here must match the contract exactly.
package sampling

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/quadfield/quadfield/engine/contract"
)

// sampleSeed fixes the generator so the uploaded patterns never vary
// between runs.
const sampleSeed = 0x5a0f1e1d

// NoiseSamples returns the rotation noise vectors used to tilt the SSAO
// kernel per fragment. Each vector lies in the XY plane with unit length,
// z = 0. Always exactly contract.NumNoiseSamples entries.
//
// Returns:
//   - [][3]float32: the noise vectors
func NoiseSamples() [][3]float32 {
	rng := rand.New(rand.NewSource(sampleSeed))
	out := make([][3]float32, contract.NumNoiseSamples)
	for i := range out {
		angle := float32(rng.Float64()) * 2 * math.Pi
		out[i] = [3]float32{math32.Cos(angle), math32.Sin(angle), 0}
	}
	return out
}

// SSAOKernel returns the hemisphere kernel samples for the ambient
// occlusion pass. Samples point into the +Z hemisphere and cluster toward
// the origin so nearby occluders weigh more. Always exactly
// contract.NumSSAOSamples entries.
//
// Returns:
//   - [][3]float32: the kernel samples
func SSAOKernel() [][3]float32 {
	rng := rand.New(rand.NewSource(sampleSeed + 1))
	out := make([][3]float32, contract.NumSSAOSamples)
	for i := range out {
		v := [3]float32{
			float32(rng.Float64())*2 - 1,
			float32(rng.Float64())*2 - 1,
			float32(rng.Float64()),
		}
		v = normalize(v)

		// Accelerating falloff: sample i sits at lerp(0.1, 1.0, (i/N)^2)
		// of the kernel radius.
		t := float32(i) / float32(contract.NumSSAOSamples)
		scale := 0.1 + 0.9*t*t
		out[i] = [3]float32{v[0] * scale, v[1] * scale, v[2] * scale}
	}
	return out
}

// MarshalNoiseBuffer serializes the noise samples into the byte layout of
// the buffer bound at contract.BufferIndexNoise: one vec4-aligned slot per
// sample, w = 0.
//
// Returns:
//   - []byte: buffer of contract.NoiseBufferSize bytes
func MarshalNoiseBuffer() []byte {
	return marshalVec3Array(NoiseSamples())
}

// MarshalSSAOKernelBuffer serializes the kernel samples into the byte
// layout of the buffer bound at contract.BufferIndexSSAOSamples.
//
// Returns:
//   - []byte: buffer of contract.SSAOSampleBufferSize bytes
func MarshalSSAOKernelBuffer() []byte {
	return marshalVec3Array(SSAOKernel())
}

// marshalVec3Array packs vec3 samples into vec4-aligned 16-byte slots, the
// layout WGSL gives an array<vec3<f32>> in a uniform buffer.
func marshalVec3Array(samples [][3]float32) []byte {
	buf := make([]byte, len(samples)*16)
	for i, s := range samples {
		off := i * 16
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(s[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(s[1]))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(s[2]))
		binary.LittleEndian.PutUint32(buf[off+12:], 0)
	}
	return buf
}

// normalize returns the unit vector of v, or +Z if v is degenerate.
func normalize(v [3]float32) [3]float32 {
	len2 := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if len2 == 0 {
		return [3]float32{0, 0, 1}
	}
	inv := 1.0 / math32.Sqrt(len2)
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}
