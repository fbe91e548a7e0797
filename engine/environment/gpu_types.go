package environment

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// GPUCubeFromSphereUniformSource is the canonical WGSL definition of the
// CubeFromSphereUniform struct. Matches GPUCubeFromSphereUniform layout
// exactly (128 bytes).
//
//go:embed assets/cube_from_sphere_uniform.wgsl
var GPUCubeFromSphereUniformSource string

// GPUCubeFromSphereUniform is the GPU-aligned representation of one cube
// face's reprojection uniforms. Matches the WGSL CubeFromSphereUniform
// struct layout exactly (see GPUCubeFromSphereUniformSource).
// Size: 128 bytes (two mat4x4<f32>).
type GPUCubeFromSphereUniform struct {
	Projection [16]float32 // offset  0: 90 degree square face projection (mat4x4<f32>)
	View       [16]float32 // offset 64: face view matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCubeFromSphereUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUCubeFromSphereUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCubeFromSphereUniform struct into a byte buffer
// suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPUCubeFromSphereUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	return buf
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// struct, reading each matrix at its documented offset.
//
// Parameters:
//   - buf: a buffer of at least Size() bytes
//
// Returns:
//   - error: an error if the buffer is too short
func (g *GPUCubeFromSphereUniform) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("cube face uniform buffer is %d bytes, want %d", len(buf), g.Size())
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	for i := range 16 {
		g.Projection[i] = f32(i * 4)
		g.View[i] = f32(64 + i*4)
	}
	return nil
}
