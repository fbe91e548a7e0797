package light

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// GPUShadowLightUniformSource is the canonical WGSL definition of the
// ShadowLightUniform struct. Matches GPUShadowLightUniform layout exactly
// (144 bytes, std140 aligned).
//
//go:embed assets/shadow_light_uniform.wgsl
var GPUShadowLightUniformSource string

// GPUShadowLightUniform is the GPU-aligned representation of the
// shadow-light uniform block. Matches the WGSL ShadowLightUniform struct
// layout exactly (see GPUShadowLightUniformSource). Size: 144 bytes
// (std140 / WGSL aligned).
type GPUShadowLightUniform struct {
	Projection [16]float32 // offset   0: orthographic shadow projection (mat4x4<f32>)
	View       [16]float32 // offset  64: light-space view matrix (mat4x4<f32>)
	Direction  [3]float32  // offset 128: normalized light direction (vec3<f32>)
	_pad       float32     // offset 140: padding to 144 bytes
}

// Size returns the size of the GPUShadowLightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUShadowLightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUShadowLightUniform struct into a byte buffer
// suitable for GPU upload.
//
// Returns:
//   - []byte: 144-byte buffer ready for GPU upload
func (g *GPUShadowLightUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Direction[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], 0) // _pad
	return buf
}

// Unmarshal deserializes a byte buffer produced by Marshal back into the
// struct, reading each field at its documented offset. Padding bytes are
// ignored.
//
// Parameters:
//   - buf: a buffer of at least Size() bytes
//
// Returns:
//   - error: an error if the buffer is too short
func (g *GPUShadowLightUniform) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("shadow light uniform buffer is %d bytes, want %d", len(buf), g.Size())
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	for i := range 16 {
		g.Projection[i] = f32(i * 4)
		g.View[i] = f32(64 + i*4)
	}
	for i := range 3 {
		g.Direction[i] = f32(128 + i*4)
	}
	return nil
}
