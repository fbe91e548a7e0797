package camera

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// GPUUniformsSource is the canonical WGSL definition of the Uniforms struct.
// Matches GPUUniforms layout exactly (272 bytes, std140 aligned).
//
//go:embed assets/uniforms.wgsl
var GPUUniformsSource string

// GPUUniforms is the GPU-aligned representation of the primary per-frame
// uniform block. Matches the WGSL Uniforms struct layout exactly (see
// GPUUniformsSource). Size: 272 bytes (std140 / WGSL aligned).
type GPUUniforms struct {
	Projection [16]float32 // offset   0: projection matrix (mat4x4<f32>)
	Model      [16]float32 // offset  64: field model matrix (mat4x4<f32>)
	View       [16]float32 // offset 128: view matrix (mat4x4<f32>)
	ModelView  [16]float32 // offset 192: combined view * model matrix (mat4x4<f32>)
	Time       float32     // offset 256: animation clock in seconds (f32)
	_pad       float32     // offset 260: padding for vec2 alignment
	ScreenSize [2]float32  // offset 264: viewport dimensions in pixels (vec2<f32>)
}

// Size returns the size of the GPUUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (272)
func (g *GPUUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Model[i]))
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.View[i]))
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.ModelView[i]))
	}
	binary.LittleEndian.PutUint32(buf[256:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[260:], 0) // _pad
	binary.LittleEndian.PutUint32(buf[264:], math.Float32bits(g.ScreenSize[0]))
	binary.LittleEndian.PutUint32(buf[268:], math.Float32bits(g.ScreenSize[1]))
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
func (g *GPUUniforms) Unmarshal(buf []byte) error {
	if len(buf) < g.Size() {
		return fmt.Errorf("uniforms buffer is %d bytes, want %d", len(buf), g.Size())
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	for i := range 16 {
		g.Projection[i] = f32(i * 4)
		g.Model[i] = f32(64 + i*4)
		g.View[i] = f32(128 + i*4)
		g.ModelView[i] = f32(192 + i*4)
	}
	g.Time = f32(256)
	g.ScreenSize[0] = f32(264)
	g.ScreenSize[1] = f32(268)
	return nil
}
