package field

import (
	_ "embed"
	"unsafe"
)

// GPUShapePositionSource is the canonical WGSL definition of the
// ShapePosition struct. Matches GPUShapePosition layout exactly (16 bytes).
//
//go:embed assets/shape_position.wgsl
var GPUShapePositionSource string

// GPUShapePosition is the GPU-aligned representation of one shape's
// world-space anchor. One entry per shape, addressed by the flattened grid
// index. Matches the WGSL ShapePosition struct layout exactly (see
// GPUShapePositionSource). Size: 16 bytes (vec3 + pad).
type GPUShapePosition struct {
	Position [3]float32 // offset  0: world-space anchor (vec3<f32>)
	_pad     float32    // offset 12: padding to 16 bytes
}

// GPUShapeGenericsSource is the canonical WGSL definition of the
// ShapeGenerics struct. Matches GPUShapeGenerics layout exactly (16 bytes).
//
//go:embed assets/shape_generics.wgsl
var GPUShapeGenericsSource string

// GPUShapeGenerics is the GPU-aligned per-shape animation attributes. One
// entry per shape, addressed by the flattened grid index. Matches the WGSL
// ShapeGenerics struct layout exactly (see GPUShapeGenericsSource).
// Size: 16 bytes.
type GPUShapeGenerics struct {
	ColorSeed float32 // offset  0: hue seed in [0, 1)
	Phase     float32 // offset  4: animation phase offset in radians
	Amplitude float32 // offset  8: animation amplitude in world units
	_pad      float32 // offset 12: padding to 16 bytes
}

// Size returns the size of the GPUShapePosition struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUShapePosition) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Size returns the size of the GPUShapeGenerics struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUShapeGenerics) Size() int {
	return int(unsafe.Sizeof(*g))
}
