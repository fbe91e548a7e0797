// package contract pins down every integer the host and the shader stages
// must agree on: buffer binding slots, vertex attribute locations, texture
// slots, and the fixed sample-pattern lengths. Binding is positional — a
// stage reads a resource at the documented index, never by name — so these
// enumerations are closed sets with stable values. Changing or reordering
// any of them breaks every consumer at once, silently.
package contract

// BufferIndex identifies a buffer slot at the host/pipeline boundary.
// Values are contiguous from zero and never reused for two different
// purposes within one pass.
type BufferIndex int

const (
	// BufferIndexMeshPositions is the per-shape position buffer; exactly one
	// entry per shape, addressed by the flattened grid index.
	BufferIndexMeshPositions BufferIndex = iota
	// BufferIndexMeshGenerics is the per-shape generic attribute buffer
	// (color seed, phase, amplitude).
	BufferIndexMeshGenerics
	// BufferIndexUniforms is the primary per-frame uniform block.
	BufferIndexUniforms
	// BufferIndexMeshBytes is the per-shape raw byte side channel.
	BufferIndexMeshBytes
	// BufferIndexShadowLight is the shadow-light uniform block.
	BufferIndexShadowLight
	// BufferIndexNoise is the rotation noise sample array (NumNoiseSamples
	// entries exactly).
	BufferIndexNoise
	// BufferIndexSSAOSamples is the SSAO kernel sample array (NumSSAOSamples
	// entries exactly).
	BufferIndexSSAOSamples
	// BufferIndexCubeFromSphere is the cube-from-sphere uniform block.
	BufferIndexCubeFromSphere

	// NumBufferIndices is the size of the BufferIndex enumeration.
	NumBufferIndices
)

// VertexAttribute identifies a vertex attribute location in the expanded
// geometry stream.
type VertexAttribute int

const (
	// VertexAttributePosition is the world-space position attribute.
	VertexAttributePosition VertexAttribute = iota
	// VertexAttributeTexcoord is the UV attribute.
	VertexAttributeTexcoord
	// VertexAttributeNormal is the surface normal attribute.
	VertexAttributeNormal

	// NumVertexAttributes is the size of the VertexAttribute enumeration.
	NumVertexAttributes
)

// TextureIndex identifies a texture slot at the host/pipeline boundary.
type TextureIndex int

const (
	// TextureIndexColor is the primary color / equirectangular source slot.
	TextureIndexColor TextureIndex = iota
	// TextureIndexShadowMap is the shadow depth map slot.
	TextureIndexShadowMap
	// TextureIndexDepthMap is the scene depth slot read by the SSAO pass.
	TextureIndexDepthMap
	// TextureIndexNormalMap is the scene normal slot read by the SSAO pass.
	TextureIndexNormalMap
	// TextureIndexDiffuse is the diffuse albedo slot.
	TextureIndexDiffuse

	// NumTextureIndices is the size of the TextureIndex enumeration.
	NumTextureIndices
)

// Sample-pattern lengths. These size the fixed arrays uploaded at
// BufferIndexNoise and BufferIndexSSAOSamples and must match exactly what
// the sampling generator produces; the shader indexes both arrays with
// compile-time bounds.
const (
	// NumNoiseSamples is the length of the rotation noise array.
	NumNoiseSamples = 16
	// NumSSAOSamples is the length of the SSAO kernel array.
	NumSSAOSamples = 8
)
