package contract

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferIndicesContiguousFromZero(t *testing.T) {
	indices := []BufferIndex{
		BufferIndexMeshPositions,
		BufferIndexMeshGenerics,
		BufferIndexUniforms,
		BufferIndexMeshBytes,
		BufferIndexShadowLight,
		BufferIndexNoise,
		BufferIndexSSAOSamples,
		BufferIndexCubeFromSphere,
	}
	require.Len(t, indices, int(NumBufferIndices))
	for want, got := range indices {
		assert.Equal(t, BufferIndex(want), got)
	}
}

func TestVertexAttributesContiguousFromZero(t *testing.T) {
	attrs := []VertexAttribute{
		VertexAttributePosition,
		VertexAttributeTexcoord,
		VertexAttributeNormal,
	}
	require.Len(t, attrs, int(NumVertexAttributes))
	for want, got := range attrs {
		assert.Equal(t, VertexAttribute(want), got)
	}
}

func TestTextureIndicesContiguousFromZero(t *testing.T) {
	indices := []TextureIndex{
		TextureIndexColor,
		TextureIndexShadowMap,
		TextureIndexDepthMap,
		TextureIndexNormalMap,
		TextureIndexDiffuse,
	}
	require.Len(t, indices, int(NumTextureIndices))
	for want, got := range indices {
		assert.Equal(t, TextureIndex(want), got)
	}
}

func TestSamplePatternLengths(t *testing.T) {
	assert.Equal(t, 16, NumNoiseSamples)
	assert.Equal(t, 8, NumSSAOSamples)
	assert.Equal(t, NumNoiseSamples*16, NoiseBufferSize)
	assert.Equal(t, NumSSAOSamples*16, SSAOSampleBufferSize)
}

// Within any one bind group a binding number must appear exactly once, and
// every buffer binding must be one of the contract slots.
func TestPassLayoutBindingsAreDistinct(t *testing.T) {
	passes := map[string][]wgpu.BindGroupLayoutDescriptor{
		"expansion":      ExpansionLayouts(),
		"shadow":         ShadowLayouts(),
		"prepass":        PrepassLayouts(),
		"primary":        PrimaryLayouts(),
		"ssao":           SSAOLayouts(),
		"cubefromsphere": CubeFromSphereLayouts(),
	}
	for name, groups := range passes {
		for gi, group := range groups {
			seen := map[uint32]bool{}
			for _, e := range group.Entries {
				assert.Falsef(t, seen[e.Binding],
					"%s group %d: binding %d assigned twice", name, gi, e.Binding)
				seen[e.Binding] = true
				assert.NotZerof(t, e.Visibility,
					"%s group %d binding %d: no stage visibility", name, gi, e.Binding)
			}
		}
	}
}

func TestExpansionLayoutMatchesContractSlots(t *testing.T) {
	groups := ExpansionLayouts()
	require.Len(t, groups, 2)

	shapes := groups[0]
	require.Len(t, shapes.Entries, 4)
	assert.Equal(t, uint32(BufferIndexMeshPositions), shapes.Entries[0].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, shapes.Entries[0].Buffer.Type)
	assert.Equal(t, uint32(BufferIndexMeshGenerics), shapes.Entries[1].Binding)
	assert.Equal(t, uint32(BufferIndexUniforms), shapes.Entries[2].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, shapes.Entries[2].Buffer.Type)
	assert.Equal(t, uint64(UniformsSize), shapes.Entries[2].Buffer.MinBindingSize)
	assert.Equal(t, uint32(BufferIndexMeshBytes), shapes.Entries[3].Binding)

	stream := groups[1]
	require.Len(t, stream.Entries, 1)
	assert.Equal(t, uint32(GeometryStreamBinding), stream.Entries[0].Binding)
	assert.Equal(t, wgpu.BufferBindingTypeStorage, stream.Entries[0].Buffer.Type)
	assert.Equal(t, wgpu.ShaderStageCompute, stream.Entries[0].Visibility)
}

func TestRenderPassesReadStreamReadOnly(t *testing.T) {
	for _, groups := range [][]wgpu.BindGroupLayoutDescriptor{ShadowLayouts(), PrepassLayouts(), PrimaryLayouts()} {
		stream := groups[1]
		require.Len(t, stream.Entries, 1)
		assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, stream.Entries[0].Buffer.Type)
		assert.Equal(t, wgpu.ShaderStageVertex, stream.Entries[0].Visibility)
	}
}

func TestPrimaryTexturesAtContractSlots(t *testing.T) {
	groups := PrimaryLayouts()
	require.Len(t, groups, 4)

	textures := groups[2]
	require.Len(t, textures.Entries, int(NumTextureIndices))
	for i, e := range textures.Entries {
		assert.Equal(t, uint32(i), e.Binding)
	}
	assert.Equal(t, wgpu.TextureSampleTypeDepth, textures.Entries[TextureIndexShadowMap].Texture.SampleType)
	assert.Equal(t, wgpu.TextureSampleTypeDepth, textures.Entries[TextureIndexDepthMap].Texture.SampleType)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, textures.Entries[TextureIndexColor].Texture.SampleType)

	samplers := groups[3]
	require.Len(t, samplers.Entries, 2)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, samplers.Entries[SamplerBindingLinear].Sampler.Type)
	assert.Equal(t, wgpu.SamplerBindingTypeComparison, samplers.Entries[SamplerBindingComparison].Sampler.Type)
}
