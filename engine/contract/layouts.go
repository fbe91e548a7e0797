package contract

import "github.com/cogentcore/webgpu/wgpu"

// Byte sizes of the uniform blocks uploaded at the buffer slots above. Each
// size includes the explicit trailing padding of the block's std140 layout;
// the Marshal methods of the corresponding GPU types produce exactly these
// many bytes and their tests pin the values.
const (
	// UniformsSize is the byte size of the primary per-frame uniform block.
	UniformsSize = 272
	// ShadowLightUniformSize is the byte size of the shadow-light block.
	ShadowLightUniformSize = 144
	// CubeFromSphereUniformSize is the byte size of the cube-from-sphere
	// block (one face's projection and view).
	CubeFromSphereUniformSize = 128
	// NoiseBufferSize is the byte size of the rotation noise array: each
	// sample is a vec4-aligned float triple.
	NoiseBufferSize = NumNoiseSamples * 16
	// SSAOSampleBufferSize is the byte size of the SSAO kernel array.
	SSAOSampleBufferSize = NumSSAOSamples * 16
)

// Bind group ordering. Every render pass lays its pipeline out the same way:
// contract buffer slots first, then the expanded geometry stream, then
// textures, then samplers. Passes that skip a category close the gap but
// never reorder across categories, so group numbers stay predictable.
const (
	// GeometryStreamBinding is the sole binding inside the geometry stream
	// group.
	GeometryStreamBinding = 0
	// SamplerBindingLinear is the filtering sampler's binding inside the
	// sampler group.
	SamplerBindingLinear = 0
	// SamplerBindingComparison is the shadow comparison sampler's binding
	// inside the sampler group.
	SamplerBindingComparison = 1
)

// uniformEntry builds a layout entry for a uniform block at a contract
// buffer slot.
func uniformEntry(slot BufferIndex, visibility wgpu.ShaderStage, minSize uint64) wgpu.BindGroupLayoutEntry {
	e := wgpu.BindGroupLayoutEntry{
		Binding:    uint32(slot),
		Visibility: visibility,
	}
	e.Buffer.Type = wgpu.BufferBindingTypeUniform
	e.Buffer.MinBindingSize = minSize
	return e
}

// storageEntry builds a layout entry for a storage buffer at a contract
// buffer slot.
func storageEntry(slot BufferIndex, visibility wgpu.ShaderStage, readOnly bool) wgpu.BindGroupLayoutEntry {
	e := wgpu.BindGroupLayoutEntry{
		Binding:    uint32(slot),
		Visibility: visibility,
	}
	if readOnly {
		e.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	} else {
		e.Buffer.Type = wgpu.BufferBindingTypeStorage
	}
	return e
}

// textureEntry builds a layout entry for a sampled 2D texture at a contract
// texture slot.
func textureEntry(slot TextureIndex, sampleType wgpu.TextureSampleType) wgpu.BindGroupLayoutEntry {
	e := wgpu.BindGroupLayoutEntry{
		Binding:    uint32(slot),
		Visibility: wgpu.ShaderStageFragment,
	}
	e.Texture.SampleType = sampleType
	e.Texture.ViewDimension = wgpu.TextureViewDimension2D
	return e
}

// samplerEntry builds a layout entry for a sampler binding.
func samplerEntry(binding uint32, samplerType wgpu.SamplerBindingType) wgpu.BindGroupLayoutEntry {
	e := wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageFragment,
	}
	e.Sampler.Type = samplerType
	return e
}

// geometryStreamLayout is the single-binding group holding the expanded
// vertex stream. The expansion pass writes it; every render pass that pulls
// vertices reads it.
func geometryStreamLayout(label string, visibility wgpu.ShaderStage, readOnly bool) wgpu.BindGroupLayoutDescriptor {
	e := wgpu.BindGroupLayoutEntry{
		Binding:    GeometryStreamBinding,
		Visibility: visibility,
	}
	if readOnly {
		e.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	} else {
		e.Buffer.Type = wgpu.BufferBindingTypeStorage
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: []wgpu.BindGroupLayoutEntry{e},
	}
}

// ExpansionLayouts returns the bind group layouts of the geometry expansion
// compute pass, in group order. Group 0 holds the per-shape inputs and the
// frame uniforms at their contract slots; group 1 holds the writable
// geometry stream.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func ExpansionLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "expansion.shapes",
			Entries: []wgpu.BindGroupLayoutEntry{
				storageEntry(BufferIndexMeshPositions, wgpu.ShaderStageCompute, true),
				storageEntry(BufferIndexMeshGenerics, wgpu.ShaderStageCompute, true),
				uniformEntry(BufferIndexUniforms, wgpu.ShaderStageCompute, UniformsSize),
				storageEntry(BufferIndexMeshBytes, wgpu.ShaderStageCompute, true),
			},
		},
		geometryStreamLayout("expansion.stream", wgpu.ShaderStageCompute, false),
	}
}

// ShadowLayouts returns the bind group layouts of the shadow depth pass.
// Group 0 carries the shadow-light block; group 1 is the geometry stream the
// vertex stage pulls from.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func ShadowLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "shadow.uniforms",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(BufferIndexShadowLight, wgpu.ShaderStageVertex, ShadowLightUniformSize),
			},
		},
		geometryStreamLayout("shadow.stream", wgpu.ShaderStageVertex, true),
	}
}

// PrepassLayouts returns the bind group layouts of the depth/normal prepass
// that feeds the DepthMap and NormalMap texture slots. Group 0 carries the
// frame uniforms; group 1 is the geometry stream.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func PrepassLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "prepass.uniforms",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(BufferIndexUniforms, wgpu.ShaderStageVertex, UniformsSize),
			},
		},
		geometryStreamLayout("prepass.stream", wgpu.ShaderStageVertex, true),
	}
}

// PrimaryLayouts returns the bind group layouts of the primary lit pass.
// Group 0 carries every uniform block the lit shader consumes, group 1 the
// geometry stream, group 2 the textures at their contract slots, group 3 the
// samplers.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func PrimaryLayouts() []wgpu.BindGroupLayoutDescriptor {
	both := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "primary.uniforms",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(BufferIndexUniforms, both, UniformsSize),
				uniformEntry(BufferIndexShadowLight, both, ShadowLightUniformSize),
				uniformEntry(BufferIndexNoise, wgpu.ShaderStageFragment, NoiseBufferSize),
				uniformEntry(BufferIndexSSAOSamples, wgpu.ShaderStageFragment, SSAOSampleBufferSize),
			},
		},
		geometryStreamLayout("primary.stream", wgpu.ShaderStageVertex, true),
		{
			Label: "primary.textures",
			Entries: []wgpu.BindGroupLayoutEntry{
				textureEntry(TextureIndexColor, wgpu.TextureSampleTypeFloat),
				textureEntry(TextureIndexShadowMap, wgpu.TextureSampleTypeDepth),
				textureEntry(TextureIndexDepthMap, wgpu.TextureSampleTypeDepth),
				textureEntry(TextureIndexNormalMap, wgpu.TextureSampleTypeFloat),
				textureEntry(TextureIndexDiffuse, wgpu.TextureSampleTypeFloat),
			},
		},
		{
			Label: "primary.samplers",
			Entries: []wgpu.BindGroupLayoutEntry{
				samplerEntry(SamplerBindingLinear, wgpu.SamplerBindingTypeFiltering),
				samplerEntry(SamplerBindingComparison, wgpu.SamplerBindingTypeComparison),
			},
		},
	}
}

// SSAOLayouts returns the bind group layouts of the ambient occlusion pass.
// The pass draws a fullscreen triangle, so there is no geometry stream
// group: group 0 is uniforms and kernel data, group 1 the depth and normal
// inputs, group 2 the sampler.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func SSAOLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "ssao.uniforms",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(BufferIndexUniforms, wgpu.ShaderStageFragment, UniformsSize),
				uniformEntry(BufferIndexNoise, wgpu.ShaderStageFragment, NoiseBufferSize),
				uniformEntry(BufferIndexSSAOSamples, wgpu.ShaderStageFragment, SSAOSampleBufferSize),
			},
		},
		{
			Label: "ssao.textures",
			Entries: []wgpu.BindGroupLayoutEntry{
				textureEntry(TextureIndexDepthMap, wgpu.TextureSampleTypeDepth),
				textureEntry(TextureIndexNormalMap, wgpu.TextureSampleTypeFloat),
			},
		},
		{
			Label: "ssao.samplers",
			Entries: []wgpu.BindGroupLayoutEntry{
				samplerEntry(SamplerBindingLinear, wgpu.SamplerBindingTypeFiltering),
			},
		},
	}
}

// CubeFromSphereLayouts returns the bind group layouts of the pass that
// projects the equirectangular environment texture onto one cube face per
// draw. Group 0 is the face's projection/view block, group 1 the source
// texture, group 2 the sampler.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: layouts indexed by bind group number
func CubeFromSphereLayouts() []wgpu.BindGroupLayoutDescriptor {
	return []wgpu.BindGroupLayoutDescriptor{
		{
			Label: "cubefromsphere.uniforms",
			Entries: []wgpu.BindGroupLayoutEntry{
				uniformEntry(BufferIndexCubeFromSphere, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, CubeFromSphereUniformSize),
			},
		},
		{
			Label: "cubefromsphere.textures",
			Entries: []wgpu.BindGroupLayoutEntry{
				textureEntry(TextureIndexColor, wgpu.TextureSampleTypeFloat),
			},
		},
		{
			Label: "cubefromsphere.samplers",
			Entries: []wgpu.BindGroupLayoutEntry{
				samplerEntry(SamplerBindingLinear, wgpu.SamplerBindingTypeFiltering),
			},
		},
	}
}
