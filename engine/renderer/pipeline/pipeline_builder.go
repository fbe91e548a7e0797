package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithSource sets the WGSL module source for this pipeline.
//
// Parameters:
//   - source: the complete WGSL source containing every entry point of this pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the WGSL source for this pipeline
func WithSource(source string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.source = source
	}
}

// WithVertexEntry sets the vertex entry point name for this pipeline.
//
// Parameters:
//   - entry: the vertex entry point name in the WGSL source
//
// Returns:
//   - PipelineBuilderOption: a function that sets the vertex entry point for this pipeline
func WithVertexEntry(entry string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexEntry = entry
	}
}

// WithFragmentEntry sets the fragment entry point name for this pipeline.
//
// Parameters:
//   - entry: the fragment entry point name in the WGSL source
//
// Returns:
//   - PipelineBuilderOption: a function that sets the fragment entry point for this pipeline
func WithFragmentEntry(entry string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentEntry = entry
	}
}

// WithComputeEntry sets the compute entry point name for this pipeline.
//
// Parameters:
//   - entry: the compute entry point name in the WGSL source
//
// Returns:
//   - PipelineBuilderOption: a function that sets the compute entry point for this pipeline
func WithComputeEntry(entry string) PipelineBuilderOption {
	return func(p *pipeline) {
		p.computeEntry = entry
	}
}

// WithLayouts sets the bind group layout descriptors for this pipeline, in group order.
//
// Parameters:
//   - layouts: the layout descriptors indexed by bind group number
//
// Returns:
//   - PipelineBuilderOption: a function that sets the layout descriptors for this pipeline
func WithLayouts(layouts []wgpu.BindGroupLayoutDescriptor) PipelineBuilderOption {
	return func(p *pipeline) {
		p.layouts = layouts
	}
}

// WithTarget sets the attachment configuration for this pipeline.
//
// Parameters:
//   - kind: the target kind (surface, offscreen, or depth-only)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the target kind for this pipeline
func WithTarget(kind TargetKind) PipelineBuilderOption {
	return func(p *pipeline) {
		p.targetKind = kind
	}
}

// WithColorFormat sets the color attachment format for offscreen targets.
//
// Parameters:
//   - format: the offscreen color format
//
// Returns:
//   - PipelineBuilderOption: a function that sets the offscreen color format for this pipeline
func WithColorFormat(format wgpu.TextureFormat) PipelineBuilderOption {
	return func(p *pipeline) {
		p.colorFormat = format
	}
}

// WithDepthTestEnabled sets whether depth testing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test enabled state for this pipeline
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled sets whether depth writing is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writing should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write enabled state for this pipeline
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithDepthBias sets the depth bias parameters for this pipeline.
//
// Parameters:
//   - bias: the constant depth bias to apply
//   - slopeScale: the slope scale depth bias to apply
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth bias parameters for this pipeline
func WithDepthBias(bias int32, slopeScale float32) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthBias = bias
		p.depthBiasSlopeScale = slopeScale
	}
}

// WithBlendEnabled sets whether blending is enabled for this pipeline.
//
// Parameters:
//   - enabled: a boolean indicating whether blending should be enabled
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend enabled state for this pipeline
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets the cull mode for this pipeline.
//
// Parameters:
//   - mode: the cull mode to use for this pipeline (e.g., wgpu.CullModeNone, wgpu.CullModeFront, wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology for this pipeline.
//
// Parameters:
//   - topology: the primitive topology to use for this pipeline (e.g., wgpu.PrimitiveTopologyTriangleList)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the primitive topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the front face winding order for this pipeline.
//
// Parameters:
//   - frontFace: the front face to use for this pipeline (e.g., wgpu.FrontFaceCCW, wgpu.FrontFaceCW)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the front face for this pipeline
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask for this pipeline.
//
// Parameters:
//   - writeMask: the color write mask to use for this pipeline (e.g., wgpu.ColorWriteMaskAll)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the color write mask for this pipeline
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithBlendState sets the blend state for this pipeline.
//
// Parameters:
//   - blendState: the blend state to use for this pipeline
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend state for this pipeline
func WithBlendState(blendState *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}
