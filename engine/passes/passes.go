// package passes assembles the module's fixed pipeline set: the geometry
// expansion compute pass and the five render passes built on its output
// stream. Each constructor pairs an embedded WGSL module with the bind group
// layouts the contract package derives from the shared slot enumerations, so
// every pipeline is laid out by the same closed numbering the draw code uses.
package passes

import (
	_ "embed"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/quadfield/quadfield/engine/contract"
	"github.com/quadfield/quadfield/engine/renderer/pipeline"
	"github.com/quadfield/quadfield/engine/tiling"
)

//go:embed assets/expand.wgsl
var expandSource string

//go:embed assets/shadow.wgsl
var shadowSource string

//go:embed assets/prepass.wgsl
var prepassSource string

//go:embed assets/primary.wgsl
var primarySource string

//go:embed assets/ssao.wgsl
var ssaoSource string

//go:embed assets/cube_from_sphere.wgsl
var cubeFromSphereSource string

// Pipeline cache keys for the fixed pipeline set.
const (
	KeyExpansion      = "geometry_expansion"
	KeyShadow         = "shadow_depth"
	KeyPrepass        = "depth_normal_prepass"
	KeyPrimary        = "primary_lit"
	KeySSAO           = "ssao"
	KeyCubeFromSphere = "cube_from_sphere"
)

// StreamVertexSize is the byte size of one expanded stream vertex: position,
// normal, and attribute vec4s.
const StreamVertexSize = 48

// FullscreenVertexCount is the draw size of the single-triangle fullscreen
// passes (SSAO, cube face reprojection).
const FullscreenVertexCount = 3

// drawVertsPerShape is the non-indexed draw footprint of one shape: every
// triangle is drawn with three vertices pulled through the strip-form corner
// mapping, so it exceeds the shape's unique stream vertex count.
const drawVertsPerShape = tiling.PrimsPerShape * 3

// StreamBufferSize returns the byte size of the expanded geometry stream for
// the given tiling: every workgroup reserves its full vertex capacity.
//
// Parameters:
//   - t: the field tiling
//
// Returns:
//   - uint64: stream buffer size in bytes
func StreamBufferSize(t tiling.Tiling) uint64 {
	return uint64(t.VertexBufferLen()) * StreamVertexSize
}

// DrawVertexCount returns the non-indexed vertex count for a render pass that
// draws every shape in the field.
//
// Parameters:
//   - t: the field tiling
//
// Returns:
//   - uint32: total draw vertex count
func DrawVertexCount(t tiling.Tiling) uint32 {
	return uint32(t.TotalShapes * drawVertsPerShape)
}

// NewExpansionPipeline builds the compute pipeline that expands the per-shape
// field buffers into the geometry stream. Dispatch it with the tiling's
// DispatchSize.
//
// Returns:
//   - pipeline.Pipeline: the unregistered compute pipeline
func NewExpansionPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeyExpansion, pipeline.PipelineTypeCompute,
		pipeline.WithSource(expandSource),
		pipeline.WithComputeEntry("expand_main"),
		pipeline.WithLayouts(contract.ExpansionLayouts()),
	)
}

// NewShadowPipeline builds the depth-only pipeline that renders the stream
// from the shadow light's point of view.
//
// Returns:
//   - pipeline.Pipeline: the unregistered render pipeline
func NewShadowPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeyShadow, pipeline.PipelineTypeRender,
		pipeline.WithSource(shadowSource),
		pipeline.WithVertexEntry("vs_main"),
		pipeline.WithLayouts(contract.ShadowLayouts()),
		pipeline.WithTarget(pipeline.TargetDepthOnly),
		// Constant and slope-scaled bias against shadow acne on the thin
		// strip geometry.
		pipeline.WithDepthBias(2, 2.0),
	)
}

// NewPrepassPipeline builds the offscreen pipeline that fills the DepthMap
// and NormalMap inputs of the primary and ambient occlusion passes.
//
// Returns:
//   - pipeline.Pipeline: the unregistered render pipeline
func NewPrepassPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeyPrepass, pipeline.PipelineTypeRender,
		pipeline.WithSource(prepassSource),
		pipeline.WithVertexEntry("vs_main"),
		pipeline.WithFragmentEntry("fs_main"),
		pipeline.WithLayouts(contract.PrepassLayouts()),
		pipeline.WithTarget(pipeline.TargetOffscreen),
		pipeline.WithColorFormat(wgpu.TextureFormatRGBA8Unorm),
	)
}

// NewPrimaryPipeline builds the lit surface pipeline consuming every contract
// slot: the frame and shadow uniforms, the sample patterns, the stream, the
// five texture slots, and both samplers.
//
// Returns:
//   - pipeline.Pipeline: the unregistered render pipeline
func NewPrimaryPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeyPrimary, pipeline.PipelineTypeRender,
		pipeline.WithSource(primarySource),
		pipeline.WithVertexEntry("vs_main"),
		pipeline.WithFragmentEntry("fs_main"),
		pipeline.WithLayouts(contract.PrimaryLayouts()),
		pipeline.WithTarget(pipeline.TargetSurface),
	)
}

// NewSSAOPipeline builds the fullscreen ambient occlusion pipeline. It renders
// into a single-channel offscreen target and carries no depth attachment.
//
// Returns:
//   - pipeline.Pipeline: the unregistered render pipeline
func NewSSAOPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeySSAO, pipeline.PipelineTypeRender,
		pipeline.WithSource(ssaoSource),
		pipeline.WithVertexEntry("vs_fullscreen"),
		pipeline.WithFragmentEntry("fs_main"),
		pipeline.WithLayouts(contract.SSAOLayouts()),
		pipeline.WithTarget(pipeline.TargetOffscreen),
		pipeline.WithColorFormat(wgpu.TextureFormatR8Unorm),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
	)
}

// NewCubeFromSpherePipeline builds the pipeline that reprojects the
// equirectangular environment texture onto cube faces, one face per draw with
// the face's uniform block rewritten between draws.
//
// Returns:
//   - pipeline.Pipeline: the unregistered render pipeline
func NewCubeFromSpherePipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(KeyCubeFromSphere, pipeline.PipelineTypeRender,
		pipeline.WithSource(cubeFromSphereSource),
		pipeline.WithVertexEntry("vs_fullscreen"),
		pipeline.WithFragmentEntry("fs_main"),
		pipeline.WithLayouts(contract.CubeFromSphereLayouts()),
		pipeline.WithTarget(pipeline.TargetOffscreen),
		pipeline.WithColorFormat(wgpu.TextureFormatRGBA8Unorm),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
	)
}
