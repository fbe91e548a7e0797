package renderer

import (
	"github.com/quadfield/quadfield/engine/renderer/pipeline"
)

// RendererBuilderOption is a functional option applied by NewRenderer
// during construction.
type RendererBuilderOption func(*renderer)

// WithPipeline seeds the pipeline cache with a single entry. Seeded
// pipelines still need RegisterPipelines to create their GPU objects.
//
// Parameters:
//   - key: the cache key draws and dispatches will use
//   - p: the pipeline configuration to cache
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPipeline(key string, p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache[key] = p
	}
}

// WithPipelines replaces the pipeline cache wholesale.
//
// Parameters:
//   - pipelines: cache key to pipeline configuration map
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPipelines(pipelines map[string]pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		r.pipelineCache = pipelines
	}
}

// WithPresentMode sets how frames are delivered to the display. The
// default is whatever the surface configuration picks; the viewer runs
// VSync.
//
// Parameters:
//   - mode: PresentModeVSync or PresentModeUncapped
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the surface multisample count. Defaults to MSAA4x when
// unset. Counts that fail MSAASampleCount.Valid are logged and ignored.
//
// Parameters:
//   - count: the MSAASampleCount to configure the surface with
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithForceSoftwareRenderer requests WGPU's fallback adapter instead of
// hardware. Needs a software Vulkan ICD on the host (SwiftShader or
// lavapipe). Mostly useful for headless smoke runs.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
