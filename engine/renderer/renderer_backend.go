package renderer

// RendererBackendType selects the GPU API implementation behind the
// Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU is the WebGPU backend. It is currently the only one.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display surface.
type PresentMode int

const (
	// PresentModeVSync blocks presentation until the next vertical blank,
	// capping the frame rate at the monitor refresh rate with no tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. Lowest latency, may tear.
	PresentModeUncapped
)

// MSAASampleCount is the multisample count for the surface color target.
// WebGPU guarantees 1 and 4; 8 and 16 depend on the adapter.
type MSAASampleCount uint32

const (
	// MSAAOff renders single-sampled.
	MSAAOff MSAASampleCount = 1

	// MSAA4x is the default and is guaranteed by every WebGPU adapter.
	MSAA4x MSAASampleCount = 4

	// MSAA8x is adapter-dependent.
	MSAA8x MSAASampleCount = 8

	// MSAA16x is adapter-dependent.
	MSAA16x MSAASampleCount = 16
)

// Valid reports whether the count is one of the sample counts the surface
// configuration accepts. Other values would fail deep inside pipeline
// creation with an opaque validation error, so the renderer rejects them
// up front.
//
// Returns:
//   - bool: true for 1, 4, 8 or 16
func (c MSAASampleCount) Valid() bool {
	switch c {
	case MSAAOff, MSAA4x, MSAA8x, MSAA16x:
		return true
	}
	return false
}

// RendererBackend is what the Renderer drives. It embeds the interface of
// the selected GPU API so the Renderer stays backend-agnostic.
type RendererBackend interface {
	wgpuRendererBackend
}
