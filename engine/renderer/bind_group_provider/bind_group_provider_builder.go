package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option applied by
// NewBindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBuffer seeds one binding with an existing GPU buffer. InitBindGroup
// skips buffer creation for bindings that already hold one, so this is how
// two providers with different layouts share the same underlying buffer
// (the expansion pass writes the geometry stream through a read-write
// layout and every render pass reads it through a read-only one).
//
// Parameters:
//   - binding: the binding index within the provider's group
//   - buf: the buffer to share into that binding
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}

// WithBuffers seeds several bindings at once from a map of binding index
// to buffer. Bindings absent from the map are still created fresh by
// InitBindGroup.
//
// Parameters:
//   - buffers: binding index to buffer map to seed
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithBuffers(buffers map[int]*wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		for binding, buf := range buffers {
			p.buffers[binding] = buf
		}
	}
}
