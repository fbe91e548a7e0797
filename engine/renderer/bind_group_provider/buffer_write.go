package bind_group_provider

// BufferWrite is one queued upload into a provider's buffer. Writes are
// batched through Renderer.WriteBuffers so per-frame uniform refreshes
// (camera block, shadow light block) land in a single queue submission
// ahead of the frame's command buffers.
type BufferWrite struct {
	// Provider owns the destination buffer.
	Provider BindGroupProvider

	// Binding selects the buffer within the provider's group.
	Binding int

	// Offset is the destination byte offset. Zero rewrites from the start,
	// which is the common case for whole-block uniform refreshes.
	Offset uint64

	// Data is copied to the GPU at submission time.
	Data []byte
}
