package light

type ShadowLightBuilderOption func(*shadowLightImpl)

// WithDirection sets the light direction. The input is normalized.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - ShadowLightBuilderOption: a function that sets the light direction
func WithDirection(x, y, z float32) ShadowLightBuilderOption {
	return func(l *shadowLightImpl) {
		if x == 0 && y == 0 && z == 0 {
			return
		}
		l.direction = normalize(x, y, z)
	}
}

// WithCenter sets the world-space center of the shadow frustum.
//
// Parameters:
//   - x, y, z: center components
//
// Returns:
//   - ShadowLightBuilderOption: a function that sets the frustum center
func WithCenter(x, y, z float32) ShadowLightBuilderOption {
	return func(l *shadowLightImpl) {
		l.center = [3]float32{x, y, z}
	}
}

// WithExtent sets the shadow frustum dimensions.
//
// Parameters:
//   - halfExtent: half-size of the orthographic frustum in world units
//   - near, far: depth range along the light direction
//
// Returns:
//   - ShadowLightBuilderOption: a function that sets the frustum extent
func WithExtent(halfExtent, near, far float32) ShadowLightBuilderOption {
	return func(l *shadowLightImpl) {
		l.halfExtent = halfExtent
		l.near = near
		l.far = far
	}
}
