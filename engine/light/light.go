// package light models the single directional light of the shape field and
// the orthographic shadow frustum it casts. The light's view-projection pair
// feeds both the shadow depth pass and the lit pass's shadow lookup, so both
// always derive from the same ShadowLight instance.
package light

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/quadfield/quadfield/common"
)

type shadowLightImpl struct {
	mu *sync.Mutex

	direction [3]float32
	center    [3]float32

	halfExtent float32
	near       float32
	far        float32

	viewMatrix       [16]float32
	projectionMatrix [16]float32
}

// ShadowLight is a directional light with an orthographic shadow frustum.
// The frustum is centered on a world-space point and aligned to look along
// the light's direction; matrices are recomputed on every setter.
type ShadowLight interface {
	// Direction returns the normalized direction the light points, from the
	// light toward the scene.
	//
	// Returns:
	//   - [3]float32: the light direction
	Direction() [3]float32

	// ViewMatrix returns the light-space view matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the orthographic shadow projection matrix
	// (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// Uniforms snapshots the light's state as the shadow-light uniform
	// block, ready for Marshal and upload.
	//
	// Returns:
	//   - GPUShadowLightUniform: the populated uniform block
	Uniforms() GPUShadowLightUniform

	// SetDirection sets the light direction. The input is normalized; a
	// zero vector is ignored.
	//
	// Parameters:
	//   - x, y, z: direction components
	SetDirection(x, y, z float32)

	// SetCenter sets the world-space center of the shadow frustum,
	// typically the middle of the shape field.
	//
	// Parameters:
	//   - x, y, z: center components
	SetCenter(x, y, z float32)

	// SetExtent sets the shadow frustum dimensions.
	//
	// Parameters:
	//   - halfExtent: half-size of the orthographic frustum in world units
	//   - near, far: depth range along the light direction
	SetExtent(halfExtent, near, far float32)
}

var _ ShadowLight = &shadowLightImpl{}

// NewShadowLight creates a directional shadow light. Defaults to a light
// angling down across the field over a 10-unit frustum centered at the
// origin.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - ShadowLight: the newly created light
func NewShadowLight(options ...ShadowLightBuilderOption) ShadowLight {
	l := &shadowLightImpl{
		mu:         &sync.Mutex{},
		direction:  normalize(1, -1, 0.5),
		halfExtent: 10.0,
		near:       0.1,
		far:        40.0,
	}
	for _, option := range options {
		option(l)
	}
	l.updateMatrices()
	return l
}

func (l *shadowLightImpl) Direction() [3]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

func (l *shadowLightImpl) ViewMatrix() [16]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewMatrix
}

func (l *shadowLightImpl) ProjectionMatrix() [16]float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.projectionMatrix
}

func (l *shadowLightImpl) Uniforms() GPUShadowLightUniform {
	l.mu.Lock()
	defer l.mu.Unlock()
	return GPUShadowLightUniform{
		Projection: l.projectionMatrix,
		View:       l.viewMatrix,
		Direction:  l.direction,
	}
}

func (l *shadowLightImpl) SetDirection(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if x == 0 && y == 0 && z == 0 {
		return
	}
	l.direction = normalize(x, y, z)
	l.updateMatrices()
}

func (l *shadowLightImpl) SetCenter(x, y, z float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.center = [3]float32{x, y, z}
	l.updateMatrices()
}

func (l *shadowLightImpl) SetExtent(halfExtent, near, far float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.halfExtent = halfExtent
	l.near = near
	l.far = far
	l.updateMatrices()
}

// updateMatrices recomputes the light-space view and projection matrices.
// Caller must hold the mutex.
func (l *shadowLightImpl) updateMatrices() {
	// Position the "eye" behind the center, opposite the light direction,
	// so the frustum looks from behind the scene toward the lit area.
	eye := [3]float32{
		l.center[0] - l.direction[0]*l.far*0.5,
		l.center[1] - l.direction[1]*l.far*0.5,
		l.center[2] - l.direction[2]*l.far*0.5,
	}

	// Choose a stable up vector that isn't parallel to the light direction.
	// If the light points nearly straight up or down, use the X axis.
	up := [3]float32{0, 1, 0}
	if math32.Abs(l.direction[1]) > 0.99 {
		up = [3]float32{1, 0, 0}
	}

	l.viewMatrix = common.LookAt(eye, l.center, up)
	l.projectionMatrix = common.Ortho(
		-l.halfExtent, l.halfExtent,
		-l.halfExtent, l.halfExtent,
		l.near, l.far,
	)
}

// normalize returns the unit vector of (x, y, z).
func normalize(x, y, z float32) [3]float32 {
	len2 := x*x + y*y + z*z
	if len2 == 0 {
		return [3]float32{0, -1, 0}
	}
	inv := 1.0 / math32.Sqrt(len2)
	return [3]float32{x * inv, y * inv, z * inv}
}
