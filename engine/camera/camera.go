package camera

import (
	"math"
	"sync"

	"github.com/quadfield/quadfield/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32
	up       [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	screenW float32
	screenH float32
	elapsed float32

	modelMatrix      [16]float32
	viewMatrix       [16]float32
	projectionMatrix [16]float32
	modelViewMatrix  [16]float32
}

// Camera holds the perspective settings and the field's model transform, and
// assembles the per-frame uniform block from them. Update advances the
// animation clock and recomputes all matrices; Uniforms snapshots the result
// for upload.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Elapsed returns the accumulated animation time in seconds.
	//
	// Returns:
	//   - float32: seconds since the first Update
	Elapsed() float32

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ModelMatrix returns the field's model transform (column-major).
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// ModelViewMatrix returns the combined view * model matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the model-view matrix
	ModelViewMatrix() [16]float32

	// Uniforms snapshots the current camera state as the primary uniform
	// block, ready for Marshal and upload.
	//
	// Returns:
	//   - GPUUniforms: the populated uniform block
	Uniforms() GPUUniforms

	// Update advances the animation clock by dt seconds and recomputes the
	// view, projection, and model-view matrices. Call once per frame.
	//
	// Parameters:
	//   - dt: seconds since the previous frame
	Update(dt float32)

	// SetPosition sets the camera's world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetTarget sets the point the camera looks at.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetFov sets the field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetScreenSize sets the viewport dimensions. Updates the aspect ratio
	// and the screen-size entry of the uniform block together so the two can
	// never disagree.
	//
	// Parameters:
	//   - width, height: viewport dimensions in pixels
	SetScreenSize(width, height float32)

	// SetModelMatrix sets the field's model transform.
	//
	// Parameters:
	//   - m: the model matrix (column-major)
	SetModelMatrix(m [16]float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings: 60
// degree vertical field of view, square aspect, near 0.1, far 100, looking
// at the origin from +Z.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		position:    [3]float32{0, 0, 8},
		up:          [3]float32{0, 1, 0},
		fov:         60.0 * (math.Pi / 180.0),
		aspect:      1.0,
		near:        0.1,
		far:         100.0,
		screenW:     1,
		screenH:     1,
		modelMatrix: common.Identity(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ModelMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modelMatrix
}

func (c *cameraImpl) ModelViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modelViewMatrix
}

func (c *cameraImpl) Uniforms() GPUUniforms {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUUniforms{
		Projection: c.projectionMatrix,
		Model:      c.modelMatrix,
		View:       c.viewMatrix,
		ModelView:  c.modelViewMatrix,
		Time:       c.elapsed,
		ScreenSize: [2]float32{c.screenW, c.screenH},
	}
}

func (c *cameraImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += dt
	c.updateMatrices()
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetScreenSize(width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screenW = width
	c.screenH = height
	if height > 0 {
		c.aspect = width / height
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetModelMatrix(m [16]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modelMatrix = m
	c.updateMatrices()
}

// updateMatrices recomputes the view, projection, and model-view matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = common.LookAt(c.position, c.target, c.up)
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.modelViewMatrix = common.Mul4(c.viewMatrix, c.modelMatrix)
}
