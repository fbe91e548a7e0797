// package environment drives the pass that reprojects the equirectangular
// sky texture onto the six faces of a cube map. Each face is one draw with
// its own view matrix and a shared 90 degree square projection; the face
// order follows the cube map layer order (+X, -X, +Y, -Y, +Z, -Z).
package environment

import (
	"math"

	"github.com/quadfield/quadfield/common"
)

// NumCubeFaces is the number of cube map faces rendered by the pass.
const NumCubeFaces = 6

// faceTargets and faceUps define the look direction and up vector of each
// cube face view, indexed by cube map layer.
var faceTargets = [NumCubeFaces][3]float32{
	{1, 0, 0},  // +X
	{-1, 0, 0}, // -X
	{0, 1, 0},  // +Y
	{0, -1, 0}, // -Y
	{0, 0, 1},  // +Z
	{0, 0, -1}, // -Z
}

var faceUps = [NumCubeFaces][3]float32{
	{0, -1, 0}, // +X
	{0, -1, 0}, // -X
	{0, 0, 1},  // +Y
	{0, 0, -1}, // -Y
	{0, -1, 0}, // +Z
	{0, -1, 0}, // -Z
}

// FaceProjection returns the projection matrix shared by every cube face: a
// 90 degree vertical field of view at square aspect, so the six frusta tile
// the full sphere with no gaps or overlap.
//
// Returns:
//   - [16]float32: the face projection matrix
func FaceProjection() [16]float32 {
	return common.Perspective(math.Pi/2, 1.0, 0.1, 10.0)
}

// FaceView returns the view matrix of one cube face, looking from the
// origin along the face's axis.
//
// Parameters:
//   - face: cube map layer index in [0, NumCubeFaces)
//
// Returns:
//   - [16]float32: the face view matrix
func FaceView(face int) [16]float32 {
	return common.LookAt([3]float32{0, 0, 0}, faceTargets[face], faceUps[face])
}

// FaceUniforms returns the populated cube-from-sphere uniform block for one
// face, ready for Marshal and upload before the face's draw.
//
// Parameters:
//   - face: cube map layer index in [0, NumCubeFaces)
//
// Returns:
//   - GPUCubeFromSphereUniform: the face's uniform block
func FaceUniforms(face int) GPUCubeFromSphereUniform {
	return GPUCubeFromSphereUniform{
		Projection: FaceProjection(),
		View:       FaceView(face),
	}
}
