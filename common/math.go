// package common contains the plain data types and column-major matrix math
// shared across the engine. All matrices are [16]float32 in column-major
// order using the WebGPU clip-space convention (X/Y in [-1, 1], Z in [0, 1]).
package common

import "math"

// Identity returns the 4x4 identity matrix.
func Identity() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul4 multiplies two 4x4 column-major matrices.
// Result: a * b (b is applied first).
//
// Parameters:
//   - a: left-hand matrix
//   - b: right-hand matrix
//
// Returns:
//   - [16]float32: the product a * b
func Mul4(a, b [16]float32) [16]float32 {
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Perspective builds a perspective projection matrix for WebGPU clip space.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - [16]float32: the projection matrix
func Perspective(fovY, aspect, near, far float32) [16]float32 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	out := Identity()
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
	return out
}

// Ortho builds an orthographic projection matrix for WebGPU clip space.
// Used by the shadow pass (light frusta are orthographic for directional
// lights) and by anything rendering axis-aligned offscreen targets.
//
// Parameters:
//   - left, right, bottom, top: frustum extents in world units
//   - near, far: depth range
//
// Returns:
//   - [16]float32: the projection matrix
func Ortho(left, right, bottom, top, near, far float32) [16]float32 {
	out := Identity()
	rl := right - left
	tb := top - bottom
	fn := far - near

	out[0] = 2.0 / rl
	out[5] = 2.0 / tb
	out[10] = -1.0 / fn
	out[12] = -(right + left) / rl
	out[13] = -(top + bottom) / tb
	out[14] = -near / fn
	return out
}

// LookAt builds a view matrix that transforms world coordinates into the
// space of a viewer at eye looking toward center.
//
// Parameters:
//   - eye: viewer position in world space
//   - center: target point the viewer looks at
//   - up: up vector defining viewer orientation (typically {0, 1, 0})
//
// Returns:
//   - [16]float32: the view matrix
func LookAt(eye, center, up [3]float32) [16]float32 {
	z := normalize3([3]float32{eye[0] - center[0], eye[1] - center[1], eye[2] - center[2]})
	x := normalize3(cross3(up, z))
	y := cross3(z, x)

	var out [16]float32
	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -dot3(x, eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -dot3(y, eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -dot3(z, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
	return out
}

// Invert4 computes the inverse of a 4x4 column-major matrix using cofactor
// expansion. If the matrix is singular the identity matrix is returned with
// ok = false.
//
// Parameters:
//   - m: source matrix
//
// Returns:
//   - [16]float32: the inverse, or identity if singular
//   - bool: false if the matrix is singular
func Invert4(m [16]float32) ([16]float32, bool) {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Identity(), false
	}
	inv := 1.0 / det

	var out [16]float32
	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * inv
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * inv
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * inv
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * inv

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * inv
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * inv
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * inv
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * inv

	return out, true
}

// Translate builds a translation matrix.
//
// Parameters:
//   - x, y, z: translation in world space
//
// Returns:
//   - [16]float32: the translation matrix
func Translate(x, y, z float32) [16]float32 {
	out := Identity()
	out[12], out[13], out[14] = x, y, z
	return out
}

// Scale builds a non-uniform scale matrix.
//
// Parameters:
//   - x, y, z: scale factors along each axis
//
// Returns:
//   - [16]float32: the scale matrix
func Scale(x, y, z float32) [16]float32 {
	out := Identity()
	out[0], out[5], out[10] = x, y, z
	return out
}

// RotateY builds a rotation matrix around the Y axis.
//
// Parameters:
//   - radians: rotation angle
//
// Returns:
//   - [16]float32: the rotation matrix
func RotateY(radians float32) [16]float32 {
	c := float32(math.Cos(float64(radians)))
	s := float32(math.Sin(float64(radians)))
	out := Identity()
	out[0], out[8] = c, s
	out[2], out[10] = -s, c
	return out
}

func normalize3(v [3]float32) [3]float32 {
	len2 := float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if len2 == 0 {
		len2 = 1
	}
	inv := 1.0 / float32(math.Sqrt(len2))
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
