// package tiling derives every constant needed to dispatch the shape field's
// two-stage geometry pipeline: how the flattened shape grid is partitioned
// into fixed-size workgroups, how large the final (possibly partial) group
// is, and how much output capacity every workgroup must reserve.
//
// All values for the shipped 64x64 field are plain compile-time constants —
// nothing here is recomputed per frame. The Tiling type exists for code that
// needs the same arithmetic for a different grid (tests, tooling, offline
// bakes) with input validation attached.
package tiling

import "fmt"

// Shape topology. Every shape in the field has identical topology: a fixed
// number of quads, each contributing two triangles. The counts below are the
// single source of truth for per-shape vertex and primitive totals.
const (
	// QuadsPerShape is the number of quads composing one shape.
	QuadsPerShape = 8
	// PrimsPerQuad is the number of triangles per quad.
	PrimsPerQuad = 2
	// VertsPerQuad is the number of vertices emitted per quad in the
	// expanded (strip-form) geometry stream.
	VertsPerQuad = 3

	// PrimsPerShape is the triangle count for one shape.
	PrimsPerShape = QuadsPerShape * PrimsPerQuad
	// VertsPerShape is the vertex count for one shape.
	VertsPerShape = QuadsPerShape * VertsPerQuad
)

// Field dimensions. The grid is fixed at build time and is the sole source
// of truth for dispatch sizing.
const (
	// ShapesX is the shape count along the X axis of the grid.
	ShapesX = 64
	// ShapesY is the shape count along the Y axis of the grid.
	ShapesY = 64
	// NumShapes is the total shape count of the flattened grid.
	NumShapes = ShapesX * ShapesY
)

// Workgroup partitioning. The workgroup size must be a power of two so that
// the lane mask below is valid; the ceiling divide is expressed with the
// mask to mirror what the shader-side constants do.
const (
	// ThreadsPerGroupLog2 is the power-of-two exponent of the workgroup size.
	ThreadsPerGroupLog2 = 3
	// ThreadsPerGroup is the number of shapes processed by one full workgroup.
	ThreadsPerGroup = 1 << ThreadsPerGroupLog2
	// GroupLaneMask selects the lane index within a workgroup.
	GroupLaneMask = ThreadsPerGroup - 1

	// NumThreadgroups is the workgroup count of the dispatch:
	// ceil(NumShapes / ThreadsPerGroup).
	NumThreadgroups = (NumShapes + GroupLaneMask) / ThreadsPerGroup

	// FirstShapeOfLastGroup is the flattened index of the first shape in the
	// final workgroup. Taken relative to NumThreadgroups-1 so that an exact
	// multiple yields a full tail rather than an empty one.
	FirstShapeOfLastGroup = ThreadsPerGroup * ((NumShapes - 1) / ThreadsPerGroup)

	// TailShapeCount is the number of live shapes in the final workgroup.
	// Always in [1, ThreadsPerGroup]; equals ThreadsPerGroup when NumShapes
	// is an exact multiple of the workgroup size.
	TailShapeCount = NumShapes - FirstShapeOfLastGroup

	// TailPrimCount is the number of live triangles emitted by the final
	// workgroup. Never exceeds MaxPrimsPerGroup.
	TailPrimCount = TailShapeCount * PrimsPerShape

	// MaxVertsPerGroup is the vertex output capacity every workgroup must
	// reserve, full or tail.
	MaxVertsPerGroup = VertsPerShape * ThreadsPerGroup

	// MaxPrimsPerGroup is the primitive output capacity every workgroup must
	// reserve, full or tail.
	MaxPrimsPerGroup = ThreadsPerGroup * PrimsPerShape
)

// GroupOf returns the workgroup index that processes the shape at flattened
// grid index i. Together with LaneOf this is the pipeline's only ordering
// guarantee: host-side per-shape arrays and GPU-side per-lane outputs stay
// aligned because the mapping is a pure function of i.
//
// Parameters:
//   - i: flattened shape index
//
// Returns:
//   - int: the workgroup index i / ThreadsPerGroup
func GroupOf(i int) int {
	return i / ThreadsPerGroup
}

// LaneOf returns the lane within its workgroup for the shape at flattened
// grid index i.
//
// Parameters:
//   - i: flattened shape index
//
// Returns:
//   - int: the lane index i mod ThreadsPerGroup
func LaneOf(i int) int {
	return i & GroupLaneMask
}

// FlatIndex returns the flattened grid index for a shape at grid coordinates
// (x, y), row-major.
//
// Parameters:
//   - x, y: grid coordinates; x in [0, ShapesX), y in [0, ShapesY)
//
// Returns:
//   - int: the flattened index y*ShapesX + x
func FlatIndex(x, y int) int {
	return y*ShapesX + x
}

// Tiling holds the partitioning of an arbitrary shape grid into fixed-size
// workgroups. The package-level constants above are the baked equivalent for
// the shipped 64x64 field; a Tiling carries the same values for any valid
// configuration.
type Tiling struct {
	// Width and Height are the grid dimensions in shapes.
	Width, Height int
	// GroupSize is the workgroup size in shapes. Always a power of two.
	GroupSize int

	// TotalShapes is Width * Height.
	TotalShapes int
	// LaneMask is GroupSize - 1.
	LaneMask int
	// NumGroups is ceil(TotalShapes / GroupSize).
	NumGroups int
	// FirstShapeOfLastGroup is the flattened index of the first shape in the
	// final workgroup.
	FirstShapeOfLastGroup int
	// TailShapes is the live shape count of the final workgroup, in
	// [1, GroupSize].
	TailShapes int
	// TailPrims is the live triangle count of the final workgroup.
	TailPrims int
	// MaxVerts is the per-workgroup vertex output reservation.
	MaxVerts int
	// MaxPrims is the per-workgroup primitive output reservation.
	MaxPrims int
}

// New computes the tiling for a grid of width x height shapes partitioned
// into workgroups of groupSize shapes. Rejects configurations the shader
// constants could not express: non-positive dimensions and workgroup sizes
// that are not powers of two.
//
// Parameters:
//   - width, height: grid dimensions in shapes (must be positive)
//   - groupSize: workgroup size in shapes (must be a power of two)
//
// Returns:
//   - Tiling: the computed partitioning
//   - error: an error describing the invalid input, or nil
func New(width, height, groupSize int) (Tiling, error) {
	if width <= 0 || height <= 0 {
		return Tiling{}, fmt.Errorf("tiling: grid dimensions must be positive, got %dx%d", width, height)
	}
	if groupSize <= 0 || groupSize&(groupSize-1) != 0 {
		return Tiling{}, fmt.Errorf("tiling: workgroup size must be a power of two, got %d", groupSize)
	}

	total := width * height
	mask := groupSize - 1
	numGroups := (total + mask) / groupSize
	firstOfLast := groupSize * ((total - 1) / groupSize)
	tailShapes := total - firstOfLast

	return Tiling{
		Width:                 width,
		Height:                height,
		GroupSize:             groupSize,
		TotalShapes:           total,
		LaneMask:              mask,
		NumGroups:             numGroups,
		FirstShapeOfLastGroup: firstOfLast,
		TailShapes:            tailShapes,
		TailPrims:             tailShapes * PrimsPerShape,
		MaxVerts:              VertsPerShape * groupSize,
		MaxPrims:              groupSize * PrimsPerShape,
	}, nil
}

// Default returns the tiling of the shipped 64x64 field. It is derived from
// the same inputs as the package-level constants and always succeeds.
//
// Returns:
//   - Tiling: the 64x64 / ThreadsPerGroup partitioning
func Default() Tiling {
	t, err := New(ShapesX, ShapesY, ThreadsPerGroup)
	if err != nil {
		panic(err) // unreachable: constants are valid by construction
	}
	return t
}

// GroupOf returns the workgroup index processing flattened shape index i.
func (t Tiling) GroupOf(i int) int {
	return i / t.GroupSize
}

// LaneOf returns the lane within its workgroup for flattened shape index i.
func (t Tiling) LaneOf(i int) int {
	return i & t.LaneMask
}

// DispatchSize returns the workgroup grid for the geometry-expansion
// dispatch in the x, y, and z dimensions.
//
// Returns:
//   - [3]uint32: {NumGroups, 1, 1}
func (t Tiling) DispatchSize() [3]uint32 {
	return [3]uint32{uint32(t.NumGroups), 1, 1}
}

// VertexBufferLen returns the total vertex capacity of the expanded geometry
// stream: every workgroup reserves MaxVerts entries regardless of how many
// live shapes it holds, so the tail group's slack is part of the buffer.
//
// Returns:
//   - int: NumGroups * MaxVerts
func (t Tiling) VertexBufferLen() int {
	return t.NumGroups * t.MaxVerts
}
