package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldConstants(t *testing.T) {
	// The shipped 64x64 field with workgroup size 8.
	assert.Equal(t, 4096, NumShapes)
	assert.Equal(t, 8, ThreadsPerGroup)
	assert.Equal(t, 512, NumThreadgroups)
	assert.Equal(t, 16, PrimsPerShape)
	assert.Equal(t, 24, VertsPerShape)
	assert.Equal(t, 192, MaxVertsPerGroup)
	assert.Equal(t, 128, MaxPrimsPerGroup)

	// Exact multiple: the tail group is simply a full group.
	assert.Equal(t, 4088, FirstShapeOfLastGroup)
	assert.Equal(t, 8, TailShapeCount)
	assert.Equal(t, 128, TailPrimCount)
}

func TestDefaultMatchesConstants(t *testing.T) {
	d := Default()
	assert.Equal(t, NumShapes, d.TotalShapes)
	assert.Equal(t, NumThreadgroups, d.NumGroups)
	assert.Equal(t, FirstShapeOfLastGroup, d.FirstShapeOfLastGroup)
	assert.Equal(t, TailShapeCount, d.TailShapes)
	assert.Equal(t, TailPrimCount, d.TailPrims)
	assert.Equal(t, MaxVertsPerGroup, d.MaxVerts)
	assert.Equal(t, MaxPrimsPerGroup, d.MaxPrims)
	assert.Equal(t, [3]uint32{512, 1, 1}, d.DispatchSize())
	assert.Equal(t, 512*192, d.VertexBufferLen())
}

func TestBoundaryGrid65x1(t *testing.T) {
	// 65 shapes in groups of 8: nine groups, a single live shape in the tail.
	tl, err := New(65, 1, 8)
	require.NoError(t, err)

	assert.Equal(t, 65, tl.TotalShapes)
	assert.Equal(t, 9, tl.NumGroups)
	assert.Equal(t, 64, tl.FirstShapeOfLastGroup)
	assert.Equal(t, 1, tl.TailShapes)
	assert.Equal(t, 16, tl.TailPrims)
	assert.Equal(t, 128, tl.MaxPrims)
}

func TestTightCeilingProperty(t *testing.T) {
	grids := []struct{ w, h, size int }{
		{64, 64, 8},
		{65, 1, 8},
		{1, 1, 1},
		{1, 1, 64},
		{7, 9, 16},
		{33, 3, 4},
		{128, 128, 32},
		{100, 1, 2},
	}
	for _, g := range grids {
		tl, err := New(g.w, g.h, g.size)
		require.NoError(t, err, "grid %dx%d size %d", g.w, g.h, g.size)

		// Tight ceiling: enough groups to cover every shape, and not one more.
		assert.GreaterOrEqual(t, tl.NumGroups*tl.GroupSize, tl.TotalShapes)
		assert.Less(t, (tl.NumGroups-1)*tl.GroupSize, tl.TotalShapes)

		// Tail is never empty and never oversized.
		assert.GreaterOrEqual(t, tl.TailShapes, 1)
		assert.LessOrEqual(t, tl.TailShapes, tl.GroupSize)
		if tl.TotalShapes%tl.GroupSize == 0 {
			assert.Equal(t, tl.GroupSize, tl.TailShapes,
				"exact multiple must collapse to a full tail group")
		}

		// The tail's live primitives always fit in the per-group reservation.
		assert.LessOrEqual(t, tl.TailPrims, tl.MaxPrims)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		w, h, s int
	}{
		{"zero width", 0, 64, 8},
		{"zero height", 64, 0, 8},
		{"negative width", -1, 64, 8},
		{"zero group size", 64, 64, 0},
		{"negative group size", 64, 64, -8},
		{"non power of two", 64, 64, 12},
		{"non power of two small", 64, 64, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.w, tc.h, tc.s)
			assert.Error(t, err)
		})
	}
}

func TestIndexMappingIsStable(t *testing.T) {
	// Shape i always lands in group i/size, lane i mod size, and groups are
	// filled contiguously in dispatch order.
	for i := 0; i < NumShapes; i++ {
		assert.Equal(t, i/ThreadsPerGroup, GroupOf(i))
		assert.Equal(t, i%ThreadsPerGroup, LaneOf(i))
	}

	tl, err := New(65, 1, 8)
	require.NoError(t, err)
	for i := 0; i < tl.TotalShapes; i++ {
		assert.Equal(t, i/8, tl.GroupOf(i))
		assert.Equal(t, i%8, tl.LaneOf(i))
	}

	// The tail group is the last group, and its first shape starts it.
	assert.Equal(t, tl.NumGroups-1, tl.GroupOf(tl.FirstShapeOfLastGroup))
	assert.Equal(t, 0, tl.LaneOf(tl.FirstShapeOfLastGroup))
}

func TestFlatIndexRowMajor(t *testing.T) {
	assert.Equal(t, 0, FlatIndex(0, 0))
	assert.Equal(t, ShapesX-1, FlatIndex(ShapesX-1, 0))
	assert.Equal(t, ShapesX, FlatIndex(0, 1))
	assert.Equal(t, NumShapes-1, FlatIndex(ShapesX-1, ShapesY-1))
}
