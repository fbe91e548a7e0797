package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadfield/quadfield/engine/contract"
	"github.com/quadfield/quadfield/engine/tiling"
)

func TestFieldArrayLengthsMatchTiling(t *testing.T) {
	f := NewShapeField()
	n := f.Tiling().TotalShapes
	assert.Equal(t, tiling.NumShapes, n)
	assert.Len(t, f.Positions(), n)
	assert.Len(t, f.Generics(), n)
	assert.Len(t, f.Words(), n)
}

func TestFieldIsDeterministic(t *testing.T) {
	// Same configuration, different worker counts: identical arrays.
	a := NewShapeField(WithWorkers(1))
	b := NewShapeField(WithWorkers(8))
	assert.Equal(t, a.Positions(), b.Positions())
	assert.Equal(t, a.Generics(), b.Generics())
	assert.Equal(t, a.Words(), b.Words())

	// Repopulating regenerates the same values.
	before := append([]uint32(nil), a.Words()...)
	a.Populate()
	assert.Equal(t, before, a.Words())
}

func TestFieldPositionsFollowGrid(t *testing.T) {
	tl, err := tiling.New(4, 4, 2)
	require.NoError(t, err)
	f := NewShapeField(WithTiling(tl), WithSpacing(1.0))

	pos := f.Positions()
	require.Len(t, pos, 16)

	// Grid is centered: corner anchors mirror each other.
	first := pos[0].Position
	last := pos[15].Position
	assert.Equal(t, -first[0], last[0])
	assert.Equal(t, -first[2], last[2])

	// Row-major layout: stepping x by one moves one spacing unit along X.
	assert.InDelta(t, 1.0, float64(pos[1].Position[0]-pos[0].Position[0]), 1e-6)
	assert.Equal(t, pos[0].Position[2], pos[1].Position[2])
}

func TestFieldGenericsInRange(t *testing.T) {
	f := NewShapeField()
	for i, g := range f.Generics() {
		assert.GreaterOrEqualf(t, g.ColorSeed, float32(0), "shape %d", i)
		assert.Lessf(t, g.ColorSeed, float32(1), "shape %d", i)
		assert.GreaterOrEqualf(t, g.Phase, float32(0), "shape %d", i)
		assert.GreaterOrEqualf(t, g.Amplitude, float32(0.1), "shape %d", i)
		assert.LessOrEqualf(t, g.Amplitude, float32(0.5), "shape %d", i)
	}
}

func TestBufferWritesTargetContractSlots(t *testing.T) {
	f := NewShapeField()
	writes := f.BufferWrites(nil)
	require.Len(t, writes, 3)

	assert.Equal(t, int(contract.BufferIndexMeshPositions), writes[0].Binding)
	assert.Equal(t, int(contract.BufferIndexMeshGenerics), writes[1].Binding)
	assert.Equal(t, int(contract.BufferIndexMeshBytes), writes[2].Binding)

	n := f.Tiling().TotalShapes
	assert.Len(t, writes[0].Data, n*16)
	assert.Len(t, writes[1].Data, n*16)
	assert.Len(t, writes[2].Data, n*4)
	for _, w := range writes {
		assert.Zero(t, w.Offset)
	}
}
