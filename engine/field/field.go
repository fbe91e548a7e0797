// package field owns the host-side shape data: one anchor position, one set
// of animation attributes, and one raw word per shape, all addressed by the
// flattened grid index. The arrays are generated once, in parallel, and
// uploaded to the buffer slots the expansion pass reads.
package field

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/quadfield/quadfield/common"
	"github.com/quadfield/quadfield/engine/contract"
	"github.com/quadfield/quadfield/engine/renderer/bind_group_provider"
	"github.com/quadfield/quadfield/engine/tiling"
)

type shapeFieldImpl struct {
	mu *sync.Mutex

	tiling  tiling.Tiling
	spacing float32
	workers int

	positions []GPUShapePosition
	generics  []GPUShapeGenerics
	words     []uint32

	pool worker.DynamicWorkerPool
}

// ShapeField holds the per-shape arrays of one shape grid and produces the
// buffer writes that upload them. Populate fills the arrays row by row
// across the worker pool; every fill is a pure function of the shape index,
// so the result is identical regardless of scheduling.
type ShapeField interface {
	// Tiling returns the grid partitioning the field was built for.
	//
	// Returns:
	//   - tiling.Tiling: the field's tiling
	Tiling() tiling.Tiling

	// Positions returns the per-shape anchor array, one entry per shape in
	// flattened grid order. The slice is shared; do not modify.
	//
	// Returns:
	//   - []GPUShapePosition: the anchor array
	Positions() []GPUShapePosition

	// Generics returns the per-shape animation attribute array, one entry
	// per shape in flattened grid order. The slice is shared; do not modify.
	//
	// Returns:
	//   - []GPUShapeGenerics: the attribute array
	Generics() []GPUShapeGenerics

	// Words returns the raw per-shape side channel, one 32-bit word per
	// shape in flattened grid order. The slice is shared; do not modify.
	//
	// Returns:
	//   - []uint32: the side channel array
	Words() []uint32

	// Populate fills all three arrays in parallel across the worker pool.
	// Safe to call more than once; each call regenerates the same values.
	Populate()

	// BufferWrites returns the write operations that upload the field's
	// arrays to their buffer slots on the given provider.
	//
	// Parameters:
	//   - provider: the bind group provider owning the target buffers
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: one write per field array
	BufferWrites(provider bind_group_provider.BindGroupProvider) []bind_group_provider.BufferWrite
}

var _ ShapeField = &shapeFieldImpl{}

// NewShapeField creates a ShapeField for the default 64x64 grid and
// populates it. Options may swap in a different tiling, spacing, or worker
// count before the initial fill runs.
//
// Parameters:
//   - options: functional options to configure the field
//
// Returns:
//   - ShapeField: the populated field
func NewShapeField(options ...ShapeFieldBuilderOption) ShapeField {
	f := &shapeFieldImpl{
		mu:      &sync.Mutex{},
		tiling:  tiling.Default(),
		spacing: 0.25,
		workers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(f)
	}
	if f.workers < 1 {
		f.workers = 1
	}
	f.pool = worker.NewDynamicWorkerPool(f.workers, 256, 1*time.Second)

	n := f.tiling.TotalShapes
	f.positions = make([]GPUShapePosition, n)
	f.generics = make([]GPUShapeGenerics, n)
	f.words = make([]uint32, n)

	f.Populate()
	return f
}

func (f *shapeFieldImpl) Tiling() tiling.Tiling {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tiling
}

func (f *shapeFieldImpl) Positions() []GPUShapePosition {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.positions
}

func (f *shapeFieldImpl) Generics() []GPUShapeGenerics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generics
}

func (f *shapeFieldImpl) Words() []uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.words
}

func (f *shapeFieldImpl) Populate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	// One task per row; rows write disjoint index ranges, so no further
	// synchronization is needed beyond the barrier. A WaitGroup provides the
	// barrier since pool.Wait() blocks until workers idle-exit.
	var wg sync.WaitGroup
	for y := 0; y < f.tiling.Height; y++ {
		wg.Add(1)
		row := y
		f.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				f.fillRow(row)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// fillRow fills every shape of one grid row. Pure function of the shape
// index: safe to run concurrently with other rows.
func (f *shapeFieldImpl) fillRow(y int) {
	halfW := float32(f.tiling.Width-1) * 0.5
	halfH := float32(f.tiling.Height-1) * 0.5
	for x := 0; x < f.tiling.Width; x++ {
		i := y*f.tiling.Width + x
		h := hash32(uint32(i))

		f.positions[i] = GPUShapePosition{
			Position: [3]float32{
				(float32(x) - halfW) * f.spacing,
				0,
				(float32(y) - halfH) * f.spacing,
			},
		}
		f.generics[i] = GPUShapeGenerics{
			ColorSeed: float32(h&0xffff) / 65536.0,
			Phase:     float32(h>>16) / 65536.0 * 2 * math.Pi,
			Amplitude: 0.1 + 0.4*float32(hash32(h)&0xffff)/65536.0,
		}
		f.words[i] = h
	}
}

func (f *shapeFieldImpl) BufferWrites(provider bind_group_provider.BindGroupProvider) []bind_group_provider.BufferWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return []bind_group_provider.BufferWrite{
		{
			Provider: provider,
			Binding:  int(contract.BufferIndexMeshPositions),
			Data:     common.SliceToBytes(f.positions),
		},
		{
			Provider: provider,
			Binding:  int(contract.BufferIndexMeshGenerics),
			Data:     common.SliceToBytes(f.generics),
		},
		{
			Provider: provider,
			Binding:  int(contract.BufferIndexMeshBytes),
			Data:     common.SliceToBytes(f.words),
		},
	}
}

// hash32 is a finalizing integer hash (Murmur3 style). Gives every shape a
// stable pseudo-random word without any cross-shape state.
func hash32(i uint32) uint32 {
	i ^= i >> 16
	i *= 0x7feb352d
	i ^= i >> 15
	i *= 0x846ca68b
	i ^= i >> 16
	return i
}
