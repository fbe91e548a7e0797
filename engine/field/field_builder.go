package field

import "github.com/quadfield/quadfield/engine/tiling"

type ShapeFieldBuilderOption func(*shapeFieldImpl)

// WithTiling sets the grid partitioning the field is built for.
//
// Parameters:
//   - t: the tiling to use
//
// Returns:
//   - ShapeFieldBuilderOption: a function that sets the tiling
func WithTiling(t tiling.Tiling) ShapeFieldBuilderOption {
	return func(f *shapeFieldImpl) {
		f.tiling = t
	}
}

// WithSpacing sets the world-space distance between adjacent shape anchors.
//
// Parameters:
//   - spacing: anchor spacing in world units
//
// Returns:
//   - ShapeFieldBuilderOption: a function that sets the spacing
func WithSpacing(spacing float32) ShapeFieldBuilderOption {
	return func(f *shapeFieldImpl) {
		f.spacing = spacing
	}
}

// WithWorkers sets the worker count used by Populate.
//
// Parameters:
//   - workers: worker goroutine count (minimum 1)
//
// Returns:
//   - ShapeFieldBuilderOption: a function that sets the worker count
func WithWorkers(workers int) ShapeFieldBuilderOption {
	return func(f *shapeFieldImpl) {
		f.workers = workers
	}
}
