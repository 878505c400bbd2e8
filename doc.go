// Package pyvista provides mesh data structures and geometric filters for
// spatial datasets.
//
// # Overview
//
// The package exposes the classic visualization-toolkit data model through a
// typed Go facade: five dataset variants (PolyData, UnstructuredGrid,
// StructuredGrid, RectilinearGrid, UniformGrid) plus a MultiBlock composite
// container, each carrying named point- and cell-attached attribute arrays.
// Filter methods (clipping, slicing, thresholding, contouring, warping,
// transforms, glyphing, sampling, streamline tracing) validate their inputs,
// dispatch to the geometry kernels in internal/kernel, and return re-wrapped
// results.
//
// # Quick Start
//
//	sphere := pyvista.Sphere(nil)
//
//	// Clip with a plane through the origin.
//	half, err := pyvista.Clip(sphere, &pyvista.ClipOptions{
//		Normal: r3.Vec{Z: 1},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(half.NumCells())
//
// # Datasets and filters
//
// All variants implement the sealed DataSet interface. Filters never share
// state across calls: each invocation owns its kernel pass and produces a
// fresh handle, unless the per-filter options request Inplace mutation, in
// which case the receiver adopts the result state and is returned for
// chaining. Inplace is rejected with ErrInvalidValue whenever the filter
// changes the dataset type (clipping a grid yields an UnstructuredGrid).
//
// MultiBlock mirrors the block-count-preserving filters by applying them to
// every non-nil block in order and reassembling a same-shaped composite; a
// failing block fails the whole call.
//
// # Errors
//
// Failures are classified by the sentinel errors in errors.go
// (ErrArgumentType, ErrInvalidValue, ErrMissingData, ErrIncompatible,
// ErrUnsupported) and always surface synchronously; validation runs before
// any kernel work.
//
// # Concurrency
//
// Execution is synchronous. Distinct handles may be used from distinct
// goroutines, but a single handle is not safe for concurrent mutation;
// callers must serialize Inplace filters on the same handle.
package pyvista
