package pyvista

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// RectilinearGrid is an axis-aligned lattice with per-axis coordinate
// arrays. Points and cells are derived; the cells are voxels (pixels and
// lines for collapsed dimensions).
type RectilinearGrid struct {
	dataObject
	x, y, z []float64
}

// NewRectilinearGrid builds a grid from per-axis coordinates. Empty axes
// are treated as the single coordinate 0.
func NewRectilinearGrid(x, y, z []float64) *RectilinearGrid {
	norm := func(c []float64) []float64 {
		if len(c) == 0 {
			return []float64{0}
		}
		return append([]float64(nil), c...)
	}
	rg := &RectilinearGrid{x: norm(x), y: norm(y), z: norm(z)}
	dims := rg.Dimensions()
	rg.initAttributes(dims[0]*dims[1]*dims[2], numLatticeCells(dims))
	return rg
}

// Dimensions returns the lattice dimensions.
func (rg *RectilinearGrid) Dimensions() [3]int {
	return [3]int{len(rg.x), len(rg.y), len(rg.z)}
}

// XCoordinates returns the x-axis coordinates.
func (rg *RectilinearGrid) XCoordinates() []float64 { return rg.x }

// YCoordinates returns the y-axis coordinates.
func (rg *RectilinearGrid) YCoordinates() []float64 { return rg.y }

// ZCoordinates returns the z-axis coordinates.
func (rg *RectilinearGrid) ZCoordinates() []float64 { return rg.z }

// NumPoints returns the number of lattice points.
func (rg *RectilinearGrid) NumPoints() int {
	d := rg.Dimensions()
	return d[0] * d[1] * d[2]
}

// NumCells returns the number of implicit cells.
func (rg *RectilinearGrid) NumCells() int { return numLatticeCells(rg.Dimensions()) }

// Points materializes the lattice points, x varying fastest.
func (rg *RectilinearGrid) Points() []r3.Vec {
	pts := make([]r3.Vec, 0, rg.NumPoints())
	for _, z := range rg.z {
		for _, y := range rg.y {
			for _, x := range rg.x {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box.
func (rg *RectilinearGrid) Bounds() Bounds {
	return Bounds{
		minOf(rg.x), maxOf(rg.x),
		minOf(rg.y), maxOf(rg.y),
		minOf(rg.z), maxOf(rg.z),
	}
}

func minOf(c []float64) float64 {
	m := c[0]
	for _, v := range c {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(c []float64) float64 {
	m := c[0]
	for _, v := range c {
		if v > m {
			m = v
		}
	}
	return m
}

// Center returns the center of the bounding box.
func (rg *RectilinearGrid) Center() r3.Vec { return rg.Bounds().Center() }

// Length returns the diagonal of the bounding box.
func (rg *RectilinearGrid) Length() float64 { return rg.Bounds().Diagonal() }

// Copy returns a deep copy.
func (rg *RectilinearGrid) Copy() *RectilinearGrid {
	out := NewRectilinearGrid(rg.x, rg.y, rg.z)
	out.copyAttributesFrom(&rg.dataObject)
	return out
}

// CastToUnstructuredGrid converts to an explicit grid of voxels.
func (rg *RectilinearGrid) CastToUnstructuredGrid() *UnstructuredGrid {
	return castLatticeToUnstructured(rg)
}

// CastToStructuredGrid converts to a structured grid with materialized
// points.
func (rg *RectilinearGrid) CastToStructuredGrid() *StructuredGrid {
	out, _ := NewStructuredGrid(rg.Dimensions(), rg.Points())
	out.copyAttributesFrom(&rg.dataObject)
	return out
}

// latticeVoxel returns the implicit axis-aligned cell of a lattice: voxels
// for 3D, pixels for 2D, lines for 1D, all in x-fastest vertex order.
func latticeVoxel(dims [3]int, i int) (CellType, []int) {
	cd := latticeCellDims(dims)
	ci := i % cd[0]
	cj := (i / cd[0]) % cd[1]
	ck := i / (cd[0] * cd[1])
	id := func(x, y, z int) int { return x + y*dims[0] + z*dims[0]*dims[1] }

	flat := 0
	for _, d := range dims {
		if d <= 1 {
			flat++
		}
	}
	switch flat {
	case 0:
		return CellVoxel, []int{
			id(ci, cj, ck), id(ci+1, cj, ck), id(ci, cj+1, ck), id(ci+1, cj+1, ck),
			id(ci, cj, ck+1), id(ci+1, cj, ck+1), id(ci, cj+1, ck+1), id(ci+1, cj+1, ck+1),
		}
	case 1:
		switch {
		case dims[2] <= 1:
			return CellPixel, []int{id(ci, cj, 0), id(ci+1, cj, 0), id(ci, cj+1, 0), id(ci+1, cj+1, 0)}
		case dims[1] <= 1:
			return CellPixel, []int{id(ci, 0, ck), id(ci+1, 0, ck), id(ci, 0, ck+1), id(ci+1, 0, ck+1)}
		default:
			return CellPixel, []int{id(0, cj, ck), id(0, cj+1, ck), id(0, cj, ck+1), id(0, cj+1, ck+1)}
		}
	default:
		ct, conn := latticeCell(dims, i)
		return ct, conn
	}
}

func (rg *RectilinearGrid) cell(i int) (CellType, []int) {
	return latticeVoxel(rg.Dimensions(), i)
}

// pointsSettable is false: the geometry is derived from the coordinate
// arrays, so point-moving filters return a StructuredGrid instead.
func (rg *RectilinearGrid) pointsSettable() bool { return false }

func (rg *RectilinearGrid) clonePoints(pts []r3.Vec) DataSet {
	out, _ := NewStructuredGrid(rg.Dimensions(), pts)
	out.copyAttributesFrom(&rg.dataObject)
	return out
}

func (rg *RectilinearGrid) copyFrom(src DataSet) error {
	s, ok := src.(*RectilinearGrid)
	if !ok {
		return fmt.Errorf("%w: inplace result is %T, receiver is *RectilinearGrid", ErrInvalidValue, src)
	}
	c := s.Copy()
	*rg = *c
	return nil
}

func (rg *RectilinearGrid) cloneDataSet() DataSet { return rg.Copy() }
