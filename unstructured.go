package pyvista

import (
	"fmt"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// UnstructuredGrid is the fully general dataset: explicit points and an
// arbitrary mix of cell types. Every volume-reducing filter (clip,
// threshold) lands here when the input is not a surface.
type UnstructuredGrid struct {
	dataObject
	points []r3.Vec
	cells  *Cells
}

// NewUnstructuredGrid builds a grid from points and prebuilt cells.
func NewUnstructuredGrid(points []r3.Vec, cells *Cells) (*UnstructuredGrid, error) {
	if cells == nil {
		cells = &Cells{}
	}
	for _, v := range cells.conn {
		if v < 0 || v >= len(points) {
			return nil, fmt.Errorf("%w: cell index %d out of range for %d points",
				ErrInvalidValue, v, len(points))
		}
	}
	return newUnstructuredGrid(points, cells), nil
}

func newUnstructuredGrid(points []r3.Vec, cells *Cells) *UnstructuredGrid {
	ug := &UnstructuredGrid{points: points, cells: cells}
	ug.initAttributes(len(points), cells.NumCells())
	return ug
}

// NumPoints returns the number of points.
func (ug *UnstructuredGrid) NumPoints() int { return len(ug.points) }

// NumCells returns the number of cells.
func (ug *UnstructuredGrid) NumCells() int { return ug.cells.NumCells() }

// Points returns the point coordinates. The slice is owned by the dataset.
func (ug *UnstructuredGrid) Points() []r3.Vec { return ug.points }

// SetPoints replaces the point coordinates; the count must not change.
func (ug *UnstructuredGrid) SetPoints(pts []r3.Vec) error {
	if len(pts) != len(ug.points) {
		return fmt.Errorf("%w: %d points, want %d", ErrInvalidValue, len(pts), len(ug.points))
	}
	ug.points = pts
	return nil
}

// Bounds returns the axis-aligned bounding box.
func (ug *UnstructuredGrid) Bounds() Bounds { return BoundsOf(ug.points) }

// Center returns the center of the bounding box.
func (ug *UnstructuredGrid) Center() r3.Vec { return ug.Bounds().Center() }

// Length returns the diagonal of the bounding box.
func (ug *UnstructuredGrid) Length() float64 { return ug.Bounds().Diagonal() }

// Cell returns the type and connectivity of cell i.
func (ug *UnstructuredGrid) Cell(i int) (CellType, []int) { return ug.cells.Cell(i) }

// Volume returns the total volume of the grid's volume cells.
func (ug *UnstructuredGrid) Volume() float64 {
	var vol float64
	for i := 0; i < ug.NumCells(); i++ {
		ct, conn := ug.cells.Cell(i)
		for _, t := range kernel.Tetrahedralize(ct, conn) {
			vol += kernel.TetraVolume(ug.points[t[0]], ug.points[t[1]], ug.points[t[2]], ug.points[t[3]])
		}
	}
	return vol
}

// Copy returns a deep copy.
func (ug *UnstructuredGrid) Copy() *UnstructuredGrid {
	out := newUnstructuredGrid(append([]r3.Vec(nil), ug.points...), ug.cells.Copy())
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

// CastToUnstructuredGrid returns a deep copy of the receiver.
func (ug *UnstructuredGrid) CastToUnstructuredGrid() *UnstructuredGrid { return ug.Copy() }

// Merge appends another dataset, returning a new grid. Arrays shared by
// both inputs are carried.
func (ug *UnstructuredGrid) Merge(other DataSet) (*UnstructuredGrid, error) {
	merged, err := Merge(ug, other)
	if err != nil {
		return nil, err
	}
	if out, ok := merged.(*UnstructuredGrid); ok {
		return out, nil
	}
	return merged.(*PolyData).CastToUnstructuredGrid(), nil
}

func (ug *UnstructuredGrid) cell(i int) (CellType, []int) { return ug.cells.Cell(i) }

func (ug *UnstructuredGrid) pointsSettable() bool { return true }

func (ug *UnstructuredGrid) clonePoints(pts []r3.Vec) DataSet {
	out := newUnstructuredGrid(pts, ug.cells.Copy())
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

func (ug *UnstructuredGrid) copyFrom(src DataSet) error {
	s, ok := src.(*UnstructuredGrid)
	if !ok {
		return fmt.Errorf("%w: inplace result is %T, receiver is *UnstructuredGrid", ErrInvalidValue, src)
	}
	c := s.Copy()
	*ug = *c
	return nil
}

func (ug *UnstructuredGrid) cloneDataSet() DataSet { return ug.Copy() }
