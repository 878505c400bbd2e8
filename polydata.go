package pyvista

import (
	"fmt"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// PolyData is a surface dataset: points plus vertex, line, polygon and
// triangle-strip cells. It is the result type of every surface-producing
// filter and the input type for surface-only operations.
type PolyData struct {
	dataObject
	points []r3.Vec
	cells  *Cells
}

// NewPolyData wraps a point cloud as PolyData, generating one vertex cell
// per point.
func NewPolyData(points []r3.Vec) *PolyData {
	cells := &Cells{}
	for i := range points {
		cells.Append(CellVertex, i)
	}
	return newPolyData(points, cells)
}

// newPolyData builds a PolyData taking ownership of points and cells.
func newPolyData(points []r3.Vec, cells *Cells) *PolyData {
	pd := &PolyData{points: points, cells: cells}
	pd.initAttributes(len(points), cells.NumCells())
	return pd
}

// NewPolyDataFromFaces builds a surface from points and faces in the legacy
// flat encoding [n, i0, ..., i(n-1), n, ...]. Faces of three and four
// vertices become triangles and quads, larger faces polygons.
func NewPolyDataFromFaces(points []r3.Vec, faces []int) (*PolyData, error) {
	cells, err := cellsFromLegacy(faces, func(n int) (CellType, error) {
		switch {
		case n == 1:
			return CellVertex, nil
		case n == 2:
			return CellLine, nil
		case n == 3:
			return CellTriangle, nil
		case n == 4:
			return CellQuad, nil
		default:
			return CellPolygon, nil
		}
	})
	if err != nil {
		return nil, err
	}
	for _, v := range cells.conn {
		if v < 0 || v >= len(points) {
			return nil, fmt.Errorf("%w: face index %d out of range for %d points",
				ErrInvalidValue, v, len(points))
		}
	}
	return newPolyData(points, cells), nil
}

// NewTriangleMesh builds a triangulated surface from points and triangle
// index triples, validating every index.
func NewTriangleMesh(points []r3.Vec, faces [][3]int) (*PolyData, error) {
	cells := &Cells{}
	for _, f := range faces {
		for _, v := range f {
			if v < 0 || v >= len(points) {
				return nil, fmt.Errorf("%w: face index %d out of range for %d points",
					ErrInvalidValue, v, len(points))
			}
		}
		cells.Append(CellTriangle, f[0], f[1], f[2])
	}
	return newPolyData(points, cells), nil
}

// NumPoints returns the number of points.
func (pd *PolyData) NumPoints() int { return len(pd.points) }

// NumCells returns the number of cells.
func (pd *PolyData) NumCells() int { return pd.cells.NumCells() }

// Points returns the point coordinates. The slice is owned by the dataset.
func (pd *PolyData) Points() []r3.Vec { return pd.points }

// SetPoints replaces the point coordinates; the count must not change.
func (pd *PolyData) SetPoints(pts []r3.Vec) error {
	if len(pts) != len(pd.points) {
		return fmt.Errorf("%w: %d points, want %d", ErrInvalidValue, len(pts), len(pd.points))
	}
	pd.points = pts
	return nil
}

// Bounds returns the axis-aligned bounding box.
func (pd *PolyData) Bounds() Bounds { return BoundsOf(pd.points) }

// Center returns the center of the bounding box.
func (pd *PolyData) Center() r3.Vec { return pd.Bounds().Center() }

// Length returns the diagonal of the bounding box.
func (pd *PolyData) Length() float64 { return pd.Bounds().Diagonal() }

// Faces returns the cell connectivity in the legacy flat encoding.
func (pd *PolyData) Faces() []int { return pd.cells.Legacy() }

// Cell returns the type and connectivity of cell i.
func (pd *PolyData) Cell(i int) (CellType, []int) { return pd.cells.Cell(i) }

// IsAllTriangles reports whether every cell is a triangle.
func (pd *PolyData) IsAllTriangles() bool {
	for _, t := range pd.cells.types {
		if t != CellTriangle {
			return false
		}
	}
	return pd.cells.NumCells() > 0
}

// Area returns the total surface area.
func (pd *PolyData) Area() float64 {
	var area float64
	for i := 0; i < pd.NumCells(); i++ {
		ct, conn := pd.cells.Cell(i)
		for _, t := range kernel.Triangulate(ct, conn) {
			area += kernel.TriangleArea(pd.points[t[0]], pd.points[t[1]], pd.points[t[2]])
		}
	}
	return area
}

// NumOpenEdges returns the number of surface edges used by exactly one
// polygonal cell. A closed surface has zero open edges.
func (pd *PolyData) NumOpenEdges() int {
	count := make(map[[2]int]int)
	for i := 0; i < pd.NumCells(); i++ {
		ct, conn := pd.cells.Cell(i)
		if ct.Dimension() != 2 {
			continue
		}
		for _, e := range kernel.Edges(ct, conn) {
			k := e
			if k[0] > k[1] {
				k[0], k[1] = k[1], k[0]
			}
			count[k]++
		}
	}
	var open int
	for _, c := range count {
		if c == 1 {
			open++
		}
	}
	return open
}

// Copy returns a deep copy.
func (pd *PolyData) Copy() *PolyData {
	out := newPolyData(append([]r3.Vec(nil), pd.points...), pd.cells.Copy())
	out.copyAttributesFrom(&pd.dataObject)
	return out
}

// CastToUnstructuredGrid converts the surface to an explicit unstructured
// grid, copying attributes.
func (pd *PolyData) CastToUnstructuredGrid() *UnstructuredGrid {
	out := newUnstructuredGrid(append([]r3.Vec(nil), pd.points...), pd.cells.Copy())
	out.copyAttributesFrom(&pd.dataObject)
	return out
}

// triangles returns every cell decomposed to triangles, paired with the
// owning cell index.
func (pd *PolyData) triangles() (tris [][3]int, cellID []int) {
	for i := 0; i < pd.NumCells(); i++ {
		ct, conn := pd.cells.Cell(i)
		for _, t := range kernel.Triangulate(ct, conn) {
			tris = append(tris, t)
			cellID = append(cellID, i)
		}
	}
	return tris, cellID
}

func (pd *PolyData) cell(i int) (CellType, []int) { return pd.cells.Cell(i) }

func (pd *PolyData) pointsSettable() bool { return true }

func (pd *PolyData) clonePoints(pts []r3.Vec) DataSet {
	out := newPolyData(pts, pd.cells.Copy())
	out.copyAttributesFrom(&pd.dataObject)
	return out
}

func (pd *PolyData) copyFrom(src DataSet) error {
	s, ok := src.(*PolyData)
	if !ok {
		return fmt.Errorf("%w: inplace result is %T, receiver is *PolyData", ErrInvalidValue, src)
	}
	c := s.Copy()
	*pd = *c
	return nil
}

func (pd *PolyData) cloneDataSet() DataSet { return pd.Copy() }
