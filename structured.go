package pyvista

import (
	"fmt"
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// StructuredGrid is a curvilinear grid: explicit points on an implicit
// (nx, ny, nz) lattice, x varying fastest. Cells are implicit hexahedra
// (quads or lines when a dimension collapses to 1).
type StructuredGrid struct {
	dataObject
	dims   [3]int
	points []r3.Vec
}

// NewStructuredGrid builds a grid from its dimensions and lattice-ordered
// points.
func NewStructuredGrid(dims [3]int, points []r3.Vec) (*StructuredGrid, error) {
	n := 1
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("%w: dimensions %v", ErrInvalidValue, dims)
		}
		n *= d
	}
	if len(points) != n {
		return nil, fmt.Errorf("%w: %d points for dimensions %v, want %d",
			ErrInvalidValue, len(points), dims, n)
	}
	sg := &StructuredGrid{dims: dims, points: points}
	sg.initAttributes(n, numLatticeCells(dims))
	return sg, nil
}

// numLatticeCells returns the implicit cell count of a lattice.
func numLatticeCells(dims [3]int) int {
	n := 1
	for _, d := range dims {
		if d > 1 {
			n *= d - 1
		}
	}
	if dims[0] <= 1 && dims[1] <= 1 && dims[2] <= 1 {
		return 0
	}
	return n
}

// latticeCellDims returns the per-axis cell counts (minimum 1 per axis so
// index arithmetic stays valid).
func latticeCellDims(dims [3]int) [3]int {
	var cd [3]int
	for i, d := range dims {
		cd[i] = d - 1
		if cd[i] < 1 {
			cd[i] = 1
		}
	}
	return cd
}

// latticeCell returns the implicit cell of a lattice as a cell type plus
// point ids.
func latticeCell(dims [3]int, i int) (CellType, []int) {
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
		return CellHexahedron, []int{
			id(ci, cj, ck), id(ci+1, cj, ck), id(ci+1, cj+1, ck), id(ci, cj+1, ck),
			id(ci, cj, ck+1), id(ci+1, cj, ck+1), id(ci+1, cj+1, ck+1), id(ci, cj+1, ck+1),
		}
	case 1:
		switch {
		case dims[2] <= 1:
			return CellQuad, []int{id(ci, cj, 0), id(ci+1, cj, 0), id(ci+1, cj+1, 0), id(ci, cj+1, 0)}
		case dims[1] <= 1:
			return CellQuad, []int{id(ci, 0, ck), id(ci+1, 0, ck), id(ci+1, 0, ck+1), id(ci, 0, ck+1)}
		default:
			return CellQuad, []int{id(0, cj, ck), id(0, cj+1, ck), id(0, cj+1, ck+1), id(0, cj, ck+1)}
		}
	default:
		// Single row of line cells along the one extended axis.
		switch {
		case dims[0] > 1:
			return CellLine, []int{id(ci, 0, 0), id(ci+1, 0, 0)}
		case dims[1] > 1:
			return CellLine, []int{id(0, cj, 0), id(0, cj+1, 0)}
		default:
			return CellLine, []int{id(0, 0, ck), id(0, 0, ck+1)}
		}
	}
}

// Dimensions returns the lattice dimensions.
func (sg *StructuredGrid) Dimensions() [3]int { return sg.dims }

// NumPoints returns the number of points.
func (sg *StructuredGrid) NumPoints() int { return len(sg.points) }

// NumCells returns the number of implicit cells.
func (sg *StructuredGrid) NumCells() int { return numLatticeCells(sg.dims) }

// Points returns the point coordinates. The slice is owned by the dataset.
func (sg *StructuredGrid) Points() []r3.Vec { return sg.points }

// SetPoints replaces the point coordinates; the count must not change.
func (sg *StructuredGrid) SetPoints(pts []r3.Vec) error {
	if len(pts) != len(sg.points) {
		return fmt.Errorf("%w: %d points, want %d", ErrInvalidValue, len(pts), len(sg.points))
	}
	sg.points = pts
	return nil
}

// Bounds returns the axis-aligned bounding box.
func (sg *StructuredGrid) Bounds() Bounds { return BoundsOf(sg.points) }

// Center returns the center of the bounding box.
func (sg *StructuredGrid) Center() r3.Vec { return sg.Bounds().Center() }

// Length returns the diagonal of the bounding box.
func (sg *StructuredGrid) Length() float64 { return sg.Bounds().Diagonal() }

// Volume returns the total volume of the grid's cells.
func (sg *StructuredGrid) Volume() float64 {
	var vol float64
	for i := 0; i < sg.NumCells(); i++ {
		ct, conn := sg.cell(i)
		for _, t := range kernel.Tetrahedralize(ct, conn) {
			vol += kernel.TetraVolume(sg.points[t[0]], sg.points[t[1]], sg.points[t[2]], sg.points[t[3]])
		}
	}
	return vol
}

// Copy returns a deep copy.
func (sg *StructuredGrid) Copy() *StructuredGrid {
	out, _ := NewStructuredGrid(sg.dims, append([]r3.Vec(nil), sg.points...))
	out.copyAttributesFrom(&sg.dataObject)
	return out
}

// CastToUnstructuredGrid converts to an explicit grid of hexahedra (or
// quads/lines for collapsed dimensions).
func (sg *StructuredGrid) CastToUnstructuredGrid() *UnstructuredGrid {
	return castLatticeToUnstructured(sg)
}

// castLatticeToUnstructured materializes any lattice-backed dataset.
func castLatticeToUnstructured(ds DataSet) *UnstructuredGrid {
	cells := &Cells{}
	for i := 0; i < ds.NumCells(); i++ {
		ct, conn := ds.cell(i)
		cells.Append(ct, conn...)
	}
	out := newUnstructuredGrid(append([]r3.Vec(nil), ds.Points()...), cells)
	out.PointData().adoptFrom(ds.PointData())
	out.CellData().adoptFrom(ds.CellData())
	return out
}

// ExtractSubset extracts a volume of interest [imin, imax, jmin, jmax,
// kmin, kmax] in point-index space (inclusive, clamped to the grid).
func (sg *StructuredGrid) ExtractSubset(voi [6]int) (*StructuredGrid, error) {
	idx, dims, err := latticeSubset(sg.dims, voi)
	if err != nil {
		return nil, err
	}
	pts := make([]r3.Vec, len(idx))
	for i, src := range idx {
		pts[i] = sg.points[src]
	}
	out, err := NewStructuredGrid(dims, pts)
	if err != nil {
		return nil, err
	}
	cellIdx := latticeCellSubset(sg.dims, dims, voi)
	out.adoptAttributes(
		sg.pointData.subset(len(idx), idx),
		sg.cellData.subset(len(cellIdx), cellIdx),
	)
	return out, nil
}

// latticeSubset maps a VOI to flat point indices plus the new dimensions.
func latticeSubset(dims [3]int, voi [6]int) ([]int, [3]int, error) {
	var lo, hi [3]int
	for a := 0; a < 3; a++ {
		lo[a], hi[a] = voi[2*a], voi[2*a+1]
		if lo[a] < 0 {
			lo[a] = 0
		}
		if hi[a] > dims[a]-1 {
			hi[a] = dims[a] - 1
		}
		if lo[a] > hi[a] {
			return nil, [3]int{}, fmt.Errorf("%w: empty VOI %v for dimensions %v",
				ErrInvalidValue, voi, dims)
		}
	}
	nd := [3]int{hi[0] - lo[0] + 1, hi[1] - lo[1] + 1, hi[2] - lo[2] + 1}
	idx := make([]int, 0, nd[0]*nd[1]*nd[2])
	for k := lo[2]; k <= hi[2]; k++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for i := lo[0]; i <= hi[0]; i++ {
				idx = append(idx, i+j*dims[0]+k*dims[0]*dims[1])
			}
		}
	}
	return idx, nd, nil
}

// latticeCellSubset maps the VOI's cells to flat cell indices of the
// original lattice.
func latticeCellSubset(dims, newDims [3]int, voi [6]int) []int {
	cd := latticeCellDims(dims)
	ncd := latticeCellDims(newDims)
	var lo [3]int
	for a := 0; a < 3; a++ {
		lo[a] = voi[2*a]
		if lo[a] < 0 {
			lo[a] = 0
		}
	}
	idx := make([]int, 0, ncd[0]*ncd[1]*ncd[2])
	for k := 0; k < ncd[2]; k++ {
		for j := 0; j < ncd[1]; j++ {
			for i := 0; i < ncd[0]; i++ {
				idx = append(idx, (lo[0]+i)+(lo[1]+j)*cd[0]+(lo[2]+k)*cd[0]*cd[1])
			}
		}
	}
	return idx
}

// ConcatenateOptions configures StructuredGrid.Concatenate.
type ConcatenateOptions struct {
	// Tolerance is the maximum per-coordinate mismatch allowed between the
	// joined faces. Zero means exact within 1e-9.
	Tolerance float64
}

// Concatenate joins another structured grid along the given axis. The
// receiver's last point slice along the axis must coincide with the other
// grid's first (within tolerance), the remaining dimensions must match, and
// both grids must carry identical array sets with matching values on the
// shared face; violations return ErrIncompatible.
func (sg *StructuredGrid) Concatenate(other *StructuredGrid, axis Axis, o *ConcatenateOptions) (*StructuredGrid, error) {
	if o == nil {
		o = &ConcatenateOptions{}
	}
	tol := o.Tolerance
	if tol == 0 {
		tol = 1e-9
	}
	if !axis.valid() {
		return nil, fmt.Errorf("%w: concatenation axis %d", ErrInvalidValue, int(axis))
	}
	a := int(axis)
	for ax := 0; ax < 3; ax++ {
		if ax != a && sg.dims[ax] != other.dims[ax] {
			return nil, fmt.Errorf("%w: dimensions %v and %v differ off the concatenation axis",
				ErrIncompatible, sg.dims, other.dims)
		}
	}
	if !sameNames(sg.pointData, other.pointData) || !sameNames(sg.cellData, other.cellData) {
		return nil, fmt.Errorf("%w: array sets differ", ErrIncompatible)
	}

	// The shared face: receiver's last lattice slice vs other's first.
	faceA, _, err := latticeSubset(sg.dims, faceVOI(sg.dims, a, sg.dims[a]-1))
	if err != nil {
		return nil, err
	}
	faceB, _, err := latticeSubset(other.dims, faceVOI(other.dims, a, 0))
	if err != nil {
		return nil, err
	}
	for i := range faceA {
		pa, pb := sg.points[faceA[i]], other.points[faceB[i]]
		if math.Abs(pa.X-pb.X) > tol || math.Abs(pa.Y-pb.Y) > tol || math.Abs(pa.Z-pb.Z) > tol {
			return nil, fmt.Errorf("%w: grids are not coincident along axis %s", ErrIncompatible, axis)
		}
	}
	for _, name := range sg.pointData.names {
		fa := sg.pointData.fields[name]
		fb, _ := other.pointData.Get(name)
		if fb.Components() != fa.Components() {
			return nil, fmt.Errorf("%w: point array %q component counts differ", ErrIncompatible, name)
		}
		for i := range faceA {
			for j := 0; j < fa.Components(); j++ {
				if math.Abs(fa.At(faceA[i], j)-fb.At(faceB[i], j)) > tol {
					return nil, fmt.Errorf("%w: point array %q differs on the shared face",
						ErrIncompatible, name)
				}
			}
		}
	}

	dims := sg.dims
	dims[a] = sg.dims[a] + other.dims[a] - 1
	pts := make([]r3.Vec, 0, dims[0]*dims[1]*dims[2])
	ptSrc := make([][2]int, 0, cap(pts)) // (which grid, flat index)
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				c := [3]int{i, j, k}
				if c[a] < sg.dims[a] {
					fi := c[0] + c[1]*sg.dims[0] + c[2]*sg.dims[0]*sg.dims[1]
					pts = append(pts, sg.points[fi])
					ptSrc = append(ptSrc, [2]int{0, fi})
				} else {
					c[a] -= sg.dims[a] - 1
					fi := c[0] + c[1]*other.dims[0] + c[2]*other.dims[0]*other.dims[1]
					pts = append(pts, other.points[fi])
					ptSrc = append(ptSrc, [2]int{1, fi})
				}
			}
		}
	}
	out, err := NewStructuredGrid(dims, pts)
	if err != nil {
		return nil, err
	}
	for _, name := range sg.pointData.names {
		fa := sg.pointData.fields[name]
		fb, _ := other.pointData.Get(name)
		nf := NewField(fa.Components(), len(pts))
		for i, src := range ptSrc {
			f := fa
			if src[0] == 1 {
				f = fb
			}
			copy(nf.Tuple(i), f.Tuple(src[1]))
		}
		if err := out.pointData.Set(name, nf); err != nil {
			return nil, err
		}
	}
	// Cells stack along the axis with nothing shared.
	cdA, cdOut := latticeCellDims(sg.dims), latticeCellDims(dims)
	cdB := latticeCellDims(other.dims)
	for _, name := range sg.cellData.names {
		fa := sg.cellData.fields[name]
		fb, _ := other.cellData.Get(name)
		if fb.Components() != fa.Components() {
			return nil, fmt.Errorf("%w: cell array %q component counts differ", ErrIncompatible, name)
		}
		nf := NewField(fa.Components(), out.NumCells())
		for ci := 0; ci < out.NumCells(); ci++ {
			c := [3]int{ci % cdOut[0], (ci / cdOut[0]) % cdOut[1], ci / (cdOut[0] * cdOut[1])}
			f := fa
			cd := cdA
			if c[a] >= cdA[a] {
				c[a] -= cdA[a]
				f = fb
				cd = cdB
			}
			copy(nf.Tuple(ci), f.Tuple(c[0]+c[1]*cd[0]+c[2]*cd[0]*cd[1]))
		}
		if err := out.cellData.Set(name, nf); err != nil {
			return nil, err
		}
	}
	out.pointData.activeScalars = sg.pointData.activeScalars
	out.pointData.activeVectors = sg.pointData.activeVectors
	out.cellData.activeScalars = sg.cellData.activeScalars
	out.cellData.activeVectors = sg.cellData.activeVectors
	return out, nil
}

// faceVOI is the VOI selecting one lattice slice along an axis.
func faceVOI(dims [3]int, axis, at int) [6]int {
	voi := [6]int{0, dims[0] - 1, 0, dims[1] - 1, 0, dims[2] - 1}
	voi[2*axis] = at
	voi[2*axis+1] = at
	return voi
}

func sameNames(a, b *FieldSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, n := range a.names {
		if !b.Has(n) {
			return false
		}
	}
	return true
}

func (sg *StructuredGrid) cell(i int) (CellType, []int) { return latticeCell(sg.dims, i) }

func (sg *StructuredGrid) pointsSettable() bool { return true }

func (sg *StructuredGrid) clonePoints(pts []r3.Vec) DataSet {
	out, _ := NewStructuredGrid(sg.dims, pts)
	out.copyAttributesFrom(&sg.dataObject)
	return out
}

func (sg *StructuredGrid) copyFrom(src DataSet) error {
	s, ok := src.(*StructuredGrid)
	if !ok {
		return fmt.Errorf("%w: inplace result is %T, receiver is *StructuredGrid", ErrInvalidValue, src)
	}
	c := s.Copy()
	*sg = *c
	return nil
}

func (sg *StructuredGrid) cloneDataSet() DataSet { return sg.Copy() }
