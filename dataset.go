package pyvista

import (
	"fmt"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// DataObject is anything the composite container can hold: a concrete
// dataset or a nested MultiBlock. The interface is sealed.
type DataObject interface {
	isDataObject()
}

// DataSet is the common facade over the five mesh variants: PolyData,
// UnstructuredGrid, StructuredGrid, RectilinearGrid and UniformGrid. The
// interface is sealed; the variant set is closed by design so that filters
// can dispatch exhaustively instead of duck-typing.
type DataSet interface {
	DataObject

	// NumPoints returns the number of points.
	NumPoints() int
	// NumCells returns the number of cells.
	NumCells() int
	// Points returns the point coordinates. For grid variants that derive
	// their geometry the slice is materialized per call; mutate geometry
	// only through filters.
	Points() []r3.Vec
	// Bounds returns the axis-aligned bounding box.
	Bounds() Bounds
	// Center returns the center of the bounding box.
	Center() r3.Vec
	// Length returns the diagonal of the bounding box.
	Length() float64
	// PointData returns the point-attached attribute arrays.
	PointData() *FieldSet
	// CellData returns the cell-attached attribute arrays.
	CellData() *FieldSet
	// NumArrays returns the total number of attribute arrays.
	NumArrays() int
	// ArrayNames returns all point array names followed by all cell array
	// names.
	ArrayNames() []string
	// CastToUnstructuredGrid converts the dataset to an explicit
	// unstructured grid, copying attributes.
	CastToUnstructuredGrid() *UnstructuredGrid

	// cell returns the type and connectivity of cell i.
	cell(i int) (CellType, []int)
	// clonePoints returns a dataset of the same topology with the given
	// point coordinates and deep-copied attributes. Variants with derived
	// geometry (uniform, rectilinear) come back as *StructuredGrid.
	clonePoints(pts []r3.Vec) DataSet
	// pointsSettable reports whether the variant can adopt arbitrary point
	// coordinates without changing type.
	pointsSettable() bool
	// copyFrom adopts src's state; src must have the same concrete type.
	copyFrom(src DataSet) error
	// cloneDataSet returns a deep copy.
	cloneDataSet() DataSet
}

// dataObject carries the attribute state shared by all dataset variants.
type dataObject struct {
	pointData *FieldSet
	cellData  *FieldSet
}

func (d *dataObject) isDataObject() {}

func (d *dataObject) initAttributes(np, nc int) {
	d.pointData = newFieldSet(AssocPoint, np)
	d.cellData = newFieldSet(AssocCell, nc)
}

// PointData returns the point-attached attribute arrays.
func (d *dataObject) PointData() *FieldSet { return d.pointData }

// CellData returns the cell-attached attribute arrays.
func (d *dataObject) CellData() *FieldSet { return d.cellData }

// NumArrays returns the total number of attribute arrays.
func (d *dataObject) NumArrays() int { return d.pointData.Len() + d.cellData.Len() }

// ArrayNames returns all point array names followed by all cell array names.
func (d *dataObject) ArrayNames() []string {
	return append(d.pointData.Names(), d.cellData.Names()...)
}

// ActiveScalarsName returns the active point scalars name, falling back to
// the active cell scalars, or "".
func (d *dataObject) ActiveScalarsName() string {
	if n := d.pointData.ActiveScalarsName(); n != "" {
		return n
	}
	return d.cellData.ActiveScalarsName()
}

func (d *dataObject) copyAttributesFrom(src *dataObject) {
	d.pointData = src.pointData.Copy()
	d.cellData = src.cellData.Copy()
}

// adoptAttributes replaces the attribute state wholesale; callers guarantee
// the tuple counts match the new geometry.
func (d *dataObject) adoptAttributes(point, cell *FieldSet) {
	d.pointData = point
	d.cellData = cell
}

// DataRange returns the (min, max) of the named array, searching point
// arrays before cell arrays. An empty name uses the active scalars.
func DataRange(ds DataSet, name string) (lo, hi float64, err error) {
	f, _, _, err := resolveScalars(ds, name)
	if err != nil {
		return 0, 0, err
	}
	lo, hi = f.Range()
	return lo, hi, nil
}

// resolveScalars finds a scalar field by name, searching point arrays first
// and cell arrays second; an empty name falls back to the active scalars of
// either association. The returned name is the resolved array name.
func resolveScalars(ds DataSet, name string) (*Field, Association, string, error) {
	if name == "" {
		if n := ds.PointData().ActiveScalarsName(); n != "" {
			return ds.PointData().ActiveScalars(), AssocPoint, n, nil
		}
		if n := ds.CellData().ActiveScalarsName(); n != "" {
			return ds.CellData().ActiveScalars(), AssocCell, n, nil
		}
		return nil, 0, "", fmt.Errorf("%w: no active scalars and no name given", ErrMissingData)
	}
	if f, ok := ds.PointData().Get(name); ok {
		return f, AssocPoint, name, nil
	}
	if f, ok := ds.CellData().Get(name); ok {
		return f, AssocCell, name, nil
	}
	return nil, 0, "", fmt.Errorf("%w: scalars %q", ErrMissingData, name)
}

// resolvePointScalars is resolveScalars restricted to point data; a cell
// array of the right name is an argument-type error, per the contract that
// point-interpolating filters cannot consume cell data.
func resolvePointScalars(ds DataSet, name string) (*Field, string, error) {
	f, assoc, rname, err := resolveScalars(ds, name)
	if err != nil {
		return nil, "", err
	}
	if assoc != AssocPoint {
		return nil, "", fmt.Errorf("%w: scalars %q are cell data, want point data",
			ErrArgumentType, rname)
	}
	return f, rname, nil
}

// resolvePointVectors finds a three-component point field by name or active
// designation.
func resolvePointVectors(ds DataSet, name string) (*Field, string, error) {
	pd := ds.PointData()
	if name == "" {
		name = pd.ActiveVectorsName()
		if name == "" {
			return nil, "", fmt.Errorf("%w: no active vectors and no name given", ErrMissingData)
		}
	}
	f, ok := pd.Get(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: point vectors %q", ErrMissingData, name)
	}
	if f.Components() != 3 {
		return nil, "", fmt.Errorf("%w: vectors %q have %d components, want 3",
			ErrInvalidValue, name, f.Components())
	}
	return f, name, nil
}

// interpPointData builds a point FieldSet for kernel output points, carrying
// every source point array through linear interpolation along cut edges.
func interpPointData(src *FieldSet, refs []kernel.PointRef) *FieldSet {
	out := newFieldSet(AssocPoint, len(refs))
	for _, name := range src.names {
		f := src.fields[name]
		nf := NewField(f.Components(), len(refs))
		for i, r := range refs {
			if r.J < 0 {
				copy(nf.Tuple(i), f.Tuple(r.I))
			} else {
				f.lerpInto(nf, i, r.I, r.J, r.T)
			}
		}
		out.names = append(out.names, name)
		out.fields[name] = nf
	}
	out.activeScalars = src.activeScalars
	out.activeVectors = src.activeVectors
	return out
}

// interpPoints materializes coordinates for kernel output points.
func interpPoints(pts []r3.Vec, refs []kernel.PointRef) []r3.Vec {
	out := make([]r3.Vec, len(refs))
	for i, r := range refs {
		if r.J < 0 {
			out[i] = pts[r.I]
		} else {
			a, b := pts[r.I], pts[r.J]
			out[i] = r3.Add(a, r3.Scale(r.T, r3.Sub(b, a)))
		}
	}
	return out
}

// extractCells builds an unstructured grid from a subset of ds's cells,
// compacting points and carrying both attribute sets.
func extractCells(ds DataSet, cellIDs []int) *UnstructuredGrid {
	pts := ds.Points()
	remap := make(map[int]int)
	var order []int
	cells := &Cells{}
	for _, ci := range cellIDs {
		ct, conn := ds.cell(ci)
		mapped := make([]int, len(conn))
		for k, p := range conn {
			idx, ok := remap[p]
			if !ok {
				idx = len(order)
				remap[p] = idx
				order = append(order, p)
			}
			mapped[k] = idx
		}
		cells.Append(ct, mapped...)
	}
	npts := make([]r3.Vec, len(order))
	for i, src := range order {
		npts[i] = pts[src]
	}
	out := newUnstructuredGrid(npts, cells)
	out.adoptAttributes(
		ds.PointData().subset(len(order), order),
		ds.CellData().subset(len(cellIDs), cellIDs),
	)
	return out
}

// allCellIDs returns 0..n-1.
func allCellIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Merge combines datasets into one. If every input is a *PolyData the
// result is a *PolyData, otherwise an *UnstructuredGrid. Point arrays
// present on every input (with matching component counts) are carried;
// others are dropped. Merging nothing is an error.
func Merge(objects ...DataSet) (DataSet, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", ErrInvalidValue)
	}
	allPoly := true
	for _, ds := range objects {
		if _, ok := ds.(*PolyData); !ok {
			allPoly = false
			break
		}
	}
	var pts []r3.Vec
	cells := &Cells{}
	for _, ds := range objects {
		off := len(pts)
		pts = append(pts, ds.Points()...)
		for i := 0; i < ds.NumCells(); i++ {
			ct, conn := ds.cell(i)
			mapped := make([]int, len(conn))
			for k, p := range conn {
				mapped[k] = p + off
			}
			cells.Append(ct, mapped...)
		}
	}
	mergeSets := func(pick func(DataSet) *FieldSet, fresh *FieldSet) {
		first := pick(objects[0])
		for _, name := range first.names {
			f := first.fields[name]
			shared := true
			total := 0
			for _, ds := range objects {
				of, ok := pick(ds).Get(name)
				if !ok || of.Components() != f.Components() {
					shared = false
					break
				}
				total += of.NumTuples()
			}
			if !shared {
				continue
			}
			nf := NewField(f.Components(), total)
			at := 0
			for _, ds := range objects {
				of, _ := pick(ds).Get(name)
				copy(nf.data[at*f.Components():], of.data)
				at += of.NumTuples()
			}
			fresh.names = append(fresh.names, name)
			fresh.fields[name] = nf
		}
		fresh.activeScalars = first.activeScalars
		if !fresh.Has(fresh.activeScalars) {
			fresh.activeScalars = ""
		}
		fresh.activeVectors = first.activeVectors
		if !fresh.Has(fresh.activeVectors) {
			fresh.activeVectors = ""
		}
	}
	pd := newFieldSet(AssocPoint, len(pts))
	cd := newFieldSet(AssocCell, cells.NumCells())
	mergeSets(DataSet.PointData, pd)
	mergeSets(DataSet.CellData, cd)
	if allPoly {
		out := newPolyData(pts, cells)
		out.adoptAttributes(pd, cd)
		return out, nil
	}
	out := newUnstructuredGrid(pts, cells)
	out.adoptAttributes(pd, cd)
	return out, nil
}
