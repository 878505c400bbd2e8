package pyvista

import (
	"fmt"
)

// MultiBlock is an ordered container of datasets and nested containers.
// Slots may be nil; filters preserve nil slots and recurse into nested
// blocks.
type MultiBlock struct {
	blocks []DataObject
	names  []string
}

// NewMultiBlock builds a container from the given blocks, in order.
func NewMultiBlock(blocks ...DataObject) *MultiBlock {
	mb := &MultiBlock{}
	for _, b := range blocks {
		mb.Append(b)
	}
	return mb
}

func (mb *MultiBlock) isDataObject() {}

// NumBlocks returns the number of slots, including nil ones.
func (mb *MultiBlock) NumBlocks() int { return len(mb.blocks) }

// Block returns slot i.
func (mb *MultiBlock) Block(i int) DataObject { return mb.blocks[i] }

// BlockName returns the name of slot i ("" when unnamed).
func (mb *MultiBlock) BlockName(i int) string { return mb.names[i] }

// Keys returns the block names in slot order.
func (mb *MultiBlock) Keys() []string {
	return append([]string(nil), mb.names...)
}

// Get returns the first block with the given name.
func (mb *MultiBlock) Get(name string) (DataObject, bool) {
	for i, n := range mb.names {
		if n == name {
			return mb.blocks[i], true
		}
	}
	return nil, false
}

// Append adds a block (nil allowed).
func (mb *MultiBlock) Append(b DataObject) {
	mb.blocks = append(mb.blocks, b)
	mb.names = append(mb.names, "")
}

// AppendNamed adds a named block.
func (mb *MultiBlock) AppendNamed(name string, b DataObject) {
	mb.blocks = append(mb.blocks, b)
	mb.names = append(mb.names, name)
}

// SetBlock replaces slot i.
func (mb *MultiBlock) SetBlock(i int, b DataObject) error {
	if i < 0 || i >= len(mb.blocks) {
		return fmt.Errorf("%w: block index %d of %d", ErrInvalidValue, i, len(mb.blocks))
	}
	mb.blocks[i] = b
	return nil
}

// Bounds returns the union of all block bounds.
func (mb *MultiBlock) Bounds() Bounds {
	b := emptyBounds()
	for _, leaf := range mb.Leaves() {
		b = b.Union(leaf.Bounds())
	}
	return b
}

// NumPoints returns the total point count over all blocks.
func (mb *MultiBlock) NumPoints() int {
	var n int
	for _, leaf := range mb.Leaves() {
		n += leaf.NumPoints()
	}
	return n
}

// Leaves returns every non-nil dataset in depth-first slot order.
func (mb *MultiBlock) Leaves() []DataSet {
	var out []DataSet
	for _, b := range mb.blocks {
		switch v := b.(type) {
		case nil:
		case *MultiBlock:
			out = append(out, v.Leaves()...)
		case DataSet:
			out = append(out, v)
		}
	}
	return out
}

// Copy returns a deep copy, preserving nil slots and names.
func (mb *MultiBlock) Copy() *MultiBlock {
	out := &MultiBlock{
		blocks: make([]DataObject, len(mb.blocks)),
		names:  append([]string(nil), mb.names...),
	}
	for i, b := range mb.blocks {
		switch v := b.(type) {
		case nil:
		case *MultiBlock:
			out.blocks[i] = v.Copy()
		case DataSet:
			out.blocks[i] = v.cloneDataSet()
		}
	}
	return out
}

// apply maps a dataset filter over every block: nil slots are preserved,
// nested containers recursed, and the first error aborts the whole call.
func (mb *MultiBlock) apply(f func(DataSet) (DataSet, error)) (*MultiBlock, error) {
	out := &MultiBlock{
		blocks: make([]DataObject, len(mb.blocks)),
		names:  append([]string(nil), mb.names...),
	}
	for i, b := range mb.blocks {
		switch v := b.(type) {
		case nil:
		case *MultiBlock:
			sub, err := v.apply(f)
			if err != nil {
				return nil, err
			}
			out.blocks[i] = sub
		case DataSet:
			res, err := f(v)
			if err != nil {
				return nil, err
			}
			out.blocks[i] = res
		}
	}
	return out, nil
}

// Combine merges every block into a single unstructured grid.
func (mb *MultiBlock) Combine() (*UnstructuredGrid, error) {
	leaves := mb.Leaves()
	if len(leaves) == 0 {
		return nil, fmt.Errorf("%w: no blocks to combine", ErrMissingData)
	}
	merged, err := Merge(leaves...)
	if err != nil {
		return nil, err
	}
	return merged.CastToUnstructuredGrid(), nil
}

// Clip mirrors Clip over every block.
func (mb *MultiBlock) Clip(o *ClipOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return Clip(ds, o) })
}

// ClipBox mirrors ClipBox over every block.
func (mb *MultiBlock) ClipBox(o *ClipBoxOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return ClipBox(ds, o) })
}

// Slice mirrors Slice over every block.
func (mb *MultiBlock) Slice(o *SliceOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return Slice(ds, o) })
}

// SliceAlongAxis mirrors SliceAlongAxis over every block; each slot becomes
// a nested container of slices.
func (mb *MultiBlock) SliceAlongAxis(o *SliceAlongAxisOptions) (*MultiBlock, error) {
	out := &MultiBlock{
		blocks: make([]DataObject, len(mb.blocks)),
		names:  append([]string(nil), mb.names...),
	}
	for i, b := range mb.blocks {
		switch v := b.(type) {
		case nil:
		case *MultiBlock:
			sub, err := v.SliceAlongAxis(o)
			if err != nil {
				return nil, err
			}
			out.blocks[i] = sub
		case DataSet:
			sub, err := SliceAlongAxis(v, o)
			if err != nil {
				return nil, err
			}
			out.blocks[i] = sub
		}
	}
	return out, nil
}

// Elevation mirrors Elevation over every block.
func (mb *MultiBlock) Elevation(o *ElevationOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return Elevation(ds, o) })
}

// ComputeCellSizes mirrors ComputeCellSizes over every block.
func (mb *MultiBlock) ComputeCellSizes(o *CellSizesOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return ComputeCellSizes(ds, o) })
}

// CellCenters mirrors CellCenters over every block.
func (mb *MultiBlock) CellCenters(o *CellCentersOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return CellCenters(ds, o) })
}

// ExtractAllEdges mirrors ExtractAllEdges over every block.
func (mb *MultiBlock) ExtractAllEdges() (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return ExtractAllEdges(ds) })
}

// Triangulate mirrors Triangulate over every block.
func (mb *MultiBlock) Triangulate(o *TriangulateOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return Triangulate(ds, o) })
}

// CellDataToPointData mirrors CellDataToPointData over every block.
func (mb *MultiBlock) CellDataToPointData(o *PassDataOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return CellDataToPointData(ds, o) })
}

// PointDataToCellData mirrors PointDataToCellData over every block.
func (mb *MultiBlock) PointDataToCellData(o *PassDataOptions) (*MultiBlock, error) {
	return mb.apply(func(ds DataSet) (DataSet, error) { return PointDataToCellData(ds, o) })
}

// MultiBlockOutlineOptions configures the composite outlines.
type MultiBlockOutlineOptions struct {
	// Nested outlines every block separately instead of the union bounds.
	Nested bool
	// Factor is the corner fraction for OutlineCorners; zero means 0.2.
	Factor float64
}

// Outline returns the bounding-box edges: one box around everything, or one
// per block with Nested, merged into a single surface.
func (mb *MultiBlock) Outline(o *MultiBlockOutlineOptions) (*PolyData, error) {
	if o == nil {
		o = &MultiBlockOutlineOptions{}
	}
	if !o.Nested {
		return outlineOfBounds(mb.Bounds()), nil
	}
	var parts []DataSet
	for _, leaf := range mb.Leaves() {
		parts = append(parts, Outline(leaf))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no blocks to outline", ErrMissingData)
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}

// OutlineCorners returns corner markers of the bounding box, or of every
// block with Nested, merged into a single surface.
func (mb *MultiBlock) OutlineCorners(o *MultiBlockOutlineOptions) (*PolyData, error) {
	if o == nil {
		o = &MultiBlockOutlineOptions{}
	}
	factor := o.Factor
	if factor <= 0 {
		factor = 0.2
	}
	if !o.Nested {
		return outlineCornersOfBounds(mb.Bounds(), factor), nil
	}
	var parts []DataSet
	for _, leaf := range mb.Leaves() {
		parts = append(parts, outlineCornersOfBounds(leaf.Bounds(), factor))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no blocks to outline", ErrMissingData)
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}

// ExtractGeometry merges every block's surface into one flat PolyData.
func (mb *MultiBlock) ExtractGeometry() (*PolyData, error) {
	var parts []DataSet
	for _, leaf := range mb.Leaves() {
		surf, err := ExtractSurface(leaf)
		if err != nil {
			return nil, err
		}
		parts = append(parts, surf)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no blocks to extract", ErrMissingData)
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}
