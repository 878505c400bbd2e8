package pyvista

import (
	"github.com/akeshavan/pyvista/internal/kernel"
)

// ConnectivityOptions configures Connectivity.
type ConnectivityOptions struct {
	// LargestOnly keeps only the biggest connected region.
	LargestOnly bool
}

// Connectivity labels the connected regions of the dataset (cells sharing
// points connect) and attaches "RegionId" point and cell arrays. Region ids
// count up from zero in order of first appearance. The result is always an
// UnstructuredGrid.
func Connectivity(ds DataSet, o *ConnectivityOptions) (*UnstructuredGrid, error) {
	if o == nil {
		o = &ConnectivityOptions{}
	}
	cellRegion, regions := connectedRegions(ds)
	if o.LargestOnly {
		largest := 0
		for r := 1; r < len(regions); r++ {
			if len(regions[r]) > len(regions[largest]) {
				largest = r
			}
		}
		var keep []int
		if len(regions) > 0 {
			keep = regions[largest]
		}
		out := extractCells(ds, keep)
		zero := make([]float64, out.NumCells())
		if err := out.CellData().SetScalars("RegionId", zero); err != nil {
			return nil, err
		}
		if err := out.PointData().SetScalars("RegionId", make([]float64, out.NumPoints())); err != nil {
			return nil, err
		}
		return out, nil
	}
	out := ds.CastToUnstructuredGrid()
	cellIDs := make([]float64, out.NumCells())
	for ci, r := range cellRegion {
		cellIDs[ci] = float64(r)
	}
	pointIDs := make([]float64, out.NumPoints())
	for ci := 0; ci < out.NumCells(); ci++ {
		_, conn := out.cell(ci)
		for _, p := range conn {
			pointIDs[p] = cellIDs[ci]
		}
	}
	if err := out.CellData().SetScalars("RegionId", cellIDs); err != nil {
		return nil, err
	}
	if err := out.PointData().SetScalars("RegionId", pointIDs); err != nil {
		return nil, err
	}
	return out, nil
}

// SplitBodies separates the connected regions into the blocks of a
// composite.
func SplitBodies(ds DataSet) (*MultiBlock, error) {
	_, regions := connectedRegions(ds)
	mb := NewMultiBlock()
	for _, cells := range regions {
		mb.Append(extractCells(ds, cells))
	}
	return mb, nil
}

// connectedRegions returns each cell's region id and the cell lists per
// region, in order of first appearance.
func connectedRegions(ds DataSet) (cellRegion []int, regions [][]int) {
	np := ds.NumPoints()
	dsj := kernel.NewDisjointSet(np)
	for ci := 0; ci < ds.NumCells(); ci++ {
		_, conn := ds.cell(ci)
		for i := 1; i < len(conn); i++ {
			dsj.Union(conn[0], conn[i])
		}
	}
	label := make(map[int]int)
	cellRegion = make([]int, ds.NumCells())
	for ci := 0; ci < ds.NumCells(); ci++ {
		_, conn := ds.cell(ci)
		if len(conn) == 0 {
			cellRegion[ci] = -1
			continue
		}
		root := dsj.Find(conn[0])
		r, ok := label[root]
		if !ok {
			r = len(regions)
			label[root] = r
			regions = append(regions, nil)
		}
		cellRegion[ci] = r
		regions[r] = append(regions[r], ci)
	}
	return cellRegion, regions
}
