package pyvista

import (
	"fmt"
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// ElevationOptions configures Elevation.
type ElevationOptions struct {
	// LowPoint and HighPoint span the elevation axis. Nil means the bottom
	// and top of the bounding box along z.
	LowPoint  *r3.Vec
	HighPoint *r3.Vec
	// ScalarRange maps the axis onto scalar values; nil means the z extent
	// of the two points. RangeFromArray takes precedence when set.
	ScalarRange *[2]float64
	// RangeFromArray reads the scalar range from an existing array's range.
	RangeFromArray string
	// KeepActiveScalars leaves the active-scalars designation untouched; by
	// default "Elevation" becomes active.
	KeepActiveScalars bool
	Inplace           bool
}

// Elevation attaches the point array "Elevation": each point's projection
// onto the low-high axis, mapped into the scalar range and clamped.
func Elevation(ds DataSet, o *ElevationOptions) (DataSet, error) {
	if o == nil {
		o = &ElevationOptions{}
	}
	b := ds.Bounds()
	c := b.Center()
	low := r3.Vec{X: c.X, Y: c.Y, Z: b[4]}
	high := r3.Vec{X: c.X, Y: c.Y, Z: b[5]}
	if o.LowPoint != nil {
		low = *o.LowPoint
	}
	if o.HighPoint != nil {
		high = *o.HighPoint
	}
	axis := r3.Sub(high, low)
	den := r3.Dot(axis, axis)
	if den == 0 {
		return nil, fmt.Errorf("%w: elevation low and high points coincide", ErrInvalidValue)
	}
	lo, hi := low.Z, high.Z
	switch {
	case o.RangeFromArray != "":
		f, _, _, err := resolveScalars(ds, o.RangeFromArray)
		if err != nil {
			return nil, err
		}
		lo, hi = f.Range()
	case o.ScalarRange != nil:
		lo, hi = o.ScalarRange[0], o.ScalarRange[1]
	}
	out := ds.cloneDataSet()
	values := make([]float64, out.NumPoints())
	for i, p := range out.Points() {
		t := r3.Dot(r3.Sub(p, low), axis) / den
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		values[i] = lo + t*(hi-lo)
	}
	if err := out.PointData().SetScalars("Elevation", values); err != nil {
		return nil, err
	}
	if !o.KeepActiveScalars {
		if err := out.PointData().SetActiveScalars("Elevation"); err != nil {
			return nil, err
		}
	}
	return finishInplace(ds, out, o.Inplace)
}

// TextureMapToPlaneOptions configures TextureMapToPlane.
type TextureMapToPlaneOptions struct {
	// Origin, PointU and PointV define the mapping plane: origin plus the
	// corners along the u and v axes. Nil means the bottom face of the
	// bounding box.
	Origin  *r3.Vec
	PointU  *r3.Vec
	PointV  *r3.Vec
	Inplace bool
}

// TextureMapToPlane attaches the two-component point array
// "Texture Coordinates" by projecting each point onto a plane.
func TextureMapToPlane(ds DataSet, o *TextureMapToPlaneOptions) (DataSet, error) {
	if o == nil {
		o = &TextureMapToPlaneOptions{}
	}
	b := ds.Bounds()
	origin := r3.Vec{X: b[0], Y: b[2], Z: b[4]}
	pu := r3.Vec{X: b[1], Y: b[2], Z: b[4]}
	pv := r3.Vec{X: b[0], Y: b[3], Z: b[4]}
	if o.Origin != nil {
		origin = *o.Origin
	}
	if o.PointU != nil {
		pu = *o.PointU
	}
	if o.PointV != nil {
		pv = *o.PointV
	}
	eu := r3.Sub(pu, origin)
	ev := r3.Sub(pv, origin)
	du, dv := r3.Dot(eu, eu), r3.Dot(ev, ev)
	if du == 0 || dv == 0 {
		return nil, fmt.Errorf("%w: degenerate texture mapping plane", ErrInvalidValue)
	}
	out := ds.cloneDataSet()
	tc := NewField(2, out.NumPoints())
	for i, p := range out.Points() {
		rel := r3.Sub(p, origin)
		tc.SetAt(i, 0, r3.Dot(rel, eu)/du)
		tc.SetAt(i, 1, r3.Dot(rel, ev)/dv)
	}
	if err := out.PointData().Set("Texture Coordinates", tc); err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o.Inplace)
}

// TextureMapToSphereOptions configures TextureMapToSphere.
type TextureMapToSphereOptions struct {
	// Center of the mapping sphere. Nil means the dataset center.
	Center *r3.Vec
	// PreventSeam mirrors the longitude coordinate so no seam appears where
	// the angle wraps.
	PreventSeam bool
	Inplace     bool
}

// TextureMapToSphere attaches the two-component point array
// "Texture Coordinates" from spherical coordinates about a center.
func TextureMapToSphere(ds DataSet, o *TextureMapToSphereOptions) (DataSet, error) {
	if o == nil {
		o = &TextureMapToSphereOptions{}
	}
	center := ds.Center()
	if o.Center != nil {
		center = *o.Center
	}
	out := ds.cloneDataSet()
	tc := NewField(2, out.NumPoints())
	for i, p := range out.Points() {
		rel := r3.Sub(p, center)
		r := r3.Norm(rel)
		u := 0.5 + math.Atan2(rel.Y, rel.X)/(2*math.Pi)
		v := 0.5
		if r > 0 {
			v = 0.5 - math.Asin(rel.Z/r)/math.Pi
		}
		if o.PreventSeam {
			if u <= 0.5 {
				u = 2 * u
			} else {
				u = 2 * (1 - u)
			}
		}
		tc.SetAt(i, 0, u)
		tc.SetAt(i, 1, v)
	}
	if err := out.PointData().Set("Texture Coordinates", tc); err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o.Inplace)
}

// CellSizesOptions configures ComputeCellSizes. Nil options compute all
// three measures.
type CellSizesOptions struct {
	Length bool
	Area   bool
	Volume bool
}

// ComputeCellSizes attaches the cell arrays "Length", "Area" and "Volume"
// holding each cell's measure in its own dimension (zero elsewhere).
func ComputeCellSizes(ds DataSet, o *CellSizesOptions) (DataSet, error) {
	if o == nil {
		o = &CellSizesOptions{Length: true, Area: true, Volume: true}
	}
	out := ds.cloneDataSet()
	pts := out.Points()
	nc := out.NumCells()
	var length, area, volume []float64
	if o.Length {
		length = make([]float64, nc)
	}
	if o.Area {
		area = make([]float64, nc)
	}
	if o.Volume {
		volume = make([]float64, nc)
	}
	for ci := 0; ci < nc; ci++ {
		ct, conn := out.cell(ci)
		switch ct.Dimension() {
		case 1:
			if length != nil {
				for _, e := range kernel.Edges(ct, conn) {
					length[ci] += r3.Norm(r3.Sub(pts[e[1]], pts[e[0]]))
				}
			}
		case 2:
			if area != nil {
				for _, t := range kernel.Triangulate(ct, conn) {
					area[ci] += kernel.TriangleArea(pts[t[0]], pts[t[1]], pts[t[2]])
				}
			}
		case 3:
			if volume != nil {
				for _, t := range kernel.Tetrahedralize(ct, conn) {
					volume[ci] += kernel.TetraVolume(pts[t[0]], pts[t[1]], pts[t[2]], pts[t[3]])
				}
			}
		}
	}
	for _, a := range []struct {
		name   string
		values []float64
	}{{"Length", length}, {"Area", area}, {"Volume", volume}} {
		if a.values == nil {
			continue
		}
		if err := out.CellData().SetScalars(a.name, a.values); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CellCentersOptions configures CellCenters.
type CellCentersOptions struct {
	// NoVertexCells suppresses the vertex cell generated per center.
	NoVertexCells bool
}

// CellCenters returns the parametric centers of all cells as a point cloud.
// The input's cell data becomes the output's point data.
func CellCenters(ds DataSet, o *CellCentersOptions) (*PolyData, error) {
	if o == nil {
		o = &CellCentersOptions{}
	}
	pts := ds.Points()
	centers := make([]r3.Vec, ds.NumCells())
	for ci := range centers {
		_, conn := ds.cell(ci)
		var c r3.Vec
		for _, p := range conn {
			c = r3.Add(c, pts[p])
		}
		centers[ci] = r3.Scale(1/float64(len(conn)), c)
	}
	var out *PolyData
	if o.NoVertexCells {
		out = newPolyData(centers, &Cells{})
	} else {
		out = NewPolyData(centers)
	}
	src := ds.CellData()
	for _, name := range src.Names() {
		f, _ := src.Get(name)
		if err := out.PointData().Set(name, f.Copy()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// PassDataOptions configures the cell/point data conversions.
type PassDataOptions struct {
	// PassData keeps the source-association arrays on the result alongside
	// the converted ones.
	PassData bool
	Inplace  bool
}

// CellDataToPointData averages cell arrays onto points: each point receives
// the mean over its incident cells.
func CellDataToPointData(ds DataSet, o *PassDataOptions) (DataSet, error) {
	if o == nil {
		o = &PassDataOptions{}
	}
	out := ds.cloneDataSet()
	np := out.NumPoints()
	weight := make([]float64, np)
	incident := make([][]int, np)
	for ci := 0; ci < out.NumCells(); ci++ {
		_, conn := out.cell(ci)
		for _, p := range conn {
			incident[p] = append(incident[p], ci)
			weight[p]++
		}
	}
	src := out.CellData()
	for _, name := range src.Names() {
		f, _ := src.Get(name)
		nf := NewField(f.Components(), np)
		for p := 0; p < np; p++ {
			if weight[p] == 0 {
				continue
			}
			for j := 0; j < f.Components(); j++ {
				var sum float64
				for _, ci := range incident[p] {
					sum += f.At(ci, j)
				}
				nf.SetAt(p, j, sum/weight[p])
			}
		}
		if err := out.PointData().Set(name, nf); err != nil {
			return nil, err
		}
	}
	if !o.PassData {
		out.CellData().Clear()
	}
	return finishInplace(ds, out, o.Inplace)
}

// PointDataToCellData averages point arrays onto cells: each cell receives
// the mean over its points.
func PointDataToCellData(ds DataSet, o *PassDataOptions) (DataSet, error) {
	if o == nil {
		o = &PassDataOptions{}
	}
	out := ds.cloneDataSet()
	nc := out.NumCells()
	src := out.PointData()
	for _, name := range src.Names() {
		f, _ := src.Get(name)
		nf := NewField(f.Components(), nc)
		for ci := 0; ci < nc; ci++ {
			_, conn := out.cell(ci)
			if len(conn) == 0 {
				continue
			}
			for j := 0; j < f.Components(); j++ {
				var sum float64
				for _, p := range conn {
					sum += f.At(p, j)
				}
				nf.SetAt(ci, j, sum/float64(len(conn)))
			}
		}
		if err := out.CellData().Set(name, nf); err != nil {
			return nil, err
		}
	}
	if !o.PassData {
		out.PointData().Clear()
	}
	return finishInplace(ds, out, o.Inplace)
}
