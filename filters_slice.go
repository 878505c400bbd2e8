package pyvista

import (
	"fmt"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// SliceOptions configures Slice.
type SliceOptions struct {
	// Normal is the slice-plane normal. The zero vector means +x.
	Normal r3.Vec
	// Origin is a point on the plane. Nil means the dataset center.
	Origin *r3.Vec
}

// Slice intersects the dataset with a plane. Volume cells yield triangles,
// surface cells yield lines, line cells yield vertices; point arrays are
// interpolated onto the cut.
func Slice(ds DataSet, o *SliceOptions) (*PolyData, error) {
	if o == nil {
		o = &SliceOptions{}
	}
	normal := unitOr(o.Normal, r3.Vec{X: 1})
	origin := ds.Center()
	if o.Origin != nil {
		origin = *o.Origin
	}
	return slicePlane(ds, normal, origin)
}

func slicePlane(ds DataSet, normal, origin r3.Vec) (*PolyData, error) {
	d := make([]float64, ds.NumPoints())
	for i, p := range ds.Points() {
		d[i] = r3.Dot(normal, r3.Sub(p, origin))
	}
	out, err := isoExtract(ds, d)
	if err != nil {
		return nil, err
	}
	Logger().Debug("slice", "cells", ds.NumCells(), "cut", out.NumCells())
	if out.NumCells() == 0 {
		Logger().Warn("slice plane misses the dataset", "origin", origin, "normal", normal)
	}
	return out, nil
}

// isoExtract builds the d = 0 level set of a per-point scalar.
func isoExtract(ds DataSet, d []float64) (*PolyData, error) {
	pm := kernel.NewPointMap()
	cells := &Cells{}
	var parent []int
	emit := func(ct CellType, conn []int, ci int) {
		cells.Append(ct, conn...)
		parent = append(parent, ci)
	}
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		switch ct.Dimension() {
		case 1:
			for _, e := range kernel.Edges(ct, conn) {
				d0, d1 := d[e[0]], d[e[1]]
				if (d0 < 0) != (d1 < 0) {
					emit(CellVertex, []int{pm.Edge(e[0], e[1], d0/(d0-d1))}, ci)
				}
			}
		case 2:
			for _, t := range kernel.Triangulate(ct, conn) {
				dv := [3]float64{d[t[0]], d[t[1]], d[t[2]]}
				if seg, ok := kernel.IsoTriangle(t, dv, pm); ok {
					emit(CellLine, seg[:], ci)
				}
			}
		case 3:
			for _, tet := range kernel.Tetrahedralize(ct, conn) {
				dv := [4]float64{d[tet[0]], d[tet[1]], d[tet[2]], d[tet[3]]}
				for _, tri := range kernel.IsoTetra(tet, dv, pm) {
					emit(CellTriangle, tri[:], ci)
				}
			}
		}
	}
	refs := pm.Refs()
	out := newPolyData(interpPoints(ds.Points(), refs), cells)
	out.adoptAttributes(
		interpPointData(ds.PointData(), refs),
		ds.CellData().subset(len(parent), parent),
	)
	return out, nil
}

// SliceOrthogonalOptions configures SliceOrthogonal.
type SliceOrthogonalOptions struct {
	// Point is the common point of the three planes. Nil means the center.
	Point *r3.Vec
}

// SliceOrthogonal slices with the three axis planes through a point,
// returning a three-block composite named "YZ", "XZ" and "XY".
func SliceOrthogonal(ds DataSet, o *SliceOrthogonalOptions) (*MultiBlock, error) {
	if o == nil {
		o = &SliceOrthogonalOptions{}
	}
	p := ds.Center()
	if o.Point != nil {
		p = *o.Point
	}
	mb := NewMultiBlock()
	for _, s := range []struct {
		name   string
		normal r3.Vec
	}{
		{"YZ", r3.Vec{X: 1}},
		{"XZ", r3.Vec{Y: 1}},
		{"XY", r3.Vec{Z: 1}},
	} {
		cut, err := slicePlane(ds, s.normal, p)
		if err != nil {
			return nil, err
		}
		mb.AppendNamed(s.name, cut)
	}
	return mb, nil
}

// SliceAlongAxisOptions configures SliceAlongAxis.
type SliceAlongAxisOptions struct {
	// N is the number of slices; zero means 5.
	N int
	// Axis names the slicing axis ("x", "y", "z" or an index in string
	// form); "" means "x". Unknown names are invalid.
	Axis string
	// Tolerance pulls the outermost slices inside the bounds; zero means 1%
	// of the axis extent.
	Tolerance float64
}

// SliceAlongAxis slices with evenly spaced planes perpendicular to one axis.
func SliceAlongAxis(ds DataSet, o *SliceAlongAxisOptions) (*MultiBlock, error) {
	if o == nil {
		o = &SliceAlongAxisOptions{}
	}
	n := o.N
	if n <= 0 {
		n = 5
	}
	name := o.Axis
	if name == "" {
		name = "x"
	}
	axis, err := ParseAxis(name)
	if err != nil {
		return nil, err
	}
	b := ds.Bounds()
	lo, hi := b[2*int(axis)], b[2*int(axis)+1]
	tol := o.Tolerance
	if tol == 0 {
		tol = 0.01 * (hi - lo)
	}
	positions := []float64{(lo + hi) / 2}
	if n > 1 {
		positions = floats.Span(make([]float64, n), lo+tol, hi-tol)
	}
	normal := axis.Vec()
	center := ds.Center()
	mb := NewMultiBlock()
	for i, pos := range positions {
		origin := center
		switch axis {
		case AxisX:
			origin.X = pos
		case AxisY:
			origin.Y = pos
		case AxisZ:
			origin.Z = pos
		}
		cut, err := slicePlane(ds, normal, origin)
		if err != nil {
			return nil, err
		}
		mb.AppendNamed(fmt.Sprintf("slice%d", i), cut)
	}
	return mb, nil
}

// SliceAlongLine slices with one plane per segment of a polyline, each
// plane passing through the segment midpoint perpendicular to the segment,
// and merges the cuts.
func SliceAlongLine(ds DataSet, line *PolyData) (*PolyData, error) {
	pts := line.Points()
	var cuts []DataSet
	for ci := 0; ci < line.NumCells(); ci++ {
		ct, conn := line.Cell(ci)
		if ct.Dimension() != 1 {
			continue
		}
		for _, e := range kernel.Edges(ct, conn) {
			a, b := pts[e[0]], pts[e[1]]
			dir := r3.Sub(b, a)
			if r3.Norm(dir) == 0 {
				continue
			}
			mid := r3.Scale(0.5, r3.Add(a, b))
			cut, err := slicePlane(ds, r3.Unit(dir), mid)
			if err != nil {
				return nil, err
			}
			cuts = append(cuts, cut)
		}
	}
	if len(cuts) == 0 {
		return nil, fmt.Errorf("%w: line has no segments to slice along", ErrMissingData)
	}
	merged, err := Merge(cuts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}
