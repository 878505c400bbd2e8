package pyvista

import (
	"fmt"
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// GlyphOptions configures Glyph.
type GlyphOptions struct {
	// Geom lists the glyph geometries to copy onto the points; nil means a
	// single arrow.
	Geom []*PolyData
	// Indices gives the selection value of each geometry; the point scalar
	// picks the geometry with the nearest value. Must match Geom in length.
	// Nil with several geometries means 0, 1, 2, ...
	Indices []float64
	// NoOrient skips aligning the glyph +x axis with the point vectors.
	NoOrient bool
	// NoScale skips scaling glyphs by the point scalars.
	NoScale bool
	// OrientArray names the vector array to orient by; "" uses the active
	// vectors.
	OrientArray string
	// ScaleArray names the scalar array to scale by; "" uses the active
	// scalars.
	ScaleArray string
	// Factor scales every glyph; zero means 1.
	Factor float64
	// Tolerance decimates the input points: points closer than this
	// fraction of the bounding-box diagonal to an already glyphed point are
	// skipped. Zero keeps every point.
	Tolerance float64
}

// Glyph copies a geometry onto every point, optionally oriented by the
// point vectors and scaled by the point scalars. Each copy carries its
// source point's arrays.
func Glyph(ds DataSet, o *GlyphOptions) (*PolyData, error) {
	if o == nil {
		o = &GlyphOptions{}
	}
	geoms := o.Geom
	if len(geoms) == 0 {
		geoms = []*PolyData{Arrow(nil)}
	}
	indices := o.Indices
	if indices != nil && len(indices) != len(geoms) {
		return nil, fmt.Errorf("%w: %d glyph indices for %d geometries",
			ErrInvalidValue, len(indices), len(geoms))
	}
	if indices == nil && len(geoms) > 1 {
		indices = make([]float64, len(geoms))
		for i := range indices {
			indices[i] = float64(i)
		}
	}
	factor := o.Factor
	if factor == 0 {
		factor = 1
	}
	var vectors *Field
	if !o.NoOrient {
		// Orientation is optional: without vectors glyphs stay unrotated.
		vectors, _, _ = resolvePointVectors(ds, o.OrientArray)
	}
	var scalars *Field
	if !o.NoScale {
		if f, assoc, _, err := resolveScalars(ds, o.ScaleArray); err == nil && assoc == AssocPoint {
			scalars = f
		}
	}
	pts := ds.Points()
	keep := maskPoints(pts, o.Tolerance*ds.Length())
	var parts []DataSet
	for _, pi := range keep {
		gi := 0
		if len(geoms) > 1 {
			var sel float64
			if scalars != nil {
				sel = scalars.Value(pi)
			}
			best := math.Inf(1)
			for k, idx := range indices {
				if d := math.Abs(idx - sel); d < best {
					best = d
					gi = k
				}
			}
		}
		scale := factor
		if scalars != nil {
			scale *= scalars.Value(pi)
		}
		copyGeom := geoms[gi].Copy()
		gpts := copyGeom.Points()
		var rot r3.Rotation
		oriented := false
		if vectors != nil {
			v := vectors.Vec(pi)
			if n := r3.Norm(v); n > 0 {
				rot = kernel.RotationTo(r3.Vec{X: 1}, r3.Scale(1/n, v))
				oriented = true
			}
		}
		for i, gp := range gpts {
			p := r3.Scale(scale, gp)
			if oriented {
				p = rot.Rotate(p)
			}
			gpts[i] = r3.Add(p, pts[pi])
		}
		// Each copy inherits the source point's arrays, replicated over the
		// glyph's points and cells.
		copyGeom.PointData().Clear()
		copyGeom.CellData().Clear()
		replicateTuples(ds.PointData(), copyGeom.PointData(), pi, copyGeom.NumPoints())
		replicateTuples(ds.PointData(), copyGeom.CellData(), pi, copyGeom.NumCells())
		parts = append(parts, copyGeom)
	}
	if len(parts) == 0 {
		return newPolyData(nil, &Cells{}), nil
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}

// replicateTuples copies tuple src of every array in from into n tuples of
// a fresh array in to.
func replicateTuples(from, to *FieldSet, src, n int) {
	for _, name := range from.names {
		f := from.fields[name]
		nf := NewField(f.Components(), n)
		for i := 0; i < n; i++ {
			copy(nf.Tuple(i), f.Tuple(src))
		}
		to.names = append(to.names, name)
		to.fields[name] = nf
	}
	to.activeScalars = from.activeScalars
	to.activeVectors = from.activeVectors
}

// maskPoints keeps the points no closer than radius to an earlier kept
// point, binning on a radius-sized grid.
func maskPoints(pts []r3.Vec, radius float64) []int {
	if radius <= 0 {
		return allCellIDs(len(pts))
	}
	bin := func(p r3.Vec) [3]int {
		return [3]int{
			int(math.Floor(p.X / radius)),
			int(math.Floor(p.Y / radius)),
			int(math.Floor(p.Z / radius)),
		}
	}
	taken := make(map[[3]int][]r3.Vec)
	var keep []int
	for i, p := range pts {
		b := bin(p)
		crowded := false
	scan:
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, q := range taken[[3]int{b[0] + dx, b[1] + dy, b[2] + dz}] {
						if r3.Norm(r3.Sub(p, q)) < radius {
							crowded = true
							break scan
						}
					}
				}
			}
		}
		if crowded {
			continue
		}
		taken[b] = append(taken[b], p)
		keep = append(keep, i)
	}
	return keep
}

// ExtrudeRotateOptions configures ExtrudeRotate.
type ExtrudeRotateOptions struct {
	// Resolution is the number of rotation steps; zero means 30, negative
	// is invalid.
	Resolution int
	// Angle is the sweep in degrees; zero means a full revolution.
	Angle   float64
	Inplace bool
}

// ExtrudeRotate sweeps a profile around the z axis. Every input point
// yields resolution+1 rotated copies and every line segment one triangle
// strip spanning the sweep.
func ExtrudeRotate(pd *PolyData, o *ExtrudeRotateOptions) (*PolyData, error) {
	if o == nil {
		o = &ExtrudeRotateOptions{}
	}
	res := o.Resolution
	if res == 0 {
		res = 30
	}
	if res < 1 {
		return nil, fmt.Errorf("%w: extrusion resolution %d, need at least 1",
			ErrInvalidValue, o.Resolution)
	}
	angle := o.Angle
	if angle == 0 {
		angle = 360
	}
	pts := pd.Points()
	n := len(pts)
	npts := make([]r3.Vec, 0, (res+1)*n)
	var pointSrc []int
	for k := 0; k <= res; k++ {
		a := angle * float64(k) / float64(res) * math.Pi / 180
		c, s := math.Cos(a), math.Sin(a)
		for i, p := range pts {
			npts = append(npts, r3.Vec{
				X: c*p.X - s*p.Y,
				Y: s*p.X + c*p.Y,
				Z: p.Z,
			})
			pointSrc = append(pointSrc, i)
		}
	}
	cells := &Cells{}
	var parent []int
	for ci := 0; ci < pd.NumCells(); ci++ {
		ct, conn := pd.Cell(ci)
		if ct.Dimension() != 1 {
			continue
		}
		for _, e := range kernel.Edges(ct, conn) {
			strip := make([]int, 0, 2*(res+1))
			for k := 0; k <= res; k++ {
				strip = append(strip, k*n+e[0], k*n+e[1])
			}
			cells.Append(CellTriangleStrip, strip...)
			parent = append(parent, ci)
		}
	}
	out := newPolyData(npts, cells)
	out.adoptAttributes(
		pd.PointData().subset(len(pointSrc), pointSrc),
		pd.CellData().subset(len(parent), parent),
	)
	if o.Inplace {
		if err := pd.copyFrom(out); err != nil {
			return nil, err
		}
		return pd, nil
	}
	return out, nil
}
