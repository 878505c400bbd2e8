package pyvista

import (
	"fmt"
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// ClipOptions configures Clip. The zero value clips with an x-normal plane
// through the dataset center, keeping the half the normal points away from.
type ClipOptions struct {
	// Normal is the clip-plane normal. The zero vector means +x.
	Normal r3.Vec
	// Origin is a point on the plane. Nil means the dataset center.
	Origin *r3.Vec
	// Value shifts the plane along its normal.
	Value float64
	// Invert keeps the half-space the normal points toward.
	Invert bool
	// Inplace copies the result onto the receiver. Only valid when the
	// result type matches the input type.
	Inplace bool
}

// Clip cuts the dataset with a plane and discards one half-space. Cut cells
// are re-meshed along the plane and point arrays are interpolated onto the
// new points. PolyData stays PolyData; every other variant becomes an
// UnstructuredGrid.
func Clip(ds DataSet, o *ClipOptions) (DataSet, error) {
	out, _, err := clipPlane(ds, o, false)
	if err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o != nil && o.Inplace)
}

// ClipWithRemainder is Clip returning both halves.
func ClipWithRemainder(ds DataSet, o *ClipOptions) (kept, clipped DataSet, err error) {
	return clipPlane(ds, o, true)
}

func clipPlane(ds DataSet, o *ClipOptions, both bool) (kept, clipped DataSet, err error) {
	if o == nil {
		o = &ClipOptions{}
	}
	normal := unitOr(o.Normal, r3.Vec{X: 1})
	origin := ds.Center()
	if o.Origin != nil {
		origin = *o.Origin
	}
	d := make([]float64, ds.NumPoints())
	for i, p := range ds.Points() {
		d[i] = r3.Dot(normal, r3.Sub(p, origin)) - o.Value
	}
	return clipByDistances(ds, d, o.Invert, both)
}

// ClipScalarOptions configures ClipScalar.
type ClipScalarOptions struct {
	// Scalars names the point array to clip by; "" uses the active scalars.
	Scalars string
	// Value is the clip threshold.
	Value float64
	// Invert keeps values above the threshold instead of below.
	Invert  bool
	Inplace bool
}

// ClipScalar discards the region where the point scalars exceed the
// threshold (or fall below it with Invert). Cut cells are re-meshed at the
// exact crossing.
func ClipScalar(ds DataSet, o *ClipScalarOptions) (DataSet, error) {
	if o == nil {
		o = &ClipScalarOptions{}
	}
	f, _, err := resolvePointScalars(ds, o.Scalars)
	if err != nil {
		return nil, err
	}
	d := make([]float64, ds.NumPoints())
	for i := range d {
		d[i] = f.Value(i) - o.Value
	}
	out, _, err := clipByDistances(ds, d, o.Invert, false)
	if err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o.Inplace)
}

// ClipSurfaceOptions configures ClipSurface.
type ClipSurfaceOptions struct {
	// Invert keeps the region outside the surface instead of inside.
	Invert bool
	// ComputeImplicitDistance also attaches the signed distance to the
	// surface as the point array "implicit_distance".
	ComputeImplicitDistance bool
	Inplace                 bool
}

// ClipSurface discards the region outside a closed surface (or inside it
// with Invert), using the signed distance to the surface as the clip
// function.
func ClipSurface(ds DataSet, surface *PolyData, o *ClipSurfaceOptions) (DataSet, error) {
	if o == nil {
		o = &ClipSurfaceOptions{}
	}
	d, err := implicitDistances(ds.Points(), surface)
	if err != nil {
		return nil, err
	}
	src := ds
	if o.ComputeImplicitDistance {
		src = ds.cloneDataSet()
		if err := src.PointData().SetScalars("implicit_distance", append([]float64(nil), d...)); err != nil {
			return nil, err
		}
	}
	out, _, err := clipByDistances(src, d, o.Invert, false)
	if err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o.Inplace)
}

// ClipBoxOptions configures ClipBox.
type ClipBoxOptions struct {
	// Bounds selects the box: nil removes the upper corner octant of the
	// dataset bounds, one value is a half-extent about the center, three
	// values are full edge lengths about the center, six values are explicit
	// [xmin, xmax, ymin, ymax, zmin, zmax]. Other lengths are invalid.
	Bounds []float64
	// Box is an oriented box mesh with exactly six planar faces; it takes
	// precedence over Bounds.
	Box *PolyData
	// Invert keeps the region inside the box instead of outside.
	Invert bool
}

// ClipBox removes the region inside a box (or keeps only it with Invert).
// The result is always an UnstructuredGrid.
func ClipBox(ds DataSet, o *ClipBoxOptions) (*UnstructuredGrid, error) {
	if o == nil {
		o = &ClipBoxOptions{}
	}
	var planes [][2]r3.Vec // (origin, outward normal)
	if o.Box != nil {
		var err error
		planes, err = boxPlanes(o.Box)
		if err != nil {
			return nil, err
		}
	} else {
		b, err := resolveBoxBounds(ds, o.Bounds)
		if err != nil {
			return nil, err
		}
		planes = [][2]r3.Vec{
			{r3.Vec{X: b[0]}, r3.Vec{X: -1}},
			{r3.Vec{X: b[1]}, r3.Vec{X: 1}},
			{r3.Vec{Y: b[2]}, r3.Vec{Y: -1}},
			{r3.Vec{Y: b[3]}, r3.Vec{Y: 1}},
			{r3.Vec{Z: b[4]}, r3.Vec{Z: -1}},
			{r3.Vec{Z: b[5]}, r3.Vec{Z: 1}},
		}
	}
	// Signed box function: negative inside, via the max over the six
	// half-space distances. Clipping keeps d <= 0, so removing the inside
	// means clipping by the negation. The box is a closed region: a point
	// exactly on a face belongs to it, so a zero distance must land on the
	// discard side after negation.
	d := make([]float64, ds.NumPoints())
	for i, p := range ds.Points() {
		v := math.Inf(-1)
		for _, pl := range planes {
			v = math.Max(v, r3.Dot(pl[1], r3.Sub(p, pl[0])))
		}
		if !o.Invert {
			if v == 0 {
				v = math.SmallestNonzeroFloat64
			} else {
				v = -v
			}
		}
		d[i] = v
	}
	out, _, err := clipByDistances(ds, d, false, false)
	if err != nil {
		return nil, err
	}
	return out.CastToUnstructuredGrid(), nil
}

// resolveBoxBounds expands the shorthand bounds forms.
func resolveBoxBounds(ds DataSet, bounds []float64) (Bounds, error) {
	db := ds.Bounds()
	c := db.Center()
	switch len(bounds) {
	case 0:
		// Remove the +x/+y/+z corner octant.
		return Bounds{c.X, db[1], c.Y, db[3], c.Z, db[5]}, nil
	case 1:
		h := bounds[0]
		return Bounds{c.X - h, c.X + h, c.Y - h, c.Y + h, c.Z - h, c.Z + h}, nil
	case 3:
		return Bounds{
			c.X - bounds[0]/2, c.X + bounds[0]/2,
			c.Y - bounds[1]/2, c.Y + bounds[1]/2,
			c.Z - bounds[2]/2, c.Z + bounds[2]/2,
		}, nil
	case 6:
		var b Bounds
		copy(b[:], bounds)
		if b[0] > b[1] || b[2] > b[3] || b[4] > b[5] {
			return Bounds{}, fmt.Errorf("%w: box bounds %v", ErrInvalidValue, bounds)
		}
		return b, nil
	}
	return Bounds{}, fmt.Errorf("%w: box bounds need 1, 3 or 6 values, got %d",
		ErrInvalidValue, len(bounds))
}

// boxPlanes derives the six face planes of an oriented box mesh, normals
// pointing outward.
func boxPlanes(box *PolyData) ([][2]r3.Vec, error) {
	if box.NumCells() != 6 {
		return nil, fmt.Errorf("%w: box mesh has %d faces, want 6", ErrInvalidValue, box.NumCells())
	}
	center := box.Center()
	pts := box.Points()
	planes := make([][2]r3.Vec, 0, 6)
	for i := 0; i < 6; i++ {
		ct, conn := box.Cell(i)
		tris := kernel.Triangulate(ct, conn)
		if len(tris) == 0 {
			return nil, fmt.Errorf("%w: box face %d is not polygonal", ErrInvalidValue, i)
		}
		t := tris[0]
		n := unitOr(kernel.TriangleNormal(pts[t[0]], pts[t[1]], pts[t[2]]), r3.Vec{X: 1})
		var o r3.Vec
		for _, v := range conn {
			o = r3.Add(o, pts[v])
		}
		o = r3.Scale(1/float64(len(conn)), o)
		if r3.Dot(n, r3.Sub(o, center)) < 0 {
			n = r3.Scale(-1, n)
		}
		planes = append(planes, [2]r3.Vec{o, n})
	}
	return planes, nil
}

// ClipClosedSurfaceOptions configures ClipClosedSurface.
type ClipClosedSurfaceOptions struct {
	// Normal is the clip-plane normal. The zero vector means +x.
	Normal r3.Vec
	// Origin is a point on the plane. Nil means the surface center.
	Origin  *r3.Vec
	Inplace bool
}

// ClipClosedSurface clips a closed surface with a plane and caps the cut so
// the result stays closed. Surfaces with open edges are rejected.
func ClipClosedSurface(pd *PolyData, o *ClipClosedSurfaceOptions) (*PolyData, error) {
	if o == nil {
		o = &ClipClosedSurfaceOptions{}
	}
	if pd.NumOpenEdges() > 0 {
		return nil, fmt.Errorf("%w: surface has %d open edges, cannot cap the cut",
			ErrInvalidValue, pd.NumOpenEdges())
	}
	normal := unitOr(o.Normal, r3.Vec{X: 1})
	origin := pd.Center()
	if o.Origin != nil {
		origin = *o.Origin
	}
	clipped, err := Clip(pd, &ClipOptions{Normal: normal, Origin: &origin})
	if err != nil {
		return nil, err
	}
	out := clipped.(*PolyData)
	capClipCut(out, normal, origin)
	if o.Inplace {
		if err := pd.copyFrom(out); err != nil {
			return nil, err
		}
		return pd, nil
	}
	return out, nil
}

// capClipCut closes the open boundary loops a plane clip leaves behind,
// fanning each loop into triangles. Loops are recognized by their points
// lying on the cut plane.
func capClipCut(pd *PolyData, normal, origin r3.Vec) {
	tol := 1e-9 * (1 + pd.Length())
	onPlane := func(p r3.Vec) bool {
		return math.Abs(r3.Dot(normal, r3.Sub(p, origin))) <= tol
	}
	count := make(map[[2]int]int)
	for i := 0; i < pd.NumCells(); i++ {
		ct, conn := pd.Cell(i)
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
	pts := pd.Points()
	var open [][2]int
	for e, c := range count {
		if c == 1 && onPlane(pts[e[0]]) && onPlane(pts[e[1]]) {
			open = append(open, e)
		}
	}
	for _, chain := range kernel.ChainSegments(open) {
		if len(chain) < 4 || chain[0] != chain[len(chain)-1] {
			continue
		}
		loop := chain[:len(chain)-1]
		for i := 1; i < len(loop)-1; i++ {
			pd.cells.Append(CellTriangle, loop[0], loop[i], loop[i+1])
		}
		// Cap cells need cell-data tuples too.
		grow := len(loop) - 2
		for _, name := range pd.cellData.names {
			f := pd.cellData.fields[name]
			nf := NewField(f.Components(), pd.cells.NumCells())
			copy(nf.data, f.data)
			pd.cellData.fields[name] = nf
		}
		pd.cellData.n += grow
	}
}

// clipByDistances is the clip core: it keeps the region where d <= 0,
// re-meshing cut cells and interpolating point arrays onto the new points.
func clipByDistances(ds DataSet, d []float64, invert, both bool) (kept, clipped DataSet, err error) {
	if invert {
		d = negate(d)
	}
	kept, err = clipKeepNegative(ds, d)
	if err != nil {
		return nil, nil, err
	}
	Logger().Debug("clip", "cells", ds.NumCells(), "kept", kept.NumCells())
	if kept.NumCells() == 0 {
		Logger().Warn("clip kept no cells")
	}
	if both {
		clipped, err = clipKeepNegative(ds, negate(d))
		if err != nil {
			return nil, nil, err
		}
	}
	return kept, clipped, nil
}

func negate(d []float64) []float64 {
	out := make([]float64, len(d))
	for i, v := range d {
		out[i] = -v
	}
	return out
}

func clipKeepNegative(ds DataSet, d []float64) (DataSet, error) {
	pm := kernel.NewPointMap()
	cells := &Cells{}
	var parent []int
	emit := func(ct CellType, conn []int, ci int) {
		cells.Append(ct, conn...)
		parent = append(parent, ci)
	}
	dOf := func(conn []int) []float64 {
		dv := make([]float64, len(conn))
		for i, v := range conn {
			dv[i] = d[v]
		}
		return dv
	}
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		switch ct.Dimension() {
		case 0:
			for _, v := range conn {
				if d[v] <= 0 {
					emit(CellVertex, []int{pm.Orig(v)}, ci)
				}
			}
		case 1:
			for _, e := range kernel.Edges(ct, conn) {
				if seg, ok := kernel.ClipLine(e[0], e[1], d[e[0]], d[e[1]], pm); ok {
					emit(CellLine, seg[:], ci)
				}
			}
		case 2:
			for _, ring := range kernel.Faces(ct, conn) {
				out := kernel.ClipPolygon(ring, dOf(ring), pm)
				if len(out) >= 3 {
					emit(polygonCellType(len(out)), out, ci)
				}
			}
		case 3:
			for _, tet := range kernel.Tetrahedralize(ct, conn) {
				dv := [4]float64{d[tet[0]], d[tet[1]], d[tet[2]], d[tet[3]]}
				for _, t := range kernel.ClipTetra(tet, dv, pm) {
					emit(CellTetra, t[:], ci)
				}
			}
		}
	}
	refs := pm.Refs()
	pts := interpPoints(ds.Points(), refs)
	pdata := interpPointData(ds.PointData(), refs)
	cdata := ds.CellData().subset(len(parent), parent)
	if _, ok := ds.(*PolyData); ok {
		out := newPolyData(pts, cells)
		out.adoptAttributes(pdata, cdata)
		return out, nil
	}
	out := newUnstructuredGrid(pts, cells)
	out.adoptAttributes(pdata, cdata)
	return out, nil
}

// polygonCellType classifies a polygon by vertex count.
func polygonCellType(n int) CellType {
	switch n {
	case 3:
		return CellTriangle
	case 4:
		return CellQuad
	}
	return CellPolygon
}

// implicitDistances returns the signed distance from each point to a
// surface, negative inside (sign taken from the closest triangle's normal).
func implicitDistances(pts []r3.Vec, surface *PolyData) ([]float64, error) {
	tris, _ := surface.triangles()
	if len(tris) == 0 {
		return nil, fmt.Errorf("%w: surface has no polygonal cells", ErrMissingData)
	}
	spts := surface.Points()
	out := make([]float64, len(pts))
	for i, p := range pts {
		best := math.Inf(1)
		sign := 1.0
		for _, t := range tris {
			a, b, c := spts[t[0]], spts[t[1]], spts[t[2]]
			q := kernel.ClosestPointOnTriangle(p, a, b, c)
			dist := r3.Norm(r3.Sub(p, q))
			if dist < best {
				best = dist
				if r3.Dot(kernel.TriangleNormal(a, b, c), r3.Sub(p, q)) < 0 {
					sign = -1
				} else {
					sign = 1
				}
			}
		}
		out[i] = sign * best
	}
	return out, nil
}

// finishInplace applies the inplace convention: with inplace set the result
// state is copied onto the receiver, which fails with ErrInvalidValue when
// the filter changed the dataset type.
func finishInplace(ds, out DataSet, inplace bool) (DataSet, error) {
	if !inplace {
		return out, nil
	}
	if err := ds.copyFrom(out); err != nil {
		return nil, err
	}
	return ds, nil
}
