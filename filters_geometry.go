package pyvista

import (
	"fmt"
	"sort"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExtractSurface returns the outer surface: the boundary faces of volume
// cells (faces used by exactly one cell) plus all lower-dimensional cells.
func ExtractSurface(ds DataSet) (*PolyData, error) {
	type face struct {
		ring   []int
		parent int
	}
	seen := make(map[string][]face)
	keyOf := func(ring []int) string {
		s := append([]int(nil), ring...)
		sort.Ints(s)
		return fmt.Sprint(s)
	}
	var passthrough []struct {
		ct     CellType
		conn   []int
		parent int
	}
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		if ct.Dimension() < 3 {
			passthrough = append(passthrough, struct {
				ct     CellType
				conn   []int
				parent int
			}{ct, append([]int(nil), conn...), ci})
			continue
		}
		for _, ring := range kernel.Faces(ct, conn) {
			k := keyOf(ring)
			seen[k] = append(seen[k], face{ring: ring, parent: ci})
		}
	}
	// Assemble in deterministic cell order: passthrough cells first, then
	// boundary faces ordered by parent cell.
	var boundary []face
	for _, fs := range seen {
		if len(fs) == 1 {
			boundary = append(boundary, fs[0])
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		if boundary[i].parent != boundary[j].parent {
			return boundary[i].parent < boundary[j].parent
		}
		return fmt.Sprint(boundary[i].ring) < fmt.Sprint(boundary[j].ring)
	})

	remap := make(map[int]int)
	var order []int
	mapConn := func(conn []int) []int {
		out := make([]int, len(conn))
		for i, p := range conn {
			idx, ok := remap[p]
			if !ok {
				idx = len(order)
				remap[p] = idx
				order = append(order, p)
			}
			out[i] = idx
		}
		return out
	}
	cells := &Cells{}
	var parent []int
	for _, pc := range passthrough {
		cells.Append(pc.ct, mapConn(pc.conn)...)
		parent = append(parent, pc.parent)
	}
	for _, f := range boundary {
		cells.Append(polygonCellType(len(f.ring)), mapConn(f.ring)...)
		parent = append(parent, f.parent)
	}
	pts := ds.Points()
	npts := make([]r3.Vec, len(order))
	for i, src := range order {
		npts[i] = pts[src]
	}
	out := newPolyData(npts, cells)
	out.adoptAttributes(
		ds.PointData().subset(len(order), order),
		ds.CellData().subset(len(parent), parent),
	)
	return out, nil
}

// ExtractGeometry returns the dataset's geometry as a surface, optionally
// restricted to the cells whose points all lie inside bounds.
func ExtractGeometry(ds DataSet, bounds *Bounds) (*PolyData, error) {
	src := ds
	if bounds != nil {
		pts := ds.Points()
		var kept []int
		for ci := 0; ci < ds.NumCells(); ci++ {
			_, conn := ds.cell(ci)
			inside := true
			for _, p := range conn {
				if !bounds.Contains(pts[p]) {
					inside = false
					break
				}
			}
			if inside {
				kept = append(kept, ci)
			}
		}
		src = extractCells(ds, kept)
	}
	return ExtractSurface(src)
}

// ExtractAllEdges returns every unique cell edge as a line cell. Point
// arrays are carried; cell arrays are dropped since edges are shared.
func ExtractAllEdges(ds DataSet) (*PolyData, error) {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		for _, e := range kernel.Edges(ct, conn) {
			k := e
			if k[0] > k[1] {
				k[0], k[1] = k[1], k[0]
			}
			if !seen[k] {
				seen[k] = true
				edges = append(edges, k)
			}
		}
	}
	remap := make(map[int]int)
	var order []int
	cells := &Cells{}
	for _, e := range edges {
		conn := make([]int, 2)
		for i, p := range [2]int{e[0], e[1]} {
			idx, ok := remap[p]
			if !ok {
				idx = len(order)
				remap[p] = idx
				order = append(order, p)
			}
			conn[i] = idx
		}
		cells.Append(CellLine, conn...)
	}
	pts := ds.Points()
	npts := make([]r3.Vec, len(order))
	for i, src := range order {
		npts[i] = pts[src]
	}
	out := newPolyData(npts, cells)
	out.adoptAttributes(
		ds.PointData().subset(len(order), order),
		newFieldSet(AssocCell, cells.NumCells()),
	)
	return out, nil
}

// Outline returns the twelve edges of the bounding box as line cells.
func Outline(ds DataSet) *PolyData {
	return outlineOfBounds(ds.Bounds())
}

func outlineOfBounds(b Bounds) *PolyData {
	corners := b.Corners()
	cells := &Cells{}
	for _, e := range boxEdges {
		cells.Append(CellLine, e[0], e[1])
	}
	return newPolyData(corners[:], cells)
}

// boxEdges lists the edges of the x-fastest corner ordering.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// OutlineCornersOptions configures OutlineCorners.
type OutlineCornersOptions struct {
	// Factor is the corner segment length as a fraction of each box edge;
	// zero means 0.2.
	Factor float64
}

// OutlineCorners returns short line segments marking the corners of the
// bounding box.
func OutlineCorners(ds DataSet, o *OutlineCornersOptions) *PolyData {
	if o == nil {
		o = &OutlineCornersOptions{}
	}
	factor := o.Factor
	if factor <= 0 {
		factor = 0.2
	}
	return outlineCornersOfBounds(ds.Bounds(), factor)
}

func outlineCornersOfBounds(b Bounds, factor float64) *PolyData {
	size := b.Size()
	corners := b.Corners()
	var pts []r3.Vec
	cells := &Cells{}
	for i, c := range corners {
		// Each corner grows three whiskers pointing back into the box.
		dir := r3.Vec{X: 1, Y: 1, Z: 1}
		if i&1 == 1 {
			dir.X = -1
		}
		if (i>>1)&1 == 1 {
			dir.Y = -1
		}
		if (i>>2)&1 == 1 {
			dir.Z = -1
		}
		base := len(pts)
		pts = append(pts, c,
			r3.Add(c, r3.Vec{X: dir.X * factor * size.X}),
			r3.Add(c, r3.Vec{Y: dir.Y * factor * size.Y}),
			r3.Add(c, r3.Vec{Z: dir.Z * factor * size.Z}),
		)
		cells.Append(CellLine, base, base+1)
		cells.Append(CellLine, base, base+2)
		cells.Append(CellLine, base, base+3)
	}
	return newPolyData(pts, cells)
}

// TriangulateOptions configures Triangulate.
type TriangulateOptions struct {
	Inplace bool
}

// Triangulate decomposes every cell into simplices: surface cells into
// triangles and volume cells into tetrahedra. PolyData stays PolyData;
// other variants become UnstructuredGrids.
func Triangulate(ds DataSet, o *TriangulateOptions) (DataSet, error) {
	if o == nil {
		o = &TriangulateOptions{}
	}
	cells := &Cells{}
	var parent []int
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		switch ct.Dimension() {
		case 3:
			for _, t := range kernel.Tetrahedralize(ct, conn) {
				cells.Append(CellTetra, t[:]...)
				parent = append(parent, ci)
			}
		case 2:
			for _, t := range kernel.Triangulate(ct, conn) {
				cells.Append(CellTriangle, t[:]...)
				parent = append(parent, ci)
			}
		default:
			cells.Append(ct, conn...)
			parent = append(parent, ci)
		}
	}
	pts := append([]r3.Vec(nil), ds.Points()...)
	cdata := ds.CellData().subset(len(parent), parent)
	var out DataSet
	if _, ok := ds.(*PolyData); ok {
		p := newPolyData(pts, cells)
		p.adoptAttributes(ds.PointData().Copy(), cdata)
		out = p
	} else {
		u := newUnstructuredGrid(pts, cells)
		u.adoptAttributes(ds.PointData().Copy(), cdata)
		out = u
	}
	return finishInplace(ds, out, o.Inplace)
}

// ShrinkOptions configures Shrink.
type ShrinkOptions struct {
	// Factor scales each cell about its centroid; zero means 1 (no change).
	// Values outside (0, 1] are invalid.
	Factor float64
}

// Shrink pulls each cell's points toward the cell centroid, detaching cells
// from one another. The result is always an UnstructuredGrid.
func Shrink(ds DataSet, o *ShrinkOptions) (*UnstructuredGrid, error) {
	if o == nil {
		o = &ShrinkOptions{}
	}
	factor := o.Factor
	if factor == 0 {
		factor = 1
	}
	if factor < 0 || factor > 1 {
		return nil, fmt.Errorf("%w: shrink factor %g outside (0, 1]", ErrInvalidValue, factor)
	}
	pts := ds.Points()
	var npts []r3.Vec
	var pointSrc []int
	cells := &Cells{}
	for ci := 0; ci < ds.NumCells(); ci++ {
		ct, conn := ds.cell(ci)
		var c r3.Vec
		for _, p := range conn {
			c = r3.Add(c, pts[p])
		}
		c = r3.Scale(1/float64(len(conn)), c)
		mapped := make([]int, len(conn))
		for i, p := range conn {
			mapped[i] = len(npts)
			npts = append(npts, r3.Add(c, r3.Scale(factor, r3.Sub(pts[p], c))))
			pointSrc = append(pointSrc, p)
		}
		cells.Append(ct, mapped...)
	}
	out := newUnstructuredGrid(npts, cells)
	out.adoptAttributes(
		ds.PointData().subset(len(pointSrc), pointSrc),
		ds.CellData().Copy(),
	)
	return out, nil
}

// SmoothOptions configures Smooth.
type SmoothOptions struct {
	// Iterations is the number of relaxation passes; zero means 20.
	Iterations int
	// RelaxationFactor is the per-pass step toward the neighbor average;
	// zero means 0.01.
	RelaxationFactor float64
	// SmoothBoundary also moves points on open edges, which otherwise stay
	// fixed.
	SmoothBoundary bool
	Inplace        bool
}

// Smooth applies Laplacian smoothing to a surface: each pass moves every
// point a fraction of the way toward the average of its edge neighbors.
func Smooth(pd *PolyData, o *SmoothOptions) (*PolyData, error) {
	if o == nil {
		o = &SmoothOptions{}
	}
	iters := o.Iterations
	if iters <= 0 {
		iters = 20
	}
	relax := o.RelaxationFactor
	if relax == 0 {
		relax = 0.01
	}
	neighbors := make(map[int]map[int]bool)
	edgeUse := make(map[[2]int]int)
	link := func(a, b int) {
		if neighbors[a] == nil {
			neighbors[a] = make(map[int]bool)
		}
		neighbors[a][b] = true
	}
	for ci := 0; ci < pd.NumCells(); ci++ {
		ct, conn := pd.Cell(ci)
		if ct.Dimension() != 2 {
			continue
		}
		for _, e := range kernel.Edges(ct, conn) {
			link(e[0], e[1])
			link(e[1], e[0])
			k := e
			if k[0] > k[1] {
				k[0], k[1] = k[1], k[0]
			}
			edgeUse[k]++
		}
	}
	fixed := make(map[int]bool)
	if !o.SmoothBoundary {
		for e, uses := range edgeUse {
			if uses == 1 {
				fixed[e[0]] = true
				fixed[e[1]] = true
			}
		}
	}
	out := pd.Copy()
	cur := out.Points()
	next := make([]r3.Vec, len(cur))
	for it := 0; it < iters; it++ {
		copy(next, cur)
		for p, nbrs := range neighbors {
			if fixed[p] || len(nbrs) == 0 {
				continue
			}
			var avg r3.Vec
			for nb := range nbrs {
				avg = r3.Add(avg, cur[nb])
			}
			avg = r3.Scale(1/float64(len(nbrs)), avg)
			next[p] = r3.Add(cur[p], r3.Scale(relax, r3.Sub(avg, cur[p])))
		}
		copy(cur, next)
	}
	if o.Inplace {
		if err := pd.copyFrom(out); err != nil {
			return nil, err
		}
		return pd, nil
	}
	return out, nil
}

// Strip merges runs of adjacent triangles into triangle strips. Non-surface
// cells pass through unchanged; quads and polygons are triangulated first.
func Strip(pd *PolyData) (*PolyData, error) {
	tris, triParent := pd.triangles()
	cells := &Cells{}
	var parent []int
	for ci := 0; ci < pd.NumCells(); ci++ {
		ct, conn := pd.Cell(ci)
		if ct.Dimension() != 2 {
			cells.Append(ct, conn...)
			parent = append(parent, ci)
		}
	}
	// Edge adjacency between triangles.
	edgeKey := func(a, b int) [2]int {
		if a > b {
			a, b = b, a
		}
		return [2]int{a, b}
	}
	byEdge := make(map[[2]int][]int)
	for ti, t := range tris {
		for i := 0; i < 3; i++ {
			byEdge[edgeKey(t[i], t[(i+1)%3])] = append(byEdge[edgeKey(t[i], t[(i+1)%3])], ti)
		}
	}
	used := make([]bool, len(tris))
	third := func(t [3]int, a, b int) (int, bool) {
		for _, v := range t {
			if v != a && v != b {
				return v, true
			}
		}
		return 0, false
	}
	nextTri := func(a, b, not int) int {
		for _, ti := range byEdge[edgeKey(a, b)] {
			if !used[ti] && ti != not {
				return ti
			}
		}
		return -1
	}
	for ti := range tris {
		if used[ti] {
			continue
		}
		used[ti] = true
		t := tris[ti]
		strip := []int{t[0], t[1], t[2]}
		last := ti
		for {
			a, b := strip[len(strip)-2], strip[len(strip)-1]
			ni := nextTri(a, b, last)
			if ni < 0 {
				break
			}
			v, ok := third(tris[ni], a, b)
			if !ok {
				break
			}
			used[ni] = true
			strip = append(strip, v)
			last = ni
		}
		if len(strip) == 3 {
			cells.Append(CellTriangle, strip...)
		} else {
			cells.Append(CellTriangleStrip, strip...)
		}
		parent = append(parent, triParent[ti])
	}
	out := newPolyData(append([]r3.Vec(nil), pd.Points()...), cells)
	out.adoptAttributes(
		pd.PointData().Copy(),
		pd.CellData().subset(len(parent), parent),
	)
	return out, nil
}
