package pyvista

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestExtractSurface(t *testing.T) {
	g := unitVolume(t) // 2x2x2 cells of voxels
	surf, err := ExtractSurface(g)
	if err != nil {
		t.Fatalf("ExtractSurface error = %v", err)
	}
	// 4 boundary quads per box face.
	if surf.NumCells() != 24 {
		t.Errorf("NumCells = %d, want 24", surf.NumCells())
	}
	// All lattice points except the single interior one.
	if surf.NumPoints() != 26 {
		t.Errorf("NumPoints = %d, want 26", surf.NumPoints())
	}
	if got := surf.NumOpenEdges(); got != 0 {
		t.Errorf("surface has %d open edges, want 0", got)
	}
}

func TestExtractSurfaceCarriesPointData(t *testing.T) {
	g := unitVolume(t)
	vals := make([]float64, g.NumPoints())
	for i, p := range g.Points() {
		vals[i] = p.X + p.Y + p.Z
	}
	if err := g.PointData().SetScalars("s", vals); err != nil {
		t.Fatal(err)
	}
	surf, err := ExtractSurface(g)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := surf.PointData().Get("s")
	if !ok {
		t.Fatal("surface dropped the point array")
	}
	for i, p := range surf.Points() {
		if math.Abs(f.Value(i)-(p.X+p.Y+p.Z)) > 1e-9 {
			t.Fatalf("point %d scalar mismatch", i)
		}
	}
}

func TestExtractSurfacePassesLowerCells(t *testing.T) {
	// Lines and vertices pass straight through.
	line := Line(r3.Vec{}, r3.Vec{X: 1}, 2)
	surf, err := ExtractSurface(line)
	if err != nil {
		t.Fatal(err)
	}
	if surf.NumCells() != 1 {
		t.Errorf("NumCells = %d, want the polyline preserved", surf.NumCells())
	}
}

func TestExtractGeometry(t *testing.T) {
	g := unitVolume(t)
	b := Bounds{0, 0.5, 0, 1, 0, 1}
	out, err := ExtractGeometry(g, &b)
	if err != nil {
		t.Fatalf("ExtractGeometry error = %v", err)
	}
	if out.NumCells() == 0 {
		t.Fatal("nothing extracted")
	}
	for _, p := range out.Points() {
		if !b.Contains(p) {
			t.Fatalf("point %v outside the extraction bounds", p)
		}
	}
}

func TestExtractAllEdges(t *testing.T) {
	g, err := NewUniformGrid([3]int{2, 2, 2}, r3.Vec{X: 1, Y: 1, Z: 1}, r3.Vec{})
	if err != nil {
		t.Fatal(err)
	}
	edges, err := ExtractAllEdges(g)
	if err != nil {
		t.Fatalf("ExtractAllEdges error = %v", err)
	}
	if edges.NumCells() != 12 {
		t.Errorf("single voxel has %d edges, want 12", edges.NumCells())
	}
	for i := 0; i < edges.NumCells(); i++ {
		if ct, _ := edges.Cell(i); ct != CellLine {
			t.Fatalf("cell %d type = %v, want line", i, ct)
		}
	}
}

func TestOutline(t *testing.T) {
	sphere := Sphere(nil)
	out := Outline(sphere)
	if out.NumPoints() != 8 || out.NumCells() != 12 {
		t.Fatalf("outline has %d points, %d cells, want 8, 12", out.NumPoints(), out.NumCells())
	}
	if got, want := out.Bounds(), sphere.Bounds(); got != want {
		t.Errorf("outline bounds = %v, want %v", got, want)
	}
}

func TestOutlineCorners(t *testing.T) {
	sphere := Sphere(nil)
	out := OutlineCorners(sphere, nil)
	if out.NumPoints() != 32 || out.NumCells() != 24 {
		t.Fatalf("corner outline has %d points, %d cells, want 32, 24", out.NumPoints(), out.NumCells())
	}
	if got, want := out.Bounds(), sphere.Bounds(); got != want {
		t.Errorf("corner outline bounds = %v, want %v", got, want)
	}
}

func TestTriangulate(t *testing.T) {
	cube := Cube(nil)
	out, err := Triangulate(cube, nil)
	if err != nil {
		t.Fatalf("Triangulate error = %v", err)
	}
	pd, ok := out.(*PolyData)
	if !ok {
		t.Fatalf("Triangulate(*PolyData) = %T, want *PolyData", out)
	}
	if !pd.IsAllTriangles() || pd.NumCells() != 12 {
		t.Errorf("NumCells = %d, all triangles = %v", pd.NumCells(), pd.IsAllTriangles())
	}

	g := unitVolume(t)
	vout, err := Triangulate(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	ug, ok := vout.(*UnstructuredGrid)
	if !ok {
		t.Fatalf("Triangulate(grid) = %T, want *UnstructuredGrid", vout)
	}
	// Six tets per voxel.
	if ug.NumCells() != 48 {
		t.Errorf("NumCells = %d, want 48", ug.NumCells())
	}
	if math.Abs(ug.Volume()-1) > 1e-9 {
		t.Errorf("tetrahedralized volume = %g, want 1", ug.Volume())
	}
}

func TestShrink(t *testing.T) {
	cube := Cube(nil)
	out, err := Shrink(cube, &ShrinkOptions{Factor: 0.5})
	if err != nil {
		t.Fatalf("Shrink error = %v", err)
	}
	// Every cell gets its own detached copy of its points.
	if out.NumPoints() != 24 {
		t.Errorf("NumPoints = %d, want 24 (6 quads x 4)", out.NumPoints())
	}
	if out.NumCells() != 6 {
		t.Errorf("NumCells = %d, want 6", out.NumCells())
	}
	// Shrinking halves each face's extent.
	ct, conn := out.Cell(0)
	if ct != CellQuad {
		t.Fatalf("cell type = %v, want quad", ct)
	}
	pts := out.Points()
	d := r3.Norm(r3.Sub(pts[conn[0]], pts[conn[1]]))
	if math.Abs(d-0.5) > 1e-9 {
		t.Errorf("shrunk edge length = %g, want 0.5", d)
	}

	tests := []float64{-0.1, 1.5}
	for _, f := range tests {
		if _, err := Shrink(cube, &ShrinkOptions{Factor: f}); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Shrink(%g) error = %v, want ErrInvalidValue", f, err)
		}
	}
}

func TestSmooth(t *testing.T) {
	// A noisy sphere relaxes toward a smaller, smoother one.
	sphere := Sphere(&SphereOptions{ThetaResolution: 12, PhiResolution: 12})
	out, err := Smooth(sphere, &SmoothOptions{Iterations: 50, RelaxationFactor: 0.1})
	if err != nil {
		t.Fatalf("Smooth error = %v", err)
	}
	if out.NumPoints() != sphere.NumPoints() || out.NumCells() != sphere.NumCells() {
		t.Fatal("smoothing changed the topology")
	}
	if out.Bounds().Diagonal() >= sphere.Bounds().Diagonal() {
		t.Error("Laplacian smoothing should contract a closed surface")
	}
}

func TestSmoothKeepsBoundary(t *testing.T) {
	plane := Plane(&PlaneOptions{IResolution: 4, JResolution: 4})
	before := plane.Bounds()
	out, err := Smooth(plane, &SmoothOptions{Iterations: 30, RelaxationFactor: 0.2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != before {
		t.Errorf("open-edge points moved: %v -> %v", before, out.Bounds())
	}
}

func TestStrip(t *testing.T) {
	sphere := Sphere(nil)
	tri, err := Triangulate(sphere, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Strip(tri.(*PolyData))
	if err != nil {
		t.Fatalf("Strip error = %v", err)
	}
	if out.NumCells() >= sphere.NumCells() {
		t.Errorf("stripping left %d cells for %d triangles", out.NumCells(), sphere.NumCells())
	}
	// The strips must cover exactly the original triangles.
	var covered int
	for i := 0; i < out.NumCells(); i++ {
		ct, conn := out.Cell(i)
		switch ct {
		case CellTriangleStrip:
			covered += len(conn) - 2
		case CellTriangle:
			covered++
		default:
			t.Fatalf("unexpected cell type %v", ct)
		}
	}
	if covered != sphere.NumCells() {
		t.Errorf("strips cover %d triangles, want %d", covered, sphere.NumCells())
	}
}
