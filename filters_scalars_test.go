package pyvista

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestElevationDefaults(t *testing.T) {
	g := unitVolume(t)
	out, err := Elevation(g, nil)
	if err != nil {
		t.Fatalf("Elevation error = %v", err)
	}
	f, ok := out.PointData().Get("Elevation")
	if !ok {
		t.Fatal("Elevation array missing")
	}
	lo, hi := f.Range()
	if lo != 0 || hi != 1 {
		t.Errorf("Elevation range = (%g, %g), want (0, 1)", lo, hi)
	}
	// The projection is the z coordinate itself by default.
	for i, p := range out.Points() {
		if math.Abs(f.Value(i)-p.Z) > 1e-9 {
			t.Fatalf("Elevation(%v) = %g, want %g", p, f.Value(i), p.Z)
		}
	}
	if got := out.PointData().ActiveScalarsName(); got != "Elevation" {
		t.Errorf("ActiveScalarsName = %q, want Elevation", got)
	}
}

func TestElevationKeepActiveScalars(t *testing.T) {
	g := unitVolume(t)
	if err := g.PointData().SetScalars("keepme", make([]float64, g.NumPoints())); err != nil {
		t.Fatal(err)
	}
	out, err := Elevation(g, &ElevationOptions{KeepActiveScalars: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.PointData().ActiveScalarsName(); got != "keepme" {
		t.Errorf("ActiveScalarsName = %q, want keepme", got)
	}
}

func TestElevationCustomAxisAndRange(t *testing.T) {
	g := unitVolume(t)
	low := r3.Vec{}
	high := r3.Vec{X: 1}
	out, err := Elevation(g, &ElevationOptions{
		LowPoint:    &low,
		HighPoint:   &high,
		ScalarRange: &[2]float64{0, 100},
	})
	if err != nil {
		t.Fatal(err)
	}
	f, _ := out.PointData().Get("Elevation")
	for i, p := range out.Points() {
		if math.Abs(f.Value(i)-100*p.X) > 1e-9 {
			t.Fatalf("Elevation(%v) = %g, want %g", p, f.Value(i), 100*p.X)
		}
	}
}

func TestElevationClamps(t *testing.T) {
	g := unitVolume(t)
	low := r3.Vec{Z: 0.25}
	high := r3.Vec{Z: 0.75}
	out, err := Elevation(g, &ElevationOptions{LowPoint: &low, HighPoint: &high})
	if err != nil {
		t.Fatal(err)
	}
	f, _ := out.PointData().Get("Elevation")
	lo, hi := f.Range()
	if lo < 0.25-1e-12 || hi > 0.75+1e-12 {
		t.Errorf("Elevation range = (%g, %g), want clamped to [0.25, 0.75]", lo, hi)
	}
}

func TestTextureMapToPlane(t *testing.T) {
	plane := Plane(nil)
	out, err := TextureMapToPlane(plane, nil)
	if err != nil {
		t.Fatalf("TextureMapToPlane error = %v", err)
	}
	f, ok := out.PointData().Get("Texture Coordinates")
	if !ok {
		t.Fatal("Texture Coordinates missing")
	}
	if f.Components() != 2 {
		t.Fatalf("texture coordinates have %d components, want 2", f.Components())
	}
	lo, hi := f.Range()
	if lo < -1e-9 || hi > math.Sqrt2+1e-9 {
		t.Errorf("uv magnitudes in (%g, %g), want within [0, sqrt(2)]", lo, hi)
	}
}

func TestTextureMapToSphere(t *testing.T) {
	sphere := Sphere(nil)
	out, err := TextureMapToSphere(sphere, nil)
	if err != nil {
		t.Fatalf("TextureMapToSphere error = %v", err)
	}
	f, ok := out.PointData().Get("Texture Coordinates")
	if !ok {
		t.Fatal("Texture Coordinates missing")
	}
	for i := 0; i < f.NumTuples(); i++ {
		u, v := f.At(i, 0), f.At(i, 1)
		if u < -1e-9 || u > 1+1e-9 || v < -1e-9 || v > 1+1e-9 {
			t.Fatalf("uv out of range: (%g, %g)", u, v)
		}
	}
}

func TestComputeCellSizes(t *testing.T) {
	g := unitVolume(t)
	out, err := ComputeCellSizes(g, nil)
	if err != nil {
		t.Fatalf("ComputeCellSizes error = %v", err)
	}
	vol, ok := out.CellData().Get("Volume")
	if !ok {
		t.Fatal("Volume array missing")
	}
	for i := 0; i < vol.NumTuples(); i++ {
		if math.Abs(vol.Value(i)-0.125) > 1e-9 {
			t.Fatalf("cell %d volume = %g, want 0.125", i, vol.Value(i))
		}
	}

	square, err := NewPolyDataFromFaces(unitSquare(), []int{4, 0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	out2, err := ComputeCellSizes(square, &CellSizesOptions{Area: true})
	if err != nil {
		t.Fatal(err)
	}
	area, ok := out2.CellData().Get("Area")
	if !ok {
		t.Fatal("Area array missing")
	}
	if math.Abs(area.Value(0)-1) > 1e-9 {
		t.Errorf("quad area = %g, want 1", area.Value(0))
	}

	line := Line(r3.Vec{}, r3.Vec{X: 3}, 3)
	out3, err := ComputeCellSizes(line, &CellSizesOptions{Length: true})
	if err != nil {
		t.Fatal(err)
	}
	length, ok := out3.CellData().Get("Length")
	if !ok {
		t.Fatal("Length array missing")
	}
	if math.Abs(length.Value(0)-3) > 1e-9 {
		t.Errorf("polyline length = %g, want 3", length.Value(0))
	}
}

func TestCellCenters(t *testing.T) {
	g := unitVolume(t)
	if err := g.CellData().SetScalars("c", make([]float64, g.NumCells())); err != nil {
		t.Fatal(err)
	}
	out, err := CellCenters(g, nil)
	if err != nil {
		t.Fatalf("CellCenters error = %v", err)
	}
	if out.NumPoints() != g.NumCells() {
		t.Fatalf("NumPoints = %d, want one per cell (%d)", out.NumPoints(), g.NumCells())
	}
	if out.NumCells() != g.NumCells() {
		t.Errorf("NumCells = %d, want vertex cells by default", out.NumCells())
	}
	// Cell data lands on the output points.
	if !out.PointData().Has("c") {
		t.Error("cell array not carried to the center points")
	}
	// First cell spans [0, 0.5]^3, centered at 0.25.
	want := r3.Vec{X: 0.25, Y: 0.25, Z: 0.25}
	if got := out.Points()[0]; r3.Norm(r3.Sub(got, want)) > 1e-9 {
		t.Errorf("first center = %v, want %v", got, want)
	}

	bare, err := CellCenters(g, &CellCentersOptions{NoVertexCells: true})
	if err != nil {
		t.Fatal(err)
	}
	if bare.NumCells() != 0 {
		t.Errorf("NoVertexCells NumCells = %d, want 0", bare.NumCells())
	}
}

func TestCellDataToPointData(t *testing.T) {
	g := unitVolume(t)
	cells := make([]float64, g.NumCells())
	for i := range cells {
		cells[i] = 2
	}
	if err := g.CellData().SetScalars("c", cells); err != nil {
		t.Fatal(err)
	}
	out, err := CellDataToPointData(g, nil)
	if err != nil {
		t.Fatalf("CellDataToPointData error = %v", err)
	}
	f, ok := out.PointData().Get("c")
	if !ok {
		t.Fatal("converted array missing from point data")
	}
	// A constant field averages to itself.
	for i := 0; i < f.NumTuples(); i++ {
		if math.Abs(f.Value(i)-2) > 1e-9 {
			t.Fatalf("point %d value = %g, want 2", i, f.Value(i))
		}
	}
	if out.CellData().Has("c") {
		t.Error("source cell array kept without PassData")
	}

	kept, err := CellDataToPointData(g, &PassDataOptions{PassData: true})
	if err != nil {
		t.Fatal(err)
	}
	if !kept.CellData().Has("c") {
		t.Error("PassData did not keep the source array")
	}
}

func TestPointDataToCellData(t *testing.T) {
	g := unitVolume(t)
	vals := make([]float64, g.NumPoints())
	for i, p := range g.Points() {
		vals[i] = p.Z
	}
	if err := g.PointData().SetScalars("z", vals); err != nil {
		t.Fatal(err)
	}
	out, err := PointDataToCellData(g, nil)
	if err != nil {
		t.Fatalf("PointDataToCellData error = %v", err)
	}
	f, ok := out.CellData().Get("z")
	if !ok {
		t.Fatal("converted array missing from cell data")
	}
	// Bottom-layer cells average z over corners at 0 and 0.5.
	if math.Abs(f.Value(0)-0.25) > 1e-9 {
		t.Errorf("cell 0 mean = %g, want 0.25", f.Value(0))
	}
	if out.PointData().Has("z") {
		t.Error("source point array kept without PassData")
	}
}
