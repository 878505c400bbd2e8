package pyvista

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTranslateFilter(t *testing.T) {
	cube := Cube(nil)
	out, err := Translate(cube, r3.Vec{X: 2, Y: -1}, nil)
	if err != nil {
		t.Fatalf("Translate error = %v", err)
	}
	want := Bounds{1.5, 2.5, -1.5, -0.5, -0.5, 0.5}
	if got := out.Bounds(); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	// The input is untouched without Inplace.
	if cube.Bounds() != (Bounds{-0.5, 0.5, -0.5, 0.5, -0.5, 0.5}) {
		t.Error("Translate modified its input")
	}
}

func TestTranslateInplace(t *testing.T) {
	cube := Cube(nil)
	if _, err := Translate(cube, r3.Vec{Z: 1}, &TransformOptions{Inplace: true}); err != nil {
		t.Fatalf("Translate error = %v", err)
	}
	if cube.Bounds()[4] != 0.5 {
		t.Errorf("inplace translate left zmin = %g, want 0.5", cube.Bounds()[4])
	}
}

func TestScaleFilter(t *testing.T) {
	cube := Cube(nil)
	out, err := Scale(cube, r3.Vec{X: 2, Y: 3, Z: 4}, nil)
	if err != nil {
		t.Fatalf("Scale error = %v", err)
	}
	if got := out.Bounds().Size(); !vecNear(got, r3.Vec{X: 2, Y: 3, Z: 4}, 1e-9) {
		t.Errorf("scaled size = %v, want (2, 3, 4)", got)
	}
}

func TestRotateFilters(t *testing.T) {
	pd := NewPolyData([]r3.Vec{{X: 1}})
	tests := []struct {
		name string
		run  func() (DataSet, error)
		want r3.Vec
	}{
		{"z by 90", func() (DataSet, error) { return RotateZ(pd, 90, nil) }, r3.Vec{Y: 1}},
		{"y by 90", func() (DataSet, error) { return RotateY(pd, 90, nil) }, r3.Vec{Z: -1}},
		{"x leaves x alone", func() (DataSet, error) { return RotateX(pd, 90, nil) }, r3.Vec{X: 1}},
		{"vector axis", func() (DataSet, error) { return RotateVector(pd, r3.Vec{Z: 3}, 180, nil) }, r3.Vec{X: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run()
			if err != nil {
				t.Fatalf("rotate error = %v", err)
			}
			if got := out.Points()[0]; !vecNear(got, tt.want, 1e-9) {
				t.Errorf("rotated point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAboutPoint(t *testing.T) {
	pd := NewPolyData([]r3.Vec{{X: 2}})
	center := r3.Vec{X: 1}
	out, err := RotateZ(pd, 180, &RotateOptions{Point: &center})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Points()[0]; !vecNear(got, r3.Vec{}, 1e-9) {
		t.Errorf("rotated point = %v, want origin", got)
	}
}

func TestReflectFilter(t *testing.T) {
	pd := NewPolyData([]r3.Vec{{X: 1, Y: 2}, {X: 3, Y: -1}})
	out, err := Reflect(pd, r3.Vec{X: 1}, nil)
	if err != nil {
		t.Fatalf("Reflect error = %v", err)
	}
	if out.NumPoints() != 2 || out.NumCells() != 2 {
		t.Fatal("reflection changed counts")
	}
	if got := out.Points()[0]; !vecNear(got, r3.Vec{X: -1, Y: 2}, 1e-9) {
		t.Errorf("reflected point = %v, want (-1, 2, 0)", got)
	}
}

func TestFlip(t *testing.T) {
	// Flips default to the dataset center, so the bounds survive.
	cube := Cube(&CubeOptions{Center: r3.Vec{X: 2}})
	out, err := FlipX(cube, nil)
	if err != nil {
		t.Fatalf("FlipX error = %v", err)
	}
	if out.Bounds() != cube.Bounds() {
		t.Errorf("FlipX about the center changed bounds: %v -> %v", cube.Bounds(), out.Bounds())
	}
}

func TestApplyTransformVectors(t *testing.T) {
	pd := NewPolyData([]r3.Vec{{}, {X: 1}})
	if err := pd.PointData().SetVectors("v", []r3.Vec{{X: 1}, {X: 1}}); err != nil {
		t.Fatal(err)
	}
	tr := NewTransform().RotateZ(90)
	out, err := ApplyTransform(pd, tr, &TransformOptions{TransformAllVectors: true})
	if err != nil {
		t.Fatalf("ApplyTransform error = %v", err)
	}
	f, _ := out.PointData().Get("v")
	if got := f.Vec(0); !vecNear(got, r3.Vec{Y: 1}, 1e-9) {
		t.Errorf("transformed vector = %v, want (0, 1, 0)", got)
	}
}

func TestTransformDerivedGridChangesType(t *testing.T) {
	g := unitVolume(t)
	out, err := RotateZ(g, 45, nil)
	if err != nil {
		t.Fatalf("RotateZ error = %v", err)
	}
	// A rotated uniform grid cannot stay axis-aligned.
	if _, ok := out.(*StructuredGrid); !ok {
		t.Fatalf("rotated grid = %T, want *StructuredGrid", out)
	}
	// And therefore cannot be rotated in place.
	if _, err := RotateZ(g, 45, &RotateOptions{Inplace: true}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("inplace rotate error = %v, want ErrInvalidValue", err)
	}
}

func TestWarpByScalar(t *testing.T) {
	plane := Plane(nil)
	vals := make([]float64, plane.NumPoints())
	for i := range vals {
		vals[i] = 2
	}
	if err := plane.PointData().SetScalars("h", vals); err != nil {
		t.Fatal(err)
	}
	out, err := WarpByScalar(plane, &WarpByScalarOptions{Factor: 0.5})
	if err != nil {
		t.Fatalf("WarpByScalar error = %v", err)
	}
	// Every point moves 2 * 0.5 along the default +z normal.
	for _, p := range out.Points() {
		if math.Abs(p.Z-1) > 1e-9 {
			t.Fatalf("warped z = %g, want 1", p.Z)
		}
	}

	if _, err := WarpByScalar(plane, &WarpByScalarOptions{Scalars: "missing"}); !errors.Is(err, ErrMissingData) {
		t.Errorf("missing scalars error = %v, want ErrMissingData", err)
	}
}

func TestWarpByVector(t *testing.T) {
	pd := NewPolyData([]r3.Vec{{}, {X: 1}})
	if err := pd.PointData().SetVectors("v", []r3.Vec{{Z: 1}, {Z: 2}}); err != nil {
		t.Fatal(err)
	}
	out, err := WarpByVector(pd, &WarpByVectorOptions{Factor: 2})
	if err != nil {
		t.Fatalf("WarpByVector error = %v", err)
	}
	if got := out.Points()[1]; !vecNear(got, r3.Vec{X: 1, Z: 4}, 1e-9) {
		t.Errorf("warped point = %v, want (1, 0, 4)", got)
	}

	// A non-3-component array cannot drive the warp.
	if err := pd.PointData().SetScalars("s", []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := WarpByVector(pd, &WarpByVectorOptions{Vectors: "s"}); err == nil {
		t.Error("scalar-driven warp should fail")
	}
}
