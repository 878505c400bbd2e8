package pyvista

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// columnGrid is a 3x3x3 unit-spacing grid whose point scalars are the x
// coordinate and whose cell scalars number the cells.
func columnGrid(t *testing.T) *UniformGrid {
	t.Helper()
	g, err := NewUniformGrid([3]int{3, 3, 3}, r3.Vec{X: 1, Y: 1, Z: 1}, r3.Vec{})
	if err != nil {
		t.Fatal(err)
	}
	vals := make([]float64, g.NumPoints())
	for i, p := range g.Points() {
		vals[i] = p.X
	}
	if err := g.PointData().SetScalars("x", vals); err != nil {
		t.Fatal(err)
	}
	cells := make([]float64, g.NumCells())
	for i := range cells {
		cells[i] = float64(i)
	}
	if err := g.CellData().SetScalars("cell_id", cells); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name string
		opts *ThresholdOptions
		want int
	}{
		// The grid has 8 cells in two x columns: points at x = 0, 1, 2.
		{"full range keeps everything", nil, 8},
		{"lower bound, any point passes", &ThresholdOptions{Value: []float64{1.5}}, 4},
		{"lower bound, all points must pass", &ThresholdOptions{Value: []float64{1.5}, AllScalars: true}, 0},
		{"lower bound at a lattice plane", &ThresholdOptions{Value: []float64{1}}, 8},
		{"band keeps one column", &ThresholdOptions{Value: []float64{1.5, 2}}, 4},
		{"invert drops the passing column", &ThresholdOptions{Value: []float64{1.5, 2}, Invert: true}, 8},
		{"cell scalars select directly", &ThresholdOptions{Scalars: "cell_id", Value: []float64{6}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := columnGrid(t)
			out, err := Threshold(g, tt.opts)
			if err != nil {
				t.Fatalf("Threshold error = %v", err)
			}
			if out.NumCells() != tt.want {
				t.Errorf("NumCells = %d, want %d", out.NumCells(), tt.want)
			}
		})
	}
}

func TestThresholdErrors(t *testing.T) {
	g := columnGrid(t)
	if _, err := Threshold(g, &ThresholdOptions{Value: []float64{1, 2, 3}}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("three values error = %v, want ErrInvalidValue", err)
	}
	if _, err := Threshold(g, &ThresholdOptions{Value: []float64{2, 1}}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("min > max error = %v, want ErrInvalidValue", err)
	}
	if _, err := Threshold(g, &ThresholdOptions{Scalars: "missing"}); !errors.Is(err, ErrMissingData) {
		t.Errorf("missing scalars error = %v, want ErrMissingData", err)
	}
	bare := unitVolume(t)
	if _, err := Threshold(bare, nil); !errors.Is(err, ErrMissingData) {
		t.Errorf("no active scalars error = %v, want ErrMissingData", err)
	}
}

func TestThresholdCarriesAttributes(t *testing.T) {
	g := columnGrid(t)
	out, err := Threshold(g, &ThresholdOptions{Value: []float64{1.5}})
	if err != nil {
		t.Fatal(err)
	}
	f, ok := out.PointData().Get("x")
	if !ok {
		t.Fatal("threshold dropped the point array")
	}
	for i, p := range out.Points() {
		if f.Value(i) != p.X {
			t.Fatalf("point %d scalar %g, coordinate %g", i, f.Value(i), p.X)
		}
	}
	if !out.CellData().Has("cell_id") {
		t.Error("threshold dropped the cell array")
	}
}

func TestThresholdPercent(t *testing.T) {
	g := columnGrid(t)
	// Scalar range is [0, 2]; half of it starts at 1, which every cell
	// touches.
	out, err := ThresholdPercent(g, nil)
	if err != nil {
		t.Fatalf("ThresholdPercent error = %v", err)
	}
	if out.NumCells() != 8 {
		t.Errorf("default NumCells = %d, want 8", out.NumCells())
	}
	// 80% keeps only the upper column.
	out, err = ThresholdPercent(g, &ThresholdPercentOptions{Percent: []float64{0.8}})
	if err != nil {
		t.Fatal(err)
	}
	if out.NumCells() != 4 {
		t.Errorf("NumCells = %d, want 4", out.NumCells())
	}
	// Values above one read as percentages.
	asPct, err := ThresholdPercent(g, &ThresholdPercentOptions{Percent: []float64{80}})
	if err != nil {
		t.Fatal(err)
	}
	if asPct.NumCells() != 4 {
		t.Errorf("percentage form NumCells = %d, want 4", asPct.NumCells())
	}

	if _, err := ThresholdPercent(g, &ThresholdPercentOptions{Percent: []float64{-0.2}}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative percent error = %v, want ErrInvalidValue", err)
	}
}

func TestContour(t *testing.T) {
	g := columnGrid(t)
	out, err := Contour(g, &ContourOptions{Values: []float64{0.5}})
	if err != nil {
		t.Fatalf("Contour error = %v", err)
	}
	if out.NumCells() == 0 {
		t.Fatal("contour produced no cells")
	}
	// The x = 0.5 isosurface of the scalar field f = x.
	for _, p := range out.Points() {
		if math.Abs(p.X-0.5) > 1e-9 {
			t.Fatalf("contour point %v off the isosurface", p)
		}
	}
	for i := 0; i < out.NumCells(); i++ {
		if ct, _ := out.Cell(i); ct != CellTriangle {
			t.Fatalf("cell %d type = %v, want triangle", i, ct)
		}
	}
}

func TestContourMultipleValues(t *testing.T) {
	g := columnGrid(t)
	out, err := Contour(g, &ContourOptions{Values: []float64{0.5, 1.5}})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[float64]bool{}
	for _, p := range out.Points() {
		seen[math.Round(p.X*2)/2] = true
	}
	if !seen[0.5] || !seen[1.5] {
		t.Errorf("isosurfaces at %v, want both 0.5 and 1.5", seen)
	}
}

func TestContourErrors(t *testing.T) {
	g := columnGrid(t)
	// Cell scalars cannot be contoured.
	if _, err := Contour(g, &ContourOptions{Scalars: "cell_id"}); !errors.Is(err, ErrArgumentType) {
		t.Errorf("cell scalars error = %v, want ErrArgumentType", err)
	}
	if _, err := Contour(g, &ContourOptions{Scalars: "missing"}); !errors.Is(err, ErrMissingData) {
		t.Errorf("missing scalars error = %v, want ErrMissingData", err)
	}
	bare := unitVolume(t)
	if _, err := Contour(bare, nil); !errors.Is(err, ErrMissingData) {
		t.Errorf("no active scalars error = %v, want ErrMissingData", err)
	}
}

func TestContourOutsideRangeIsEmpty(t *testing.T) {
	g := columnGrid(t)
	out, err := Contour(g, &ContourOptions{Values: []float64{99}})
	if err != nil {
		t.Fatal(err)
	}
	if out.NumPoints() != 0 || out.NumCells() != 0 {
		t.Errorf("out-of-range contour has %d points, %d cells", out.NumPoints(), out.NumCells())
	}
}
