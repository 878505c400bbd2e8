package pyvista

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestUniformGridFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)
	img.Set(0, 1, color.Black)
	img.Set(1, 1, color.Black)

	grid, err := UniformGridFromImage(img, nil)
	if err != nil {
		t.Fatalf("UniformGridFromImage error = %v", err)
	}
	if got := grid.Dimensions(); got != [3]int{2, 2, 1} {
		t.Fatalf("Dimensions = %v, want [2 2 1]", got)
	}
	f, ok := grid.PointData().Get("Intensity")
	if !ok {
		t.Fatal("Intensity missing")
	}
	if got := grid.PointData().ActiveScalarsName(); got != "Intensity" {
		t.Errorf("ActiveScalarsName = %q, want Intensity", got)
	}
	// Image row 0 lands at the top of the grid, so the white pixel sits at
	// grid point (0, 1, 0), index 2.
	for i := 0; i < 4; i++ {
		want := 0.0
		if i == 2 {
			want = 1
		}
		if math.Abs(f.Value(i)-want) > 1e-3 {
			t.Errorf("Intensity[%d] = %g, want %g", i, f.Value(i), want)
		}
	}
	rgb, ok := grid.PointData().Get("RGB")
	if !ok {
		t.Fatal("RGB missing")
	}
	if rgb.Components() != 3 {
		t.Fatalf("RGB has %d components, want 3", rgb.Components())
	}
	for j := 0; j < 3; j++ {
		if math.Abs(rgb.At(2, j)-1) > 1e-3 {
			t.Errorf("RGB[2][%d] = %g, want 1", j, rgb.At(2, j))
		}
	}
}

func TestUniformGridFromImageResamples(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	grid, err := UniformGridFromImage(img, &ImageGridOptions{Width: 4, Height: 2})
	if err != nil {
		t.Fatalf("UniformGridFromImage error = %v", err)
	}
	if got := grid.Dimensions(); got != [3]int{4, 2, 1} {
		t.Errorf("Dimensions = %v, want [4 2 1]", got)
	}
	if grid.NumPoints() != 8 {
		t.Errorf("NumPoints = %d, want 8", grid.NumPoints())
	}
}

func TestUniformGridFromImageNil(t *testing.T) {
	if _, err := UniformGridFromImage(nil, nil); !errors.Is(err, ErrArgumentType) {
		t.Errorf("nil image error = %v, want ErrArgumentType", err)
	}
}
