package pyvista

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/spatial/r3"
)

// ImageGridOptions configures UniformGridFromImage.
type ImageGridOptions struct {
	// Width and Height resample the image to this resolution; zero keeps
	// the source resolution.
	Width, Height int
	// Spacing is the grid point spacing; the zero vector means unit
	// spacing.
	Spacing r3.Vec
	Origin  r3.Vec
}

// UniformGridFromImage resamples an image onto a flat uniform grid, one
// grid point per pixel. The point arrays "Intensity" (luma) and "RGB" carry
// the pixel values scaled to [0, 1]; "Intensity" becomes the active
// scalars.
func UniformGridFromImage(img image.Image, o *ImageGridOptions) (*UniformGrid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrArgumentType)
	}
	if o == nil {
		o = &ImageGridOptions{}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: image resolution %dx%d", ErrInvalidValue, w, h)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)

	spacing := o.Spacing
	if spacing == (r3.Vec{}) {
		spacing = r3.Vec{X: 1, Y: 1, Z: 1}
	}
	grid, err := NewUniformGrid([3]int{w, h, 1}, spacing, o.Origin)
	if err != nil {
		return nil, err
	}
	intensity := make([]float64, w*h)
	rgb := NewField(3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Flip y so row 0 of the image lands at the top of the grid.
			i := x + (h-1-y)*w
			r, g, bch, _ := rgba.At(x, y).RGBA()
			rf := float64(r) / 0xffff
			gf := float64(g) / 0xffff
			bf := float64(bch) / 0xffff
			rgb.SetAt(i, 0, rf)
			rgb.SetAt(i, 1, gf)
			rgb.SetAt(i, 2, bf)
			intensity[i] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	if err := grid.PointData().SetScalars("Intensity", intensity); err != nil {
		return nil, err
	}
	if err := grid.PointData().Set("RGB", rgb); err != nil {
		return nil, err
	}
	return grid, nil
}
