package pyvista

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a plain view-state object: position and orientation, projection
// parameters and an optional model transform. It renders nothing itself.
type Camera struct {
	position   r3.Vec
	focalPoint r3.Vec
	up         r3.Vec

	viewAngle     float64
	clippingRange [2]float64

	parallel       bool
	parallelScale  float64
	modelTransform *Transform
}

// NewCamera returns a camera at (0, 0, 1) looking at the origin with +y up.
func NewCamera() *Camera {
	return &Camera{
		position:       r3.Vec{Z: 1},
		up:             r3.Vec{Y: 1},
		viewAngle:      30,
		clippingRange:  [2]float64{0.01, 1000.01},
		parallelScale:  1,
		modelTransform: NewTransform(),
	}
}

// Position returns the camera position.
func (c *Camera) Position() r3.Vec { return c.position }

// SetPosition moves the camera.
func (c *Camera) SetPosition(p r3.Vec) { c.position = p }

// FocalPoint returns the point the camera looks at.
func (c *Camera) FocalPoint() r3.Vec { return c.focalPoint }

// SetFocalPoint aims the camera.
func (c *Camera) SetFocalPoint(p r3.Vec) { c.focalPoint = p }

// Up returns the view-up vector.
func (c *Camera) Up() r3.Vec { return c.up }

// SetUp sets the view-up vector.
func (c *Camera) SetUp(u r3.Vec) { c.up = unitOr(u, r3.Vec{Y: 1}) }

// Direction returns the unit vector from the position toward the focal
// point.
func (c *Camera) Direction() r3.Vec {
	return unitOr(r3.Sub(c.focalPoint, c.position), r3.Vec{Z: -1})
}

// Distance returns the distance from the position to the focal point.
func (c *Camera) Distance() float64 {
	return r3.Norm(r3.Sub(c.focalPoint, c.position))
}

// SetDistance moves the position along the view direction so the focal
// point sits at the given distance.
func (c *Camera) SetDistance(d float64) {
	c.position = r3.Sub(c.focalPoint, r3.Scale(d, c.Direction()))
}

// ViewAngle returns the perspective field of view in degrees.
func (c *Camera) ViewAngle() float64 { return c.viewAngle }

// SetViewAngle sets the perspective field of view in degrees.
func (c *Camera) SetViewAngle(deg float64) { c.viewAngle = deg }

// ClippingRange returns the near and far clip distances.
func (c *Camera) ClippingRange() (near, far float64) {
	return c.clippingRange[0], c.clippingRange[1]
}

// SetClippingRange sets the near and far clip distances; near must not
// exceed far.
func (c *Camera) SetClippingRange(near, far float64) error {
	if near > far {
		return fmt.Errorf("%w: clipping range near %g > far %g", ErrInvalidValue, near, far)
	}
	c.clippingRange = [2]float64{near, far}
	return nil
}

// Thickness returns the distance between the clip planes.
func (c *Camera) Thickness() float64 {
	return c.clippingRange[1] - c.clippingRange[0]
}

// SetThickness moves the far plane to the given distance behind the near
// plane.
func (c *Camera) SetThickness(t float64) error {
	if t <= 0 {
		return fmt.Errorf("%w: clip thickness %g", ErrInvalidValue, t)
	}
	c.clippingRange[1] = c.clippingRange[0] + t
	return nil
}

// ParallelProjection reports whether the projection is orthographic.
func (c *Camera) ParallelProjection() bool { return c.parallel }

// EnableParallelProjection switches to orthographic projection.
func (c *Camera) EnableParallelProjection() { c.parallel = true }

// DisableParallelProjection switches to perspective projection.
func (c *Camera) DisableParallelProjection() { c.parallel = false }

// ParallelScale returns the orthographic half-height.
func (c *Camera) ParallelScale() float64 { return c.parallelScale }

// SetParallelScale sets the orthographic half-height.
func (c *Camera) SetParallelScale(s float64) { c.parallelScale = s }

// Zoom narrows the view by the given factor: the parallel scale shrinks, or
// the view angle in perspective mode. Factors above 1 zoom in.
func (c *Camera) Zoom(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("%w: zoom factor %g", ErrInvalidValue, factor)
	}
	if c.parallel {
		c.parallelScale /= factor
	} else {
		c.viewAngle /= factor
	}
	return nil
}

// Azimuth orbits the position about the focal point around the up axis by
// the given angle in degrees.
func (c *Camera) Azimuth(deg float64) {
	c.orbit(c.up, deg)
}

// Elevation orbits the position about the focal point around the horizontal
// axis by the given angle in degrees.
func (c *Camera) Elevation(deg float64) {
	axis := r3.Cross(c.Direction(), c.up)
	c.orbit(axis, deg)
}

// Roll rotates the up vector about the view direction by the given angle in
// degrees.
func (c *Camera) Roll(deg float64) {
	rot := r3.NewRotation(deg*math.Pi/180, c.Direction())
	c.up = rot.Rotate(c.up)
}

func (c *Camera) orbit(axis r3.Vec, deg float64) {
	if r3.Norm(axis) == 0 {
		return
	}
	rot := r3.NewRotation(deg*math.Pi/180, axis)
	rel := r3.Sub(c.position, c.focalPoint)
	c.position = r3.Add(c.focalPoint, rot.Rotate(rel))
	c.up = rot.Rotate(c.up)
}

// ModelTransform returns the model transform matrix.
func (c *Camera) ModelTransform() *Transform { return c.modelTransform }

// SetModelTransform replaces the model transform matrix.
func (c *Camera) SetModelTransform(t *Transform) {
	if t == nil {
		t = NewTransform()
	}
	c.modelTransform = t
}

// Copy returns an independent camera with the same state.
func (c *Camera) Copy() *Camera {
	out := *c
	out.modelTransform = TransformFromMatrix(c.modelTransform.Matrix())
	return &out
}
