package pyvista

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if got := c.Position(); !vecNear(got, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("Position = %v, want (0, 0, 1)", got)
	}
	if got := c.FocalPoint(); !vecNear(got, r3.Vec{}, 1e-12) {
		t.Errorf("FocalPoint = %v, want the origin", got)
	}
	if got := c.Up(); !vecNear(got, r3.Vec{Y: 1}, 1e-12) {
		t.Errorf("Up = %v, want +y", got)
	}
	if c.ViewAngle() != 30 {
		t.Errorf("ViewAngle = %g, want 30", c.ViewAngle())
	}
	near, far := c.ClippingRange()
	if near != 0.01 || far != 1000.01 {
		t.Errorf("ClippingRange = (%g, %g), want (0.01, 1000.01)", near, far)
	}
	if c.ParallelProjection() {
		t.Error("camera starts in parallel projection")
	}
	if c.ParallelScale() != 1 {
		t.Errorf("ParallelScale = %g, want 1", c.ParallelScale())
	}
	if got := c.Direction(); !vecNear(got, r3.Vec{Z: -1}, 1e-12) {
		t.Errorf("Direction = %v, want -z", got)
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera()
	if err := c.Zoom(2); err != nil {
		t.Fatalf("Zoom error = %v", err)
	}
	if c.ViewAngle() != 15 {
		t.Errorf("perspective zoom ViewAngle = %g, want 15", c.ViewAngle())
	}

	c.EnableParallelProjection()
	if err := c.Zoom(4); err != nil {
		t.Fatal(err)
	}
	if c.ParallelScale() != 0.25 {
		t.Errorf("parallel zoom scale = %g, want 0.25", c.ParallelScale())
	}

	for _, factor := range []float64{0, -1} {
		if err := c.Zoom(factor); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Zoom(%g) error = %v, want ErrInvalidValue", factor, err)
		}
	}
}

func TestCameraClippingRange(t *testing.T) {
	c := NewCamera()
	if err := c.SetClippingRange(1, 10); err != nil {
		t.Fatalf("SetClippingRange error = %v", err)
	}
	if c.Thickness() != 9 {
		t.Errorf("Thickness = %g, want 9", c.Thickness())
	}
	if err := c.SetClippingRange(10, 1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("inverted range error = %v, want ErrInvalidValue", err)
	}

	if err := c.SetThickness(4); err != nil {
		t.Fatal(err)
	}
	if _, far := c.ClippingRange(); far != 5 {
		t.Errorf("far plane = %g, want near + 4 = 5", far)
	}
	if err := c.SetThickness(0); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("zero thickness error = %v, want ErrInvalidValue", err)
	}
}

func TestCameraDistance(t *testing.T) {
	c := NewCamera()
	if c.Distance() != 1 {
		t.Errorf("Distance = %g, want 1", c.Distance())
	}
	c.SetDistance(5)
	if math.Abs(c.Distance()-5) > 1e-12 {
		t.Errorf("Distance after SetDistance = %g, want 5", c.Distance())
	}
	// The view direction is unchanged.
	if got := c.Direction(); !vecNear(got, r3.Vec{Z: -1}, 1e-12) {
		t.Errorf("Direction = %v, want -z", got)
	}
}

func TestCameraAzimuth(t *testing.T) {
	c := NewCamera()
	c.Azimuth(180)
	if got := c.Position(); !vecNear(got, r3.Vec{Z: -1}, 1e-9) {
		t.Errorf("Position after 180 azimuth = %v, want (0, 0, -1)", got)
	}
	// Orbiting about up leaves up alone.
	if got := c.Up(); !vecNear(got, r3.Vec{Y: 1}, 1e-9) {
		t.Errorf("Up after azimuth = %v, want +y", got)
	}
	if math.Abs(c.Distance()-1) > 1e-9 {
		t.Errorf("Distance after azimuth = %g, want 1", c.Distance())
	}
}

func TestCameraElevation(t *testing.T) {
	c := NewCamera()
	c.Elevation(90)
	// The camera swings over the top; up follows.
	if got := c.Position(); !vecNear(got, r3.Vec{Y: 1}, 1e-9) &&
		!vecNear(got, r3.Vec{Y: -1}, 1e-9) {
		t.Errorf("Position after 90 elevation = %v, want on the y axis", got)
	}
	if math.Abs(c.Distance()-1) > 1e-9 {
		t.Errorf("Distance after elevation = %g, want 1", c.Distance())
	}
}

func TestCameraRoll(t *testing.T) {
	c := NewCamera()
	c.Roll(90)
	// Rolling about -z turns +y up into +x or -x; position stays put.
	up := c.Up()
	if math.Abs(math.Abs(up.X)-1) > 1e-9 || math.Abs(up.Y) > 1e-9 {
		t.Errorf("Up after 90 roll = %v, want along x", up)
	}
	if got := c.Position(); !vecNear(got, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("Position moved during roll: %v", got)
	}
}

func TestCameraCopy(t *testing.T) {
	c := NewCamera()
	c.SetPosition(r3.Vec{X: 2})
	c.SetModelTransform(NewTransform().Translate(r3.Vec{X: 1}))

	cp := c.Copy()
	cp.SetPosition(r3.Vec{Y: 9})
	cp.ModelTransform().Scale(2, 2, 2)

	if got := c.Position(); !vecNear(got, r3.Vec{X: 2}, 1e-12) {
		t.Errorf("copy mutation moved the original to %v", got)
	}
	if got := c.ModelTransform().Apply(r3.Vec{}); !vecNear(got, r3.Vec{X: 1}, 1e-12) {
		t.Errorf("copy mutation changed the original transform: %v", got)
	}
}
