package pyvista

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 homogeneous transformation. The zero value is not
// usable; start from NewTransform.
type Transform struct {
	m *mat.Dense
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return &Transform{m: m}
}

// TransformFromMatrix wraps a row-major 4x4 matrix.
func TransformFromMatrix(elems [16]float64) *Transform {
	return &Transform{m: mat.NewDense(4, 4, elems[:])}
}

// Matrix returns the row-major elements.
func (t *Transform) Matrix() [16]float64 {
	var out [16]float64
	copy(out[:], t.m.RawMatrix().Data)
	return out
}

// Concatenate post-multiplies by other: the receiver then applies other
// first. It returns the receiver for chaining.
func (t *Transform) Concatenate(other *Transform) *Transform {
	var p mat.Dense
	p.Mul(t.m, other.m)
	t.m.Copy(&p)
	return t
}

// Translate post-multiplies a translation.
func (t *Transform) Translate(v r3.Vec) *Transform {
	o := NewTransform()
	o.m.Set(0, 3, v.X)
	o.m.Set(1, 3, v.Y)
	o.m.Set(2, 3, v.Z)
	return t.Concatenate(o)
}

// Scale post-multiplies a per-axis scale.
func (t *Transform) Scale(sx, sy, sz float64) *Transform {
	o := NewTransform()
	o.m.Set(0, 0, sx)
	o.m.Set(1, 1, sy)
	o.m.Set(2, 2, sz)
	return t.Concatenate(o)
}

// RotateX post-multiplies a rotation about the x axis by the given angle in
// degrees.
func (t *Transform) RotateX(deg float64) *Transform {
	return t.Concatenate(axisAngle(r3.Vec{X: 1}, deg))
}

// RotateY post-multiplies a rotation about the y axis by the given angle in
// degrees.
func (t *Transform) RotateY(deg float64) *Transform {
	return t.Concatenate(axisAngle(r3.Vec{Y: 1}, deg))
}

// RotateZ post-multiplies a rotation about the z axis by the given angle in
// degrees.
func (t *Transform) RotateZ(deg float64) *Transform {
	return t.Concatenate(axisAngle(r3.Vec{Z: 1}, deg))
}

// RotateVector post-multiplies a rotation about an arbitrary axis by the
// given angle in degrees.
func (t *Transform) RotateVector(axis r3.Vec, deg float64) *Transform {
	return t.Concatenate(axisAngle(axis, deg))
}

// axisAngle builds a rotation transform from an axis and angle in degrees
// (Rodrigues form).
func axisAngle(axis r3.Vec, deg float64) *Transform {
	u := r3.Unit(axis)
	a := deg * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	ic := 1 - c
	o := NewTransform()
	o.m.Set(0, 0, c+u.X*u.X*ic)
	o.m.Set(0, 1, u.X*u.Y*ic-u.Z*s)
	o.m.Set(0, 2, u.X*u.Z*ic+u.Y*s)
	o.m.Set(1, 0, u.Y*u.X*ic+u.Z*s)
	o.m.Set(1, 1, c+u.Y*u.Y*ic)
	o.m.Set(1, 2, u.Y*u.Z*ic-u.X*s)
	o.m.Set(2, 0, u.Z*u.X*ic-u.Y*s)
	o.m.Set(2, 1, u.Z*u.Y*ic+u.X*s)
	o.m.Set(2, 2, c+u.Z*u.Z*ic)
	return o
}

// ReflectTransform builds a reflection across the plane with the given
// normal passing through point.
func ReflectTransform(normal, point r3.Vec) (*Transform, error) {
	n := r3.Norm(normal)
	if n == 0 {
		return nil, fmt.Errorf("%w: zero reflection normal", ErrInvalidValue)
	}
	u := r3.Scale(1/n, normal)
	d := r3.Dot(u, point)
	o := NewTransform()
	o.m.Set(0, 0, 1-2*u.X*u.X)
	o.m.Set(0, 1, -2*u.X*u.Y)
	o.m.Set(0, 2, -2*u.X*u.Z)
	o.m.Set(1, 0, -2*u.Y*u.X)
	o.m.Set(1, 1, 1-2*u.Y*u.Y)
	o.m.Set(1, 2, -2*u.Y*u.Z)
	o.m.Set(2, 0, -2*u.Z*u.X)
	o.m.Set(2, 1, -2*u.Z*u.Y)
	o.m.Set(2, 2, 1-2*u.Z*u.Z)
	o.m.Set(0, 3, 2*d*u.X)
	o.m.Set(1, 3, 2*d*u.Y)
	o.m.Set(2, 3, 2*d*u.Z)
	return o, nil
}

// Apply transforms a point.
func (t *Transform) Apply(p r3.Vec) r3.Vec {
	m := t.m
	w := m.At(3, 0)*p.X + m.At(3, 1)*p.Y + m.At(3, 2)*p.Z + m.At(3, 3)
	out := r3.Vec{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z + m.At(0, 3),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z + m.At(1, 3),
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z + m.At(2, 3),
	}
	if w != 1 && w != 0 {
		out = r3.Scale(1/w, out)
	}
	return out
}

// ApplyVector transforms a direction, ignoring translation.
func (t *Transform) ApplyVector(v r3.Vec) r3.Vec {
	m := t.m
	return r3.Vec{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// hasReflection reports whether the linear part flips orientation.
func (t *Transform) hasReflection() bool {
	var l mat.Dense
	l.CloneFrom(t.m.Slice(0, 3, 0, 3))
	return mat.Det(&l) < 0
}
