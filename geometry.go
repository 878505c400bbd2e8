package pyvista

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// valid reports whether the axis is one of the three coordinate axes.
func (a Axis) valid() bool { return a >= AxisX && a <= AxisZ }

// ParseAxis resolves an axis name ("x", "y", "z", case-insensitive) or a
// numeric index in string form ("0".."2").
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(name) {
	case "x", "0":
		return AxisX, nil
	case "y", "1":
		return AxisY, nil
	case "z", "2":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: axis %q", ErrInvalidValue, name)
}

// Component returns the axis component of v.
func (a Axis) Component(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	}
	return v.Z
}

// Vec returns the unit vector along the axis.
func (a Axis) Vec() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	}
	return r3.Vec{Z: 1}
}

// NamedNormal resolves a conventional plane-normal name: one of "x", "y",
// "z", optionally prefixed with "-" for the opposite direction.
func NamedNormal(name string) (r3.Vec, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	neg := strings.HasPrefix(s, "-")
	axis, err := ParseAxis(strings.TrimPrefix(s, "-"))
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%w: normal %q", ErrInvalidValue, name)
	}
	n := axis.Vec()
	if neg {
		n = r3.Scale(-1, n)
	}
	return n, nil
}

// Bounds is an axis-aligned bounding box in the VTK layout
// [xmin, xmax, ymin, ymax, zmin, zmax].
type Bounds [6]float64

// emptyBounds sorts before any real extent.
func emptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{inf, -inf, inf, -inf, inf, -inf}
}

// BoundsOf returns the bounding box of a point set.
func BoundsOf(pts []r3.Vec) Bounds {
	b := emptyBounds()
	for _, p := range pts {
		b.expand(p)
	}
	return b
}

func (b *Bounds) expand(p r3.Vec) {
	b[0] = math.Min(b[0], p.X)
	b[1] = math.Max(b[1], p.X)
	b[2] = math.Min(b[2], p.Y)
	b[3] = math.Max(b[3], p.Y)
	b[4] = math.Min(b[4], p.Z)
	b[5] = math.Max(b[5], p.Z)
}

// IsEmpty reports whether the bounds contain no extent.
func (b Bounds) IsEmpty() bool { return b[0] > b[1] }

// Center returns the box center.
func (b Bounds) Center() r3.Vec {
	return r3.Vec{
		X: (b[0] + b[1]) / 2,
		Y: (b[2] + b[3]) / 2,
		Z: (b[4] + b[5]) / 2,
	}
}

// Size returns the box extent along each axis.
func (b Bounds) Size() r3.Vec {
	return r3.Vec{X: b[1] - b[0], Y: b[3] - b[2], Z: b[5] - b[4]}
}

// Diagonal returns the length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	if b.IsEmpty() {
		return 0
	}
	return r3.Norm(b.Size())
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p r3.Vec) bool {
	return p.X >= b[0] && p.X <= b[1] &&
		p.Y >= b[2] && p.Y <= b[3] &&
		p.Z >= b[4] && p.Z <= b[5]
}

// Union returns the smallest bounds covering b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Bounds{
		math.Min(b[0], o[0]), math.Max(b[1], o[1]),
		math.Min(b[2], o[2]), math.Max(b[3], o[3]),
		math.Min(b[4], o[4]), math.Max(b[5], o[5]),
	}
}

// Corners returns the eight box corners in x-fastest order.
func (b Bounds) Corners() [8]r3.Vec {
	var c [8]r3.Vec
	for i := 0; i < 8; i++ {
		c[i] = r3.Vec{
			X: b[i&1],
			Y: b[2+(i>>1)&1],
			Z: b[4+(i>>2)&1],
		}
	}
	return c
}

// unitOr returns v normalized, or def when v is (near) zero.
func unitOr(v, def r3.Vec) r3.Vec {
	if r3.Norm(v) < 1e-300 {
		return def
	}
	return r3.Unit(v)
}
