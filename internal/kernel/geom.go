package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// TriangleNormal returns the (unnormalized) normal of triangle abc.
func TriangleNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

// TriangleArea returns the area of triangle abc.
func TriangleArea(a, b, c r3.Vec) float64 {
	return 0.5 * r3.Norm(TriangleNormal(a, b, c))
}

// PolygonArea returns the area of a planar polygon.
func PolygonArea(pts []r3.Vec) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum r3.Vec
	for i := 1; i < len(pts)-1; i++ {
		sum = r3.Add(sum, TriangleNormal(pts[0], pts[i], pts[i+1]))
	}
	return 0.5 * r3.Norm(sum)
}

// TetraVolume returns the volume of tetrahedron abcd.
func TetraVolume(a, b, c, d r3.Vec) float64 {
	return math.Abs(r3.Dot(r3.Sub(b, a), r3.Cross(r3.Sub(c, a), r3.Sub(d, a)))) / 6
}

// RayTriangle intersects the ray origin+t*dir, t > eps, with triangle abc
// (Moller-Trumbore). It reports the ray parameter and whether a hit exists.
func RayTriangle(origin, dir, a, b, c r3.Vec) (float64, bool) {
	const eps = 1e-12
	e1 := r3.Sub(b, a)
	e2 := r3.Sub(c, a)
	p := r3.Cross(dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < eps {
		return 0, false
	}
	inv := 1 / det
	s := r3.Sub(origin, a)
	u := r3.Dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := r3.Cross(s, e1)
	v := r3.Dot(dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := r3.Dot(e2, q) * inv
	if t <= eps {
		return 0, false
	}
	return t, true
}

// ClosestPointOnTriangle returns the point of triangle abc closest to p.
func ClosestPointOnTriangle(p, a, b, c r3.Vec) r3.Vec {
	// Ericson, Real-Time Collision Detection, 5.1.5.
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ap := r3.Sub(p, a)
	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return r3.Add(a, r3.Scale(v, ab))
	}
	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return r3.Add(a, r3.Scale(w, ac))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return r3.Add(b, r3.Scale(w, r3.Sub(c, b)))
	}
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}

// ClosestPointOnSegment returns p projected onto segment ab, clamped to the
// segment, along with the clamped parameter.
func ClosestPointOnSegment(p, a, b r3.Vec) (r3.Vec, float64) {
	ab := r3.Sub(b, a)
	denom := r3.Dot(ab, ab)
	if denom == 0 {
		return a, 0
	}
	t := r3.Dot(r3.Sub(p, a), ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return r3.Add(a, r3.Scale(t, ab)), t
}

// RotationTo returns a rotation taking unit vector from onto unit vector
// to. Degenerate opposite vectors rotate about an arbitrary perpendicular.
func RotationTo(from, to r3.Vec) r3.Rotation {
	const eps = 1e-12
	d := r3.Dot(from, to)
	if d > 1-eps {
		return r3.NewRotation(0, r3.Vec{X: 1})
	}
	if d < -1+eps {
		// Any axis perpendicular to from works.
		axis := r3.Cross(from, r3.Vec{X: 1})
		if r3.Norm(axis) < eps {
			axis = r3.Cross(from, r3.Vec{Y: 1})
		}
		return r3.NewRotation(math.Pi, axis)
	}
	axis := r3.Cross(from, to)
	return r3.NewRotation(math.Acos(d), axis)
}
