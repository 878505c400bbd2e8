package kernel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTriangleArea(t *testing.T) {
	a := r3.Vec{}
	b := r3.Vec{X: 2}
	c := r3.Vec{Y: 3}
	if got := TriangleArea(a, b, c); math.Abs(got-3) > 1e-12 {
		t.Errorf("TriangleArea = %g, want 3", got)
	}
	if got := TriangleArea(a, b, b); got != 0 {
		t.Errorf("degenerate TriangleArea = %g, want 0", got)
	}
}

func TestPolygonArea(t *testing.T) {
	square := []r3.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}}
	if got := PolygonArea(square); math.Abs(got-4) > 1e-12 {
		t.Errorf("PolygonArea(square) = %g, want 4", got)
	}
	if got := PolygonArea(square[:2]); got != 0 {
		t.Errorf("PolygonArea(segment) = %g, want 0", got)
	}
}

func TestTetraVolume(t *testing.T) {
	got := TetraVolume(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
	if math.Abs(got-1.0/6) > 1e-12 {
		t.Errorf("TetraVolume = %g, want 1/6", got)
	}
}

func TestRayTriangle(t *testing.T) {
	a := r3.Vec{X: -1, Y: -1, Z: 2}
	b := r3.Vec{X: 1, Y: -1, Z: 2}
	c := r3.Vec{Y: 1, Z: 2}
	tests := []struct {
		name   string
		origin r3.Vec
		dir    r3.Vec
		hit    bool
		at     float64
	}{
		{"through the middle", r3.Vec{}, r3.Vec{Z: 1}, true, 2},
		{"away from the plane", r3.Vec{}, r3.Vec{Z: -1}, false, 0},
		{"misses sideways", r3.Vec{X: 5}, r3.Vec{Z: 1}, false, 0},
		{"parallel to the plane", r3.Vec{}, r3.Vec{X: 1}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, hit := RayTriangle(tt.origin, tt.dir, a, b, c)
			if hit != tt.hit {
				t.Fatalf("RayTriangle hit = %v, want %v", hit, tt.hit)
			}
			if hit && math.Abs(at-tt.at) > 1e-9 {
				t.Errorf("RayTriangle parameter = %g, want %g", at, tt.at)
			}
		})
	}
}

func TestClosestPointOnTriangle(t *testing.T) {
	a := r3.Vec{}
	b := r3.Vec{X: 4}
	c := r3.Vec{Y: 4}
	tests := []struct {
		name string
		p    r3.Vec
		want r3.Vec
	}{
		{"interior projects down", r3.Vec{X: 1, Y: 1, Z: 3}, r3.Vec{X: 1, Y: 1}},
		{"clamps to vertex", r3.Vec{X: -2, Y: -2}, a},
		{"clamps to edge ab", r3.Vec{X: 2, Y: -5}, r3.Vec{X: 2}},
		{"clamps to hypotenuse", r3.Vec{X: 4, Y: 4}, r3.Vec{X: 2, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClosestPointOnTriangle(tt.p, a, b, c)
			if r3.Norm(r3.Sub(got, tt.want)) > 1e-9 {
				t.Errorf("ClosestPointOnTriangle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := r3.Vec{}
	b := r3.Vec{X: 2}
	tests := []struct {
		name  string
		p     r3.Vec
		want  r3.Vec
		wantT float64
	}{
		{"interior", r3.Vec{X: 1, Y: 5}, r3.Vec{X: 1}, 0.5},
		{"before a", r3.Vec{X: -3}, a, 0},
		{"past b", r3.Vec{X: 9}, b, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gt := ClosestPointOnSegment(tt.p, a, b)
			if r3.Norm(r3.Sub(got, tt.want)) > 1e-9 || math.Abs(gt-tt.wantT) > 1e-9 {
				t.Errorf("ClosestPointOnSegment = %v, %g, want %v, %g", got, gt, tt.want, tt.wantT)
			}
		})
	}
	if got, gt := ClosestPointOnSegment(r3.Vec{X: 1}, a, a); got != a || gt != 0 {
		t.Errorf("degenerate segment = %v, %g, want %v, 0", got, gt, a)
	}
}

func TestRotationTo(t *testing.T) {
	tests := []struct {
		name     string
		from, to r3.Vec
	}{
		{"aligned", r3.Vec{X: 1}, r3.Vec{X: 1}},
		{"perpendicular", r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{"opposite", r3.Vec{X: 1}, r3.Vec{X: -1}},
		{"opposite z", r3.Vec{Z: 1}, r3.Vec{Z: -1}},
		{"skew", r3.Vec{X: 1}, r3.Vec{X: 0.6, Y: 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotationTo(tt.from, tt.to).Rotate(tt.from)
			if r3.Norm(r3.Sub(got, tt.to)) > 1e-9 {
				t.Errorf("RotationTo rotated %v to %v, want %v", tt.from, got, tt.to)
			}
		})
	}
}
