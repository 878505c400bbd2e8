package kernel

import (
	"math"
	"testing"
)

func TestClipLine(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		keep   bool
		cut    bool // one endpoint replaced by an edge point
	}{
		{"both inside", -1, -2, true, false},
		{"both outside", 1, 2, false, false},
		{"first inside", -1, 1, true, true},
		{"second inside", 1, -1, true, true},
		{"on the plane", 0, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPointMap()
			seg, ok := ClipLine(0, 1, tt.d0, tt.d1, pm)
			if ok != tt.keep {
				t.Fatalf("ClipLine(%g, %g) kept = %v, want %v", tt.d0, tt.d1, ok, tt.keep)
			}
			if !ok {
				return
			}
			refs := pm.Refs()
			var edgePoints int
			for _, i := range seg {
				if refs[i].J >= 0 {
					edgePoints++
				}
			}
			if (edgePoints > 0) != tt.cut {
				t.Errorf("ClipLine(%g, %g) produced %d edge points, cut = %v", tt.d0, tt.d1, edgePoints, tt.cut)
			}
		})
	}
}

func TestClipLineCrossing(t *testing.T) {
	pm := NewPointMap()
	seg, ok := ClipLine(0, 1, -1, 3, pm)
	if !ok {
		t.Fatal("ClipLine(-1, 3) dropped the segment")
	}
	r := pm.Refs()[seg[1]]
	if r.I != 0 || r.J != 1 {
		t.Fatalf("edge point references (%d, %d), want (0, 1)", r.I, r.J)
	}
	if math.Abs(r.T-0.25) > 1e-12 {
		t.Errorf("crossing parameter = %g, want 0.25", r.T)
	}
}

func TestClipPolygon(t *testing.T) {
	tests := []struct {
		name string
		d    []float64
		want int
	}{
		{"all inside", []float64{-1, -1, -1, -1}, 4},
		{"all outside", []float64{1, 1, 1, 1}, 0},
		{"half quad", []float64{-1, 1, 1, -1}, 4},
		{"corner off a triangle", []float64{-1, -1, 1}, 4},
		{"only one corner survives", []float64{-1, 1, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]int, len(tt.d))
			for i := range ids {
				ids[i] = i
			}
			pm := NewPointMap()
			got := ClipPolygon(ids, tt.d, pm)
			if len(got) != tt.want {
				t.Fatalf("ClipPolygon(%v) produced %d vertices, want %d", tt.d, len(got), tt.want)
			}
		})
	}
}

func TestClipTetra(t *testing.T) {
	tests := []struct {
		name string
		d    [4]float64
		want int
	}{
		{"all inside", [4]float64{-1, -1, -1, -1}, 1},
		{"all outside", [4]float64{1, 1, 1, 1}, 0},
		{"one corner survives", [4]float64{-1, 1, 1, 1}, 1},
		{"one corner clipped", [4]float64{-1, -1, -1, 1}, 3},
		{"two against two", [4]float64{-1, -1, 1, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPointMap()
			got := ClipTetra([4]int{0, 1, 2, 3}, tt.d, pm)
			if len(got) != tt.want {
				t.Fatalf("ClipTetra(%v) produced %d tets, want %d", tt.d, len(got), tt.want)
			}
		})
	}
}

// Neighboring cells cutting the same edge must reuse the same output point.
func TestPointMapDeduplicatesEdges(t *testing.T) {
	pm := NewPointMap()
	a := pm.Edge(3, 7, 0.25)
	b := pm.Edge(7, 3, 0.75) // same edge, opposite orientation
	if a != b {
		t.Fatalf("Edge(3,7) = %d, Edge(7,3) = %d, want identical", a, b)
	}
	if pm.Len() != 1 {
		t.Fatalf("PointMap.Len() = %d, want 1", pm.Len())
	}
	r := pm.Refs()[a]
	if r.I != 3 || r.J != 7 || math.Abs(r.T-0.25) > 1e-12 {
		t.Errorf("ref = %+v, want I=3 J=7 T=0.25", r)
	}
	if got := pm.Orig(5); got != pm.Orig(5) {
		t.Error("Orig(5) is not stable")
	}
}

func TestPointRefLerp(t *testing.T) {
	orig := PointRef{I: 2, J: -1}
	if got := orig.Lerp(4, 9); got != 4 {
		t.Errorf("original vertex Lerp = %g, want 4", got)
	}
	edge := PointRef{I: 0, J: 1, T: 0.5}
	if got := edge.Lerp(2, 6); got != 4 {
		t.Errorf("edge point Lerp = %g, want 4", got)
	}
}
