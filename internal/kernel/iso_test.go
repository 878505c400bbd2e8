package kernel

import (
	"math"
	"testing"
)

func TestIsoTetra(t *testing.T) {
	tests := []struct {
		name string
		d    [4]float64
		want int
	}{
		{"all below", [4]float64{-1, -2, -3, -1}, 0},
		{"all above", [4]float64{1, 2, 3, 1}, 0},
		{"one below", [4]float64{-1, 1, 1, 1}, 1},
		{"one above", [4]float64{-1, -1, -1, 1}, 1},
		{"two against two", [4]float64{-1, -1, 1, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPointMap()
			got := IsoTetra([4]int{0, 1, 2, 3}, tt.d, pm)
			if len(got) != tt.want {
				t.Fatalf("IsoTetra(%v) produced %d triangles, want %d", tt.d, len(got), tt.want)
			}
			// Every level-set vertex must be an edge point.
			refs := pm.Refs()
			for _, tri := range got {
				for _, v := range tri {
					if refs[v].J < 0 {
						t.Errorf("level-set vertex %d is an original vertex", v)
					}
				}
			}
		})
	}
}

func TestIsoTetraQuadSharesPoints(t *testing.T) {
	pm := NewPointMap()
	tris := IsoTetra([4]int{0, 1, 2, 3}, [4]float64{-1, -1, 1, 1}, pm)
	if len(tris) != 2 {
		t.Fatalf("produced %d triangles, want 2", len(tris))
	}
	// The quad is split along a shared diagonal: four distinct points, two
	// of them used by both triangles.
	if pm.Len() != 4 {
		t.Fatalf("PointMap.Len() = %d, want 4", pm.Len())
	}
}

func TestIsoTriangle(t *testing.T) {
	tests := []struct {
		name  string
		d     [3]float64
		cross bool
	}{
		{"all below", [3]float64{-1, -1, -2}, false},
		{"all above", [3]float64{1, 1, 2}, false},
		{"one below", [3]float64{-1, 1, 1}, true},
		{"one above", [3]float64{-1, -1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPointMap()
			_, ok := IsoTriangle([3]int{0, 1, 2}, tt.d, pm)
			if ok != tt.cross {
				t.Fatalf("IsoTriangle(%v) crossed = %v, want %v", tt.d, ok, tt.cross)
			}
		})
	}
}

func TestIsoTriangleCrossingParameters(t *testing.T) {
	pm := NewPointMap()
	seg, ok := IsoTriangle([3]int{0, 1, 2}, [3]float64{-1, 1, 3}, pm)
	if !ok {
		t.Fatal("IsoTriangle(-1, 1, 3) found no crossing")
	}
	refs := pm.Refs()
	for _, want := range []float64{0.5, 0.25} {
		found := false
		for _, i := range seg {
			if math.Abs(refs[i].T-want) < 1e-12 {
				found = true
			}
		}
		if !found {
			t.Errorf("no crossing at parameter %g among %+v", want, refs)
		}
	}
}
