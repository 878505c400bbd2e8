package kernel

// The clipping routines keep the region where the per-vertex scalar d is
// <= 0. Callers flip the sign of d to invert the retained half-space.

func crossing(di, dj float64) float64 {
	return di / (di - dj)
}

// ClipLine clips the segment (i0, i1) with scalars (d0, d1). It reports the
// surviving segment's output indices and whether anything survives.
func ClipLine(i0, i1 int, d0, d1 float64, pm *PointMap) ([2]int, bool) {
	in0, in1 := d0 <= 0, d1 <= 0
	switch {
	case in0 && in1:
		return [2]int{pm.Orig(i0), pm.Orig(i1)}, true
	case in0:
		return [2]int{pm.Orig(i0), pm.Edge(i0, i1, crossing(d0, d1))}, true
	case in1:
		return [2]int{pm.Edge(i0, i1, crossing(d0, d1)), pm.Orig(i1)}, true
	}
	return [2]int{}, false
}

// ClipPolygon clips a convex polygon given by vertex ids and their scalars,
// returning the surviving polygon's output indices (Sutherland-Hodgman
// against the d = 0 level). An empty result means the polygon lies entirely
// in the discarded half-space.
func ClipPolygon(ids []int, d []float64, pm *PointMap) []int {
	var out []int
	n := len(ids)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ini, inj := d[i] <= 0, d[j] <= 0
		if ini {
			out = append(out, pm.Orig(ids[i]))
		}
		if ini != inj {
			out = append(out, pm.Edge(ids[i], ids[j], crossing(d[i], d[j])))
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// ClipTetra clips a tetrahedron, returning tetrahedra that cover the kept
// region. The output referencing follows the PointMap.
func ClipTetra(ids [4]int, d [4]float64, pm *PointMap) [][4]int {
	var inside, outside []int
	for i := 0; i < 4; i++ {
		if d[i] <= 0 {
			inside = append(inside, i)
		} else {
			outside = append(outside, i)
		}
	}
	edge := func(a, b int) int {
		return pm.Edge(ids[a], ids[b], crossing(d[a], d[b]))
	}
	orig := func(a int) int { return pm.Orig(ids[a]) }

	switch len(inside) {
	case 0:
		return nil
	case 4:
		return [][4]int{{orig(0), orig(1), orig(2), orig(3)}}
	case 1:
		// Small tetra at the surviving corner.
		a := inside[0]
		return [][4]int{{
			orig(a),
			edge(a, outside[0]),
			edge(a, outside[1]),
			edge(a, outside[2]),
		}}
	case 3:
		// Everything but a small tetra at the clipped corner: a wedge
		// between the surviving face and the cut triangle.
		x := outside[0]
		a, b, c := inside[0], inside[1], inside[2]
		w := [6]int{orig(a), orig(b), orig(c), edge(a, x), edge(b, x), edge(c, x)}
		return wedgeToTets(w)
	default: // 2 inside
		a, b := inside[0], inside[1]
		x, y := outside[0], outside[1]
		w := [6]int{orig(a), edge(a, x), edge(a, y), orig(b), edge(b, x), edge(b, y)}
		return wedgeToTets(w)
	}
}

// wedgeToTets splits a six-vertex wedge (triangles 0-1-2 and 3-4-5 with
// vertex i adjacent to vertex i+3) into three tetrahedra.
func wedgeToTets(w [6]int) [][4]int {
	return [][4]int{
		{w[0], w[1], w[2], w[3]},
		{w[1], w[2], w[3], w[4]},
		{w[2], w[3], w[4], w[5]},
	}
}
