package kernel

// IsoTetra extracts the d = 0 level set inside one tetrahedron, returning
// zero, one, or two triangles of output indices. d holds the per-vertex
// scalars already shifted by the iso value.
func IsoTetra(ids [4]int, d [4]float64, pm *PointMap) [][3]int {
	var neg, pos []int
	for i := 0; i < 4; i++ {
		if d[i] < 0 {
			neg = append(neg, i)
		} else {
			pos = append(pos, i)
		}
	}
	if len(neg) == 0 || len(pos) == 0 {
		return nil
	}
	edge := func(a, b int) int {
		return pm.Edge(ids[a], ids[b], crossing(d[a], d[b]))
	}
	if len(neg) == 1 || len(pos) == 1 {
		// One vertex isolated: a single triangle cuts it off.
		var a int
		var rest []int
		if len(neg) == 1 {
			a, rest = neg[0], pos
		} else {
			a, rest = pos[0], neg
		}
		return [][3]int{{edge(a, rest[0]), edge(a, rest[1]), edge(a, rest[2])}}
	}
	// Two against two: the level set is a quad split into two triangles.
	a, b := neg[0], neg[1]
	x, y := pos[0], pos[1]
	q := [4]int{edge(a, x), edge(a, y), edge(b, y), edge(b, x)}
	return [][3]int{{q[0], q[1], q[2]}, {q[0], q[2], q[3]}}
}

// IsoTriangle extracts the d = 0 level set inside one triangle, returning
// the crossing segment's output indices if the level set passes through.
func IsoTriangle(ids [3]int, d [3]float64, pm *PointMap) ([2]int, bool) {
	var neg, pos []int
	for i := 0; i < 3; i++ {
		if d[i] < 0 {
			neg = append(neg, i)
		} else {
			pos = append(pos, i)
		}
	}
	if len(neg) == 0 || len(pos) == 0 {
		return [2]int{}, false
	}
	var a int
	var rest []int
	if len(neg) == 1 {
		a, rest = neg[0], pos
	} else {
		a, rest = pos[0], neg
	}
	edge := func(x, y int) int {
		return pm.Edge(ids[x], ids[y], crossing(d[x], d[y]))
	}
	return [2]int{edge(a, rest[0]), edge(a, rest[1])}, true
}
