package kernel

// PointRef describes one output point of a clipping or iso-extraction pass
// in terms of the input vertices: either an original vertex (J < 0) or the
// point at parameter T along the edge from vertex I to vertex J.
type PointRef struct {
	I, J int
	T    float64
}

// Lerp returns a + (b-a)*t evaluated for the reference, where at and bt are
// the attribute values at vertices I and J. Original vertices return at.
func (r PointRef) Lerp(at, bt float64) float64 {
	if r.J < 0 {
		return at
	}
	return at + (bt-at)*r.T
}

// PointMap deduplicates the points produced while cutting cells and assigns
// them contiguous output indices. Original vertices are deduplicated by id,
// edge points by their undirected edge; the interpolation parameter of the
// first occurrence wins, which is exact as long as one scalar field drives
// the whole pass.
type PointMap struct {
	refs  []PointRef
	orig  map[int]int
	edges map[[2]int]int
}

// NewPointMap returns an empty map.
func NewPointMap() *PointMap {
	return &PointMap{
		orig:  make(map[int]int),
		edges: make(map[[2]int]int),
	}
}

// Orig returns the output index for input vertex i, registering it on first
// use.
func (m *PointMap) Orig(i int) int {
	if idx, ok := m.orig[i]; ok {
		return idx
	}
	idx := len(m.refs)
	m.refs = append(m.refs, PointRef{I: i, J: -1})
	m.orig[i] = idx
	return idx
}

// Edge returns the output index for the point at parameter t along edge
// (i, j), registering it on first use.
func (m *PointMap) Edge(i, j int, t float64) int {
	key := [2]int{i, j}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
		t = 1 - t
	}
	if idx, ok := m.edges[key]; ok {
		return idx
	}
	idx := len(m.refs)
	m.refs = append(m.refs, PointRef{I: key[0], J: key[1], T: t})
	m.edges[key] = idx
	return idx
}

// Len returns the number of distinct output points registered so far.
func (m *PointMap) Len() int { return len(m.refs) }

// Refs returns the output points in index order. The returned slice is
// owned by the map.
func (m *PointMap) Refs() []PointRef { return m.refs }
