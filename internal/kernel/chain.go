package kernel

// ChainSegments joins line segments sharing endpoints into maximal
// polylines. Closed loops come back with the first vertex repeated at the
// end. Segment order and orientation in the input are irrelevant.
func ChainSegments(segments [][2]int) [][]int {
	if len(segments) == 0 {
		return nil
	}
	// Adjacency from vertex to incident segment slots.
	adj := make(map[int][]int)
	for si, s := range segments {
		adj[s[0]] = append(adj[s[0]], si)
		adj[s[1]] = append(adj[s[1]], si)
	}
	used := make([]bool, len(segments))
	other := func(si, v int) int {
		s := segments[si]
		if s[0] == v {
			return s[1]
		}
		return s[0]
	}
	walk := func(start, from int) []int {
		chain := []int{from}
		v := from
		si := start
		for {
			used[si] = true
			v = other(si, v)
			chain = append(chain, v)
			next := -1
			for _, cand := range adj[v] {
				if !used[cand] {
					next = cand
					break
				}
			}
			if next < 0 {
				return chain
			}
			si = next
		}
	}
	var chains [][]int
	// Open chains first, starting from odd-degree endpoints.
	for si, s := range segments {
		if used[si] {
			continue
		}
		for _, v := range [2]int{s[0], s[1]} {
			if len(adj[v])%2 == 1 && !used[si] {
				chains = append(chains, walk(si, v))
			}
		}
	}
	// Remaining segments form loops.
	for si, s := range segments {
		if !used[si] {
			chains = append(chains, walk(si, s[0]))
		}
	}
	return chains
}

// DisjointSet is a union-find structure over n elements, used for
// connectivity extraction.
type DisjointSet struct {
	parent []int
	rank   []int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of x's set, compressing paths.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing a and b.
func (d *DisjointSet) Union(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}
