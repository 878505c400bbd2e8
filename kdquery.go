package pyvista

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// meshPoint is one dataset point carried through the kd-tree with its
// original index.
type meshPoint struct {
	r3.Vec
	idx int
}

func (p meshPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(meshPoint)
	switch d {
	case 0:
		return p.X - q.X
	case 1:
		return p.Y - q.Y
	default:
		return p.Z - q.Z
	}
}

func (p meshPoint) Dims() int { return 3 }

func (p meshPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(meshPoint)
	d := r3.Sub(p.Vec, q.Vec)
	return r3.Dot(d, d)
}

// meshPoints implements kdtree.Interface over a point slice.
type meshPoints []meshPoint

func (p meshPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p meshPoints) Len() int                      { return len(p) }
func (p meshPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p meshPoints) Pivot(d kdtree.Dim) int {
	return meshPlane{Dim: d, points: p}.Pivot()
}

// meshPlane sorts meshPoints along one dimension for tree construction.
type meshPlane struct {
	kdtree.Dim
	points meshPoints
}

func (p meshPlane) Len() int { return len(p.points) }
func (p meshPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.points[i].X < p.points[j].X
	case 1:
		return p.points[i].Y < p.points[j].Y
	default:
		return p.points[i].Z < p.points[j].Z
	}
}
func (p meshPlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p meshPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p meshPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// pointLocator answers nearest-neighbor and radius queries over a fixed
// point set. Distances reported by the query methods are exact Euclidean
// distances recomputed from the coordinates.
type pointLocator struct {
	tree *kdtree.Tree
	pts  []r3.Vec
}

func newPointLocator(pts []r3.Vec) *pointLocator {
	mp := make(meshPoints, len(pts))
	for i, p := range pts {
		mp[i] = meshPoint{Vec: p, idx: i}
	}
	return &pointLocator{tree: kdtree.New(mp, false), pts: pts}
}

// nearest returns the index of the closest point and its distance. An empty
// locator returns (-1, +Inf).
func (l *pointLocator) nearest(q r3.Vec) (int, float64) {
	if len(l.pts) == 0 {
		return -1, math.Inf(1)
	}
	got, _ := l.tree.Nearest(meshPoint{Vec: q, idx: -1})
	mp, ok := got.(meshPoint)
	if !ok {
		return -1, math.Inf(1)
	}
	return mp.idx, r3.Norm(r3.Sub(q, mp.Vec))
}

// within returns the indices of all points within radius of q.
func (l *pointLocator) within(q r3.Vec, radius float64) []int {
	if len(l.pts) == 0 || radius <= 0 {
		return nil
	}
	keeper := kdtree.NewDistKeeper(radius * radius)
	l.tree.NearestSet(keeper, meshPoint{Vec: q, idx: -1})
	var out []int
	for _, cd := range keeper.Heap {
		mp, ok := cd.Comparable.(meshPoint)
		if !ok {
			continue
		}
		if r3.Norm(r3.Sub(q, mp.Vec)) <= radius {
			out = append(out, mp.idx)
		}
	}
	return out
}
