package pyvista

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// UniformGrid is a regularly spaced lattice (image data) defined entirely
// by dimensions, spacing and origin. Points and cells are derived.
type UniformGrid struct {
	dataObject
	dims    [3]int
	spacing r3.Vec
	origin  r3.Vec
}

// NewUniformGrid builds a grid from its dimensions, per-axis spacing and
// origin. Dimensions must be at least 1 and spacing positive on every axis.
func NewUniformGrid(dims [3]int, spacing, origin r3.Vec) (*UniformGrid, error) {
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("%w: dimensions %v", ErrInvalidValue, dims)
		}
	}
	if spacing.X <= 0 || spacing.Y <= 0 || spacing.Z <= 0 {
		return nil, fmt.Errorf("%w: spacing %v must be positive", ErrInvalidValue, spacing)
	}
	ug := &UniformGrid{dims: dims, spacing: spacing, origin: origin}
	ug.initAttributes(dims[0]*dims[1]*dims[2], numLatticeCells(dims))
	return ug, nil
}

// Dimensions returns the lattice dimensions.
func (ug *UniformGrid) Dimensions() [3]int { return ug.dims }

// Spacing returns the per-axis point spacing.
func (ug *UniformGrid) Spacing() r3.Vec { return ug.spacing }

// Origin returns the coordinates of point (0, 0, 0).
func (ug *UniformGrid) Origin() r3.Vec { return ug.origin }

// NumPoints returns the number of lattice points.
func (ug *UniformGrid) NumPoints() int { return ug.dims[0] * ug.dims[1] * ug.dims[2] }

// NumCells returns the number of implicit cells.
func (ug *UniformGrid) NumCells() int { return numLatticeCells(ug.dims) }

// Points materializes the lattice points, x varying fastest.
func (ug *UniformGrid) Points() []r3.Vec {
	pts := make([]r3.Vec, 0, ug.NumPoints())
	for k := 0; k < ug.dims[2]; k++ {
		for j := 0; j < ug.dims[1]; j++ {
			for i := 0; i < ug.dims[0]; i++ {
				pts = append(pts, r3.Vec{
					X: ug.origin.X + float64(i)*ug.spacing.X,
					Y: ug.origin.Y + float64(j)*ug.spacing.Y,
					Z: ug.origin.Z + float64(k)*ug.spacing.Z,
				})
			}
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box.
func (ug *UniformGrid) Bounds() Bounds {
	return Bounds{
		ug.origin.X, ug.origin.X + float64(ug.dims[0]-1)*ug.spacing.X,
		ug.origin.Y, ug.origin.Y + float64(ug.dims[1]-1)*ug.spacing.Y,
		ug.origin.Z, ug.origin.Z + float64(ug.dims[2]-1)*ug.spacing.Z,
	}
}

// Center returns the center of the bounding box.
func (ug *UniformGrid) Center() r3.Vec { return ug.Bounds().Center() }

// Length returns the diagonal of the bounding box.
func (ug *UniformGrid) Length() float64 { return ug.Bounds().Diagonal() }

// Volume returns the product of the grid's extents.
func (ug *UniformGrid) Volume() float64 {
	v := 1.0
	ext := []float64{
		float64(ug.dims[0]-1) * ug.spacing.X,
		float64(ug.dims[1]-1) * ug.spacing.Y,
		float64(ug.dims[2]-1) * ug.spacing.Z,
	}
	for _, e := range ext {
		if e > 0 {
			v *= e
		}
	}
	if ug.dims[0] <= 1 && ug.dims[1] <= 1 && ug.dims[2] <= 1 {
		return 0
	}
	return v
}

// Copy returns a deep copy.
func (ug *UniformGrid) Copy() *UniformGrid {
	out, _ := NewUniformGrid(ug.dims, ug.spacing, ug.origin)
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

// CastToUnstructuredGrid converts to an explicit grid of voxels.
func (ug *UniformGrid) CastToUnstructuredGrid() *UnstructuredGrid {
	return castLatticeToUnstructured(ug)
}

// CastToStructuredGrid converts to a structured grid with materialized
// points.
func (ug *UniformGrid) CastToStructuredGrid() *StructuredGrid {
	out, _ := NewStructuredGrid(ug.dims, ug.Points())
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

// CastToRectilinearGrid converts to a rectilinear grid with per-axis
// coordinate arrays.
func (ug *UniformGrid) CastToRectilinearGrid() *RectilinearGrid {
	axis := func(n int, o, s float64) []float64 {
		c := make([]float64, n)
		for i := range c {
			c[i] = o + float64(i)*s
		}
		return c
	}
	out := NewRectilinearGrid(
		axis(ug.dims[0], ug.origin.X, ug.spacing.X),
		axis(ug.dims[1], ug.origin.Y, ug.spacing.Y),
		axis(ug.dims[2], ug.origin.Z, ug.spacing.Z),
	)
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

// ExtractSubset extracts a volume of interest [imin, imax, jmin, jmax,
// kmin, kmax] in point-index space (inclusive, clamped to the grid). The
// result keeps the spacing and shifts the origin to the VOI corner.
func (ug *UniformGrid) ExtractSubset(voi [6]int) (*UniformGrid, error) {
	idx, dims, err := latticeSubset(ug.dims, voi)
	if err != nil {
		return nil, err
	}
	var lo [3]int
	for a := 0; a < 3; a++ {
		lo[a] = voi[2*a]
		if lo[a] < 0 {
			lo[a] = 0
		}
	}
	origin := r3.Vec{
		X: ug.origin.X + float64(lo[0])*ug.spacing.X,
		Y: ug.origin.Y + float64(lo[1])*ug.spacing.Y,
		Z: ug.origin.Z + float64(lo[2])*ug.spacing.Z,
	}
	out, err := NewUniformGrid(dims, ug.spacing, origin)
	if err != nil {
		return nil, err
	}
	cellIdx := latticeCellSubset(ug.dims, dims, voi)
	out.adoptAttributes(
		ug.pointData.subset(len(idx), idx),
		ug.cellData.subset(len(cellIdx), cellIdx),
	)
	return out, nil
}

// trilinear evaluates a point field at an arbitrary position by trilinear
// interpolation, writing one tuple into out. It reports false when the
// position lies outside the grid.
func (ug *UniformGrid) trilinear(p r3.Vec, f *Field, out []float64) bool {
	var idx [3]int
	var fr [3]float64
	pos := [3]float64{
		(p.X - ug.origin.X) / ug.spacing.X,
		(p.Y - ug.origin.Y) / ug.spacing.Y,
		(p.Z - ug.origin.Z) / ug.spacing.Z,
	}
	for a := 0; a < 3; a++ {
		if ug.dims[a] == 1 {
			if math.Abs(pos[a]) > 1e-9 {
				return false
			}
			continue
		}
		if pos[a] < 0 || pos[a] > float64(ug.dims[a]-1) {
			return false
		}
		idx[a] = int(pos[a])
		if idx[a] > ug.dims[a]-2 {
			idx[a] = ug.dims[a] - 2
		}
		fr[a] = pos[a] - float64(idx[a])
	}
	id := func(di, dj, dk int) int {
		i, j, k := idx[0], idx[1], idx[2]
		if ug.dims[0] > 1 {
			i += di
		}
		if ug.dims[1] > 1 {
			j += dj
		}
		if ug.dims[2] > 1 {
			k += dk
		}
		return i + j*ug.dims[0] + k*ug.dims[0]*ug.dims[1]
	}
	for c := 0; c < f.Components(); c++ {
		var v float64
		for dk := 0; dk < 2; dk++ {
			for dj := 0; dj < 2; dj++ {
				for di := 0; di < 2; di++ {
					w := lerpWeight(fr[0], di) * lerpWeight(fr[1], dj) * lerpWeight(fr[2], dk)
					if w == 0 {
						continue
					}
					v += w * f.At(id(di, dj, dk), c)
				}
			}
		}
		out[c] = v
	}
	return true
}

func lerpWeight(t float64, hi int) float64 {
	if hi == 1 {
		return t
	}
	return 1 - t
}

func (ug *UniformGrid) cell(i int) (CellType, []int) { return latticeVoxel(ug.dims, i) }

// pointsSettable is false: geometry is derived from dims, spacing and
// origin, so point-moving filters return a StructuredGrid instead.
func (ug *UniformGrid) pointsSettable() bool { return false }

func (ug *UniformGrid) clonePoints(pts []r3.Vec) DataSet {
	out, _ := NewStructuredGrid(ug.dims, pts)
	out.copyAttributesFrom(&ug.dataObject)
	return out
}

func (ug *UniformGrid) copyFrom(src DataSet) error {
	s, ok := src.(*UniformGrid)
	if !ok {
		return fmt.Errorf("%w: inplace result is %T, receiver is *UniformGrid", ErrInvalidValue, src)
	}
	c := s.Copy()
	*ug = *c
	return nil
}

func (ug *UniformGrid) cloneDataSet() DataSet { return ug.Copy() }
