package pyvista

import (
	"fmt"
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// SampleOptions configures Sample.
type SampleOptions struct {
	// Tolerance bounds the nearest-point fallback: target points farther
	// than this from any source point are marked invalid. Zero means no
	// bound.
	Tolerance float64
}

// Sample interpolates the source's point arrays onto the target's points:
// trilinearly when the source is a UniformGrid, by nearest source point
// otherwise. The result is a copy of the target with the sampled arrays
// plus a "ValidPointMask" scalar marking points the source could resolve.
func Sample(target, source DataSet, o *SampleOptions) (DataSet, error) {
	if o == nil {
		o = &SampleOptions{}
	}
	out := target.cloneDataSet()
	pts := out.Points()
	src := source.PointData()
	mask := make([]float64, len(pts))

	grid, trilin := source.(*UniformGrid)
	var loc *pointLocator
	if !trilin {
		loc = newPointLocator(source.Points())
	}
	fields := make(map[string]*Field, src.Len())
	for _, name := range src.Names() {
		f, _ := src.Get(name)
		fields[name] = NewField(f.Components(), len(pts))
	}
	for i, p := range pts {
		if trilin {
			ok := true
			for _, name := range src.Names() {
				f, _ := src.Get(name)
				if !grid.trilinear(p, f, fields[name].Tuple(i)) {
					ok = false
				}
			}
			if ok {
				mask[i] = 1
			}
			continue
		}
		ni, dist := loc.nearest(p)
		if ni < 0 || (o.Tolerance > 0 && dist > o.Tolerance) {
			continue
		}
		mask[i] = 1
		for _, name := range src.Names() {
			f, _ := src.Get(name)
			copy(fields[name].Tuple(i), f.Tuple(ni))
		}
	}
	for _, name := range src.Names() {
		if err := out.PointData().Set(name, fields[name]); err != nil {
			return nil, err
		}
	}
	if err := out.PointData().SetScalars("ValidPointMask", mask); err != nil {
		return nil, err
	}
	return out, nil
}

// Probe samples the receiver dataset's point arrays onto the probe
// geometry; it is Sample with the roles swapped.
func Probe(ds DataSet, probe DataSet, o *SampleOptions) (DataSet, error) {
	return Sample(probe, ds, o)
}

// SampleOverLineOptions configures SampleOverLine.
type SampleOverLineOptions struct {
	// Resolution is the number of line segments; zero means 100.
	Resolution int
	Tolerance  float64
}

// SampleOverLine samples the dataset's point arrays along the segment from
// a to b, returning a polyline whose points additionally carry the
// "Distance" array measured from a.
func SampleOverLine(ds DataSet, a, b r3.Vec, o *SampleOverLineOptions) (*PolyData, error) {
	if o == nil {
		o = &SampleOverLineOptions{}
	}
	res := o.Resolution
	if res <= 0 {
		res = 100
	}
	line := Line(a, b, res)
	sampled, err := Sample(line, ds, &SampleOptions{Tolerance: o.Tolerance})
	if err != nil {
		return nil, err
	}
	out := sampled.(*PolyData)
	dist := make([]float64, out.NumPoints())
	for i, p := range out.Points() {
		dist[i] = r3.Norm(r3.Sub(p, a))
	}
	if err := out.PointData().SetScalars("Distance", dist); err != nil {
		return nil, err
	}
	return out, nil
}

// InterpolateOptions configures Interpolate.
type InterpolateOptions struct {
	// Radius is the neighborhood radius; zero means 1.
	Radius float64
	// Sharpness shapes the Gaussian kernel; zero means 2.
	Sharpness float64
	// NullValue fills tuples of points with no source neighbor in range.
	NullValue float64
}

// Interpolate carries the source's point arrays onto the target's points by
// Gaussian-weighted averaging over the source points within a radius.
func Interpolate(target, source DataSet, o *InterpolateOptions) (DataSet, error) {
	if o == nil {
		o = &InterpolateOptions{}
	}
	radius := o.Radius
	if radius <= 0 {
		radius = 1
	}
	sharpness := o.Sharpness
	if sharpness == 0 {
		sharpness = 2
	}
	out := target.cloneDataSet()
	pts := out.Points()
	loc := newPointLocator(source.Points())
	spts := source.Points()
	src := source.PointData()
	for _, name := range src.Names() {
		f, _ := src.Get(name)
		nf := NewField(f.Components(), len(pts))
		for i, p := range pts {
			nbrs := loc.within(p, radius)
			if len(nbrs) == 0 {
				for j := 0; j < f.Components(); j++ {
					nf.SetAt(i, j, o.NullValue)
				}
				continue
			}
			var wsum float64
			acc := make([]float64, f.Components())
			for _, ni := range nbrs {
				d := r3.Norm(r3.Sub(p, spts[ni]))
				w := math.Exp(-(sharpness * d / radius) * (sharpness * d / radius))
				wsum += w
				for j := 0; j < f.Components(); j++ {
					acc[j] += w * f.At(ni, j)
				}
			}
			for j := 0; j < f.Components(); j++ {
				nf.SetAt(i, j, acc[j]/wsum)
			}
		}
		if err := out.PointData().Set(name, nf); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SelectEnclosedPointsOptions configures SelectEnclosedPoints.
type SelectEnclosedPointsOptions struct {
	// Invert marks points outside the surface instead.
	Invert bool
	// SkipSurfaceCheck disables the closed-surface precondition.
	SkipSurfaceCheck bool
}

// SelectEnclosedPoints marks the points inside a closed surface, attaching
// the 0/1 point array "SelectedPoints" to a copy of the dataset. An open
// surface is rejected unless the check is skipped.
func SelectEnclosedPoints(ds DataSet, surface *PolyData, o *SelectEnclosedPointsOptions) (DataSet, error) {
	if o == nil {
		o = &SelectEnclosedPointsOptions{}
	}
	if !o.SkipSurfaceCheck {
		if open := surface.NumOpenEdges(); open > 0 {
			return nil, fmt.Errorf("%w: surface has %d open edges, enclosure is undefined",
				ErrInvalidValue, open)
		}
	}
	out := ds.cloneDataSet()
	selected := make([]float64, out.NumPoints())
	for i, p := range out.Points() {
		in := surfaceEncloses(surface, p)
		if in != o.Invert {
			selected[i] = 1
		}
	}
	if err := out.PointData().SetScalars("SelectedPoints", selected); err != nil {
		return nil, err
	}
	return out, nil
}

// surfaceEncloses reports whether p lies inside the surface by ray-crossing
// parity. The ray direction is irrational-ish to dodge edge-grazing hits.
func surfaceEncloses(surface *PolyData, p r3.Vec) bool {
	if !surface.Bounds().Contains(p) {
		return false
	}
	dir := r3.Unit(r3.Vec{X: 0.5773502691896258, Y: 0.5773502691896261, Z: 0.5773502691896255})
	tris, _ := surface.triangles()
	pts := surface.Points()
	hits := 0
	for _, t := range tris {
		if _, ok := kernel.RayTriangle(p, dir, pts[t[0]], pts[t[1]], pts[t[2]]); ok {
			hits++
		}
	}
	return hits%2 == 1
}

// ComputeImplicitDistanceOptions configures ComputeImplicitDistance.
type ComputeImplicitDistanceOptions struct {
	Inplace bool
}

// ComputeImplicitDistance attaches the signed distance from each point to a
// surface as the point array "implicit_distance" (negative inside).
func ComputeImplicitDistance(ds DataSet, surface *PolyData, o *ComputeImplicitDistanceOptions) (DataSet, error) {
	if o == nil {
		o = &ComputeImplicitDistanceOptions{}
	}
	d, err := implicitDistances(ds.Points(), surface)
	if err != nil {
		return nil, err
	}
	out := ds.cloneDataSet()
	if err := out.PointData().SetScalars("implicit_distance", d); err != nil {
		return nil, err
	}
	return finishInplace(ds, out, o.Inplace)
}
