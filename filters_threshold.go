package pyvista

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ThresholdOptions configures Threshold.
type ThresholdOptions struct {
	// Scalars names the array to threshold by; "" uses the active scalars.
	Scalars string
	// Value selects the kept range: nil keeps the full data range, one
	// value is a lower bound, two values are [min, max] with min <= max.
	// More values are invalid.
	Value []float64
	// Invert keeps the cells outside the range instead.
	Invert bool
	// AllScalars requires every point of a cell to pass when thresholding
	// point scalars; the default keeps a cell when any point passes.
	AllScalars bool
}

// Threshold keeps the cells whose scalars fall in a range. Cell scalars
// select cells directly; point scalars select by the any/all policy. The
// result is always an UnstructuredGrid.
func Threshold(ds DataSet, o *ThresholdOptions) (*UnstructuredGrid, error) {
	if o == nil {
		o = &ThresholdOptions{}
	}
	f, assoc, _, err := resolveScalars(ds, o.Scalars)
	if err != nil {
		return nil, err
	}
	lo, hi, err := thresholdRange(f, o.Value)
	if err != nil {
		return nil, err
	}
	pass := func(v float64) bool {
		in := v >= lo && v <= hi
		return in != o.Invert
	}
	var kept []int
	for ci := 0; ci < ds.NumCells(); ci++ {
		var ok bool
		if assoc == AssocCell {
			ok = pass(f.Value(ci))
		} else {
			_, conn := ds.cell(ci)
			if o.AllScalars {
				ok = true
				for _, p := range conn {
					if !pass(f.Value(p)) {
						ok = false
						break
					}
				}
			} else {
				for _, p := range conn {
					if pass(f.Value(p)) {
						ok = true
						break
					}
				}
			}
		}
		if ok {
			kept = append(kept, ci)
		}
	}
	Logger().Debug("threshold", "cells", ds.NumCells(), "kept", len(kept), "lo", lo, "hi", hi)
	if len(kept) == 0 {
		Logger().Warn("threshold kept no cells", "lo", lo, "hi", hi)
	}
	return extractCells(ds, kept), nil
}

func thresholdRange(f *Field, value []float64) (lo, hi float64, err error) {
	switch len(value) {
	case 0:
		lo, hi = f.Range()
	case 1:
		lo = value[0]
		_, hi = f.Range()
	case 2:
		lo, hi = value[0], value[1]
		if lo > hi {
			return 0, 0, fmt.Errorf("%w: threshold range [%g, %g] has min > max",
				ErrInvalidValue, lo, hi)
		}
	default:
		return 0, 0, fmt.Errorf("%w: threshold value needs at most 2 elements, got %d",
			ErrInvalidValue, len(value))
	}
	return lo, hi, nil
}

// ThresholdPercentOptions configures ThresholdPercent.
type ThresholdPercentOptions struct {
	// Scalars names the array to threshold by; "" uses the active scalars.
	Scalars string
	// Percent selects the kept range as fractions of the data range: one
	// value is a lower bound, two values are [min, max]. Values above 1 are
	// read as percentages. Nil means 0.5.
	Percent    []float64
	Invert     bool
	AllScalars bool
}

// ThresholdPercent is Threshold with the range given as fractions of the
// scalar range.
func ThresholdPercent(ds DataSet, o *ThresholdPercentOptions) (*UnstructuredGrid, error) {
	if o == nil {
		o = &ThresholdPercentOptions{}
	}
	f, _, _, err := resolveScalars(ds, o.Scalars)
	if err != nil {
		return nil, err
	}
	pct := o.Percent
	if len(pct) == 0 {
		pct = []float64{0.5}
	}
	if len(pct) > 2 {
		return nil, fmt.Errorf("%w: threshold percent needs at most 2 elements, got %d",
			ErrInvalidValue, len(pct))
	}
	lo, hi := f.Range()
	value := make([]float64, len(pct))
	for i, p := range pct {
		if p > 1 {
			p /= 100
		}
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: threshold percent %g", ErrInvalidValue, pct[i])
		}
		value[i] = lo + p*(hi-lo)
	}
	return Threshold(ds, &ThresholdOptions{
		Scalars:    o.Scalars,
		Value:      value,
		Invert:     o.Invert,
		AllScalars: o.AllScalars,
	})
}

// ContourOptions configures Contour.
type ContourOptions struct {
	// Scalars names the point array to contour; "" uses the active scalars.
	Scalars string
	// Isosurfaces is the number of evenly spaced iso values; zero means 10.
	// Ignored when Values is set.
	Isosurfaces int
	// Values lists explicit iso values.
	Values []float64
	// Range bounds the evenly spaced values; nil means the data range.
	Range *[2]float64
}

// Contour extracts isosurfaces of a point scalar field. Volume cells yield
// triangles and surface cells yield iso lines; cell scalars are rejected.
func Contour(ds DataSet, o *ContourOptions) (*PolyData, error) {
	if o == nil {
		o = &ContourOptions{}
	}
	f, _, err := resolvePointScalars(ds, o.Scalars)
	if err != nil {
		return nil, err
	}
	values := o.Values
	if len(values) == 0 {
		lo, hi := f.Range()
		if o.Range != nil {
			lo, hi = o.Range[0], o.Range[1]
		}
		n := o.Isosurfaces
		if n <= 0 {
			n = 10
		}
		if n == 1 {
			values = []float64{(lo + hi) / 2}
		} else {
			values = floats.Span(make([]float64, n), lo, hi)
		}
	}
	n := ds.NumPoints()
	d := make([]float64, n)
	parts := make([]DataSet, 0, len(values))
	for _, v := range values {
		for i := 0; i < n; i++ {
			d[i] = f.Value(i) - v
		}
		part, err := isoExtract(ds, d)
		if err != nil {
			return nil, err
		}
		if part.NumPoints() > 0 {
			parts = append(parts, part)
		}
	}
	Logger().Debug("contour", "values", len(values), "nonempty", len(parts))
	if len(parts) == 0 {
		Logger().Warn("contour produced no cells", "values", values)
		return newPolyData(nil, &Cells{}), nil
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, err
	}
	return merged.(*PolyData), nil
}
