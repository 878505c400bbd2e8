package pyvista

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// TransformOptions configures the rigid-motion filters.
type TransformOptions struct {
	// TransformAllVectors also applies the linear part of the transform to
	// every three-component point and cell array.
	TransformAllVectors bool
	Inplace             bool
}

// ApplyTransform applies a 4x4 transform to the point coordinates. Grid
// variants with derived geometry come back as StructuredGrids and reject
// Inplace.
func ApplyTransform(ds DataSet, t *Transform, o *TransformOptions) (DataSet, error) {
	if o == nil {
		o = &TransformOptions{}
	}
	pts := ds.Points()
	npts := make([]r3.Vec, len(pts))
	for i, p := range pts {
		npts[i] = t.Apply(p)
	}
	out := ds.clonePoints(npts)
	if o.TransformAllVectors {
		transformVectorArrays(out.PointData(), t)
		transformVectorArrays(out.CellData(), t)
	}
	return finishInplace(ds, out, o.Inplace)
}

func transformVectorArrays(fs *FieldSet, t *Transform) {
	for _, name := range fs.names {
		f := fs.fields[name]
		if f.Components() != 3 {
			continue
		}
		for i := 0; i < f.NumTuples(); i++ {
			f.SetVec(i, t.ApplyVector(f.Vec(i)))
		}
	}
}

// Translate shifts the dataset by a vector.
func Translate(ds DataSet, v r3.Vec, o *TransformOptions) (DataSet, error) {
	return ApplyTransform(ds, NewTransform().Translate(v), o)
}

// Scale scales the dataset about the coordinate origin.
func Scale(ds DataSet, s r3.Vec, o *TransformOptions) (DataSet, error) {
	return ApplyTransform(ds, NewTransform().Scale(s.X, s.Y, s.Z), o)
}

// RotateOptions configures the axis rotations.
type RotateOptions struct {
	// Point is the rotation center. Nil means the coordinate origin.
	Point               *r3.Vec
	TransformAllVectors bool
	Inplace             bool
}

// RotateX rotates about an x-parallel axis by the given angle in degrees.
func RotateX(ds DataSet, deg float64, o *RotateOptions) (DataSet, error) {
	return rotateAxis(ds, r3.Vec{X: 1}, deg, o)
}

// RotateY rotates about a y-parallel axis by the given angle in degrees.
func RotateY(ds DataSet, deg float64, o *RotateOptions) (DataSet, error) {
	return rotateAxis(ds, r3.Vec{Y: 1}, deg, o)
}

// RotateZ rotates about a z-parallel axis by the given angle in degrees.
func RotateZ(ds DataSet, deg float64, o *RotateOptions) (DataSet, error) {
	return rotateAxis(ds, r3.Vec{Z: 1}, deg, o)
}

// RotateVector rotates about an arbitrary axis by the given angle in
// degrees.
func RotateVector(ds DataSet, axis r3.Vec, deg float64, o *RotateOptions) (DataSet, error) {
	return rotateAxis(ds, axis, deg, o)
}

func rotateAxis(ds DataSet, axis r3.Vec, deg float64, o *RotateOptions) (DataSet, error) {
	if o == nil {
		o = &RotateOptions{}
	}
	t := NewTransform()
	if o.Point != nil {
		t.Translate(*o.Point)
	}
	t.RotateVector(axis, deg)
	if o.Point != nil {
		t.Translate(r3.Scale(-1, *o.Point))
	}
	return ApplyTransform(ds, t, &TransformOptions{
		TransformAllVectors: o.TransformAllVectors,
		Inplace:             o.Inplace,
	})
}

// ReflectOptions configures Reflect.
type ReflectOptions struct {
	// Point is a point on the reflection plane. Nil means the coordinate
	// origin.
	Point *r3.Vec
	// TransformAllVectors also reflects every three-component array.
	TransformAllVectors bool
	Inplace             bool
}

// Reflect mirrors the dataset across the plane with the given normal.
func Reflect(ds DataSet, normal r3.Vec, o *ReflectOptions) (DataSet, error) {
	if o == nil {
		o = &ReflectOptions{}
	}
	var point r3.Vec
	if o.Point != nil {
		point = *o.Point
	}
	t, err := ReflectTransform(normal, point)
	if err != nil {
		return nil, err
	}
	return ApplyTransform(ds, t, &TransformOptions{
		TransformAllVectors: o.TransformAllVectors,
		Inplace:             o.Inplace,
	})
}

// FlipOptions configures the axis flips.
type FlipOptions struct {
	// Point is a point on the mirror plane. Nil means the dataset center.
	Point   *r3.Vec
	Inplace bool
}

// FlipX mirrors the dataset across a yz plane through the center (or the
// given point).
func FlipX(ds DataSet, o *FlipOptions) (DataSet, error) {
	return flipAxis(ds, r3.Vec{X: 1}, o)
}

// FlipY mirrors the dataset across an xz plane through the center (or the
// given point).
func FlipY(ds DataSet, o *FlipOptions) (DataSet, error) {
	return flipAxis(ds, r3.Vec{Y: 1}, o)
}

// FlipZ mirrors the dataset across an xy plane through the center (or the
// given point).
func FlipZ(ds DataSet, o *FlipOptions) (DataSet, error) {
	return flipAxis(ds, r3.Vec{Z: 1}, o)
}

func flipAxis(ds DataSet, normal r3.Vec, o *FlipOptions) (DataSet, error) {
	if o == nil {
		o = &FlipOptions{}
	}
	point := ds.Center()
	if o.Point != nil {
		point = *o.Point
	}
	return Reflect(ds, normal, &ReflectOptions{Point: &point, Inplace: o.Inplace})
}

// WarpByScalarOptions configures WarpByScalar.
type WarpByScalarOptions struct {
	// Scalars names the point array to warp by; "" uses the active scalars.
	Scalars string
	// Factor scales the displacement; zero means 1.
	Factor float64
	// Normal is the warp direction. Nil means +z.
	Normal  *r3.Vec
	Inplace bool
}

// WarpByScalar displaces each point along a direction by its scalar value.
func WarpByScalar(ds DataSet, o *WarpByScalarOptions) (DataSet, error) {
	if o == nil {
		o = &WarpByScalarOptions{}
	}
	f, _, err := resolvePointScalars(ds, o.Scalars)
	if err != nil {
		return nil, err
	}
	factor := o.Factor
	if factor == 0 {
		factor = 1
	}
	normal := r3.Vec{Z: 1}
	if o.Normal != nil {
		normal = unitOr(*o.Normal, r3.Vec{Z: 1})
	}
	pts := ds.Points()
	npts := make([]r3.Vec, len(pts))
	for i, p := range pts {
		npts[i] = r3.Add(p, r3.Scale(factor*f.Value(i), normal))
	}
	return finishInplace(ds, ds.clonePoints(npts), o.Inplace)
}

// WarpByVectorOptions configures WarpByVector.
type WarpByVectorOptions struct {
	// Vectors names the point array to warp by; "" uses the active vectors.
	// The array must have three components.
	Vectors string
	// Factor scales the displacement; zero means 1.
	Factor  float64
	Inplace bool
}

// WarpByVector displaces each point by its vector value.
func WarpByVector(ds DataSet, o *WarpByVectorOptions) (DataSet, error) {
	if o == nil {
		o = &WarpByVectorOptions{}
	}
	f, _, err := resolvePointVectors(ds, o.Vectors)
	if err != nil {
		return nil, err
	}
	factor := o.Factor
	if factor == 0 {
		factor = 1
	}
	pts := ds.Points()
	npts := make([]r3.Vec, len(pts))
	for i, p := range pts {
		npts[i] = r3.Add(p, r3.Scale(factor, f.Vec(i)))
	}
	return finishInplace(ds, ds.clonePoints(npts), o.Inplace)
}
