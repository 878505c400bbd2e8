package pyvista

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Field is one attribute array: a flat float64 buffer carrying a fixed
// number of components per tuple. One tuple corresponds to one point or one
// cell of the dataset the field is attached to.
type Field struct {
	components int
	data       []float64
}

// NewField allocates a zero-filled field of tuples x components values.
func NewField(components, tuples int) *Field {
	if components < 1 {
		components = 1
	}
	return &Field{components: components, data: make([]float64, components*tuples)}
}

// Scalars wraps a value slice as a one-component field. The slice is not
// copied.
func Scalars(values []float64) *Field {
	return &Field{components: 1, data: values}
}

// Vectors builds a three-component field from a vector slice.
func Vectors(vecs []r3.Vec) *Field {
	f := NewField(3, len(vecs))
	for i, v := range vecs {
		f.SetVec(i, v)
	}
	return f
}

// Components returns the number of components per tuple.
func (f *Field) Components() int { return f.components }

// NumTuples returns the number of tuples.
func (f *Field) NumTuples() int { return len(f.data) / f.components }

// Data returns the underlying flat buffer.
func (f *Field) Data() []float64 { return f.data }

// At returns component j of tuple i.
func (f *Field) At(i, j int) float64 { return f.data[i*f.components+j] }

// SetAt stores component j of tuple i.
func (f *Field) SetAt(i, j int, v float64) { f.data[i*f.components+j] = v }

// Value returns tuple i of a one-component field. For wider fields it
// returns the tuple's Euclidean magnitude, the conventional scalar reading
// of vector data.
func (f *Field) Value(i int) float64 {
	if f.components == 1 {
		return f.data[i]
	}
	var sum float64
	for j := 0; j < f.components; j++ {
		v := f.At(i, j)
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Vec returns tuple i of a three-component field.
func (f *Field) Vec(i int) r3.Vec {
	return r3.Vec{X: f.At(i, 0), Y: f.At(i, 1), Z: f.At(i, 2)}
}

// SetVec stores tuple i of a three-component field.
func (f *Field) SetVec(i int, v r3.Vec) {
	f.SetAt(i, 0, v.X)
	f.SetAt(i, 1, v.Y)
	f.SetAt(i, 2, v.Z)
}

// Tuple returns tuple i as a slice aliasing the buffer.
func (f *Field) Tuple(i int) []float64 {
	return f.data[i*f.components : (i+1)*f.components]
}

// Range returns the minimum and maximum over Value(i). An empty field
// returns (0, 0).
func (f *Field) Range() (lo, hi float64) {
	n := f.NumTuples()
	if n == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		v := f.Value(i)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Copy returns a deep copy of the field.
func (f *Field) Copy() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return &Field{components: f.components, data: data}
}

// subset returns a new field holding the given tuples in order.
func (f *Field) subset(idx []int) *Field {
	out := NewField(f.components, len(idx))
	for i, src := range idx {
		copy(out.Tuple(i), f.Tuple(src))
	}
	return out
}

// lerpTuples fills dst tuple i with the interpolation of tuples a and b.
func (f *Field) lerpInto(out *Field, i, a, b int, t float64) {
	for j := 0; j < f.components; j++ {
		va, vb := f.At(a, j), f.At(b, j)
		out.SetAt(i, j, va+(vb-va)*t)
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("Field(%d x %d)", f.NumTuples(), f.components)
}
