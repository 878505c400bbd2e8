package pyvista

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Association states whether a FieldSet's arrays attach to points or cells.
type Association int

const (
	AssocPoint Association = iota
	AssocCell
)

func (a Association) String() string {
	if a == AssocCell {
		return "cell"
	}
	return "point"
}

// FieldSet is an insertion-ordered collection of named attribute arrays
// bound to one association of one dataset. Arrays must have exactly one
// tuple per point (or cell); violating lengths are rejected before they can
// reach a kernel. One array per kind may be designated "active" and is used
// by filters when no array name is given.
type FieldSet struct {
	assoc  Association
	n      int
	names  []string
	fields map[string]*Field

	activeScalars string
	activeVectors string
}

func newFieldSet(assoc Association, n int) *FieldSet {
	return &FieldSet{assoc: assoc, n: n, fields: make(map[string]*Field)}
}

// Association returns whether the set attaches to points or cells.
func (fs *FieldSet) Association() Association { return fs.assoc }

// Len returns the number of arrays.
func (fs *FieldSet) Len() int { return len(fs.names) }

// Names returns the array names in insertion order.
func (fs *FieldSet) Names() []string {
	out := make([]string, len(fs.names))
	copy(out, fs.names)
	return out
}

// Has reports whether an array with the given name exists.
func (fs *FieldSet) Has(name string) bool {
	_, ok := fs.fields[name]
	return ok
}

// Get returns the named array.
func (fs *FieldSet) Get(name string) (*Field, bool) {
	f, ok := fs.fields[name]
	return f, ok
}

// Set attaches an array under the given name, replacing any previous one.
// The tuple count must match the owning dataset's point or cell count. The
// first one-component array becomes the active scalars and the first
// three-component array the active vectors, unless already designated.
func (fs *FieldSet) Set(name string, f *Field) error {
	if f == nil {
		return fmt.Errorf("%w: nil field %q", ErrArgumentType, name)
	}
	if f.NumTuples() != fs.n {
		return fmt.Errorf("%w: %s array %q has %d tuples, want %d",
			ErrArgumentType, fs.assoc, name, f.NumTuples(), fs.n)
	}
	if !fs.Has(name) {
		fs.names = append(fs.names, name)
	}
	fs.fields[name] = f
	if fs.activeScalars == "" && f.Components() == 1 {
		fs.activeScalars = name
	}
	if fs.activeVectors == "" && f.Components() == 3 {
		fs.activeVectors = name
	}
	return nil
}

// SetScalars is shorthand for Set(name, Scalars(values)).
func (fs *FieldSet) SetScalars(name string, values []float64) error {
	return fs.Set(name, Scalars(values))
}

// SetVectors is shorthand for Set(name, Vectors(vecs)).
func (fs *FieldSet) SetVectors(name string, vecs []r3.Vec) error {
	return fs.Set(name, Vectors(vecs))
}

// Remove detaches the named array, reporting whether it existed.
func (fs *FieldSet) Remove(name string) bool {
	if !fs.Has(name) {
		return false
	}
	delete(fs.fields, name)
	for i, n := range fs.names {
		if n == name {
			fs.names = append(fs.names[:i], fs.names[i+1:]...)
			break
		}
	}
	if fs.activeScalars == name {
		fs.activeScalars = ""
	}
	if fs.activeVectors == name {
		fs.activeVectors = ""
	}
	return true
}

// Clear detaches all arrays.
func (fs *FieldSet) Clear() {
	fs.names = nil
	fs.fields = make(map[string]*Field)
	fs.activeScalars = ""
	fs.activeVectors = ""
}

// ActiveScalarsName returns the designated scalars name, or "".
func (fs *FieldSet) ActiveScalarsName() string { return fs.activeScalars }

// ActiveVectorsName returns the designated vectors name, or "".
func (fs *FieldSet) ActiveVectorsName() string { return fs.activeVectors }

// SetActiveScalars designates the active scalars array. An empty name
// clears the designation.
func (fs *FieldSet) SetActiveScalars(name string) error {
	if name != "" && !fs.Has(name) {
		return fmt.Errorf("%w: %s array %q", ErrMissingData, fs.assoc, name)
	}
	fs.activeScalars = name
	return nil
}

// SetActiveVectors designates the active vectors array. An empty name
// clears the designation.
func (fs *FieldSet) SetActiveVectors(name string) error {
	if name != "" {
		f, ok := fs.Get(name)
		if !ok {
			return fmt.Errorf("%w: %s array %q", ErrMissingData, fs.assoc, name)
		}
		if f.Components() != 3 {
			return fmt.Errorf("%w: %s array %q has %d components, vectors need 3",
				ErrArgumentType, fs.assoc, name, f.Components())
		}
	}
	fs.activeVectors = name
	return nil
}

// ActiveScalars returns the active scalars array, or nil.
func (fs *FieldSet) ActiveScalars() *Field {
	if fs.activeScalars == "" {
		return nil
	}
	return fs.fields[fs.activeScalars]
}

// ActiveVectors returns the active vectors array, or nil.
func (fs *FieldSet) ActiveVectors() *Field {
	if fs.activeVectors == "" {
		return nil
	}
	return fs.fields[fs.activeVectors]
}

// Copy returns a deep copy bound to the same length.
func (fs *FieldSet) Copy() *FieldSet {
	out := newFieldSet(fs.assoc, fs.n)
	out.names = append([]string(nil), fs.names...)
	for name, f := range fs.fields {
		out.fields[name] = f.Copy()
	}
	out.activeScalars = fs.activeScalars
	out.activeVectors = fs.activeVectors
	return out
}

// subset returns a copy restricted to the given tuples, preserving names,
// order and active designations.
func (fs *FieldSet) subset(n int, idx []int) *FieldSet {
	out := newFieldSet(fs.assoc, n)
	out.names = append([]string(nil), fs.names...)
	for name, f := range fs.fields {
		out.fields[name] = f.subset(idx)
	}
	out.activeScalars = fs.activeScalars
	out.activeVectors = fs.activeVectors
	return out
}

// adoptFrom deep-copies every array and active designation from src into
// the (freshly initialized) receiver; used when geometry survives a filter
// unchanged. Lengths must match.
func (fs *FieldSet) adoptFrom(src *FieldSet) {
	if fs.n != src.n {
		return
	}
	for _, name := range src.names {
		if !fs.Has(name) {
			fs.names = append(fs.names, name)
		}
		fs.fields[name] = src.fields[name].Copy()
	}
	fs.activeScalars = src.activeScalars
	fs.activeVectors = src.activeVectors
}
