package pyvista

import "fmt"

// Cells stores cell connectivity as flat offset, connectivity and type
// arrays, the layout unstructured datasets use internally.
type Cells struct {
	offsets []int // len = NumCells()+1; offsets[0] == 0
	conn    []int
	types   []CellType
}

// NumCells returns the number of cells.
func (c *Cells) NumCells() int { return len(c.types) }

// Append adds one cell.
func (c *Cells) Append(ct CellType, conn ...int) {
	if len(c.offsets) == 0 {
		c.offsets = []int{0}
	}
	c.conn = append(c.conn, conn...)
	c.offsets = append(c.offsets, len(c.conn))
	c.types = append(c.types, ct)
}

// Cell returns the type and connectivity of cell i. The connectivity slice
// aliases the internal buffer.
func (c *Cells) Cell(i int) (CellType, []int) {
	return c.types[i], c.conn[c.offsets[i]:c.offsets[i+1]]
}

// Type returns the type of cell i.
func (c *Cells) Type(i int) CellType { return c.types[i] }

// Copy returns a deep copy.
func (c *Cells) Copy() *Cells {
	out := &Cells{
		offsets: append([]int(nil), c.offsets...),
		conn:    append([]int(nil), c.conn...),
		types:   append([]CellType(nil), c.types...),
	}
	return out
}

// Legacy returns the connectivity in the VTK legacy encoding
// [n, i0, ... i(n-1), n, ...], the layout PolyData faces historically use.
func (c *Cells) Legacy() []int {
	out := make([]int, 0, len(c.conn)+c.NumCells())
	for i := 0; i < c.NumCells(); i++ {
		_, conn := c.Cell(i)
		out = append(out, len(conn))
		out = append(out, conn...)
	}
	return out
}

// cellsFromLegacy parses the VTK legacy encoding, classifying each cell by
// its vertex count using the given classifier.
func cellsFromLegacy(legacy []int, classify func(n int) (CellType, error)) (*Cells, error) {
	c := &Cells{}
	for i := 0; i < len(legacy); {
		n := legacy[i]
		if n < 1 || i+1+n > len(legacy) {
			return nil, fmt.Errorf("%w: malformed legacy cell array at offset %d", ErrInvalidValue, i)
		}
		ct, err := classify(n)
		if err != nil {
			return nil, err
		}
		c.Append(ct, legacy[i+1:i+1+n]...)
		i += 1 + n
	}
	return c, nil
}
