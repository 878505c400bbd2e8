package kernel

import "fmt"

// CellType identifies the topology of a single cell. The numeric values
// follow the VTK file-format cell ids so that connectivity written by this
// package round-trips with external tooling.
type CellType uint8

const (
	Vertex        CellType = 1
	PolyVertex    CellType = 2
	Line          CellType = 3
	PolyLine      CellType = 4
	Triangle      CellType = 5
	TriangleStrip CellType = 6
	Polygon       CellType = 7
	Pixel         CellType = 8
	Quad          CellType = 9
	Tetra         CellType = 10
	Voxel         CellType = 11
	Hexahedron    CellType = 12
	Wedge         CellType = 13
	Pyramid       CellType = 14
)

// String returns the conventional name of the cell type.
func (c CellType) String() string {
	switch c {
	case Vertex:
		return "vertex"
	case PolyVertex:
		return "polyvertex"
	case Line:
		return "line"
	case PolyLine:
		return "polyline"
	case Triangle:
		return "triangle"
	case TriangleStrip:
		return "trianglestrip"
	case Polygon:
		return "polygon"
	case Pixel:
		return "pixel"
	case Quad:
		return "quad"
	case Tetra:
		return "tetra"
	case Voxel:
		return "voxel"
	case Hexahedron:
		return "hexahedron"
	case Wedge:
		return "wedge"
	case Pyramid:
		return "pyramid"
	}
	return fmt.Sprintf("celltype(%d)", uint8(c))
}

// Dimension returns the topological dimension of the cell type: 0 for
// vertices, 1 for lines, 2 for surface cells, 3 for volume cells.
func (c CellType) Dimension() int {
	switch c {
	case Vertex, PolyVertex:
		return 0
	case Line, PolyLine:
		return 1
	case Triangle, TriangleStrip, Polygon, Pixel, Quad:
		return 2
	case Tetra, Voxel, Hexahedron, Wedge, Pyramid:
		return 3
	}
	return -1
}

// voxelToHex reorders a voxel's x-fastest vertex numbering into the
// counter-clockwise hexahedron numbering used by the volume tables.
var voxelToHex = [8]int{0, 1, 3, 2, 4, 5, 7, 6}

// hexTets is the six-tetrahedra decomposition of a hexahedron. All six
// share the 0-6 body diagonal, so neighboring hexahedra with mirrored
// orientation still tile space without gaps.
var hexTets = [6][4]int{
	{0, 1, 2, 6},
	{0, 2, 3, 6},
	{0, 3, 7, 6},
	{0, 7, 4, 6},
	{0, 4, 5, 6},
	{0, 5, 1, 6},
}

var wedgeTets = [3][4]int{
	{0, 1, 2, 3},
	{1, 2, 3, 4},
	{2, 3, 4, 5},
}

var pyramidTets = [2][4]int{
	{0, 1, 2, 4},
	{0, 2, 3, 4},
}

// hexFaces lists the six quad faces of a hexahedron with outward
// orientation.
var hexFaces = [6][4]int{
	{0, 3, 2, 1},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

var tetFaces = [4][3]int{
	{0, 2, 1},
	{0, 1, 3},
	{1, 2, 3},
	{0, 3, 2},
}

var wedgeTriFaces = [2][3]int{
	{0, 2, 1},
	{3, 4, 5},
}

var wedgeQuadFaces = [3][4]int{
	{0, 1, 4, 3},
	{1, 2, 5, 4},
	{2, 0, 3, 5},
}

// Triangulate decomposes a surface cell into triangles of its own vertex
// ids. Volume and lower-dimensional cells return nil.
func Triangulate(ct CellType, conn []int) [][3]int {
	switch ct {
	case Triangle:
		return [][3]int{{conn[0], conn[1], conn[2]}}
	case Quad:
		return [][3]int{{conn[0], conn[1], conn[2]}, {conn[0], conn[2], conn[3]}}
	case Pixel:
		return [][3]int{{conn[0], conn[1], conn[3]}, {conn[0], conn[3], conn[2]}}
	case Polygon:
		if len(conn) < 3 {
			return nil
		}
		tris := make([][3]int, 0, len(conn)-2)
		for i := 1; i < len(conn)-1; i++ {
			tris = append(tris, [3]int{conn[0], conn[i], conn[i+1]})
		}
		return tris
	case TriangleStrip:
		if len(conn) < 3 {
			return nil
		}
		tris := make([][3]int, 0, len(conn)-2)
		for i := 0; i < len(conn)-2; i++ {
			if i%2 == 0 {
				tris = append(tris, [3]int{conn[i], conn[i+1], conn[i+2]})
			} else {
				tris = append(tris, [3]int{conn[i+1], conn[i], conn[i+2]})
			}
		}
		return tris
	}
	return nil
}

// Tetrahedralize decomposes a volume cell into tetrahedra of its own vertex
// ids. Non-volume cells return nil.
func Tetrahedralize(ct CellType, conn []int) [][4]int {
	pick := func(tables [][4]int, idx []int) [][4]int {
		tets := make([][4]int, len(tables))
		for i, t := range tables {
			for j := 0; j < 4; j++ {
				tets[i][j] = idx[t[j]]
			}
		}
		return tets
	}
	switch ct {
	case Tetra:
		return [][4]int{{conn[0], conn[1], conn[2], conn[3]}}
	case Hexahedron:
		return pick(hexTets[:], conn)
	case Voxel:
		hex := make([]int, 8)
		for i, v := range voxelToHex {
			hex[i] = conn[v]
		}
		return pick(hexTets[:], hex)
	case Wedge:
		return pick(wedgeTets[:], conn)
	case Pyramid:
		return pick(pyramidTets[:], conn)
	}
	return nil
}

// Faces returns the boundary faces of a cell as vertex-id rings: the quad
// and triangle faces of volume cells, the cell itself for surface cells.
func Faces(ct CellType, conn []int) [][]int {
	ring := func(ids ...int) []int {
		r := make([]int, len(ids))
		for i, v := range ids {
			r[i] = conn[v]
		}
		return r
	}
	switch ct {
	case Triangle, Quad, Polygon:
		out := make([]int, len(conn))
		copy(out, conn)
		return [][]int{out}
	case Pixel:
		return [][]int{ring(0, 1, 3, 2)}
	case TriangleStrip:
		tris := Triangulate(ct, conn)
		faces := make([][]int, len(tris))
		for i, t := range tris {
			faces[i] = []int{t[0], t[1], t[2]}
		}
		return faces
	case Tetra:
		faces := make([][]int, 0, 4)
		for _, f := range tetFaces {
			faces = append(faces, ring(f[0], f[1], f[2]))
		}
		return faces
	case Hexahedron, Voxel:
		idx := conn
		if ct == Voxel {
			idx = make([]int, 8)
			for i, v := range voxelToHex {
				idx[i] = conn[v]
			}
		}
		faces := make([][]int, 0, 6)
		for _, f := range hexFaces {
			faces = append(faces, []int{idx[f[0]], idx[f[1]], idx[f[2]], idx[f[3]]})
		}
		return faces
	case Wedge:
		faces := make([][]int, 0, 5)
		for _, f := range wedgeTriFaces {
			faces = append(faces, ring(f[0], f[1], f[2]))
		}
		for _, f := range wedgeQuadFaces {
			faces = append(faces, ring(f[0], f[1], f[2], f[3]))
		}
		return faces
	case Pyramid:
		faces := [][]int{ring(0, 3, 2, 1)}
		for i := 0; i < 4; i++ {
			faces = append(faces, ring(i, (i+1)%4, 4))
		}
		return faces
	}
	return nil
}

// Edges returns the unique edges of a cell as index pairs.
func Edges(ct CellType, conn []int) [][2]int {
	switch ct {
	case Line:
		return [][2]int{{conn[0], conn[1]}}
	case PolyLine:
		edges := make([][2]int, 0, len(conn)-1)
		for i := 0; i < len(conn)-1; i++ {
			edges = append(edges, [2]int{conn[i], conn[i+1]})
		}
		return edges
	case Triangle, Quad, Polygon, Pixel:
		ring := conn
		if ct == Pixel {
			ring = []int{conn[0], conn[1], conn[3], conn[2]}
		}
		edges := make([][2]int, 0, len(ring))
		for i := range ring {
			edges = append(edges, [2]int{ring[i], ring[(i+1)%len(ring)]})
		}
		return edges
	case TriangleStrip:
		seen := map[[2]int]bool{}
		var edges [][2]int
		for _, t := range Triangulate(ct, conn) {
			for _, e := range [][2]int{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}} {
				k := e
				if k[0] > k[1] {
					k[0], k[1] = k[1], k[0]
				}
				if !seen[k] {
					seen[k] = true
					edges = append(edges, e)
				}
			}
		}
		return edges
	case Tetra, Voxel, Hexahedron, Wedge, Pyramid:
		seen := map[[2]int]bool{}
		var edges [][2]int
		for _, f := range Faces(ct, conn) {
			for i := range f {
				e := [2]int{f[i], f[(i+1)%len(f)]}
				k := e
				if k[0] > k[1] {
					k[0], k[1] = k[1], k[0]
				}
				if !seen[k] {
					seen[k] = true
					edges = append(edges, e)
				}
			}
		}
		return edges
	}
	return nil
}
