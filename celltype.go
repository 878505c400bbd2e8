package pyvista

import "github.com/akeshavan/pyvista/internal/kernel"

// CellType identifies the topology of a single cell. The taxonomy (and its
// VTK-compatible numbering) is owned by the geometry kernel; the facade
// re-exports it.
type CellType = kernel.CellType

const (
	CellVertex        = kernel.Vertex
	CellPolyVertex    = kernel.PolyVertex
	CellLine          = kernel.Line
	CellPolyLine      = kernel.PolyLine
	CellTriangle      = kernel.Triangle
	CellTriangleStrip = kernel.TriangleStrip
	CellPolygon       = kernel.Polygon
	CellPixel         = kernel.Pixel
	CellQuad          = kernel.Quad
	CellTetra         = kernel.Tetra
	CellVoxel         = kernel.Voxel
	CellHexahedron    = kernel.Hexahedron
	CellWedge         = kernel.Wedge
	CellPyramid       = kernel.Pyramid
)
