package pyvista

import (
	"math"

	"github.com/akeshavan/pyvista/internal/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphereOptions configures Sphere.
type SphereOptions struct {
	// Radius of the sphere; zero means 0.5.
	Radius float64
	Center r3.Vec
	// ThetaResolution is the number of longitude steps; zero means 30.
	ThetaResolution int
	// PhiResolution is the number of latitude steps pole to pole; zero
	// means 30.
	PhiResolution int
}

// Sphere returns a closed triangulated UV sphere.
func Sphere(o *SphereOptions) *PolyData {
	if o == nil {
		o = &SphereOptions{}
	}
	radius := o.Radius
	if radius == 0 {
		radius = 0.5
	}
	nt := o.ThetaResolution
	if nt < 3 {
		nt = 30
	}
	np := o.PhiResolution
	if np < 3 {
		np = 30
	}
	var pts []r3.Vec
	at := func(phi, theta float64) r3.Vec {
		return r3.Add(o.Center, r3.Vec{
			X: radius * math.Sin(phi) * math.Cos(theta),
			Y: radius * math.Sin(phi) * math.Sin(theta),
			Z: radius * math.Cos(phi),
		})
	}
	north := len(pts)
	pts = append(pts, at(0, 0))
	ringStart := len(pts)
	for i := 1; i < np; i++ {
		phi := math.Pi * float64(i) / float64(np)
		for j := 0; j < nt; j++ {
			theta := 2 * math.Pi * float64(j) / float64(nt)
			pts = append(pts, at(phi, theta))
		}
	}
	south := len(pts)
	pts = append(pts, at(math.Pi, 0))

	cells := &Cells{}
	ring := func(i, j int) int { return ringStart + i*nt + (j % nt) }
	for j := 0; j < nt; j++ {
		cells.Append(CellTriangle, north, ring(0, j), ring(0, j+1))
	}
	for i := 0; i < np-2; i++ {
		for j := 0; j < nt; j++ {
			a, b := ring(i, j), ring(i, j+1)
			c, d := ring(i+1, j), ring(i+1, j+1)
			cells.Append(CellTriangle, a, c, b)
			cells.Append(CellTriangle, b, c, d)
		}
	}
	for j := 0; j < nt; j++ {
		cells.Append(CellTriangle, south, ring(np-2, j+1), ring(np-2, j))
	}
	return newPolyData(pts, cells)
}

// PlaneOptions configures Plane.
type PlaneOptions struct {
	Center r3.Vec
	// Direction is the plane normal; the zero vector means +z.
	Direction r3.Vec
	// ISize and JSize are the edge lengths; zero means 1.
	ISize, JSize float64
	// IResolution and JResolution are the cell counts; zero means 10.
	IResolution, JResolution int
}

// Plane returns a rectangle subdivided into quads.
func Plane(o *PlaneOptions) *PolyData {
	if o == nil {
		o = &PlaneOptions{}
	}
	isize := o.ISize
	if isize == 0 {
		isize = 1
	}
	jsize := o.JSize
	if jsize == 0 {
		jsize = 1
	}
	ni := o.IResolution
	if ni < 1 {
		ni = 10
	}
	nj := o.JResolution
	if nj < 1 {
		nj = 10
	}
	normal := unitOr(o.Direction, r3.Vec{Z: 1})
	rot := kernel.RotationTo(r3.Vec{Z: 1}, normal)
	var pts []r3.Vec
	for j := 0; j <= nj; j++ {
		for i := 0; i <= ni; i++ {
			p := r3.Vec{
				X: isize * (float64(i)/float64(ni) - 0.5),
				Y: jsize * (float64(j)/float64(nj) - 0.5),
			}
			pts = append(pts, r3.Add(o.Center, rot.Rotate(p)))
		}
	}
	cells := &Cells{}
	id := func(i, j int) int { return j*(ni+1) + i }
	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			cells.Append(CellQuad, id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1))
		}
	}
	return newPolyData(pts, cells)
}

// Line returns a polyline from a to b with the given number of segments
// (zero means 1).
func Line(a, b r3.Vec, resolution int) *PolyData {
	if resolution < 1 {
		resolution = 1
	}
	pts := make([]r3.Vec, resolution+1)
	conn := make([]int, resolution+1)
	for i := 0; i <= resolution; i++ {
		t := float64(i) / float64(resolution)
		pts[i] = r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
		conn[i] = i
	}
	cells := &Cells{}
	cells.Append(CellPolyLine, conn...)
	return newPolyData(pts, cells)
}

// CubeOptions configures Cube.
type CubeOptions struct {
	Center r3.Vec
	// XLength, YLength and ZLength are the edge lengths; zero means 1.
	XLength, YLength, ZLength float64
	// Bounds overrides center and lengths when set.
	Bounds *Bounds
}

// Cube returns a closed box of six quads.
func Cube(o *CubeOptions) *PolyData {
	if o == nil {
		o = &CubeOptions{}
	}
	var b Bounds
	if o.Bounds != nil {
		b = *o.Bounds
	} else {
		lx, ly, lz := o.XLength, o.YLength, o.ZLength
		if lx == 0 {
			lx = 1
		}
		if ly == 0 {
			ly = 1
		}
		if lz == 0 {
			lz = 1
		}
		c := o.Center
		b = Bounds{c.X - lx/2, c.X + lx/2, c.Y - ly/2, c.Y + ly/2, c.Z - lz/2, c.Z + lz/2}
	}
	corners := b.Corners()
	cells := &Cells{}
	// Outward-facing quads over the x-fastest corner ordering.
	for _, f := range [6][4]int{
		{0, 2, 3, 1},
		{4, 5, 7, 6},
		{0, 1, 5, 4},
		{1, 3, 7, 5},
		{3, 2, 6, 7},
		{2, 0, 4, 6},
	} {
		cells.Append(CellQuad, f[0], f[1], f[2], f[3])
	}
	return newPolyData(corners[:], cells)
}

// ConeOptions configures Cone.
type ConeOptions struct {
	Center r3.Vec
	// Direction points from base toward apex; the zero vector means +x.
	Direction r3.Vec
	// Height of the cone; zero means 1.
	Height float64
	// Radius of the base; zero means 0.5.
	Radius float64
	// Resolution is the number of facets; zero means 6.
	Resolution int
	// NoCap leaves the base open.
	NoCap bool
}

// Cone returns a cone with its axis through the center.
func Cone(o *ConeOptions) *PolyData {
	if o == nil {
		o = &ConeOptions{}
	}
	height := o.Height
	if height == 0 {
		height = 1
	}
	radius := o.Radius
	if radius == 0 {
		radius = 0.5
	}
	res := o.Resolution
	if res < 3 {
		res = 6
	}
	dir := unitOr(o.Direction, r3.Vec{X: 1})
	rot := kernel.RotationTo(r3.Vec{X: 1}, dir)
	place := func(p r3.Vec) r3.Vec { return r3.Add(o.Center, rot.Rotate(p)) }

	var pts []r3.Vec
	apex := len(pts)
	pts = append(pts, place(r3.Vec{X: height / 2}))
	base := len(pts)
	for j := 0; j < res; j++ {
		a := 2 * math.Pi * float64(j) / float64(res)
		pts = append(pts, place(r3.Vec{X: -height / 2, Y: radius * math.Cos(a), Z: radius * math.Sin(a)}))
	}
	cells := &Cells{}
	for j := 0; j < res; j++ {
		cells.Append(CellTriangle, apex, base+j, base+(j+1)%res)
	}
	if !o.NoCap {
		conn := make([]int, res)
		for j := 0; j < res; j++ {
			conn[j] = base + res - 1 - j
		}
		cells.Append(CellPolygon, conn...)
	}
	return newPolyData(pts, cells)
}

// CylinderOptions configures Cylinder.
type CylinderOptions struct {
	Center r3.Vec
	// Direction is the cylinder axis; the zero vector means +x.
	Direction r3.Vec
	// Radius of the cylinder; zero means 0.5.
	Radius float64
	// Height of the cylinder; zero means 1.
	Height float64
	// Resolution is the number of facets; zero means 100.
	Resolution int
	// NoCap leaves both ends open.
	NoCap bool
}

// Cylinder returns a cylinder with its axis through the center.
func Cylinder(o *CylinderOptions) *PolyData {
	if o == nil {
		o = &CylinderOptions{}
	}
	radius := o.Radius
	if radius == 0 {
		radius = 0.5
	}
	height := o.Height
	if height == 0 {
		height = 1
	}
	res := o.Resolution
	if res < 3 {
		res = 100
	}
	dir := unitOr(o.Direction, r3.Vec{X: 1})
	rot := kernel.RotationTo(r3.Vec{X: 1}, dir)
	place := func(p r3.Vec) r3.Vec { return r3.Add(o.Center, rot.Rotate(p)) }

	var pts []r3.Vec
	for j := 0; j < res; j++ {
		a := 2 * math.Pi * float64(j) / float64(res)
		pts = append(pts, place(r3.Vec{X: -height / 2, Y: radius * math.Cos(a), Z: radius * math.Sin(a)}))
	}
	for j := 0; j < res; j++ {
		a := 2 * math.Pi * float64(j) / float64(res)
		pts = append(pts, place(r3.Vec{X: height / 2, Y: radius * math.Cos(a), Z: radius * math.Sin(a)}))
	}
	cells := &Cells{}
	for j := 0; j < res; j++ {
		a, b := j, (j+1)%res
		cells.Append(CellQuad, a, b, res+b, res+a)
	}
	if !o.NoCap {
		lo := make([]int, res)
		hi := make([]int, res)
		for j := 0; j < res; j++ {
			lo[j] = res - 1 - j
			hi[j] = res + j
		}
		cells.Append(CellPolygon, lo...)
		cells.Append(CellPolygon, hi...)
	}
	return newPolyData(pts, cells)
}

// ArrowOptions configures Arrow.
type ArrowOptions struct {
	// Start is the arrow tail.
	Start r3.Vec
	// Direction points from tail to tip; the zero vector means +x.
	Direction r3.Vec
	// TipLength is the cone fraction of the unit arrow; zero means 0.25.
	TipLength float64
	// TipRadius of the cone; zero means 0.1.
	TipRadius float64
	// ShaftRadius of the cylinder; zero means 0.05.
	ShaftRadius float64
	// Resolution is the number of facets; zero means 20.
	Resolution int
}

// Arrow returns a unit arrow (cylinder shaft plus cone tip) from Start
// along Direction.
func Arrow(o *ArrowOptions) *PolyData {
	if o == nil {
		o = &ArrowOptions{}
	}
	tipLen := o.TipLength
	if tipLen == 0 {
		tipLen = 0.25
	}
	tipR := o.TipRadius
	if tipR == 0 {
		tipR = 0.1
	}
	shaftR := o.ShaftRadius
	if shaftR == 0 {
		shaftR = 0.05
	}
	res := o.Resolution
	if res < 3 {
		res = 20
	}
	dir := unitOr(o.Direction, r3.Vec{X: 1})
	shaftLen := 1 - tipLen
	shaft := Cylinder(&CylinderOptions{
		Center:     r3.Vec{X: shaftLen / 2},
		Radius:     shaftR,
		Height:     shaftLen,
		Resolution: res,
	})
	tip := Cone(&ConeOptions{
		Center:     r3.Vec{X: shaftLen + tipLen/2},
		Height:     tipLen,
		Radius:     tipR,
		Resolution: res,
	})
	merged, _ := Merge(shaft, tip)
	out := merged.(*PolyData)
	rot := kernel.RotationTo(r3.Vec{X: 1}, dir)
	pts := out.Points()
	for i, p := range pts {
		pts[i] = r3.Add(o.Start, rot.Rotate(p))
	}
	return out
}
