package pyvista

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// StreamlinesOptions configures Streamlines and StreamlinesFromSource.
type StreamlinesOptions struct {
	// Vectors names the point vector array to integrate; "" uses the active
	// vectors.
	Vectors string
	// IntegratorType selects the Runge-Kutta scheme: 2, 4 or 45. Zero means
	// 45. Other values are invalid.
	IntegratorType int
	// IntegrationDirection is "forward", "backward" or "both". "" means
	// "both". Other values are invalid.
	IntegrationDirection string
	// InitialStepLength is the integration step; zero means 1/500 of the
	// dataset diagonal. The adaptive integrator starts from it.
	InitialStepLength float64
	// TerminalSpeed stops a streamline once the local speed drops below it;
	// zero means 1e-12.
	TerminalSpeed float64
	// MaxSteps bounds the number of steps per direction; zero means 2000.
	MaxSteps int
	// MaxLength bounds the arc length per direction; zero means twice the
	// dataset diagonal.
	MaxLength float64

	// Seed cloud parameters, used by Streamlines only: NPoints random seeds
	// inside a sphere of SourceRadius around SourceCenter.
	SourceCenter *r3.Vec
	SourceRadius float64
	NPoints      int
}

// Streamlines integrates the point vector field from a spherical cloud of
// random seed points, returning one polyline per streamline. Each output
// point carries "IntegrationTime" plus the interpolated vectors.
func Streamlines(ds DataSet, o *StreamlinesOptions) (*PolyData, error) {
	if o == nil {
		o = &StreamlinesOptions{}
	}
	center := ds.Center()
	if o.SourceCenter != nil {
		center = *o.SourceCenter
	}
	radius := o.SourceRadius
	if radius <= 0 {
		radius = ds.Length() / 10
	}
	n := o.NPoints
	if n <= 0 {
		n = 100
	}
	rng := rand.New(rand.NewSource(1))
	seeds := make([]r3.Vec, 0, n)
	for len(seeds) < n {
		v := r3.Vec{
			X: 2*rng.Float64() - 1,
			Y: 2*rng.Float64() - 1,
			Z: 2*rng.Float64() - 1,
		}
		if r3.Norm(v) > 1 {
			continue
		}
		seeds = append(seeds, r3.Add(center, r3.Scale(radius, v)))
	}
	return streamlines(ds, seeds, o)
}

// StreamlinesFromSource integrates the vector field from the points of an
// explicit seed dataset.
func StreamlinesFromSource(ds DataSet, source DataSet, o *StreamlinesOptions) (*PolyData, error) {
	if o == nil {
		o = &StreamlinesOptions{}
	}
	return streamlines(ds, source.Points(), o)
}

func streamlines(ds DataSet, seeds []r3.Vec, o *StreamlinesOptions) (*PolyData, error) {
	integrator := o.IntegratorType
	if integrator == 0 {
		integrator = 45
	}
	if integrator != 2 && integrator != 4 && integrator != 45 {
		return nil, fmt.Errorf("%w: integrator type %d, want 2, 4 or 45",
			ErrInvalidValue, o.IntegratorType)
	}
	direction := o.IntegrationDirection
	if direction == "" {
		direction = "both"
	}
	if direction != "forward" && direction != "backward" && direction != "both" {
		return nil, fmt.Errorf("%w: integration direction %q", ErrInvalidValue, direction)
	}
	field, vname, err := resolvePointVectors(ds, o.Vectors)
	if err != nil {
		return nil, err
	}
	step := o.InitialStepLength
	if step <= 0 {
		step = ds.Length() / 500
	}
	terminal := o.TerminalSpeed
	if terminal <= 0 {
		terminal = 1e-12
	}
	maxSteps := o.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 2000
	}
	maxLength := o.MaxLength
	if maxLength <= 0 {
		maxLength = 2 * ds.Length()
	}
	eval := velocityEvaluator(ds, field)

	var pts []r3.Vec
	var times []float64
	vecs := NewField(3, 0)
	cells := &Cells{}
	appendLine := func(line []r3.Vec, lineT []float64, lineV []r3.Vec) {
		if len(line) < 2 {
			return
		}
		conn := make([]int, len(line))
		for i := range line {
			conn[i] = len(pts)
			pts = append(pts, line[i])
			times = append(times, lineT[i])
		}
		grown := NewField(3, len(pts))
		copy(grown.data, vecs.data)
		for i, v := range lineV {
			grown.SetVec(conn[i], v)
		}
		vecs = grown
		cells.Append(CellPolyLine, conn...)
	}
	for _, seed := range seeds {
		fwdP, fwdT, fwdV := integrate(seed, eval, integrator, 1, step, terminal, maxSteps, maxLength)
		bwdP, bwdT, bwdV := integrate(seed, eval, integrator, -1, step, terminal, maxSteps, maxLength)
		var line []r3.Vec
		var lineT []float64
		var lineV []r3.Vec
		switch direction {
		case "forward":
			line, lineT, lineV = fwdP, fwdT, fwdV
		case "backward":
			line, lineT, lineV = bwdP, bwdT, bwdV
		default:
			// Backward reversed, then forward without the repeated seed.
			for i := len(bwdP) - 1; i >= 0; i-- {
				line = append(line, bwdP[i])
				lineT = append(lineT, bwdT[i])
				lineV = append(lineV, bwdV[i])
			}
			if len(fwdP) > 1 {
				line = append(line, fwdP[1:]...)
				lineT = append(lineT, fwdT[1:]...)
				lineV = append(lineV, fwdV[1:]...)
			}
		}
		appendLine(line, lineT, lineV)
	}
	out := newPolyData(pts, cells)
	Logger().Debug("streamlines", "seeds", len(seeds), "lines", out.NumCells())
	if out.NumCells() == 0 {
		Logger().Warn("no streamlines integrated", "seeds", len(seeds))
	}
	if err := out.PointData().SetScalars("IntegrationTime", times); err != nil {
		return nil, err
	}
	if err := out.PointData().Set(vname, vecs); err != nil {
		return nil, err
	}
	if err := out.PointData().SetActiveVectors(vname); err != nil {
		return nil, err
	}
	return out, nil
}

// velocityEvaluator builds a point-velocity lookup: trilinear on uniform
// grids, nearest point elsewhere. The bool result is false outside the
// domain.
func velocityEvaluator(ds DataSet, field *Field) func(p r3.Vec) (r3.Vec, bool) {
	if grid, ok := ds.(*UniformGrid); ok {
		return func(p r3.Vec) (r3.Vec, bool) {
			var tup [3]float64
			if !grid.trilinear(p, field, tup[:]) {
				return r3.Vec{}, false
			}
			return r3.Vec{X: tup[0], Y: tup[1], Z: tup[2]}, true
		}
	}
	loc := newPointLocator(ds.Points())
	// Leaving this envelope terminates the streamline.
	reach := ds.Length() / 10
	bounds := ds.Bounds()
	return func(p r3.Vec) (r3.Vec, bool) {
		if !bounds.Contains(p) {
			return r3.Vec{}, false
		}
		ni, dist := loc.nearest(p)
		if ni < 0 || dist > reach {
			return r3.Vec{}, false
		}
		return field.Vec(ni), true
	}
}

// integrate advances one streamline from seed. dir is +1 or -1.
func integrate(seed r3.Vec, eval func(r3.Vec) (r3.Vec, bool), integrator, dir int,
	step, terminal float64, maxSteps int, maxLength float64) ([]r3.Vec, []float64, []r3.Vec) {

	v0, ok := eval(seed)
	if !ok {
		return nil, nil, nil
	}
	pts := []r3.Vec{seed}
	times := []float64{0}
	vels := []r3.Vec{v0}
	p := seed
	t := 0.0
	length := 0.0
	h := step
	f := func(q r3.Vec) (r3.Vec, bool) {
		v, ok := eval(q)
		if !ok {
			return r3.Vec{}, false
		}
		return r3.Scale(float64(dir), v), true
	}
	for i := 0; i < maxSteps; i++ {
		v, ok := f(p)
		if !ok || r3.Norm(v) < terminal {
			break
		}
		var next r3.Vec
		switch integrator {
		case 2:
			next, ok = rk2Step(p, h, f)
		case 4:
			next, ok = rk4Step(p, h, f)
		default:
			next, h, ok = rk45Step(p, h, step, f)
		}
		if !ok {
			break
		}
		length += r3.Norm(r3.Sub(next, p))
		if length > maxLength {
			break
		}
		t += h * float64(dir)
		p = next
		pts = append(pts, p)
		times = append(times, t)
		if vv, ok := eval(p); ok {
			vels = append(vels, vv)
		} else {
			vels = append(vels, r3.Vec{})
		}
	}
	return pts, times, vels
}

func rk2Step(p r3.Vec, h float64, f func(r3.Vec) (r3.Vec, bool)) (r3.Vec, bool) {
	k1, ok := f(p)
	if !ok {
		return r3.Vec{}, false
	}
	k2, ok := f(r3.Add(p, r3.Scale(h/2, k1)))
	if !ok {
		return r3.Vec{}, false
	}
	return r3.Add(p, r3.Scale(h, k2)), true
}

func rk4Step(p r3.Vec, h float64, f func(r3.Vec) (r3.Vec, bool)) (r3.Vec, bool) {
	k1, ok := f(p)
	if !ok {
		return r3.Vec{}, false
	}
	k2, ok := f(r3.Add(p, r3.Scale(h/2, k1)))
	if !ok {
		return r3.Vec{}, false
	}
	k3, ok := f(r3.Add(p, r3.Scale(h/2, k2)))
	if !ok {
		return r3.Vec{}, false
	}
	k4, ok := f(r3.Add(p, r3.Scale(h, k3)))
	if !ok {
		return r3.Vec{}, false
	}
	sum := r3.Add(k1, r3.Add(r3.Scale(2, k2), r3.Add(r3.Scale(2, k3), k4)))
	return r3.Add(p, r3.Scale(h/6, sum)), true
}

// rk45Step is an adaptive embedded step (RK4 against half-stepped RK4): the
// step shrinks until the two estimates agree, and relaxes back toward the
// initial step when they agree well.
func rk45Step(p r3.Vec, h, h0 float64, f func(r3.Vec) (r3.Vec, bool)) (r3.Vec, float64, bool) {
	const tol = 1e-6
	for try := 0; try < 20; try++ {
		full, ok := rk4Step(p, h, f)
		if !ok {
			return r3.Vec{}, h, false
		}
		half, ok := rk4Step(p, h/2, f)
		if ok {
			half, ok = rk4Step(half, h/2, f)
		}
		if !ok {
			return r3.Vec{}, h, false
		}
		errEst := r3.Norm(r3.Sub(full, half))
		if errEst <= tol*(1+r3.Norm(r3.Sub(half, p))) {
			if errEst < tol/16 && h < h0 {
				h *= 2
			}
			return half, h, true
		}
		h /= 2
	}
	return r3.Vec{}, h, false
}
