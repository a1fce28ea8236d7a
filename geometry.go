package knobs

import "math"

// Default angular range of a knob, in radians. Angle 0 points right and
// angles grow clockwise because screen Y increases downward.
const (
	DefaultAngleMin = math.Pi * 0.75
	DefaultAngleMax = math.Pi * 2.25
)

// maxBezierSweep is the largest arc a single cubic segment approximates.
const maxBezierSweep = math.Pi / 2

// Polar returns the point at the given radius and angle from center.
func Polar(center Vec2, radius, angle float64) Vec2 {
	return Vec2{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// Bezier is a cubic Bézier segment: start point, two control points, end point.
type Bezier struct {
	P0, C1, C2, P1 Vec2
}

// At evaluates the curve at parameter t in [0, 1].
func (b Bezier) At(t float64) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return Vec2{
		X: u2*u*b.P0.X + 3*u2*t*b.C1.X + 3*u*t2*b.C2.X + t2*t*b.P1.X,
		Y: u2*u*b.P0.Y + 3*u2*t*b.C1.Y + 3*u*t2*b.C2.Y + t2*t*b.P1.Y,
	}
}

// ArcBeziers approximates the arc from start to end (radians) with cubic
// segments of at most a quarter turn each. The segments are appended to buf
// and the extended slice is returned. end may be smaller than start; the arc
// is then traced counter-clockwise. A zero sweep or radius appends nothing.
func ArcBeziers(buf []Bezier, center Vec2, radius, start, end float64) []Bezier {
	sweep := end - start
	if sweep == 0 || radius <= 0 {
		return buf
	}
	// The small bias keeps exact multiples of a quarter turn from rounding
	// up to an extra segment.
	n := max(1, int(math.Ceil(math.Abs(sweep)/maxBezierSweep-1e-9)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * radius

	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		buf = append(buf, Bezier{
			P0: Vec2{center.X + cos0*radius, center.Y + sin0*radius},
			C1: Vec2{center.X + cos0*radius - sin0*k, center.Y + sin0*radius + cos0*k},
			C2: Vec2{center.X + cos1*radius + sin1*k, center.Y + sin1*radius - cos1*k},
			P1: Vec2{center.X + cos1*radius, center.Y + sin1*radius},
		})
		a0 = a1
	}
	return buf
}

// RegularPolygon returns the vertices of an n-gon inscribed in the circle,
// starting at angle 0. n below 3 returns nil.
func RegularPolygon(center Vec2, radius float64, n int) []Vec2 {
	if n < 3 {
		return nil
	}
	pts := make([]Vec2, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = Polar(center, radius, float64(i)*step)
	}
	return pts
}

// resolveAngles applies the default angular range. A negative bound, or both
// bounds left at zero, selects the default for that bound.
func resolveAngles(angleMin, angleMax float64) (float64, float64) {
	if angleMin == 0 && angleMax == 0 {
		return DefaultAngleMin, DefaultAngleMax
	}
	if angleMin < 0 {
		angleMin = DefaultAngleMin
	}
	if angleMax < 0 {
		angleMax = DefaultAngleMax
	}
	return angleMin, angleMax
}
