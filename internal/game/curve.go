package game

import "math"

type CurveKind int

const (
	CurveLinear CurveKind = iota
	CurveBezier
	CurvePerfect
	CurveCatmull
)

const (
	bezierToleranceSq = 0.25 * 0.25
	arcTolerance      = 0.10
	catmullDetail     = 50
)

// Curve is a pure mapping progress in [0,1] -> position in osu pixels.
// It is flattened once into a polyline at construction and never mutated.
type Curve struct {
	poly   []Vec2
	length float64
}

// NewCurve flattens the control point segments of the given kind.
// expectedLength is the pixel length from the beatmap; when positive it
// overrides the polyline length so truncated or extended sliders keep
// the timing the beatmap asked for.
func NewCurve(kind CurveKind, segments [][]Vec2, expectedLength float64) *Curve {
	var poly []Vec2

	add := func(v Vec2) {
		n := len(poly)
		if n == 0 || poly[n-1] != v {
			poly = append(poly, v)
		}
	}
	addAll := func(pts []Vec2) {
		for _, p := range pts {
			add(p)
		}
	}

	switch kind {
	case CurveLinear:
		for _, seg := range segments {
			addAll(seg)
		}
	case CurveCatmull:
		for _, seg := range segments {
			addAll(flattenCatmull(seg))
		}
	case CurvePerfect:
		// A perfect circle needs exactly three points, anything else
		// falls back to bezier like the reference client.
		if len(segments) == 1 && len(segments[0]) == 3 {
			s := segments[0]
			addAll(flattenCircularArc(s[0], s[1], s[2]))
			break
		}
		fallthrough
	default:
		for _, seg := range segments {
			if len(seg) < 2 {
				continue
			}
			addAll(flattenBezier(seg))
		}
	}

	if len(poly) == 0 {
		poly = []Vec2{{}}
	}

	length := 0.0
	for i := 1; i < len(poly); i++ {
		length += poly[i].Distance(poly[i-1])
	}
	if expectedLength > 0 {
		length = expectedLength
	}

	return &Curve{poly: poly, length: length}
}

func (c *Curve) Length() float64 {
	return c.length
}

// PositionAt walks the polyline by arc length. Progress outside [0,1] is
// clamped; a target past the final point extrapolates along the last
// segment, which is how over-long pixel lengths behave.
func (c *Curve) PositionAt(progress float64) Vec2 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	remaining := progress * c.length
	if len(c.poly) < 2 {
		return c.poly[0]
	}

	for i := 1; i < len(c.poly); i++ {
		dir := c.poly[i].Sub(c.poly[i-1])
		l := dir.Length()
		if remaining <= l && l > 0 {
			return Vec2{
				X: c.poly[i-1].X + dir.X*remaining/l,
				Y: c.poly[i-1].Y + dir.Y*remaining/l,
			}
		}
		remaining -= l
	}

	last := c.poly[len(c.poly)-1]
	dir := last.Sub(c.poly[len(c.poly)-2])
	l := dir.Length()
	if l == 0 {
		return last
	}
	return Vec2{
		X: last.X + dir.X*remaining/l,
		Y: last.Y + dir.Y*remaining/l,
	}
}

func flattenBezier(cp []Vec2) []Vec2 {
	var out []Vec2
	stack := make([][]Vec2, 0, 32)
	stack = append(stack, cp)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if bezierFlatEnough(cur) {
			out = append(out, cur[0])
			continue
		}
		// Subdivide with de Casteljau, left half processed first so the
		// points come out in path order.
		l, r := bezierSubdivide(cur)
		stack = append(stack, r)
		stack = append(stack, l)
	}
	out = append(out, cp[len(cp)-1])
	return out
}

func bezierFlatEnough(cp []Vec2) bool {
	for i := 1; i < len(cp)-1; i++ {
		dx := cp[i-1].X - 2*cp[i].X + cp[i+1].X
		dy := cp[i-1].Y - 2*cp[i].Y + cp[i+1].Y
		if dx*dx+dy*dy > bezierToleranceSq {
			return false
		}
	}
	return true
}

func bezierSubdivide(cp []Vec2) ([]Vec2, []Vec2) {
	n := len(cp)
	buf := make([]Vec2, n*(n+1)/2)
	copy(buf, cp)

	rowStart := 0
	nextRowStart := n
	for r := 1; r < n; r++ {
		for i := 0; i < n-r; i++ {
			a := buf[rowStart+i]
			b := buf[rowStart+i+1]
			buf[nextRowStart+i] = Vec2{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
		}
		rowStart = nextRowStart
		nextRowStart += n - r
	}

	left := make([]Vec2, n)
	rowStart = 0
	for r := 0; r < n; r++ {
		left[r] = buf[rowStart]
		rowStart += n - r
	}

	right := make([]Vec2, n)
	rowStart = 0
	rowEnd := n - 1
	for r := 0; r < n; r++ {
		right[n-1-r] = buf[rowStart+rowEnd]
		rowStart += n - r
		rowEnd--
	}
	return left, right
}

func flattenCatmull(pts []Vec2) []Vec2 {
	n := len(pts)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []Vec2{pts[0]}
	}
	out := make([]Vec2, 0, (n-1)*catmullDetail+1)
	for i := 0; i < n-1; i++ {
		p0 := pts[maxInt(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[minInt(i+2, n-1)]
		if i == 0 {
			out = append(out, p1)
		}
		for s := 1; s <= catmullDetail; s++ {
			t := float64(s) / float64(catmullDetail)
			out = append(out, catmullPoint(p0, p1, p2, p3, t))
		}
	}
	return out
}

func catmullPoint(p0, p1, p2, p3 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	return Vec2{
		X: 0.5 * ((2 * p1.X) + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
		Y: 0.5 * ((2 * p1.Y) + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
	}
}

func flattenCircularArc(p1, p2, p3 Vec2) []Vec2 {
	cx, cy, ok := circumcenter(p1, p2, p3)
	if !ok {
		return []Vec2{p1, p3}
	}
	c := Vec2{X: cx, Y: cy}
	r := c.Distance(p1)

	a1 := math.Atan2(p1.Y-cy, p1.X-cx)
	a3 := math.Atan2(p3.Y-cy, p3.X-cx)

	dir := 1.0
	if cross(p2.Sub(p1), p3.Sub(p2)) < 0 {
		dir = -1.0
	}
	delta := angleDiff(a1, a3, dir)

	// Step angle from the sagitta tolerance, minimum of two segments.
	step := 2 * math.Acos(clamp(1.0-arcTolerance/r, -1, 1))
	if step <= 0 || math.IsNaN(step) || step > math.Pi {
		step = math.Pi
	}
	steps := int(math.Ceil(math.Abs(delta) / step))
	if steps < 2 {
		steps = 2
	}
	step = math.Copysign(math.Abs(delta)/float64(steps), dir)

	out := make([]Vec2, 0, steps+1)
	out = append(out, p1)
	for i := 1; i < steps; i++ {
		a := a1 + float64(i)*step
		out = append(out, Vec2{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r})
	}
	out = append(out, p3)
	return out
}

func circumcenter(a, b, c Vec2) (float64, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-9 {
		return 0, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	x := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	y := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return x, y, true
}

func angleDiff(start, end, dir float64) float64 {
	diff := end - start
	if dir > 0 {
		for diff < 0 {
			diff += 2 * math.Pi
		}
	} else {
		for diff > 0 {
			diff -= 2 * math.Pi
		}
	}
	return diff
}

func cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
