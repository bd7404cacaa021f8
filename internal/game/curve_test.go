package game

import (
	"math"
	"testing"
)

func near(a, b Vec2, tolerance float64) bool {
	return a.Distance(b) <= tolerance
}

func TestLinearCurve(t *testing.T) {
	c := NewCurve(CurveLinear, [][]Vec2{{{X: 0, Y: 0}, {X: 100, Y: 0}}}, 0)

	positions := map[float64]Vec2{
		0.0:  {X: 0, Y: 0},
		0.5:  {X: 50, Y: 0},
		1.0:  {X: 100, Y: 0},
		-1.0: {X: 0, Y: 0},
		2.0:  {X: 100, Y: 0},
	}
	for progress, expected := range positions {
		pos := c.PositionAt(progress)
		if !near(pos, expected, 1e-9) {
			t.Log("progress", progress)
			t.Log("pos     ", pos)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestLinearCurveExpectedLength(t *testing.T) {
	// A pixel length past the polyline extrapolates the final segment.
	c := NewCurve(CurveLinear, [][]Vec2{{{X: 0, Y: 0}, {X: 100, Y: 0}}}, 200)

	if c.Length() != 200 {
		t.Log("length", c.Length())
		t.Fail()
	}
	if !near(c.PositionAt(1.0), Vec2{X: 200, Y: 0}, 1e-9) {
		t.Log("end", c.PositionAt(1.0))
		t.Fail()
	}
}

func TestPerfectCurve(t *testing.T) {
	c := NewCurve(CurvePerfect, [][]Vec2{{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}}}, 0)

	if math.Abs(c.Length()-math.Pi*50) > 0.5 {
		t.Log("length  ", c.Length())
		t.Log("expected", math.Pi*50)
		t.Fail()
	}

	positions := map[float64]Vec2{
		0.0: {X: 0, Y: 0},
		0.5: {X: 50, Y: 50},
		1.0: {X: 100, Y: 0},
	}
	for progress, expected := range positions {
		pos := c.PositionAt(progress)
		if !near(pos, expected, 1.0) {
			t.Log("progress", progress)
			t.Log("pos     ", pos)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestBezierCurve(t *testing.T) {
	c := NewCurve(CurveBezier, [][]Vec2{{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}}}, 0)

	if !near(c.PositionAt(0), Vec2{X: 0, Y: 0}, 1e-9) {
		t.Log("start", c.PositionAt(0))
		t.Fail()
	}
	if !near(c.PositionAt(1), Vec2{X: 100, Y: 0}, 1e-9) {
		t.Log("end", c.PositionAt(1))
		t.Fail()
	}
	// The curve is symmetric, its arc length midpoint is the apex.
	if !near(c.PositionAt(0.5), Vec2{X: 50, Y: 25}, 1.0) {
		t.Log("mid", c.PositionAt(0.5))
		t.Fail()
	}
}

func TestPerfectCurveFallback(t *testing.T) {
	// Anything but exactly three points is not a circle.
	c := NewCurve(CurvePerfect, [][]Vec2{{{X: 0, Y: 0}, {X: 100, Y: 0}}}, 0)
	if !near(c.PositionAt(1), Vec2{X: 100, Y: 0}, 1e-9) {
		t.Log("end", c.PositionAt(1))
		t.Fail()
	}
}
