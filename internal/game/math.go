package game

import "math"

const (
	CoordsWidth  = 512.0
	CoordsHeight = 384.0
)

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DiffRate maps a difficulty value in [0,10] onto min..mid..max with
// mid at difficulty 5.
func DiffRate(diff, min, mid, max float64) float64 {
	if diff > 5.0 {
		return mid + (max-mid)*(diff-5.0)/5.0
	}
	if diff < 5.0 {
		return mid - (mid-min)*(5.0-diff)/5.0
	}
	return mid
}

// CircleDiameter converts a circle size difficulty value into the hit
// circle diameter in osu pixels.
func CircleDiameter(cs float64) float64 {
	return ((1.0 - 0.7*(cs-5.0)/5.0) / 2.0) * 128.0 * 1.00041
}

// PreemptFadein returns how long before its start time an object is
// visible, and how long it takes to become fully opaque.
func PreemptFadein(ar float64) (float64, float64) {
	if ar > 5.0 {
		return 1200.0 - 750.0*(ar-5.0)/5.0, 800.0 - 500.0*(ar-5.0)/5.0
	}
	if ar < 5.0 {
		return 1200.0 + 600.0*(5.0-ar)/5.0, 800.0 + 400.0*(5.0-ar)/5.0
	}
	return 1200.0, 800.0
}
