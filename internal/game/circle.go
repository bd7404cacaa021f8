package game

import "math"

const CircleFadeoutTime = 60.0

type Circle struct {
	StartTime float64
	Pos       Vec2

	// Set at most once, nil until the circle is judged.
	Judgement *Judgement
}

func (c *Circle) Start() float64 {
	return c.StartTime
}

func (c *Circle) IsVisible(time, preempt float64, hw HitWindow) bool {
	return time > c.StartTime-preempt &&
		time < c.StartTime+CircleFadeoutTime+hw.Acceptable
}

// Update judges the circle against one input. It reports whether the
// input was consumed, which happens exactly when a judgement is
// assigned; a consumed input must not reach any later object.
func (c *Circle) Update(in *Input, hw HitWindow, diameter float64) bool {
	if nil != c.Judgement {
		return false
	}

	if !in.IsKeysHitNoHold() {
		return false
	}

	if in.Pos.Distance(c.Pos) > diameter/2.0 {
		return false
	}

	hitError := math.Abs(c.StartTime - in.Ts)

	for _, w := range []struct {
		window float64
		result Hit
	}{
		{hw.Perfect, HitPerfect},
		{hw.Good, HitGood},
		{hw.Acceptable, HitAcceptable},
	} {
		if hitError <= math.Round(w.window) {
			c.Judgement = &Judgement{At: in.Ts, Pos: in.Pos, Result: w.result}
			return true
		}
	}

	return false
}
