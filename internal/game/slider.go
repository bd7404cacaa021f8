package game

import (
	"errors"
	"math"
	"sort"
)

const SliderFadeoutTime = 80.0

const (
	// Continuous tracking allows the cursor this much slack beyond the
	// hit radius; the head hit itself is never enlarged.
	followRadiusScale = 2.4

	// The last chance to be in good standing is this many milliseconds
	// before the slider end, capped at the halfway point.
	lenienceOffset = 36.0

	// Ticks generated closer than this to the end of a slide are
	// swallowed by the slide boundary.
	minTickGap = 10.0
)

// ErrHitWithoutKeys is returned when a head hit is registered while no
// key is down. The input producers cannot emit such an input; see the
// design notes.
var ErrHitWithoutKeys = errors.New("slider head hit without any key pressed")

type Tick struct {
	Time float64
	Pos  Vec2
}

type ReverseArrow struct {
	Time float64
	Pos  Vec2
}

type SliderState int

const (
	SliderStateStart SliderState = iota
	SliderStateMiddle
	SliderStateEnd
	SliderStatePassed
)

// SliderResult exists from the instant the head is hit and is kept as
// the final record. State only ever moves forward.
type SliderResult struct {
	State             SliderState
	Head              Judgement
	PassedCheckpoints []int
	LeniencePassed    bool
	EndPassed         bool

	// Earliest unbroken input satisfying each condition, nil once the
	// condition breaks.
	HoldingSince  *float64
	InRadiusSince *float64

	// Keys that count towards holding. Set to the keys that initiated
	// the head hit, widened to both once the committed key is released
	// with nothing else down.
	StartKeys KeyState
}

type Slider struct {
	StartTime float64
	Duration  float64
	Repeats   int
	Pos       Vec2
	Curve     *Curve

	Ticks         []Tick
	ReverseArrows []ReverseArrow

	// Ticks and reverse arrow crossings merged in time order. Strictly
	// increasing; a tick coinciding with an arrow is dropped.
	Checkpoints []Tick

	Result *SliderResult
}

// NewSlider builds a slider plus its derived ticks, reverse arrows and
// checkpoints. tickInterval is the beat-derived tick spacing in
// milliseconds, zero or negative means no ticks.
func NewSlider(startTime, duration float64, repeats int, curve *Curve, tickInterval float64) *Slider {
	if repeats < 1 {
		repeats = 1
	}
	s := &Slider{
		StartTime: startTime,
		Duration:  duration,
		Repeats:   repeats,
		Pos:       curve.PositionAt(0),
		Curve:     curve,
	}

	span := duration / float64(repeats)

	if tickInterval > 0 {
		for slide := 1; slide <= repeats; slide++ {
			slideStart := startTime + float64(slide-1)*span
			for t := tickInterval; t < span-minTickGap; t += tickInterval {
				progress := t / span
				if slide%2 == 0 {
					progress = 1.0 - progress
				}
				s.Ticks = append(s.Ticks, Tick{
					Time: slideStart + t,
					Pos:  curve.PositionAt(progress),
				})
			}
		}
	}

	for k := 1; k < repeats; k++ {
		progress := 0.0
		if k%2 == 1 {
			progress = 1.0
		}
		s.ReverseArrows = append(s.ReverseArrows, ReverseArrow{
			Time: startTime + float64(k)*span,
			Pos:  curve.PositionAt(progress),
		})
	}

	s.Checkpoints = mergeCheckpoints(s.Ticks, s.ReverseArrows)
	return s
}

func mergeCheckpoints(ticks []Tick, arrows []ReverseArrow) []Tick {
	merged := make([]Tick, 0, len(ticks)+len(arrows))
	for _, a := range arrows {
		merged = append(merged, Tick{Time: a.Time, Pos: a.Pos})
	}
	for _, t := range ticks {
		duplicate := false
		for _, a := range arrows {
			if math.Abs(a.Time-t.Time) < 1e-9 {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, t)
		}
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Time < merged[j].Time
	})
	return merged
}

func (s *Slider) Start() float64 {
	return s.StartTime
}

func (s *Slider) EndTime() float64 {
	return s.StartTime + s.Duration
}

func (s *Slider) IsVisible(time, preempt float64) bool {
	return time > s.StartTime-preempt &&
		time < s.EndTime()+SliderFadeoutTime
}

// Slide is the 1-based repeat index active at ts.
func (s *Slider) Slide(ts float64) int {
	span := s.Duration / float64(s.Repeats)
	if ts <= s.StartTime {
		return 1
	}
	slide := int((ts-s.StartTime)/span) + 1
	if slide > s.Repeats {
		return s.Repeats
	}
	return slide
}

// Progress maps a timestamp onto curve progress in [0,1]. Odd slides
// run forward along the curve, even slides reversed.
func (s *Slider) Progress(ts float64) float64 {
	span := s.Duration / float64(s.Repeats)

	slide := s.Slide(ts)
	local := 1.0
	if ts <= s.StartTime {
		local = 0.0
	} else if ts < s.EndTime() {
		local = (ts - s.StartTime - float64(slide-1)*span) / span
	}

	if slide%2 == 0 {
		return 1.0 - local
	}
	return local
}

func (s *Slider) lenienceHackTime() float64 {
	return math.Max(s.StartTime+s.Duration/2.0, s.EndTime()-lenienceOffset)
}

// Step runs both judgement phases for one input: head detection first,
// continuous tracking second. It reports whether the input was consumed
// by a fresh head hit, in which case tracking is skipped for this input
// and no later object may use it.
func (s *Slider) Step(in *Input, hw HitWindow, diameter float64) (bool, error) {
	if nil == s.Result {
		hit, err := s.hitHead(in, hw, diameter)
		if nil != err || hit {
			return hit, err
		}
		return false, nil
	}

	s.track(in, diameter)
	return false, nil
}

func (s *Slider) hitHead(in *Input, hw HitWindow, diameter float64) (bool, error) {
	if !in.IsKeysHitNoHold() {
		return false, nil
	}

	if in.Pos.Distance(s.Pos) > diameter/2.0 {
		return false, nil
	}

	if math.Abs(s.StartTime-in.Ts) > math.Round(hw.Acceptable) {
		return false, nil
	}

	fresh := in.FreshKeys()
	if !fresh.IsKeyHit() {
		return false, ErrHitWithoutKeys
	}

	ts := in.Ts
	s.Result = &SliderResult{
		State: SliderStateMiddle,
		// Head hits are not graded on timing, a hit is a full hit.
		Head:         Judgement{At: in.Ts, Pos: in.Pos, Result: HitPerfect},
		StartKeys:    fresh,
		HoldingSince: &ts,
	}
	return true, nil
}

func (s *Slider) track(in *Input, diameter float64) {
	r := s.Result
	if SliderStatePassed == r.State {
		return
	}

	ts := in.Ts

	// Follow circle containment, with the enlarged radius.
	pos := s.Curve.PositionAt(s.Progress(ts))
	if in.Pos.Distance(pos) <= diameter/2.0*followRadiusScale {
		if nil == r.InRadiusSince {
			r.InRadiusSince = &ts
		}
	} else {
		r.InRadiusSince = nil
	}

	// Only the committed keys count towards holding.
	held := (r.StartKeys.K1 && in.Keys.K1) || (r.StartKeys.K2 && in.Keys.K2)
	if held {
		if nil == r.HoldingSince {
			r.HoldingSince = &ts
		}
	} else {
		r.HoldingSince = nil
		if !in.Keys.IsKeyHit() {
			// Original key released with the other one up, any key may
			// resume the hold from here on.
			r.StartKeys = KeyState{K1: true, K2: true}
		}
	}

	// The latest checkpoint that ts has reached, if the hold was
	// unbroken through its timestamp.
	if idx := s.dueCheckpoint(ts); idx >= 0 {
		if nil != r.HoldingSince && *r.HoldingSince < s.Checkpoints[idx].Time {
			r.PassedCheckpoints = append(r.PassedCheckpoints, idx)
		}
	}

	if SliderStateMiddle == r.State {
		last := len(s.Checkpoints) - 1
		if last < 0 || containsInt(r.PassedCheckpoints, last) || ts >= s.EndTime() {
			r.State = SliderStateEnd
		}
	}

	if !r.LeniencePassed {
		lh := s.lenienceHackTime()
		if ts >= lh &&
			nil != r.HoldingSince && *r.HoldingSince < lh &&
			nil != r.InRadiusSince && *r.InRadiusSince < lh {
			r.LeniencePassed = true
		}
	}

	if SliderStateEnd == r.State && ts >= s.EndTime() {
		r.EndPassed = r.LeniencePassed
		r.State = SliderStatePassed
	}
}

// dueCheckpoint returns the index of the latest checkpoint at or before
// ts that has not been passed yet, or -1.
func (s *Slider) dueCheckpoint(ts float64) int {
	idx := -1
	for i, cp := range s.Checkpoints {
		if cp.Time > ts {
			break
		}
		if !containsInt(s.Result.PassedCheckpoints, i) {
			idx = i
		}
	}
	return idx
}

// Grade folds the terminal result into a single judgement the way the
// stable client rewards sliders: head, every checkpoint and the end
// each count for one, and the fraction decides.
func (s *Slider) Grade() Hit {
	r := s.Result
	if nil == r {
		return HitMiss
	}

	max := float64(2 + len(s.Checkpoints))
	actual := float64(len(r.PassedCheckpoints))
	if r.Head.Result != HitMiss {
		actual++
	}
	if r.LeniencePassed {
		actual++
	}

	percent := actual / max
	switch {
	case percent >= 0.999:
		return HitPerfect
	case percent >= 0.5:
		return HitGood
	case percent > 0:
		return HitAcceptable
	}
	return HitMiss
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
