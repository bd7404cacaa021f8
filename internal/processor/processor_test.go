package processor

import (
	"testing"

	"git.lost.host/meutraa/eotc/internal/game"
)

var k1 = game.KeyState{K1: true}

func TestKeyReleasedWithoutHeld(t *testing.T) {
	p := &Processor{}
	p.KeyPressed(100, k1)
	p.KeyPressed(150, k1)
	p.KeyReleased(150, k1)
	p.KeyReleased(200, k1)

	log := p.Log()
	if len(log) != 3 {
		t.Log("log", log)
		t.Fail()
		return
	}
	if log[0].Keys != k1 || log[0].Hold.IsKeyHit() {
		t.Log("first press", log[0])
		t.Fail()
	}
	// Pressing an already held key keeps it down and marks the hold.
	if log[1].Keys != k1 || log[1].Hold != k1 {
		t.Log("second press", log[1])
		t.Fail()
	}
	if log[2].Keys.IsKeyHit() || log[2].Hold.IsKeyHit() {
		t.Log("release", log[2])
		t.Fail()
	}
}

func TestCursorMovedCarriesKeys(t *testing.T) {
	p := &Processor{}
	p.CursorMoved(50, game.Vec2{X: 10, Y: 10})
	p.KeyPressed(100, k1)
	p.CursorMoved(120, game.Vec2{X: 20, Y: 30})

	log := p.Log()
	if len(log) != 3 {
		t.Log("log", log)
		t.Fail()
		return
	}
	if log[1].Pos != (game.Vec2{X: 10, Y: 10}) {
		t.Log("press position", log[1])
		t.Fail()
	}
	last := log[2]
	if last.Keys != k1 || last.Hold != k1 || last.Pos != (game.Vec2{X: 20, Y: 30}) {
		t.Log("move", last)
		t.Fail()
	}
}

func TestDeterministic(t *testing.T) {
	run := func() []game.Input {
		p := &Processor{}
		p.CursorMoved(10, game.Vec2{X: 1, Y: 2})
		p.KeyPressed(20, k1)
		p.KeyPressed(30, game.KeyState{K2: true})
		p.CursorMoved(40, game.Vec2{X: 3, Y: 4})
		p.KeyReleased(50, game.KeyState{K1: true, K2: true})
		return p.Log()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fail()
		return
	}
	for i := range a {
		if a[i] != b[i] {
			t.Log("diverged", a[i], b[i])
			t.Fail()
		}
	}
}

func circleBeatmap(times ...float64) *game.Beatmap {
	b := &game.Beatmap{
		Window:   game.NewHitWindow(5),
		Diameter: game.CircleDiameter(4),
	}
	for _, ts := range times {
		b.Objects = append(b.Objects, &game.Circle{
			StartTime: ts,
			Pos:       game.Vec2{X: 100, Y: 100},
		})
	}
	return b
}

func TestProcessAllCircleWindows(t *testing.T) {
	for name, tt := range map[string]struct {
		ts       float64
		expected *game.Hit
	}{
		"early perfect":       {1010, hit(game.HitPerfect)},
		"perfect boundary":    {1050, hit(game.HitPerfect)},
		"good":                {1080, hit(game.HitGood)},
		"acceptable":          {1140, hit(game.HitAcceptable)},
		"acceptable boundary": {1150, hit(game.HitAcceptable)},
		"too late":            {1200, nil},
	} {
		b := circleBeatmap(1000)
		p := FromInputs([]game.Input{
			{Ts: tt.ts, Pos: game.Vec2{X: 100, Y: 100}, Keys: k1},
		})
		p.ProcessAll(b)

		j := b.Objects[0].(*game.Circle).Judgement
		if nil == tt.expected {
			if nil != j {
				t.Log(name, "unexpected judgement", j)
				t.Fail()
			}
			continue
		}
		if nil == j || j.Result != *tt.expected {
			t.Log(name, "judgement", j)
			t.Log(name, "expected", *tt.expected)
			t.Fail()
		}
	}
}

func hit(h game.Hit) *game.Hit {
	return &h
}

func TestProcessAllStackedCircles(t *testing.T) {
	b := circleBeatmap(1000, 1100)
	pos := game.Vec2{X: 100, Y: 100}

	// One press judges exactly one circle even when both are hittable.
	p := FromInputs([]game.Input{
		{Ts: 1050, Pos: pos, Keys: k1},
		{Ts: 1110, Pos: pos, Keys: k1},
	})
	p.ProcessAll(b)

	first := b.Objects[0].(*game.Circle).Judgement
	second := b.Objects[1].(*game.Circle).Judgement
	if nil == first || first.Result != game.HitPerfect || first.At != 1050 {
		t.Log("first", first)
		t.Fail()
	}
	if nil == second || second.Result != game.HitPerfect || second.At != 1110 {
		t.Log("second", second)
		t.Fail()
	}
}

func TestProcessAllHoldDoesNotHit(t *testing.T) {
	b := circleBeatmap(1000)
	p := FromInputs([]game.Input{
		{Ts: 1010, Pos: game.Vec2{X: 100, Y: 100}, Keys: k1, Hold: k1},
	})
	p.ProcessAll(b)

	if j := b.Objects[0].(*game.Circle).Judgement; nil != j {
		t.Log("judgement", j)
		t.Fail()
	}
}

func TestProcessAllSliderHeadConsumes(t *testing.T) {
	curve := game.NewCurve(game.CurveLinear,
		[][]game.Vec2{{{X: 100, Y: 100}, {X: 200, Y: 100}}}, 100)
	slider := game.NewSlider(1000, 600, 1, curve, 200)
	b := &game.Beatmap{
		Window:   game.NewHitWindow(5),
		Diameter: game.CircleDiameter(4),
		Objects:  []game.Object{slider, &game.Circle{StartTime: 1020, Pos: game.Vec2{X: 100, Y: 100}}},
	}

	p := FromInputs([]game.Input{
		{Ts: 1010, Pos: game.Vec2{X: 100, Y: 100}, Keys: k1},
	})
	p.ProcessAll(b)

	if nil == slider.Result || slider.Result.State != game.SliderStateMiddle {
		t.Log("slider", slider.Result)
		t.Fail()
	}
	if j := b.Objects[1].(*game.Circle).Judgement; nil != j {
		t.Log("circle should not see a consumed input", j)
		t.Fail()
	}
}
