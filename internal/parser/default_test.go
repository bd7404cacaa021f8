package parser

import (
	"testing"

	"git.lost.host/meutraa/eotc/internal/game"
)

const chart = `{
  "overallDifficulty": 5,
  "circleSize": 4,
  "approachRate": 9,
  "objects": [
    {"kind": "circle", "time": 1000, "x": 100, "y": 100},
    {
      "kind": "slider", "time": 2000, "duration": 600,
      "repeats": 1, "tickInterval": 200,
      "curve": {
        "kind": "linear",
        "segments": [[{"x": 300, "y": 100}, {"x": 400, "y": 100}]],
        "length": 100
      }
    }
  ]
}`

func TestParseBytes(t *testing.T) {
	p := DefaultParser{}
	b, err := p.ParseBytes([]byte(chart))
	if nil != err {
		t.Log("unable to parse chart", err)
		t.Fail()
		return
	}

	if b.OverallDifficulty != 5 || b.CircleSize != 4 || b.ApproachRate != 9 {
		t.Log("difficulty", b.OverallDifficulty, b.CircleSize, b.ApproachRate)
		t.Fail()
	}
	if b.Window != game.NewHitWindow(5) {
		t.Log("window", b.Window)
		t.Fail()
	}
	if b.Sum == "" {
		t.Log("missing checksum")
		t.Fail()
	}

	if len(b.Objects) != 2 {
		t.Log("objects", b.Objects)
		t.Fail()
		return
	}
	c, ok := b.Objects[0].(*game.Circle)
	if !ok || c.StartTime != 1000 || c.Pos != (game.Vec2{X: 100, Y: 100}) {
		t.Log("circle", b.Objects[0])
		t.Fail()
	}
	s, ok := b.Objects[1].(*game.Slider)
	if !ok || s.StartTime != 2000 || s.Duration != 600 || s.Repeats != 1 {
		t.Log("slider", b.Objects[1])
		t.Fail()
		return
	}
	if len(s.Ticks) != 2 {
		t.Log("ticks", s.Ticks)
		t.Fail()
	}
	if end := s.Curve.PositionAt(1); end != (game.Vec2{X: 400, Y: 100}) {
		t.Log("curve end", end)
		t.Fail()
	}
}

func TestParseBytesErrors(t *testing.T) {
	for name, chart := range map[string]string{
		"invalid json":  `{`,
		"unknown kind":  `{"objects": [{"kind": "spinner", "time": 0}]}`,
		"missing curve": `{"objects": [{"kind": "slider", "time": 0}]}`,
		"unknown curve": `{"objects": [{"kind": "slider", "time": 0,
			"curve": {"kind": "spline", "segments": [], "length": 0}}]}`,
	} {
		p := DefaultParser{}
		if _, err := p.ParseBytes([]byte(chart)); nil == err {
			t.Log(name, "expected an error")
			t.Fail()
		}
	}
}
