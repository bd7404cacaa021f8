package testdata

import (
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/parser"
)

func GetBeatmap() (*game.Beatmap, error) {
	p := parser.DefaultParser{}
	return p.ParseBytes([]byte(data))
}

const data = `{
  "overallDifficulty": 5,
  "circleSize": 4,
  "approachRate": 9,
  "objects": [
    {"kind": "circle", "time": 1000, "x": 100, "y": 100},
    {"kind": "circle", "time": 1500, "x": 200, "y": 100},
    {
      "kind": "slider", "time": 2000, "duration": 600,
      "repeats": 1, "tickInterval": 200,
      "curve": {
        "kind": "linear",
        "segments": [[{"x": 300, "y": 100}, {"x": 400, "y": 100}]],
        "length": 100
      }
    },
    {
      "kind": "slider", "time": 3000, "duration": 500,
      "repeats": 2, "tickInterval": 0,
      "curve": {
        "kind": "linear",
        "segments": [[{"x": 100, "y": 200}, {"x": 180, "y": 200}]],
        "length": 80
      }
    }
  ]
}`
