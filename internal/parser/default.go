package parser

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"git.lost.host/meutraa/eotc/internal/game"
)

// DefaultParser loads already-parsed beatmap geometry from the JSON
// interchange an external beatmap parser writes. No beatmap text
// parsing happens here.
type DefaultParser struct{}

type chartFile struct {
	OverallDifficulty float64       `json:"overallDifficulty"`
	CircleSize        float64       `json:"circleSize"`
	ApproachRate      float64       `json:"approachRate"`
	Objects           []chartObject `json:"objects"`
}

type chartObject struct {
	Kind         string      `json:"kind"`
	Time         float64     `json:"time"`
	X            float64     `json:"x"`
	Y            float64     `json:"y"`
	Duration     float64     `json:"duration"`
	Repeats      int         `json:"repeats"`
	TickInterval float64     `json:"tickInterval"`
	Curve        *chartCurve `json:"curve"`
}

type chartCurve struct {
	Kind     string         `json:"kind"`
	Segments [][]chartPoint `json:"segments"`
	Length   float64        `json:"length"`
}

type chartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var curveKinds = map[string]game.CurveKind{
	"linear":  game.CurveLinear,
	"bezier":  game.CurveBezier,
	"perfect": game.CurvePerfect,
	"catmull": game.CurveCatmull,
}

func (p *DefaultParser) Parse(file string) (*game.Beatmap, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}
	return p.ParseBytes(data)
}

func (p *DefaultParser) ParseBytes(data []byte) (*game.Beatmap, error) {
	var chart chartFile
	if err := json.Unmarshal(data, &chart); nil != err {
		return nil, fmt.Errorf("unable to parse chart: %w", err)
	}

	b := &game.Beatmap{
		OverallDifficulty: chart.OverallDifficulty,
		CircleSize:        chart.CircleSize,
		ApproachRate:      chart.ApproachRate,
		Window:            game.NewHitWindow(chart.OverallDifficulty),
		Diameter:          game.CircleDiameter(chart.CircleSize),
	}

	sum := sha256.Sum256(data)
	b.Sum = base64.StdEncoding.EncodeToString(sum[:])

	for i, obj := range chart.Objects {
		switch obj.Kind {
		case "circle":
			b.Objects = append(b.Objects, &game.Circle{
				StartTime: obj.Time,
				Pos:       game.Vec2{X: obj.X, Y: obj.Y},
			})
		case "slider":
			if nil == obj.Curve {
				return nil, fmt.Errorf("slider %d has no curve", i)
			}
			kind, ok := curveKinds[obj.Curve.Kind]
			if !ok {
				return nil, fmt.Errorf("slider %d has unknown curve kind %q", i, obj.Curve.Kind)
			}
			segments := make([][]game.Vec2, len(obj.Curve.Segments))
			for si, seg := range obj.Curve.Segments {
				segments[si] = make([]game.Vec2, len(seg))
				for pi, pt := range seg {
					segments[si][pi] = game.Vec2{X: pt.X, Y: pt.Y}
				}
			}
			curve := game.NewCurve(kind, segments, obj.Curve.Length)
			b.Objects = append(b.Objects, game.NewSlider(
				obj.Time,
				obj.Duration,
				obj.Repeats,
				curve,
				obj.TickInterval,
			))
		default:
			return nil, fmt.Errorf("object %d has unknown kind %q", i, obj.Kind)
		}
	}

	return b, nil
}
