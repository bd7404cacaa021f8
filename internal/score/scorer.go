package score

import (
	"git.lost.host/meutraa/eotc/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the input log of this session
	Save(b *game.Beatmap, inputs []game.Input)

	// Load up previous input logs for the beatmap
	Load(b *game.Beatmap) []History

	Score(b *game.Beatmap, inputs []game.Input) Score
}

type History struct {
	Sum    string
	Inputs []game.Input
}

// Score is the aggregate verdict of one session: raw judgement counts
// plus the signed hit error statistics of the judged circles.
type Score struct {
	Perfect    uint64
	Good       uint64
	Acceptable uint64
	Miss       uint64

	Mean  float64
	Stdev float64

	// One verdict per object, in play order.
	Results []game.Hit
}

func (s *Score) Count(h game.Hit) {
	switch h {
	case game.HitPerfect:
		s.Perfect++
	case game.HitGood:
		s.Good++
	case game.HitAcceptable:
		s.Acceptable++
	default:
		s.Miss++
	}
}

func (s *Score) Total() uint64 {
	return s.Perfect + s.Good + s.Acceptable + s.Miss
}
