package render

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/eotc/internal/config"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/score"
	"git.lost.host/meutraa/eotc/internal/theme"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Theme theme.Theme
}

func (r *DefaultRenderer) Summary(s *score.Score) {
	for _, j := range config.Judgements {
		count := uint64(0)
		switch j.Hit {
		case game.HitPerfect:
			count = s.Perfect
		case game.HitGood:
			count = s.Good
		case game.HitAcceptable:
			count = s.Acceptable
		case game.HitMiss:
			count = s.Miss
		}
		fmt.Printf("%v:  %6v\n", j.Name, count)
	}
	fmt.Printf("      Total:  %6v\n", s.Total())
	fmt.Printf("       Mean:  %6.2f ms\n", s.Mean)
	fmt.Printf("      Stdev:  %6.2f ms\n", s.Stdev)
}

// Timeline prints one glyph per object in play order, wrapped to the
// terminal width.
func (r *DefaultRenderer) Timeline(s *score.Score) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err || width < 8 {
		width = 80
	}

	for i, h := range s.Results {
		if i > 0 && i%width == 0 {
			fmt.Println()
		}
		fmt.Print(r.Theme.RenderJudgement(h))
	}
	fmt.Println()
}
