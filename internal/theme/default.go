package theme

import (
	"fmt"

	"git.lost.host/meutraa/eotc/internal/game"
)

type DefaultTheme struct {
}

type color struct {
	R, G, B uint8
}

const hitSym = "⬤"

var hitColors = map[game.Hit]color{
	game.HitPerfect:    {173, 236, 236}, // light blue
	game.HitGood:       {0, 236, 128},   // green
	game.HitAcceptable: {236, 195, 0},   // yellow
	game.HitMiss:       {236, 30, 0},    // red
}

func (t *DefaultTheme) RenderJudgement(h game.Hit) string {
	c, ok := hitColors[h]
	if !ok {
		c = color{255, 255, 255}
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, hitSym)
}
