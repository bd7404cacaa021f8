package parser

import "git.lost.host/meutraa/eotc/internal/game"

type Parser interface {
	Parse(file string) (*game.Beatmap, error)
}
