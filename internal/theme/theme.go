package theme

import "git.lost.host/meutraa/eotc/internal/game"

type Theme interface {
	RenderJudgement(h game.Hit) string
}
