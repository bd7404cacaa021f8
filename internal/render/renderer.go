package render

import "git.lost.host/meutraa/eotc/internal/score"

type Renderer interface {
	Summary(s *score.Score)
	Timeline(s *score.Score)
}
