package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"git.lost.host/meutraa/eotc/internal/config"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/input"
	"git.lost.host/meutraa/eotc/internal/parser"
	"git.lost.host/meutraa/eotc/internal/processor"
	"git.lost.host/meutraa/eotc/internal/render"
	"git.lost.host/meutraa/eotc/internal/replay"
	"git.lost.host/meutraa/eotc/internal/score"
	"git.lost.host/meutraa/eotc/internal/theme"
	"github.com/eiannone/keyboard"
)

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Renderer render.Renderer

	beatmap *game.Beatmap
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Renderer = &render.DefaultRenderer{Theme: &theme.DefaultTheme{}}

	scorer := score.NewDefaultScorer(*config.Database)
	if err := scorer.Init(); nil != err {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	p.Scorer = scorer

	beatmap, err := p.Parser.Parse(*config.Chart)
	if nil != err {
		return err
	}

	if *config.OD >= 0 {
		beatmap.OverallDifficulty = *config.OD
		beatmap.Window = game.NewHitWindow(*config.OD)
	}
	if *config.CS >= 0 {
		beatmap.CircleSize = *config.CS
		beatmap.Diameter = game.CircleDiameter(*config.CS)
	}

	p.beatmap = beatmap
	return nil
}

func (p *Program) Deinit() {
	if nil != p.Scorer {
		p.Scorer.Deinit()
	}
}

func (p *Program) Run() error {
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	switch {
	case *config.List:
		return p.runList()
	case *config.Device != "":
		return p.runLive()
	case *config.Replay != "":
		return p.runReplay()
	}
	return errors.New("nothing to do, pass one of --replay, --list or --device")
}

func (p *Program) report(inputs []game.Input) {
	s := p.Scorer.Score(p.beatmap, inputs)
	p.Renderer.Timeline(&s)
	p.Renderer.Summary(&s)
}

func (p *Program) runReplay() error {
	frames, err := replay.Load(*config.Replay)
	if nil != err {
		return err
	}

	inputs := replay.Inputs(frames)
	p.report(inputs)
	p.Scorer.Save(p.beatmap, inputs)
	return nil
}

func (p *Program) runList() error {
	histories := p.Scorer.Load(p.beatmap)
	if len(histories) == 0 {
		return errors.New("no saved input logs for this chart")
	}

	for i, h := range histories {
		fmt.Printf("%2v) %5v inputs\n", i, len(h.Inputs))
	}

	keyChannel, err := keyboard.GetKeys(8)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	key := <-keyChannel
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index > int64(len(histories)-1) {
		return err
	}

	p.report(histories[index].Inputs)
	return nil
}

// runLive feeds device events through the same accumulator and engine
// a replay goes through; only the producer differs.
func (p *Program) runLive() error {
	events := make(chan *input.Event, 128)
	if err := input.ReadInput(*config.Device, events); nil != err {
		return fmt.Errorf("unable to open input device: %w", err)
	}

	end := 0.0
	for _, obj := range p.beatmap.Objects {
		t := obj.Start()
		if s, ok := obj.(*game.Slider); ok {
			t = s.EndTime()
		}
		if t > end {
			end = t
		}
	}
	end += p.beatmap.Window.Acceptable + 2000.0

	proc := &processor.Processor{}
	cursor := game.Vec2{X: game.CoordsWidth / 2, Y: game.CoordsHeight / 2}

	var started bool
	var epoch time.Time

	for e := range events {
		at := time.Unix(e.Time.Sec, e.Time.Usec*1000)
		if !started {
			started = true
			epoch = at
		}
		ts := float64(at.Sub(epoch)) / float64(time.Millisecond)
		if ts > end {
			break
		}

		switch {
		case e.Moved:
			cursor.X += e.DX
			cursor.Y += e.DY
			proc.CursorMoved(ts, cursor)
		case e.Pressed:
			proc.KeyPressed(ts, game.KeyState{K1: e.K1, K2: e.K2})
		case e.Released:
			proc.KeyReleased(ts, game.KeyState{K1: e.K1, K2: e.K2})
		}
	}

	inputs := proc.Log()
	p.report(inputs)
	p.Scorer.Save(p.beatmap, inputs)
	return nil
}
