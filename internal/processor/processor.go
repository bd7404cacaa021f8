// Package processor turns discrete cursor and key events into the
// ordered input stream, and drives that stream through the judgement
// state of a beatmap's objects.
package processor

import (
	"log"

	"git.lost.host/meutraa/eotc/internal/game"
)

// Processor accumulates input events. Each entry point appends exactly
// one input to the session log and the pending queue; identical call
// sequences always produce identical input sequences.
type Processor struct {
	log   []game.Input
	queue []game.Input

	lastCursorPos game.Vec2
}

// FromInputs seeds the queue with an already-normalized sequence, the
// replay playback path. Live play uses the event entry points instead;
// both feed the identical engine.
func FromInputs(inputs []game.Input) *Processor {
	p := &Processor{}
	p.queue = append(p.queue, inputs...)
	p.log = append(p.log, inputs...)
	return p
}

// Log is the full ordered input history of the session.
func (p *Processor) Log() []game.Input {
	return p.log
}

func (p *Processor) lastInput() (game.Input, bool) {
	if len(p.log) == 0 {
		return game.Input{}, false
	}
	return p.log[len(p.log)-1], true
}

func (p *Processor) store(in game.Input) {
	p.queue = append(p.queue, in)
	p.log = append(p.log, in)
}

// CursorMoved re-emits the current key state at the new position. A
// position change alone never implies a key transition, so every held
// key carries over as a hold.
func (p *Processor) CursorMoved(ts float64, pos game.Vec2) {
	p.lastCursorPos = pos

	last, ok := p.lastInput()
	if !ok {
		p.store(game.Input{Ts: ts, Pos: pos})
		return
	}

	p.store(game.Input{
		Ts:   ts,
		Pos:  pos,
		Keys: last.Keys,
		Hold: last.Keys,
	})
}

// KeyPressed merges newly pressed keys into the held set. A key that
// was already down stays down and is marked as held over.
func (p *Processor) KeyPressed(ts float64, state game.KeyState) {
	last, ok := p.lastInput()
	if !ok {
		p.store(game.Input{Ts: ts, Pos: p.lastCursorPos, Keys: state})
		return
	}

	keys := game.KeyState{
		K1: last.Keys.K1 || state.K1,
		K2: last.Keys.K2 || state.K2,
	}
	p.store(game.Input{
		Ts:   ts,
		Pos:  p.lastCursorPos,
		Keys: keys,
		Hold: game.KeyState{
			K1: last.Keys.K1 && keys.K1,
			K2: last.Keys.K2 && keys.K2,
		},
	})
}

// KeyReleased clears each held key whose bit is set in state. With
// nothing held there is nothing to release and no input is emitted.
func (p *Processor) KeyReleased(ts float64, state game.KeyState) {
	last, ok := p.lastInput()
	if !ok || !last.Keys.IsKeyHit() {
		return
	}

	keys := last.Keys
	if state.K1 {
		keys.K1 = false
	}
	if state.K2 {
		keys.K2 = false
	}
	p.store(game.Input{
		Ts:   ts,
		Pos:  p.lastCursorPos,
		Keys: keys,
		Hold: game.KeyState{
			K1: last.Keys.K1 && keys.K1,
			K2: last.Keys.K2 && keys.K2,
		},
	})
}

// ProcessAll drains the pending queue against the beatmap's objects.
// Objects are visited in chart order; an input consumed by a circle
// judgement or a fresh slider head hit reaches no later object, every
// other input still feeds the continuous tracking of open sliders.
func (p *Processor) ProcessAll(b *game.Beatmap) {
	for i := range p.queue {
		in := &p.queue[i]

	objects:
		for _, obj := range b.Objects {
			switch o := obj.(type) {
			case *game.Circle:
				if o.Update(in, b.Window, b.Diameter) {
					break objects
				}
			case *game.Slider:
				consumed, err := o.Step(in, b.Window, b.Diameter)
				if nil != err {
					log.Println("dropping impossible input:", err)
					continue
				}
				if consumed {
					break objects
				}
			}
		}
	}

	p.queue = p.queue[:0]
}
