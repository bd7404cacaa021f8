// Package replay converts a raw recorded frame stream into the clean,
// monotonic input sequence the judgement engine consumes, correcting
// the known recording defects of legacy replays.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"git.lost.host/meutraa/eotc/internal/game"
)

// Frame is one legacy recording frame. TimeDelta is the offset since
// the previous frame, not an absolute timestamp.
type Frame struct {
	TimeDelta float64 `json:"w"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Keys      uint8   `json:"z"`
}

// Legacy recordings mark a seek operation with this cursor position.
var seekSentinel = game.Vec2{X: 256.0, Y: -500.0}

// Load reads a frame stream produced by an external replay file parser.
func Load(file string) ([]Frame, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read replay frames: %w", err)
	}
	var frames []Frame
	if err := json.Unmarshal(data, &frames); nil != err {
		return nil, fmt.Errorf("unable to parse replay frames: %w", err)
	}
	return frames, nil
}

// Inputs normalizes a raw frame stream into an input sequence with
// absolute, non-decreasing timestamps and reconstructed hold bits.
// Malformed input degenerates to an empty or truncated sequence.
func Inputs(frames []Frame) []game.Input {
	inputs := make([]game.Input, 0, len(frames))

	ts := 0.0
	for _, f := range frames {
		ts += f.TimeDelta
		inputs = append(inputs, game.Input{
			Ts:   ts,
			Pos:  game.Vec2{X: f.X, Y: f.Y},
			Keys: game.KeyStateFromMask(f.Keys),
		})
	}

	// Historical corrections, in the order the stable client applies
	// them. The first frame can be a pre-roll marker recorded after
	// the second.
	if len(inputs) >= 2 && inputs[1].Ts < inputs[0].Ts {
		inputs[1].Ts = inputs[0].Ts
		inputs[0].Ts = 0.0
	}

	if len(inputs) >= 3 && inputs[0].Ts > inputs[2].Ts {
		inputs[0].Ts = inputs[2].Ts
		inputs[1].Ts = inputs[2].Ts
	}

	if len(inputs) >= 2 && inputs[1].Pos == seekSentinel {
		inputs = append(inputs[:1], inputs[2:]...)
	}

	if len(inputs) >= 1 && inputs[0].Pos == seekSentinel {
		inputs = inputs[1:]
	}

	// Monotonicity filter: a frame earlier than the last retained one
	// is dropped, ties are kept.
	kept := inputs[:0]
	last := -1
	for i := range inputs {
		if last >= 0 && inputs[i].Ts < kept[last].Ts {
			continue
		}
		kept = append(kept, inputs[i])
		last++
	}
	inputs = kept

	var prev game.KeyState
	for i := range inputs {
		inputs[i].Hold = game.KeyState{
			K1: inputs[i].Keys.K1 && prev.K1,
			K2: inputs[i].Keys.K2 && prev.K2,
		}
		prev = inputs[i].Keys
	}

	return inputs
}
