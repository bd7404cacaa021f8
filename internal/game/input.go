package game

// Legacy replay frames store the button state as a bitmask.
const (
	MaskM1 = 1 << 0
	MaskM2 = 1 << 1
	MaskK1 = 1 << 2
	MaskK2 = 1 << 3
)

// KeyState is the state of the two gameplay keys.
type KeyState struct {
	K1 bool
	K2 bool
}

func KeyStateFromMask(mask uint8) KeyState {
	return KeyState{
		K1: mask&MaskK1 != 0,
		K2: mask&MaskK2 != 0,
	}
}

func (k KeyState) Mask() uint8 {
	var mask uint8
	if k.K1 {
		mask |= MaskK1
	}
	if k.K2 {
		mask |= MaskK2
	}
	return mask
}

func (k KeyState) IsKeyHit() bool {
	return k.K1 || k.K2
}

// Input is one entry of the judged event stream. Keys is the state after
// the event; Hold marks which of those keys were already down before it.
type Input struct {
	Ts   float64
	Pos  Vec2
	Keys KeyState
	Hold KeyState
}

// IsKeysHitNoHold reports whether any key transitioned to freshly
// pressed on this input.
func (in *Input) IsKeysHitNoHold() bool {
	return (in.Keys.K1 && !in.Hold.K1) || (in.Keys.K2 && !in.Hold.K2)
}

// FreshKeys returns only the keys that were pressed on this very input.
func (in *Input) FreshKeys() KeyState {
	return KeyState{
		K1: in.Keys.K1 && !in.Hold.K1,
		K2: in.Keys.K2 && !in.Hold.K2,
	}
}
