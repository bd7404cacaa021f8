package game

// Object is either a *Circle or a *Slider; the engine type switches on
// the concrete kind the way the reference client matches on it.
type Object interface {
	Start() float64
}

// Beatmap owns every object of one session in play order. The engine
// mutates judgement state in place and never adds or removes objects.
type Beatmap struct {
	OverallDifficulty float64
	CircleSize        float64
	ApproachRate      float64

	Window   HitWindow
	Diameter float64
	Objects  []Object

	// Content hash of the parsed source, keys the score history.
	Sum string
}

// Clone returns a copy with all judgement state reset, sharing the
// immutable geometry. Used to re-judge a stored input log.
func (b *Beatmap) Clone() *Beatmap {
	nb := *b
	nb.Objects = make([]Object, len(b.Objects))
	for i, obj := range b.Objects {
		switch o := obj.(type) {
		case *Circle:
			c := *o
			c.Judgement = nil
			nb.Objects[i] = &c
		case *Slider:
			s := *o
			s.Result = nil
			nb.Objects[i] = &s
		}
	}
	return &nb
}
