package game

type Hit int

const (
	HitMiss Hit = iota
	HitAcceptable
	HitGood
	HitPerfect
)

func (h Hit) String() string {
	switch h {
	case HitPerfect:
		return "Perfect"
	case HitGood:
		return "Good"
	case HitAcceptable:
		return "Acceptable"
	}
	return "Miss"
}

// Judgement records when and where an object was hit, and how well.
type Judgement struct {
	At     float64
	Pos    Vec2
	Result Hit
}
