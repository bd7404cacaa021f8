package game

// HitWindow holds the three judgement thresholds in milliseconds.
// Perfect <= Good <= Acceptable for any difficulty in [0,10].
type HitWindow struct {
	Perfect    float64
	Good       float64
	Acceptable float64
}

// NewHitWindow derives the thresholds from the overall difficulty.
// Out of range values are not clamped, upstream validation owns that.
func NewHitWindow(od float64) HitWindow {
	return HitWindow{
		Perfect:    DiffRate(od, 80.0, 50.0, 20.0),
		Good:       DiffRate(od, 140.0, 100.0, 60.0),
		Acceptable: DiffRate(od, 200.0, 150.0, 100.0),
	}
}
