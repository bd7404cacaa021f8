package game

import "testing"

var windowTests = map[float64]HitWindow{
	0:  {Perfect: 80, Good: 140, Acceptable: 200},
	1:  {Perfect: 74, Good: 132, Acceptable: 190},
	2:  {Perfect: 68, Good: 124, Acceptable: 180},
	3:  {Perfect: 62, Good: 116, Acceptable: 170},
	5:  {Perfect: 50, Good: 100, Acceptable: 150},
	9:  {Perfect: 26, Good: 68, Acceptable: 110},
	10: {Perfect: 20, Good: 60, Acceptable: 100},
}

func TestNewHitWindow(t *testing.T) {
	for od, expected := range windowTests {
		hw := NewHitWindow(od)
		if hw != expected {
			t.Log("od      ", od)
			t.Log("window  ", hw)
			t.Log("expected", expected)
			t.Fail()
		}
		if !(hw.Perfect <= hw.Good && hw.Good <= hw.Acceptable) {
			t.Log("thresholds out of order for od", od, hw)
			t.Fail()
		}
	}
}
