package game

// Hearts tracks the player's remaining lives.
type Hearts struct {
	Current int
	Max     int
}

func NewHearts(max int) Hearts {
	return Hearts{Current: max, Max: max}
}

// Lose removes one heart. It reports false when none were left.
func (h *Hearts) Lose() bool {
	if h.Current <= 0 {
		return false
	}
	h.Current--
	return true
}

func (h Hearts) Empty() bool {
	return h.Current <= 0
}

// BarColor returns green/yellow/red based on fraction.
func BarColor(frac float64) RGB {
	if frac > 0.6 {
		return RGB{R: 60, G: 220, B: 60}
	}
	if frac > 0.3 {
		return RGB{R: 220, G: 220, B: 60}
	}
	return RGB{R: 220, G: 60, B: 60}
}
