package game

// HUD mirrors the values drawn over the field while Active.
type HUD struct {
	Hearts     int
	MaxHearts  int
	Stamina    float64
	Score      int
	HeartFrame int

	heartHold int
}

// Update copies the player's values and advances the heart animation,
// which flips frames every HeartFlipHold ticks.
func (h *HUD) Update(p *Player, score int) {
	if p != nil {
		h.Hearts = p.Hearts.Current
		h.MaxHearts = p.Hearts.Max
		h.Stamina = p.Stamina
	}
	h.Score = score

	h.heartHold--
	if h.heartHold <= 0 {
		h.heartHold = HeartFlipHold
		h.HeartFrame = (h.HeartFrame + 1) % HeartFrames
	}
}

// HeartRect is the on-screen box of the i-th heart.
func (h HUD) HeartRect(i int) RectF {
	return RectFromTopLeft(float64(HeartLeft+i*HeartSpacing), HeartTop, HeartSize, HeartSize)
}

// StaminaRect is the filled part of the stamina bar.
func (h HUD) StaminaRect() RectF {
	return RectFromTopLeft(StaminaLeft, StaminaTop, h.Stamina*StaminaScale, StaminaHeight)
}
