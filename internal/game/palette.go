package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette holds the colours shared by every frontend.
var Palette = struct {
	Ground       RGB
	GroundSpeck  RGB
	Backdrop     RGB
	Title        RGB
	Text         RGB
	Player       RGB
	PlayerHurt   RGB
	Projectile   RGB
	SpiderAdult  RGB
	SpiderBaby   RGB
	SpiderAttack RGB
	Blood        RGB
	BloodDark    RGB
	Heart        RGB
	HeartDim     RGB
	StaminaBack  RGB
}{
	Ground:       RGB{R: 58, G: 52, B: 44},
	GroundSpeck:  RGB{R: 72, G: 64, B: 52},
	Backdrop:     RGB{R: 18, G: 14, B: 20},
	Title:        RGB{R: 220, G: 40, B: 40},
	Text:         RGB{R: 230, G: 226, B: 214},
	Player:       RGB{R: 90, G: 170, B: 235},
	PlayerHurt:   RGB{R: 255, G: 255, B: 255},
	Projectile:   RGB{R: 255, G: 200, B: 90},
	SpiderAdult:  RGB{R: 30, G: 24, B: 28},
	SpiderBaby:   RGB{R: 96, G: 72, B: 60},
	SpiderAttack: RGB{R: 150, G: 30, B: 40},
	Blood:        RGB{R: 160, G: 10, B: 14},
	BloodDark:    RGB{R: 96, G: 6, B: 10},
	Heart:        RGB{R: 230, G: 30, B: 60},
	HeartDim:     RGB{R: 90, G: 20, B: 30},
	StaminaBack:  RGB{R: 40, G: 40, B: 40},
}
