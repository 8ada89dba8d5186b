package desktop

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spidersmash/internal/game"
)

// The atlas holds printable ASCII in a grid of basicfont cells.
const (
	atlasFirst = 32
	atlasLast  = 126
	atlasCols  = 16
	atlasRows  = (atlasLast - atlasFirst + atlasCols) / atlasCols
)

var (
	glyphW = basicfont.Face7x13.Advance
	glyphH = basicfont.Face7x13.Height
)

// buildAtlas rasterises every glyph into a single channel image.
func buildAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*glyphW, atlasRows*glyphH))
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: basicfont.Face7x13}
	for ch := rune(atlasFirst); ch <= atlasLast; ch++ {
		col, row, _ := atlasCell(ch)
		d.Dot = fixed.P(col*glyphW, row*glyphH+basicfont.Face7x13.Ascent)
		d.DrawString(string(ch))
	}
	return img
}

func atlasCell(ch rune) (col, row int, ok bool) {
	if ch < atlasFirst || ch > atlasLast {
		return 0, 0, false
	}
	i := int(ch - atlasFirst)
	return i % atlasCols, i / atlasCols, true
}

// TextWidth is the width in pixels of a single line at scale.
func TextWidth(text string, scale float32) float32 {
	return float32(len([]rune(text))*glyphW) * scale
}

// appendText appends two triangles per glyph in screen pixels:
// pos(2) uv(2) colour(4).
func appendText(buf []float32, text string, x, y, scale float32, c game.RGB) []float32 {
	aw := float32(atlasCols * glyphW)
	ah := float32(atlasRows * glyphH)
	w := float32(glyphW) * scale
	h := float32(glyphH) * scale
	cr, cg, cb := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255

	for _, ch := range text {
		col, row, ok := atlasCell(ch)
		if !ok {
			x += w
			continue
		}
		u0 := float32(col*glyphW) / aw
		v0 := float32(row*glyphH) / ah
		u1 := float32((col+1)*glyphW) / aw
		v1 := float32((row+1)*glyphH) / ah
		buf = append(buf,
			x, y, u0, v0, cr, cg, cb, 1,
			x+w, y, u1, v0, cr, cg, cb, 1,
			x, y+h, u0, v1, cr, cg, cb, 1,
			x+w, y, u1, v0, cr, cg, cb, 1,
			x+w, y+h, u1, v1, cr, cg, cb, 1,
			x, y+h, u0, v1, cr, cg, cb, 1,
		)
		x += w
	}
	return buf
}
