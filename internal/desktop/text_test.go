package desktop

import (
	"testing"

	"spidersmash/internal/game"
)

func TestAtlasLayout(t *testing.T) {
	img := buildAtlas()
	if got, want := img.Bounds().Dx(), atlasCols*glyphW; got != want {
		t.Errorf("atlas width = %d, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), atlasRows*glyphH; got != want {
		t.Errorf("atlas height = %d, want %d", got, want)
	}

	coverage := func(ch rune) int {
		col, row, ok := atlasCell(ch)
		if !ok {
			t.Fatalf("no cell for %q", ch)
		}
		n := 0
		for y := row * glyphH; y < (row+1)*glyphH; y++ {
			for x := col * glyphW; x < (col+1)*glyphW; x++ {
				if img.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if coverage(' ') != 0 {
		t.Error("space has coverage")
	}
	for _, ch := range "AZ09#" {
		if coverage(ch) == 0 {
			t.Errorf("%q has no coverage", ch)
		}
	}
}

func TestAtlasCell(t *testing.T) {
	tests := []struct {
		ch       rune
		col, row int
		ok       bool
	}{
		{' ', 0, 0, true},
		{'0', 0, 1, true},
		{'A', 1, 2, true},
		{'~', 14, 5, true},
		{'\n', 0, 0, false},
		{'♥', 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := atlasCell(tt.ch)
		if col != tt.col || row != tt.row || ok != tt.ok {
			t.Errorf("atlasCell(%q) = %d,%d,%v, want %d,%d,%v", tt.ch, col, row, ok, tt.col, tt.row, tt.ok)
		}
	}
}

func TestAppendText(t *testing.T) {
	buf := appendText(nil, "Hi♥!", 10, 20, 2, game.RGB{R: 255})
	// The heart has no glyph; it advances without quads.
	if got, want := len(buf), 3*6*8; got != want {
		t.Fatalf("floats = %d, want %d", got, want)
	}
	lastX := buf[len(buf)-8*6]
	if want := float32(10 + 3*glyphW*2); lastX != want {
		t.Errorf("third quad starts at x=%v, want %v", lastX, want)
	}
	if buf[4] != 1 || buf[5] != 0 {
		t.Errorf("colour = %v,%v, want red", buf[4], buf[5])
	}
	if got := TextWidth("Hi♥!", 2); got != float32(4*glyphW*2) {
		t.Errorf("TextWidth = %v, want %v", got, 4*glyphW*2)
	}
}
