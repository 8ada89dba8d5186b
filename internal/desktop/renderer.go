package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"spidersmash/internal/game"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type program struct {
	id          uint32
	uCamera     int32
	uZoom       int32
	uResolution int32
}

func newSpriteProgram(frag string) (program, error) {
	id, err := linkProgram(spriteVertSrc, frag)
	if err != nil {
		return program{}, err
	}
	return program{
		id:          id,
		uCamera:     gl.GetUniformLocation(id, gl.Str("uCamera\x00")),
		uZoom:       gl.GetUniformLocation(id, gl.Str("uZoom\x00")),
		uResolution: gl.GetUniformLocation(id, gl.Str("uResolution\x00")),
	}, nil
}

// Renderer draws point sprites in field space and text in screen space.
type Renderer struct {
	sprite program
	glow   program

	spriteVAO uint32
	spriteVBO uint32

	textProg uint32
	textURes int32
	textVAO  uint32
	textVBO  uint32
	fontTex  uint32
	textBuf  []float32
}

func NewRenderer() (*Renderer, error) {
	sprite, err := newSpriteProgram(spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glow, err := newSpriteProgram(glowFragSrc)
	if err != nil {
		gl.DeleteProgram(sprite.id)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	r := &Renderer{sprite: sprite, glow: glow}

	gl.GenVertexArrays(1, &r.spriteVAO)
	gl.GenBuffers(1, &r.spriteVBO)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxSprites*int(stride), nil, gl.STREAM_DRAW)
	attrs := []struct{ size, offset int32 }{
		{2, 0}, // position
		{1, 2}, // size
		{4, 3}, // colour
		{1, 7}, // rotation
		{1, 8}, // shape
	}
	for i, a := range attrs {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), a.size, gl.FLOAT, false, stride, glOffset(int(a.offset)*4))
	}

	if err := r.initText(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("text: %w", err)
	}
	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) initText() error {
	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return err
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uFontTex\x00")), 1)

	atlas := buildAtlas()
	b := atlas.Bounds()
	gl.GenTextures(1, &r.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))

	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.sprite.id, r.glow.id, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the whole framebuffer to the letterbox colour and the
// field area to the ground colour.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	x0, y0 := cam.ToScreen(game.Vec2{}, fbW, fbH)
	x1, y1 := cam.ToScreen(game.Vec2{X: game.FieldWidth, Y: game.FieldHeight}, fbW, fbH)
	g := game.Palette.Ground
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x0), int32(float64(fbH)-y1), int32(x1-x0), int32(y1-y0))
	gl.ClearColor(float32(g.R)/255, float32(g.G)/255, float32(g.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprites draws buf with alpha blending, or additively through the
// glow program.
func (r *Renderer) DrawSprites(buf []float32, cam *Camera, fbW, fbH int, glow bool) {
	count := min(len(buf)/spriteFloats, maxSprites)
	if count == 0 {
		return
	}
	p := r.sprite
	if glow {
		p = r.glow
	}
	gl.UseProgram(p.id)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	x, y := cam.EffectivePos()
	gl.Uniform2f(p.uCamera, float32(x), float32(y))
	gl.Uniform1f(p.uZoom, float32(cam.Zoom))
	gl.Uniform2f(p.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if glow {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawString queues text at screen pixel position (x, y).
func (r *Renderer) DrawString(text string, x, y, scale float32, c game.RGB) {
	r.textBuf = appendText(r.textBuf, text, x, y, scale, c)
}

// FlushText draws and clears the queued text.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
