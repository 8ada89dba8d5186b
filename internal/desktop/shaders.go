package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite shapes, drawn procedurally by spriteFragSrc.
const (
	shapeSquare float32 = iota
	shapeDisc
	shapeSpider
	shapePlayer
	shapeHeart
)

// Point sprites: x, y, size, r, g, b, a, rotation, shape.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aFieldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;
layout(location = 4) in float aShape;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;
flat out int vShape;

void main() {
    vec2 screenPos = (aFieldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uZoom + 0.5));
    vColor = aColor;
    vRotation = aRotation;
    vShape = int(aShape + 0.5);
}
` + "\x00"

// Rotation is clockwise from north, so the sprite's local "up" (-y) is
// its heading.
const spriteFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
flat in int vShape;
out vec4 FragColor;

const float TAU = 6.28318530718;

vec2 local(vec2 uv) {
    float c = cos(-vRotation);
    float s = sin(-vRotation);
    return vec2(c * uv.x - s * uv.y, s * uv.x + c * uv.y);
}

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    vec2 p = local(uv);
    float r = length(uv);
    vec3 col = vColor.rgb;
    float a = vColor.a;

    if (vShape == 1) {
        a *= smoothstep(0.5, 0.42, r);
    } else if (vShape == 2) {
        float body = step(length(p * vec2(1.0, 0.8)), 0.2);
        float head = step(length(p - vec2(0.0, -0.24)), 0.1);
        float ang = atan(p.y, p.x) / TAU * 8.0;
        float leg = step(abs(fract(ang + 0.5) - 0.5), 0.07) * step(0.18, r) * step(r, 0.48);
        float m = max(max(body, head), leg);
        if (m < 0.5) discard;
        col = mix(col, col * 0.6, leg * (1.0 - body));
    } else if (vShape == 3) {
        if (r > 0.42) discard;
        float notch = step(p.y, -0.18) * step(abs(p.x), 0.1);
        col = mix(col, vec3(1.0), notch * 0.7);
        col *= 1.0 - smoothstep(0.3, 0.42, r) * 0.4;
    } else if (vShape == 4) {
        vec2 q = vec2(uv.x, -uv.y + 0.06) * 2.6;
        float h = pow(q.x * q.x + q.y * q.y - 1.0, 3.0) - q.x * q.x * q.y * q.y * q.y;
        if (h > 0.0) discard;
    }
    if (a < 0.01) discard;
    FragColor = vec4(col, a);
}
` + "\x00"

// Additive radial falloff for projectile halos. Colour is pre-multiplied
// by brightness.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    FragColor = vec4(vColor.rgb * falloff * falloff, 1.0);
}
` + "\x00"

// Screen-space quads: pos(2) uv(2) colour(4).
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// The atlas is single channel coverage.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float cov = texture(uFontTex, vUV).r;
    if (cov < 0.01) discard;
    FragColor = vec4(vColor.rgb, cov * vColor.a);
}
` + "\x00"

func infoLog(n int32, read func(n int32, buf *uint8)) string {
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n+1)
	read(n, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func compileShader(source string, kind uint32) (uint32, error) {
	id := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok, n int32
	if gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok); ok == gl.TRUE {
		return id, nil
	}
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(n int32, buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
	gl.DeleteShader(id)
	return 0, fmt.Errorf("compile shader: %s", msg)
}

// linkProgram builds a program from vertex and fragment sources. The
// shader objects are released once linked.
func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var ok, n int32
	if gl.GetProgramiv(id, gl.LINK_STATUS, &ok); ok == gl.TRUE {
		return id, nil
	}
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
	msg := infoLog(n, func(n int32, buf *uint8) { gl.GetProgramInfoLog(id, n, nil, buf) })
	gl.DeleteProgram(id)
	return 0, fmt.Errorf("link program: %s", msg)
}
