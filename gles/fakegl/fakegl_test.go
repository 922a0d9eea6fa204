// This file is part of postfx.
//
// postfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// postfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with postfx.  If not, see <https://www.gnu.org/licenses/>.

package fakegl_test

import (
	"testing"

	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/fakegl"
	"github.com/jetsetilly/postfx/test"
)

const vert = `#version 150
in vec2 Position;
uniform float Time;
void main() {
	gl_Position = vec4(Position, 0.0, 1.0);
}
`

const frag = `#version 150
uniform sampler2D Texture;
out vec4 Out_Color;
void main() {
	Out_Color = texture(Texture, vec2(0.0));
}
`

func compile(f *fakegl.GL, stage uint32, source string) uint32 {
	id := f.CreateShader(stage)
	f.ShaderSource(id, source)
	f.CompileShader(id)
	return id
}

func TestErrorFlag(t *testing.T) {
	f := fakegl.New()
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))

	// first error is kept until queried
	f.BindTexture(0x1234, 0)
	f.UseProgram(999)
	test.ExpectEquality(t, f.GetError(), uint32(gles.INVALID_ENUM))
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))

	f.FailNext("Clear", gles.OUT_OF_MEMORY)
	f.Clear(gles.COLOR_BUFFER_BIT)
	test.ExpectEquality(t, f.GetError(), uint32(gles.OUT_OF_MEMORY))
	f.Clear(gles.COLOR_BUFFER_BIT)
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))
}

func TestCompileAndLink(t *testing.T) {
	f := fakegl.New()

	v := compile(f, gles.VERTEX_SHADER, vert)
	test.ExpectEquality(t, f.GetShaderiv(v, gles.COMPILE_STATUS), int32(1))
	test.ExpectEquality(t, f.GetShaderInfoLog(v), "")

	bad := compile(f, gles.FRAGMENT_SHADER, "void main() {")
	test.ExpectEquality(t, f.GetShaderiv(bad, gles.COMPILE_STATUS), int32(0))
	test.ExpectInequality(t, f.GetShaderInfoLog(bad), "")

	fr := compile(f, gles.FRAGMENT_SHADER, frag)
	p := f.CreateProgram()
	f.AttachShader(p, v)
	f.AttachShader(p, fr)
	f.LinkProgram(p)
	test.ExpectEquality(t, f.GetProgramiv(p, gles.LINK_STATUS), int32(1))
	test.ExpectEquality(t, f.GetAttribLocation(p, "Position"), int32(0))
	test.ExpectEquality(t, f.GetUniformLocation(p, "Time"), int32(0))
	test.ExpectEquality(t, f.GetUniformLocation(p, "Texture"), int32(1))
	test.ExpectEquality(t, f.GetUniformLocation(p, "Missing"), int32(-1))
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))

	f.UseProgram(p)
	f.Uniform1f(1, 0.5)
	v0, ok := f.Uniform(p, "Texture")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v0[0], float32(0.5))

	q := f.CreateProgram()
	f.AttachShader(q, v)
	f.LinkProgram(q)
	test.ExpectEquality(t, f.GetProgramiv(q, gles.LINK_STATUS), int32(0))
	test.ExpectInequality(t, f.GetProgramInfoLog(q), "")
}

func TestAllocationHistory(t *testing.T) {
	f := fakegl.New()
	a := f.GenTexture()
	b := f.GenBuffer()
	test.ExpectEquality(t, f.Live(), 2)
	test.ExpectEquality(t, f.LiveOf(gles.Texture), 1)

	f.DeleteTexture(a)
	f.DeleteTexture(a)
	test.ExpectEquality(t, f.IsTexture(a), false)
	test.ExpectEquality(t, f.IsBuffer(b), true)
	test.ExpectEquality(t, f.DoubleDeletes(), 1)

	ev := f.Events()
	test.ExpectEquality(t, len(ev), 3)
	test.ExpectEquality(t, ev[2], fakegl.Event{Alloc: false, Kind: gles.Texture, ID: a})
}

func TestFramebufferStatus(t *testing.T) {
	f := fakegl.New()
	fbo := f.GenFramebuffer()
	f.BindFramebuffer(gles.FRAMEBUFFER, fbo)
	test.ExpectEquality(t, f.CheckFramebufferStatus(gles.FRAMEBUFFER), uint32(gles.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT))

	tex := f.GenTexture()
	f.BindTexture(gles.TEXTURE_2D, tex)
	f.TexImage2D(gles.TEXTURE_2D, 0, gles.RGBA8, 4, 4, gles.RGBA, gles.UNSIGNED_BYTE, nil)
	f.FramebufferTexture2D(gles.FRAMEBUFFER, gles.COLOR_ATTACHMENT0, gles.TEXTURE_2D, tex, 0)
	test.ExpectEquality(t, f.CheckFramebufferStatus(gles.FRAMEBUFFER), uint32(gles.FRAMEBUFFER_COMPLETE))

	f.UnsupportedFormats[gles.RGBA8] = true
	test.ExpectEquality(t, f.CheckFramebufferStatus(gles.FRAMEBUFFER), uint32(gles.FRAMEBUFFER_UNSUPPORTED))

	f.TexImage2D(gles.TEXTURE_2D, 0, gles.DEPTH_COMPONENT24, 4, 4, gles.DEPTH_COMPONENT, gles.UNSIGNED_BYTE, nil)
	test.ExpectEquality(t, f.CheckFramebufferStatus(gles.FRAMEBUFFER), uint32(gles.FRAMEBUFFER_INCOMPLETE_ATTACHMENT))
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))
}

func TestDrawRecording(t *testing.T) {
	f := fakegl.New()

	// drawing without a program is an error
	f.DrawArrays(gles.TRIANGLE_STRIP, 0, 4)
	test.ExpectEquality(t, f.GetError(), uint32(gles.INVALID_OPERATION))

	p := f.CreateProgram()
	f.AttachShader(p, compile(f, gles.VERTEX_SHADER, vert))
	f.AttachShader(p, compile(f, gles.FRAGMENT_SHADER, frag))
	f.LinkProgram(p)
	f.UseProgram(p)

	vao := f.GenVertexArray()
	f.BindVertexArray(vao)
	f.EnableVertexAttribArray(0)
	f.Viewport(0, 0, 10, 20)
	f.DrawArrays(gles.TRIANGLE_STRIP, 0, 4)
	f.DisableVertexAttribArray(0)
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))

	d := f.Draws()
	test.ExpectEquality(t, len(d), 1)
	test.ExpectEquality(t, d[0].Program, p)
	test.ExpectEquality(t, d[0].Framebuffer, uint32(0))
	test.ExpectEquality(t, d[0].Viewport, [4]int32{0, 0, 10, 20})
	test.ExpectEquality(t, len(d[0].Attribs), 1)
	test.ExpectEquality(t, f.EnabledAttribs(), 0)

	enable, disable := f.AttribCalls()
	test.ExpectEquality(t, enable, disable)
}

func TestReadPixels(t *testing.T) {
	f := fakegl.New()
	f.ClearColor(1, 0, 0, 1)
	f.Clear(gles.COLOR_BUFFER_BIT)

	pix := make([]uint8, 2*2*4)
	f.ReadPixels(0, 0, 2, 2, gles.RGBA, gles.UNSIGNED_BYTE, pix)
	test.ExpectEquality(t, f.GetError(), uint32(gles.NO_ERROR))
	test.ExpectEquality(t, pix[12], uint8(255))
	test.ExpectEquality(t, pix[13], uint8(0))
	test.ExpectEquality(t, pix[15], uint8(255))
}
