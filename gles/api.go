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

package gles

// API is the subset of the OpenGL 3.2 core profile used by this module.
//
// Implementations are not safe for concurrent use. All calls must be made on
// the goroutine (and OS thread) that owns the graphics context.
type API interface {
	GetError() uint32
	GetString(name uint32) string

	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	IsShader(shader uint32) bool

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	IsProgram(program uint32) bool
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, v0 float32, v1 float32)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	IsBuffer(buffer uint32) bool
	BindBuffer(target uint32, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)

	GenVertexArray() uint32
	DeleteVertexArray(array uint32)
	IsVertexArray(array uint32) bool
	BindVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	GenTexture() uint32
	DeleteTexture(texture uint32)
	IsTexture(texture uint32) bool
	ActiveTexture(unit uint32)
	BindTexture(target uint32, texture uint32)
	TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8)
	TexParameteri(target uint32, pname uint32, param int32)

	GenFramebuffer() uint32
	DeleteFramebuffer(framebuffer uint32)
	IsFramebuffer(framebuffer uint32) bool
	BindFramebuffer(target uint32, framebuffer uint32)
	FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32)
	CheckFramebufferStatus(target uint32) uint32

	GenRenderbuffer() uint32
	DeleteRenderbuffer(renderbuffer uint32)
	IsRenderbuffer(renderbuffer uint32) bool
	BindRenderbuffer(target uint32, renderbuffer uint32)
	RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32)
	FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, renderbuffer uint32)

	Viewport(x int32, y int32, width int32, height int32)
	ClearColor(r float32, g float32, b float32, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first int32, count int32)
	ReadPixels(x int32, y int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8)
}
