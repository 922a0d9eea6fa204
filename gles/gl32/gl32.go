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

// Package gl32 implements the gles.API interface with the go-gl OpenGL 3.2
// core profile bindings.
//
// A current OpenGL context must exist before New() is called. The context is
// usually created by the host window.
package gl32

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
)

// GL is the real implementation of gles.API.
type GL struct{}

// compile time check that GL satisfies the API interface.
var _ gles.API = (*GL)(nil)

// New initialises the function pointers for the current OpenGL context.
func New() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf("gl32: %v", err)
	}
	return &GL{}, nil
}

func ptr[T uint8 | float32](data []T) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

func infoLog(length int32, get func(length int32, written *int32, log *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]uint8, length+1)
	var written int32
	get(length, &written, &buf[0])
	return strings.TrimRight(string(buf[:written]), "\x00")
}

func (*GL) GetError() uint32 {
	return gl.GetError()
}

func (*GL) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (*GL) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (*GL) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csource, nil)
}

func (*GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*GL) GetShaderiv(shader uint32, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (g *GL) GetShaderInfoLog(shader uint32) string {
	return infoLog(g.GetShaderiv(shader, gl.INFO_LOG_LENGTH), func(length int32, written *int32, log *uint8) {
		gl.GetShaderInfoLog(shader, length, written, log)
	})
}

func (*GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*GL) IsShader(shader uint32) bool {
	return gl.IsShader(shader)
}

func (*GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*GL) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*GL) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

func (*GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*GL) GetProgramiv(program uint32, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (g *GL) GetProgramInfoLog(program uint32) string {
	return infoLog(g.GetProgramiv(program, gl.INFO_LOG_LENGTH), func(length int32, written *int32, log *uint8) {
		gl.GetProgramInfoLog(program, length, written, log)
	})
}

func (*GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*GL) IsProgram(program uint32) bool {
	return gl.IsProgram(program)
}

func (*GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*GL) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, cstr(name))
}

func (*GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (*GL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (*GL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (*GL) Uniform2f(location int32, v0 float32, v1 float32) {
	gl.Uniform2f(location, v0, v1)
}

func (*GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*GL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (*GL) IsBuffer(buffer uint32) bool {
	return gl.IsBuffer(buffer)
}

func (*GL) BindBuffer(target uint32, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (*GL) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, ptr(data), usage)
}

func (*GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*GL) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (*GL) IsVertexArray(array uint32) bool {
	return gl.IsVertexArray(array)
}

func (*GL) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (*GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*GL) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (*GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (*GL) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*GL) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (*GL) IsTexture(texture uint32) bool {
	return gl.IsTexture(texture)
}

func (*GL) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (*GL) BindTexture(target uint32, texture uint32) {
	gl.BindTexture(target, texture)
}

func (*GL) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, ptr(pixels))
}

func (*GL) TexParameteri(target uint32, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*GL) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (*GL) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

func (*GL) IsFramebuffer(framebuffer uint32) bool {
	return gl.IsFramebuffer(framebuffer)
}

func (*GL) BindFramebuffer(target uint32, framebuffer uint32) {
	gl.BindFramebuffer(target, framebuffer)
}

func (*GL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (*GL) CheckFramebufferStatus(target uint32) uint32 {
	return gl.CheckFramebufferStatus(target)
}

func (*GL) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (*GL) DeleteRenderbuffer(renderbuffer uint32) {
	gl.DeleteRenderbuffers(1, &renderbuffer)
}

func (*GL) IsRenderbuffer(renderbuffer uint32) bool {
	return gl.IsRenderbuffer(renderbuffer)
}

func (*GL) BindRenderbuffer(target uint32, renderbuffer uint32) {
	gl.BindRenderbuffer(target, renderbuffer)
}

func (*GL) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
	gl.RenderbufferStorage(target, internalFormat, width, height)
}

func (*GL) FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer)
}

func (*GL) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*GL) ClearColor(r float32, g float32, b float32, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*GL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*GL) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (*GL) ReadPixels(x int32, y int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	gl.ReadPixels(x, y, width, height, format, xtype, ptr(pixels))
}
