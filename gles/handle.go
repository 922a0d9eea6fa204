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

import (
	"fmt"
)

// Kind is the type of GPU object owned by a Handle.
type Kind int

// List of valid Kind values.
const (
	Shader Kind = iota
	Program
	Buffer
	VertexArray
	Texture
	Framebuffer
	Renderbuffer
)

func (k Kind) String() string {
	switch k {
	case Shader:
		return "shader"
	case Program:
		return "program"
	case Buffer:
		return "buffer"
	case VertexArray:
		return "vertex array"
	case Texture:
		return "texture"
	case Framebuffer:
		return "framebuffer"
	case Renderbuffer:
		return "renderbuffer"
	}
	return "unknown"
}

func (k Kind) gen(gl API) uint32 {
	switch k {
	case Program:
		return gl.CreateProgram()
	case Buffer:
		return gl.GenBuffer()
	case VertexArray:
		return gl.GenVertexArray()
	case Texture:
		return gl.GenTexture()
	case Framebuffer:
		return gl.GenFramebuffer()
	case Renderbuffer:
		return gl.GenRenderbuffer()
	}
	panic(fmt.Sprintf("gles: cannot generate a %s with Create()", k))
}

func (k Kind) delete(gl API, id uint32) {
	switch k {
	case Shader:
		gl.DeleteShader(id)
	case Program:
		gl.DeleteProgram(id)
	case Buffer:
		gl.DeleteBuffer(id)
	case VertexArray:
		gl.DeleteVertexArray(id)
	case Texture:
		gl.DeleteTexture(id)
	case Framebuffer:
		gl.DeleteFramebuffer(id)
	case Renderbuffer:
		gl.DeleteRenderbuffer(id)
	}
}

func (k Kind) is(gl API, id uint32) bool {
	switch k {
	case Shader:
		return gl.IsShader(id)
	case Program:
		return gl.IsProgram(id)
	case Buffer:
		return gl.IsBuffer(id)
	case VertexArray:
		return gl.IsVertexArray(id)
	case Texture:
		return gl.IsTexture(id)
	case Framebuffer:
		return gl.IsFramebuffer(id)
	case Renderbuffer:
		return gl.IsRenderbuffer(id)
	}
	return false
}

// Handle owns exactly one GPU object. The object is deleted by the first call
// to Release(). A Handle should not be copied.
type Handle struct {
	ctx      *Context
	kind     Kind
	id       uint32
	released bool
}

// Create allocates a new GPU object of the specified kind. Shaders must be
// created with CreateShader().
func (ctx *Context) Create(kind Kind) (*Handle, error) {
	var id uint32
	err := ctx.verify(1, fmt.Sprintf("create %s", kind), func(gl API) {
		id = kind.gen(gl)
	})
	if err != nil {
		return nil, err
	}
	return ctx.handle(kind, id)
}

// CreateShader allocates a new shader object for the specified stage.
func (ctx *Context) CreateShader(stage uint32) (*Handle, error) {
	var id uint32
	err := ctx.verify(1, fmt.Sprintf("create %s shader", StageName(stage)), func(gl API) {
		id = gl.CreateShader(stage)
	})
	if err != nil {
		return nil, err
	}
	return ctx.handle(Shader, id)
}

func (ctx *Context) handle(kind Kind, id uint32) (*Handle, error) {
	// some drivers signal allocation failure with a zero name and no error
	if id == 0 {
		file, line := callSite(2)
		return nil, ctx.poison(&DriverError{
			Desc: fmt.Sprintf("create %s", kind),
			File: file,
			Line: line,
			Code: NO_ERROR,
		})
	}
	return &Handle{
		ctx:  ctx,
		kind: kind,
		id:   id,
	}, nil
}

// ID returns the object name. Panics if the handle has been released.
func (h *Handle) ID() uint32 {
	if h.released {
		panic(fmt.Sprintf("gles: use of released %s handle (%d)", h.kind, h.id))
	}
	return h.id
}

// Kind returns the type of object owned by the handle.
func (h *Handle) Kind() Kind {
	return h.kind
}

// Released returns true if Release() has been called.
func (h *Handle) Released() bool {
	return h.released
}

// Valid asks the driver whether the object name is currently live.
func (h *Handle) Valid() bool {
	return h.kind.is(h.ctx.api, h.id)
}

func (h *Handle) String() string {
	if h.released {
		return fmt.Sprintf("%s %d (released)", h.kind, h.id)
	}
	return fmt.Sprintf("%s %d", h.kind, h.id)
}

// Release deletes the object. It is safe to call Release() more than once and
// on a nil Handle. Only the first call has any effect.
//
// If the Context is poisoned the object is deleted without checking the
// driver error state and the return value is nil. The error that poisoned the
// Context has already been reported.
func (h *Handle) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true

	if h.ctx.err != nil {
		h.kind.delete(h.ctx.api, h.id)
		return nil
	}

	return h.ctx.verify(1, fmt.Sprintf("delete %s", h.kind), func(gl API) {
		h.kind.delete(gl, h.id)
	})
}
