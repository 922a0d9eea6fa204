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

package shader

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/logger"
)

// DuplicateName is returned by NewProgram() if a name appears more than once
// in a Layout.
const DuplicateName = "shader: name appears more than once in layout: %s"

// Compile a single shader stage. On failure the shader object is released and
// a *gles.CompileError containing the compiler's info log is returned.
func Compile(ctx *gles.Context, stage uint32, source string) (*gles.Handle, error) {
	h, err := ctx.CreateShader(stage)
	if err != nil {
		return nil, err
	}
	id := h.ID()

	var status int32
	var log string

	g := ctx.Guard()
	g.Do("shader source", func(gl gles.API) { gl.ShaderSource(id, source) })
	g.Do("compile shader", func(gl gles.API) { gl.CompileShader(id) })
	g.Do("compile status", func(gl gles.API) {
		status = gl.GetShaderiv(id, gles.COMPILE_STATUS)
		if status == 0 {
			log = gl.GetShaderInfoLog(id)
		}
	})
	if err := g.Err(); err != nil {
		_ = h.Release()
		return nil, err
	}

	if status == 0 {
		_ = h.Release()
		if log == "" {
			log = "(driver provided no info log)"
		}
		err := &gles.CompileError{Stage: stage, Log: log}
		logger.Log(logger.Allow, "shader", err)
		return nil, err
	}

	return h, nil
}

// Link a vertex and fragment shader into a program. The shaders are detached
// once the program has linked successfully but ownership of the shader
// objects remains with the caller. On failure the program object is released
// and a *gles.LinkError containing the linker's info log is returned.
func Link(ctx *gles.Context, vert *gles.Handle, frag *gles.Handle) (*gles.Handle, error) {
	h, err := ctx.Create(gles.Program)
	if err != nil {
		return nil, err
	}
	id := h.ID()
	vid := vert.ID()
	fid := frag.ID()

	var status int32
	var log string

	g := ctx.Guard()
	g.Do("attach vertex shader", func(gl gles.API) { gl.AttachShader(id, vid) })
	g.Do("attach fragment shader", func(gl gles.API) { gl.AttachShader(id, fid) })
	g.Do("link program", func(gl gles.API) { gl.LinkProgram(id) })
	g.Do("link status", func(gl gles.API) {
		status = gl.GetProgramiv(id, gles.LINK_STATUS)
		if status == 0 {
			log = gl.GetProgramInfoLog(id)
		}
	})
	if status != 0 {
		g.Do("detach vertex shader", func(gl gles.API) { gl.DetachShader(id, vid) })
		g.Do("detach fragment shader", func(gl gles.API) { gl.DetachShader(id, fid) })
	}
	if err := g.Err(); err != nil {
		_ = h.Release()
		return nil, err
	}

	if status == 0 {
		_ = h.Release()
		if log == "" {
			log = "(driver provided no info log)"
		}
		err := &gles.LinkError{Log: log}
		logger.Log(logger.Allow, "shader", err)
		return nil, err
	}

	return h, nil
}

// Layout lists the names of the vertex attributes and uniforms that a program
// is required to have. A name must not appear in both lists.
type Layout struct {
	Attributes []string
	Uniforms   []string
}

// Program is a linked shader program along with the shader objects it was
// built from and the resolved locations of its attributes and uniforms.
type Program struct {
	vert *gles.Handle
	frag *gles.Handle
	prog *gles.Handle

	locations map[string]int32
}

// NewProgram compiles the vertex and fragment sources, links them and
// resolves every name in the layout, in that order. Any failure releases
// everything allocated up to that point.
func NewProgram(ctx *gles.Context, vertSrc string, fragSrc string, layout Layout) (*Program, error) {
	vert, err := Compile(ctx, gles.VERTEX_SHADER, vertSrc)
	if err != nil {
		return nil, err
	}

	frag, err := Compile(ctx, gles.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		_ = vert.Release()
		return nil, err
	}

	prog, err := Link(ctx, vert, frag)
	if err != nil {
		_ = frag.Release()
		_ = vert.Release()
		return nil, err
	}

	p := &Program{
		vert:      vert,
		frag:      frag,
		prog:      prog,
		locations: make(map[string]int32, len(layout.Attributes)+len(layout.Uniforms)),
	}

	if err := p.resolve(ctx, layout); err != nil {
		_ = p.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "shader", "program %d: %d attributes, %d uniforms",
		prog.ID(), len(layout.Attributes), len(layout.Uniforms))

	return p, nil
}

func (p *Program) resolve(ctx *gles.Context, layout Layout) error {
	id := p.prog.ID()

	lookup := func(name string, kind gles.ResolutionKind) error {
		if _, ok := p.locations[name]; ok {
			return curated.Errorf(DuplicateName, name)
		}

		var loc int32
		err := ctx.Verify(fmt.Sprintf("%s location: %s", kind, name), func(gl gles.API) {
			switch kind {
			case gles.Attribute:
				loc = gl.GetAttribLocation(id, name)
			case gles.Uniform:
				loc = gl.GetUniformLocation(id, name)
			}
		})
		if err != nil {
			return err
		}
		if loc < 0 {
			err := &gles.ResolutionError{Name: name, Kind: kind}
			logger.Log(logger.Allow, "shader", err)
			return err
		}
		p.locations[name] = loc
		return nil
	}

	for _, n := range layout.Attributes {
		if err := lookup(n, gles.Attribute); err != nil {
			return err
		}
	}
	for _, n := range layout.Uniforms {
		if err := lookup(n, gles.Uniform); err != nil {
			return err
		}
	}

	return nil
}

// Resolve returns the location of the named attribute or uniform. Only names
// in the Layout given to NewProgram() can be resolved.
func (p *Program) Resolve(name string) (int32, error) {
	if loc, ok := p.locations[name]; ok {
		return loc, nil
	}
	return -1, &gles.ResolutionError{Name: name, Kind: gles.AttributeOrUniform}
}

// MustResolve is like Resolve but panics if the name is not known. For use
// with names that were required by the program's Layout.
func (p *Program) MustResolve(name string) int32 {
	loc, err := p.Resolve(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Use makes the program the current program.
func (p *Program) Use(g *gles.Guard) {
	id := p.prog.ID()
	g.Do("use program", func(gl gles.API) { gl.UseProgram(id) })
}

// Handle returns the program object.
func (p *Program) Handle() *gles.Handle {
	return p.prog
}

// Destroy releases the shader objects and then the program object. It is safe
// to call Destroy() more than once.
func (p *Program) Destroy() error {
	return errors.Join(
		p.vert.Release(),
		p.frag.Release(),
		p.prog.Release(),
	)
}
