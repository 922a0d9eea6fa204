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

package effects

import (
	"errors"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/quad"
	"github.com/jetsetilly/postfx/shader"
	"github.com/jetsetilly/postfx/shaders"
)

// NumParameters is the number of values in Parameters.
const NumParameters = 5

// Parameters are the per frame values passed to Update(). Position meaning is
// defined by each effect.
type Parameters [NumParameters]float32

// Source is the input to an effect.
type Source interface {
	// name of the texture to sample
	Texture() uint32

	// dimensions of the texture in pixels
	Dimensions() (width int32, height int32)
}

// Effect is implemented by all post-processing effects.
type Effect interface {
	// name of the effect as used by New()
	Name() string

	// Update records the parameters for subsequent calls to Draw(). There is
	// no interaction with the GPU.
	Update(Parameters)

	// Draw the effect to the currently bound framebuffer, sampling the
	// Source's texture.
	Draw(Source) error

	// Destroy releases all GPU objects owned by the effect.
	Destroy() error
}

// effect is the common part of every Effect implementation.
type effect struct {
	ctx  *gles.Context
	name string

	prog *shader.Program
	quad *quad.Quad

	// vertex
	position int32

	// fragment
	texture int32
}

// create the shader program and quad. uniforms lists the names of the
// uniforms used by the effect in addition to Texture. the uniforms will be
// resolvable through the resolve() function
func (e *effect) create(ctx *gles.Context, name string, frag []byte, uniforms ...string) error {
	e.ctx = ctx
	e.name = name

	var err error

	e.prog, err = shader.NewProgram(ctx, string(shaders.QuadVertexShader), string(frag), shader.Layout{
		Attributes: []string{"Position"},
		Uniforms:   append([]string{"Texture"}, uniforms...),
	})
	if err != nil {
		return curated.Errorf("effects: %s: %v", name, err)
	}

	e.quad, err = quad.New(ctx)
	if err != nil {
		_ = e.prog.Destroy()
		return curated.Errorf("effects: %s: %v", name, err)
	}

	e.position = e.prog.MustResolve("Position")
	e.texture = e.prog.MustResolve("Texture")

	return nil
}

// resolve returns the location of a uniform named in the call to create().
func (e *effect) resolve(name string) int32 {
	return e.prog.MustResolve(name)
}

// Name implements the Effect interface.
func (e *effect) Name() string {
	return e.name
}

// draw the effect. the uniforms function is called after the program has been
// made current and the source texture bound. it should set the uniforms
// specific to the effect
func (e *effect) draw(src Source, uniforms func(g *gles.Guard)) error {
	tex := src.Texture()

	g := e.ctx.Guard()
	g.Do("clear destination", func(gl gles.API) {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)
	})
	e.prog.Use(g)
	g.Do("activate texture unit", func(gl gles.API) { gl.ActiveTexture(gles.TEXTURE0) })
	g.Do("bind source texture", func(gl gles.API) { gl.BindTexture(gles.TEXTURE_2D, tex) })
	g.Do("texture sampler", func(gl gles.API) { gl.Uniform1i(e.texture, 0) })
	if uniforms != nil {
		uniforms(g)
	}
	e.quad.Draw(g, uint32(e.position))
	g.Do("unbind source texture", func(gl gles.API) { gl.BindTexture(gles.TEXTURE_2D, 0) })
	g.Do("unuse program", func(gl gles.API) { gl.UseProgram(0) })

	if err := g.Err(); err != nil {
		return curated.Errorf("effects: %s: %v", e.name, err)
	}
	return nil
}

// Destroy implements the Effect interface.
func (e *effect) Destroy() error {
	return errors.Join(
		e.prog.Destroy(),
		e.quad.Destroy(),
	)
}
