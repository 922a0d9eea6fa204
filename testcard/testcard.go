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

// Package testcard draws a procedural scene of colour bars and a moving grey
// ramp. It is used by the host program as the input to the post-processing
// pipeline and requires no assets.
package testcard

import (
	"errors"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/quad"
	"github.com/jetsetilly/postfx/shader"
	"github.com/jetsetilly/postfx/shaders"
)

// Testcard is the scene drawn by the host program.
type Testcard struct {
	ctx  *gles.Context
	prog *shader.Program
	quad *quad.Quad

	position  int32
	screenDim int32
	time      int32
}

// New is the preferred method of initialisation for the Testcard type.
func New(ctx *gles.Context) (*Testcard, error) {
	prog, err := shader.NewProgram(ctx, string(shaders.QuadVertexShader), string(shaders.TestcardShader), shader.Layout{
		Attributes: []string{"Position"},
		Uniforms:   []string{"ScreenDim", "Time"},
	})
	if err != nil {
		return nil, curated.Errorf("testcard: %v", err)
	}

	q, err := quad.New(ctx)
	if err != nil {
		_ = prog.Destroy()
		return nil, curated.Errorf("testcard: %v", err)
	}

	return &Testcard{
		ctx:       ctx,
		prog:      prog,
		quad:      q,
		position:  prog.MustResolve("Position"),
		screenDim: prog.MustResolve("ScreenDim"),
		time:      prog.MustResolve("Time"),
	}, nil
}

// Draw the test card to the currently bound framebuffer. The width and height
// should be those of the framebuffer. Seconds animates the grey ramp.
func (tc *Testcard) Draw(width, height int32, seconds float32) error {
	g := tc.ctx.Guard()
	g.Do("clear scene", func(gl gles.API) {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)
	})
	tc.prog.Use(g)
	g.Do("testcard uniforms", func(gl gles.API) {
		gl.Uniform2f(tc.screenDim, float32(width), float32(height))
		gl.Uniform1f(tc.time, seconds)
	})
	tc.quad.Draw(g, uint32(tc.position))
	g.Do("unuse program", func(gl gles.API) { gl.UseProgram(0) })

	if err := g.Err(); err != nil {
		return curated.Errorf("testcard: %v", err)
	}
	return nil
}

// Destroy releases the GPU objects of the test card.
func (tc *Testcard) Destroy() error {
	return errors.Join(
		tc.prog.Destroy(),
		tc.quad.Destroy(),
	)
}
