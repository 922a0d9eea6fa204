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

// Package quad is the full-screen quad used by every post-processing effect.
//
// The quad is four two component vertices covering normalised device
// coordinates, drawn as a triangle strip. Texture coordinates are not stored.
// Vertex shaders derive them from the position as (Position + 1) / 2.
package quad

import (
	"errors"

	"github.com/jetsetilly/postfx/gles"
)

// Vertices of the quad in triangle strip order.
var Vertices = [...]float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// number of components per vertex.
const components = 2

// Count is the number of vertices in the quad.
const Count = len(Vertices) / components

// Quad owns a vertex buffer containing the quad vertices and the vertex array
// used to draw it.
type Quad struct {
	vao *gles.Handle
	vbo *gles.Handle
}

// New allocates and fills the vertex buffer.
func New(ctx *gles.Context) (*Quad, error) {
	q := &Quad{}

	var err error

	q.vao, err = ctx.Create(gles.VertexArray)
	if err != nil {
		return nil, err
	}

	q.vbo, err = ctx.Create(gles.Buffer)
	if err != nil {
		_ = q.Destroy()
		return nil, err
	}

	vao := q.vao.ID()
	vbo := q.vbo.ID()

	g := ctx.Guard()
	g.Do("bind quad vertex array", func(gl gles.API) { gl.BindVertexArray(vao) })
	g.Do("bind quad buffer", func(gl gles.API) { gl.BindBuffer(gles.ARRAY_BUFFER, vbo) })
	g.Do("quad buffer data", func(gl gles.API) { gl.BufferData(gles.ARRAY_BUFFER, Vertices[:], gles.STATIC_DRAW) })
	g.Do("unbind quad buffer", func(gl gles.API) { gl.BindBuffer(gles.ARRAY_BUFFER, 0) })
	g.Do("unbind quad vertex array", func(gl gles.API) { gl.BindVertexArray(0) })
	if err := g.Err(); err != nil {
		_ = q.Destroy()
		return nil, err
	}

	return q, nil
}

// Draw the quad with the vertices fed to the attribute at the specified
// location. The attribute is enabled for the duration of the draw call only.
// The vertex array and buffer are unbound on return.
func (q *Quad) Draw(g *gles.Guard, position uint32) {
	vao := q.vao.ID()
	vbo := q.vbo.ID()

	g.Do("bind quad vertex array", func(gl gles.API) { gl.BindVertexArray(vao) })
	g.Do("bind quad buffer", func(gl gles.API) { gl.BindBuffer(gles.ARRAY_BUFFER, vbo) })
	g.Do("enable position attribute", func(gl gles.API) { gl.EnableVertexAttribArray(position) })
	g.Do("position attribute pointer", func(gl gles.API) {
		gl.VertexAttribPointer(position, components, gles.FLOAT, false, 0, 0)
	})
	g.Do("draw quad", func(gl gles.API) { gl.DrawArrays(gles.TRIANGLE_STRIP, 0, int32(Count)) })
	g.Do("disable position attribute", func(gl gles.API) { gl.DisableVertexAttribArray(position) })
	g.Do("unbind quad buffer", func(gl gles.API) { gl.BindBuffer(gles.ARRAY_BUFFER, 0) })
	g.Do("unbind quad vertex array", func(gl gles.API) { gl.BindVertexArray(0) })
}

// Destroy releases the buffer and the vertex array.
func (q *Quad) Destroy() error {
	return errors.Join(
		q.vbo.Release(),
		q.vao.Release(),
	)
}
