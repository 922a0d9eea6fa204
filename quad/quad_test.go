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

package quad_test

import (
	"testing"

	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/fakegl"
	"github.com/jetsetilly/postfx/quad"
	"github.com/jetsetilly/postfx/shader"
	"github.com/jetsetilly/postfx/shaders"
	"github.com/jetsetilly/postfx/test"
)

func TestQuad(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	q, err := quad.New(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, quad.Count, 4)
	test.ExpectEquality(t, f.LiveOf(gles.Buffer), 1)
	test.ExpectEquality(t, f.LiveOf(gles.VertexArray), 1)

	prog, err := shader.NewProgram(ctx, string(shaders.QuadVertexShader), string(shaders.CopyShader), shader.Layout{
		Attributes: []string{"Position"},
	})
	test.DemandSuccess(t, err)

	g := ctx.Guard()
	prog.Use(g)
	q.Draw(g, uint32(prog.MustResolve("Position")))
	test.DemandSuccess(t, g.Err())

	d := f.Draws()
	test.DemandEquality(t, len(d), 1)
	test.ExpectEquality(t, d[0].Mode, uint32(gles.TRIANGLE_STRIP))
	test.ExpectEquality(t, d[0].Count, int32(4))
	test.ExpectEquality(t, len(d[0].Attribs), 1)

	// attribute enabled for the draw and disabled afterwards
	enable, disable := f.AttribCalls()
	test.ExpectEquality(t, enable, 1)
	test.ExpectEquality(t, disable, 1)
	test.ExpectEquality(t, f.EnabledAttribs(), 0)

	test.ExpectSuccess(t, prog.Destroy())
	test.ExpectSuccess(t, q.Destroy())
	test.ExpectSuccess(t, q.Destroy())
	test.ExpectEquality(t, f.Live(), 0)
}

func TestQuadBufferContents(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	q, err := quad.New(ctx)
	test.DemandSuccess(t, err)
	defer q.Destroy()

	var vbo uint32
	for _, e := range f.Events() {
		if e.Kind == gles.Buffer {
			vbo = e.ID
		}
	}
	test.ExpectEquality(t, f.BufferLen(vbo), len(quad.Vertices))
}

func TestQuadAllocationFailure(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)
	f.FailNext("BufferData", gles.OUT_OF_MEMORY)

	_, err := quad.New(ctx)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, f.Live(), 0)
}
