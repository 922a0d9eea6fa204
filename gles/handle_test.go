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

package gles_test

import (
	"testing"

	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/fakegl"
	"github.com/jetsetilly/postfx/test"
)

func TestHandleRelease(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	kinds := []gles.Kind{gles.Program, gles.Buffer, gles.VertexArray, gles.Texture, gles.Framebuffer, gles.Renderbuffer}

	var handles []*gles.Handle
	for _, k := range kinds {
		h, err := ctx.Create(k)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, h.Kind(), k)
		test.ExpectEquality(t, h.Valid(), true, k)
		handles = append(handles, h)
	}

	s, err := ctx.CreateShader(gles.FRAGMENT_SHADER)
	test.DemandSuccess(t, err)
	handles = append(handles, s)
	test.ExpectEquality(t, f.Live(), len(kinds)+1)

	for _, h := range handles {
		test.ExpectSuccess(t, h.Release())
		test.ExpectSuccess(t, h.Release())
		test.ExpectEquality(t, h.Released(), true)
		test.ExpectEquality(t, h.Valid(), false, h.Kind())
	}

	test.ExpectEquality(t, f.Live(), 0)
	test.ExpectEquality(t, f.DoubleDeletes(), 0)

	// each object was allocated once and freed once
	var allocs, frees int
	for _, e := range f.Events() {
		if e.Alloc {
			allocs++
		} else {
			frees++
		}
	}
	test.ExpectEquality(t, allocs, len(handles))
	test.ExpectEquality(t, frees, len(handles))
}

func TestReleaseNil(t *testing.T) {
	var h *gles.Handle
	test.ExpectSuccess(t, h.Release())
}

func TestReleasedIDPanics(t *testing.T) {
	ctx := gles.NewContext(fakegl.New())
	h, err := ctx.Create(gles.Texture)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, h.ID(), uint32(0))
	test.ExpectSuccess(t, h.Release())

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	_ = h.ID()
	t.Errorf("ID() of released handle did not panic")
}

func TestReleaseOnPoisonedContext(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	h, err := ctx.Create(gles.Buffer)
	test.DemandSuccess(t, err)

	f.FailNext("Clear", gles.OUT_OF_MEMORY)
	test.ExpectFailure(t, ctx.Verify("clear", func(gl gles.API) { gl.Clear(gles.COLOR_BUFFER_BIT) }))

	// the object is still deleted
	test.ExpectSuccess(t, h.Release())
	test.ExpectEquality(t, f.Live(), 0)
}
