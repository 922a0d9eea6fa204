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

package framebuffer_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/framebuffer"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/fakegl"
	"github.com/jetsetilly/postfx/test"
)

func TestTarget(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	tgt, err := framebuffer.NewTarget(ctx, 64, 32, framebuffer.Config{})
	test.DemandSuccess(t, err)

	w, h := tgt.Dimensions()
	test.ExpectEquality(t, w, int32(64))
	test.ExpectEquality(t, h, int32(32))

	tw, th, format := f.TextureSize(tgt.Texture())
	test.ExpectEquality(t, tw, int32(64))
	test.ExpectEquality(t, th, int32(32))
	test.ExpectEquality(t, format, int32(gles.RGBA8))

	colour, depth := f.Attachments(tgt.Framebuffer())
	test.ExpectEquality(t, colour, tgt.Texture())
	test.ExpectEquality(t, depth, uint32(0))

	// nothing is left bound
	_, fbo, tex := f.Bindings()
	test.ExpectEquality(t, fbo, uint32(0))
	test.ExpectEquality(t, tex, uint32(0))

	fboID := tgt.Framebuffer()
	texID := tgt.Texture()
	test.ExpectSuccess(t, tgt.Destroy())
	test.ExpectSuccess(t, tgt.Destroy())
	test.ExpectEquality(t, f.IsFramebuffer(fboID), false)
	test.ExpectEquality(t, f.IsTexture(texID), false)
	test.ExpectEquality(t, f.Live(), 0)
	test.ExpectEquality(t, f.DoubleDeletes(), 0)
}

func TestTargetWithDepth(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	tgt, err := framebuffer.NewTarget(ctx, 16, 16, framebuffer.Config{Depth: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.LiveOf(gles.Renderbuffer), 1)

	_, depth := f.Attachments(tgt.Framebuffer())
	test.ExpectInequality(t, depth, uint32(0))

	test.ExpectSuccess(t, tgt.Destroy())
	test.ExpectEquality(t, f.Live(), 0)
}

func TestUnsupportedFormat(t *testing.T) {
	f := fakegl.New()
	f.UnsupportedFormats[gles.RGBA16F] = true
	ctx := gles.NewContext(f)

	_, err := framebuffer.NewTarget(ctx, 16, 16, framebuffer.Config{Format: gles.RGBA16F, Depth: true})

	var fe *gles.FramebufferError
	test.DemandEquality(t, errors.As(err, &fe), true)
	test.ExpectEquality(t, fe.Status, uint32(gles.FRAMEBUFFER_UNSUPPORTED))
	test.ExpectEquality(t, fe.Reason, "GL_FRAMEBUFFER_UNSUPPORTED")
	test.ExpectEquality(t, f.Live(), 0)

	// a completeness failure does not poison the context
	test.ExpectSuccess(t, ctx.Err())
}

func TestDepthFormatAsColour(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	_, err := framebuffer.NewTarget(ctx, 16, 16, framebuffer.Config{Format: gles.DEPTH_COMPONENT24})

	var fe *gles.FramebufferError
	test.DemandEquality(t, errors.As(err, &fe), true)
	test.ExpectEquality(t, fe.Status, uint32(gles.FRAMEBUFFER_INCOMPLETE_ATTACHMENT))
	test.ExpectEquality(t, f.Live(), 0)
}

func TestInvalidDimensions(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	_, err := framebuffer.NewTarget(ctx, 0, 16, framebuffer.Config{})
	test.ExpectEquality(t, curated.Is(err, framebuffer.InvalidDimensions), true)
	_, err = framebuffer.NewTarget(ctx, 16, -1, framebuffer.Config{})
	test.ExpectEquality(t, curated.Is(err, framebuffer.InvalidDimensions), true)
	test.ExpectEquality(t, f.Live(), 0)
}

func TestDriverErrorDuringCreate(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)
	f.FailNext("FramebufferTexture2D", gles.INVALID_OPERATION)

	_, err := framebuffer.NewTarget(ctx, 16, 16, framebuffer.Config{})

	var de *gles.DriverError
	test.DemandEquality(t, errors.As(err, &de), true)
	test.ExpectEquality(t, de.Desc, "attach colour texture")
	test.ExpectEquality(t, f.Live(), 0)
}

func TestTargetResize(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	tgt, err := framebuffer.NewTarget(ctx, 16, 16, framebuffer.Config{})
	test.DemandSuccess(t, err)
	oldTex := tgt.Texture()
	oldFBO := tgt.Framebuffer()

	// same size is a no-op
	f.ClearEvents()
	test.ExpectSuccess(t, tgt.Resize(16, 16))
	test.ExpectEquality(t, len(f.Events()), 0)

	test.ExpectSuccess(t, tgt.Resize(32, 8))
	w, h := tgt.Dimensions()
	test.ExpectEquality(t, w, int32(32))
	test.ExpectEquality(t, h, int32(8))
	test.ExpectEquality(t, f.IsTexture(oldTex), false)
	test.ExpectEquality(t, f.IsFramebuffer(oldFBO), false)

	tw, th, _ := f.TextureSize(tgt.Texture())
	test.ExpectEquality(t, tw, int32(32))
	test.ExpectEquality(t, th, int32(8))

	ev := f.Events()
	test.DemandEquality(t, len(ev), 4)
	test.ExpectEquality(t, ev[0].Alloc, false)
	test.ExpectEquality(t, ev[1].Alloc, false)
	test.ExpectEquality(t, ev[2].Alloc, true)
	test.ExpectEquality(t, ev[3].Alloc, true)

	// invalid dimensions leave the target untouched
	f.ClearEvents()
	err = tgt.Resize(32, 0)
	test.ExpectEquality(t, curated.Is(err, framebuffer.InvalidDimensions), true)
	test.ExpectEquality(t, len(f.Events()), 0)
	test.ExpectEquality(t, f.IsTexture(tgt.Texture()), true)
	w, h = tgt.Dimensions()
	test.ExpectEquality(t, w, int32(32))
	test.ExpectEquality(t, h, int32(8))

	test.ExpectSuccess(t, tgt.Destroy())
	test.ExpectEquality(t, f.Live(), 0)
}

func TestSnapshot(t *testing.T) {
	f := fakegl.New()
	ctx := gles.NewContext(f)

	tgt, err := framebuffer.NewTarget(ctx, 4, 2, framebuffer.Config{})
	test.DemandSuccess(t, err)
	defer tgt.Destroy()

	g := ctx.Guard()
	tgt.Bind(g)
	g.Do("clear", func(gl gles.API) {
		gl.ClearColor(0, 1, 0, 1)
		gl.Clear(gles.COLOR_BUFFER_BIT)
	})
	test.DemandSuccess(t, g.Err())
	test.ExpectEquality(t, f.CurrentViewport(), [4]int32{0, 0, 4, 2})

	img, err := tgt.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Rect.Dx(), 4)
	test.ExpectEquality(t, img.Rect.Dy(), 2)

	c := img.RGBAAt(3, 1)
	test.ExpectEquality(t, c.R, uint8(0))
	test.ExpectEquality(t, c.G, uint8(255))
	test.ExpectEquality(t, c.A, uint8(255))
}
