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

package framebuffer

import (
	"errors"
	"image"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/logger"
)

// InvalidDimensions is returned when a Target is created or resized with a
// width or height that is not positive.
const InvalidDimensions = "framebuffer: invalid dimensions: %dx%d"

// Config specifies the storage of a Target.
type Config struct {
	// internal format of the colour texture. zero means gles.RGBA8
	Format int32

	// attach a 24 bit depth renderbuffer
	Depth bool
}

func (cfg Config) format() int32 {
	if cfg.Format == 0 {
		return gles.RGBA8
	}
	return cfg.Format
}

// pixelFormat returns the client pixel format compatible with the internal
// format. the format is only meaningful for texture uploads, which Target
// never does, but drivers validate the combination regardless.
func pixelFormat(internalFormat int32) uint32 {
	switch internalFormat {
	case gles.DEPTH_COMPONENT, gles.DEPTH_COMPONENT24:
		return gles.DEPTH_COMPONENT
	}
	return gles.RGBA
}

// Target is an off-screen render target.
type Target struct {
	ctx *gles.Context
	cfg Config

	fbo   *gles.Handle
	tex   *gles.Handle
	depth *gles.Handle

	width  int32
	height int32
}

// NewTarget is the preferred method of initialisation for the Target type.
func NewTarget(ctx *gles.Context, width int32, height int32, cfg Config) (*Target, error) {
	t := &Target{
		ctx: ctx,
		cfg: cfg,
	}
	if err := t.allocate(width, height); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Target) allocate(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}

	var err error

	t.tex, err = t.ctx.Create(gles.Texture)
	if err != nil {
		return err
	}
	tex := t.tex.ID()
	format := t.cfg.format()

	g := t.ctx.Guard()
	g.Do("bind texture", func(gl gles.API) { gl.BindTexture(gles.TEXTURE_2D, tex) })
	g.Do("texture storage", func(gl gles.API) {
		gl.TexImage2D(gles.TEXTURE_2D, 0, format, width, height, pixelFormat(format), gles.UNSIGNED_BYTE, nil)
	})
	g.Do("texture parameters", func(gl gles.API) {
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, gles.LINEAR)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, gles.LINEAR)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, gles.CLAMP_TO_EDGE)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, gles.CLAMP_TO_EDGE)
	})
	g.Do("unbind texture", func(gl gles.API) { gl.BindTexture(gles.TEXTURE_2D, 0) })
	if err := g.Err(); err != nil {
		_ = t.release()
		return err
	}

	t.fbo, err = t.ctx.Create(gles.Framebuffer)
	if err != nil {
		_ = t.release()
		return err
	}
	fbo := t.fbo.ID()

	g.Do("bind framebuffer", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, fbo) })
	g.Do("attach colour texture", func(gl gles.API) {
		gl.FramebufferTexture2D(gles.FRAMEBUFFER, gles.COLOR_ATTACHMENT0, gles.TEXTURE_2D, tex, 0)
	})
	if err := g.Err(); err != nil {
		_ = t.release()
		return err
	}

	if t.cfg.Depth {
		t.depth, err = t.ctx.Create(gles.Renderbuffer)
		if err != nil {
			_ = t.release()
			return err
		}
		rbo := t.depth.ID()

		g.Do("bind renderbuffer", func(gl gles.API) { gl.BindRenderbuffer(gles.RENDERBUFFER, rbo) })
		g.Do("renderbuffer storage", func(gl gles.API) {
			gl.RenderbufferStorage(gles.RENDERBUFFER, gles.DEPTH_COMPONENT24, width, height)
		})
		g.Do("unbind renderbuffer", func(gl gles.API) { gl.BindRenderbuffer(gles.RENDERBUFFER, 0) })
		g.Do("attach depth renderbuffer", func(gl gles.API) {
			gl.FramebufferRenderbuffer(gles.FRAMEBUFFER, gles.DEPTH_ATTACHMENT, gles.RENDERBUFFER, rbo)
		})
	}

	var status uint32
	g.Do("framebuffer status", func(gl gles.API) { status = gl.CheckFramebufferStatus(gles.FRAMEBUFFER) })
	g.Do("unbind framebuffer", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, 0) })
	if err := g.Err(); err != nil {
		_ = t.release()
		return err
	}

	if status != gles.FRAMEBUFFER_COMPLETE {
		_ = t.release()
		err := &gles.FramebufferError{
			Status: status,
			Reason: gles.FramebufferStatusName(status),
		}
		logger.Log(logger.Allow, "framebuffer", err)
		return err
	}

	t.width = width
	t.height = height

	return nil
}

// release deletes the GPU objects in the reverse order of creation.
func (t *Target) release() error {
	err := errors.Join(
		t.depth.Release(),
		t.fbo.Release(),
		t.tex.Release(),
	)
	t.depth = nil
	t.fbo = nil
	t.tex = nil
	t.width = 0
	t.height = 0
	return err
}

// Texture returns the name of the colour texture. Suitable for sampling by a
// later stage. Ownership of the texture remains with the Target.
func (t *Target) Texture() uint32 {
	return t.tex.ID()
}

// Framebuffer returns the name of the framebuffer object.
func (t *Target) Framebuffer() uint32 {
	return t.fbo.ID()
}

// Dimensions returns the width and height of the Target.
func (t *Target) Dimensions() (width int32, height int32) {
	return t.width, t.height
}

// Bind makes the Target the current draw destination and sets the viewport to
// cover it.
func (t *Target) Bind(g *gles.Guard) {
	fbo := t.fbo.ID()
	g.Do("bind target", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, fbo) })
	g.Do("target viewport", func(gl gles.API) { gl.Viewport(0, 0, t.width, t.height) })
}

// Resize releases the GPU objects and creates new ones with the new
// dimensions. Resizing to the current dimensions does nothing.
//
// The contents of the Target are lost. Invalid dimensions are rejected before
// anything is released. If allocation of the new objects fails the Target is
// left without any GPU objects and should be destroyed.
func (t *Target) Resize(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	if width == t.width && height == t.height && t.tex != nil {
		return nil
	}
	if err := t.release(); err != nil {
		return err
	}
	return t.allocate(width, height)
}

// Snapshot copies the colour texture to an image. The image has the
// conventional top-to-bottom row order.
func (t *Target) Snapshot() (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(t.width), int(t.height)))
	fbo := t.fbo.ID()

	g := t.ctx.Guard()
	g.Do("bind read framebuffer", func(gl gles.API) { gl.BindFramebuffer(gles.READ_FRAMEBUFFER, fbo) })
	g.Do("read pixels", func(gl gles.API) {
		gl.ReadPixels(0, 0, t.width, t.height, gles.RGBA, gles.UNSIGNED_BYTE, img.Pix)
	})
	g.Do("unbind read framebuffer", func(gl gles.API) { gl.BindFramebuffer(gles.READ_FRAMEBUFFER, 0) })
	if err := g.Err(); err != nil {
		return nil, err
	}

	flipRows(img)
	return img, nil
}

// flipRows reverses the row order of an image. OpenGL images are stored
// bottom row first.
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// Destroy releases all GPU objects. It is safe to call Destroy() more than
// once.
func (t *Target) Destroy() error {
	return t.release()
}
