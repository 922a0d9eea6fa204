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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/shaders"
)

// Blur is a nine tap box blur.
//
// Parameters:
//
//	0: radius in pixels. negative values are treated as zero
type Blur struct {
	effect

	radius float32

	// fragment
	blur int32
}

// NewBlur is the preferred method of initialisation for the Blur type.
func NewBlur(ctx *gles.Context) (*Blur, error) {
	e := &Blur{}
	if err := e.create(ctx, "blur", shaders.BlurShader, "Blur"); err != nil {
		return nil, err
	}
	e.blur = e.resolve("Blur")
	return e, nil
}

// Update implements the Effect interface.
func (e *Blur) Update(p Parameters) {
	e.radius = max(p[0], 0)
}

// offset returns the sampling offset in texture coordinates.
func (e *Blur) offset(width int32, height int32) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{1 / float32(width), 1 / float32(height)}.Mul(e.radius)
}

// Draw implements the Effect interface.
func (e *Blur) Draw(src Source) error {
	o := e.offset(src.Dimensions())
	return e.draw(src, func(g *gles.Guard) {
		g.Do("blur uniform", func(gl gles.API) { gl.Uniform2f(e.blur, o.X(), o.Y()) })
	})
}
