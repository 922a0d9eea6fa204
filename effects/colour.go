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

// Colour adjusts brightness, contrast and saturation.
//
// Parameters:
//
//	0: brightness offset
//	1: contrast offset
//	2: saturation offset
//
// An offset of zero leaves the image unchanged. An offset of -1 reduces the
// property to nothing.
type Colour struct {
	effect

	adjust mgl32.Vec3

	// fragment
	brightness int32
	contrast   int32
	saturation int32
}

// NewColour is the preferred method of initialisation for the Colour type.
func NewColour(ctx *gles.Context) (*Colour, error) {
	e := &Colour{
		adjust: mgl32.Vec3{1, 1, 1},
	}
	if err := e.create(ctx, "colour", shaders.ColourShader, "Brightness", "Contrast", "Saturation"); err != nil {
		return nil, err
	}
	e.brightness = e.resolve("Brightness")
	e.contrast = e.resolve("Contrast")
	e.saturation = e.resolve("Saturation")
	return e, nil
}

// Update implements the Effect interface.
func (e *Colour) Update(p Parameters) {
	for i := range e.adjust {
		e.adjust[i] = max(1+p[i], 0)
	}
}

// Draw implements the Effect interface.
func (e *Colour) Draw(src Source) error {
	return e.draw(src, func(g *gles.Guard) {
		g.Do("colour uniforms", func(gl gles.API) {
			gl.Uniform1f(e.brightness, e.adjust[0])
			gl.Uniform1f(e.contrast, e.adjust[1])
			gl.Uniform1f(e.saturation, e.adjust[2])
		})
	})
}
