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

// BT709 are the ITU-R BT.709 luma coefficients for red, green and blue.
var BT709 = mgl32.Vec3{0.2126, 0.7152, 0.0722}

// Luminance of a linear RGB colour.
func Luminance(rgb mgl32.Vec3) float32 {
	return rgb.Dot(BT709)
}

// Gray returns the output of the grayscale effect for a single RGBA colour.
// The result is the same as the grayscale fragment shader.
func Gray(rgba mgl32.Vec4) mgl32.Vec4 {
	l := Luminance(rgba.Vec3())
	return mgl32.Vec4{l, l, l, rgba.W()}
}

// Grayscale replaces every pixel with its luminance. Alpha is unchanged.
// Grayscale takes no parameters.
type Grayscale struct {
	effect
}

// NewGrayscale is the preferred method of initialisation for the Grayscale
// type.
func NewGrayscale(ctx *gles.Context) (*Grayscale, error) {
	e := &Grayscale{}
	if err := e.create(ctx, "grayscale", shaders.GrayscaleShader); err != nil {
		return nil, err
	}
	return e, nil
}

// Update implements the Effect interface.
func (e *Grayscale) Update(_ Parameters) {
}

// Draw implements the Effect interface.
func (e *Grayscale) Draw(src Source) error {
	return e.draw(src, nil)
}
