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

// Scanlines darkens alternate rows of pixels in the manner of a CRT
// television.
//
// Parameters:
//
//	0: elapsed time in seconds
//	1: intensity, clamped to the range 0 to 1
type Scanlines struct {
	effect

	time      float32
	intensity float32

	// fragment
	screenDim    int32
	timeLoc      int32
	intensityLoc int32
}

// NewScanlines is the preferred method of initialisation for the Scanlines
// type.
func NewScanlines(ctx *gles.Context) (*Scanlines, error) {
	e := &Scanlines{}
	if err := e.create(ctx, "scanlines", shaders.ScanlinesShader, "ScreenDim", "Time", "Intensity"); err != nil {
		return nil, err
	}
	e.screenDim = e.resolve("ScreenDim")
	e.timeLoc = e.resolve("Time")
	e.intensityLoc = e.resolve("Intensity")
	return e, nil
}

// Update implements the Effect interface.
func (e *Scanlines) Update(p Parameters) {
	e.time = p[0]
	e.intensity = mgl32.Clamp(p[1], 0, 1)
}

// Draw implements the Effect interface.
func (e *Scanlines) Draw(src Source) error {
	w, h := src.Dimensions()
	return e.draw(src, func(g *gles.Guard) {
		g.Do("scanlines uniforms", func(gl gles.API) {
			gl.Uniform2f(e.screenDim, float32(w), float32(h))
			gl.Uniform1f(e.timeLoc, e.time)
			gl.Uniform1f(e.intensityLoc, e.intensity)
		})
	})
}
