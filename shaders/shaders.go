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

// Package shaders contains the GLSL sources used by the effects and testcard
// packages. The sources are embedded in the binary and are not user
// configurable.
//
// All vertex shaders take a single vec2 attribute named Position. All
// fragment shaders that sample an earlier stage name the sampler Texture.
package shaders

import _ "embed"

//go:embed "quad.vert"
var QuadVertexShader []byte

//go:embed "copy.frag"
var CopyShader []byte

//go:embed "grayscale.frag"
var GrayscaleShader []byte

//go:embed "blur.frag"
var BlurShader []byte

//go:embed "colour.frag"
var ColourShader []byte

//go:embed "scanlines.frag"
var ScanlinesShader []byte

//go:embed "testcard.frag"
var TestcardShader []byte
