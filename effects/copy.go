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
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/shaders"
)

// Copy draws the source unchanged. Copy takes no parameters.
type Copy struct {
	effect
}

// NewCopy is the preferred method of initialisation for the Copy type.
func NewCopy(ctx *gles.Context) (*Copy, error) {
	e := &Copy{}
	if err := e.create(ctx, "copy", shaders.CopyShader); err != nil {
		return nil, err
	}
	return e, nil
}

// Update implements the Effect interface.
func (e *Copy) Update(_ Parameters) {
}

// Draw implements the Effect interface.
func (e *Copy) Draw(src Source) error {
	return e.draw(src, nil)
}
