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

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/logger"
)

// Flip is a pair of Targets of identical dimensions used for ping-pong
// processing.
type Flip struct {
	targets [2]*Target
	read    int
}

// NewFlip is the preferred method of initialisation for the Flip type.
func NewFlip(ctx *gles.Context, width int32, height int32, cfg Config) (*Flip, error) {
	fl := &Flip{}

	var err error
	for i := range fl.targets {
		fl.targets[i], err = NewTarget(ctx, width, height, cfg)
		if err != nil {
			_ = fl.Destroy()
			return nil, err
		}
	}

	logger.Logf(logger.Allow, "framebuffer", "flip %dx%d: textures %d and %d",
		width, height, fl.targets[0].Texture(), fl.targets[1].Texture())

	return fl, nil
}

// Scene returns the first Target. This is the Target that is read from after
// Reset().
func (fl *Flip) Scene() *Target {
	return fl.targets[0]
}

// Read returns the Target that is currently the source.
func (fl *Flip) Read() *Target {
	return fl.targets[fl.read]
}

// Write returns the Target that is currently the destination.
func (fl *Flip) Write() *Target {
	return fl.targets[1-fl.read]
}

// Swap exchanges the read and write Targets.
func (fl *Flip) Swap() {
	fl.read = 1 - fl.read
}

// Reset makes the first Target the read Target.
func (fl *Flip) Reset() {
	fl.read = 0
}

// Dimensions returns the width and height of the Targets.
func (fl *Flip) Dimensions() (width int32, height int32) {
	return fl.targets[0].Dimensions()
}

// Resize both Targets. The GPU objects of both Targets are released before any
// new objects are created. The Flip is Reset().
//
// Invalid dimensions are rejected and the Targets are left untouched. If
// allocation fails neither Target has any GPU objects and the Flip should be
// destroyed.
func (fl *Flip) Resize(width int32, height int32) error {
	fl.Reset()

	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}

	w, h := fl.Dimensions()
	if w == width && h == height {
		return nil
	}

	for _, t := range fl.targets {
		if err := t.release(); err != nil {
			return err
		}
	}
	for _, t := range fl.targets {
		if err := t.allocate(width, height); err != nil {
			// targets of differing sizes are never left behind
			for _, t := range fl.targets {
				_ = t.release()
			}
			return err
		}
	}

	logger.Logf(logger.Allow, "framebuffer", "flip resized to %dx%d", width, height)

	return nil
}

// Destroy releases both Targets. It is safe to call Destroy() more than once.
func (fl *Flip) Destroy() error {
	var err error
	for _, t := range fl.targets {
		if t != nil {
			err = errors.Join(err, t.Destroy())
		}
	}
	return err
}
