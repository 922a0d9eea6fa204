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

// Package framebuffer provides off-screen render targets. The Target type is
// a framebuffer object with a colour texture attached to it and, optionally,
// a depth renderbuffer.
//
//	tgt, err := framebuffer.NewTarget(ctx, 800, 600, framebuffer.Config{})
//
// A Target is usable as a draw destination as soon as NewTarget() returns.
// The framebuffer is checked for completeness during construction and a
// *gles.FramebufferError is returned if the driver rejects it. In that case no
// GPU objects remain allocated.
//
// The Resize() function must be called whenever the viewport size changes.
// The old objects are released before the new ones are created.
//
// The Flip type is a pair of Targets of identical size used for ping-pong
// processing. At any time one Target is the read Target and the other is the
// write Target:
//
//	flip, err := framebuffer.NewFlip(ctx, 800, 600, framebuffer.Config{})
//
//	flip.Write().Bind(g)
//	// draw something sampling flip.Read().Texture()
//	flip.Swap()
//
// After Reset() the first Target is the read Target. The first Target is also
// the Target that a scene should be rendered into before processing starts.
//
// Functions in this package leave framebuffer zero, texture zero and
// renderbuffer zero bound when they return, with the exception of Bind().
package framebuffer
