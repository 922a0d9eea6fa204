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

// Package pipeline runs a sequence of post-processing effects over a rendered
// scene.
//
// The Runner owns two render targets of equal size, A and B, and the list of
// effects. A frame is driven by the host program in three steps:
//
//	runner.BeginScene()   // binds A
//	// render the scene
//	runner.RunFrame()     // effects A->B->A... with the last drawing to the screen
//	// swap buffers
//
// Each effect samples the target written by the previous effect (or the
// scene) and writes to the other target. The final effect writes to the
// default framebuffer. When the list of effects is empty the scene is copied
// to the screen with the copy effect.
//
// Resize() must be called when the window size changes and before the next
// call to BeginScene().
package pipeline
