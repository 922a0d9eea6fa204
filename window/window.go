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

// Package window defines the interface between the host program and the
// windowing library that provides the OpenGL context. Implementations are in
// the sdlwindow and glfwwindow packages.
//
// All functions of a Window must be called from the goroutine that created
// it. Both implementations lock that goroutine to its OS thread.
package window

// Options for the creation of a new window.
type Options struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Event is returned by a call to Poll().
type Event int

// List of valid Event values.
const (
	None Event = iota
	Quit
	Resize
	Screenshot
)

func (ev Event) String() string {
	switch ev {
	case None:
		return "none"
	case Quit:
		return "quit"
	case Resize:
		return "resize"
	case Screenshot:
		return "screenshot"
	}
	return "unknown event"
}

// Window is implemented by the sdlwindow and glfwwindow packages.
type Window interface {
	// Poll returns the next pending event or None if there are no pending
	// events.
	Poll() Event

	// Swap the front and back buffers.
	Swap()

	// DrawableSize returns the size of the default framebuffer in pixels. This
	// can differ from the size of the window on high DPI displays.
	DrawableSize() (width int32, height int32)

	// Destroy the window and its OpenGL context.
	Destroy() error
}
