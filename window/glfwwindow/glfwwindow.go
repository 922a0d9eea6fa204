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

// Package glfwwindow implements the window.Window interface with GLFW. The
// OpenGL context requested is version 3.2 core, forward compatible.
package glfwwindow

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/window"
)

// Window implements the window.Window interface.
type Window struct {
	win *glfw.Window

	// events queued by the GLFW callbacks and returned by Poll()
	events []window.Event
}

// compile time check that Window satisfies the window.Window interface.
var _ window.Window = (*Window)(nil)

// New is the preferred method of initialisation for the Window type.
func New(opts window.Options) (*Window, error) {
	// GLFW must be used from the main thread
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, curated.Errorf("glfw: %v", err)
	}
	logger.Logf(logger.Allow, "glfw", "version %s", glfw.GetVersionString())

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, curated.Errorf("glfw: %v", err)
	}
	win.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win}

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, _ int, _ int) {
		w.events = append(w.events, window.Resize)
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, window.Quit)
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.events = append(w.events, window.Quit)
		case glfw.KeyF12:
			w.events = append(w.events, window.Screenshot)
		}
	})

	return w, nil
}

// Poll implements the window.Window interface.
func (w *Window) Poll() window.Event {
	if len(w.events) == 0 {
		glfw.PollEvents()
	}
	if len(w.events) == 0 {
		return window.None
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev
}

// Swap implements the window.Window interface.
func (w *Window) Swap() {
	w.win.SwapBuffers()
}

// DrawableSize implements the window.Window interface.
func (w *Window) DrawableSize() (int32, int32) {
	width, height := w.win.GetFramebufferSize()
	return int32(width), int32(height)
}

// Destroy implements the window.Window interface.
func (w *Window) Destroy() error {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
	return nil
}
