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

// Package sdlwindow implements the window.Window interface with SDL. The
// OpenGL context requested is version 3.2 core, forward compatible.
package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Window implements the window.Window interface.
type Window struct {
	win *sdl.Window
	ctx sdl.GLContext
}

// compile time check that Window satisfies the window.Window interface.
var _ window.Window = (*Window)(nil)

// New is the preferred method of initialisation for the Window type.
func New(opts window.Options) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	win, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width), int32(opts.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	w := &Window{win: win}

	w.ctx, err = win.GLCreateContext()
	if err != nil {
		_ = w.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	if err := win.GLMakeCurrent(w.ctx); err != nil {
		_ = w.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	interval := 0
	if opts.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
	}

	logger.Logf(logger.Allow, "sdl", "using GL %s", glVersion())

	return w, nil
}

// glVersion describes the context that was actually created.
func glVersion() string {
	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	profile, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_PROFILE_MASK)

	var p string
	switch profile {
	case sdl.GL_CONTEXT_PROFILE_CORE:
		p = " core"
	case sdl.GL_CONTEXT_PROFILE_COMPATIBILITY:
		p = " compatibility"
	case sdl.GL_CONTEXT_PROFILE_ES:
		p = " ES"
	}
	return fmt.Sprintf("%d.%d%s", major, minor, p)
}

// Poll implements the window.Window interface.
func (w *Window) Poll() window.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return window.Quit

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				return window.Resize
			case sdl.WINDOWEVENT_CLOSE:
				return window.Quit
			}

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return window.Quit
			case sdl.K_F12:
				return window.Screenshot
			}
		}
	}
	return window.None
}

// Swap implements the window.Window interface.
func (w *Window) Swap() {
	w.win.GLSwap()
}

// DrawableSize implements the window.Window interface.
func (w *Window) DrawableSize() (int32, int32) {
	return w.win.GLGetDrawableSize()
}

// Destroy implements the window.Window interface.
func (w *Window) Destroy() error {
	if w.ctx != nil {
		sdl.GLDeleteContext(w.ctx)
		w.ctx = nil
	}
	var err error
	if w.win != nil {
		err = w.win.Destroy()
		w.win = nil
	}
	sdl.Quit()
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}
