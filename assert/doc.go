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

// Package assert contains checks that are only active when the program is
// built with the "assertions" build tag. Without the tag the functions in the
// package are stubs and cost nothing more than a function call.
//
// The main use is to check that all graphics API calls are made from the
// goroutine that owns the GL context:
//
//	owner := assert.GoroutineID()
//	...
//	assert.SameGoroutine(owner)
//
// SameGoroutine() will panic if the caller is on a different goroutine. The
// goroutine should have been locked to the OS thread with
// runtime.LockOSThread() before the context was created.
package assert
