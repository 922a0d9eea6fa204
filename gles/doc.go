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

// Package gles is the boundary between the post-processing packages and the
// graphics driver.
//
// The API interface is the subset of OpenGL 3.2 core used by this module,
// expressed with Go types: strings rather than null terminated byte pointers,
// slices rather than unsafe pointers and returned object names rather than
// out-parameters. The gl32 sub-package implements API with the go-gl
// bindings. The fakegl sub-package implements it as a recording test double.
//
// The GL enumerations used by the API are declared in this package so that
// no package other than gl32 needs to link against cgo.
//
// Context wraps an API and is the call guard. Every call that allocates a GPU
// object or mutates GPU state goes through Context.Verify() or through a
// Guard, which queries the driver error state immediately after the call.
// The first error poisons the Context and every later guarded call is refused
// with that same error. A poisoned Context should be discarded along with
// every object created with it.
//
// Handle owns a single GPU object and releases it exactly once.
//
// The error types CompileError, LinkError, ResolutionError, FramebufferError
// and DriverError are always returned as pointers and can be found in a
// wrapped error chain with errors.As().
package gles
