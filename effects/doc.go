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

// Package effects contains the full-screen post-processing effects.
//
// Every effect implements the Effect interface. An effect owns its shader
// program and a full-screen quad. It is given its input as a Source (usually
// a *framebuffer.Target) and draws to whatever framebuffer is bound when
// Draw() is called. Draw() clears the destination, leaves no vertex attribute
// enabled and unbinds the program, the vertex array and the source texture on
// return.
//
// Per frame parameters are supplied with Update(). The meaning of each of the
// five values in Parameters is decided by the effect. Effects that take no
// parameters ignore them. The ParameterNames() function returns a description of
// the values used by an effect.
//
// Effects are created by name with New(). Names() lists every effect that
// can be created.
package effects
