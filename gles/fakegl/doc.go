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

// Package fakegl is a recording implementation of gles.API for use in tests.
//
// No drawing takes place. Instead the fake keeps enough state to reproduce
// the error behaviour of a real driver for the calls used by this module and
// records every allocation, deletion and draw call for later inspection.
//
// Object names are unique across all object kinds. A name is never reused.
//
// Shader compilation is a rough syntax check: a missing #version directive or
// unbalanced brackets cause the compile to fail with a non-empty info log.
// Vertex attributes and uniforms are discovered in the source text with
// regular expressions and are given locations in order of declaration.
package fakegl
