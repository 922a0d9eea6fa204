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

// Package shader compiles and links GLSL programs.
//
// NewProgram() is the usual entry point. It compiles the vertex and fragment
// stages, links them and resolves the locations of every named attribute and
// uniform in the Layout. Construction either succeeds completely or fails
// with every allocated object released. The name to location map is fixed
// after construction.
//
// Failures are returned as *gles.CompileError, *gles.LinkError,
// *gles.ResolutionError or *gles.DriverError. A missing attribute or uniform
// is always treated as an error because it indicates that the Go code and
// the GLSL source disagree.
package shader
