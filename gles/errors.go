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

package gles

import (
	"fmt"
	"path/filepath"
)

// CompileError is returned when a shader stage fails to compile. The Log
// field is the compiler's info log, unaltered.
type CompileError struct {
	Stage uint32
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed:\n%s", StageName(e.Stage), e.Log)
}

// LinkError is returned when a program fails to link. The Log field is the
// linker's info log, unaltered.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program: link failed:\n%s", e.Log)
}

// ResolutionKind distinguishes between vertex attributes and uniforms.
type ResolutionKind int

// List of valid ResolutionKind values.
const (
	Attribute ResolutionKind = iota
	Uniform

	// the name is not known to the program as either kind
	AttributeOrUniform
)

func (k ResolutionKind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Uniform:
		return "uniform"
	case AttributeOrUniform:
		return "attribute or uniform"
	}
	return "unknown"
}

// ResolutionError is returned when a named attribute or uniform cannot be
// found in a linked program.
type ResolutionError struct {
	Name string
	Kind ResolutionKind
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("program: %s not found: %s", e.Kind, e.Name)
}

// FramebufferError is returned when a framebuffer fails the completeness
// check. Status is the value returned by CheckFramebufferStatus().
type FramebufferError struct {
	Status uint32
	Reason string
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("framebuffer: incomplete: %s (%#04x)", e.Reason, e.Status)
}

// DriverError is returned when GetError() reports an error after a guarded
// call. File and Line are the location of the guarded call.
type DriverError struct {
	Desc string
	File string
	Line int
	Code uint32
}

func (e *DriverError) Error() string {
	if e.Code == NO_ERROR {
		return fmt.Sprintf("%s:%d: %s: null object name", filepath.Base(e.File), e.Line, e.Desc)
	}
	return fmt.Sprintf("%s:%d: %s: %s (%#04x)", filepath.Base(e.File), e.Line, e.Desc, ErrorName(e.Code), e.Code)
}
