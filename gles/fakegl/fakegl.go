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

package fakegl

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jetsetilly/postfx/gles"
)

// Event records the allocation or deletion of a GPU object.
type Event struct {
	Alloc bool
	Kind  gles.Kind
	ID    uint32
}

func (e Event) String() string {
	if e.Alloc {
		return fmt.Sprintf("alloc %s %d", e.Kind, e.ID)
	}
	return fmt.Sprintf("free %s %d", e.Kind, e.ID)
}

// Draw records the state of the fake at the time of a DrawArrays() call.
type Draw struct {
	Program     uint32
	Framebuffer uint32
	Texture     uint32
	Viewport    [4]int32
	Attribs     []uint32
	Mode        uint32
	Count       int32
}

type shader struct {
	stage    uint32
	source   string
	compiled bool
	log      string
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32][]float32
}

type texture struct {
	width          int32
	height         int32
	internalFormat int32
	fill           [4]uint8
}

type framebuffer struct {
	colour uint32
	depth  uint32
}

type renderbuffer struct {
	width          int32
	height         int32
	internalFormat uint32
}

// GL is the recording test double. The zero value is not usable. Use New().
type GL struct {
	nextID uint32

	live      map[uint32]gles.Kind
	freed     map[uint32]bool
	events    []Event
	doubleDel int

	errFlag  uint32
	failNext map[string]uint32

	shaders       map[uint32]*shader
	programs      map[uint32]*program
	textures      map[uint32]*texture
	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]*renderbuffer
	buffers       map[uint32][]float32
	enabled       map[uint32]map[uint32]bool

	currentProgram  uint32
	drawFramebuffer uint32
	readFramebuffer uint32
	vertexArray     uint32
	arrayBuffer     uint32
	renderbufferID  uint32
	activeUnit      uint32
	boundTextures   map[uint32]uint32
	viewport        [4]int32
	clearColour     [4]float32
	screen          [4]uint8

	draws       []Draw
	enableCalls int
	disableCall int

	// UnsupportedFormats lists internal texture formats that the fake will
	// not accept as a colour attachment. CheckFramebufferStatus() returns
	// GL_FRAMEBUFFER_UNSUPPORTED for these.
	UnsupportedFormats map[int32]bool

	// CompileFailure causes any shader whose source contains the string to
	// fail compilation. Ignored if empty.
	CompileFailure string

	// LinkFailure causes every LinkProgram() to fail.
	LinkFailure bool
}

// New is the preferred method of initialisation for the GL type.
func New() *GL {
	return &GL{
		live:               make(map[uint32]gles.Kind),
		freed:              make(map[uint32]bool),
		failNext:           make(map[string]uint32),
		shaders:            make(map[uint32]*shader),
		programs:           make(map[uint32]*program),
		textures:           make(map[uint32]*texture),
		framebuffers:       make(map[uint32]*framebuffer),
		renderbuffers:      make(map[uint32]*renderbuffer),
		buffers:            make(map[uint32][]float32),
		enabled:            make(map[uint32]map[uint32]bool),
		boundTextures:      make(map[uint32]uint32),
		UnsupportedFormats: make(map[int32]bool),
	}
}

// compile time check that GL satisfies the API interface.
var _ gles.API = (*GL)(nil)

// FailNext causes the next call to the named API function to do nothing
// other than raise the error code.
func (f *GL) FailNext(function string, code uint32) {
	f.failNext[function] = code
}

// injected returns true if the named function has been told to fail.
func (f *GL) injected(function string) bool {
	if code, ok := f.failNext[function]; ok {
		delete(f.failNext, function)
		f.raise(code)
		return true
	}
	return false
}

// raise sets the error flag if it is not already set.
func (f *GL) raise(code uint32) {
	if f.errFlag == gles.NO_ERROR {
		f.errFlag = code
	}
}

func (f *GL) alloc(kind gles.Kind) uint32 {
	f.nextID++
	f.live[f.nextID] = kind
	f.events = append(f.events, Event{Alloc: true, Kind: kind, ID: f.nextID})
	return f.nextID
}

// free returns false if the name was not a live object of the kind.
func (f *GL) free(kind gles.Kind, id uint32) bool {
	if id == 0 {
		return false
	}
	if k, ok := f.live[id]; !ok || k != kind {
		if f.freed[id] {
			f.doubleDel++
		}
		return false
	}
	delete(f.live, id)
	f.freed[id] = true
	f.events = append(f.events, Event{Alloc: false, Kind: kind, ID: id})
	return true
}

func (f *GL) isLive(kind gles.Kind, id uint32) bool {
	k, ok := f.live[id]
	return ok && k == kind
}

// Events returns a copy of the allocation and deletion history.
func (f *GL) Events() []Event {
	return slices.Clone(f.events)
}

// ClearEvents forgets the allocation and deletion history. Live objects
// remain live.
func (f *GL) ClearEvents() {
	f.events = f.events[:0]
}

// Live returns the number of live objects of all kinds.
func (f *GL) Live() int {
	return len(f.live)
}

// LiveOf returns the number of live objects of the specified kind.
func (f *GL) LiveOf(kind gles.Kind) int {
	var n int
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

// DoubleDeletes returns the number of deletions of names that had already
// been deleted.
func (f *GL) DoubleDeletes() int {
	return f.doubleDel
}

// Draws returns a copy of the draw call history.
func (f *GL) Draws() []Draw {
	return slices.Clone(f.draws)
}

// ClearDraws forgets the draw call history.
func (f *GL) ClearDraws() {
	f.draws = f.draws[:0]
}

// AttribCalls returns the number of calls to EnableVertexAttribArray() and
// DisableVertexAttribArray().
func (f *GL) AttribCalls() (enable int, disable int) {
	return f.enableCalls, f.disableCall
}

// EnabledAttribs returns the number of vertex attributes that are enabled in
// any live vertex array.
func (f *GL) EnabledAttribs() int {
	var n int
	for vao, attribs := range f.enabled {
		if !f.isLive(gles.VertexArray, vao) {
			continue
		}
		for _, on := range attribs {
			if on {
				n++
			}
		}
	}
	return n
}

// Bindings returns the currently used program, the draw framebuffer and the
// texture bound to unit zero.
func (f *GL) Bindings() (program uint32, framebuffer uint32, texture uint32) {
	return f.currentProgram, f.drawFramebuffer, f.boundTextures[0]
}

// CurrentViewport returns the viewport set by the last call to Viewport().
func (f *GL) CurrentViewport() [4]int32 {
	return f.viewport
}

// Uniform returns the last value set for the named uniform of the program.
func (f *GL) Uniform(programID uint32, name string) ([]float32, bool) {
	p, ok := f.programs[programID]
	if !ok {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// TextureSize returns the dimensions and internal format of a texture.
func (f *GL) TextureSize(id uint32) (width int32, height int32, internalFormat int32) {
	if t, ok := f.textures[id]; ok {
		return t.width, t.height, t.internalFormat
	}
	return 0, 0, 0
}

// Attachments returns the colour texture and depth renderbuffer attached to a
// framebuffer.
func (f *GL) Attachments(id uint32) (colour uint32, depth uint32) {
	if fb, ok := f.framebuffers[id]; ok {
		return fb.colour, fb.depth
	}
	return 0, 0
}

// BufferLen returns the number of floats stored in a buffer.
func (f *GL) BufferLen(id uint32) int {
	return len(f.buffers[id])
}

func (f *GL) GetError() uint32 {
	code := f.errFlag
	f.errFlag = gles.NO_ERROR
	return code
}

func (f *GL) GetString(name uint32) string {
	switch name {
	case gles.VENDOR:
		return "postfx"
	case gles.RENDERER:
		return "fakegl"
	case gles.VERSION:
		return "3.2 fakegl"
	case gles.SHADING_LANGUAGE_VERSION:
		return "1.50 fakegl"
	}
	f.raise(gles.INVALID_ENUM)
	return ""
}

var (
	attribRegexp  = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	uniformRegexp = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)
)

// syntaxCheck returns an info log for the source or the empty string if the
// source passes.
func syntaxCheck(source string) string {
	if !strings.Contains(source, "#version") {
		return "0:1(1): error: no #version directive"
	}

	var braces, parens int
	for i, l := range strings.Split(source, "\n") {
		braces += strings.Count(l, "{") - strings.Count(l, "}")
		parens += strings.Count(l, "(") - strings.Count(l, ")")
		if braces < 0 || parens < 0 {
			return fmt.Sprintf("0:%d(1): error: syntax error, unexpected closing bracket", i+1)
		}
	}
	if braces != 0 || parens != 0 {
		return "0:0(0): error: syntax error, unexpected end of file"
	}

	return ""
}

func (f *GL) CreateShader(stage uint32) uint32 {
	if f.injected("CreateShader") {
		return 0
	}
	if stage != gles.VERTEX_SHADER && stage != gles.FRAGMENT_SHADER {
		f.raise(gles.INVALID_ENUM)
		return 0
	}
	id := f.alloc(gles.Shader)
	f.shaders[id] = &shader{stage: stage}
	return id
}

func (f *GL) ShaderSource(id uint32, source string) {
	if f.injected("ShaderSource") {
		return
	}
	s, ok := f.shaders[id]
	if !ok || !f.isLive(gles.Shader, id) {
		f.raise(gles.INVALID_VALUE)
		return
	}
	s.source = source
}

func (f *GL) CompileShader(id uint32) {
	if f.injected("CompileShader") {
		return
	}
	s, ok := f.shaders[id]
	if !ok || !f.isLive(gles.Shader, id) {
		f.raise(gles.INVALID_VALUE)
		return
	}
	s.log = syntaxCheck(s.source)
	if s.log == "" && f.CompileFailure != "" && strings.Contains(s.source, f.CompileFailure) {
		s.log = fmt.Sprintf("0:1(1): error: `%s' rejected", f.CompileFailure)
	}
	s.compiled = s.log == ""
}

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func (f *GL) GetShaderiv(id uint32, pname uint32) int32 {
	s, ok := f.shaders[id]
	if !ok || !f.isLive(gles.Shader, id) {
		f.raise(gles.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.COMPILE_STATUS:
		return boolToInt32(s.compiled)
	case gles.INFO_LOG_LENGTH:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	f.raise(gles.INVALID_ENUM)
	return 0
}

func (f *GL) GetShaderInfoLog(id uint32) string {
	s, ok := f.shaders[id]
	if !ok || !f.isLive(gles.Shader, id) {
		f.raise(gles.INVALID_VALUE)
		return ""
	}
	return s.log
}

func (f *GL) DeleteShader(id uint32) {
	if f.injected("DeleteShader") {
		return
	}
	if f.free(gles.Shader, id) {
		for _, p := range f.programs {
			p.attached = slices.DeleteFunc(p.attached, func(s uint32) bool { return s == id })
		}
	}
}

func (f *GL) IsShader(id uint32) bool {
	return f.isLive(gles.Shader, id)
}

func (f *GL) CreateProgram() uint32 {
	if f.injected("CreateProgram") {
		return 0
	}
	id := f.alloc(gles.Program)
	f.programs[id] = &program{}
	return id
}

func (f *GL) AttachShader(programID uint32, shaderID uint32) {
	if f.injected("AttachShader") {
		return
	}
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) || !f.isLive(gles.Shader, shaderID) {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if slices.Contains(p.attached, shaderID) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	p.attached = append(p.attached, shaderID)
}

func (f *GL) DetachShader(programID uint32, shaderID uint32) {
	if f.injected("DetachShader") {
		return
	}
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) {
		f.raise(gles.INVALID_VALUE)
		return
	}
	i := slices.Index(p.attached, shaderID)
	if i < 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	p.attached = slices.Delete(p.attached, i, i+1)
}

func (f *GL) LinkProgram(programID uint32) {
	if f.injected("LinkProgram") {
		return
	}
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) {
		f.raise(gles.INVALID_VALUE)
		return
	}

	p.linked = false
	p.attribs = make(map[string]int32)
	p.uniforms = make(map[string]int32)
	p.values = make(map[int32][]float32)

	var vert, frag *shader
	for _, id := range p.attached {
		s := f.shaders[id]
		switch s.stage {
		case gles.VERTEX_SHADER:
			vert = s
		case gles.FRAGMENT_SHADER:
			frag = s
		}
	}

	switch {
	case vert == nil:
		p.log = "error: linking with uncompiled/unspecialized shader: no vertex shader"
		return
	case frag == nil:
		p.log = "error: linking with uncompiled/unspecialized shader: no fragment shader"
		return
	case !vert.compiled || !frag.compiled:
		p.log = "error: linking with uncompiled/unspecialized shader"
		return
	case f.LinkFailure:
		p.log = "error: program link rejected"
		return
	}

	for i, m := range attribRegexp.FindAllStringSubmatch(vert.source, -1) {
		p.attribs[m[1]] = int32(i)
	}
	var loc int32
	for _, src := range []string{vert.source, frag.source} {
		for _, m := range uniformRegexp.FindAllStringSubmatch(src, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = loc
				loc++
			}
		}
	}

	p.log = ""
	p.linked = true
}

func (f *GL) GetProgramiv(programID uint32, pname uint32) int32 {
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) {
		f.raise(gles.INVALID_VALUE)
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		return boolToInt32(p.linked)
	case gles.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	f.raise(gles.INVALID_ENUM)
	return 0
}

func (f *GL) GetProgramInfoLog(programID uint32) string {
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) {
		f.raise(gles.INVALID_VALUE)
		return ""
	}
	return p.log
}

func (f *GL) DeleteProgram(programID uint32) {
	if f.injected("DeleteProgram") {
		return
	}
	if f.free(gles.Program, programID) && f.currentProgram == programID {
		f.currentProgram = 0
	}
}

func (f *GL) IsProgram(programID uint32) bool {
	return f.isLive(gles.Program, programID)
}

func (f *GL) UseProgram(programID uint32) {
	if f.injected("UseProgram") {
		return
	}
	if programID != 0 {
		p, ok := f.programs[programID]
		if !ok || !f.isLive(gles.Program, programID) {
			f.raise(gles.INVALID_VALUE)
			return
		}
		if !p.linked {
			f.raise(gles.INVALID_OPERATION)
			return
		}
	}
	f.currentProgram = programID
}

func (f *GL) linkedProgram(programID uint32) *program {
	p, ok := f.programs[programID]
	if !ok || !f.isLive(gles.Program, programID) {
		f.raise(gles.INVALID_VALUE)
		return nil
	}
	if !p.linked {
		f.raise(gles.INVALID_OPERATION)
		return nil
	}
	return p
}

func (f *GL) GetAttribLocation(programID uint32, name string) int32 {
	p := f.linkedProgram(programID)
	if p == nil {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *GL) GetUniformLocation(programID uint32, name string) int32 {
	p := f.linkedProgram(programID)
	if p == nil {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *GL) uniform(function string, location int32, v ...float32) {
	if f.injected(function) {
		return
	}
	if f.currentProgram == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	// location -1 is silently ignored
	if location == -1 {
		return
	}
	f.programs[f.currentProgram].values[location] = v
}

func (f *GL) Uniform1i(location int32, v int32) {
	f.uniform("Uniform1i", location, float32(v))
}

func (f *GL) Uniform1f(location int32, v float32) {
	f.uniform("Uniform1f", location, v)
}

func (f *GL) Uniform2f(location int32, v0 float32, v1 float32) {
	f.uniform("Uniform2f", location, v0, v1)
}

func (f *GL) GenBuffer() uint32 {
	if f.injected("GenBuffer") {
		return 0
	}
	return f.alloc(gles.Buffer)
}

func (f *GL) DeleteBuffer(id uint32) {
	if f.injected("DeleteBuffer") {
		return
	}
	if f.free(gles.Buffer, id) {
		delete(f.buffers, id)
		if f.arrayBuffer == id {
			f.arrayBuffer = 0
		}
	}
}

func (f *GL) IsBuffer(id uint32) bool {
	return f.isLive(gles.Buffer, id)
}

func (f *GL) BindBuffer(target uint32, id uint32) {
	if f.injected("BindBuffer") {
		return
	}
	if target != gles.ARRAY_BUFFER {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if id != 0 && !f.isLive(gles.Buffer, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.arrayBuffer = id
}

func (f *GL) BufferData(target uint32, data []float32, usage uint32) {
	if f.injected("BufferData") {
		return
	}
	if target != gles.ARRAY_BUFFER {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if f.arrayBuffer == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.buffers[f.arrayBuffer] = slices.Clone(data)
}

func (f *GL) GenVertexArray() uint32 {
	if f.injected("GenVertexArray") {
		return 0
	}
	id := f.alloc(gles.VertexArray)
	f.enabled[id] = make(map[uint32]bool)
	return id
}

func (f *GL) DeleteVertexArray(id uint32) {
	if f.injected("DeleteVertexArray") {
		return
	}
	if f.free(gles.VertexArray, id) {
		delete(f.enabled, id)
		if f.vertexArray == id {
			f.vertexArray = 0
		}
	}
}

func (f *GL) IsVertexArray(id uint32) bool {
	return f.isLive(gles.VertexArray, id)
}

func (f *GL) BindVertexArray(id uint32) {
	if f.injected("BindVertexArray") {
		return
	}
	if id != 0 && !f.isLive(gles.VertexArray, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.vertexArray = id
}

func (f *GL) EnableVertexAttribArray(index uint32) {
	if f.injected("EnableVertexAttribArray") {
		return
	}
	if f.vertexArray == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.enableCalls++
	f.enabled[f.vertexArray][index] = true
}

func (f *GL) DisableVertexAttribArray(index uint32) {
	if f.injected("DisableVertexAttribArray") {
		return
	}
	if f.vertexArray == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.disableCall++
	f.enabled[f.vertexArray][index] = false
}

func (f *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	if f.injected("VertexAttribPointer") {
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if f.vertexArray == 0 || f.arrayBuffer == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
}

func (f *GL) GenTexture() uint32 {
	if f.injected("GenTexture") {
		return 0
	}
	id := f.alloc(gles.Texture)
	f.textures[id] = &texture{}
	return id
}

func (f *GL) DeleteTexture(id uint32) {
	if f.injected("DeleteTexture") {
		return
	}
	if f.free(gles.Texture, id) {
		for unit, t := range f.boundTextures {
			if t == id {
				f.boundTextures[unit] = 0
			}
		}
	}
}

func (f *GL) IsTexture(id uint32) bool {
	return f.isLive(gles.Texture, id)
}

func (f *GL) ActiveTexture(unit uint32) {
	if f.injected("ActiveTexture") {
		return
	}
	if unit < gles.TEXTURE0 || unit > gles.TEXTURE0+31 {
		f.raise(gles.INVALID_ENUM)
		return
	}
	f.activeUnit = unit - gles.TEXTURE0
}

func (f *GL) BindTexture(target uint32, id uint32) {
	if f.injected("BindTexture") {
		return
	}
	if target != gles.TEXTURE_2D {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if id != 0 && !f.isLive(gles.Texture, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.boundTextures[f.activeUnit] = id
}

func (f *GL) TexImage2D(target uint32, level int32, internalFormat int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	if f.injected("TexImage2D") {
		return
	}
	if target != gles.TEXTURE_2D {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 || level < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	id := f.boundTextures[f.activeUnit]
	if id == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	t := f.textures[id]
	t.width = width
	t.height = height
	t.internalFormat = internalFormat
}

func (f *GL) TexParameteri(target uint32, pname uint32, param int32) {
	if f.injected("TexParameteri") {
		return
	}
	if target != gles.TEXTURE_2D {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if f.boundTextures[f.activeUnit] == 0 {
		f.raise(gles.INVALID_OPERATION)
	}
}

func (f *GL) GenFramebuffer() uint32 {
	if f.injected("GenFramebuffer") {
		return 0
	}
	id := f.alloc(gles.Framebuffer)
	f.framebuffers[id] = &framebuffer{}
	return id
}

func (f *GL) DeleteFramebuffer(id uint32) {
	if f.injected("DeleteFramebuffer") {
		return
	}
	if f.free(gles.Framebuffer, id) {
		if f.drawFramebuffer == id {
			f.drawFramebuffer = 0
		}
		if f.readFramebuffer == id {
			f.readFramebuffer = 0
		}
	}
}

func (f *GL) IsFramebuffer(id uint32) bool {
	return f.isLive(gles.Framebuffer, id)
}

func (f *GL) BindFramebuffer(target uint32, id uint32) {
	if f.injected("BindFramebuffer") {
		return
	}
	if id != 0 && !f.isLive(gles.Framebuffer, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	switch target {
	case gles.FRAMEBUFFER:
		f.drawFramebuffer = id
		f.readFramebuffer = id
	case gles.DRAW_FRAMEBUFFER:
		f.drawFramebuffer = id
	case gles.READ_FRAMEBUFFER:
		f.readFramebuffer = id
	default:
		f.raise(gles.INVALID_ENUM)
	}
}

// boundFramebuffer returns the framebuffer bound to target. The second return
// value is false if the target is invalid.
func (f *GL) boundFramebuffer(target uint32) (uint32, bool) {
	switch target {
	case gles.FRAMEBUFFER, gles.DRAW_FRAMEBUFFER:
		return f.drawFramebuffer, true
	case gles.READ_FRAMEBUFFER:
		return f.readFramebuffer, true
	}
	f.raise(gles.INVALID_ENUM)
	return 0, false
}

func (f *GL) FramebufferTexture2D(target uint32, attachment uint32, textarget uint32, id uint32, level int32) {
	if f.injected("FramebufferTexture2D") {
		return
	}
	fbo, ok := f.boundFramebuffer(target)
	if !ok {
		return
	}
	if fbo == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	if id != 0 && !f.isLive(gles.Texture, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	switch attachment {
	case gles.COLOR_ATTACHMENT0:
		f.framebuffers[fbo].colour = id
	default:
		f.raise(gles.INVALID_ENUM)
	}
}

func (f *GL) status(fbo uint32) uint32 {
	if fbo == 0 {
		return gles.FRAMEBUFFER_COMPLETE
	}
	fb := f.framebuffers[fbo]
	if fb.colour == 0 && fb.depth == 0 {
		return gles.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	if fb.colour != 0 {
		t := f.textures[fb.colour]
		if !f.isLive(gles.Texture, fb.colour) || t.width == 0 || t.height == 0 {
			return gles.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		switch t.internalFormat {
		case gles.DEPTH_COMPONENT, gles.DEPTH_COMPONENT24:
			return gles.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if f.UnsupportedFormats[t.internalFormat] {
			return gles.FRAMEBUFFER_UNSUPPORTED
		}
	}
	if fb.depth != 0 {
		r := f.renderbuffers[fb.depth]
		if !f.isLive(gles.Renderbuffer, fb.depth) || r.width == 0 || r.height == 0 {
			return gles.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
	}
	return gles.FRAMEBUFFER_COMPLETE
}

func (f *GL) CheckFramebufferStatus(target uint32) uint32 {
	if f.injected("CheckFramebufferStatus") {
		return 0
	}
	fbo, ok := f.boundFramebuffer(target)
	if !ok {
		return 0
	}
	return f.status(fbo)
}

func (f *GL) GenRenderbuffer() uint32 {
	if f.injected("GenRenderbuffer") {
		return 0
	}
	id := f.alloc(gles.Renderbuffer)
	f.renderbuffers[id] = &renderbuffer{}
	return id
}

func (f *GL) DeleteRenderbuffer(id uint32) {
	if f.injected("DeleteRenderbuffer") {
		return
	}
	if f.free(gles.Renderbuffer, id) && f.renderbufferID == id {
		f.renderbufferID = 0
	}
}

func (f *GL) IsRenderbuffer(id uint32) bool {
	return f.isLive(gles.Renderbuffer, id)
}

func (f *GL) BindRenderbuffer(target uint32, id uint32) {
	if f.injected("BindRenderbuffer") {
		return
	}
	if target != gles.RENDERBUFFER {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if id != 0 && !f.isLive(gles.Renderbuffer, id) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	f.renderbufferID = id
}

func (f *GL) RenderbufferStorage(target uint32, internalFormat uint32, width int32, height int32) {
	if f.injected("RenderbufferStorage") {
		return
	}
	if target != gles.RENDERBUFFER {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if f.renderbufferID == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	r := f.renderbuffers[f.renderbufferID]
	r.width = width
	r.height = height
	r.internalFormat = internalFormat
}

func (f *GL) FramebufferRenderbuffer(target uint32, attachment uint32, renderbufferTarget uint32, id uint32) {
	if f.injected("FramebufferRenderbuffer") {
		return
	}
	fbo, ok := f.boundFramebuffer(target)
	if !ok {
		return
	}
	if fbo == 0 || (id != 0 && !f.isLive(gles.Renderbuffer, id)) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	if renderbufferTarget != gles.RENDERBUFFER || attachment != gles.DEPTH_ATTACHMENT {
		f.raise(gles.INVALID_ENUM)
		return
	}
	f.framebuffers[fbo].depth = id
}

func (f *GL) Viewport(x int32, y int32, width int32, height int32) {
	if f.injected("Viewport") {
		return
	}
	if width < 0 || height < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	f.viewport = [4]int32{x, y, width, height}
}

func (f *GL) ClearColor(r float32, g float32, b float32, a float32) {
	if f.injected("ClearColor") {
		return
	}
	f.clearColour = [4]float32{r, g, b, a}
}

func toByte(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

func (f *GL) Clear(mask uint32) {
	if f.injected("Clear") {
		return
	}
	if mask&^(gles.COLOR_BUFFER_BIT|gles.DEPTH_BUFFER_BIT) != 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if f.status(f.drawFramebuffer) != gles.FRAMEBUFFER_COMPLETE {
		f.raise(gles.INVALID_FRAMEBUFFER_OPERATION)
		return
	}
	if mask&gles.COLOR_BUFFER_BIT == 0 {
		return
	}
	var fill [4]uint8
	for i, v := range f.clearColour {
		fill[i] = toByte(v)
	}
	if f.drawFramebuffer == 0 {
		f.screen = fill
		return
	}
	if c := f.framebuffers[f.drawFramebuffer].colour; c != 0 {
		f.textures[c].fill = fill
	}
}

func (f *GL) DrawArrays(mode uint32, first int32, count int32) {
	if f.injected("DrawArrays") {
		return
	}
	if first < 0 || count < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if f.currentProgram == 0 || f.vertexArray == 0 {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	if f.status(f.drawFramebuffer) != gles.FRAMEBUFFER_COMPLETE {
		f.raise(gles.INVALID_FRAMEBUFFER_OPERATION)
		return
	}

	var attribs []uint32
	for idx, on := range f.enabled[f.vertexArray] {
		if on {
			attribs = append(attribs, idx)
		}
	}
	slices.Sort(attribs)

	f.draws = append(f.draws, Draw{
		Program:     f.currentProgram,
		Framebuffer: f.drawFramebuffer,
		Texture:     f.boundTextures[0],
		Viewport:    f.viewport,
		Attribs:     attribs,
		Mode:        mode,
		Count:       count,
	})
}

func (f *GL) ReadPixels(x int32, y int32, width int32, height int32, format uint32, xtype uint32, pixels []uint8) {
	if f.injected("ReadPixels") {
		return
	}
	if width < 0 || height < 0 {
		f.raise(gles.INVALID_VALUE)
		return
	}
	if format != gles.RGBA || xtype != gles.UNSIGNED_BYTE {
		f.raise(gles.INVALID_ENUM)
		return
	}
	if int(width)*int(height)*4 > len(pixels) {
		f.raise(gles.INVALID_OPERATION)
		return
	}
	if f.status(f.readFramebuffer) != gles.FRAMEBUFFER_COMPLETE {
		f.raise(gles.INVALID_FRAMEBUFFER_OPERATION)
		return
	}

	fill := f.screen
	if f.readFramebuffer != 0 {
		if c := f.framebuffers[f.readFramebuffer].colour; c != 0 {
			fill = f.textures[c].fill
		}
	}
	for i := 0; i < int(width)*int(height); i++ {
		copy(pixels[i*4:], fill[:])
	}
}
