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
	"runtime"

	"github.com/jetsetilly/postfx/assert"
	"github.com/jetsetilly/postfx/logger"
)

// drivers may queue more than one error flag. the limit protects against a
// lost context which reports an error on every query.
const maxQueuedErrors = 8

// Context is the call guard for an API instance. It must only be used on the
// goroutine that created it.
//
// The first driver error detected by the Context is sticky. Once an error has
// been seen every subsequent guarded call is refused and the original error
// returned.
type Context struct {
	api   API
	owner uint64
	err   error
}

// NewContext is the preferred method of initialisation for the Context type.
// The calling goroutine becomes the owner of the Context.
func NewContext(api API) *Context {
	ctx := &Context{
		api: api,
	}
	if assert.Enabled {
		ctx.owner = assert.GoroutineID()
	}
	return ctx
}

// GL returns the underlying API. Calls made directly on the API are not
// guarded and should be limited to queries.
func (ctx *Context) GL() API {
	return ctx.api
}

// Err returns the error that poisoned the Context, or nil.
func (ctx *Context) Err() error {
	return ctx.err
}

// DriverInfo returns a single line description of the driver.
func (ctx *Context) DriverInfo() string {
	return fmt.Sprintf("%s (%s) %s, GLSL %s",
		ctx.api.GetString(RENDERER),
		ctx.api.GetString(VENDOR),
		ctx.api.GetString(VERSION),
		ctx.api.GetString(SHADING_LANGUAGE_VERSION))
}

// Verify invokes call with the API and then checks the driver error state. A
// DriverError is returned if the driver reports an error. The DriverError
// will record the location of the Verify() call and the description.
//
// If the Context has previously seen an error call is not invoked and the
// earlier error is returned.
func (ctx *Context) Verify(desc string, call func(gl API)) error {
	return ctx.verify(1, desc, call)
}

func (ctx *Context) verify(skip int, desc string, call func(gl API)) error {
	assert.SameGoroutine(ctx.owner)

	if ctx.err != nil {
		return ctx.err
	}

	call(ctx.api)

	code := ctx.api.GetError()
	if code == NO_ERROR {
		return nil
	}

	// only the first error is interesting. drain any others the driver has
	// queued so that they're not attributed to a later call
	for i := 0; i < maxQueuedErrors && ctx.api.GetError() != NO_ERROR; i++ {
	}

	file, line := callSite(skip + 1)
	return ctx.poison(&DriverError{
		Desc: desc,
		File: file,
		Line: line,
		Code: code,
	})
}

func (ctx *Context) poison(err error) error {
	ctx.err = err
	logger.Log(logger.Allow, "gles", err)
	return err
}

// callSite returns the source location of the caller skip levels above the
// function calling callSite().
func callSite(skip int) (string, int) {
	var pc [1]uintptr
	if runtime.Callers(skip+2, pc[:]) == 0 {
		return "unknown", 0
	}
	frame, _ := runtime.CallersFrames(pc[:]).Next()
	return frame.File, frame.Line
}

// Guard is a sticky wrapper for a sequence of guarded calls. After the first
// error, calls to Do() do nothing. Typical use:
//
//	g := ctx.Guard()
//	g.Do("bind framebuffer", func(gl gles.API) { gl.BindFramebuffer(gles.FRAMEBUFFER, id) })
//	g.Do("clear", func(gl gles.API) { gl.Clear(gles.COLOR_BUFFER_BIT) })
//	if err := g.Err(); err != nil {
//		return err
//	}
type Guard struct {
	ctx *Context
	err error
}

// Guard returns a new Guard for the Context. If the Context is already
// poisoned the Guard starts in the error state.
func (ctx *Context) Guard() *Guard {
	return &Guard{
		ctx: ctx,
		err: ctx.err,
	}
}

// Do is the equivalent of Context.Verify() except that errors are stored
// rather than returned. The call site recorded for an error is the location of
// the Do() call.
func (g *Guard) Do(desc string, call func(gl API)) {
	if g.err != nil {
		return
	}
	g.err = g.ctx.verify(1, desc, call)
}

// Err returns the first error encountered by Do().
func (g *Guard) Err() error {
	return g.err
}

// Context returns the Context the Guard was created with.
func (g *Guard) Context() *Context {
	return g.ctx
}
