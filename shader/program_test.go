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

package shader_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
	"github.com/jetsetilly/postfx/gles/fakegl"
	"github.com/jetsetilly/postfx/shader"
	"github.com/jetsetilly/postfx/shaders"
	"github.com/jetsetilly/postfx/test"
)

var layout = shader.Layout{
	Attributes: []string{"Position"},
	Uniforms:   []string{"Texture"},
}

func newProgram(t *testing.T, f *fakegl.GL, vert string, frag string, l shader.Layout) (*shader.Program, error) {
	t.Helper()
	return shader.NewProgram(gles.NewContext(f), vert, frag, l)
}

func TestNewProgram(t *testing.T) {
	f := fakegl.New()
	p, err := newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), layout)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, f.LiveOf(gles.Shader), 2)
	test.ExpectEquality(t, f.LiveOf(gles.Program), 1)

	loc, err := p.Resolve("Position")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc, int32(0))

	loc, err = p.Resolve("Texture")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, loc >= 0, true)

	// names not in the layout cannot be resolved even if they exist
	_, err = p.Resolve("Out_Color")
	var re *gles.ResolutionError
	test.ExpectEquality(t, errors.As(err, &re), true)
	test.ExpectEquality(t, re.Name, "Out_Color")
	test.ExpectEquality(t, re.Kind, gles.AttributeOrUniform)
	test.ExpectEquality(t, err.Error(), "program: attribute or uniform not found: Out_Color")

	prog := p.Handle().ID()
	f.ClearEvents()
	test.ExpectSuccess(t, p.Destroy())
	test.ExpectSuccess(t, p.Destroy())
	test.ExpectEquality(t, f.Live(), 0)
	test.ExpectEquality(t, f.IsProgram(prog), false)
	test.ExpectEquality(t, f.DoubleDeletes(), 0)

	// shaders are released before the program
	ev := f.Events()
	test.DemandEquality(t, len(ev), 3)
	test.ExpectEquality(t, ev[0].Kind, gles.Shader)
	test.ExpectEquality(t, ev[1].Kind, gles.Shader)
	test.ExpectEquality(t, ev[2].Kind, gles.Program)
}

func TestVertexCompileError(t *testing.T) {
	f := fakegl.New()
	broken := "#version 150\nin vec2 Position;\nvoid main() {\n\tgl_Position = vec4(Position, 0.0, 1.0;\n}\n"

	_, err := newProgram(t, f, broken, string(shaders.CopyShader), layout)
	test.ExpectFailure(t, err)

	var ce *gles.CompileError
	test.DemandEquality(t, errors.As(err, &ce), true)
	test.ExpectEquality(t, ce.Stage, uint32(gles.VERTEX_SHADER))
	test.ExpectInequality(t, ce.Log, "")
	test.ExpectEquality(t, f.Live(), 0)
}

func TestFragmentCompileError(t *testing.T) {
	f := fakegl.New()
	f.CompileFailure = "Out_Color"

	_, err := newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), layout)

	var ce *gles.CompileError
	test.DemandEquality(t, errors.As(err, &ce), true)
	test.ExpectEquality(t, ce.Stage, uint32(gles.FRAGMENT_SHADER))
	test.ExpectInequality(t, ce.Log, "")

	// the vertex shader compiled but has been released
	test.ExpectEquality(t, f.Live(), 0)
	test.ExpectEquality(t, len(f.Events()), 4)
}

func TestLinkError(t *testing.T) {
	f := fakegl.New()
	f.LinkFailure = true

	_, err := newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), layout)

	var le *gles.LinkError
	test.DemandEquality(t, errors.As(err, &le), true)
	test.ExpectInequality(t, le.Log, "")
	test.ExpectEquality(t, f.Live(), 0)
}

func TestResolutionError(t *testing.T) {
	f := fakegl.New()

	l := shader.Layout{
		Attributes: []string{"Position"},
		Uniforms:   []string{"Texture", "Exposure"},
	}
	_, err := newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), l)

	var re *gles.ResolutionError
	test.DemandEquality(t, errors.As(err, &re), true)
	test.ExpectEquality(t, re.Name, "Exposure")
	test.ExpectEquality(t, re.Kind, gles.Uniform)
	test.ExpectEquality(t, f.Live(), 0)

	l = shader.Layout{
		Attributes: []string{"Position"},
		Uniforms:   []string{"Texture", "Texture"},
	}
	_, err = newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), l)
	test.ExpectEquality(t, curated.Is(err, shader.DuplicateName), true)
	test.ExpectEquality(t, f.Live(), 0)
}

func TestDriverErrorDuringCompile(t *testing.T) {
	f := fakegl.New()
	f.FailNext("CompileShader", gles.OUT_OF_MEMORY)

	_, err := newProgram(t, f, string(shaders.QuadVertexShader), string(shaders.CopyShader), layout)

	var de *gles.DriverError
	test.DemandEquality(t, errors.As(err, &de), true)
	test.ExpectEquality(t, de.Desc, "compile shader")
	test.ExpectEquality(t, f.Live(), 0)
}
