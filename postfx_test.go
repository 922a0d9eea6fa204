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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/postfx/config"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/test"
)

func TestList(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"LIST"}), 0)
	test.ExpectSuccess(t, tw.Compare(strings.Join([]string{
		"blur (0:radius)",
		"colour (0:brightness, 1:contrast, 2:saturation)",
		"copy",
		"grayscale",
		"scanlines (0:time, 1:intensity)",
		"",
	}, "\n")))
}

func TestLaunchErrors(t *testing.T) {
	tw := &test.CompareWriter{}
	// unrecognised flags select the default mode, which then fails to parse
	test.ExpectEquality(t, launch(tw, []string{"-nosuchflag"}), 20)

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"LIST", "-nosuchflag"}), 20)

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"RUN", "-config", "does_not_exist.toml"}), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "config:"))

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"RUN", "-backend", "vulkan"}), 20)
}

func TestParameters(t *testing.T) {
	cfg := config.Config{
		Window: config.Default().Window,
		Effects: []config.Effect{
			{Name: "blur", Params: []float32{2}},
			{Name: "grayscale"},
			{Name: "scanlines", Params: []float32{99, 0.5}},
			{Name: "blur"},
		},
	}
	test.DemandSuccess(t, cfg.Validate())

	prefs.PushCommandLineStack("blur2.0::4; scanlines.1::0.25; sepia.0::1")
	params, err := newParameters(cfg)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sepia.0::1")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(params), 4)

	test.ExpectEquality(t, params.forEffect(0, 10), effects.Parameters{2})
	test.ExpectEquality(t, params.forEffect(1, 10), effects.Parameters{})

	// time is supplied by the host and the config value is ignored
	test.ExpectEquality(t, params.forEffect(2, 10), effects.Parameters{10, 0.25})

	// second occurrence of blur has its own group
	test.ExpectEquality(t, params.forEffect(3, 10), effects.Parameters{4})

	// out of range
	test.ExpectEquality(t, params.forEffect(4, 10), effects.Parameters{})

	test.ExpectEquality(t, params.String(),
		"blur.0::2.000; scanlines.0::99.000; scanlines.1::0.250; blur2.0::4.000")
}

func TestBackendFlag(t *testing.T) {
	var b backendFlag
	test.ExpectSuccess(t, b.Set("GLFW"))
	test.ExpectEquality(t, b.String(), "glfw")
	test.ExpectFailure(t, b.Set("vulkan"))
}
