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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/postfx/config"
	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/test"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.Window.Backend, config.SDL)
	test.ExpectEquality(t, strings.Join(cfg.Names(), ","), "grayscale")
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
[window]
title = "test"
width = 320
height = 240
backend = "GLFW"

[[effect]]
name = "Grayscale"

[[effect]]
name = "blur"
params = [2.5]

[[effect]]
name = "colour"
params = [0.1, -0.2, 0]
`))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cfg.Window.Title, "test")
	test.ExpectEquality(t, cfg.Window.Width, 320)
	test.ExpectEquality(t, cfg.Window.Height, 240)
	test.ExpectEquality(t, cfg.Window.Backend, config.GLFW)

	// vsync was not specified so the default is kept
	test.ExpectSuccess(t, cfg.Window.VSync)

	test.ExpectEquality(t, strings.Join(cfg.Names(), ","), "grayscale,blur,colour")

	p := cfg.Effects[1].Parameters()
	test.ExpectEquality(t, p[0], float32(2.5))
	test.ExpectEquality(t, p[1], float32(0))

	p = cfg.Effects[2].Parameters()
	test.ExpectApproximate(t, p[1], -0.2, 0.0001)
}

func TestParseNoEffects(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
[window]
width = 100
height = 100
`))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cfg.Names(), ","), "grayscale")
	test.ExpectEquality(t, cfg.Window.Title, "postfx")
}

func TestParseErrors(t *testing.T) {
	parse := func(s string) error {
		_, err := config.Parse(strings.NewReader(s))
		return err
	}

	err := parse("[window]\nbackend = \"vulkan\"\n")
	test.ExpectSuccess(t, curated.Is(err, config.InvalidBackend))

	err = parse("[window]\nwidth = 0\n")
	test.ExpectSuccess(t, curated.Is(err, config.InvalidDimensions))

	err = parse("[[effect]]\nname = \"sepia\"\n")
	test.ExpectSuccess(t, curated.Is(err, config.InvalidEffect))

	err = parse("[[effect]]\nname = \"blur\"\nparams = [1, 2]\n")
	test.ExpectSuccess(t, curated.Is(err, config.TooManyParameters))

	// unknown keys
	err = parse("[window]\nfullscreen = true\n")
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "fullscreen"))

	// syntax error
	err = parse("[window\n")
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 1"))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "postfx.toml")
	err := os.WriteFile(fn, []byte("[[effect]]\nname = \"scanlines\"\nparams = [0, 0.5]\n"), 0o600)
	test.DemandSuccess(t, err)

	cfg, err := config.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(cfg.Names(), ","), "scanlines")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.ExpectSuccess(t, curated.Is(err, config.InvalidConfig))
}

func TestParseBackend(t *testing.T) {
	b, err := config.ParseBackend(" SDL ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, config.SDL)

	_, err = config.ParseBackend("")
	test.ExpectFailure(t, err)
}
