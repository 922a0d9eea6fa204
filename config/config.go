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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/logger"
	"github.com/pelletier/go-toml/v2"
)

// Sentinal error patterns returned by Parse() and Load().
const (
	InvalidConfig     = "config: %v"
	InvalidBackend    = "config: invalid backend: %s"
	InvalidDimensions = "config: invalid window dimensions: %dx%d"
	InvalidEffect     = "config: effect %d: %v"
	TooManyParameters = "config: effect %d (%s): too many parameters: %d"
)

// Backend names the windowing library used by the host program.
type Backend string

// List of valid Backend values.
const (
	SDL  Backend = "sdl"
	GLFW Backend = "glfw"
)

// ParseBackend returns the Backend for the name, ignoring case.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case SDL, GLFW:
		return b, nil
	}
	return "", curated.Errorf(InvalidBackend, name)
}

// Window describes the host window.
type Window struct {
	Title   string  `toml:"title"`
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Backend Backend `toml:"backend"`
	VSync   bool    `toml:"vsync"`
}

// Effect is one entry in the effect chain. Params are in the order given by
// effects.ParameterNames() for the named effect and may be shorter than that
// list.
type Effect struct {
	Name   string    `toml:"name"`
	Params []float32 `toml:"params"`
}

// Parameters returns Params as an effects.Parameters array.
func (e Effect) Parameters() effects.Parameters {
	var p effects.Parameters
	copy(p[:], e.Params)
	return p
}

// Config is the complete description of a host program.
type Config struct {
	Window  Window   `toml:"window"`
	Effects []Effect `toml:"effect"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Title:   "postfx",
			Width:   1024,
			Height:  768,
			Backend: SDL,
			VSync:   true,
		},
		Effects: []Effect{
			{Name: "grayscale"},
		},
	}
}

// Parse a TOML description. Values not present in the description keep the
// values from Default(), with the exception of the effect list which is
// replaced entirely if present.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	cfg.Effects = nil

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, curated.Errorf(InvalidConfig, describe(err))
	}

	if cfg.Effects == nil {
		cfg.Effects = Default().Effects
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load and parse the named file.
func Load(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, curated.Errorf(InvalidConfig, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, err
	}

	logger.Logf(logger.Allow, "config", "loaded %s (%d effects)", filename, len(cfg.Effects))
	return cfg, nil
}

// Validate checks the window description and the effect list.
func (cfg *Config) Validate() error {
	b, err := ParseBackend(string(cfg.Window.Backend))
	if err != nil {
		return err
	}
	cfg.Window.Backend = b

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return curated.Errorf(InvalidDimensions, cfg.Window.Width, cfg.Window.Height)
	}

	for i := range cfg.Effects {
		e := &cfg.Effects[i]
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		names, err := effects.ParameterNames(e.Name)
		if err != nil {
			return curated.Errorf(InvalidEffect, i, err)
		}
		if len(e.Params) > len(names) {
			return curated.Errorf(TooManyParameters, i, e.Name, len(e.Params))
		}
	}

	return nil
}

// Names returns the effect names in chain order.
func (cfg Config) Names() []string {
	n := make([]string, len(cfg.Effects))
	for i, e := range cfg.Effects {
		n[i] = e.Name
	}
	return n
}

// describe adds position information to errors from the TOML decoder.
func describe(err error) string {
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		return fmt.Sprintf("line %d, column %d: %s", row, col, derr.Error())
	}

	var serr *toml.StrictMissingError
	if errors.As(err, &serr) {
		keys := make([]string, 0, len(serr.Errors))
		for _, e := range serr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		return fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return err.Error()
}
