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

package effects

import (
	"slices"
	"strings"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/gles"
)

// UnknownEffect is returned by New() and ParameterNames() for names that are not
// in the list returned by Names().
const UnknownEffect = "effects: unknown effect: %s"

type entry struct {
	create func(*gles.Context) (Effect, error)
	params []string
}

var registry = map[string]entry{
	"copy": {
		create: func(ctx *gles.Context) (Effect, error) { return NewCopy(ctx) },
	},
	"grayscale": {
		create: func(ctx *gles.Context) (Effect, error) { return NewGrayscale(ctx) },
	},
	"blur": {
		create: func(ctx *gles.Context) (Effect, error) { return NewBlur(ctx) },
		params: []string{"radius"},
	},
	"colour": {
		create: func(ctx *gles.Context) (Effect, error) { return NewColour(ctx) },
		params: []string{"brightness", "contrast", "saturation"},
	},
	"scanlines": {
		create: func(ctx *gles.Context) (Effect, error) { return NewScanlines(ctx) },
		params: []string{"time", "intensity"},
	},
}

// New creates the named effect. Names are not case sensitive.
func New(ctx *gles.Context, name string) (Effect, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownEffect, name)
	}

	// the constructors return concrete types. a failed construction must
	// not be returned as a non-nil interface
	eff, err := e.create(ctx)
	if err != nil {
		return nil, err
	}
	return eff, nil
}

// Names returns the sorted list of effect names.
func Names() []string {
	n := make([]string, 0, len(registry))
	for k := range registry {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// ParameterNames returns the names of the parameters used by the named effect, in
// position order. An effect that takes no parameters returns an empty list.
func ParameterNames(name string) ([]string, error) {
	e, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownEffect, name)
	}
	return slices.Clone(e.params), nil
}
