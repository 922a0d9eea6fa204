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
	"fmt"

	"github.com/jetsetilly/postfx/config"
	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/logger"
	"github.com/jetsetilly/postfx/prefs"
)

// the parameter name that is supplied by the host rather than by prefs.
const timeParameter = "time"

// effectParams holds the live parameter values for one effect in the chain.
type effectParams struct {
	group  *prefs.Group
	names  []string
	values [effects.NumParameters]prefs.Float
}

// parameters is the live parameter values for every effect in the chain.
type parameters []*effectParams

// newParameters creates the parameter prefs for the effects in the config.
// Each effect is given a prefs group named after the effect. A second
// occurrence of the same effect has a group named "blur2", a third "blur3" and
// so on. Parameter keys are the index of the parameter in the group, for
// example "blur.0".
//
// Initial values are taken from the config and may be overridden by entries
// on the prefs command line stack.
func newParameters(cfg config.Config) (parameters, error) {
	seen := make(map[string]int)
	params := make(parameters, 0, len(cfg.Effects))

	for _, e := range cfg.Effects {
		names, err := effects.ParameterNames(e.Name)
		if err != nil {
			return nil, err
		}

		seen[e.Name]++
		group := e.Name
		if seen[e.Name] > 1 {
			group = fmt.Sprintf("%s%d", e.Name, seen[e.Name])
		}

		ep := &effectParams{
			group: prefs.NewGroup(group),
			names: names,
		}

		initial := e.Parameters()
		for i, n := range names {
			v := &ep.values[i]
			if err := v.Set(initial[i]); err != nil {
				return nil, err
			}

			key := fmt.Sprintf("%s.%d", group, i)
			v.SetHookPost(func(nv prefs.Value) error {
				logger.Logf(logger.Allow, "prefs", "%s (%s) = %v", key, n, nv)
				return nil
			})

			if err := ep.group.Add(fmt.Sprint(i), v); err != nil {
				return nil, err
			}
		}

		params = append(params, ep)
	}

	return params, nil
}

// forEffect returns the effects.Parameters for the effect at index. A
// parameter named "time" is given the value of seconds.
func (params parameters) forEffect(index int, seconds float32) effects.Parameters {
	var p effects.Parameters
	if index < 0 || index >= len(params) {
		return p
	}

	ep := params[index]
	for i, n := range ep.names {
		if n == timeParameter {
			p[i] = seconds
		} else {
			p[i] = ep.values[i].Float32()
		}
	}
	return p
}

// String returns all parameters as a prefs string.
func (params parameters) String() string {
	s := ""
	for _, ep := range params {
		if len(ep.names) == 0 {
			continue
		}
		if s != "" {
			s += "; "
		}
		s += ep.group.String()
	}
	return s
}
