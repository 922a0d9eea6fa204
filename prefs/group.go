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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/logger"
)

// Sentinal error patterns returned by Group functions.
const (
	DuplicateKey = "prefs: duplicate key: %s"
	UnknownKey   = "prefs: unknown key: %s"
)

// Group is a named collection of prefs values. Keys are qualified by the
// group name so that a value with key "0" in group "blur" is known to the
// command line as "blur.0".
type Group struct {
	name string

	crit    sync.Mutex
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup(name string) *Group {
	return &Group{
		name:    name,
		entries: make(map[string]Pref),
	}
}

// Name returns the name of the group.
func (g *Group) Name() string {
	return g.name
}

// qualify returns the full key for the group.
func (g *Group) qualify(key string) string {
	if g.name == "" {
		return key
	}
	return fmt.Sprintf("%s.%s", g.name, key)
}

// Add a value to the group. If the command line stack has an entry for the
// qualified key the value is set to that entry.
func (g *Group) Add(key string, p Pref) error {
	key = g.qualify(key)

	g.crit.Lock()
	if _, ok := g.entries[key]; ok {
		g.crit.Unlock()
		return curated.Errorf(DuplicateKey, key)
	}
	g.entries[key] = p
	g.crit.Unlock()

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", key, err)
		}
		logger.Logf(logger.Allow, "prefs", "%s set to %s from command line", key, p)
	}
	return nil
}

// Set the value for the qualified key.
func (g *Group) Set(key string, v Value) error {
	g.crit.Lock()
	p, ok := g.entries[key]
	g.crit.Unlock()
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value for the qualified key.
func (g *Group) Get(key string) (Value, error) {
	g.crit.Lock()
	p, ok := g.entries[key]
	g.crit.Unlock()
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the qualified keys of the group in sorted order.
func (g *Group) Keys() []string {
	g.crit.Lock()
	defer g.crit.Unlock()

	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset every value in the group.
func (g *Group) Reset() error {
	for _, k := range g.Keys() {
		g.crit.Lock()
		p := g.entries[k]
		g.crit.Unlock()
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the group as a prefs string suitable for use with
// PushCommandLineStack().
func (g *Group) String() string {
	keys := g.Keys()

	g.crit.Lock()
	defer g.crit.Unlock()

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, g.entries[k]))
	}
	return strings.Join(s, "; ")
}
