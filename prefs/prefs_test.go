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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/prefs"
	"github.com/jetsetilly/postfx/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)

	// anything other than "true" is false
	test.ExpectSuccess(t, v.Set("yes"))
	test.ExpectEquality(t, v.Get().(bool), false)

	err := v.Set(1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "false")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(640))
	test.ExpectEquality(t, v.Get().(int), 640)

	test.ExpectSuccess(t, v.Set(int32(-10)))
	test.ExpectEquality(t, v.Get().(int), -10)

	test.ExpectSuccess(t, v.Set(" 480 "))
	test.ExpectEquality(t, v.String(), "480")

	err := v.Set("4.5")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotParse))
	test.ExpectEquality(t, v.Get().(int), 480)

	err = v.Set(4.5)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")

	test.ExpectSuccess(t, v.Set(0.25))
	test.ExpectEquality(t, v.Float32(), float32(0.25))

	test.ExpectSuccess(t, v.Set(float32(1.5)))
	test.ExpectEquality(t, v.Float64(), 1.5)

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(float64), 3.0)

	test.ExpectSuccess(t, v.Set("-2.125"))
	test.ExpectEquality(t, v.String(), "-2.125")

	test.ExpectFailure(t, v.Set("abc"))
	test.ExpectFailure(t, v.Set("NaN"))
	test.ExpectFailure(t, v.Set("+Inf"))
	test.ExpectEquality(t, v.Float64(), -2.125)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Float64(), 0.0)
}

func TestHooks(t *testing.T) {
	var v prefs.Float
	var pre, post []float64

	v.SetHookPre(func(nv prefs.Value) error {
		f := nv.(float64)
		if f < 0 {
			return errors.New("negative")
		}
		pre = append(pre, f)
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = append(post, nv.(float64))
		return nil
	})

	test.ExpectSuccess(t, v.Set(1.0))
	test.ExpectSuccess(t, v.Set(1.0))

	// pre hook failure prevents the store and the post hook
	test.ExpectFailure(t, v.Set(-1.0))
	test.ExpectEquality(t, v.Float64(), 1.0)

	test.ExpectEquality(t, len(pre), 2)
	test.ExpectEquality(t, len(post), 2)

	// post hook error is returned but the value is stored
	v.SetHookPost(func(_ prefs.Value) error {
		return errors.New("post")
	})
	test.ExpectFailure(t, v.Set(2.0))
	test.ExpectEquality(t, v.Float64(), 2.0)
}

func TestGroup(t *testing.T) {
	prefs.PushCommandLineStack("blur.0::2.5; blur.1::abc; other.0::1")

	g := prefs.NewGroup("blur")
	test.ExpectEquality(t, g.Name(), "blur")

	var radius prefs.Float
	test.ExpectSuccess(t, g.Add("0", &radius))
	test.ExpectEquality(t, radius.Float64(), 2.5)

	// duplicate keys are refused
	err := g.Add("0", &prefs.Float{})
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	// bad command line value is reported but the value is still added
	var bad prefs.Float
	test.ExpectFailure(t, g.Add("1", &bad))
	test.ExpectEquality(t, bad.Float64(), 0.0)

	test.ExpectEquality(t, len(g.Keys()), 2)
	test.ExpectEquality(t, g.Keys()[0], "blur.0")

	test.ExpectSuccess(t, g.Set("blur.1", 0.5))
	v, err := g.Get("blur.1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.(float64), 0.5)

	_, err = g.Get("blur.2")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))
	test.ExpectSuccess(t, curated.Is(g.Set("blur.2", 1), prefs.UnknownKey))

	test.ExpectEquality(t, g.String(), "blur.0::2.500; blur.1::0.500")

	test.ExpectSuccess(t, g.Reset())
	test.ExpectEquality(t, g.String(), "blur.0::0.000; blur.1::0.000")

	// entries for other groups are left on the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other.0::1")
}
