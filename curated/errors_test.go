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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/postfx/curated"
	"github.com/jetsetilly/postfx/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, curated.IsAny(e), true)
	test.ExpectEquality(t, curated.Is(e, testError), true)
	test.ExpectEquality(t, curated.Has(e, testError), true)

	f := curated.Errorf(testErrorB, e)
	test.ExpectEquality(t, curated.Is(f, testError), false)
	test.ExpectEquality(t, curated.Is(f, testErrorB), true)
	test.ExpectEquality(t, curated.Has(f, testError), true)

	// plain errors are not curated
	g := fmt.Errorf("plain error")
	test.ExpectEquality(t, curated.IsAny(g), false)
	test.ExpectEquality(t, curated.Has(g, testError), false)
	test.ExpectEquality(t, curated.IsAny(nil), false)
}

type typedError struct {
	detail string
}

func (e *typedError) Error() string {
	return e.detail
}

func TestUnwrap(t *testing.T) {
	inner := &typedError{detail: "inner"}
	e := curated.Errorf("outer: %v", curated.Errorf("middle: %v", inner))
	test.ExpectEquality(t, e.Error(), "outer: middle: inner")

	var te *typedError
	test.ExpectEquality(t, errors.As(e, &te), true)
	test.ExpectEquality(t, te.detail, "inner")
	test.ExpectEquality(t, errors.Is(e, inner), true)
}
