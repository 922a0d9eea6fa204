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

package window_test

import (
	"testing"

	"github.com/jetsetilly/postfx/test"
	"github.com/jetsetilly/postfx/window"
)

func TestEventString(t *testing.T) {
	test.ExpectEquality(t, window.None.String(), "none")
	test.ExpectEquality(t, window.Quit.String(), "quit")
	test.ExpectEquality(t, window.Resize.String(), "resize")
	test.ExpectEquality(t, window.Screenshot.String(), "screenshot")
	test.ExpectEquality(t, window.Event(99).String(), "unknown event")
}
