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

package version

import (
	"strings"
	"testing"

	"github.com/jetsetilly/postfx/test"
)

func TestVersion(t *testing.T) {
	v, r, release := Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")
	test.ExpectFailure(t, release)
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName))
}

func TestNumberedRelease(t *testing.T) {
	v, _ := fromBuildInfo("v1.2.3")
	test.ExpectEquality(t, v, "v1.2.3")
}
