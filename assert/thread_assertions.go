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

//go:build assertions

package assert

import "fmt"

// Enabled is true when the package has been built with the assertions tag.
const Enabled = true

// SameGoroutine panics if the calling goroutine is not the owner.
func SameGoroutine(owner uint64) {
	if id := GoroutineID(); id != owner {
		panic(fmt.Sprintf("assert: GL call from goroutine %d but context belongs to goroutine %d", id, owner))
	}
}
