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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the
// test to continue. The Demand*() functions report with t.Fatalf() and should
// be used when later parts of the test rely on the value being correct.
//
// It is worth describing how success and failure are interpreted because it is
// not obvious. The nil value is considered a success. This is because of how
// errors are used (nil to indicate no error). Supported types for the
// success/failure tests are:
//
//	bool  -> true is success
//	error -> nil is success
//
// The optional tags argument to all functions is prepended to the failure
// message and is useful for identifying an iteration in a table driven test.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output for comparison with an expected string.
package test
