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

// Package prefs holds live preference values for the post-processing host.
//
// Values are typed (Bool, Int and Float) and can be changed at any time from
// any goroutine. Each type accepts a string in addition to its native Go
// type, which is how values arrive from the command line:
//
//	prefs.PushCommandLineStack("blur.0::2.5; scanlines.1::0.3")
//
// A Group collects named values. Adding a value to a Group consumes any
// matching entry on the command line stack so that the value starts with the
// user's override rather than its default.
//
// Hooks can be attached to any value with SetHookPre() and SetHookPost(). A
// pre hook returning an error prevents the new value from being stored.
package prefs
