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

// Package paths contains functions to prepare paths to postfx resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the default pipeline description.
//
//	d := paths.ResourcePath("postfx.toml")
//
// If the base resource path, ".postfx", is present in the program's current
// directory then that is the base path that will be used. Otherwise the
// user's config directory is used, as returned by os.UserConfigDir(). On a
// modern Linux system the example above would return:
//
//	/home/user/.config/postfx/postfx.toml
//
// UniqueFilename() creates timestamped filenames for screenshots and memory
// graphs.
package paths
