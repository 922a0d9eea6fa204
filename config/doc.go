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

// Package config reads the description of a post-processing host from a TOML
// file. The description names the window to open and the ordered list of
// effects to run on each frame:
//
//	[window]
//	title = "postfx"
//	width = 1024
//	height = 768
//	backend = "sdl"
//	vsync = true
//
//	[[effect]]
//	name = "grayscale"
//
//	[[effect]]
//	name = "blur"
//	params = [2.0]
//
// Unknown keys are an error, as are effect names that are not in the effects
// registry. Missing window values take the values of Default().
package config
