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

// Package logger is the central log for the application. Log entries are
// tagged with the subsystem that created them, for example "shader" or
// "pipeline".
//
// Entries are made with the Log() and Logf() functions. Both require a
// Permission argument. The Allow value should be used when a log entry
// should always be made:
//
//	logger.Logf(logger.Allow, "framebuffer", "created %dx%d", w, h)
//
// Identical consecutive entries are collapsed into a single entry with a
// repeat count. This is important for a renderer because the same message can
// otherwise be logged once per frame.
//
// The log is bounded and older entries are lost once the maximum is reached.
// Entries can be echoed to an io.Writer as they are made with SetEcho(). The
// Colorizer type can be used to dim the continuation lines of multi-line
// entries, which is useful for shader compiler output.
package logger
