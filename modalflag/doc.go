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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "list")
//	_, _ = md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, with its own flags and arguments. The first sub-mode
// given to AddSubModes() is the default and is selected when the first
// argument is not a recognised mode. Sub-mode comparisons are case
// insensitive and Mode() always returns the upper case name.
//
// Once a mode has been chosen NewMode() starts a new set of flags for the
// remaining arguments:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		config := md.AddString("config", "", "pipeline configuration file")
//		switch p, err := md.Parse(); p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return run(*config, md.RemainingArgs())
//	case "LIST":
//		return list()
//	}
//
// Help is handled automatically. The -help flag prints the flags for the
// current mode followed by the list of sub-modes and any text given to
// AdditionalHelp(). Parse() then returns ParseHelp.
package modalflag
