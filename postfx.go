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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/postfx/effects"
	"github.com/jetsetilly/postfx/modalflag"
	"github.com/jetsetilly/postfx/version"
)

// OpenGL and the windowing libraries require that all calls are made from the
// main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch returns the exit value for the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "LIST")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "LIST":
		err = list(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// list the available effects and their parameters.
func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, n := range effects.Names() {
		params, err := effects.ParameterNames(n)
		if err != nil {
			return err
		}
		if len(params) == 0 {
			fmt.Fprintln(md.Output, n)
			continue
		}
		s := make([]string, len(params))
		for i, p := range params {
			s[i] = fmt.Sprintf("%d:%s", i, p)
		}
		fmt.Fprintf(md.Output, "%s (%s)\n", n, strings.Join(s, ", "))
	}

	return nil
}
