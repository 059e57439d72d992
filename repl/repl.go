// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"wollok/internal/errors"
	"wollok/internal/parser"
	"wollok/internal/pretty"
)

const PROMPT = ">> "

// Start reads one statement list per line and prints its tree, or the
// diagnostic when the line does not parse. It returns at end of input.
func Start(in io.Reader, out io.Writer, colors bool) {
	scanner := bufio.NewScanner(in)
	printer := pretty.New(pretty.Config{UseColors: colors})

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		scope, err := parser.ParseSource("<repl>", line)
		if err != nil {
			if d, ok := err.(*errors.Diagnostic); ok {
				fmt.Fprint(out, errors.NewErrorReporter("<repl>", line).FormatError(d))
			} else {
				fmt.Fprintln(out, err)
			}
			continue
		}

		fmt.Fprint(out, printer.Print(scope))
	}
}
