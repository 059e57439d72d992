// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/fatih/color"

	"wollok/internal/config"
	"wollok/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	color.NoColor = !cfg.Output.Color

	fmt.Printf("Welcome to the Wollok REPL, %s!\n", currentUser.Username)
	repl.Start(os.Stdin, os.Stdout, cfg.Output.Color)
}
