// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the datasets defined in a patago project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: "list <project-file>",
	Short: "print the datasets of a project",
	Long: `
Command list prints the type and the file path of each dataset defined in a
patago project.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	for _, s := range p.Sets() {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", s, p.Path(s))
	}
	return nil
}
