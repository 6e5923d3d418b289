// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package remove implements a command to remove a dataset
// from a patago project.
package remove

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: "remove <project-file> <dataset-type>...",
	Short: "remove datasets from a project",
	Long: `
Command remove removes one or more datasets from a patago project. Only the
reference is removed, the dataset files remain untouched.

The first argument of the command is the name of the project file. The
remaining arguments are dataset types, as defined for the "prj add" command.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset type")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	for _, a := range args[1:] {
		s := project.Dataset(strings.ToLower(a))
		if p.Path(s) == "" {
			continue
		}
		prev := p.Add(s, "")
		fmt.Fprintf(c.Stdout(), "removed %s\t%s\n", s, prev)
	}
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}
