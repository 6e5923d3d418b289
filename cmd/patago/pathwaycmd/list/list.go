// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the pathways stored in the cache of a project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "list [--org <organism>] <project-file>",
	Short: "print the cached pathways of a project",
	Long: `
Command list prints the ID and the description of each pathway stored in the
KEGG pathway cache of a patago project.

The argument of the command is the name of the project file. The flag --org
defines the organism, by name or KEGG code, "Homo sapiens" by default.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var orgFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&orgFlag, "org", "Homo sapiens", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	cache, err := p.PathwayCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	org, err := cache.OrganismCode(orgFlag)
	if err != nil {
		return err
	}
	ps, err := cache.Pathways(org)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(ps))
	for id := range ps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", id, ps[id])
	}
	return nil
}
