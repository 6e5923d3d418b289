// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the gene sets of a database.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: "list [--file <gmt-file>] [--genes] [<project-file>]",
	Short: "print the gene sets of a database",
	Long: `
Command list prints the name and the size of each gene set of a gene set
database, in GMT format.

By default the database is read from the genesets dataset of the project
file given as argument. The flag --file defines an explicit GMT file to be
read instead.

If the flag --genes is defined, the member genes of each set will be printed
after the set name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fileFlag string
var genesFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&fileFlag, "file", "", "")
	c.Flags().BoolVar(&genesFlag, "genes", false, "")
}

func run(c *command.Command, args []string) error {
	var db *geneset.Collection
	if fileFlag != "" {
		d, err := geneset.ReadFile(fileFlag)
		if err != nil {
			return err
		}
		db = d
	} else {
		if len(args) < 1 {
			return c.UsageError("expecting project file")
		}
		p, err := project.Read(args[0])
		if err != nil {
			return err
		}
		db, err = p.GeneSets()
		if err != nil {
			return err
		}
	}

	for _, s := range db.Sets() {
		fmt.Fprintf(c.Stdout(), "%s\t%d\n", s.Name, s.Len())
		if !genesFlag {
			continue
		}
		for _, g := range s.Genes() {
			fmt.Fprintf(c.Stdout(), "\t%s\n", g.Name())
		}
	}
	return nil
}
