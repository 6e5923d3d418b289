// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package methods implements a command to print
// the available pathway analysis methods.
package methods

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/method"

	_ "github.com/kn-bibs/patago/enrich/gsea"
	_ "github.com/kn-bibs/patago/enrich/impact"
	_ "github.com/kn-bibs/patago/enrich/lrpath"
	_ "github.com/kn-bibs/patago/enrich/spia"
)

var Command = &command.Command{
	Usage: "methods",
	Short: "print the available analysis methods",
	Long: `
Command methods prints the name and a one line description of each pathway
analysis method available in patago. Each method is run with the command of
the same name; use "patago help <method>" for the method options.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	for _, n := range method.Names() {
		m, err := method.ByName(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", m.Name(), m.Summary())
	}
	return nil
}
