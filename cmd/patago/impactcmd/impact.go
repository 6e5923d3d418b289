// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package impactcmd implements a command to run
// impact analysis.
package impactcmd

import (
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/enrich/impact"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: `impact [--org <organism>] [--threshold <value>]
	[--degs <gene>,...] [--md] [-o|--output <out-file>]
	` + samples.Usage + ` <project-file>`,
	Short: "run impact analysis",
	Long: `
Command impact runs impact analysis over the experiment of a patago project:
each KEGG pathway containing at least one differentially expressed gene is
scored with an impact factor that combines the probability of the observed
overlap with the expression perturbation propagated through the pathway
topology.

The argument of the command is the name of the project file. The pathways
are read from the pathway cache of the project, which must be populated
beforehand with the command "patago pathway fetch".

The flag --org defines the organism of the experiment, by name or KEGG code,
"Homo sapiens" by default.

By default the differentially expressed genes are the genes with a t-test
p-value below 0.05; the flag --threshold changes the cutoff, and the flag
--degs defines an explicit comma separated list of gene identifiers to be
used instead.

The output is a tab-delimited table printed in the standard output; the flag
--output, or -o, redirects it to a file, and the flag --md formats it as a
Markdown table.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var orgFlag string
var threshold float64
var degsFlag string
var mdFlag bool
var output string
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&orgFlag, "org", "Homo sapiens", "")
	c.Flags().Float64Var(&threshold, "threshold", 0.05, "")
	c.Flags().StringVar(&degsFlag, "degs", "", "")
	c.Flags().BoolVar(&mdFlag, "md", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	smpFlags.Set(c)
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ex, err := smpFlags.Experiment(p)
	if err != nil {
		return err
	}
	cache, err := p.PathwayCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	m := impact.Method{
		Cache:     cache,
		Organism:  orgFlag,
		Threshold: threshold,
	}
	if degsFlag != "" {
		m.DEGs = strings.Split(degsFlag, ",")
	}
	out, err := m.Run(ex)
	if err != nil {
		return err
	}

	w := c.Stdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if mdFlag {
		return out.Markdown(w, "Impact analysis: "+p.Name())
	}
	return out.TSV(w)
}
