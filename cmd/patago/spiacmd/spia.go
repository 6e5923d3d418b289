// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package spiacmd implements a command to run
// signaling pathway impact analysis.
package spiacmd

import (
	"os"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/enrich/spia"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: `spia [--org <organism>] [--threshold <value>]
	[--nb <number>] [--norminv] [--cpu <number>] [--seed <number>]
	[--md] [-o|--output <out-file>]
	` + samples.Usage + ` <project-file>`,
	Short: "run signaling pathway impact analysis",
	Long: `
Command spia runs signaling pathway impact analysis (SPIA) over the
experiment of a patago project: each KEGG pathway gets a global probability
pG that combines pNDE, the probability of observing at least the given
number of differentially expressed genes on the pathway, and pPERT, the
probability of the total accumulated perturbation, estimated by a bootstrap.
The pG values are corrected for multiple testing with the false discovery
rate and the Bonferroni procedures.

The argument of the command is the name of the project file. The pathways
are read from the pathway cache of the project, which must be populated
beforehand with the command "patago pathway fetch".

The flag --org defines the organism of the experiment, by synonym or KEGG
code, "hsa" by default. The flag --threshold defines the p-value cutoff for
the differentially expressed genes, 0.05 by default.

The flag --nb defines the number of bootstrap iterations used to estimate
pPERT, 2000 by default. By default pNDE and pPERT are combined with the
Fisher product method; the flag --norminv switches to the normal inversion
method.

The flag --cpu defines the number of concurrent processes, using all
available processors by default. The flag --seed defines the seed of the
random number generator, so runs can be reproduced; by default the current
time is used.

The output is a tab-delimited table printed in the standard output; the flag
--output, or -o, redirects it to a file, and the flag --md formats it as a
Markdown table.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var orgFlag string
var threshold float64
var nbFlag int
var normInv bool
var cpuFlag int
var seedFlag int64
var mdFlag bool
var output string
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&orgFlag, "org", "hsa", "")
	c.Flags().Float64Var(&threshold, "threshold", 0.05, "")
	c.Flags().IntVar(&nbFlag, "nb", 2000, "")
	c.Flags().BoolVar(&normInv, "norminv", false, "")
	c.Flags().IntVar(&cpuFlag, "cpu", 0, "")
	c.Flags().Int64Var(&seedFlag, "seed", 0, "")
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

	m := spia.Method{
		Cache:     cache,
		Organism:  orgFlag,
		Threshold: threshold,
		NB:        nbFlag,
		NormInv:   normInv,
		CPU:       cpuFlag,
		Seed:      seedFlag,
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
		return out.Markdown(w, "SPIA: "+p.Name())
	}
	return out.TSV(w)
}
