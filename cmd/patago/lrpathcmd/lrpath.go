// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lrpathcmd implements a command to run
// the LRpath enrichment test.
package lrpathcmd

import (
	"os"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/enrich/lrpath"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: `lrpath [--min <number>] [--max <number>]
	[--cutoff <value>] [--odds-min <value>] [--odds-max <value>]
	[--db <gmt-file>] [--md] [-o|--output <out-file>]
	` + samples.Usage + ` <project-file>`,
	Short: "run the LRpath enrichment test",
	Long: `
Command lrpath runs the LRpath enrichment test over the experiment of a
patago project: the membership of each gene in a gene set is regressed on
the -log transformed p-value of the gene differential expression, using
logistic regression, so the significance is kept on a continuous scale
instead of being cut at an arbitrary threshold.

The argument of the command is the name of the project file. The gene set
database is read from the genesets dataset of the project; the flag --db
defines a GMT file to be used instead.

The flags --min and --max define the minimum and the maximum number of
analyzed genes of a gene set to be tested; by default at least 10 genes,
with no maximum. The flag --cutoff defines the p-value cutoff used to report
the significant genes of each set, 0.05 by default. The flags --odds-min and
--odds-max define the significance bounds used to scale the odds ratio,
0.001 and 0.5 by default.

The output is a tab-delimited table printed in the standard output; the flag
--output, or -o, redirects it to a file, and the flag --md formats it as a
Markdown table.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var minFlag int
var maxFlag int
var cutoff float64
var oddsMin float64
var oddsMax float64
var dbFlag string
var mdFlag bool
var output string
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().IntVar(&minFlag, "min", 10, "")
	c.Flags().IntVar(&maxFlag, "max", 0, "")
	c.Flags().Float64Var(&cutoff, "cutoff", 0.05, "")
	c.Flags().Float64Var(&oddsMin, "odds-min", 0.001, "")
	c.Flags().Float64Var(&oddsMax, "odds-max", 0.5, "")
	c.Flags().StringVar(&dbFlag, "db", "", "")
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

	var db *geneset.Collection
	if dbFlag != "" {
		db, err = geneset.ReadFile(dbFlag)
	} else {
		db, err = p.GeneSets()
	}
	if err != nil {
		return err
	}

	m := lrpath.Method{
		DB:      db,
		MinG:    minFlag,
		MaxG:    maxFlag,
		Cutoff:  cutoff,
		OddsMin: oddsMin,
		OddsMax: oddsMax,
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
		return out.Markdown(w, "LRpath: "+p.Name())
	}
	return out.TSV(w)
}
