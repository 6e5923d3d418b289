// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package gseacmd implements a command to run
// gene set enrichment analysis.
package gseacmd

import (
	"os"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/enrich/gsea"
	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: `gsea [--metric <name>] [--weight <value>]
	[--perm <number>] [--phenotypes] [--no-norm]
	[--cpu <number>] [--seed <number>]
	[--db <gmt-file>] [--plot <file-prefix>] [--top <number>]
	[--md] [-o|--output <out-file>]
	` + samples.Usage + ` <project-file>`,
	Short: "run gene set enrichment analysis",
	Long: `
Command gsea runs gene set enrichment analysis (GSEA) over the experiment of
a patago project: every gene is ranked by its differential expression, and
each gene set is scored by how much its members concentrate at the top or
the bottom of the ranked list (the enrichment score, ES). The significance
of the score is estimated with a permutation test, and the normalized scores
(NES) are corrected for multiple testing with a false discovery rate.

The argument of the command is the name of the project file. The gene set
database is read from the genesets dataset of the project; the flag --db
defines a GMT file to be used instead.

The flag --metric defines the gene ranking metric, one of "difference",
"ratio", or "signal_to_noise" (the default). The flag --weight defines the
enrichment weighting exponent, 1 by default.

The flag --perm defines the number of permutations used to build the null
distribution, 1000 by default. By default the null is built by permuting the
gene labels; the flag --phenotypes switches to sample label permutation,
which preserves gene-gene correlations but requires a reasonable number of
samples. The flag --no-norm disables the score normalization.

The flag --cpu defines the number of concurrent processes, using all
available processors by default. The flag --seed defines the seed of the
random number generator, so runs can be reproduced; by default the current
time is used.

If the flag --plot is defined, a plot of the running sum statistic will be
saved as "<file-prefix>-<set>.png" for each of the top scored gene sets (10
sets by default, use the flag --top to change it).

The output is a tab-delimited table printed in the standard output; the flag
--output, or -o, redirects it to a file, and the flag --md formats it as a
Markdown table.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var metricFlag string
var weightFlag float64
var permFlag int
var phenotypes bool
var noNorm bool
var cpuFlag int
var seedFlag int64
var dbFlag string
var plotFlag string
var topFlag int
var mdFlag bool
var output string
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&metricFlag, "metric", "signal_to_noise", "")
	c.Flags().Float64Var(&weightFlag, "weight", 1, "")
	c.Flags().IntVar(&permFlag, "perm", 1000, "")
	c.Flags().BoolVar(&phenotypes, "phenotypes", false, "")
	c.Flags().BoolVar(&noNorm, "no-norm", false, "")
	c.Flags().IntVar(&cpuFlag, "cpu", 0, "")
	c.Flags().Int64Var(&seedFlag, "seed", 0, "")
	c.Flags().StringVar(&dbFlag, "db", "", "")
	c.Flags().StringVar(&plotFlag, "plot", "", "")
	c.Flags().IntVar(&topFlag, "top", 10, "")
	c.Flags().BoolVar(&mdFlag, "md", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	smpFlags.Set(c)
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	metric, err := expr.MetricByName(metricFlag)
	if err != nil {
		return err
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

	m := gsea.Method{
		DB: db,
		Opt: gsea.Options{
			Metric:            metric,
			Weight:            weightFlag,
			Permutations:      permFlag,
			PermutePhenotypes: phenotypes,
			NoNormalize:       noNorm,
			CPU:               cpuFlag,
			Seed:              seedFlag,
		},
	}
	out, err := m.Run(ex)
	if err != nil {
		return err
	}

	if plotFlag != "" {
		ranked := gsea.RankedList(ex.Case, ex.Control, metric)
		top := topFlag
		if top > len(out.Rows) {
			top = len(out.Rows)
		}
		for _, row := range out.Rows[:top] {
			set := db.Set(row[0])
			if set == nil {
				continue
			}
			if err := plotRunningSum(ranked, set, weightFlag, plotFlag); err != nil {
				return err
			}
		}
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
		return out.Markdown(w, "GSEA: "+p.Name())
	}
	return out.TSV(w)
}
