// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package deg implements a command to print
// the differential expression of the experiment genes.
package deg

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/method"
	"github.com/kn-bibs/patago/project"
	"github.com/kn-bibs/patago/pvalue"
)

var Command = &command.Command{
	Usage: `deg [--threshold <value>] [-o|--output <out-file>]
	` + samples.Usage + ` <project-file>`,
	Short: "print differentially expressed genes",
	Long: `
Command deg prints a table with the differential expression of every gene of
the experiment: the fold change between the case and control groups, its
log2 transformation, the p-value of a two-sample t-test, and the false
discovery rate adjusted p-value (by the Benjamini-Hochberg procedure). Genes
are sorted by their p-value.

The argument of the command is the name of the project file.

If the flag --threshold is defined, only the genes with a p-value below the
given value will be printed.

The output is a tab-delimited table printed in the standard output; the flag
--output, or -o, redirects it to a file.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var threshold float64
var output string
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&threshold, "threshold", 1, "")
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

	out, err := degTable(ex, threshold)
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
	return out.TSV(w)
}

// degTable builds the differential expression table.
// Genes without a defined p-value
// are left out of the table
// and of the false discovery rate correction.
func degTable(ex *expr.Experiment, threshold float64) (*method.Result, error) {
	fc := ex.FoldChange()
	pv := ex.TTest()

	var genes []expr.Gene
	for _, g := range ex.Genes() {
		if math.IsNaN(pv[g]) {
			continue
		}
		genes = append(genes, g)
	}
	slices.SortFunc(genes, func(a, b expr.Gene) int {
		if pv[a] < pv[b] {
			return -1
		}
		if pv[a] > pv[b] {
			return 1
		}
		return strings.Compare(a.Name(), b.Name())
	})

	ps := make([]float64, len(genes))
	for i, g := range genes {
		ps[i] = pv[g]
	}
	fdr := pvalue.FDR(ps)

	out := &method.Result{
		Columns: []string{"gene", "FC", "log2FC", "p-value", "FDR"},
	}
	for i, g := range genes {
		if pv[g] > threshold {
			continue
		}
		err := out.Add(
			g.Name(),
			fmt.Sprintf("%.6g", fc[g].Ratio),
			fmt.Sprintf("%.6g", fc[g].Log2),
			fmt.Sprintf("%.6g", pv[g]),
			fmt.Sprintf("%.6g", fdr[i]),
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
