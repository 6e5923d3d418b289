// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gseacmd

import (
	"fmt"
	"strings"

	"github.com/kn-bibs/patago/enrich/gsea"
	"github.com/kn-bibs/patago/geneset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotRunningSum saves a plot of the running sum statistic
// of a gene set over the ranked gene list,
// with a tick mark at each rank position
// of a gene set member.
func plotRunningSum(ranked []gsea.RankedGene, set *geneset.GeneSet, weight float64, prefix string) error {
	rs := gsea.RunningSum(ranked, set, weight)

	p := plot.New()
	p.Title.Text = set.Name
	p.X.Label.Text = "rank in gene list"
	p.Y.Label.Text = "enrichment score"

	line := make(plotter.XYs, len(rs))
	for i, v := range rs {
		line[i].X = float64(i)
		line[i].Y = v
	}
	l, err := plotter.NewLine(line)
	if err != nil {
		return err
	}
	p.Add(l)

	var hits plotter.XYs
	for i, r := range ranked {
		if set.Contains(r.Gene) {
			hits = append(hits, plotter.XY{X: float64(i), Y: 0})
		}
	}
	s, err := plotter.NewScatter(hits)
	if err != nil {
		return err
	}
	p.Add(s)

	name := fmt.Sprintf("%s-%s.png", prefix, fileName(set.Name))
	return p.Save(6*vg.Inch, 4*vg.Inch, name)
}

func fileName(set string) string {
	f := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		}
		return '_'
	}
	return strings.Map(f, set)
}
