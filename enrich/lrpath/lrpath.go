// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lrpath implements LRpath,
// a gene set enrichment test
// based on logistic regression:
// the membership of each gene in a category
// is regressed on its differential expression significance,
// keeping the data on a continuous scale
// while retaining an odds ratio interpretation,
// as described in:
//
// Sartor M.A., Leikauf G.D., Medvedovic M. (2009)
// "LRpath: a logistic regression approach for identifying
// enriched biological groups in gene expression data",
// Bioinformatics 25: 211-217.
package lrpath

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/method"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Method is the entry of LRpath
// in the method registry.
// The gene set database must be assigned
// before running the analysis.
type Method struct {
	// DB is the gene set database
	// with the categories to be tested.
	DB *geneset.Collection

	// MinG is the minimum number of unique genes
	// analyzed in a category to be tested.
	// By default 10.
	MinG int

	// MaxG is the maximum number of unique genes
	// analyzed in a category to be tested.
	// By default there is no maximum.
	MaxG int

	// Cutoff is the p-value cutoff
	// used to report the significant genes
	// of each category.
	// By default 0.05.
	Cutoff float64

	// OddsMin and OddsMax are the significance bounds
	// used to scale the odds ratio.
	// By default 0.001 and 0.5.
	OddsMin, OddsMax float64
}

func init() {
	method.Register(Method{})
}

// Name implements the method.Method interface.
func (m Method) Name() string { return "lrpath" }

// Summary implements the method.Method interface.
func (m Method) Summary() string {
	return "logistic regression enrichment over continuous significance values"
}

// A Score is the LRpath score of a single category.
type Score struct {
	Name      string
	NGenes    int
	Coeff     float64
	OddsRatio float64
	P         float64
	SigGenes  []string
}

// Run implements the method.Method interface.
func (m Method) Run(ex *expr.Experiment) (*method.Result, error) {
	scores, err := m.Scores(ex)
	if err != nil {
		return nil, err
	}

	out := &method.Result{
		Columns: []string{"name", "nGene", "LRcoeff", "odds_ratio", "LRpvalue", "sig_genes"},
		Notes:   "For more information see:\nhttp://lrpath.ncibi.org/method.pdf",
	}
	for _, s := range scores {
		err := out.Add(
			s.Name,
			fmt.Sprintf("%d", s.NGenes),
			fmt.Sprintf("%.6g", s.Coeff),
			fmt.Sprintf("%.6g", s.OddsRatio),
			fmt.Sprintf("%.6g", s.P),
			strings.Join(s.SigGenes, ", "),
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Scores runs the analysis
// and returns the category scores
// sorted by their p-value.
func (m Method) Scores(ex *expr.Experiment) ([]*Score, error) {
	if m.DB == nil {
		return nil, errors.New("lrpath: gene set database not defined")
	}
	minG := m.MinG
	if minG == 0 {
		minG = 10
	}
	maxG := m.MaxG
	if maxG == 0 {
		maxG = math.MaxInt
	}
	cutoff := m.Cutoff
	if cutoff == 0 {
		cutoff = 0.05
	}
	oddsMin := m.OddsMin
	if oddsMin == 0 {
		oddsMin = 0.001
	}
	oddsMax := m.OddsMax
	if oddsMax == 0 {
		oddsMax = 0.5
	}
	lorMult := math.Log(oddsMin) - math.Log(oddsMax)

	// -log transformed significance per gene
	pvals := ex.TTest()
	genes := make([]expr.Gene, 0, len(pvals))
	for g := range pvals {
		genes = append(genes, g)
	}
	slices.Sort(genes)

	nlp := make([]float64, len(genes))
	pv := make([]float64, len(genes))
	for i, g := range genes {
		p := pvals[g]
		if math.IsNaN(p) || p > 1 {
			p = 1
		}
		if p < 1e-15 {
			p = 1e-15
		}
		pv[i] = p
		nlp[i] = -math.Log(p)
	}
	if len(genes) == 0 {
		return nil, errors.New("lrpath: no genes in the experiment")
	}

	index := make(map[expr.Gene]int, len(genes))
	for i, g := range genes {
		index[g] = i
	}

	var scores []*Score
	for _, set := range m.DB.Sets() {
		var members []int
		for _, g := range set.Genes() {
			if i, ok := index[g]; ok {
				members = append(members, i)
			}
		}
		if len(members) < minG || len(members) > maxG {
			continue
		}

		y := make([]float64, len(genes))
		for _, i := range members {
			y[i] = 1
		}

		b1, se1, ok := logistic(nlp, y)
		if !ok {
			continue
		}

		norm := distuv.Normal{Mu: 0, Sigma: 1}
		p := 2 * norm.Survival(math.Abs(b1/se1))

		var sig []string
		for _, i := range members {
			if pv[i] < cutoff {
				sig = append(sig, genes[i].Name())
			}
		}
		if len(sig) == 0 {
			continue
		}
		slices.Sort(sig)

		scores = append(scores, &Score{
			Name:      set.Name,
			NGenes:    len(members),
			Coeff:     b1,
			OddsRatio: math.Exp(lorMult * b1),
			P:         p,
			SigGenes:  sig,
		})
	}

	slices.SortFunc(scores, func(a, b *Score) int {
		if a.P < b.P {
			return -1
		}
		if a.P > b.P {
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return scores, nil
}

// logistic fits the logistic regression
// y ~ intercept + b1*x
// by iteratively reweighted least squares,
// and returns the slope
// with its standard error.
// It reports false when the fit does not converge.
func logistic(x, y []float64) (b1, se1 float64, ok bool) {
	n := len(x)
	b := mat.NewVecDense(2, nil)

	var xtwx mat.Dense
	for iter := 0; iter < 100; iter++ {
		// weighted normal equations for the working response
		var s00, s01, s11, r0, r1 float64
		for i := 0; i < n; i++ {
			eta := b.AtVec(0) + b.AtVec(1)*x[i]
			mu := 1 / (1 + math.Exp(-eta))
			if mu < 1e-10 {
				mu = 1e-10
			}
			if mu > 1-1e-10 {
				mu = 1 - 1e-10
			}
			w := mu * (1 - mu)
			z := eta + (y[i]-mu)/w

			s00 += w
			s01 += w * x[i]
			s11 += w * x[i] * x[i]
			r0 += w * z
			r1 += w * z * x[i]
		}

		xtwx = *mat.NewDense(2, 2, []float64{s00, s01, s01, s11})
		var nb mat.VecDense
		if err := nb.SolveVec(&xtwx, mat.NewVecDense(2, []float64{r0, r1})); err != nil {
			return 0, 0, false
		}

		diff := math.Abs(nb.AtVec(0)-b.AtVec(0)) + math.Abs(nb.AtVec(1)-b.AtVec(1))
		b.CopyVec(&nb)
		if diff < 1e-8 {
			var inv mat.Dense
			if err := inv.Inverse(&xtwx); err != nil {
				return 0, 0, false
			}
			se := math.Sqrt(inv.At(1, 1))
			if math.IsNaN(se) || se == 0 {
				return 0, 0, false
			}
			return b.AtVec(1), se, true
		}
	}
	return 0, 0, false
}
