// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// FoldChange stores the fold change of a gene:
// the ratio of the mean expression in the case group
// to the mean expression in the control group,
// and its log2 transformation.
type FoldChange struct {
	Ratio float64
	Log2  float64
}

// FoldChange returns the fold change for every gene
// of the experiment.
// Genes for which the fold change is undefined
// (for example a zero mean in the control group)
// get a NaN value.
func (ex *Experiment) FoldChange() map[Gene]FoldChange {
	fc := make(map[Gene]FoldChange)
	for _, g := range ex.Genes() {
		r := stat.Mean(ex.Case.OfGene(g), nil) / stat.Mean(ex.Control.OfGene(g), nil)
		fc[g] = FoldChange{
			Ratio: r,
			Log2:  math.Log2(r),
		}
	}
	return fc
}

// TTest returns the p-value
// of a two-sided two-sample t-test
// for every gene of the experiment,
// under the null hypothesis that case and control
// have identical average expression.
// The test assumes equal population variances.
func (ex *Experiment) TTest() map[Gene]float64 {
	pv := make(map[Gene]float64)
	for _, g := range ex.Genes() {
		pv[g] = tTest(ex.Case.OfGene(g), ex.Control.OfGene(g))
	}
	return pv
}

func tTest(x, y []float64) float64 {
	nx := float64(len(x))
	ny := float64(len(y))
	df := nx + ny - 2
	if df <= 0 {
		return math.NaN()
	}

	mx := stat.Mean(x, nil)
	my := stat.Mean(y, nil)
	vx := stat.Variance(x, nil)
	vy := stat.Variance(y, nil)

	// pooled standard deviation
	sp := math.Sqrt(((nx-1)*vx + (ny-1)*vy) / df)
	se := sp * math.Sqrt(1/nx+1/ny)
	if se == 0 {
		if mx == my {
			return 1
		}
		return 0
	}

	t := (mx - my) / se
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}
