// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pvalue implements p-value utilities
// shared by the pathway analysis methods:
// corrections for multiple hypothesis testing,
// p-value combination,
// and the hypergeometric overrepresentation test.
package pvalue

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// FDR returns the p-values adjusted
// with the Benjamini-Hochberg
// false discovery rate procedure.
func FDR(ps []float64) []float64 {
	n := len(ps)
	if n == 0 {
		return nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if ps[a] < ps[b] {
			return -1
		}
		if ps[a] > ps[b] {
			return 1
		}
		return 0
	})

	adj := make([]float64, n)
	min := 1.0
	for i := n - 1; i >= 0; i-- {
		v := ps[order[i]] * float64(n) / float64(i+1)
		if v < min {
			min = v
		}
		adj[order[i]] = min
	}
	return adj
}

// Bonferroni returns the p-values adjusted
// with the Bonferroni correction.
func Bonferroni(ps []float64) []float64 {
	adj := make([]float64, len(ps))
	for i, p := range ps {
		v := p * float64(len(ps))
		if v > 1 {
			v = 1
		}
		adj[i] = v
	}
	return adj
}

// Fisher combines two independent p-values
// with Fisher's method
// (a chi-square test with 4 degrees of freedom
// on -2 sum of logs).
func Fisher(p1, p2 float64) float64 {
	if p1 <= 0 || p2 <= 0 {
		return 0
	}
	c := -2 * (math.Log(p1) + math.Log(p2))
	chi := distuv.ChiSquared{K: 4}
	return chi.Survival(c)
}

// Normal combines two independent p-values
// with the normal inversion method.
func Normal(p1, p2 float64) float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	z := (norm.Quantile(1-p1) + norm.Quantile(1-p2)) / math.Sqrt2
	return norm.Survival(z)
}

// HyperGeom returns the probability
// of observing k or more successes
// when drawing n elements
// from a population of size total
// that contains succ successes
// (the upper tail of the hypergeometric distribution).
func HyperGeom(k, succ, n, total int) float64 {
	if k <= 0 {
		return 1
	}
	max := n
	if succ < max {
		max = succ
	}
	if k > max {
		return 0
	}

	logDenom := combin.LogGeneralizedBinomial(float64(total), float64(n))
	p := 0.0
	for i := k; i <= max; i++ {
		if n-i > total-succ {
			continue
		}
		lp := combin.LogGeneralizedBinomial(float64(succ), float64(i)) +
			combin.LogGeneralizedBinomial(float64(total-succ), float64(n-i)) -
			logDenom
		p += math.Exp(lp)
	}
	if p > 1 {
		p = 1
	}
	return p
}
