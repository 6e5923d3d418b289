// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package spia implements the signaling pathway impact analysis,
// which combines the overrepresentation
// of differentially expressed genes in a pathway (pNDE)
// with the abnormal perturbation of the pathway (pPERT),
// measured by propagating the expression changes
// across the pathway topology,
// into one global probability value pG,
// as described in:
//
// Tarca A.L. et al. (2009)
// "A novel signaling pathway impact analysis",
// Bioinformatics 25: 75-82.
package spia

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/method"
	"github.com/kn-bibs/patago/pathway"
	"github.com/kn-bibs/patago/pvalue"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Method is the entry of SPIA
// in the method registry.
// The pathway cache must be assigned
// before running the analysis.
type Method struct {
	// Cache is the local KEGG pathway cache.
	Cache *pathway.Cache

	// Organism is an organism synonym or KEGG code.
	// By default "hsa".
	Organism string

	// Threshold is the p-value cutoff
	// for the identification
	// of differentially expressed genes.
	// By default 0.05.
	Threshold float64

	// NB is the number of bootstrap iterations
	// used to estimate pPERT.
	// By default 2000.
	NB int

	// NormInv selects the normal inversion method
	// for the pNDE and pPERT combination,
	// instead of the default Fisher product.
	NormInv bool

	// CPU is the number of concurrent processes.
	// By default it uses all available processors.
	CPU int

	// Seed of the random number generator.
	// If zero, the current time is used.
	Seed int64
}

func init() {
	method.Register(Method{})
}

// Name implements the method.Method interface.
func (m Method) Name() string { return "spia" }

// Summary implements the method.Method interface.
func (m Method) Summary() string {
	return "signaling pathway impact analysis, combining overrepresentation and topology perturbation"
}

// A Score is the SPIA score of a single pathway.
type Score struct {
	ID     string
	Name   string
	PNDE   float64
	PPERT  float64
	PG     float64
	FDR    float64
	FWER   float64
	Status string
}

// Run implements the method.Method interface.
func (m Method) Run(ex *expr.Experiment) (*method.Result, error) {
	scores, err := m.Scores(ex)
	if err != nil {
		return nil, err
	}

	out := &method.Result{
		Columns: []string{"id", "name", "pNDE", "pPERT", "pG", "FDR", "pGFWER", "status"},
	}
	if len(scores) == 0 {
		out.Notes = "No pathways to analyze."
		return out, nil
	}
	for _, s := range scores {
		err := out.Add(
			s.ID,
			s.Name,
			fmt.Sprintf("%.3f", s.PNDE),
			fmt.Sprintf("%.3f", s.PPERT),
			fmt.Sprintf("%.3f", s.PG),
			fmt.Sprintf("%.3f", s.FDR),
			fmt.Sprintf("%.3f", s.FWER),
			s.Status,
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Scores runs the analysis
// and returns the pathway scores
// sorted by their global probability value.
func (m Method) Scores(ex *expr.Experiment) ([]*Score, error) {
	if m.Cache == nil {
		return nil, errors.New("spia: pathway cache not defined")
	}
	org := m.Organism
	if org == "" {
		org = "hsa"
	}
	code, err := organismCode(org)
	if err != nil {
		return nil, fmt.Errorf("spia: %v", err)
	}
	threshold := m.Threshold
	if threshold == 0 {
		threshold = 0.05
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("spia: threshold %g out of the (0,1) range", threshold)
	}
	nb := m.NB
	if nb == 0 {
		nb = 2000
	}
	cpu := m.CPU
	if cpu == 0 {
		cpu = runtime.GOMAXPROCS(0)
	}
	seed := m.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	de := m.deGenes(ex, threshold)
	if len(de) == 0 {
		return nil, nil
	}
	universe := make(map[string]bool)
	for _, g := range ex.Genes() {
		universe[g.Name()] = true
	}

	ids, err := m.Cache.Pathways(code)
	if err != nil {
		return nil, fmt.Errorf("spia: %v", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("spia: no %q pathways in the cache (run 'patago pathway fetch' first)", code)
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	slices.Sort(sorted)

	combine := pvalue.Fisher
	if m.NormInv {
		combine = pvalue.Normal
	}

	scores := make([]*Score, len(sorted))
	idChan := make(chan int, cpu)
	var wg sync.WaitGroup
	for w := 0; w < cpu; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed + int64(w)))
			for i := range idChan {
				id := sorted[i]
				g, err := m.Cache.Graph(id)
				if err != nil {
					continue
				}
				scores[i] = scorePathway(g, de, universe, nb, combine, rnd)
			}
		}(w)
	}
	for i := range sorted {
		idChan <- i
	}
	close(idChan)
	wg.Wait()

	var out []*Score
	for _, s := range scores {
		if s == nil {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, nil
	}

	ps := make([]float64, len(out))
	for i, s := range out {
		ps[i] = s.PG
	}
	fdr := pvalue.FDR(ps)
	fwer := pvalue.Bonferroni(ps)
	for i, s := range out {
		s.FDR = fdr[i]
		s.FWER = fwer[i]
	}

	slices.SortFunc(out, func(a, b *Score) int {
		if a.PG < b.PG {
			return -1
		}
		if a.PG > b.PG {
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// deGenes returns the log2 fold change
// of the differentially expressed genes,
// keyed by gene name.
func (m Method) deGenes(ex *expr.Experiment, threshold float64) map[string]float64 {
	fc := ex.FoldChange()
	de := make(map[string]float64)
	for g, p := range ex.TTest() {
		if math.IsNaN(p) || p > threshold {
			continue
		}
		v := fc[g].Log2
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		de[g.Name()] = v
	}
	return de
}

// scorePathway computes pNDE, pPERT and pG
// for a single pathway.
// It returns nil when the pathway
// has no differentially expressed gene,
// or when its influence matrix is singular.
func scorePathway(g *pathway.Graph, de map[string]float64, universe map[string]bool, nb int, combine func(p1, p2 float64) float64, rnd *rand.Rand) *Score {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return nil
	}

	// expression change per node;
	// a node stands for the first of its genes
	// measured in the experiment
	deVec := make([]float64, n)
	nde := 0
	for i, node := range nodes {
		for _, name := range strings.Split(node, ",") {
			if v, ok := de[strings.TrimSpace(name)]; ok {
				deVec[i] = v
				nde++
				break
			}
		}
	}
	if nde == 0 {
		return nil
	}

	inUniverse := 0
	overlap := 0
	for _, pg := range g.Genes() {
		if universe[pg] {
			inUniverse++
		}
		if _, ok := de[pg]; ok {
			overlap++
		}
	}
	pNDE := pvalue.HyperGeom(overlap, len(de), inUniverse, len(universe))

	tAraw, ok := netAccumulation(g, nodes, deVec)
	if !ok {
		return nil
	}

	// bootstrap: place the observed expression changes
	// on random nodes of the pathway
	obs := make([]float64, 0, nde)
	for _, v := range deVec {
		if v != 0 {
			obs = append(obs, v)
		}
	}
	null := make([]float64, 0, nb)
	boot := make([]float64, n)
	for b := 0; b < nb; b++ {
		for i := range boot {
			boot[i] = 0
		}
		for i, p := range rnd.Perm(n)[:len(obs)] {
			boot[p] = obs[i]
		}
		v, ok := netAccumulation(g, nodes, boot)
		if !ok {
			continue
		}
		null = append(null, v)
	}

	tA, pPERT := perturbationP(tAraw, null)

	status := "activated"
	if tA <= 0 {
		status = "inhibited"
	}

	return &Score{
		ID:     g.ID,
		Name:   g.Name,
		PNDE:   pNDE,
		PPERT:  pPERT,
		PG:     combine(pNDE, pPERT),
		Status: status,
	}
}

// netAccumulation solves the perturbation system
// PF = dE + M * PF,
// where M is the influence matrix of the pathway
// (interaction weight diluted
// by the downstream degree of the source),
// and returns the total net accumulation
// tA = sum(PF - dE).
// It reports false when the system is singular.
func netAccumulation(g *pathway.Graph, nodes []string, deVec []float64) (float64, bool) {
	n := len(nodes)
	index := make(map[string]int, n)
	for i, nd := range nodes {
		index[nd] = i
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	for _, to := range nodes {
		for _, e := range g.InEdges(to) {
			d := g.OutDegree(e.From)
			if d == 0 {
				continue
			}
			i := index[e.To]
			j := index[e.From]
			a.Set(i, j, a.At(i, j)-pathway.Weight(e.Types)/float64(d))
		}
	}

	var pf mat.VecDense
	if err := pf.SolveVec(a, mat.NewVecDense(n, slices.Clone(deVec))); err != nil {
		return 0, false
	}

	tA := 0.0
	for i := 0; i < n; i++ {
		tA += pf.AtVec(i) - deVec[i]
	}
	return tA, true
}

// perturbationP centers the observed net accumulation
// on the median of the bootstrap null distribution,
// and estimates the probability
// of a centered null value
// at least as extreme as the centered observation,
// doubling the matching tail.
// It returns the centered net accumulation
// and the estimated probability.
func perturbationP(tAraw float64, null []float64) (tA, p float64) {
	if len(null) == 0 {
		return tAraw, 1
	}

	sorted := slices.Clone(null)
	slices.Sort(sorted)
	med := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	tA = tAraw - med
	if tA == 0 {
		return 0, 1
	}
	hits := 0
	for _, v := range null {
		v -= med
		if tA > 0 && v >= tA {
			hits++
		}
		if tA < 0 && v <= tA {
			hits++
		}
	}
	p = 2 * float64(hits) / float64(len(null))
	if p <= 0 {
		p = 1 / (float64(len(null)) * 100)
	}
	if p > 1 {
		p = 1
	}
	return tA, p
}
