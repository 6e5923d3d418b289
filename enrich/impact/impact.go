// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package impact implements Impact Analysis,
// a pathway analysis method that considers
// the magnitude of each gene's expression change,
// its position in the pathway topology,
// and the gene-gene interactions,
// as described in:
//
// Draghici S. et al. (2007)
// "A systems biology approach for pathway level analysis",
// Genome Res. 17: 1537-1545.
package impact

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/method"
	"github.com/kn-bibs/patago/pathway"
	"github.com/kn-bibs/patago/pvalue"
)

// maxImpact is the impact factor assigned
// to pathways with a null overrepresentation p-value.
const maxImpact = 10e200

// Method is the entry of Impact Analysis
// in the method registry.
// The pathway cache must be assigned
// before running the analysis.
type Method struct {
	// Cache is the local KEGG pathway cache.
	Cache *pathway.Cache

	// Organism is the organism name or KEGG code.
	// By default "Homo sapiens".
	Organism string

	// Threshold is the p-value cutoff
	// for the identification
	// of differentially expressed genes.
	// By default 0.05.
	Threshold float64

	// DEGs is an optional list
	// of differentially expressed gene identifiers,
	// if they were identified beforehand.
	DEGs []string
}

func init() {
	method.Register(Method{})
}

// Name implements the method.Method interface.
func (m Method) Name() string { return "impact" }

// Summary implements the method.Method interface.
func (m Method) Summary() string {
	return "impact analysis, a topology aware pathway scoring over KEGG"
}

type iaPathway struct {
	name       string
	impact     float64
	p          float64
	fdr        float64
	bonferroni float64
}

// Run implements the method.Method interface.
//
// Pathways are scored in four steps:
// fold change calculation,
// identification of the differentially expressed genes,
// search of the cached KEGG pathways
// containing at least one of them,
// and the impact factor calculation,
// followed by the FDR and Bonferroni corrections.
func (m Method) Run(ex *expr.Experiment) (*method.Result, error) {
	if m.Cache == nil {
		return nil, errors.New("impact: pathway cache not defined")
	}
	org := m.Organism
	if org == "" {
		org = "Homo sapiens"
	}
	threshold := m.Threshold
	if threshold == 0 {
		threshold = 0.05
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("impact: threshold %g out of the (0,1) range", threshold)
	}

	code, err := m.Cache.OrganismCode(org)
	if err != nil {
		return nil, fmt.Errorf("impact: %v (run 'patago pathway fetch' first)", err)
	}

	fc := foldChangeByName(ex)
	degs, err := m.selectDEGs(ex, threshold, fc)
	if err != nil {
		return nil, err
	}

	out := &method.Result{
		Columns: []string{"name", "IF", "p-value", "FDR", "Bonferroni"},
	}
	if len(degs) == 0 {
		out.Notes = "No differentially expressed genes."
		return out, nil
	}

	universe := make(map[string]bool)
	for _, g := range ex.Genes() {
		universe[g.Name()] = true
	}

	candidates, err := m.candidatePathways(code, degs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		out.Notes = "No pathways found in the cache."
		return out, nil
	}

	meanFC := meanAbsFoldChange(fc)

	var paths []iaPathway
	for _, id := range candidates {
		g, err := m.Cache.Graph(id)
		if err != nil {
			return nil, fmt.Errorf("impact: %v", err)
		}
		impact, p, ok := ImpactFactor(g, fc, degs, universe, meanFC)
		if !ok {
			continue
		}
		paths = append(paths, iaPathway{name: g.Name, impact: impact, p: p})
	}

	ps := make([]float64, len(paths))
	for i, p := range paths {
		ps[i] = p.p
	}
	fdr := pvalue.FDR(ps)
	bonferroni := pvalue.Bonferroni(ps)
	for i := range paths {
		paths[i].fdr = fdr[i]
		paths[i].bonferroni = bonferroni[i]
	}

	slices.SortFunc(paths, func(a, b iaPathway) int {
		fa, fb := a.impact, b.impact
		if math.IsNaN(fa) {
			fa = 0
		}
		if math.IsNaN(fb) {
			fb = 0
		}
		if fa > fb {
			return -1
		}
		if fa < fb {
			return 1
		}
		return 0
	})

	for _, p := range paths {
		err := out.Add(
			p.name,
			fmt.Sprintf("%.3f", p.impact),
			fmt.Sprintf("%.3f", p.p),
			fmt.Sprintf("%.3f", p.fdr),
			fmt.Sprintf("%.3f", p.bonferroni),
		)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// foldChangeByName returns the fold change ratio
// keyed by gene name,
// dropping the genes for which the fold change
// cannot be calculated.
func foldChangeByName(ex *expr.Experiment) map[string]float64 {
	fc := make(map[string]float64)
	var drop []expr.Gene
	for g, v := range ex.FoldChange() {
		if math.IsNaN(v.Ratio) || math.IsInf(v.Ratio, 0) {
			drop = append(drop, g)
			continue
		}
		fc[g.Name()] = v.Ratio
	}
	ex.ExcludeGenes(drop)
	return fc
}

func (m Method) selectDEGs(ex *expr.Experiment, threshold float64, fc map[string]float64) (map[string]bool, error) {
	degs := make(map[string]bool)
	if len(m.DEGs) > 0 {
		for _, n := range m.DEGs {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			degs[n] = true
		}
		return degs, nil
	}

	for g, p := range ex.TTest() {
		if math.IsNaN(p) {
			continue
		}
		if p <= threshold {
			degs[g.Name()] = true
		}
	}
	return degs, nil
}

// candidatePathways returns the IDs
// of the cached pathways
// containing at least one
// differentially expressed gene.
func (m Method) candidatePathways(org string, degs map[string]bool) ([]string, error) {
	seen := make(map[string]bool)
	fetched := false
	for g := range degs {
		ids, ok, err := m.Cache.PathwaysByGene(org, g)
		if err != nil {
			return nil, fmt.Errorf("impact: %v", err)
		}
		if !ok {
			continue
		}
		fetched = true
		for _, id := range ids {
			seen[id] = true
		}
	}
	if !fetched {
		return nil, errors.New("impact: no experiment genes in the pathway cache (run 'patago pathway fetch' first)")
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func meanAbsFoldChange(fc map[string]float64) float64 {
	if len(fc) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range fc {
		sum += math.Abs(v)
	}
	return sum / float64(len(fc))
}

// ImpactFactor returns the impact factor
// and the overrepresentation p-value of a pathway.
// It reports false when the pathway
// has no differentially expressed gene.
//
// The impact factor combines
// the probability of the observed
// differentially expressed gene overlap
// with the perturbation
// propagated through the pathway topology:
//
//	IF = log2(p) + (sum |PF(g)| / Nde(path)) * mean |FC|
func ImpactFactor(g *pathway.Graph, fc map[string]float64, degs, universe map[string]bool, meanFC float64) (impact, p float64, ok bool) {
	pathGenes := g.Genes()

	overlap := 0
	inUniverse := 0
	for _, pg := range pathGenes {
		if degs[pg] {
			overlap++
		}
		if universe[pg] {
			inUniverse++
		}
	}
	if overlap == 0 {
		return 0, 0, false
	}

	p = pvalue.HyperGeom(overlap, len(degs), inUniverse, len(universe))
	if p == 0 {
		return maxImpact, p, true
	}

	sumPF := 0.0
	for _, n := range g.Nodes() {
		sumPF += math.Abs(PerturbationFactor(g, n, fc))
	}

	impact = math.Log2(p) + sumPF/float64(overlap)*meanFC
	return impact, p, true
}

// PerturbationFactor returns the perturbation factor of a node:
// its own expression change,
// plus the perturbation of the genes directly upstream,
// weighted by the interaction type
// and diluted by the number
// of their downstream interactions.
func PerturbationFactor(g *pathway.Graph, node string, fc map[string]float64) float64 {
	return perturbation(g, node, fc, make(map[string]bool))
}

func perturbation(g *pathway.Graph, node string, fc map[string]float64, visited map[string]bool) float64 {
	pf := 0.0
	for _, name := range strings.Split(node, ",") {
		if v, ok := fc[strings.TrimSpace(name)]; ok {
			pf = v
			break
		}
	}

	for _, e := range g.InEdges(node) {
		if visited[e.From] {
			continue
		}
		d := g.OutDegree(e.From)
		if d == 0 {
			continue
		}
		beta := pathway.Weight(e.Types)

		up := make(map[string]bool, len(visited)+1)
		for v := range visited {
			up[v] = true
		}
		up[node] = true

		pf += perturbation(g, e.From, fc, up) * beta / float64(d)
	}
	return pf
}
