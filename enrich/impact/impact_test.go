// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package impact_test

import (
	"math"
	"testing"

	"github.com/kn-bibs/patago/enrich/impact"
	"github.com/kn-bibs/patago/pathway"
)

func TestPerturbationFactor(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")

	fc := map[string]float64{"A": 1, "B": 0.5}

	if pf := impact.PerturbationFactor(g, "A", fc); math.Abs(pf-1) > 1e-10 {
		t.Errorf("node A: got %.6f, want 1", pf)
	}
	// B gets its own change plus the one propagated from A
	if pf := impact.PerturbationFactor(g, "B", fc); math.Abs(pf-1.5) > 1e-10 {
		t.Errorf("node B: got %.6f, want 1.5", pf)
	}
}

func TestPerturbationFactorInhibition(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "inhibition")

	fc := map[string]float64{"A": 1, "B": 0.5}
	if pf := impact.PerturbationFactor(g, "B", fc); math.Abs(pf+0.5) > 1e-10 {
		t.Errorf("node B: got %.6f, want -0.5", pf)
	}
}

func TestPerturbationFactorDilution(t *testing.T) {
	// A regulates two targets, so its influence is split
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")
	g.AddEdge("A", "C", "activation")

	fc := map[string]float64{"A": 2, "B": 0, "C": 0}
	if pf := impact.PerturbationFactor(g, "B", fc); math.Abs(pf-1) > 1e-10 {
		t.Errorf("node B: got %.6f, want 1", pf)
	}
}

func TestPerturbationFactorCycle(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")
	g.AddEdge("B", "A", "activation")

	fc := map[string]float64{"A": 1, "B": 1}
	if pf := impact.PerturbationFactor(g, "A", fc); math.Abs(pf-2) > 1e-10 {
		t.Errorf("node A: got %.6f, want 2", pf)
	}
}

func TestImpactFactor(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")

	fc := map[string]float64{"A": 2, "B": 1}
	degs := map[string]bool{"A": true}
	universe := map[string]bool{"A": true, "B": true, "C": true, "D": true}

	impactFactor, p, ok := impact.ImpactFactor(g, fc, degs, universe, 1.5)
	if !ok {
		t.Fatalf("expecting an impact factor")
	}
	// one DEG drawn among two pathway genes from a universe
	// of four genes with one DEG
	if math.Abs(p-0.5) > 1e-10 {
		t.Errorf("p-value: got %.6f, want 0.5", p)
	}
	// log2(0.5) + (|PF(A)| + |PF(B)|) / 1 * 1.5
	want := -1 + (2+3)*1.5
	if math.Abs(impactFactor-want) > 1e-10 {
		t.Errorf("impact factor: got %.6f, want %.6f", impactFactor, want)
	}
}

func TestImpactFactorNoOverlap(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")

	fc := map[string]float64{"A": 2, "B": 1}
	degs := map[string]bool{"X": true}
	universe := map[string]bool{"A": true, "B": true, "X": true}

	if _, _, ok := impact.ImpactFactor(g, fc, degs, universe, 1); ok {
		t.Errorf("expecting no impact factor without overlap")
	}
}
