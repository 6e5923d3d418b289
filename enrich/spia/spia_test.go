// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package spia

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kn-bibs/patago/pathway"
	"github.com/kn-bibs/patago/pvalue"
)

func TestOrganismCode(t *testing.T) {
	tests := map[string]string{
		"human":        "hsa",
		"Homo sapiens": "hsa",
		"HSA":          "hsa",
		"mouse":        "mmu",
		"Dm":           "dme",
	}
	for org, want := range tests {
		code, err := organismCode(org)
		if err != nil {
			t.Errorf("organism %q: unexpected error: %v", org, err)
			continue
		}
		if code != want {
			t.Errorf("organism %q: got %q, want %q", org, code, want)
		}
	}

	if _, err := organismCode("Tyrannosaurus rex"); err == nil {
		t.Errorf("expecting error for an unknown organism")
	}
}

func TestNetAccumulation(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")

	// PF(A) = dE(A), PF(B) = dE(B) + PF(A)
	tA, ok := netAccumulation(g, g.Nodes(), []float64{1, 0})
	if !ok {
		t.Fatalf("unexpected singular system")
	}
	if math.Abs(tA-1) > 1e-10 {
		t.Errorf("activation: got %.6f, want 1", tA)
	}

	gi := pathway.NewGraph("hsa00002", "test pathway")
	gi.AddEdge("A", "B", "inhibition")
	tA, ok = netAccumulation(gi, gi.Nodes(), []float64{1, 0})
	if !ok {
		t.Fatalf("unexpected singular system")
	}
	if math.Abs(tA+1) > 1e-10 {
		t.Errorf("inhibition: got %.6f, want -1", tA)
	}
}

func TestNetAccumulationSingular(t *testing.T) {
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")
	g.AddEdge("B", "A", "activation")

	if _, ok := netAccumulation(g, g.Nodes(), []float64{1, 0}); ok {
		t.Errorf("expecting a singular system for a perfect feedback loop")
	}
}

func TestPerturbationP(t *testing.T) {
	// upper tail
	tA, p := perturbationP(1, []float64{-1, 0, 1})
	if math.Abs(tA-1) > 1e-10 {
		t.Errorf("upper tail: got tA = %.6f, want 1", tA)
	}
	if math.Abs(p-2.0/3) > 1e-10 {
		t.Errorf("upper tail: got %.6f, want %.6f", p, 2.0/3)
	}

	// lower tail
	tA, p = perturbationP(-1, []float64{-1, 0, 1})
	if math.Abs(tA+1) > 1e-10 {
		t.Errorf("lower tail: got tA = %.6f, want -1", tA)
	}
	if math.Abs(p-2.0/3) > 1e-10 {
		t.Errorf("lower tail: got %.6f, want %.6f", p, 2.0/3)
	}

	// observation outside the whole null
	if _, p := perturbationP(5, []float64{0, 0, 0, 0}); math.Abs(p-0.0025) > 1e-10 {
		t.Errorf("extreme: got %.6f, want 0.0025", p)
	}

	// observation on the null median
	if _, p := perturbationP(0, []float64{-1, 0, 1}); p != 1 {
		t.Errorf("median: got %.6f, want 1", p)
	}

	// doubled tail capped at 1
	if _, p := perturbationP(0, []float64{-2, -1, 1, 2}); p != 1 {
		t.Errorf("capped: got %.6f, want 1", p)
	}

	if tA, p := perturbationP(1, nil); tA != 1 || p != 1 {
		t.Errorf("empty null: got tA = %.6f, p = %.6f, want 1, 1", tA, p)
	}
}

func TestScorePathwayStatus(t *testing.T) {
	// A change on the last node of a chain does not propagate,
	// so the observed perturbation is below the bootstrap median
	// and the pathway must be reported as inhibited.
	g := pathway.NewGraph("hsa00001", "test pathway")
	g.AddEdge("A", "B", "activation")
	g.AddEdge("B", "C", "activation")

	de := map[string]float64{"C": 1}
	universe := map[string]bool{"A": true, "B": true, "C": true}
	rnd := rand.New(rand.NewSource(42))

	s := scorePathway(g, de, universe, 2000, pvalue.Fisher, rnd)
	if s == nil {
		t.Fatalf("expecting a pathway score")
	}
	if s.Status != "inhibited" {
		t.Errorf("status: got %q, want %q", s.Status, "inhibited")
	}
	if math.Abs(s.PPERT-2.0/3) > 0.05 {
		t.Errorf("pPERT: got %.6f, want near %.6f", s.PPERT, 2.0/3)
	}
}
