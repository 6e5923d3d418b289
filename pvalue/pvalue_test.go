// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pvalue_test

import (
	"math"
	"testing"

	"github.com/kn-bibs/patago/pvalue"
)

func equalFloats(t testing.TB, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d values, want %d", name, len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s: value %d: got %.6f, want %.6f", name, i, got[i], want[i])
		}
	}
}

func TestFDR(t *testing.T) {
	// the adjusted values keep the input order
	ps := []float64{0.01, 0.04, 0.03, 0.005, 0.02}
	want := []float64{0.025, 0.04, 0.0375, 0.025, 0.033333}
	equalFloats(t, "fdr", pvalue.FDR(ps), want, 1e-5)

	flat := []float64{0.01, 0.04, 0.03, 0.02}
	equalFloats(t, "fdr-flat", pvalue.FDR(flat), []float64{0.04, 0.04, 0.04, 0.04}, 1e-10)

	if g := pvalue.FDR(nil); g != nil {
		t.Errorf("fdr: empty input: got %v", g)
	}
}

func TestBonferroni(t *testing.T) {
	ps := []float64{0.01, 0.3, 0.5}
	want := []float64{0.03, 0.9, 1}
	equalFloats(t, "bonferroni", pvalue.Bonferroni(ps), want, 1e-10)
}

func TestFisher(t *testing.T) {
	tests := map[string]struct {
		p1, p2 float64
		want   float64
	}{
		"ones":   {p1: 1, p2: 1, want: 1},
		"halves": {p1: 0.5, p2: 0.5, want: 0.596574},
		"zero":   {p1: 0, p2: 0.5, want: 0},
	}
	for name, test := range tests {
		if g := pvalue.Fisher(test.p1, test.p2); math.Abs(g-test.want) > 1e-5 {
			t.Errorf("%s: got %.6f, want %.6f", name, g, test.want)
		}
	}
}

func TestNormal(t *testing.T) {
	if g := pvalue.Normal(0.5, 0.5); math.Abs(g-0.5) > 1e-10 {
		t.Errorf("normal inversion: got %.6f, want 0.5", g)
	}
	if g := pvalue.Normal(0.01, 0.01); g >= 0.01 {
		t.Errorf("normal inversion: got %.6f, want a value below 0.01", g)
	}
}

func TestHyperGeom(t *testing.T) {
	tests := map[string]struct {
		k, succ, n, total int
		want              float64
	}{
		"at least one": {k: 1, succ: 2, n: 2, total: 4, want: 5.0 / 6},
		"all":          {k: 2, succ: 2, n: 2, total: 4, want: 1.0 / 6},
		"none":         {k: 0, succ: 2, n: 2, total: 4, want: 1},
		"impossible":   {k: 3, succ: 2, n: 2, total: 4, want: 0},
	}
	for name, test := range tests {
		g := pvalue.HyperGeom(test.k, test.succ, test.n, test.total)
		if math.Abs(g-test.want) > 1e-10 {
			t.Errorf("%s: got %.6f, want %.6f", name, g, test.want)
		}
	}
}
