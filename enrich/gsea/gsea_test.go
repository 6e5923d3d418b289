// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gsea_test

import (
	"math"
	"testing"

	"github.com/kn-bibs/patago/enrich/gsea"
	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
)

func TestRankedList(t *testing.T) {
	cases := expr.NewCollection("case")
	cases.Samples = append(cases.Samples,
		expr.NewSample("t1", map[string]float64{"rkA": 4, "rkB": 1, "rkC": 2}),
		expr.NewSample("t2", map[string]float64{"rkA": 6, "rkB": 1, "rkC": 4}),
	)
	control := expr.NewCollection("control")
	control.Samples = append(control.Samples,
		expr.NewSample("c1", map[string]float64{"rkA": 1, "rkB": 3, "rkC": 2}),
		expr.NewSample("c2", map[string]float64{"rkA": 3, "rkB": 5, "rkC": 4}),
	)

	ranked := gsea.RankedList(cases, control, expr.Difference)
	want := []string{"rkA", "rkC", "rkB"}
	for i, r := range ranked {
		if r.Gene.Name() != want[i] {
			t.Errorf("rank %d: got %q, want %q", i, r.Gene.Name(), want[i])
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("rank %d: scores out of order: %v", i, ranked)
		}
	}
}

func rankedFixture() []gsea.RankedGene {
	return []gsea.RankedGene{
		{Gene: expr.GeneID("rsA"), Score: 2},
		{Gene: expr.GeneID("rsB"), Score: 1},
		{Gene: expr.GeneID("rsC"), Score: -1},
		{Gene: expr.GeneID("rsD"), Score: -2},
	}
}

func TestRunningSum(t *testing.T) {
	ranked := rankedFixture()

	top := geneset.New("top", "", []string{"rsA"})
	want := []float64{1, 2.0 / 3, 1.0 / 3, 0}
	for i, v := range gsea.RunningSum(ranked, top, 1) {
		if math.Abs(v-want[i]) > 1e-10 {
			t.Errorf("top set: position %d: got %.6f, want %.6f", i, v, want[i])
		}
	}
	if es := gsea.EnrichmentScore(ranked, top, 1); math.Abs(es-1) > 1e-10 {
		t.Errorf("top set: ES: got %.6f, want 1", es)
	}

	bottom := geneset.New("bottom", "", []string{"rsD"})
	want = []float64{-1.0 / 3, -2.0 / 3, -1, 0}
	for i, v := range gsea.RunningSum(ranked, bottom, 1) {
		if math.Abs(v-want[i]) > 1e-10 {
			t.Errorf("bottom set: position %d: got %.6f, want %.6f", i, v, want[i])
		}
	}
	if es := gsea.EnrichmentScore(ranked, bottom, 1); math.Abs(es+1) > 1e-10 {
		t.Errorf("bottom set: ES: got %.6f, want -1", es)
	}
}

func TestRunningSumDegenerate(t *testing.T) {
	ranked := rankedFixture()

	all := geneset.New("all", "", []string{"rsA", "rsB", "rsC", "rsD"})
	for i, v := range gsea.RunningSum(ranked, all, 1) {
		if v != 0 {
			t.Errorf("degenerate set: position %d: got %.6f, want 0", i, v)
		}
	}

	none := geneset.New("none", "", []string{"other"})
	if es := gsea.EnrichmentScore(ranked, none, 1); es != 0 {
		t.Errorf("empty overlap: ES: got %.6f, want 0", es)
	}
}

func TestRun(t *testing.T) {
	cases := expr.NewCollection("case")
	control := expr.NewCollection("control")
	data := map[string][]float64{
		"runA": {5, 6, 7, 1, 2, 3},
		"runB": {4, 5, 6, 1, 2, 3},
		"runC": {2, 3, 4, 2, 3, 4},
		"runD": {1, 2, 3, 2, 3, 4},
		"runE": {1, 2, 3, 4, 5, 6},
		"runF": {2, 3, 4, 5, 6, 7},
	}
	for i, n := range []string{"s1", "s2", "s3"} {
		smp := map[string]float64{}
		for g, vs := range data {
			smp[g] = vs[i]
		}
		cases.Samples = append(cases.Samples, expr.NewSample(n, smp))
	}
	for i, n := range []string{"c1", "c2", "c3"} {
		smp := map[string]float64{}
		for g, vs := range data {
			smp[g] = vs[i+3]
		}
		control.Samples = append(control.Samples, expr.NewSample(n, smp))
	}
	ex, err := expr.NewExperiment(cases, control)
	if err != nil {
		t.Fatalf("unable to create experiment: %v", err)
	}

	db := geneset.NewCollection("test")
	db.Add(geneset.New("up-sets", "", []string{"runA", "runB"}))
	db.Add(geneset.New("down-sets", "", []string{"runE", "runF"}))

	rs, err := gsea.Run(ex, db, gsea.Options{
		Permutations: 200,
		Seed:         42,
		CPU:          2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != db.Len() {
		t.Fatalf("got %d results, want %d", len(rs), db.Len())
	}

	byName := make(map[string]*gsea.Result, len(rs))
	for _, r := range rs {
		byName[r.Name] = r
		if r.P < 0 || r.P > 1 {
			t.Errorf("set %q: p-value out of range: %.6f", r.Name, r.P)
		}
		if math.Abs(r.ES) > 1 {
			t.Errorf("set %q: ES out of range: %.6f", r.Name, r.ES)
		}
	}
	if r := byName["up-sets"]; r.ES <= 0 {
		t.Errorf("set %q: got ES %.6f, want a positive score", r.Name, r.ES)
	}
	if r := byName["down-sets"]; r.ES >= 0 {
		t.Errorf("set %q: got ES %.6f, want a negative score", r.Name, r.ES)
	}
}
