// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pathway_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/kn-bibs/patago/pathway"
)

var kgmlBlob = `<?xml version="1.0"?>
<pathway name="path:hsa00001" org="hsa" number="00001" title="test pathway">
	<entry id="1" name="hsa:7157" type="gene">
		<graphics name="TP53..." type="rectangle"/>
	</entry>
	<entry id="2" name="hsa:4609 hsa:4613" type="gene">
		<graphics name="MYC, MYCN" type="rectangle"/>
	</entry>
	<entry id="3" name="cpd:C00001" type="compound">
		<graphics name="H2O" type="circle"/>
	</entry>
	<relation entry1="1" entry2="2" type="PPrel">
		<subtype name="activation" value="--&gt;"/>
	</relation>
	<relation entry1="2" entry2="3" type="PCrel"/>
</pathway>
`

func TestParseKGML(t *testing.T) {
	g, err := pathway.ParseKGML("hsa00001", "", []byte(kgmlBlob))
	if err != nil {
		t.Fatalf("unable to parse KGML: %v", err)
	}

	if g.ID != "hsa00001" {
		t.Errorf("pathway ID: got %q, want %q", g.ID, "hsa00001")
	}
	if g.Name != "test pathway" {
		t.Errorf("pathway name: got %q, want %q", g.Name, "test pathway")
	}

	nodes := []string{"MYC,MYCN", "TP53"}
	if n := g.Nodes(); !reflect.DeepEqual(n, nodes) {
		t.Errorf("nodes: got %v, want %v", n, nodes)
	}
	genes := []string{"MYC", "MYCN", "TP53"}
	if n := g.Genes(); !reflect.DeepEqual(n, genes) {
		t.Errorf("genes: got %v, want %v", n, genes)
	}

	// the relation with the compound entry is dropped
	if n := g.NumEdges(); n != 1 {
		t.Fatalf("got %d edges, want 1", n)
	}
	es := g.InEdges("MYC,MYCN")
	if len(es) != 1 {
		t.Fatalf("got %d in-edges, want 1", len(es))
	}
	want := pathway.Edge{From: "TP53", To: "MYC,MYCN", Types: []string{"activation"}}
	if !reflect.DeepEqual(es[0], want) {
		t.Errorf("edge: got %v, want %v", es[0], want)
	}
	if d := g.OutDegree("TP53"); d != 1 {
		t.Errorf("out degree: got %d, want 1", d)
	}
}

func TestWeight(t *testing.T) {
	tests := map[string]struct {
		types []string
		want  float64
	}{
		"activation": {types: []string{"activation"}, want: 1},
		"inhibition": {types: []string{"inhibition"}, want: -1},
		"mixed":      {types: []string{"activation", "inhibition"}, want: 0},
		"unknown":    {types: []string{"no-such-type"}, want: 0},
		"none":       {types: nil, want: 0},
	}
	for name, test := range tests {
		if g := pathway.Weight(test.types); math.Abs(g-test.want) > 1e-10 {
			t.Errorf("%s: got %.3f, want %.3f", name, g, test.want)
		}
	}
}
