// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kn-bibs/patago/expr"
)

var tsvBlob = `# tumour samples
gene	smp-01	smp-02	smp-03
TP53	1.5	2.5	3.5
MYC	3	4	5
`

func TestRead(t *testing.T) {
	c, err := expr.Read(strings.NewReader(tsvBlob), "case", expr.ReadOptions{})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	if c.Name != "case" {
		t.Errorf("collection name: got %q, want %q", c.Name, "case")
	}
	labels := []string{"smp-01", "smp-02", "smp-03"}
	if g := c.Labels(); !reflect.DeepEqual(g, labels) {
		t.Errorf("labels: got %v, want %v", g, labels)
	}

	want := map[string][]float64{
		"TP53": {1.5, 2.5, 3.5},
		"MYC":  {3, 4, 5},
	}
	for n, w := range want {
		if g := c.OfGene(expr.GeneID(n)); !reflect.DeepEqual(g, w) {
			t.Errorf("gene %s: got %v, want %v", n, g, w)
		}
	}
}

func TestReadColumns(t *testing.T) {
	sel, err := expr.ParseSelector("0,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := expr.Read(strings.NewReader(tsvBlob), "case", expr.ReadOptions{Columns: sel})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	labels := []string{"smp-01", "smp-03"}
	if g := c.Labels(); !reflect.DeepEqual(g, labels) {
		t.Errorf("labels: got %v, want %v", g, labels)
	}
	want := []float64{1.5, 3.5}
	if g := c.OfGene(expr.GeneID("TP53")); !reflect.DeepEqual(g, want) {
		t.Errorf("gene TP53: got %v, want %v", g, want)
	}
}

func TestReadSamples(t *testing.T) {
	c, err := expr.Read(strings.NewReader(tsvBlob), "case", expr.ReadOptions{Samples: []string{"smp-02"}})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	labels := []string{"smp-02"}
	if g := c.Labels(); !reflect.DeepEqual(g, labels) {
		t.Errorf("labels: got %v, want %v", g, labels)
	}

	_, err = expr.Read(strings.NewReader(tsvBlob), "case", expr.ReadOptions{Samples: []string{"no-sample"}})
	if err == nil {
		t.Errorf("expecting error for an unknown sample")
	}
}

func TestReadGCT(t *testing.T) {
	blob := "#1.2\n" +
		"2\t2\n" +
		"Name\tDescription\tsmp-01\tsmp-02\n" +
		"TP53\ttumor protein p53\t1.5\t2.5\n" +
		"MYC\tmyc proto-oncogene\t3\t4\n"

	c, err := expr.Read(strings.NewReader(blob), "case", expr.ReadOptions{Format: expr.GCT})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	labels := []string{"smp-01", "smp-02"}
	if g := c.Labels(); !reflect.DeepEqual(g, labels) {
		t.Errorf("labels: got %v, want %v", g, labels)
	}
	g := expr.GeneID("TP53")
	if d := g.Description(); d != "tumor protein p53" {
		t.Errorf("gene TP53: description: got %q", d)
	}
	want := []float64{1.5, 2.5}
	if v := c.OfGene(g); !reflect.DeepEqual(v, want) {
		t.Errorf("gene TP53: got %v, want %v", v, want)
	}
}

func TestReadCSV(t *testing.T) {
	blob := "gene,smp-01,smp-02\nTP53,1.5,2.5\nMYC,3,4\n"

	c, err := expr.Read(strings.NewReader(blob), "case", expr.ReadOptions{Format: expr.CSV})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	want := []float64{3, 4}
	if g := c.OfGene(expr.GeneID("MYC")); !reflect.DeepEqual(g, want) {
		t.Errorf("gene MYC: got %v, want %v", g, want)
	}
}
