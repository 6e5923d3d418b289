// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geneset_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
)

var gmtBlob = "HALLMARK_APOPTOSIS\thttp://example.org/HALLMARK_APOPTOSIS\tCASP3\tCASP9\tFAS\n" +
	"HALLMARK_HYPOXIA\thttp://example.org/HALLMARK_HYPOXIA\tVEGFA\tSLC2A1\n"

func TestRead(t *testing.T) {
	c, err := geneset.Read(strings.NewReader(gmtBlob), "hallmark")
	if err != nil {
		t.Fatalf("unable to read gene sets: %v", err)
	}

	if c.Label != "hallmark" {
		t.Errorf("label: got %q, want %q", c.Label, "hallmark")
	}
	if c.Len() != 2 {
		t.Fatalf("got %d gene sets, want 2", c.Len())
	}

	names := []string{"HALLMARK_APOPTOSIS", "HALLMARK_HYPOXIA"}
	for i, s := range c.Sets() {
		if s.Name != names[i] {
			t.Errorf("set %d: got %q, want %q", i, s.Name, names[i])
		}
	}

	s := c.Set("HALLMARK_APOPTOSIS")
	if s == nil {
		t.Fatalf("set %q not found", "HALLMARK_APOPTOSIS")
	}
	if s.Len() != 3 {
		t.Errorf("set %q: got %d genes, want 3", s.Name, s.Len())
	}
	if !s.Contains(expr.GeneID("CASP3")) {
		t.Errorf("set %q: expecting gene %q", s.Name, "CASP3")
	}
	if s.Contains(expr.GeneID("VEGFA")) {
		t.Errorf("set %q: unexpected gene %q", s.Name, "VEGFA")
	}
}

func TestRestrictTo(t *testing.T) {
	s := geneset.New("test-set", "", []string{"CASP3", "CASP9", "FAS"})

	universe := []expr.Gene{expr.GeneID("CASP3"), expr.GeneID("FAS"), expr.GeneID("MYC")}
	if removed := s.RestrictTo(universe); removed != 1 {
		t.Errorf("restrict: got %d removed genes, want 1", removed)
	}

	want := []expr.Gene{expr.GeneID("CASP3"), expr.GeneID("FAS")}
	if g := s.Genes(); !reflect.DeepEqual(g, want) {
		t.Errorf("restrict: got %v, want %v", g, want)
	}
}

func TestReadError(t *testing.T) {
	blobs := map[string]string{
		"empty":      "",
		"few fields": "a-set\thttp://example.org\n",
	}
	for name, blob := range blobs {
		if _, err := geneset.Read(strings.NewReader(blob), "x"); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestRemotePath(t *testing.T) {
	want := "6.1/h.all.v6.1.symbols.gmt.gz"
	if g := geneset.RemotePath("h.all", "6.1", "symbols"); g != want {
		t.Errorf("remote path: got %q, want %q", g, want)
	}
}
