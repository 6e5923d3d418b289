// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/kn-bibs/patago/project"
)

func TestProject(t *testing.T) {
	p := project.New()

	p.Add(project.Case, "tumour-1.tsv,tumour-2.tsv")
	p.Add(project.Control, "healthy.tsv")
	p.Add(project.GeneSets, "h.all.v6.1.symbols.gmt.gz")
	p.Add(project.Pathways, "kegg-cache.db")

	testProject(t, "project", p)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("unable to write %q: %v", name, err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("unable to read %q: %v", name, err)
	}
	testProject(t, "read", np)
}

func testProject(t testing.TB, name string, p *project.Project) {
	t.Helper()

	sets := []project.Dataset{
		project.Case,
		project.Control,
		project.GeneSets,
		project.Pathways,
	}
	if g := p.Sets(); !reflect.DeepEqual(g, sets) {
		t.Errorf("%s: datasets: got %v, want %v", name, g, sets)
	}

	paths := map[project.Dataset]string{
		project.Case:     "tumour-1.tsv,tumour-2.tsv",
		project.Control:  "healthy.tsv",
		project.GeneSets: "h.all.v6.1.symbols.gmt.gz",
		project.Pathways: "kegg-cache.db",
	}
	for s, w := range paths {
		if g := p.Path(s); g != w {
			t.Errorf("%s: dataset %s: got %q, want %q", name, s, g, w)
		}
	}

	files := []string{"tumour-1.tsv", "tumour-2.tsv"}
	if g := p.Files(project.Case); !reflect.DeepEqual(g, files) {
		t.Errorf("%s: case files: got %v, want %v", name, g, files)
	}
}

func TestProjectAdd(t *testing.T) {
	p := project.New()

	p.Add(project.Data, "experiment.gct")
	if prev := p.Add(project.Data, "all-samples.tsv"); prev != "experiment.gct" {
		t.Errorf("add: got previous value %q, want %q", prev, "experiment.gct")
	}
	if g := p.Path(project.Data); g != "all-samples.tsv" {
		t.Errorf("add: got %q, want %q", g, "all-samples.tsv")
	}

	p.Add(project.Data, "")
	if g := p.Path(project.Data); g != "" {
		t.Errorf("remove: dataset still defined: %q", g)
	}
	if g := p.Sets(); len(g) != 0 {
		t.Errorf("remove: got datasets %v, want none", g)
	}
}
