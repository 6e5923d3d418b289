// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"

	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/pathway"
)

// Experiment reads the case and control samples
// as defined in a project,
// either from the case and control datasets,
// or from a single data file
// with case-columns and control-columns selections.
func (p *Project) Experiment() (*expr.Experiment, error) {
	if p.Path(Data) != "" {
		if p.Path(Case) != "" || p.Path(Control) != "" {
			return nil, fmt.Errorf("project %q: cannot use data and case/control at once", p.name)
		}
		return p.singleFileExperiment()
	}

	cases, err := p.collection(Case)
	if err != nil {
		return nil, err
	}
	control, err := p.collection(Control)
	if err != nil {
		return nil, err
	}
	return expr.NewExperiment(cases, control)
}

func (p *Project) collection(set Dataset) (*expr.Collection, error) {
	files := p.Files(set)
	if len(files) == 0 {
		return nil, fmt.Errorf("%s samples not defined in project %q", set, p.name)
	}

	c := expr.NewCollection(string(set))
	for _, f := range files {
		fc, err := expr.ReadFile(f, string(set), expr.ReadOptions{})
		if err != nil {
			return nil, err
		}
		c.Add(fc)
	}
	return c, nil
}

func (p *Project) singleFileExperiment() (*expr.Experiment, error) {
	name := p.Path(Data)

	sel := make(map[Dataset]expr.Selector, 2)
	for _, set := range []Dataset{CaseColumns, ControlColumns} {
		v := p.Path(set)
		if v == "" {
			return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
		}
		s, err := expr.ParseSelector(v)
		if err != nil {
			return nil, fmt.Errorf("project %q: %s: %v", p.name, set, err)
		}
		sel[set] = s
	}

	cases, err := expr.ReadFile(name, string(Case), expr.ReadOptions{Columns: sel[CaseColumns]})
	if err != nil {
		return nil, err
	}
	control, err := expr.ReadFile(name, string(Control), expr.ReadOptions{Columns: sel[ControlColumns]})
	if err != nil {
		return nil, err
	}
	return expr.NewExperiment(cases, control)
}

// GeneSets reads the gene set database
// as defined in a project.
func (p *Project) GeneSets() (*geneset.Collection, error) {
	name := p.Path(GeneSets)
	if name == "" {
		return nil, fmt.Errorf("gene sets not defined in project %q", p.name)
	}
	return geneset.ReadFile(name)
}

// PathwayCache opens the KEGG pathway cache
// as defined in a project.
// It is the caller's responsibility
// to close the cache.
func (p *Project) PathwayCache() (*pathway.Cache, error) {
	name := p.Path(Pathways)
	if name == "" {
		return nil, fmt.Errorf("pathway cache not defined in project %q", p.name)
	}
	return pathway.OpenCache(name)
}
