// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"slices"
)

// A Collection is a set of samples
// of a common origin or characteristic.
//
// An example collection can be
// (Breast_cancer_sample_1, Breast_cancer_sample_2)
// named "breast cancer":
// samples from different donors,
// but all of them from a breast tumour.
// Another example are the controls of an experiment.
type Collection struct {
	Name    string
	Samples []*Sample
}

// NewCollection creates a new empty collection.
func NewCollection(name string) *Collection {
	return &Collection{Name: name}
}

// Labels returns the names of the samples in the collection.
func (c *Collection) Labels() []string {
	ls := make([]string, 0, len(c.Samples))
	for _, s := range c.Samples {
		ls = append(ls, s.Name)
	}
	return ls
}

// Genes returns all genes present in the collection,
// sorted by their ID.
// All samples of a collection are expected
// to share the same gene universe.
func (c *Collection) Genes() []Gene {
	if len(c.Samples) == 0 {
		return nil
	}
	return c.Samples[0].Genes()
}

// OfGene returns the expression values of a gene,
// one per sample,
// in the order of the samples.
func (c *Collection) OfGene(g Gene) []float64 {
	vs := make([]float64, 0, len(c.Samples))
	for _, s := range c.Samples {
		vs = append(vs, s.Data[g])
	}
	return vs
}

// Add appends the samples of another collection,
// keeping the name of the receiver.
func (c *Collection) Add(other *Collection) {
	c.Samples = append(c.Samples, other.Samples...)
}

// ExcludeGenes removes the indicated genes
// from every sample of the collection.
func (c *Collection) ExcludeGenes(gs []Gene) {
	for _, s := range c.Samples {
		s.ExcludeGenes(gs)
	}
}

// An Experiment stores all user's experiment data:
// the case samples and the control samples.
type Experiment struct {
	Case    *Collection
	Control *Collection
}

// NewExperiment creates an experiment
// from a case and a control collection.
func NewExperiment(cases, control *Collection) (*Experiment, error) {
	if len(cases.Samples) == 0 {
		return nil, fmt.Errorf("experiment: case collection %q is empty", cases.Name)
	}
	if len(control.Samples) == 0 {
		return nil, fmt.Errorf("experiment: control collection %q is empty", control.Name)
	}
	return &Experiment{
		Case:    cases,
		Control: control,
	}, nil
}

// Genes returns all genes of the experiment,
// sorted by their ID.
func (ex *Experiment) Genes() []Gene {
	gs := make(map[Gene]bool)
	for _, c := range []*Collection{ex.Case, ex.Control} {
		for _, s := range c.Samples {
			for g := range s.Data {
				gs[g] = true
			}
		}
	}

	all := make([]Gene, 0, len(gs))
	for g := range gs {
		all = append(all, g)
	}
	slices.Sort(all)
	return all
}

// ExcludeGenes removes the indicated genes
// from every sample of the experiment.
func (ex *Experiment) ExcludeGenes(gs []Gene) {
	ex.Case.ExcludeGenes(gs)
	ex.Control.ExcludeGenes(gs)
}
