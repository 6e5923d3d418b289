// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package expr implements the gene expression data model
// used by the pathway analysis methods:
// genes, samples, sample collections,
// and case-control experiments.
package expr

import (
	"slices"
	"sync"
)

// A Gene is an interned gene identifier.
// At a time there can be only one gene with a given name,
// so genes can be compared and stored by their integer ID.
type Gene int

var genes = struct {
	sync.RWMutex
	ids   map[string]Gene
	names []string
	descs []string
}{
	ids: make(map[string]Gene),
}

// GeneID returns the gene for a given identifier,
// interning the identifier on first use.
func GeneID(name string) Gene {
	genes.RLock()
	g, ok := genes.ids[name]
	genes.RUnlock()
	if ok {
		return g
	}

	genes.Lock()
	defer genes.Unlock()
	if g, ok := genes.ids[name]; ok {
		return g
	}
	g = Gene(len(genes.names))
	genes.ids[name] = g
	genes.names = append(genes.names, name)
	genes.descs = append(genes.descs, "")
	return g
}

// Name returns the identifier of a gene.
func (g Gene) Name() string {
	genes.RLock()
	defer genes.RUnlock()
	return genes.names[g]
}

// Description returns the description of a gene,
// or an empty string if none was recorded.
func (g Gene) Description() string {
	genes.RLock()
	defer genes.RUnlock()
	return genes.descs[g]
}

// SetDescription records a description for a gene.
func (g Gene) SetDescription(desc string) {
	if desc == "" {
		return
	}
	genes.Lock()
	genes.descs[g] = desc
	genes.Unlock()
}

// A Sample contains expression values for genes.
type Sample struct {
	Name string
	Data map[Gene]float64
}

// NewSample creates a sample
// from a gene name to expression value mapping.
func NewSample(name string, data map[string]float64) *Sample {
	s := &Sample{
		Name: name,
		Data: make(map[Gene]float64, len(data)),
	}
	for n, v := range data {
		s.Data[GeneID(n)] = v
	}
	return s
}

// Genes returns the genes of a sample,
// sorted by their ID.
func (s *Sample) Genes() []Gene {
	gs := make([]Gene, 0, len(s.Data))
	for g := range s.Data {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}

// ExcludeGenes removes the indicated genes from the sample.
func (s *Sample) ExcludeGenes(gs []Gene) {
	for _, g := range gs {
		delete(s.Data, g)
	}
}
