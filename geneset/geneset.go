// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package geneset implements collections of gene sets,
// such as the molecular signature databases (MSigDB)
// used by gene set enrichment methods.
package geneset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/kn-bibs/patago/expr"
)

// A GeneSet is a named set of genes,
// for example the genes of a biological pathway,
// or genes sharing a common regulation.
type GeneSet struct {
	Name string
	URL  string

	genes map[expr.Gene]bool
}

// New creates a gene set from a list of gene identifiers.
func New(name, url string, genes []string) *GeneSet {
	s := &GeneSet{
		Name:  name,
		URL:   url,
		genes: make(map[expr.Gene]bool, len(genes)),
	}
	for _, g := range genes {
		s.genes[expr.GeneID(g)] = true
	}
	return s
}

// Contains reports whether a gene
// is a member of the set.
func (s *GeneSet) Contains(g expr.Gene) bool {
	return s.genes[g]
}

// Len returns the number of genes in the set.
func (s *GeneSet) Len() int {
	return len(s.genes)
}

// Genes returns the genes of the set,
// sorted by their ID.
func (s *GeneSet) Genes() []expr.Gene {
	gs := make([]expr.Gene, 0, len(s.genes))
	for g := range s.genes {
		gs = append(gs, g)
	}
	slices.Sort(gs)
	return gs
}

// RestrictTo removes from the set
// any gene not present in the given gene universe
// (usually the genes measured in an experiment).
// It returns the number of removed genes.
func (s *GeneSet) RestrictTo(universe []expr.Gene) int {
	keep := make(map[expr.Gene]bool, len(universe))
	for _, g := range universe {
		keep[g] = true
	}

	removed := 0
	for g := range s.genes {
		if !keep[g] {
			delete(s.genes, g)
			removed++
		}
	}
	return removed
}

// A Collection is a set of gene sets,
// such as a molecular signature database.
type Collection struct {
	Label string
	sets  map[string]*GeneSet
}

// NewCollection creates a new empty collection.
func NewCollection(label string) *Collection {
	return &Collection{
		Label: label,
		sets:  make(map[string]*GeneSet),
	}
}

// Add adds a gene set to the collection,
// replacing any previous set with the same name.
func (c *Collection) Add(s *GeneSet) {
	c.sets[s.Name] = s
}

// Set returns a gene set by its name,
// or nil if the set is not in the collection.
func (c *Collection) Set(name string) *GeneSet {
	return c.sets[name]
}

// Len returns the number of gene sets in the collection.
func (c *Collection) Len() int {
	return len(c.sets)
}

// Sets returns the gene sets of the collection,
// sorted by name.
func (c *Collection) Sets() []*GeneSet {
	names := make([]string, 0, len(c.sets))
	for n := range c.sets {
		names = append(names, n)
	}
	slices.Sort(names)

	sets := make([]*GeneSet, 0, len(names))
	for _, n := range names {
		sets = append(sets, c.sets[n])
	}
	return sets
}

// Read reads a collection of gene sets
// in GMT (Gene Matrix Transposed) format:
// one gene set per line,
// with the set name,
// a URL (or any description),
// and the member genes,
// all separated by tabs.
func Read(r io.Reader, label string) (*Collection, error) {
	c := NewCollection(label)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("on row %d: got %d fields, want at least 3", ln, len(fields))
		}
		c.Add(New(fields[0], fields[1], fields[2:]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("no gene sets found")
	}
	return c, nil
}

// ReadFile reads a GMT file,
// decompressing ".gz" files on the fly.
// The file name without the extension
// is used as the collection label.
func ReadFile(name string) (*Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		defer gz.Close()
		r = gz
	}

	label := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".gmt")
	c, err := Read(r, label)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}
